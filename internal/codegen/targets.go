package codegen

import (
	"fmt"
	"strings"

	"github.com/openbindings/appbuilder/internal/design"
)

// Target names an output notation.
type Target string

const (
	TargetReact Target = "react"
	TargetHTML  Target = "html"
	TargetJSON  Target = "json"
	TargetYAML  Target = "yaml"
)

// TargetInfo describes how a target is emitted and presented.
type TargetInfo struct {
	Target Target `json:"target" yaml:"target"`
	Label  string `json:"label" yaml:"label"`
	// Ext is the file extension used when exporting.
	Ext string `json:"ext" yaml:"ext"`
	// Lexers are syntax highlighter names to try, in order.
	Lexers []string                                `json:"-" yaml:"-"`
	Emit   func([]design.Instance) (string, error) `json:"-" yaml:"-"`
}

var targets = []TargetInfo{
	{Target: TargetReact, Label: "React JSX", Ext: ".tsx", Lexers: []string{"tsx", "react", "jsx", "typescript"}, Emit: markupEmitter(JSX)},
	{Target: TargetHTML, Label: "HTML", Ext: ".html", Lexers: []string{"html"}, Emit: markupEmitter(HTML)},
	{Target: TargetJSON, Label: "JSON", Ext: ".json", Lexers: []string{"json"}, Emit: JSON},
	{Target: TargetYAML, Label: "YAML", Ext: ".yaml", Lexers: []string{"yaml"}, Emit: YAML},
}

// markupEmitter adapts the markup emitters, which cannot fail.
func markupEmitter(emit func([]design.Instance) string) func([]design.Instance) (string, error) {
	return func(instances []design.Instance) (string, error) {
		return emit(instances), nil
	}
}

// Targets lists every target in presentation order.
func Targets() []TargetInfo {
	out := make([]TargetInfo, len(targets))
	copy(out, targets)
	return out
}

// LookupTarget resolves a target name. "jsx" and "tsx" are accepted for
// react, "yml" for yaml.
func LookupTarget(name string) (TargetInfo, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "jsx", "tsx":
		n = string(TargetReact)
	case "yml":
		n = string(TargetYAML)
	case "htm":
		n = string(TargetHTML)
	}
	for _, t := range targets {
		if string(t.Target) == n {
			return t, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("unknown target %q (valid: react, html, json, yaml)", name)
}

// Generate emits instances in the named target.
func Generate(target string, instances []design.Instance) (string, error) {
	t, err := LookupTarget(target)
	if err != nil {
		return "", err
	}
	return t.Emit(instances)
}
