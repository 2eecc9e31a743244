package app

import (
	"fmt"
	"strings"

	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/design"
)

// ComponentInfo describes one palette entry for the components command.
type ComponentInfo struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Group     string         `json:"group"`
	Supported bool           `json:"supported"`
	Defaults  map[string]any `json:"defaults,omitempty"`
	Fields    []string       `json:"fields,omitempty"`
}

// ComponentCatalog is the palette as command output.
type ComponentCatalog struct {
	Components []ComponentInfo `json:"components"`
}

// Catalog lists the palette. With supportedOnly set, placeholder-only types
// are left out.
func Catalog(supportedOnly bool) ComponentCatalog {
	var out ComponentCatalog
	for _, g := range design.Palette() {
		for _, e := range g.Entries {
			ok := design.Supported(e.Type)
			if supportedOnly && !ok {
				continue
			}
			info := ComponentInfo{Type: string(e.Type), Name: e.Name, Group: g.Name, Supported: ok}
			if ok {
				info.Defaults = design.PropsMap(design.DefaultProps(e.Type))
				for _, f := range design.Fields(e.Type) {
					info.Fields = append(info.Fields, f.Key)
				}
			}
			out.Components = append(out.Components, info)
		}
	}
	return out
}

// Render groups the palette under headers.
func (c ComponentCatalog) Render() string {
	var b strings.Builder
	group := ""
	for _, info := range c.Components {
		if info.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = info.Group
			b.WriteString(Styles.Header.Render(group) + "\n")
		}
		line := fmt.Sprintf("  %s %-10s %s", Styles.Bullet.Render("•"), info.Type, Styles.Dim.Render(info.Name))
		if info.Supported {
			line += "  " + Styles.Key.Render(strings.Join(info.Fields, ", "))
		} else {
			line += "  " + Styles.Dim.Render("(preview placeholder only)")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// TargetEntry describes one code generation target.
type TargetEntry struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Extension string `json:"extension"`
}

// TargetList is the targets command output.
type TargetList struct {
	Targets []TargetEntry `json:"targets"`
}

// ListTargets returns every code generation target.
func ListTargets() TargetList {
	var out TargetList
	for _, t := range codegen.Targets() {
		out.Targets = append(out.Targets, TargetEntry{Name: string(t.Target), Label: t.Label, Extension: t.Ext})
	}
	return out
}

func (l TargetList) Render() string {
	var b strings.Builder
	for _, t := range l.Targets {
		fmt.Fprintf(&b, "%s  %s %s\n", Styles.Key.Render(fmt.Sprintf("%-6s", t.Name)), t.Label, Styles.Dim.Render(t.Extension))
	}
	return strings.TrimRight(b.String(), "\n")
}
