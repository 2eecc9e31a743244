// Package codegen turns a design tree into source artifacts: React JSX, a
// standalone HTML document, and the JSON/YAML data representation.
//
// Every emitter walks the tree in order, never reorders or deduplicates
// instances, never mutates its input, and is total: unsupported component
// types simply contribute nothing to the markup targets.
package codegen

import (
	"strings"

	"github.com/openbindings/appbuilder/internal/design"
)

// fragment is the markup of one instance, one string per line, indented
// relative to the fragment's own first line.
type fragment []string

// fragmentWalker collects fragments from a visitor over the tree.
type fragmentWalker interface {
	design.Visitor
	fragments() []fragment
}

func walk(instances []design.Instance, w fragmentWalker) []fragment {
	for _, inst := range instances {
		inst.Accept(w)
	}
	return w.fragments()
}

// writeFragments writes each fragment with every line prefixed by indent.
func writeFragments(b *strings.Builder, frags []fragment, indent string) {
	for _, f := range frags {
		for _, line := range f {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
}

// orderedSet keeps the first-insertion order of its members.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet(initial ...string) *orderedSet {
	s := &orderedSet{seen: make(map[string]bool)}
	for _, it := range initial {
		s.add(it)
	}
	return s
}

func (s *orderedSet) add(item string) {
	if s.seen[item] {
		return
	}
	s.seen[item] = true
	s.items = append(s.items, item)
}

func (s *orderedSet) list() []string { return s.items }
