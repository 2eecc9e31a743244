// Package design holds the component data model, the component registry and
// the design tree store that owns the ordered list of placed instances.
package design

import "strings"

// Type names a kind of UI component. The set is open: any string is accepted,
// but only the constants below have registry defaults and generator support.
type Type string

const (
	TypeButton Type = "button"
	TypeText   Type = "text"
	TypeInput  Type = "input"
	TypeCard   Type = "card"
	TypeImage  Type = "image"
)

// Position is a point in canvas pixel space.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Instance is one placed component.
type Instance struct {
	ID       string
	Type     Type
	Props    Props
	Children []Instance // reserved; nothing in the builder populates it
	Position Position
}

// NewInstance builds an instance of type t with the registry defaults.
func NewInstance(id string, t Type, pos Position) Instance {
	return Instance{
		ID:       id,
		Type:     t,
		Props:    DefaultProps(t),
		Position: pos,
	}
}

// Clone returns a deep copy, so callers can hand snapshots out freely.
func (i Instance) Clone() Instance {
	out := i
	if i.Props != nil {
		out.Props = i.Props.Clone()
	}
	out.Children = cloneInstances(i.Children)
	return out
}

// Accept dispatches v on the instance's props variant. An instance without
// props is treated as an unsupported type.
func (i Instance) Accept(v Visitor) {
	if i.Props == nil {
		v.VisitOther(i, &OtherProps{Name: i.Type})
		return
	}
	i.Props.accept(i, v)
}

// ShortID is the display suffix of an id: the part after "<type>-",
// truncated to eight characters.
func (i Instance) ShortID() string {
	s := strings.TrimPrefix(i.ID, string(i.Type)+"-")
	if r := []rune(s); len(r) > 8 {
		return string(r[:8])
	}
	return s
}

func cloneInstances(in []Instance) []Instance {
	if len(in) == 0 {
		return nil
	}
	out := make([]Instance, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
