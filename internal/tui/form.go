package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/design"
)

// propertyForm edits the selected instance. Values are bound to the huh
// fields and written to the store on submit.
type propertyForm struct {
	id     string
	typ    design.Type
	form   *huh.Form
	keys   []string
	values map[string]*string
	x, y   string
}

func newPropertyForm(inst design.Instance) *propertyForm {
	pf := &propertyForm{
		id:     inst.ID,
		typ:    inst.Type,
		values: make(map[string]*string),
		x:      strconv.Itoa(inst.Position.X),
		y:      strconv.Itoa(inst.Position.Y),
	}

	var props []huh.Field
	for _, f := range design.Fields(inst.Type) {
		v := new(string)
		if cur, ok := inst.Props.Get(f.Key); ok {
			*v, _ = cur.(string)
		}
		pf.keys = append(pf.keys, f.Key)
		pf.values[f.Key] = v
		props = append(props, propertyField(f, v))
	}
	if len(props) == 0 {
		props = append(props, huh.NewNote().
			Title("No properties available").
			Description("This component type has no editable properties."))
	}

	position := huh.NewGroup(
		huh.NewInput().Key("x").Title("X Position").Value(&pf.x),
		huh.NewInput().Key("y").Title("Y Position").Value(&pf.y),
	).Title("Position")

	pf.form = huh.NewForm(
		huh.NewGroup(props...).
			Title(typeLabel(inst.Type)+" Properties").
			Description("#"+inst.ShortID()),
		position,
	).WithShowHelp(true)
	pf.form.SubmitCmd = nil
	pf.form.CancelCmd = nil
	return pf
}

func propertyField(f design.Field, v *string) huh.Field {
	if len(f.Options) == 0 {
		return huh.NewInput().Key(f.Key).Title(f.Label).Value(v)
	}
	opts := make([]huh.Option[string], 0, len(f.Options)+1)
	known := false
	for _, o := range f.Options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
		known = known || o.Value == *v
	}
	// Values set from scripts may lie outside the enumeration.
	if !known && *v != "" {
		opts = append(opts, huh.NewOption(*v, *v))
	}
	return huh.NewSelect[string]().Key(f.Key).Title(f.Label).Options(opts...).Value(v)
}

// patch converts the bound values into a store update. Coordinates go through
// the same coercion as every other position input.
func (pf *propertyForm) patch() design.Patch {
	props := make(map[string]any, len(pf.keys))
	for _, k := range pf.keys {
		props[k] = *pf.values[k]
	}
	pos := design.Position{X: design.ParseCoordinate(pf.x), Y: design.ParseCoordinate(pf.y)}
	return design.Patch{Props: props, Position: &pos}
}

func (m *model) openForm() tea.Cmd {
	inst, ok := m.session.Store.Get(m.session.Selected())
	if !ok {
		return m.setStatus("Select a component to edit", app.StatusDuration)
	}
	m.form = newPropertyForm(inst)
	m.form.form.WithWidth(clampMin(m.mainWidth(), 20))
	return m.form.form.Init()
}

func (m *model) updateForm(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "ctrl+c":
			m.form = nil
			return m.setStatus("Edit cancelled", app.StatusDuration)
		}
	}

	next, cmd := m.form.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		pf := m.form
		m.form = nil
		m.session.Store.Update(pf.id, pf.patch())
		m.logger.Debug("properties saved", "id", pf.id)
		return tea.Batch(cmd, m.setStatus("Saved "+pf.id, app.StatusDuration))
	case huh.StateAborted:
		m.form = nil
	}
	return cmd
}
