package design

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProps_SetStringifiesTypedFields(t *testing.T) {
	p := DefaultProps(TypeButton).(*ButtonProps)
	p.Set("text", 42)
	p.Set("size", true)
	p.Set("variant", nil)
	assert.Equal(t, "42", p.Text)
	assert.Equal(t, ButtonSize("true"), p.Size)
	assert.Equal(t, ButtonVariant(""), p.Variant)
	assert.Nil(t, p.Extra)
}

func TestProps_UnknownKeysPreserved(t *testing.T) {
	p := DefaultProps(TypeCard)
	p.Set("zeta", 3)
	p.Set("alpha", map[string]int{"n": 1})

	assert.Equal(t, []string{"title", "description", "alpha", "zeta"}, p.Keys())
	v, ok := p.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, float64(3), v, "extras are JSON-normalized")
	v, _ = p.Get("alpha")
	assert.Equal(t, map[string]any{"n": float64(1)}, v)
}

func TestProps_InputTypeKey(t *testing.T) {
	p := DefaultProps(TypeInput).(*InputProps)
	p.Set("type", "email")
	assert.Equal(t, InputTypeEmail, p.InputType)
	assert.Equal(t, []string{"placeholder", "type"}, p.Keys())
}

func TestProps_OtherKeepsEverythingInExtra(t *testing.T) {
	p := NewProps("chart")
	assert.Equal(t, Type("chart"), p.Kind())
	assert.Empty(t, p.Keys())
	p.Set("series", []any{1, 2})
	assert.Equal(t, []string{"series"}, p.Keys())
}

func TestProps_CloneIsDeep(t *testing.T) {
	p := DefaultProps(TypeText)
	p.Set("meta", map[string]any{"a": "b"})
	c := p.Clone()

	v, _ := c.Get("meta")
	v.(map[string]any)["a"] = "changed"
	c.Set("content", "other")

	orig, _ := p.Get("meta")
	assert.Equal(t, "b", orig.(map[string]any)["a"])
	content, _ := p.Get("content")
	assert.Equal(t, "Sample text", content)
}

type recordingVisitor struct {
	visited []string
}

func (r *recordingVisitor) VisitButton(i Instance, _ *ButtonProps) { r.visited = append(r.visited, "button:"+i.ID) }
func (r *recordingVisitor) VisitText(i Instance, _ *TextProps)     { r.visited = append(r.visited, "text:"+i.ID) }
func (r *recordingVisitor) VisitInput(i Instance, _ *InputProps)   { r.visited = append(r.visited, "input:"+i.ID) }
func (r *recordingVisitor) VisitCard(i Instance, _ *CardProps)     { r.visited = append(r.visited, "card:"+i.ID) }
func (r *recordingVisitor) VisitImage(i Instance, _ *ImageProps)   { r.visited = append(r.visited, "image:"+i.ID) }
func (r *recordingVisitor) VisitOther(i Instance, p *OtherProps) {
	r.visited = append(r.visited, "other("+string(p.Name)+"):"+i.ID)
}

func TestInstance_Accept(t *testing.T) {
	var v recordingVisitor
	NewInstance("a", TypeButton, Position{}).Accept(&v)
	NewInstance("b", TypeImage, Position{}).Accept(&v)
	NewInstance("c", "grid", Position{}).Accept(&v)
	Instance{ID: "d", Type: "button"}.Accept(&v)

	assert.Equal(t, []string{"button:a", "image:b", "other(grid):c", "other(button):d"}, v.visited)
}

func TestInstance_ShortID(t *testing.T) {
	assert.Equal(t, "3", Instance{ID: "button-3", Type: TypeButton}.ShortID())
	assert.Equal(t, "0f8fad5b", Instance{ID: "text-0f8fad5b-d9cb-469f-a165-70867728950e", Type: TypeText}.ShortID())
	assert.Equal(t, "custom", Instance{ID: "custom", Type: TypeCard}.ShortID())
}

func TestProps_NonFiniteFloatsAreStringified(t *testing.T) {
	p := DefaultProps(TypeText)
	p.Set("opacity", math.NaN())
	p.Set("scale", math.Inf(1))
	p.Set("depth", math.Inf(-1))
	p.Set("ratio", 0.5)

	for key, want := range map[string]any{"opacity": "NaN", "scale": "+Inf", "depth": "-Inf", "ratio": 0.5} {
		v, ok := p.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
}

func TestProps_InvalidUTF8IsReplaced(t *testing.T) {
	p := DefaultProps(TypeButton)
	p.Set("text", "ok\xff")
	p.Set("note\xfe", "x\xfd")

	v, _ := p.Get("text")
	assert.Equal(t, "ok\ufffd", v)
	v, ok := p.Get("note\xfe")
	require.True(t, ok, "lookups use the same replacement")
	assert.Equal(t, "x\ufffd", v)
	assert.Equal(t, []string{"text", "variant", "size", "note\ufffd"}, p.Keys())
}
