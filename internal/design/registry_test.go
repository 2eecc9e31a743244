package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProps(t *testing.T) {
	tests := []struct {
		typ  Type
		want map[string]any
	}{
		{TypeButton, map[string]any{"text": "Click me", "variant": "default", "size": "default"}},
		{TypeText, map[string]any{"content": "Sample text", "size": "base", "weight": "normal"}},
		{TypeInput, map[string]any{"placeholder": "Enter text...", "type": "text"}},
		{TypeCard, map[string]any{"title": "Card Title", "description": "Card description"}},
		{TypeImage, map[string]any{"src": DefaultImageSrc, "alt": "Sample image"}},
		{"chart", map[string]any{}},
		{"", map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			p := DefaultProps(tt.typ)
			require.NotNil(t, p)
			assert.Equal(t, tt.typ, p.Kind())
			assert.Equal(t, tt.want, PropsMap(p))
		})
	}
}

func TestDefaultProps_FreshRecordEachCall(t *testing.T) {
	a := DefaultProps(TypeButton)
	a.Set("text", "changed")
	b := DefaultProps(TypeButton)
	v, _ := b.Get("text")
	assert.Equal(t, "Click me", v)
}

func TestSupported(t *testing.T) {
	for _, typ := range []Type{TypeButton, TypeText, TypeInput, TypeCard, TypeImage} {
		assert.True(t, Supported(typ), typ)
	}
	assert.False(t, Supported("chart"))
	assert.False(t, Supported("Button"), "type names are case sensitive")
}

func TestFields(t *testing.T) {
	fields := Fields(TypeButton)
	require.Len(t, fields, 3)
	assert.Equal(t, "text", fields[0].Key)
	assert.Empty(t, fields[0].Options)
	assert.Len(t, fields[1].Options, 6)
	assert.Len(t, fields[2].Options, 3)

	input := Fields(TypeInput)
	require.Len(t, input, 2)
	assert.Equal(t, "type", input[1].Key)
	assert.Equal(t, Option{Label: "Phone", Value: "tel"}, input[1].Options[4])

	assert.Empty(t, Fields("calendar"))
}

func TestFields_KeysExistOnRecord(t *testing.T) {
	for _, typ := range []Type{TypeButton, TypeText, TypeInput, TypeCard, TypeImage} {
		p := DefaultProps(typ)
		for _, f := range Fields(typ) {
			_, ok := p.Get(f.Key)
			assert.True(t, ok, "%s.%s", typ, f.Key)
		}
	}
}

func TestPalette(t *testing.T) {
	groups := Palette()
	require.Len(t, groups, 4)
	seen := map[Type]bool{}
	supported := 0
	for _, g := range groups {
		assert.Len(t, g.Entries, 4, g.Name)
		for _, e := range g.Entries {
			assert.False(t, seen[e.Type], "duplicate palette entry %s", e.Type)
			seen[e.Type] = true
			if Supported(e.Type) {
				supported++
			}
		}
	}
	assert.Equal(t, 5, supported)
}
