package codegen

import (
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbindings/appbuilder/internal/design"
)

func mustJSON(t *testing.T, in []design.Instance) string {
	t.Helper()
	out, err := JSON(in)
	require.NoError(t, err)
	return out
}

func mustYAML(t *testing.T, in []design.Instance) string {
	t.Helper()
	out, err := YAML(in)
	require.NoError(t, err)
	return out
}

func TestJSON_Empty(t *testing.T) {
	assert.Equal(t, "[]\n", mustJSON(t, nil))
	assert.Equal(t, "[]\n", mustJSON(t, []design.Instance{}))
}

func TestJSON_FieldLayout(t *testing.T) {
	s := design.NewStore()
	b := s.Add(design.TypeButton, design.Position{X: 3, Y: 4})
	s.Update(b.ID, design.Patch{Props: map[string]any{"text": "Go", "aria-label": "<go>"}})

	want := `[
  {
    "type": "button",
    "id": "button-1",
    "props": {
      "text": "Go",
      "variant": "default",
      "size": "default",
      "aria-label": "<go>"
    },
    "position": {
      "x": 3,
      "y": 4
    }
  }
]
`
	assert.Equal(t, want, mustJSON(t, s.Instances()))
}

func TestYAML_FieldLayout(t *testing.T) {
	s := design.NewStore()
	txt := s.Add(design.TypeText, design.Position{X: 1, Y: 2})
	s.Update(txt.ID, design.Patch{Props: map[string]any{"content": "42", "size": "2xl"}})

	want := `- type: text
  id: text-1
  props:
    content: "42"
    size: 2xl
    weight: normal
  position:
    x: 1
    y: 2
`
	assert.Equal(t, want, mustYAML(t, s.Instances()))
	assert.Equal(t, "[]\n", mustYAML(t, nil))
}

func TestJSON_RoundTrip(t *testing.T) {
	in := everyType()
	in[5].Props.Set("series", []any{1, "two", map[string]any{"three": true}})
	in[0].Props.Set("disabled", false)

	out, err := DecodeJSON([]byte(mustJSON(t, in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestYAML_RoundTrip(t *testing.T) {
	in := everyType()
	in[2].Props.Set("maxLength", 12)
	in[3].Props.Set("title", "yes")

	out, err := DecodeYAML([]byte(mustYAML(t, in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRoundTrip_Empty(t *testing.T) {
	out, err := DecodeJSON([]byte(mustJSON(t, nil)))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = DecodeYAML([]byte(mustYAML(t, nil)))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoundTrip_Children(t *testing.T) {
	s := design.NewStore()
	card := s.Add(design.TypeCard, design.Position{})
	s.Update(card.ID, design.Patch{Children: []design.Instance{design.NewInstance("inner-1", design.TypeButton, design.Position{X: 5})}})
	in := s.Instances()

	got := mustJSON(t, in)
	assert.Contains(t, got, `"children": [`)
	out, err := DecodeJSON([]byte(got))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeJSON_Rejects(t *testing.T) {
	tests := map[string]string{
		"not json":       `{`,
		"not an array":   `{"type":"button"}`,
		"missing id":     `[{"type":"button","props":{},"position":{"x":0,"y":0}}]`,
		"fractional x":   `[{"type":"button","id":"a","props":{},"position":{"x":0.5,"y":0}}]`,
		"unknown field":  `[{"type":"button","id":"a","props":{},"position":{"x":0,"y":0},"style":{}}]`,
		"duplicate ids":  `[{"type":"button","id":"a","props":{},"position":{"x":0,"y":0}},{"type":"text","id":"a","props":{},"position":{"x":0,"y":0}}]`,
		"props not map":  `[{"type":"button","id":"a","props":[],"position":{"x":0,"y":0}}]`,
		"empty type":     `[{"type":"","id":"a","props":{},"position":{"x":0,"y":0}}]`,
		"nested invalid": `[{"type":"card","id":"a","props":{},"position":{"x":0,"y":0},"children":[{"id":"b"}]}]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAML_Rejects(t *testing.T) {
	_, err := DecodeYAML([]byte("- type: button\n  id: x\n"))
	assert.Error(t, err)
	_, err = DecodeYAML([]byte("key: [unterminated"))
	assert.Error(t, err)
}

func TestSchemaJSON(t *testing.T) {
	s := string(SchemaJSON())
	assert.True(t, strings.Contains(s, `"$id": "design.schema.json"`))
	_, err := DesignSchema()
	require.NoError(t, err)
}

func TestEncode_ControlCharacters(t *testing.T) {
	s := design.NewStore()
	btn := s.Add(design.TypeButton, design.Position{})
	txt := s.Add(design.TypeText, design.Position{X: 20})
	s.Update(btn.ID, design.Patch{Props: map[string]any{"text": "a\u0088b", "note": "tab\there\u2028line"}})
	s.Update(txt.ID, design.Patch{Props: map[string]any{"content": "\u0000\ufeff\n  indented"}})
	in := s.Instances()

	doc := mustYAML(t, in)
	assert.Contains(t, doc, "id: button-1")
	assert.Contains(t, doc, "id: text-1")
	out, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = DecodeJSON([]byte(mustJSON(t, in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncode_NonFiniteExtrasKeepEveryInstance(t *testing.T) {
	s := design.NewStore()
	btn := s.Add(design.TypeButton, design.Position{})
	txt := s.Add(design.TypeText, design.Position{})
	s.Update(txt.ID, design.Patch{Props: map[string]any{"opacity": math.NaN(), "scale": math.Inf(1)}})
	in := s.Instances()

	for name, encode := range map[string]func([]design.Instance) (string, error){"json": JSON, "yaml": YAML} {
		t.Run(name, func(t *testing.T) {
			doc, err := encode(in)
			require.NoError(t, err)
			assert.Contains(t, doc, btn.ID)
			assert.Contains(t, doc, txt.ID)
			assert.Contains(t, doc, "NaN")
			assert.Contains(t, doc, "+Inf")
		})
	}
}

func TestEncode_RejectsUnencodableValues(t *testing.T) {
	// Records built without Set skip normalization.
	in := []design.Instance{{
		ID:    "card-1",
		Type:  design.TypeCard,
		Props: &design.CardProps{Extra: map[string]any{"ratio": math.Inf(-1)}},
	}}
	_, err := JSON(in)
	assert.ErrorContains(t, err, `card-1 prop "ratio"`)
	_, err = YAML(in)
	assert.ErrorContains(t, err, `card-1 prop "ratio"`)
}

func TestEncode_InvalidUTF8IsReplacedOnSet(t *testing.T) {
	s := design.NewStore()
	btn := s.Add(design.TypeButton, design.Position{})
	s.Update(btn.ID, design.Patch{Props: map[string]any{"text": "\xff", "alt\xfe": []any{"x\xfd"}}})
	in := s.Instances()

	v, _ := in[0].Props.Get("text")
	assert.Equal(t, "\ufffd", v)
	v, ok := in[0].Props.Get("alt\ufffd")
	require.True(t, ok)
	assert.Equal(t, []any{"x\ufffd"}, v)

	out, err := DecodeJSON([]byte(mustJSON(t, in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
	out, err = DecodeYAML([]byte(mustYAML(t, in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func roundTripProperty(encode func([]design.Instance) (string, error), decode func([]byte) ([]design.Instance, error)) gopter.Prop {
	return prop.ForAll(
		func(types []string, texts []string, xs []int) bool {
			s := design.NewStore()
			for i, typ := range types {
				pos := design.Position{}
				if i < len(xs) {
					pos.X, pos.Y = xs[i], -xs[i]
				}
				inst := s.Add(design.Type(typ), pos)
				if i < len(texts) {
					s.Update(inst.ID, design.Patch{Props: map[string]any{"text": texts[i], "note": texts[i]}})
				}
			}
			in := s.Instances()
			doc, err := encode(in)
			if err != nil {
				return false
			}
			out, err := decode([]byte(doc))
			if err != nil {
				return false
			}
			return len(out) == len(in) && assert.ObjectsAreEqual(in, out)
		},
		gen.SliceOf(gen.OneConstOf("button", "text", "input", "card", "image", "chart", "grid")),
		gen.SliceOf(gen.AnyString()),
		gen.SliceOf(gen.IntRange(-5000, 5000)),
	)
}

func TestJSONRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(tree)) == tree", roundTripProperty(JSON, DecodeJSON))

	properties.TestingRun(t)
}

func TestYAMLRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(tree)) == tree", roundTripProperty(YAML, DecodeYAML))

	properties.TestingRun(t)
}
