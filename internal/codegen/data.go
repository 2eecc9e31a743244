package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/openbindings/appbuilder/internal/design"
)

// JSON renders the whole tree, every field of every instance, as two-space
// indented JSON. Each element carries its keys in wire order: type, id,
// props, position, then children when there are any. A value JSON cannot
// represent fails the whole document rather than dropping instances.
func JSON(instances []design.Instance) (string, error) {
	var compact bytes.Buffer
	if err := writeInstances(&compact, instances); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("indent design: %w", err)
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// YAML renders the same document as JSON in block YAML, keeping key order.
// The node tree is built directly so every string survives, control
// characters included.
func YAML(instances []design.Instance) (string, error) {
	seq, err := yamlInstances(instances)
	if err != nil {
		return "", err
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return out.String(), nil
}

func writeInstances(buf *bytes.Buffer, instances []design.Instance) error {
	buf.WriteByte('[')
	for i, inst := range instances {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeInstance(buf, inst); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeInstance(buf *bytes.Buffer, inst design.Instance) error {
	buf.WriteString(`{"type":`)
	if err := writeValue(buf, string(inst.Type)); err != nil {
		return err
	}
	buf.WriteString(`,"id":`)
	if err := writeValue(buf, inst.ID); err != nil {
		return err
	}
	buf.WriteString(`,"props":{`)
	if inst.Props != nil {
		for i, k := range inst.Props.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			v, _ := inst.Props.Get(k)
			if err := writeValue(buf, v); err != nil {
				return fmt.Errorf("component %s prop %q: %w", inst.ID, k, err)
			}
		}
	}
	buf.WriteString(`},"position":`)
	if err := writeValue(buf, inst.Position); err != nil {
		return err
	}
	if len(inst.Children) > 0 {
		buf.WriteString(`,"children":`)
		if err := writeInstances(buf, inst.Children); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeValue appends v as compact JSON without HTML escaping, so markup in
// property values stays readable.
func writeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func yamlInstances(instances []design.Instance) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, inst := range instances {
		n, err := yamlInstance(inst)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	return seq, nil
}

func yamlInstance(inst design.Instance) (*yaml.Node, error) {
	props := yamlMapping()
	if inst.Props != nil {
		for _, k := range inst.Props.Keys() {
			v, _ := inst.Props.Get(k)
			n, err := yamlValue(v)
			if err != nil {
				return nil, fmt.Errorf("component %s prop %q: %w", inst.ID, k, err)
			}
			props.Content = append(props.Content, yamlString(k), n)
		}
	}
	pos := yamlMapping()
	pos.Content = append(pos.Content,
		yamlString("x"), yamlInt(inst.Position.X),
		yamlString("y"), yamlInt(inst.Position.Y),
	)

	m := yamlMapping()
	m.Content = append(m.Content,
		yamlString("type"), yamlString(string(inst.Type)),
		yamlString("id"), yamlString(inst.ID),
		yamlString("props"), props,
		yamlString("position"), pos,
	)
	if len(inst.Children) > 0 {
		children, err := yamlInstances(inst.Children)
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, yamlString("children"), children)
	}
	return m, nil
}

// yamlValue converts a property value. Extras are JSON-shaped after Set, but
// records built by hand may hold anything, so other values take the shape
// encoding/json gives them.
func yamlValue(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return yamlString(x), nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}, nil
	case float64:
		return yamlFloat(x)
	case int:
		return yamlInt(x), nil
	case map[string]any:
		m := yamlMapping()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := yamlValue(x[k])
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, yamlString(k), n)
		}
		return m, nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			n, err := yamlValue(e)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var shaped any
	if err := json.Unmarshal(b, &shaped); err != nil {
		return nil, err
	}
	return yamlValue(shaped)
}

func yamlMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func yamlInt(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}

// yamlFloat formats f the way encoding/json does; whole numbers are tagged
// as ints so they print bare.
func yamlFloat(f float64) (*yaml.Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("unsupported value: %v", f)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	tag := "!!float"
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}, nil
}

// yamlString tags s as a string so the encoder quotes values that would
// otherwise read back as numbers or booleans. Control characters and line
// separators force double quotes, where they are written as escapes.
func yamlString(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.IndexFunc(s, needsEscape) >= 0 {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

func needsEscape(r rune) bool {
	return unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff'
}
