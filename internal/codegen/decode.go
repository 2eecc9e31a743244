package codegen

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/openbindings/appbuilder/internal/design"
)

//go:embed design.schema.json
var designSchemaJSON []byte

var (
	designSchema     *jsonschema.Schema
	designSchemaOnce sync.Once
	designSchemaErr  error
)

// SchemaJSON returns the JSON Schema of the design data representation.
func SchemaJSON() []byte {
	return bytes.Clone(designSchemaJSON)
}

// DesignSchema returns the compiled schema.
func DesignSchema() (*jsonschema.Schema, error) {
	designSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("design.schema.json", bytes.NewReader(designSchemaJSON)); err != nil {
			designSchemaErr = fmt.Errorf("failed to add design schema resource: %w", err)
			return
		}
		designSchema, designSchemaErr = compiler.Compile("design.schema.json")
	})
	return designSchema, designSchemaErr
}

type wireInstance struct {
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Props    map[string]any  `json:"props"`
	Position design.Position `json:"position"`
	Children []wireInstance  `json:"children"`
}

// DecodeJSON parses a document produced by JSON back into instances. The
// document is validated against the design schema and ids must be unique.
func DecodeJSON(data []byte) ([]design.Instance, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse design JSON: %w", err)
	}
	return decodeValue(raw, data)
}

// DecodeYAML parses a document produced by YAML back into instances.
func DecodeYAML(data []byte) ([]design.Instance, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse design YAML: %w", err)
	}
	// Re-encode so numbers and maps take their JSON shapes before validation.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert design YAML: %w", err)
	}
	return DecodeJSON(b)
}

func decodeValue(raw any, data []byte) ([]design.Instance, error) {
	schema, err := DesignSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to load design schema: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("design validation failed: %w", err)
	}

	var wire []wireInstance
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal design: %w", err)
	}

	seen := make(map[string]bool)
	out, err := fromWire(wire, seen)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func fromWire(wire []wireInstance, seen map[string]bool) ([]design.Instance, error) {
	if len(wire) == 0 {
		return []design.Instance{}, nil
	}
	out := make([]design.Instance, 0, len(wire))
	for _, w := range wire {
		if seen[w.ID] {
			return nil, fmt.Errorf("duplicate component id %q", w.ID)
		}
		seen[w.ID] = true

		t := design.Type(w.Type)
		props := design.NewProps(t)
		for k, v := range w.Props {
			props.Set(k, v)
		}
		inst := design.Instance{
			ID:       w.ID,
			Type:     t,
			Props:    props,
			Position: w.Position,
		}
		if len(w.Children) > 0 {
			children, err := fromWire(w.Children, seen)
			if err != nil {
				return nil, err
			}
			inst.Children = children
		}
		out = append(out, inst)
	}
	return out, nil
}
