// Package schemafile loads and saves schema definitions from YAML and JSON
// files. YAML files are parsed through the yaml.v3 node API so the declared
// field order is preserved; plain map decoding would lose it.
//
// The YAML shape:
//
//	vars:
//	  HOST:
//	    type: string
//	    required: true
//	    description: bind address
//	  PORT:
//	    type: number
//	    default: 3000
//
// JSON files use the schema package's ordered array form. Custom predicates
// cannot be expressed in either format; they are code-only.
package schemafile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/sill/pkg/schema"
)

// Load reads a schema definition, dispatching on the file extension.
func Load(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".json":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported schema file extension: %s", filepath.Ext(path))
	}
}

// Save writes the schema definition as YAML, fields in declaration order.
// Predicates are marked with "check: true" but cannot be serialized.
func Save(s *schema.Schema, path string) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	vars := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(root, "vars", vars)

	for _, name := range s.Names() {
		spec, _ := s.Get(name)

		field := &yaml.Node{Kind: yaml.MappingNode}
		appendPair(field, "type", scalarNode(spec.Kind().String()))
		if spec.IsRequired() {
			appendPair(field, "required", scalarNode(true))
		}
		if def, ok := spec.DefaultValue(); ok {
			defNode := &yaml.Node{}
			if err := defNode.Encode(def); err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			appendPair(field, "default", defNode)
		}
		if d := spec.Description(); d != "" {
			appendPair(field, "description", scalarNode(d))
		}
		if spec.HasCheck() {
			appendPair(field, "check", scalarNode(true))
		}

		appendPair(vars, name, field)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// yamlField is the per-field YAML shape. Default stays a raw node so its
// YAML type survives until the kind is known.
type yamlField struct {
	Type        string     `yaml:"type"`
	Required    bool       `yaml:"required"`
	Default     *yaml.Node `yaml:"default"`
	Description string     `yaml:"description"`
}

func parseYAML(data []byte) (*schema.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return schema.New(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema file: top level must be a mapping")
	}

	var varsNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "vars" {
			varsNode = root.Content[i+1]
			break
		}
	}
	if varsNode == nil {
		return nil, fmt.Errorf("schema file: missing vars section")
	}
	if varsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema file: vars must be a mapping")
	}

	s := schema.New()
	for i := 0; i+1 < len(varsNode.Content); i += 2 {
		name := varsNode.Content[i].Value

		var yf yamlField
		if err := varsNode.Content[i+1].Decode(&yf); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		d := schema.SpecDef{
			Type:        yf.Type,
			Required:    yf.Required,
			Description: yf.Description,
		}
		if yf.Default != nil {
			var def any
			if err := yf.Default.Decode(&def); err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			d.Default = def
			d.HasDefault = true
		}

		spec, err := schema.BuildSpec(d)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		s.Add(name, spec)
	}
	return s, nil
}

func parseJSON(data []byte) (*schema.Schema, error) {
	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	return &s, nil
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalarNode(key), value)
}

func scalarNode(v any) *yaml.Node {
	n := &yaml.Node{}
	// Encoding a string or bool scalar cannot fail.
	_ = n.Encode(v)
	return n
}
