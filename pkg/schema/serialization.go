package schema

import (
	"encoding/json"
	"fmt"
)

// fieldJSON is the wire shape of one schema entry. Schemas serialize as an
// ordered array so declaration order survives the round trip; a JSON object
// would lose it.
type fieldJSON struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Required    bool            `json:"required,omitempty"`
	Default     json.RawMessage `json:"default,omitempty"`
	Description string          `json:"description,omitempty"`
	Check       bool            `json:"check,omitempty"`
}

// MarshalJSON serializes the schema as an ordered array of field objects.
// Predicates do not serialize; they surface as a boolean marker.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	out := make([]fieldJSON, 0, len(s.names))
	for _, name := range s.names {
		spec := s.specs[name]
		fj := fieldJSON{
			Name:        name,
			Type:        spec.Kind().String(),
			Required:    spec.IsRequired(),
			Description: spec.Description(),
			Check:       spec.HasCheck(),
		}
		if def, ok := spec.DefaultValue(); ok {
			raw, err := json.Marshal(def)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			fj.Default = raw
		}
		out = append(out, fj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON deserializes the schema from the ordered array form.
// Deserialized specs carry no predicates.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	if string(data) == "null" {
		*s = Schema{specs: make(map[string]Spec)}
		return nil
	}

	var raw []fieldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := New()
	for _, fj := range raw {
		if fj.Name == "" {
			return fmt.Errorf("schema: field with empty name")
		}
		d := SpecDef{
			Type:        fj.Type,
			Required:    fj.Required,
			Description: fj.Description,
		}
		if fj.Default != nil {
			var def any
			if err := json.Unmarshal(fj.Default, &def); err != nil {
				return fmt.Errorf("field %s: %w", fj.Name, err)
			}
			d.Default = def
			d.HasDefault = true
		}
		spec, err := BuildSpec(d)
		if err != nil {
			return fmt.Errorf("field %s: %w", fj.Name, err)
		}
		parsed.Add(fj.Name, spec)
	}

	*s = *parsed
	return nil
}
