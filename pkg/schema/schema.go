package schema

// Schema is an ordered collection of named field specifications.
// Names are unique; declaration order is preserved and drives the ordering
// of validation errors and reports, nothing else.
type Schema struct {
	names []string
	specs map[string]Spec
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{specs: make(map[string]Spec)}
}

// Add registers a field specification under the given name. Adding an
// existing name replaces its spec but keeps the original position.
// It returns the schema for chaining.
func (s *Schema) Add(name string, spec Spec) *Schema {
	if _, exists := s.specs[name]; !exists {
		s.names = append(s.names, name)
	}
	s.specs[name] = spec
	return s
}

// Get returns the spec registered under name.
func (s *Schema) Get(name string) (Spec, bool) {
	if s == nil {
		return nil, false
	}
	spec, ok := s.specs[name]
	return spec, ok
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
