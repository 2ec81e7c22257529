package schema

// Report classifies every schema field against a source without producing
// values. It is a read-only diagnostic: Missing lists required fields that
// cannot be satisfied, Invalid lists fields whose value fails resolution,
// Valid lists the rest. Each bucket preserves schema declaration order.
type Report struct {
	Missing []string      `json:"missing"`
	Invalid []*FieldError `json:"invalid"`
	Valid   []string      `json:"valid"`
}

// OK reports whether the source would pass a full validation.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Invalid) == 0
}

// Classify builds a Report for the schema against the source.
func Classify(s *Schema, src Source) *Report {
	rep := &Report{
		Missing: []string{},
		Invalid: []*FieldError{},
		Valid:   []string{},
	}
	if s == nil {
		return rep
	}
	if src == nil {
		src = noSource{}
	}

	for _, name := range s.names {
		spec := s.specs[name]
		raw, present := src.Lookup(name)

		if !present && spec.IsRequired() {
			if _, ok := spec.DefaultValue(); !ok {
				rep.Missing = append(rep.Missing, name)
				continue
			}
		}

		if _, err := spec.Resolve(raw, present); err != nil {
			rep.Invalid = append(rep.Invalid, &FieldError{Field: name, Reason: err.Error()})
			continue
		}
		rep.Valid = append(rep.Valid, name)
	}
	return rep
}
