package schema

// Source is the port through which raw values are looked up. Implementations
// are treated as immutable snapshots for the duration of one validation pass
// and are never mutated.
type Source interface {
	// Lookup returns the raw value for name and whether it is present.
	Lookup(name string) (string, bool)
}

// Result holds the typed outcome of a successful validation pass: exactly one
// entry per schema field. Optional fields that were absent and carried no
// default hold nil. A json field whose raw value was the literal "null" also
// holds nil and is indistinguishable from absent.
type Result map[string]any

// Has reports whether name resolved to a concrete value.
func (r Result) Has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

// String returns the value for name, or "" if absent or not a string.
func (r Result) String(name string) string {
	v, _ := r[name].(string)
	return v
}

// Number returns the value for name, or 0 if absent or not a number.
func (r Result) Number(name string) float64 {
	v, _ := r[name].(float64)
	return v
}

// Bool returns the value for name, or false if absent or not a boolean.
func (r Result) Bool(name string) bool {
	v, _ := r[name].(bool)
	return v
}

// JSON returns the decoded structure for name, or nil.
func (r Result) JSON(name string) any {
	return r[name]
}

// noSource is the empty source used when callers pass nil.
type noSource struct{}

func (noSource) Lookup(string) (string, bool) { return "", false }

// Validate resolves every schema field against the source, in declaration
// order, collecting every failure. It never stops at the first error.
//
// On failure it returns a *AggregateError whose Fields preserve schema
// order. On success the Result contains one entry per field. Validation is
// pure: same schema and source yield the same outcome, and the source is
// only read.
func Validate(s *Schema, src Source) (Result, error) {
	if s == nil || s.Len() == 0 {
		// No schema = nothing to validate
		return Result{}, nil
	}
	if src == nil {
		src = noSource{}
	}

	res := make(Result, len(s.names))
	var failures []*FieldError

	for _, name := range s.names {
		raw, present := src.Lookup(name)
		v, err := s.specs[name].Resolve(raw, present)
		if err != nil {
			failures = append(failures, &FieldError{Field: name, Reason: err.Error()})
			continue
		}
		res[name] = v
	}

	if len(failures) > 0 {
		return nil, &AggregateError{Message: SummaryMessage, Fields: failures}
	}
	return res, nil
}
