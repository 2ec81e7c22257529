package schema

import "fmt"

// Spec is the read-and-resolve contract of a single field specification.
// The set of implementations is closed: one Field variant per Kind, obtained
// through the factory functions below.
type Spec interface {
	// Kind returns the field's type tag.
	Kind() Kind
	// IsRequired reports whether the field must be satisfiable.
	IsRequired() bool
	// DefaultValue returns the configured default, if any.
	DefaultValue() (any, bool)
	// Description returns the human-readable annotation, if any.
	Description() string
	// HasCheck reports whether a custom predicate is configured.
	HasCheck() bool
	// Resolve produces the field's value from a raw lookup outcome.
	// present=false means the name was absent from the source.
	Resolve(raw string, present bool) (any, error)
}

// Field is the typed variant backing Spec, generic over the coerced Go type.
// Configuration is a fluent chain:
//
//	schema.Number().Required().Default(3000).Check(func(v float64) bool { return v > 0 })
type Field[T any] struct {
	kind     Kind
	required bool
	def      *T
	check    func(T) bool
	desc     string
	coerce   func(string) (T, error)
	fromAny  func(any) (T, error)
}

// --- Factory Functions ---

// String creates a string field. Coercion is the identity and never fails.
func String() *Field[string] {
	return &Field[string]{kind: KindString, coerce: coerceString, fromAny: stringFromAny}
}

// Number creates a numeric field coerced with a full-string float parse.
func Number() *Field[float64] {
	return &Field[float64]{kind: KindNumber, coerce: coerceNumber, fromAny: numberFromAny}
}

// Bool creates a boolean field accepting true/1 and false/0, case-insensitive.
func Bool() *Field[bool] {
	return &Field[bool]{kind: KindBool, coerce: coerceBool, fromAny: boolFromAny}
}

// URL creates a field whose raw value must parse as an absolute URL.
// The resolved value is the original string.
func URL() *Field[string] {
	return &Field[string]{kind: KindURL, coerce: coerceURL, fromAny: stringFromAny}
}

// Email creates a field whose raw value must look like local@domain.tld.
// The resolved value is the original string.
func Email() *Field[string] {
	return &Field[string]{kind: KindEmail, coerce: coerceEmail, fromAny: stringFromAny}
}

// JSON creates a field whose raw value must parse as JSON. The resolved
// value is the decoded structure (map, slice or scalar).
func JSON() *Field[any] {
	return &Field[any]{kind: KindJSON, coerce: coerceJSON, fromAny: anyFromAny}
}

// --- Fluent Configuration ---

// Required marks the field as mandatory. A field with a default is always
// satisfiable, required or not.
func (f *Field[T]) Required() *Field[T] {
	f.required = true
	return f
}

// Default sets the value used when the name is absent from the source.
// The custom predicate, if any, runs on defaults too.
func (f *Field[T]) Default(v T) *Field[T] {
	f.def = &v
	return f
}

// Check sets a custom predicate applied to every resolved value.
// A predicate that panics counts as a failed check.
func (f *Field[T]) Check(fn func(T) bool) *Field[T] {
	f.check = fn
	return f
}

// Desc sets the human-readable description used in example files and docs.
func (f *Field[T]) Desc(s string) *Field[T] {
	f.desc = s
	return f
}

// --- Spec Implementation ---

func (f *Field[T]) Kind() Kind       { return f.kind }
func (f *Field[T]) IsRequired() bool { return f.required }
func (f *Field[T]) HasCheck() bool   { return f.check != nil }

func (f *Field[T]) Description() string { return f.desc }

func (f *Field[T]) DefaultValue() (any, bool) {
	if f.def == nil {
		return nil, false
	}
	return *f.def, true
}

// Resolve implements the per-field resolution order: absence first, then
// coercion, then the predicate. The predicate runs on any concrete value,
// coerced or defaulted, and never after a missing-required failure.
func (f *Field[T]) Resolve(raw string, present bool) (any, error) {
	if !present {
		if f.def != nil {
			v := *f.def
			if !f.runCheck(v) {
				return nil, ErrCheckFailed
			}
			return v, nil
		}
		if f.required {
			return nil, ErrMissing
		}
		// Absent optional without a default is a legal nil outcome.
		return nil, nil
	}

	v, err := f.coerce(raw)
	if err != nil {
		return nil, err
	}
	if !f.runCheck(v) {
		return nil, ErrCheckFailed
	}
	return v, nil
}

// runCheck normalizes a panicking predicate to a plain false.
func (f *Field[T]) runCheck(v T) (ok bool) {
	if f.check == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return f.check(v)
}

// --- Dynamic Construction ---

// SpecDef is the serializable shape of a field specification, used when
// schemas are loaded from files rather than built in code. Predicates
// cannot be expressed in a SpecDef.
type SpecDef struct {
	Type        string
	Required    bool
	Default     any
	HasDefault  bool
	Description string
}

// BuildSpec constructs a Spec from its serialized definition. The default
// value, when present, is converted to the kind's Go type.
func BuildSpec(d SpecDef) (Spec, error) {
	kind, err := ParseKind(d.Type)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindString:
		return buildField(String(), d)
	case KindNumber:
		return buildField(Number(), d)
	case KindBool:
		return buildField(Bool(), d)
	case KindURL:
		return buildField(URL(), d)
	case KindEmail:
		return buildField(Email(), d)
	default:
		return buildField(JSON(), d)
	}
}

func buildField[T any](f *Field[T], d SpecDef) (Spec, error) {
	if d.Required {
		f.Required()
	}
	if d.Description != "" {
		f.Desc(d.Description)
	}
	if d.HasDefault {
		v, err := f.fromAny(d.Default)
		if err != nil {
			return nil, err
		}
		f.Default(v)
	}
	return f, nil
}

// --- Default Conversion ---

func stringFromAny(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string default, got %T", v)
	}
	return s, nil
}

func numberFromAny(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected numeric default, got %T", v)
	}
}

func boolFromAny(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean default, got %T", v)
	}
	return b, nil
}

func anyFromAny(v any) (any, error) {
	return v, nil
}
