package schema

import "fmt"

// Kind identifies one of the built-in field types. The set is closed:
// every field specification is constructed through the factory for its kind.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindURL    Kind = "url"
	KindEmail  Kind = "email"
	KindJSON   Kind = "json"
)

func (k Kind) String() string { return string(k) }

// ParseKind converts a type name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindString, KindNumber, KindBool, KindURL, KindEmail, KindJSON:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unsupported type: %s", s)
	}
}

// ExampleValue returns a placeholder raw value for the kind, used when
// generating example files for fields that carry no default.
func (k Kind) ExampleValue() string {
	switch k {
	case KindNumber:
		return "3000"
	case KindBool:
		return "true"
	case KindURL:
		return "https://example.com"
	case KindEmail:
		return "user@example.com"
	case KindJSON:
		return `{"key": "value"}`
	default:
		return "example_value"
	}
}
