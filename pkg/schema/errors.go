package schema

import (
	"errors"
	"strings"
)

// SummaryMessage is the top-level message carried by every AggregateError.
const SummaryMessage = "Environment validation failed"

// Reason strings are the stable, user-facing contract of this package.
// They are never reworded or localized.
const (
	ReasonMissing       = "Required value is missing"
	ReasonInvalidNumber = "Invalid number"
	ReasonInvalidBool   = "Invalid boolean"
	ReasonInvalidURL    = "Invalid URL"
	ReasonInvalidEmail  = "Invalid email"
	ReasonInvalidJSON   = "Invalid JSON"
	ReasonCheckFailed   = "Custom validation failed"
)

// Sentinel errors returned by single-field resolution. Their messages are
// exactly the reason strings above.
var (
	ErrMissing       = errors.New(ReasonMissing)
	ErrInvalidNumber = errors.New(ReasonInvalidNumber)
	ErrInvalidBool   = errors.New(ReasonInvalidBool)
	ErrInvalidURL    = errors.New(ReasonInvalidURL)
	ErrInvalidEmail  = errors.New(ReasonInvalidEmail)
	ErrInvalidJSON   = errors.New(ReasonInvalidJSON)
	ErrCheckFailed   = errors.New(ReasonCheckFailed)
)

// FieldError represents a single field validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// AggregateError represents every validation failure of one whole-schema
// pass. Fields appear in schema declaration order.
type AggregateError struct {
	Message string
	Fields  []*FieldError
}

func (e *AggregateError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ":\n  " + strings.Join(e.Messages(), "\n  ")
}

// Messages returns the ordered "<field>: <reason>" strings.
func (e *AggregateError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return msgs
}

// FieldErrors returns all field failures if err is an AggregateError.
// Otherwise returns nil.
func FieldErrors(err error) []*FieldError {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Fields
	}
	return nil
}
