package sill

import (
	"io"
	"log/slog"

	"github.com/aretw0/sill/pkg/schema"
	"github.com/aretw0/sill/pkg/source"
)

// options configures a single validation pass.
type options struct {
	src    schema.Source
	logger *slog.Logger
}

// Option defines a functional option for Validate, MustValidate and Check.
type Option func(*options)

// WithSource overrides the default process-environment snapshot.
func WithSource(src schema.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithLogger attaches a structured logger to the pass. The core engine stays
// silent; logging happens here at the facade.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = source.Environ()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return o
}

// Validate resolves every schema field against the configured source (the
// process environment by default). On failure it returns a
// *schema.AggregateError listing every failing field in schema order.
func Validate(s *schema.Schema, opts ...Option) (schema.Result, error) {
	o := buildOptions(opts)

	res, err := schema.Validate(s, o.src)
	if err != nil {
		o.logger.Error("environment validation failed",
			"error", err,
			"failures", len(schema.FieldErrors(err)),
		)
		return nil, err
	}

	o.logger.Debug("environment validated", "fields", s.Len())
	return res, nil
}

// MustValidate is Validate for program startup: it panics with the aggregate
// error when the environment does not satisfy the schema.
func MustValidate(s *schema.Schema, opts ...Option) schema.Result {
	res, err := Validate(s, opts...)
	if err != nil {
		panic(err)
	}
	return res
}

// Check classifies every schema field against the source without producing
// values or failing. Useful for diagnostics and readiness probes.
func Check(s *schema.Schema, opts ...Option) *schema.Report {
	o := buildOptions(opts)
	return schema.Classify(s, o.src)
}
