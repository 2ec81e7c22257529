// Package schema provides a type-safe validation system for environment
// variables and other flat string-to-string configuration sources.
//
// It defines a small closed type system (string, number, boolean, url, email,
// json) with per-field coercion from raw strings, required/default semantics
// and optional custom predicates. Schemas keep their fields in declaration
// order, which drives the ordering of error reports.
//
// Basic usage:
//
//	s := schema.New().
//	    Add("HOST", schema.String().Required().Desc("bind address")).
//	    Add("PORT", schema.Number().Default(3000)).
//	    Add("DEBUG", schema.Bool().Default(false))
//
//	res, err := schema.Validate(s, source.Environ())
//	if err != nil {
//	    // err is an *AggregateError listing every failing field
//	}
//	port := res.Number("PORT")
//
// Validation never stops at the first failure. Every field is resolved and
// every failure is collected, so a single run reports the complete state of
// the environment:
//
//	Environment validation failed:
//	  HOST: Required value is missing
//	  PORT: Invalid number
//
// Custom predicates refine a coerced value and run on defaults too:
//
//	schema.Number().Default(3000).Check(func(v float64) bool {
//	    return v >= 1000 && v <= 9999
//	})
//
// Specs can also be built dynamically from serialized definitions:
//
//	spec, err := schema.BuildSpec(schema.SpecDef{Type: "number", Required: true})
//
// This package is designed to be library-agnostic, with zero external
// dependencies beyond the Go standard library. It can be embedded in larger
// systems or extracted as a standalone library.
package schema
