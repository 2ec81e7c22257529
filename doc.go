/*
Package sill validates environment variables at the threshold: before your
application crosses it.

It checks a declared schema against the process environment (or any injected
source), coerces raw strings into typed values, collects every failure into a
single ordered report instead of stopping at the first one, and hands back a
typed result your code can trust.

# Concept

Sill separates three things that environment handling usually tangles
together: the Schema (what your application needs, declared once), the Source
(where raw values come from: process env, .env files, remote stores), and the
Result (typed values after coercion and validation). The validation engine is
pure and synchronous; sources are injected, so the same schema validates the
real environment in production and a plain map in tests.

# Key Features

  - Collect-all errors: one run reports every missing and invalid variable, in schema order.
  - Typed coercion: string, number, boolean, url, email and json kinds with strict parsing rules.
  - Defaults and predicates: optional values with fallbacks, plus custom checks that run on defaults too.
  - File tooling: parse .env files, generate annotated examples, classify and sync them.

# Usage

Declare the schema once and validate at startup:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/sill"
		"github.com/aretw0/sill/pkg/schema"
	)

	func main() {
		s := schema.New().
			Add("HOST", schema.String().Required().Desc("bind address")).
			Add("PORT", schema.Number().Default(3000).Check(func(v float64) bool {
				return v >= 1000 && v <= 9999
			})).
			Add("DEBUG", schema.Bool().Default(false))

		res, err := sill.Validate(s)
		if err != nil {
			// The error lists every failing variable at once.
			log.Fatal(err)
		}

		fmt.Printf("listening on %s:%d\n", res.String("HOST"), int(res.Number("PORT")))
	}

Or decode straight into a struct:

	var cfg struct {
		Host  string  `env:"HOST"`
		Port  int     `env:"PORT"`
		Debug bool    `env:"DEBUG"`
	}
	res := sill.MustValidate(s)
	if err := sill.Decode(res, &cfg); err != nil {
		log.Fatal(err)
	}
*/
package sill
