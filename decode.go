package sill

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/sill/pkg/schema"
)

// Decode copies a validation result into a caller struct. Struct fields bind
// by `env` tag (falling back to the field name). Numeric results are float64
// and convert to integer fields; absent optional fields leave the target
// field at its zero value.
//
//	var cfg struct {
//	    Host string `env:"HOST"`
//	    Port int    `env:"PORT"`
//	}
//	err := sill.Decode(res, &cfg)
func Decode(res schema.Result, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "env",
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(res)); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}
