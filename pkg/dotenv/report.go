package dotenv

import (
	"github.com/aretw0/sill/pkg/schema"
)

// ValidateFile classifies every schema field against the env file at path.
// A missing file is classified as an empty environment.
func ValidateFile(s *schema.Schema, path string) (*schema.Report, error) {
	vars, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return schema.Classify(s, vars), nil
}
