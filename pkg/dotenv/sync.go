package dotenv

import (
	"fmt"

	"github.com/aretw0/sill/pkg/schema"
)

// Sync brings every target file up to date with the schema. For each field
// the precedence is: the target's own value, else the source file's value,
// else the field's default or example value. Each merged target is written
// in the annotated format; keys not present in the schema are dropped.
func Sync(s *schema.Schema, sourcePath string, targetPaths ...string) error {
	srcVars, err := ParseFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read sync source: %w", err)
	}

	for _, target := range targetPaths {
		tgtVars, err := ParseFile(target)
		if err != nil {
			return fmt.Errorf("failed to read sync target: %w", err)
		}

		doc := render(s, func(name string, spec schema.Spec) string {
			if v, ok := tgtVars[name]; ok {
				return v
			}
			if v, ok := srcVars[name]; ok {
				return v
			}
			return exampleValue(name, spec)
		})

		if err := writeAtomic(target, doc); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}

	return nil
}
