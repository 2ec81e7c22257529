package dotenv

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sill/pkg/schema"
)

// GenerateExample renders the schema as an annotated env document. Every
// field gets its annotation comments (description, type, required, default,
// custom validation marker) followed by KEY=value, where the value is the
// formatted default or the kind's example value.
func GenerateExample(s *schema.Schema) []byte {
	return render(s, exampleValue)
}

// WriteExample writes the generated example document to path atomically.
func WriteExample(s *schema.Schema, path string) error {
	return writeAtomic(path, GenerateExample(s))
}

// render produces the annotated document with one value per field, chosen by
// valueFor. Parsing the output yields exactly those values back.
func render(s *schema.Schema, valueFor func(name string, spec schema.Spec) string) []byte {
	var b bytes.Buffer

	for i, name := range s.Names() {
		spec, _ := s.Get(name)
		if i > 0 {
			b.WriteByte('\n')
		}
		if d := spec.Description(); d != "" {
			fmt.Fprintf(&b, "# %s\n", d)
		}
		fmt.Fprintf(&b, "# Type: %s\n", spec.Kind())
		if spec.IsRequired() {
			b.WriteString("# Required\n")
		}
		if def, ok := spec.DefaultValue(); ok {
			fmt.Fprintf(&b, "# Default: %s\n", schema.FormatValue(def))
		}
		if spec.HasCheck() {
			b.WriteString("# Has custom validation\n")
		}
		fmt.Fprintf(&b, "%s=%s\n", name, quoteIfNeeded(valueFor(name, spec)))
	}

	return b.Bytes()
}

func exampleValue(_ string, spec schema.Spec) string {
	if def, ok := spec.DefaultValue(); ok {
		return schema.FormatValue(def)
	}
	return spec.Kind().ExampleValue()
}

// quoteIfNeeded wraps values the parser would otherwise mangle: surrounding
// whitespace would be trimmed away, and an already-quoted value would lose
// its quotes.
func quoteIfNeeded(v string) string {
	if v != strings.TrimSpace(v) {
		return `"` + v + `"`
	}
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '"' || first == '\'') {
			return `"` + v + `"`
		}
	}
	return v
}

// writeAtomic replaces path with data via a temp file in the same directory,
// an fsync and a rename, so readers never observe a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Remove the temp file if anything below fails before the rename.
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if the destination exists.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
