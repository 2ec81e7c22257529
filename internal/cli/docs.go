package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/sill/internal/presentation/tui"
	"github.com/aretw0/sill/pkg/schema"
	"github.com/aretw0/sill/pkg/schemafile"
)

// DocsOptions contains the configuration for the docs command.
type DocsOptions struct {
	SchemaPath string
	Raw        bool

	// Out receives the rendered document. Defaults to os.Stdout.
	Out io.Writer
}

// RunDocs renders the schema as a markdown reference. On a terminal the
// markdown is styled with glamour; piped output stays raw.
func RunDocs(opts DocsOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	s, err := schemafile.Load(opts.SchemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	md := RenderDocs(s)

	if !opts.Raw && isTerminal(out) {
		render := tui.NewRenderer()
		if pretty, err := render(md); err == nil {
			fmt.Fprint(out, pretty)
			return nil
		}
	}
	fmt.Fprint(out, md)
	return nil
}

// RenderDocs builds a markdown reference for every field in the schema.
func RenderDocs(s *schema.Schema) string {
	var b strings.Builder
	b.WriteString("# Environment Variables\n\n")
	b.WriteString("| Name | Type | Required | Default | Description |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, name := range s.Names() {
		spec, _ := s.Get(name)
		required := "no"
		if spec.IsRequired() {
			required = "yes"
		}
		def := ""
		if v, ok := spec.DefaultValue(); ok {
			def = "`" + schema.FormatValue(v) + "`"
		}
		desc := spec.Description()
		if spec.HasCheck() {
			if desc != "" {
				desc += " "
			}
			desc += "(custom validation)"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
			name, spec.Kind(), required, escapeCell(def), escapeCell(desc))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
