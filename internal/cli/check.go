package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/sill/pkg/dotenv"
	"github.com/aretw0/sill/pkg/schema"
	"github.com/aretw0/sill/pkg/schemafile"
	"github.com/aretw0/sill/pkg/source"
)

// ErrEnvironmentInvalid marks a check that ran to completion and found
// problems, as opposed to a check that could not run at all. The report has
// already been printed when this is returned.
var ErrEnvironmentInvalid = errors.New("environment validation failed")

// CheckOptions contains all the configuration for the check command.
type CheckOptions struct {
	SchemaPath string
	EnvFiles   []string
	NoEnviron  bool
	JSON       bool
	Debug      bool

	// Out receives the report and system messages. Defaults to os.Stdout.
	Out io.Writer
}

// RunCheck loads the schema, assembles the lookup chain and prints a report.
// It returns ErrEnvironmentInvalid when the environment does not satisfy the
// schema.
func RunCheck(opts CheckOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := createLogger(opts.Debug)

	s, err := schemafile.Load(opts.SchemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	src, err := BuildSource(opts.EnvFiles, opts.NoEnviron)
	if err != nil {
		return err
	}

	logger.Debug("running check",
		"schema", opts.SchemaPath,
		"fields", s.Len(),
		"env_files", len(opts.EnvFiles),
	)

	rep := schema.Classify(s, src)

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, RenderReport(rep, isTerminal(out)))
	}

	if !rep.OK() {
		logger.Debug("check failed", "missing", len(rep.Missing), "invalid", len(rep.Invalid))
		return ErrEnvironmentInvalid
	}
	return nil
}

// BuildSource layers the lookup chain for a check. The process environment
// takes precedence over env files; files apply in flag order.
func BuildSource(envFiles []string, noEnviron bool) (schema.Source, error) {
	sources := make([]schema.Source, 0, len(envFiles)+1)
	if !noEnviron {
		sources = append(sources, source.Environ())
	}
	for _, path := range envFiles {
		m, err := dotenv.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		sources = append(sources, m)
	}
	switch len(sources) {
	case 0:
		return source.Map{}, nil
	case 1:
		return sources[0], nil
	}
	return source.Chain(sources...), nil
}

// isTerminal reports whether w is an interactive terminal. Coloring is
// enabled only then, so piped output stays plain.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
