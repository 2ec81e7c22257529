package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sill/pkg/schema"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const checkSchema = `vars:
  SILL_TEST_HOST:
    type: string
    required: true
  SILL_TEST_PORT:
    type: number
    default: 3000
`

func TestRunCheck(t *testing.T) {
	t.Run("valid environment from env file", func(t *testing.T) {
		dir := t.TempDir()
		schemaPath := writeFile(t, dir, "sill.yaml", checkSchema)
		envPath := writeFile(t, dir, ".env", "SILL_TEST_HOST=localhost\n")

		var out bytes.Buffer
		err := RunCheck(CheckOptions{
			SchemaPath: schemaPath,
			EnvFiles:   []string{envPath},
			NoEnviron:  true,
			Out:        &out,
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "SILL_TEST_HOST")
		assert.Contains(t, out.String(), "Environment is valid!")
	})

	t.Run("invalid environment returns sentinel", func(t *testing.T) {
		dir := t.TempDir()
		schemaPath := writeFile(t, dir, "sill.yaml", checkSchema)

		var out bytes.Buffer
		err := RunCheck(CheckOptions{
			SchemaPath: schemaPath,
			NoEnviron:  true,
			Out:        &out,
		})
		require.ErrorIs(t, err, ErrEnvironmentInvalid)
		assert.Contains(t, out.String(), "SILL_TEST_HOST  Required value is missing")
		assert.Contains(t, out.String(), "Environment validation failed: 1 problem(s) found.")
	})

	t.Run("json report", func(t *testing.T) {
		dir := t.TempDir()
		schemaPath := writeFile(t, dir, "sill.yaml", checkSchema)

		var out bytes.Buffer
		err := RunCheck(CheckOptions{
			SchemaPath: schemaPath,
			NoEnviron:  true,
			JSON:       true,
			Out:        &out,
		})
		require.ErrorIs(t, err, ErrEnvironmentInvalid)

		var rep schema.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
		assert.Equal(t, []string{"SILL_TEST_HOST"}, rep.Missing)
		assert.Equal(t, []string{"SILL_TEST_PORT"}, rep.Valid)
	})

	t.Run("unreadable schema is not a validation failure", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCheck(CheckOptions{
			SchemaPath: filepath.Join(t.TempDir(), "absent.yaml"),
			Out:        &out,
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEnvironmentInvalid)
	})
}

func TestBuildSource(t *testing.T) {
	t.Run("process environment wins over files", func(t *testing.T) {
		t.Setenv("SILL_TEST_LAYER", "from-environ")
		envPath := writeFile(t, t.TempDir(), ".env", "SILL_TEST_LAYER=from-file\nSILL_TEST_FILE_ONLY=yes\n")

		src, err := BuildSource([]string{envPath}, false)
		require.NoError(t, err)

		v, ok := src.Lookup("SILL_TEST_LAYER")
		require.True(t, ok)
		assert.Equal(t, "from-environ", v)

		v, ok = src.Lookup("SILL_TEST_FILE_ONLY")
		require.True(t, ok)
		assert.Equal(t, "yes", v)
	})

	t.Run("no-environ skips the process environment", func(t *testing.T) {
		t.Setenv("SILL_TEST_LAYER", "from-environ")
		envPath := writeFile(t, t.TempDir(), ".env", "SILL_TEST_LAYER=from-file\n")

		src, err := BuildSource([]string{envPath}, true)
		require.NoError(t, err)

		v, ok := src.Lookup("SILL_TEST_LAYER")
		require.True(t, ok)
		assert.Equal(t, "from-file", v)
	})

	t.Run("files apply in flag order", func(t *testing.T) {
		dir := t.TempDir()
		first := writeFile(t, dir, "a.env", "SILL_TEST_ORDER=first\n")
		second := writeFile(t, dir, "b.env", "SILL_TEST_ORDER=second\n")

		src, err := BuildSource([]string{first, second}, true)
		require.NoError(t, err)

		v, _ := src.Lookup("SILL_TEST_ORDER")
		assert.Equal(t, "first", v)
	})

	t.Run("missing env file is an empty layer", func(t *testing.T) {
		src, err := BuildSource([]string{filepath.Join(t.TempDir(), "absent.env")}, true)
		require.NoError(t, err)

		_, ok := src.Lookup("ANYTHING")
		assert.False(t, ok)
	})
}
