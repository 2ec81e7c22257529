package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sill/pkg/schema"
)

func TestValidateFile(t *testing.T) {
	s := schema.New().
		Add("HOST", schema.String().Required()).
		Add("PORT", schema.Number().Required()).
		Add("DEBUG", schema.Bool().Default(false))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=abc\n"), 0644))

	rep, err := ValidateFile(s, path)
	require.NoError(t, err)

	assert.Equal(t, []string{"HOST"}, rep.Missing)
	require.Len(t, rep.Invalid, 1)
	assert.Equal(t, "PORT", rep.Invalid[0].Field)
	assert.Equal(t, schema.ReasonInvalidNumber, rep.Invalid[0].Reason)
	assert.Equal(t, []string{"DEBUG"}, rep.Valid)
	assert.False(t, rep.OK())
}

func TestValidateFile_MissingFileIsEmptyEnvironment(t *testing.T) {
	s := schema.New().
		Add("HOST", schema.String().Required()).
		Add("PORT", schema.Number().Default(3000))

	rep, err := ValidateFile(s, filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)

	assert.Equal(t, []string{"HOST"}, rep.Missing)
	assert.Empty(t, rep.Invalid)
	assert.Equal(t, []string{"PORT"}, rep.Valid, "defaulted fields stay valid without a file")
}

func TestValidateFile_AllValid(t *testing.T) {
	s := schema.New().
		Add("HOST", schema.String().Required()).
		Add("PORT", schema.Number().Required())

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HOST=localhost\nPORT=3000\n"), 0644))

	rep, err := ValidateFile(s, path)
	require.NoError(t, err)
	assert.True(t, rep.OK())
}
