package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sill/pkg/schema"
)

func syncSchema() *schema.Schema {
	return schema.New().
		Add("A", schema.String()).
		Add("B", schema.String()).
		Add("C", schema.Number().Default(3000)).
		Add("D", schema.Email())
}

func TestSync_Precedence(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".env")
	tgt := filepath.Join(dir, ".env.local")

	require.NoError(t, os.WriteFile(src, []byte("A=from-source\nB=from-source\n"), 0644))
	require.NoError(t, os.WriteFile(tgt, []byte("B=kept-in-target\n"), 0644))

	require.NoError(t, Sync(syncSchema(), src, tgt))

	vars, err := ParseFile(tgt)
	require.NoError(t, err)

	// 1. The target's own value wins.
	assert.Equal(t, "kept-in-target", vars["B"])
	// 2. Otherwise the source value fills in.
	assert.Equal(t, "from-source", vars["A"])
	// 3. Otherwise the default or example value.
	assert.Equal(t, "3000", vars["C"])
	assert.Equal(t, "user@example.com", vars["D"])
}

func TestSync_MultipleTargets(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".env")
	t1 := filepath.Join(dir, ".env.staging")
	t2 := filepath.Join(dir, ".env.production")

	require.NoError(t, os.WriteFile(src, []byte("A=shared\n"), 0644))
	require.NoError(t, os.WriteFile(t2, []byte("A=prod-override\n"), 0644))

	require.NoError(t, Sync(syncSchema(), src, t1, t2))

	v1, err := ParseFile(t1)
	require.NoError(t, err)
	v2, err := ParseFile(t2)
	require.NoError(t, err)

	assert.Equal(t, "shared", v1["A"])
	assert.Equal(t, "prod-override", v2["A"])
}

func TestSync_MissingSourceActsEmpty(t *testing.T) {
	dir := t.TempDir()
	tgt := filepath.Join(dir, ".env.local")

	require.NoError(t, Sync(syncSchema(), filepath.Join(dir, "missing.env"), tgt))

	vars, err := ParseFile(tgt)
	require.NoError(t, err)
	assert.Equal(t, "example_value", vars["A"])
	assert.Equal(t, "3000", vars["C"])
}

func TestSync_Idempotent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".env")
	tgt := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(src, []byte("A=1\n"), 0644))

	s := syncSchema()
	require.NoError(t, Sync(s, src, tgt))
	first, err := os.ReadFile(tgt)
	require.NoError(t, err)

	require.NoError(t, Sync(s, src, tgt))
	second, err := os.ReadFile(tgt)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
