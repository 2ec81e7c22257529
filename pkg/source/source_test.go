package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Lookup(t *testing.T) {
	m := Map{"HOST": "localhost", "EMPTY": ""}

	v, ok := m.Lookup("HOST")
	assert.True(t, ok)
	assert.Equal(t, "localhost", v)

	// An empty value is still present.
	v, ok = m.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = m.Lookup("MISSING")
	assert.False(t, ok)
}

func TestEnviron_Snapshot(t *testing.T) {
	t.Setenv("SILL_TEST_VAR", "before")

	src := Environ()

	v, ok := src.Lookup("SILL_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "before", v)

	// The snapshot does not see later changes.
	t.Setenv("SILL_TEST_VAR", "after")
	v, _ = src.Lookup("SILL_TEST_VAR")
	assert.Equal(t, "before", v)
}

func TestChain_FirstHitWins(t *testing.T) {
	env := Map{"PORT": "9000"}
	file := Map{"PORT": "3000", "HOST": "localhost"}

	src := Chain(env, file)

	v, ok := src.Lookup("PORT")
	require.True(t, ok)
	assert.Equal(t, "9000", v, "earlier sources take precedence")

	v, ok = src.Lookup("HOST")
	require.True(t, ok)
	assert.Equal(t, "localhost", v)

	_, ok = src.Lookup("MISSING")
	assert.False(t, ok)
}

func TestChain_SkipsNilSources(t *testing.T) {
	src := Chain(nil, Map{"A": "1"})

	v, ok := src.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestPrefix(t *testing.T) {
	src := Prefix(Map{"APP_PORT": "8080"}, "APP_")

	v, ok := src.Lookup("PORT")
	require.True(t, ok)
	assert.Equal(t, "8080", v)

	_, ok = src.Lookup("APP_PORT")
	assert.False(t, ok, "the prefix applies to every lookup")
}
