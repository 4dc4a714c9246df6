package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

func openCache(t *testing.T, path string) *Cache {
	t.Helper()
	c, err := NewCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := openCache(t, filepath.Join(t.TempDir(), "cache.db"))

	res := pyast.Resolution{Status: pyast.Resolved, Path: "/src/mod.py"}
	c.Put("mod", res)

	got, ok := c.Get("mod")
	require.True(t, ok)
	assert.Equal(t, res, got)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := openCache(t, filepath.Join(t.TempDir(), "cache.db"))

	_, ok := c.Get("never_stored")
	assert.False(t, ok)
}

func TestCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewCache(path)
	require.NoError(t, err)
	stored := pyast.Resolution{
		Status:  pyast.NotFound,
		Message: "No module named 'ghost'",
	}
	first.Put("ghost", stored)
	require.NoError(t, first.Close())

	second := openCache(t, path)
	got, ok := second.Get("ghost")
	require.True(t, ok)
	assert.Equal(t, stored, got)
}

func TestCache_Purge(t *testing.T) {
	c := openCache(t, filepath.Join(t.TempDir(), "cache.db"))

	c.Put("mod", pyast.Resolution{Status: pyast.Resolved, Path: "/src/mod.py"})
	c.Purge()

	_, ok := c.Get("mod")
	assert.False(t, ok)

	// Purging an already-empty cache is a no-op.
	c.Purge()
}
