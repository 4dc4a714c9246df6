package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

func TestCache_PutGet(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)

	res := pyast.Resolution{Status: pyast.Resolved, Path: "/src/pkg/__init__.py"}
	c.Put("pkg", res)

	got, ok := c.Get("pkg")
	require.True(t, ok)
	assert.Equal(t, res, got)

	_, ok = c.Get("other")
	assert.False(t, ok)
}

func TestCache_Eviction(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	c.Put("a", pyast.Resolution{Status: pyast.Resolved, Path: "/a.py"})
	c.Put("b", pyast.Resolution{Status: pyast.Resolved, Path: "/b.py"})
	c.Put("c", pyast.Resolution{Status: pyast.Resolved, Path: "/c.py"})

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCache_Purge(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)

	c.Put("pkg", pyast.Resolution{Status: pyast.NotFound, Message: "No module named 'pkg'"})
	c.Purge()

	_, ok := c.Get("pkg")
	assert.False(t, ok)
}

func TestNewCache_DefaultsNonPositiveSize(t *testing.T) {
	c, err := NewCache(0)
	require.NoError(t, err)

	c.Put("x", pyast.Resolution{Status: pyast.Resolved, Path: pyast.BuiltinPath})
	_, ok := c.Get("x")
	assert.True(t, ok)
}
