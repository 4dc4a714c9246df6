// Package lru implements an in-process ports.ResolutionCache on
// hashicorp/golang-lru. This is the default cache for batch and serve
// modes, where resolutions only need to survive a single session.
package lru

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

// DefaultSize bounds the cache when no size is configured.
const DefaultSize = 4096

// Cache is a bounded in-memory resolution cache. Safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, pyast.Resolution]
}

// NewCache creates a cache holding at most size resolutions.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, pyast.Resolution](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached outcome and true on a hit.
func (c *Cache) Get(name string) (pyast.Resolution, bool) {
	return c.entries.Get(name)
}

// Put records an outcome.
func (c *Cache) Put(name string, res pyast.Resolution) {
	c.entries.Add(name, res)
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.entries.Purge()
}
