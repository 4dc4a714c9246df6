// Package app wires the parser and resolver adapters behind the request
// dispatcher and the session loop. The dispatcher is stateless across
// requests; the only state shared between requests is the resolver's cache.
package app

import (
	"log/slog"

	"github.com/felix-ide/felix/internal/adapters/lru"
	"github.com/felix-ide/felix/internal/adapters/pypath"
	"github.com/felix-ide/felix/internal/adapters/treesitter"
	"github.com/felix-ide/felix/internal/config"
	"github.com/felix-ide/felix/internal/ports"
)

// Options configures a fully wired App.
type Options struct {
	// SearchPaths are the module resolution roots. Empty means working
	// directory plus PYTHONPATH.
	SearchPaths []string

	// Cache overrides the resolution cache. Nil means a bounded in-memory
	// LRU of CacheSize entries.
	Cache ports.ResolutionCache

	// CacheSize bounds the default cache. Zero means the config default.
	CacheSize int

	// MaxFrameBytes bounds one framed request line. Zero means the config
	// default.
	MaxFrameBytes int

	// Logger receives lifecycle and internal-error events. Nil discards.
	Logger *slog.Logger
}

// App owns the wired capabilities for one worker process.
type App struct {
	parser   ports.Parser
	resolver ports.Resolver
	cache    ports.ResolutionCache
	log      *slog.Logger
	maxFrame int
}

// New creates an App with the tree-sitter parser and the search-path
// resolver.
func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cache := opts.Cache
	if cache == nil {
		size := opts.CacheSize
		if size <= 0 {
			size = config.DefaultCacheSize
		}
		var err error
		cache, err = lru.NewCache(size)
		if err != nil {
			return nil, err
		}
	}

	roots := opts.SearchPaths
	if len(roots) == 0 {
		roots = pypath.DefaultRoots()
	}

	maxFrame := opts.MaxFrameBytes
	if maxFrame <= 0 {
		maxFrame = config.DefaultMaxFrameBytes
	}

	return &App{
		parser:   treesitter.NewParser(),
		resolver: pypath.NewResolver(roots, cache),
		cache:    cache,
		log:      logger,
		maxFrame: maxFrame,
	}, nil
}

// Cache exposes the resolution cache so daemon mode can purge it when the
// watcher reports changes under a search root.
func (a *App) Cache() ports.ResolutionCache {
	return a.cache
}
