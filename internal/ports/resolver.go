package ports

import "github.com/felix-ide/felix/internal/domain/pyast"

// Resolver locates the source artifact behind a dotted module identifier.
// Lookups never panic and never return Go errors: every outcome, including
// malformed identifiers, is a pyast.Resolution value.
//
// Repeated lookups for the same identifier may be served from a cache;
// module locations are assumed stable for the worker's lifetime unless the
// cache is explicitly purged.
type Resolver interface {
	Resolve(name string) pyast.Resolution
}

// ResolutionCache stores resolution outcomes keyed by module identifier.
// Implementations must be safe for concurrent use; the daemon serves
// multiple connections.
type ResolutionCache interface {
	// Get returns the cached outcome and true on a hit.
	Get(name string) (pyast.Resolution, bool)

	// Put records an outcome. Storage failures are the adapter's problem —
	// a failed Put degrades to a future miss, never an error.
	Put(name string, res pyast.Resolution)

	// Purge drops every cached entry.
	Purge()
}

// Watcher monitors directories and reports changes, used to invalidate
// resolution caches when files under a search root move.
type Watcher interface {
	// Watch begins monitoring root recursively, invoking onChange with the
	// path of each changed file. Returns after the watch is installed;
	// delivery happens on a background goroutine until Stop.
	Watch(root string, onChange func(path string)) error

	// Stop ends monitoring and releases resources. Idempotent.
	Stop() error
}
