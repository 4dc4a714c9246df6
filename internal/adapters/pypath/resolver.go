// Package pypath implements the ports.Resolver contract with a search-path
// module lookup modeled on CPython's import machinery: builtin table first,
// then each configured root in order, packages before plain modules.
// Lookups are read-only — nothing is executed or imported.
package pypath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/felix-ide/felix/internal/domain/pyast"
	"github.com/felix-ide/felix/internal/ports"
)

// ErrInvalidModuleName classifies lookups that fail before any search
// happens (empty segments, non-identifier characters).
const ErrInvalidModuleName = "InvalidModuleName"

// Resolver locates Python modules on a fixed list of search roots.
type Resolver struct {
	roots []string
	cache ports.ResolutionCache
}

// NewResolver creates a resolver over the given roots. cache may be nil,
// which disables memoization.
func NewResolver(roots []string, cache ports.ResolutionCache) *Resolver {
	return &Resolver{roots: roots, cache: cache}
}

// DefaultRoots returns the search roots used when none are configured:
// the working directory followed by PYTHONPATH entries, in order.
func DefaultRoots() []string {
	roots := []string{"."}
	for _, p := range filepath.SplitList(os.Getenv("PYTHONPATH")) {
		if p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}

// Resolve implements ports.Resolver. Outcomes are cached; module locations
// are assumed stable for the worker's lifetime unless the cache is purged.
func (r *Resolver) Resolve(name string) pyast.Resolution {
	if r.cache != nil {
		if res, ok := r.cache.Get(name); ok {
			return res
		}
	}
	res := r.lookup(name)
	if r.cache != nil {
		r.cache.Put(name, res)
	}
	return res
}

func (r *Resolver) lookup(name string) pyast.Resolution {
	segments, err := splitModuleName(name)
	if err != nil {
		return pyast.Resolution{
			Status:  pyast.ResolveFailed,
			Kind:    ErrInvalidModuleName,
			Message: err.Error(),
		}
	}

	if builtinModules[name] {
		return pyast.Resolution{Status: pyast.Resolved, Path: pyast.BuiltinPath}
	}

	rel := filepath.Join(segments...)
	for _, root := range r.roots {
		// Package first, CPython order.
		pkg := filepath.Join(root, rel, "__init__.py")
		if isFile(pkg) {
			return found(pkg)
		}
		mod := filepath.Join(root, rel+".py")
		if isFile(mod) {
			return found(mod)
		}
		// Bare directory: namespace package (PEP 420).
		if isDir(filepath.Join(root, rel)) {
			return found(filepath.Join(root, rel))
		}
	}

	return pyast.Resolution{
		Status:  pyast.NotFound,
		Message: fmt.Sprintf("No module named '%s'", name),
	}
}

func found(path string) pyast.Resolution {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return pyast.Resolution{Status: pyast.Resolved, Path: abs}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// splitModuleName validates a dotted identifier and returns its segments.
func splitModuleName(name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("empty module name")
	}
	segments := strings.Split(name, ".")
	for _, seg := range segments {
		if !isIdentifier(seg) {
			return nil, fmt.Errorf("invalid module name %q", name)
		}
	}
	return segments, nil
}

// isIdentifier follows Python's identifier rules: letters and underscore
// anywhere, digits after the first rune. Unicode letters are legal module
// names and map to filenames as-is.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
