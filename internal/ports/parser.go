// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. The dispatcher and
// session loop depend only on these interfaces, never on concrete
// implementations.
package ports

import "github.com/felix-ide/felix/internal/domain/pyast"

// Parser turns raw source text into the serializable tree representation and
// derived import records. The concrete implementation (tree-sitter) lives in
// internal/adapters/treesitter.
//
// Both methods are read-only and safe for sequential reuse across requests.
// Expected failures come back as typed errors: *pyast.SyntaxError when the
// text does not conform to the grammar, *pyast.ShapeError when the serializer
// meets a production missing from its schema.
type Parser interface {
	// Parse parses content and returns the serialized tree. label is used
	// only to attribute diagnostics (it is never opened as a file).
	Parse(content []byte, label string) (*pyast.Node, error)

	// ExtractImports parses content and returns every import statement in
	// source order, including imports nested inside functions, conditionals,
	// and try blocks.
	ExtractImports(content []byte, label string) ([]pyast.ImportRecord, error)
}
