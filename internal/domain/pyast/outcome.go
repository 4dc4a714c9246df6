package pyast

import "fmt"

// SyntaxError reports source text that does not conform to the grammar.
// Line and Offset are 1-based; zero means the parser could not localize
// the failure.
type SyntaxError struct {
	Message string
	Line    int
	Offset  int
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// ShapeError reports a native node whose production is absent from the
// grammar field schema. It signals a programming error in the schema table,
// not bad user input, and is surfaced to callers as a distinct class.
type ShapeError struct {
	Kind string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("no field schema for production %q", e.Kind)
}

// ResolutionStatus tags the outcome of a module lookup.
type ResolutionStatus int

const (
	// Resolved means the module maps to a source artifact (or the builtin
	// sentinel path).
	Resolved ResolutionStatus = iota
	// NotFound means the module does not exist on any search root.
	NotFound
	// ResolveFailed means the lookup itself failed (e.g. malformed name).
	ResolveFailed
)

// BuiltinPath marks a built-in/compiled module with no source file.
const BuiltinPath = "builtin"

// Resolution is the outcome of resolving a dotted module identifier.
type Resolution struct {
	Status  ResolutionStatus
	Path    string // set when Status == Resolved; may be BuiltinPath
	Kind    string // failure classification when Status == ResolveFailed
	Message string // set for NotFound and ResolveFailed
}
