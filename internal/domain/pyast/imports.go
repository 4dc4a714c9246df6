package pyast

// ImportForm distinguishes the two recognized import statement shapes.
type ImportForm string

const (
	// FormDirect is `import a.b, c as d` — names only, no module qualifier.
	FormDirect ImportForm = "Direct"
	// FormFromModule is `from .mod import x as y` — module qualifier plus
	// a name list, with a relative-import level.
	FormFromModule ImportForm = "FromModule"
)

// WildcardName is the sentinel name for `from mod import *`.
const WildcardName = "*"

// ImportedName is one `name [as alias]` entry of an import statement.
type ImportedName struct {
	Name  string  `json:"name"`
	Alias *string `json:"alias"`
}

// ImportRecord is one declared import, positioned at its statement.
// Records are produced in source order and never reordered.
type ImportRecord struct {
	Form   ImportForm     `json:"form"`
	Module *string        `json:"module"`
	Level  int            `json:"level"`
	Names  []ImportedName `json:"names"`
	Line   int            `json:"line"`
	Column int            `json:"column"`
}
