package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

// collectImports walks the full tree pre-order, so imports nested inside
// functions, conditionals, and try blocks are found and the output stays in
// source order. Non-import nodes are visited but produce no record.
func collectImports(n *tree_sitter.Node, source []byte, out *[]pyast.ImportRecord) {
	switch n.Kind() {
	case "import_statement":
		*out = append(*out, directImport(n, source))
	case "import_from_statement", "future_import_statement":
		*out = append(*out, fromImport(n, source))
	}

	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		collectImports(n.Child(i), source, out)
	}
}

// directImport handles `import a.b, c as d`.
func directImport(n *tree_sitter.Node, source []byte) pyast.ImportRecord {
	rec := pyast.ImportRecord{
		Form:   pyast.FormDirect,
		Level:  0,
		Names:  []pyast.ImportedName{},
		Line:   int(n.StartPosition().Row) + 1,
		Column: int(n.StartPosition().Column),
	}
	count := n.NamedChildCount()
	for i := uint(0); i < count; i++ {
		c := n.NamedChild(i)
		if name, ok := importedName(c, source); ok {
			rec.Names = append(rec.Names, name)
		}
	}
	return rec
}

// fromImport handles `from [dots][module] import ...`, including the
// wildcard form and `from __future__ import ...`.
func fromImport(n *tree_sitter.Node, source []byte) pyast.ImportRecord {
	rec := pyast.ImportRecord{
		Form:   pyast.FormFromModule,
		Names:  []pyast.ImportedName{},
		Line:   int(n.StartPosition().Row) + 1,
		Column: int(n.StartPosition().Column),
	}

	if n.Kind() == "future_import_statement" {
		future := "__future__"
		rec.Module = &future
	}

	moduleNode := n.ChildByFieldName("module_name")
	if moduleNode != nil {
		switch moduleNode.Kind() {
		case "relative_import":
			rec.Level, rec.Module = relativeTarget(moduleNode, source)
		case "dotted_name":
			mod := nodeText(moduleNode, source)
			rec.Module = &mod
		}
	}

	count := n.NamedChildCount()
	for i := uint(0); i < count; i++ {
		c := n.NamedChild(i)
		if moduleNode != nil && c.Id() == moduleNode.Id() {
			continue
		}
		if c.Kind() == "wildcard_import" {
			rec.Names = append(rec.Names, pyast.ImportedName{Name: pyast.WildcardName})
			continue
		}
		if name, ok := importedName(c, source); ok {
			rec.Names = append(rec.Names, name)
		}
	}
	return rec
}

// relativeTarget decodes `..pkg.mod` into (level, module). A bare dot run
// (`from .. import x`) has no module qualifier at all.
func relativeTarget(n *tree_sitter.Node, source []byte) (int, *string) {
	level := 0
	var module *string
	count := n.NamedChildCount()
	for i := uint(0); i < count; i++ {
		c := n.NamedChild(i)
		switch c.Kind() {
		case "import_prefix":
			level = strings.Count(nodeText(c, source), ".")
		case "dotted_name":
			mod := nodeText(c, source)
			module = &mod
		}
	}
	return level, module
}

// importedName decodes a dotted_name or aliased_import entry.
func importedName(n *tree_sitter.Node, source []byte) (pyast.ImportedName, bool) {
	switch n.Kind() {
	case "dotted_name":
		return pyast.ImportedName{Name: nodeText(n, source)}, true
	case "aliased_import":
		name := ""
		if nn := n.ChildByFieldName("name"); nn != nil {
			name = nodeText(nn, source)
		}
		var alias *string
		if an := n.ChildByFieldName("alias"); an != nil {
			a := nodeText(an, source)
			alias = &a
		}
		return pyast.ImportedName{Name: name, Alias: alias}, true
	}
	return pyast.ImportedName{}, false
}
