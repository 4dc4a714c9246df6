// Package treesitter implements the ports.Parser contract using the
// tree-sitter Python grammar. It parses source text, localizes syntax
// errors, serializes the tree into the generic node representation, and
// extracts import statements.
package treesitter

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

// Parser implements ports.Parser for Python source.
type Parser struct {
	lang *tree_sitter.Language
}

// NewParser creates a parser with the compiled-in Python grammar.
func NewParser() *Parser {
	return &Parser{lang: tree_sitter.NewLanguage(tree_sitter_python.Language())}
}

// Parse parses content and returns the serialized tree. label attributes
// diagnostics only; it is never opened.
func (p *Parser) Parse(content []byte, label string) (*pyast.Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxErrorAt(root, label)
	}
	return serializeTree(root, content)
}

// ExtractImports parses content and collects every import statement in a
// single pre-order walk, so records come back in source order.
func (p *Parser) ExtractImports(content []byte, label string) ([]pyast.ImportRecord, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxErrorAt(root, label)
	}
	records := []pyast.ImportRecord{}
	collectImports(root, content, &records)
	return records, nil
}

func (p *Parser) parse(content []byte) (*tree_sitter.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(p.lang); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}
	return parser.Parse(content, nil), nil
}

// syntaxErrorAt reports the first ERROR or MISSING node, pre-order, with a
// 1-based line and offset the way CPython reports SyntaxError.
func syntaxErrorAt(root *tree_sitter.Node, label string) *pyast.SyntaxError {
	bad := firstErrorNode(root)
	if bad == nil {
		bad = root
	}
	pos := bad.StartPosition()
	line := int(pos.Row) + 1
	offset := int(pos.Column) + 1
	return &pyast.SyntaxError{
		Message: fmt.Sprintf("invalid syntax (%s, line %d)", label, line),
		Line:    line,
		Offset:  offset,
	}
}

func firstErrorNode(n *tree_sitter.Node) *tree_sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		c := n.Child(i)
		if !c.HasError() && !c.IsMissing() {
			continue
		}
		if found := firstErrorNode(c); found != nil {
			return found
		}
	}
	return nil
}
