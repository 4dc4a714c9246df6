package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

// serializeTree converts a parsed tree into the generic node representation.
// Pure function of the tree and source; field order comes from the
// productions table, so repeated serialization is byte-identical.
func serializeTree(root *tree_sitter.Node, source []byte) (*pyast.Node, error) {
	return serializeNode(root, source)
}

func serializeNode(n *tree_sitter.Node, source []byte) (*pyast.Node, error) {
	kind := n.Kind()
	out := &pyast.Node{
		Kind: kind,
		Span: spanOf(n),
	}

	sch, structured := productions[kind]
	if !structured {
		if n.NamedChildCount() > 0 {
			return nil, &pyast.ShapeError{Kind: kind}
		}
		// Leaf token: the source text is the value.
		out.Fields = []pyast.Field{{Name: "text", Value: pyast.NewScalar(nodeText(n, source))}}
		return out, nil
	}

	if sch.text {
		out.Fields = append(out.Fields, pyast.Field{Name: "text", Value: pyast.NewScalar(nodeText(n, source))})
	}

	// One pass over the children groups them by grammar field; children the
	// grammar leaves unfielded go to the production's rest slot, in order.
	groups := make(map[string][]*tree_sitter.Node)
	var rest []*tree_sitter.Node
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		c := n.Child(i)
		if fname := n.FieldNameForChild(uint32(i)); fname != "" {
			groups[fname] = append(groups[fname], c)
			continue
		}
		if c.IsNamed() && c.Kind() != "comment" {
			rest = append(rest, c)
		}
	}

	for _, f := range sch.fields {
		nodes := groups[f.name]
		delete(groups, f.name)
		if len(nodes) == 0 {
			continue
		}
		val, err := fieldValue(nodes, f.list, source)
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, pyast.Field{Name: f.name, Value: val})
	}

	// A field the grammar exposes but the table does not declare means the
	// table is out of step with the grammar.
	if len(groups) > 0 {
		return nil, &pyast.ShapeError{Kind: kind}
	}

	if len(rest) > 0 {
		restName := sch.rest
		if restName == "" {
			restName = "children"
		}
		val, err := fieldValue(rest, true, source)
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, pyast.Field{Name: restName, Value: val})
	}

	return out, nil
}

// fieldValue classifies a field's children per the serialization contract:
// named children become nodes, anonymous tokens (operators, delimiters)
// become their source text.
func fieldValue(nodes []*tree_sitter.Node, list bool, source []byte) (pyast.Value, error) {
	if !list && len(nodes) == 1 {
		return singleValue(nodes[0], source)
	}
	if !nodes[0].IsNamed() {
		vals := make([]any, len(nodes))
		for i, c := range nodes {
			vals[i] = nodeText(c, source)
		}
		return pyast.ScalarList{Vals: vals}, nil
	}
	children := make([]*pyast.Node, 0, len(nodes))
	for _, c := range nodes {
		child, err := serializeNode(c, source)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return pyast.ChildList{Nodes: children}, nil
}

func singleValue(n *tree_sitter.Node, source []byte) (pyast.Value, error) {
	if !n.IsNamed() {
		return pyast.NewScalar(nodeText(n, source)), nil
	}
	child, err := serializeNode(n, source)
	if err != nil {
		return nil, err
	}
	return pyast.Child{Node: child}, nil
}

func spanOf(n *tree_sitter.Node) *pyast.Span {
	start := n.StartPosition()
	end := n.EndPosition()
	return &pyast.Span{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column),
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column),
	}
}

// nodeText returns the source text for a node.
func nodeText(n *tree_sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}
