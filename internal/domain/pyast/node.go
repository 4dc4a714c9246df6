// Package pyast defines the language-neutral syntax tree representation and
// the derived-fact records (imports, module resolutions) produced by the
// extraction worker. Types here are pure data — adapters produce them,
// the protocol layer serializes them.
package pyast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Span holds source positions for a node. Lines are 1-based, columns 0-based
// (CPython ast convention). A nil Span means the native node carried no
// location.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Node is the serializable form of one syntax tree node.
// Fields preserve the grammar's declared order for the node's production,
// so marshaling the same tree twice is byte-identical.
type Node struct {
	Kind   string
	Span   *Span
	Fields []Field
}

// Field is one named slot of a node, in grammar-declared order.
type Field struct {
	Name  string
	Value Value
}

// Value is the tagged union of field values: Scalar, Child, ChildList, or
// ScalarList.
type Value interface {
	appendJSON(buf *bytes.Buffer) error
}

// Scalar holds a wire-safe primitive: string, bool, number, or nil.
type Scalar struct {
	Val any
}

// Child holds a single nested node.
type Child struct {
	Node *Node
}

// ChildList holds an ordered sequence of nested nodes.
type ChildList struct {
	Nodes []*Node
}

// ScalarList holds an ordered sequence of primitives.
type ScalarList struct {
	Vals []any
}

// NewScalar narrows v to the closed scalar set. Values outside
// string/bool/integer/float/nil are stringified rather than forwarded.
func NewScalar(v any) Scalar {
	switch v.(type) {
	case nil, string, bool, int, int64, float64:
		return Scalar{Val: v}
	default:
		return Scalar{Val: fmt.Sprint(v)}
	}
}

func (s Scalar) appendJSON(buf *bytes.Buffer) error {
	return appendScalar(buf, s.Val)
}

func (c Child) appendJSON(buf *bytes.Buffer) error {
	return c.Node.appendTo(buf)
}

func (l ChildList) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('[')
	for i, n := range l.Nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := n.appendTo(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func (l ScalarList) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('[')
	for i, v := range l.Vals {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendScalar(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func appendScalar(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal scalar: %w", err)
	}
	buf.Write(b)
	return nil
}

// MarshalJSON writes the node as a flat object in the original helper's wire
// shape: "_type", then location keys when present, then fields in order.
// encoding/json map iteration is never involved, so output is deterministic.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.appendTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) appendTo(buf *bytes.Buffer) error {
	buf.WriteString(`{"_type":`)
	if err := appendScalar(buf, n.Kind); err != nil {
		return err
	}
	if n.Span != nil {
		fmt.Fprintf(buf, `,"lineno":%d,"col_offset":%d,"end_lineno":%d,"end_col_offset":%d`,
			n.Span.StartLine, n.Span.StartCol, n.Span.EndLine, n.Span.EndCol)
	}
	for _, f := range n.Fields {
		buf.WriteByte(',')
		if err := appendScalar(buf, f.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := f.Value.appendJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// Get returns the value of the named field, or nil if absent.
func (n *Node) Get(name string) Value {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}
