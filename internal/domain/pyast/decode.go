package pyast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON rebuilds a node from its wire form, preserving field order.
// The daemon client uses this to round-trip responses; the worker itself
// only marshals.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("node: expected object, got %v", tok)
	}
	if err := n.decodeBody(dec); err != nil {
		return err
	}
	_, err = dec.Token() // closing brace
	return err
}

// decodeBody consumes the key/value pairs of an already-opened node object.
func (n *Node) decodeBody(dec *json.Decoder) error {
	var span Span
	sawSpan := false

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("node: expected key, got %v", keyTok)
		}

		switch key {
		case "_type":
			if err := decodeInto(dec, &n.Kind); err != nil {
				return err
			}
		case "lineno":
			sawSpan = true
			if err := decodeInto(dec, &span.StartLine); err != nil {
				return err
			}
		case "col_offset":
			sawSpan = true
			if err := decodeInto(dec, &span.StartCol); err != nil {
				return err
			}
		case "end_lineno":
			sawSpan = true
			if err := decodeInto(dec, &span.EndLine); err != nil {
				return err
			}
		case "end_col_offset":
			sawSpan = true
			if err := decodeInto(dec, &span.EndCol); err != nil {
				return err
			}
		default:
			val, err := decodeValue(dec)
			if err != nil {
				return err
			}
			n.Fields = append(n.Fields, Field{Name: key, Value: val})
		}
	}

	if sawSpan {
		n.Span = &span
	}
	return nil
}

func decodeInto(dec *json.Decoder, dst any) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch d := dst.(type) {
	case *string:
		s, ok := tok.(string)
		if !ok {
			return fmt.Errorf("node: expected string, got %v", tok)
		}
		*d = s
	case *int:
		num, ok := tok.(json.Number)
		if !ok {
			return fmt.Errorf("node: expected number, got %v", tok)
		}
		i, err := num.Int64()
		if err != nil {
			return err
		}
		*d = int(i)
	}
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case json.Delim('{'):
			child := &Node{}
			if err := child.decodeBody(dec); err != nil {
				return nil, err
			}
			if _, err := dec.Token(); err != nil { // closing brace
				return nil, err
			}
			return Child{Node: child}, nil
		case json.Delim('['):
			return decodeList(dec)
		}
		return nil, fmt.Errorf("node: unexpected delimiter %v", t)
	default:
		return Scalar{Val: scalarFromToken(tok)}, nil
	}
}

// decodeList consumes an already-opened array. A list of objects becomes a
// ChildList, a list of primitives a ScalarList; mixing the two is rejected.
func decodeList(dec *json.Decoder) (Value, error) {
	var nodes []*Node
	var scalars []any

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := valueFromToken(dec, tok)
		if err != nil {
			return nil, err
		}
		switch v := val.(type) {
		case Child:
			if scalars != nil {
				return nil, fmt.Errorf("node: mixed list of nodes and scalars")
			}
			nodes = append(nodes, v.Node)
		case Scalar:
			if nodes != nil {
				return nil, fmt.Errorf("node: mixed list of nodes and scalars")
			}
			scalars = append(scalars, v.Val)
		default:
			return nil, fmt.Errorf("node: nested lists are not a field value")
		}
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}

	if nodes != nil {
		return ChildList{Nodes: nodes}, nil
	}
	return ScalarList{Vals: scalars}, nil
}

func scalarFromToken(tok json.Token) any {
	switch v := tok.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, _ := v.Float64()
		return f
	default:
		return v // string, bool, or nil
	}
}
