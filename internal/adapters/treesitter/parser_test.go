package treesitter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

func parseSource(t *testing.T, src string) *pyast.Node {
	t.Helper()
	node, err := NewParser().Parse([]byte(src), "test.py")
	require.NoError(t, err)
	return node
}

func child(t *testing.T, n *pyast.Node, field string) *pyast.Node {
	t.Helper()
	v := n.Get(field)
	require.NotNil(t, v, "field %q missing on %s", field, n.Kind)
	c, ok := v.(pyast.Child)
	require.True(t, ok, "field %q on %s is not a single child", field, n.Kind)
	return c.Node
}

func childList(t *testing.T, n *pyast.Node, field string) []*pyast.Node {
	t.Helper()
	v := n.Get(field)
	require.NotNil(t, v, "field %q missing on %s", field, n.Kind)
	l, ok := v.(pyast.ChildList)
	require.True(t, ok, "field %q on %s is not a child list", field, n.Kind)
	return l.Nodes
}

func leafText(t *testing.T, n *pyast.Node) string {
	t.Helper()
	v := n.Get("text")
	require.NotNil(t, v, "%s has no text field", n.Kind)
	s, ok := v.(pyast.Scalar)
	require.True(t, ok)
	text, ok := s.Val.(string)
	require.True(t, ok)
	return text
}

func TestParse_Assignment(t *testing.T) {
	root := parseSource(t, "x = 1\n")

	assert.Equal(t, "module", root.Kind)
	require.NotNil(t, root.Span)
	assert.Equal(t, 1, root.Span.StartLine)

	body := childList(t, root, "body")
	require.Len(t, body, 1)
	stmt := body[0]
	assert.Equal(t, "expression_statement", stmt.Kind)

	exprs := childList(t, stmt, "children")
	require.Len(t, exprs, 1)
	assign := exprs[0]
	assert.Equal(t, "assignment", assign.Kind)

	left := child(t, assign, "left")
	assert.Equal(t, "identifier", left.Kind)
	assert.Equal(t, "x", leafText(t, left))
	require.NotNil(t, left.Span)
	assert.Equal(t, 1, left.Span.StartLine)
	assert.Equal(t, 0, left.Span.StartCol)

	right := child(t, assign, "right")
	assert.Equal(t, "integer", right.Kind)
	assert.Equal(t, "1", leafText(t, right))
}

func TestParse_FunctionDefinition(t *testing.T) {
	root := parseSource(t, "def add(a, b):\n    return a + b\n")

	body := childList(t, root, "body")
	require.Len(t, body, 1)
	fn := body[0]
	assert.Equal(t, "function_definition", fn.Kind)
	assert.Equal(t, "add", leafText(t, child(t, fn, "name")))

	params := childList(t, child(t, fn, "parameters"), "children")
	require.Len(t, params, 2)
	assert.Equal(t, "a", leafText(t, params[0]))
	assert.Equal(t, "b", leafText(t, params[1]))

	block := child(t, fn, "body")
	assert.Equal(t, "block", block.Kind)
	stmts := childList(t, block, "body")
	require.Len(t, stmts, 1)
	ret := stmts[0]
	assert.Equal(t, "return_statement", ret.Kind)

	exprs := childList(t, ret, "children")
	require.Len(t, exprs, 1)
	sum := exprs[0]
	assert.Equal(t, "binary_operator", sum.Kind)
	op, ok := sum.Get("operator").(pyast.Scalar)
	require.True(t, ok)
	assert.Equal(t, "+", op.Val)
}

func TestParse_StringEscapes(t *testing.T) {
	root := parseSource(t, "x = \"a\\nb\"\n")

	body := childList(t, root, "body")
	require.Len(t, body, 1)
	assign := childList(t, body[0], "children")[0]
	str := child(t, assign, "right")
	assert.Equal(t, "string", str.Kind)

	var content *pyast.Node
	for _, part := range childList(t, str, "children") {
		if part.Kind == "string_content" {
			content = part
		}
	}
	require.NotNil(t, content, "string has no string_content child")

	text, ok := content.Get("text").(pyast.Scalar)
	require.True(t, ok)
	assert.Equal(t, `a\nb`, text.Val)

	escapes := childList(t, content, "children")
	require.Len(t, escapes, 1)
	assert.Equal(t, "escape_sequence", escapes[0].Kind)
	assert.Equal(t, `\n`, leafText(t, escapes[0]))
}

func TestParse_TypeParameters(t *testing.T) {
	root := parseSource(t, "def first[T](x: T) -> T:\n    return x\n\nclass Box[T]:\n    pass\n")

	body := childList(t, root, "body")
	require.Len(t, body, 2)

	fn := body[0]
	assert.Equal(t, "function_definition", fn.Kind)
	assert.Equal(t, "type_parameter", child(t, fn, "type_parameters").Kind)

	cls := body[1]
	assert.Equal(t, "class_definition", cls.Kind)
	assert.Equal(t, "type_parameter", child(t, cls, "type_parameters").Kind)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := NewParser().Parse([]byte("def f(:\n"), "snippet.py")
	require.Error(t, err)

	var synErr *pyast.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "invalid syntax (snippet.py, line 1)", synErr.Message)
	assert.Equal(t, 1, synErr.Line)
	assert.Greater(t, synErr.Offset, 0)
}

func TestParse_SyntaxErrorAfterValidLine(t *testing.T) {
	_, err := NewParser().Parse([]byte("x = 1\ndef broken(:\n"), "snippet.py")
	require.Error(t, err)

	var synErr *pyast.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 2, synErr.Line)
}

func TestParse_Deterministic(t *testing.T) {
	src := `import os
from collections import OrderedDict

@decorator
class Config(Base):
    """Doc."""

    default = {"a": 1, "b": [2, 3]}

    def load(self, path: str = "cfg") -> bool:
        with open(path) as fh:
            for line in fh:
                if line.strip():
                    self.items.append(line)
        return True
`
	p := NewParser()

	first, err := p.Parse([]byte(src), "a.py")
	require.NoError(t, err)
	second, err := p.Parse([]byte(src), "a.py")
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

// Parses a grab bag of Python constructs and requires the whole tree to
// serialize without hitting a gap in the production table.
func TestParse_CoversCommonConstructs(t *testing.T) {
	src := `import sys

counter = 0

def process(items, *args, limit: int = 10, **kwargs) -> list:
    global counter
    result = [i * i for i in items if i]
    mapping = {k: v for k, v in kwargs.items()}
    assert limit > 0, "limit must be positive"
    try:
        total = sum(result)
    except ValueError as exc:
        raise RuntimeError("bad input") from exc
    finally:
        counter += 1
    while total > limit:
        total -= 1
    else:
        pass
    if (half := total // 2) > 0:
        return result[1:half]
    elif total == 0:
        del mapping
        return []
    else:
        return result

class Greeter:
    def greet(self, name):
        prefix = "hi" if name else "hey"
        return f"{prefix}, {name}!"

async def fetch(url):
    conn = await connect(url)
    yield conn

fn = lambda x, y=1: x + y
ok = 1 < counter < 10 and not fn(2)
banner = "one\ntwo\t\"quoted\""
braces = f"{{literal}} {counter:>4}"
`
	root := parseSource(t, src)

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"_type":"module"`)
}

func TestParse_EmptySource(t *testing.T) {
	root := parseSource(t, "")

	assert.Equal(t, "module", root.Kind)
	assert.Nil(t, root.Get("body"))
}
