package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

func TestRequest_UnmarshalEchoesOpaqueID(t *testing.T) {
	for _, raw := range []string{`42`, `"req-1"`, `{"seq": 3}`} {
		var req Request
		require.NoError(t, json.Unmarshal([]byte(`{"id": `+raw+`, "command": "shutdown"}`), &req))
		assert.JSONEq(t, raw, string(req.ID))
	}
}

func TestRequest_ContentDistinguishesEmptyFromAbsent(t *testing.T) {
	var withEmpty Request
	require.NoError(t, json.Unmarshal([]byte(`{"command": "parse_content", "content": ""}`), &withEmpty))
	require.NotNil(t, withEmpty.Content)
	assert.Empty(t, *withEmpty.Content)

	var without Request
	require.NoError(t, json.Unmarshal([]byte(`{"command": "parse_content"}`), &without))
	assert.Nil(t, without.Content)
}

func TestFail(t *testing.T) {
	resp := Fail(json.RawMessage(`5`), ErrUnknownCmd, "unknown command: \"x\"")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrUnknownCmd, resp.Error)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":5,"success":false,"error":"UnknownCommand","message":"unknown command: \"x\""}`,
		string(data))
}

func TestSyntaxFail(t *testing.T) {
	resp := SyntaxFail(nil, &pyast.SyntaxError{
		Message: "invalid syntax (a.py, line 3)",
		Line:    3,
		Offset:  5,
	})

	assert.Equal(t, ErrSyntax, resp.Error)
	require.NotNil(t, resp.Line)
	assert.Equal(t, 3, *resp.Line)
	require.NotNil(t, resp.Offset)
	assert.Equal(t, 5, *resp.Offset)
}

func TestSyntaxFail_OmitsUnknownPosition(t *testing.T) {
	resp := SyntaxFail(nil, &pyast.SyntaxError{Message: "invalid syntax"})

	assert.Nil(t, resp.Line)
	assert.Nil(t, resp.Offset)
}

func TestResponse_SuccessAlwaysSerialized(t *testing.T) {
	data, err := json.Marshal(Response{})
	require.NoError(t, err)
	assert.Equal(t, `{"success":false}`, string(data))
}
