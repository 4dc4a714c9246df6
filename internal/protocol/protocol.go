// Package protocol defines the framed request/response envelope spoken on
// stdin/stdout in serve mode and over the Unix socket in daemon mode.
// The framing is newline-delimited JSON: one object per line, one response
// per accepted request, flushed immediately.
package protocol

import (
	"encoding/json"

	"github.com/felix-ide/felix/internal/domain/pyast"
)

// Command names. The table is closed — anything else is answered with an
// UnknownCommand error, never a dropped frame.
const (
	CmdParseContent   = "parse_content"
	CmdParseFile      = "parse_file"
	CmdExtractImports = "extract_imports"
	CmdResolveModule  = "resolve_module"
	CmdShutdown       = "shutdown"
)

// Error classification strings. Diagnostic text, not a stable enum contract.
const (
	ErrSyntax        = "SyntaxError"
	ErrInvalidInput  = "InvalidInput"
	ErrMissingParam  = "MissingParameter"
	ErrUnknownCmd    = "UnknownCommand"
	ErrModuleNotFound = "ModuleNotFound"
	ErrIoFailure     = "IoFailure"
	ErrInternalShape = "InternalShapeError"
)

// Request is the wire format for one framed request. ID is opaque — any JSON
// value — and is echoed back verbatim. Content is a pointer because an empty
// string is a supplied value: extract_imports falls back to FilePath only
// when Content is absent.
type Request struct {
	ID         json.RawMessage `json:"id,omitempty"`
	Command    string          `json:"command"`
	FilePath   string          `json:"file_path,omitempty"`
	Content    *string         `json:"content,omitempty"`
	ModuleName string          `json:"module_name,omitempty"`
}

// Response is the wire format for one framed response. Success is always
// present; the payload fields are command-specific. Imports is a pointer to
// a slice so a successful extraction with zero imports still serializes as
// "imports": [].
type Response struct {
	ID           json.RawMessage       `json:"id,omitempty"`
	Success      bool                  `json:"success"`
	AST          *pyast.Node           `json:"ast,omitempty"`
	Imports      *[]pyast.ImportRecord `json:"imports,omitempty"`
	ResolvedPath string                `json:"resolved_path,omitempty"`
	Content      *string               `json:"content,omitempty"`
	Shutdown     bool                  `json:"shutdown,omitempty"`
	Error        string                `json:"error,omitempty"`
	Message      string                `json:"message,omitempty"`
	Line         *int                  `json:"lineno,omitempty"`
	Offset       *int                  `json:"offset,omitempty"`
}

// Fail builds an error response carrying the request's id.
func Fail(id json.RawMessage, kind, message string) Response {
	return Response{ID: id, Error: kind, Message: message}
}

// SyntaxFail builds a SyntaxError response with the parser's localization
// when it has one.
func SyntaxFail(id json.RawMessage, e *pyast.SyntaxError) Response {
	resp := Response{ID: id, Error: ErrSyntax, Message: e.Message}
	if e.Line > 0 {
		line := e.Line
		resp.Line = &line
	}
	if e.Offset > 0 {
		offset := e.Offset
		resp.Offset = &offset
	}
	return resp
}
