package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/felix-ide/felix/internal/domain/pyast"
	"github.com/felix-ide/felix/internal/protocol"
)

// memoryLabel attributes diagnostics for content parsed without a file path.
const memoryLabel = "<memory>"

// Dispatch maps one request to exactly one response. Unrecognized commands
// are a normal error outcome, never a dropped frame or a crash.
func (a *App) Dispatch(req protocol.Request) protocol.Response {
	switch req.Command {
	case protocol.CmdParseContent:
		return a.parseContent(req)
	case protocol.CmdParseFile:
		return a.parseFile(req)
	case protocol.CmdExtractImports:
		return a.extractImports(req)
	case protocol.CmdResolveModule:
		return a.resolveModule(req)
	case protocol.CmdShutdown:
		return protocol.Response{ID: req.ID, Success: true, Shutdown: true}
	default:
		return protocol.Fail(req.ID, protocol.ErrUnknownCmd,
			fmt.Sprintf("unknown command: %q", req.Command))
	}
}

func (a *App) parseContent(req protocol.Request) protocol.Response {
	if req.Content == nil {
		return protocol.Fail(req.ID, protocol.ErrMissingParam, "content required")
	}
	label := req.FilePath
	if label == "" {
		label = memoryLabel
	}
	node, err := a.parser.Parse([]byte(*req.Content), label)
	if err != nil {
		return a.parseFailure(req, err)
	}
	return protocol.Response{ID: req.ID, Success: true, AST: node}
}

func (a *App) parseFile(req protocol.Request) protocol.Response {
	if req.FilePath == "" {
		return protocol.Fail(req.ID, protocol.ErrMissingParam, "file_path required")
	}
	data, err := os.ReadFile(req.FilePath)
	if err != nil {
		return protocol.Fail(req.ID, protocol.ErrIoFailure, err.Error())
	}
	node, err := a.parser.Parse(data, req.FilePath)
	if err != nil {
		return a.parseFailure(req, err)
	}
	content := string(data)
	return protocol.Response{ID: req.ID, Success: true, AST: node, Content: &content}
}

func (a *App) extractImports(req protocol.Request) protocol.Response {
	var source []byte
	label := req.FilePath
	switch {
	case req.Content != nil:
		source = []byte(*req.Content)
		if label == "" {
			label = memoryLabel
		}
	case req.FilePath != "":
		data, err := os.ReadFile(req.FilePath)
		if err != nil {
			return protocol.Fail(req.ID, protocol.ErrIoFailure, err.Error())
		}
		source = data
	default:
		return protocol.Fail(req.ID, protocol.ErrMissingParam, "content or file_path required")
	}

	records, err := a.parser.ExtractImports(source, label)
	if err != nil {
		return a.parseFailure(req, err)
	}
	return protocol.Response{ID: req.ID, Success: true, Imports: &records}
}

func (a *App) resolveModule(req protocol.Request) protocol.Response {
	if req.ModuleName == "" {
		return protocol.Fail(req.ID, protocol.ErrMissingParam, "module_name required")
	}
	res := a.resolver.Resolve(req.ModuleName)
	switch res.Status {
	case pyast.Resolved:
		return protocol.Response{ID: req.ID, Success: true, ResolvedPath: res.Path}
	case pyast.NotFound:
		return protocol.Fail(req.ID, protocol.ErrModuleNotFound, res.Message)
	default:
		return protocol.Fail(req.ID, res.Kind, res.Message)
	}
}

// parseFailure maps parser errors to responses. Shape errors are programming
// errors in the grammar schema; they get logged so they stand apart from
// ordinary bad input, but the session still answers and continues.
func (a *App) parseFailure(req protocol.Request, err error) protocol.Response {
	var syntaxErr *pyast.SyntaxError
	if errors.As(err, &syntaxErr) {
		return protocol.SyntaxFail(req.ID, syntaxErr)
	}

	var shapeErr *pyast.ShapeError
	if errors.As(err, &shapeErr) {
		a.log.Error("grammar schema gap", "production", shapeErr.Kind, "command", req.Command)
		return protocol.Fail(req.ID, protocol.ErrInternalShape, shapeErr.Error())
	}

	return protocol.Fail(req.ID, "InternalError", err.Error())
}
