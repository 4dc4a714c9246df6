package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/felix-ide/felix/internal/protocol"
)

// RunSession drives one framed request/response session: read one line,
// dispatch, write exactly one response, repeat. Processing is strictly
// sequential, so responses come back in request order.
//
// Blank lines are skipped with no response. A line that does not decode as
// a request gets an InvalidInput response (no id — none could be parsed)
// and the session continues. The session ends on a shutdown command
// (reported via the returned bool, after its response is flushed), on end
// of input, or on a write failure (broken pipe). A line longer than the
// frame limit ends the session too — resyncing mid-line is impossible —
// but a final InvalidInput frame is written first.
func (a *App) RunSession(r io.Reader, w io.Writer) (shutdown bool, err error) {
	initial := 64 * 1024
	if a.maxFrame < initial {
		initial = a.maxFrame
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initial), a.maxFrame)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req protocol.Request
		if decodeErr := json.Unmarshal(line, &req); decodeErr != nil {
			fail := protocol.Fail(nil, protocol.ErrInvalidInput, "malformed request line: "+decodeErr.Error())
			if werr := writeFrame(w, fail); werr != nil {
				return false, werr
			}
			continue
		}

		resp := a.Dispatch(req)
		if werr := writeFrame(w, resp); werr != nil {
			return false, werr
		}

		if req.Command == protocol.CmdShutdown {
			a.log.Info("session shutdown requested")
			return true, nil
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		if errors.Is(scanErr, bufio.ErrTooLong) {
			fail := protocol.Fail(nil, protocol.ErrInvalidInput,
				fmt.Sprintf("request line exceeds %d bytes", a.maxFrame))
			_ = writeFrame(w, fail)
		}
		return false, fmt.Errorf("read request stream: %w", scanErr)
	}
	return false, nil
}

// writeFrame marshals one response and writes it with its line terminator in
// a single call, so each frame reaches the consumer before the next request
// is read.
func writeFrame(w io.Writer, resp protocol.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
