// Package socket runs the extraction worker as a daemon on a Unix socket.
// Connections speak the exact same newline-delimited JSON protocol as serve
// mode on stdin/stdout: each connection is its own sequential session.
package socket

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
)

// SocketPath returns the Unix socket path for a given project root.
// Format: /tmp/felix-ast-{12hex}.sock
func SocketPath(projectRoot string) string {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		abs = projectRoot
	}
	h := sha256.Sum256([]byte(abs))
	return fmt.Sprintf("/tmp/felix-ast-%x.sock", h[:6])
}

// DBPath returns the daemon's persistent resolution cache path for a given
// project root, alongside the socket naming scheme.
func DBPath(projectRoot string) string {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		abs = projectRoot
	}
	h := sha256.Sum256([]byte(abs))
	return fmt.Sprintf("/tmp/felix-ast-%x.db", h[:6])
}
