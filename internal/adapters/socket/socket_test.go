package socket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSocketPath_StablePerRoot(t *testing.T) {
	a := SocketPath("/src/project")
	b := SocketPath("/src/project")
	other := SocketPath("/src/other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.True(t, strings.HasPrefix(a, "/tmp/felix-ast-"))
	assert.True(t, strings.HasSuffix(a, ".sock"))
}

func TestDBPath_MatchesSocketNaming(t *testing.T) {
	sock := SocketPath("/src/project")
	db := DBPath("/src/project")

	assert.Equal(t,
		strings.TrimSuffix(sock, ".sock"),
		strings.TrimSuffix(db, ".db"))
}
