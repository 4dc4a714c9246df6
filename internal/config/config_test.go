package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.SearchPaths)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultMaxFrameBytes, cfg.MaxFrameBytes)
	assert.Empty(t, cfg.SocketPath)
	assert.Empty(t, cfg.DBPath)
	assert.True(t, cfg.Watch)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "felix.yaml")
	content := `search_paths:
  - /src/app
  - /src/lib
cache_size: 128
socket_path: /tmp/custom.sock
watch: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/src/app", "/src/lib"}, cfg.SearchPaths)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Equal(t, "/tmp/custom.sock", cfg.SocketPath)
	assert.False(t, cfg.Watch)
	assert.Equal(t, DefaultMaxFrameBytes, cfg.MaxFrameBytes, "unset keys keep defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FELIX_CACHE_SIZE", "32")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.CacheSize)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "felix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_size: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache_size")
}

func TestValidate(t *testing.T) {
	cfg := &Config{CacheSize: DefaultCacheSize, MaxFrameBytes: DefaultMaxFrameBytes}
	assert.NoError(t, cfg.Validate())

	cfg.MaxFrameBytes = 0
	assert.Error(t, cfg.Validate())
}
