// Package config loads worker settings from file, environment, and
// defaults. The file is optional; a missing config is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".felix-ast"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for worker settings.
const envPrefix = "FELIX"

// Defaults.
const (
	DefaultCacheSize     = 4096
	DefaultMaxFrameBytes = 16 * 1024 * 1024
)

// Config holds all worker settings.
type Config struct {
	// SearchPaths are the module resolution roots, in lookup order.
	// Empty means working directory plus PYTHONPATH.
	SearchPaths []string `mapstructure:"search_paths"`

	// CacheSize bounds the in-memory resolution cache.
	CacheSize int `mapstructure:"cache_size"`

	// DBPath overrides the daemon's persistent cache location.
	DBPath string `mapstructure:"db_path"`

	// SocketPath overrides the daemon's Unix socket location.
	SocketPath string `mapstructure:"socket_path"`

	// MaxFrameBytes bounds one framed request line.
	MaxFrameBytes int `mapstructure:"max_frame_bytes"`

	// Watch enables search-root watching (cache invalidation) in daemon mode.
	Watch bool `mapstructure:"watch"`
}

// Validate checks settings that have no sensible fallback.
func (c *Config) Validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if c.MaxFrameBytes <= 0 {
		return fmt.Errorf("max_frame_bytes must be positive, got %d", c.MaxFrameBytes)
	}
	return nil
}

// Load reads configuration from file, env vars, and defaults. If configPath
// is non-empty it is used as the explicit config file path; otherwise the
// file is searched in CWD and $HOME. A missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("search_paths", []string{})
	viperCfg.SetDefault("cache_size", DefaultCacheSize)
	viperCfg.SetDefault("db_path", "")
	viperCfg.SetDefault("socket_path", "")
	viperCfg.SetDefault("max_frame_bytes", DefaultMaxFrameBytes)
	viperCfg.SetDefault("watch", true)
}
