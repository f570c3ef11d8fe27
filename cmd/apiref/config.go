package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/apiref/fs"
	"github.com/fwojciec/apiref/jsonschema"
)

// DefaultConfigFile is looked up in the project root when --config is unset.
const DefaultConfigFile = "apiref.toml"

// Config holds settings read from the config file.
type Config struct {
	ToolName     string
	CacheKeyMode fs.CacheKeyMode
	Concurrency  int
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		ToolName:     jsonschema.DefaultToolName,
		CacheKeyMode: fs.CacheKeyCanonical,
		Concurrency:  4,
	}
}

type fileConfig struct {
	ToolName     string `toml:"tool_name"`
	CacheKeyMode string `toml:"cache_key_mode"`
	Concurrency  int    `toml:"concurrency"`
}

// LoadConfig reads a TOML config file and applies the keys it defines on top
// of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("tool_name") {
		if name := strings.TrimSpace(raw.ToolName); name != "" {
			cfg.ToolName = name
		}
	}

	if meta.IsDefined("cache_key_mode") {
		mode, err := fs.ParseCacheKeyMode(raw.CacheKeyMode)
		if err != nil {
			return Config{}, fmt.Errorf("parse cache_key_mode: %w", err)
		}
		cfg.CacheKeyMode = mode
	}

	if meta.IsDefined("concurrency") {
		if raw.Concurrency < 1 {
			return Config{}, fmt.Errorf("concurrency must be at least 1, got %d", raw.Concurrency)
		}
		cfg.Concurrency = raw.Concurrency
	}

	return cfg, nil
}
