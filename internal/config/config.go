package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/winrescue/internal/types"
)

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Strategy:           types.RestoreToOrigin.String(),
		EnumerationFailure: FailFatal,
	}
}

// LoadConfig loads configuration from the specified path.
// An empty path returns Default() without touching the filesystem.
// Supports both .yaml and .json extensions
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := LoadConfigFromBytes(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetStrategy returns the parsed remediation strategy
func (c *Config) GetStrategy() types.Strategy {
	s, _ := types.ParseStrategy(c.Strategy)
	return s
}

// EnumerationFatal reports whether an enumeration failure should exit non-zero
func (c *Config) EnumerationFatal() bool {
	return c.EnumerationFailure != FailWarn
}
