// Package config provides configuration loading for gemsave.
//
// Every setting has a default that matches the Gemini CLI's own layout, so
// the tool works with no configuration at all. Settings can be overridden by
// a YAML file and by GEMSAVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the complete gemsave configuration.
type Config struct {
	Gemini  GeminiConfig  `koanf:"gemini"`
	Preview PreviewConfig `koanf:"preview"`
	Log     LogConfig     `koanf:"log"`
}

// GeminiConfig locates the Gemini CLI cache.
type GeminiConfig struct {
	// Home is the Gemini CLI home directory (default: ~/.gemini).
	Home string `koanf:"home"`
}

// PreviewConfig controls the session list shown before selection.
type PreviewConfig struct {
	// SnippetLength is the number of characters shown per message (default: 100).
	SnippetLength int `koanf:"snippet_length"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error (default: warn)
	Format string `koanf:"format"` // console or json (default: console)
}

const (
	defaultSnippetLength = 100
	defaultLogLevel      = "warn"
	defaultLogFormat     = "console"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when nothing is overridden.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Gemini.Home == "" {
		errs = append(errs, errors.New("gemini.home is required"))
	}
	if c.Preview.SnippetLength < 0 {
		errs = append(errs, fmt.Errorf("preview.snippet_length must be >= 0, got %d", c.Preview.SnippetLength))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level must be one of trace, debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be 'console' or 'json', got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) error {
	if cfg.Gemini.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Gemini.Home = filepath.Join(home, ".gemini")
	} else {
		expanded, err := ExpandHome(cfg.Gemini.Home)
		if err != nil {
			return err
		}
		cfg.Gemini.Home = expanded
	}

	if cfg.Preview.SnippetLength == 0 {
		cfg.Preview.SnippetLength = defaultSnippetLength
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaultLogFormat
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
