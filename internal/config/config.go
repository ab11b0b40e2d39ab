package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration. The crypto package itself
// reads none of it; the CLI turns it into Cipher options.
type Config struct {
	// Key derivation and text handling
	Crypto CryptoConfig `json:"crypto" mapstructure:"crypto"`

	// Result printing
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Logging
	Log LogConfig `json:"log" mapstructure:"log"`
}

// CryptoConfig selects how passwords become keys.
type CryptoConfig struct {
	Scheme     string `json:"scheme" mapstructure:"scheme"`         // sha256, pbkdf2
	Iterations int    `json:"iterations" mapstructure:"iterations"` // pbkdf2 only
	Normalize  string `json:"normalize" mapstructure:"normalize"`   // none, nfc, nfkc
}

// OutputConfig for CLI results.
type OutputConfig struct {
	Format     string `json:"format" mapstructure:"format"`           // text, json
	Color      bool   `json:"color" mapstructure:"color"`             // Color prefixes on terminals
	StrictExit bool   `json:"strict_exit" mapstructure:"strict_exit"` // Exit 1 on crypto errors
}

// LogConfig for logging behavior.
type LogConfig struct {
	Level     string `json:"level" mapstructure:"level"`         // debug, info, warn, error
	Format    string `json:"format" mapstructure:"format"`       // text, json
	File      string `json:"file" mapstructure:"file"`           // Log file path (empty = stderr)
	Color     bool   `json:"color" mapstructure:"color"`         // Enable colored levels
	Timestamp bool   `json:"timestamp" mapstructure:"timestamp"` // Include timestamps
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Crypto: CryptoConfig{
			Scheme:     "sha256",
			Iterations: 1000,
			Normalize:  "none",
		},
		Output: OutputConfig{
			Format:     "text",
			Color:      true,
			StrictExit: false,
		},
		Log: LogConfig{
			Level:     "warn",
			Format:    "text",
			File:      "",
			Color:     true,
			Timestamp: true,
		},
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	validSchemes := map[string]bool{"sha256": true, "pbkdf2": true}
	if !validSchemes[c.Crypto.Scheme] {
		return fmt.Errorf("invalid crypto scheme: %s", c.Crypto.Scheme)
	}

	if c.Crypto.Iterations <= 0 {
		return errors.New("crypto.iterations must be positive")
	}

	validForms := map[string]bool{"none": true, "nfc": true, "nfkc": true}
	if !validForms[c.Crypto.Normalize] {
		return fmt.Errorf("invalid normalization form: %s", c.Crypto.Normalize)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}

// EnsureDirectories creates the log file directory if one is configured.
func (c *Config) EnsureDirectories() error {
	if c.Log.File == "" {
		return nil
	}

	dir := filepath.Dir(c.Log.File)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	return nil
}
