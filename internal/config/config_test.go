package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheMichaelB/textseal/internal/config"
)

// isolate keeps a developer's own config out of the loader's search path.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "sha256", cfg.Crypto.Scheme)
	assert.Equal(t, 1000, cfg.Crypto.Iterations)
	assert.Equal(t, "none", cfg.Crypto.Normalize)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.False(t, cfg.Output.StrictExit)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr string
	}{
		{
			name:    "valid config",
			modify:  func(c *config.Config) {},
			wantErr: "",
		},
		{
			name: "pbkdf2 scheme",
			modify: func(c *config.Config) {
				c.Crypto.Scheme = "pbkdf2"
			},
			wantErr: "",
		},
		{
			name: "unknown scheme",
			modify: func(c *config.Config) {
				c.Crypto.Scheme = "md5"
			},
			wantErr: "invalid crypto scheme",
		},
		{
			name: "zero iterations",
			modify: func(c *config.Config) {
				c.Crypto.Iterations = 0
			},
			wantErr: "crypto.iterations must be positive",
		},
		{
			name: "unknown normalization",
			modify: func(c *config.Config) {
				c.Crypto.Normalize = "nfd"
			},
			wantErr: "invalid normalization form",
		},
		{
			name: "unknown output format",
			modify: func(c *config.Config) {
				c.Output.Format = "xml"
			},
			wantErr: "invalid output format",
		},
		{
			name: "invalid log level",
			modify: func(c *config.Config) {
				c.Log.Level = "invalid"
			},
			wantErr: "invalid log level",
		},
		{
			name: "invalid log format",
			modify: func(c *config.Config) {
				c.Log.Format = "logfmt"
			},
			wantErr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoaderDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoaderEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTSEAL_CRYPTO_SCHEME", "PBKDF2")
	t.Setenv("TEXTSEAL_CRYPTO_ITERATIONS", "5000")
	t.Setenv("TEXTSEAL_OUTPUT_STRICT_EXIT", "true")
	t.Setenv("TEXTSEAL_LOG_LEVEL", "debug")

	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, "pbkdf2", cfg.Crypto.Scheme)
	assert.Equal(t, 5000, cfg.Crypto.Iterations)
	assert.True(t, cfg.Output.StrictExit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoaderFile(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "textseal.json",
			content: `{
				"crypto": {"scheme": "pbkdf2", "normalize": "nfc"},
				"log": {"level": "info", "format": "json"}
			}`,
		},
		{
			name: "yaml",
			file: "textseal.yaml",
			content: `crypto:
  scheme: pbkdf2
  normalize: nfc
log:
  level: info
  format: json
`,
		},
		{
			name: "toml",
			file: "textseal.toml",
			content: `[crypto]
scheme = "pbkdf2"
normalize = "nfc"

[log]
level = "info"
format = "json"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			loader := config.NewLoader(configPath)
			cfg, err := loader.Load()
			require.NoError(t, err)

			assert.Equal(t, configPath, loader.ConfigFile())
			assert.Equal(t, "pbkdf2", cfg.Crypto.Scheme)
			assert.Equal(t, "nfc", cfg.Crypto.Normalize)
			assert.Equal(t, 1000, cfg.Crypto.Iterations)
			assert.Equal(t, "info", cfg.Log.Level)
			assert.Equal(t, "json", cfg.Log.Format)
		})
	}
}

func TestLoaderMissingFile(t *testing.T) {
	isolate(t)

	_, err := config.NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestLoaderInvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTSEAL_CRYPTO_SCHEME", "rot13")

	_, err := config.NewLoader("").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid crypto scheme")
}

func TestLoaderPrecedence(t *testing.T) {
	isolate(t)

	configPath := filepath.Join(t.TempDir(), "textseal.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("crypto:\n  scheme: pbkdf2\n  iterations: 2000\nlog:\n  level: info\n"), 0644))
	t.Setenv("TEXTSEAL_LOG_LEVEL", "error")
	t.Setenv("TEXTSEAL_CRYPTO_ITERATIONS", "3000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("scheme", "sha256", "")
	flags.Int("iterations", 1000, "")
	flags.String("log-level", "warn", "")
	require.NoError(t, flags.Parse([]string{"--scheme", "sha256"}))

	loader := config.NewLoader(configPath)
	require.NoError(t, loader.BindFlags(flags))

	cfg, err := loader.Load()
	require.NoError(t, err)

	// Flag beats file
	assert.Equal(t, "sha256", cfg.Crypto.Scheme)
	// Env beats file
	assert.Equal(t, 3000, cfg.Crypto.Iterations)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestConfigEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(tmpDir, "logs", "textseal.log")

	err := cfg.EnsureDirectories()
	require.NoError(t, err)

	assert.DirExists(t, filepath.Dir(cfg.Log.File))
}

func TestSaveExample(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "textseal.json")

	require.NoError(t, config.SaveExample(path))

	cfg, err := config.NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}
