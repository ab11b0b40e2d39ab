package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	configPath string
	envPrefix  string
	v          *viper.Viper
}

// NewLoader creates a config loader.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		envPrefix:  "TEXTSEAL",
		v:          viper.New(),
	}
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"scheme":     "crypto.scheme",
	"iterations": "crypto.iterations",
	"normalize":  "crypto.normalize",
	"strict":     "output.strict_exit",
	"log-level":  "log.level",
}

// BindFlags lets explicitly set flags override file and environment values.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// ConfigFile returns the file that was read, if any.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Load reads configuration from defaults, file, environment and flags,
// in increasing precedence.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults(DefaultConfig())

	l.v.SetEnvPrefix(l.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.readFile(); err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Crypto.Scheme = strings.ToLower(cfg.Crypto.Scheme)
	cfg.Crypto.Normalize = strings.ToLower(cfg.Crypto.Normalize)
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (l *Loader) setDefaults(d *Config) {
	l.v.SetDefault("crypto.scheme", d.Crypto.Scheme)
	l.v.SetDefault("crypto.iterations", d.Crypto.Iterations)
	l.v.SetDefault("crypto.normalize", d.Crypto.Normalize)

	l.v.SetDefault("output.format", d.Output.Format)
	l.v.SetDefault("output.color", d.Output.Color)
	l.v.SetDefault("output.strict_exit", d.Output.StrictExit)

	l.v.SetDefault("log.level", d.Log.Level)
	l.v.SetDefault("log.format", d.Log.Format)
	l.v.SetDefault("log.file", d.Log.File)
	l.v.SetDefault("log.color", d.Log.Color)
	l.v.SetDefault("log.timestamp", d.Log.Timestamp)
}

// readFile loads an explicit config file, or the first textseal.{yaml,json,toml}
// found in the default locations. A missing default file is not an error.
func (l *Loader) readFile() error {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)
		return l.v.ReadInConfig()
	}

	l.v.SetConfigName("textseal")
	for _, dir := range l.defaultPaths() {
		l.v.AddConfigPath(dir)
	}

	err := l.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// defaultPaths returns default config file locations.
func (l *Loader) defaultPaths() []string {
	paths := []string{"."}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".config", "textseal"),
			filepath.Join(homeDir, ".textseal"),
		)
	}

	return paths
}

// SaveExample writes the default config as JSON.
func SaveExample(path string) error {
	cfg := DefaultConfig()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
