// Package file loads application configuration from a TOML file.
// Configuration is deliberately explicit: the storage engine is chosen
// here, never by probing the runtime environment.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Verbose bool          `toml:"verbose"`
}

// StorageConfig selects and locates the storage engine.
type StorageConfig struct {
	// Engine is "file" or "snapshot".
	Engine string `toml:"engine"`

	// Dir is the data directory. Empty means ~/.kasir/data.
	Dir string `toml:"dir"`

	// Database is the database name, without extension.
	Database string `toml:"database"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Engine:   "file",
			Database: "kasir",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.kasir/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".kasir", "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults; a present but malformed file is an error, not a silent
// fallback.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = "kasir"
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
