// ABOUTME: Arista configuration management with backend selection.
// ABOUTME: Layers a JSON config file, ARISTA_* environment overrides, and a storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"
	"github.com/harperreed/arista/internal/logging"
	"github.com/harperreed/arista/internal/storage"
	"github.com/mitchellh/go-homedir"
)

// Supported storage backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Backends lists every accepted backend name.
var Backends = []string{BackendSQLite, BackendBadger}

// Config stores arista tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty" env:"ARISTA_BACKEND"`

	// DataDir is the root directory for data storage.
	// SQLite puts arista.db here. Badger keeps its files in kv/.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/arista.
	DataDir string `json:"data_dir,omitempty" env:"ARISTA_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" env:"ARISTA_LOG_LEVEL"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return logging.DefaultLevel
	}
	return c.LogLevel
}

// Validate rejects unknown backends and log levels.
func (c *Config) Validate() error {
	switch c.GetBackend() {
	case BackendSQLite, BackendBadger:
	default:
		return fmt.Errorf("unknown backend: %q (want one of %v)", c.Backend, Backends)
	}
	if !logging.ValidLevel(c.GetLogLevel()) {
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return nil
}

// ApplyEnv overrides fields with any ARISTA_* variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// StoragePath returns where backend keeps its files under dataDir.
func StoragePath(backend, dataDir string) string {
	if backend == BackendBadger {
		return filepath.Join(dataDir, "kv")
	}
	return filepath.Join(dataDir, "arista.db")
}

// OpenStorage creates a Store implementation based on the configured backend.
// The logger receives Badger's internal messages.
func (c *Config) OpenStorage(logger *log.Logger) (storage.Store, error) {
	backend := c.GetBackend()
	path := StoragePath(backend, c.GetDataDir())

	switch backend {
	case BackendSQLite:
		return storage.Open(path)
	case BackendBadger:
		return storage.OpenKV(path, logger)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := homedir.Dir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "arista", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads config from path. A missing file yields an empty config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
