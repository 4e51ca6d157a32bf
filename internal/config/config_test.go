// ABOUTME: Tests for arista configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "badger"}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want %q", got, "badger")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	cfg := &Config{}
	if got := cfg.GetDataDir(); got != "/tmp/xdg/arista" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/xdg/arista")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := homedir.Dir()

	cfg := &Config{DataDir: "~/arista-data"}
	want := filepath.Join(home, "arista-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := homedir.Dir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"data/arista", "data/arista"},
		{"~", home},
		{"~/data/arista", filepath.Join(home, "data/arista")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"badger debug", Config{Backend: "badger", LogLevel: "debug"}, false},
		{"unknown backend", Config{Backend: "markdown"}, true},
		{"unknown level", Config{LogLevel: "verbose"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Backend:  "badger",
		DataDir:  "/tmp/arista-data",
		LogLevel: "info",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := (&Config{Backend: "sqlite", DataDir: "/from/file"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	t.Setenv("ARISTA_BACKEND", "badger")
	t.Setenv("ARISTA_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != "badger" {
		t.Errorf("Backend = %q, want badger", cfg.Backend)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DataDir != "/from/file" {
		t.Errorf("DataDir = %q, file value should survive", cfg.DataDir)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{Backend: "sqlite"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "arista")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "arista")
	_ = os.MkdirAll(configDir, 0755)
	_ = os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	want := filepath.Join(tmpDir, "arista", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{Backend: "sqlite", DataDir: tmpDir}

	store, err := cfg.OpenStorage(nil)
	if err != nil {
		t.Fatalf("OpenStorage() for sqlite failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "arista.db")); os.IsNotExist(err) {
		t.Error("Expected arista.db to be created")
	}
}

func TestOpenStorageBadger(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{Backend: "badger", DataDir: tmpDir}

	store, err := cfg.OpenStorage(nil)
	if err != nil {
		t.Fatalf("OpenStorage() for badger failed: %v", err)
	}
	defer store.Close()

	nonEmpty, err := func() (bool, error) {
		entries, err := os.ReadDir(filepath.Join(tmpDir, "kv"))
		return len(entries) > 0, err
	}()
	if err != nil || !nonEmpty {
		t.Errorf("Expected badger files under kv/, err=%v", err)
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	cfg := &Config{Backend: "invalid", DataDir: t.TempDir()}
	if _, err := cfg.OpenStorage(nil); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
