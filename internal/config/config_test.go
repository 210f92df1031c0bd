package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataPath(t *testing.T) {
	t.Setenv("RESOURCEDEX_DATA", "")
	if got := DataPath(); got != DefaultDataPath {
		t.Errorf("DataPath() = %q, want %q", got, DefaultDataPath)
	}

	t.Setenv("RESOURCEDEX_DATA", "/srv/catalog.csv")
	if got := DataPath(); got != "/srv/catalog.csv" {
		t.Errorf("DataPath() = %q, want %q", got, "/srv/catalog.csv")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RESOURCEDEX_DATA", "")
	t.Setenv("RESOURCEDEX_LOG_LEVEL", "")
	t.Setenv("RESOURCEDEX_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataPath != DefaultDataPath {
		t.Errorf("DataPath = %q, want %q", cfg.DataPath, DefaultDataPath)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RESOURCEDEX_DATA", "/data/resources.csv")
	t.Setenv("RESOURCEDEX_LOG_LEVEL", "DEBUG")
	t.Setenv("RESOURCEDEX_DB", "/data/snapshot.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataPath != "/data/resources.csv" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DBPath != "/data/snapshot.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("RESOURCEDEX_DATA", "")
	t.Setenv("RESOURCEDEX_LOG_LEVEL", "")

	dir := filepath.Join(xdg, "resourcedex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "data: /home/me/Resources.csv\nlog_level: info\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataPath != "/home/me/Resources.csv" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestReadFile_ExplicitMissing(t *testing.T) {
	v := NewViper()
	if err := ReadFile(v, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("ReadFile() with a missing explicit file should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/resources.json", filepath.Join(home, "resources.json")},
		{"/abs/resources.json", "/abs/resources.json"},
		{"relative.csv", "relative.csv"},
		{"~", home},
		{"~alice/resources.json", "~alice/resources.json"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
