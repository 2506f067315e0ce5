package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.DefaultLocale != "" || cfg.LogFile != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Location() != time.Local {
		t.Fatalf("Location = %v, want Local", cfg.Location())
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "dtexplorer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`default_locale = "ja-JP"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultLocale != "ja-JP" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
default_locale = "  de-DE  "
time_zone = "Europe/Berlin"
log_file = "  ~/.local/state/dtexplorer/dtexplorer.log  "
log_level = "DEBUG"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultLocale != "de-DE" {
		t.Fatalf("DefaultLocale = %q, want %q", cfg.DefaultLocale, "de-DE")
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Fatalf("Location = %q", cfg.Location())
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`time_zone = "Mars/Base"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "Mars/Base") {
		t.Fatalf("expected time_zone error, got %v", err)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_locale = \n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x.toml")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, "x.toml") {
		t.Fatalf("got %q", got)
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
