package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/dtexplorer/internal/snippet"
	"github.com/five82/dtexplorer/internal/state"
)

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_UsesConfig(t *testing.T) {
	clearLocaleEnv(t)
	t.Setenv("LANG", "fr_FR.UTF-8")
	logPath := filepath.Join(t.TempDir(), "logs", "dtexplorer.log")
	path := writeConfig(t, "default_locale = \"de-DE\"\ntime_zone = \"Asia/Tokyo\"\nlog_file = \""+logPath+"\"\n")

	env, err := Load(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if env.Formatter.DefaultLocale != "de-DE" {
		t.Fatalf("DefaultLocale = %q, want de-DE", env.Formatter.DefaultLocale)
	}
	if env.Formatter.DefaultZone.String() != "Asia/Tokyo" {
		t.Fatalf("DefaultZone = %v, want Asia/Tokyo", env.Formatter.DefaultZone)
	}
	if env.DefaultLocale != "de-DE" {
		t.Fatalf("Environment.DefaultLocale = %q, want de-DE", env.DefaultLocale)
	}
	if loc := env.Now().Location(); loc.String() != "Asia/Tokyo" {
		t.Fatalf("Now() location = %v", loc)
	}
	if err := env.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "dtexplorer starting") {
		t.Fatalf("log = %q, want startup record", data)
	}
}

func TestLoad_DefaultLocaleFallsBackToAmbient(t *testing.T) {
	clearLocaleEnv(t)
	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	path := writeConfig(t, "")

	env, err := Load(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer env.Close()

	if env.Formatter.DefaultLocale != "ja-JP" {
		t.Fatalf("DefaultLocale = %q, want ja-JP", env.Formatter.DefaultLocale)
	}
	got, err := env.Formatter.Format("", nil, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "2024/3/15" {
		t.Fatalf("Format = %q, want 2024/3/15", got)
	}
	if env.DefaultLocale != "ja-JP" {
		t.Fatalf("Environment.DefaultLocale = %q, want ja-JP", env.DefaultLocale)
	}
}

func TestLoad_SnippetMatchesDisplayLocale(t *testing.T) {
	clearLocaleEnv(t)
	t.Setenv("LANG", "fr_FR.UTF-8")
	path := writeConfig(t, "default_locale = \"de-DE\"\ntime_zone = \"UTC\"\n")

	env, err := Load(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer env.Close()

	moment := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	display, err := env.Formatter.Format("", nil, moment)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if display != "15.3.2024" {
		t.Fatalf("Format = %q, want 15.3.2024", display)
	}
	text := snippet.Render(moment, state.Configuration{}, env.DefaultLocale)
	if !strings.Contains(text, "new Intl.DateTimeFormat('de-DE', {") {
		t.Fatalf("snippet = %q, want de-DE locale", text)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	clearLocaleEnv(t)
	path := writeConfig(t, "time_zone = \"Nowhere/Special\"\n")
	if _, err := Load(Options{ConfigPath: path}); err == nil {
		t.Fatal("expected error for unknown time zone")
	}
}

func TestEnvironment_CloseNil(t *testing.T) {
	var env *Environment
	if err := env.Close(); err != nil {
		t.Fatalf("Close on nil = %v", err)
	}
}
