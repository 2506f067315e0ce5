package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the host-level settings dtexplorer reads at startup.
type Config struct {
	// DefaultLocale stands in for the platform default locale when the form
	// has no locale selected. Empty means en-US.
	DefaultLocale string
	// TimeZone overrides the host zone used when no timeZone option is set.
	TimeZone string
	// LogFile receives structured logs. Empty disables logging.
	LogFile  string
	LogLevel string

	location *time.Location
}

const (
	defaultConfigPath = "~/.config/dtexplorer/config.toml"
	defaultLogLevel   = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogLevel: defaultLogLevel, location: time.Local}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DefaultLocale string `toml:"default_locale"`
		TimeZone      string `toml:"time_zone"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DefaultLocale = strings.TrimSpace(raw.DefaultLocale)

	cfg.TimeZone = strings.TrimSpace(raw.TimeZone)
	if cfg.TimeZone != "" {
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return Config{}, fmt.Errorf("time_zone %q: %w", cfg.TimeZone, err)
		}
		cfg.location = loc
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

// Location returns the zone instants are shown in by default.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
