package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/five82/dtexplorer/internal/clipboard"
	"github.com/five82/dtexplorer/internal/config"
	"github.com/five82/dtexplorer/internal/intl"
	"github.com/five82/dtexplorer/internal/logger"
	"github.com/five82/dtexplorer/internal/prefs"
	"github.com/five82/dtexplorer/internal/snippet"
	"github.com/five82/dtexplorer/internal/state"
	"github.com/five82/dtexplorer/internal/ui"
)

// Options configure the dtexplorer application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/dtexplorer/config.toml
	PrefsPath  string // empty uses default ~/.config/dtexplorer/prefs.toml
	LogLevel   string // overrides log_level from the config file
}

// Environment is everything a session needs from the host: settings and the
// formatter built from them. DefaultLocale is default_locale from the config,
// or the user's ambient locale when that is unset. The formatter and the
// snippet both fall back to it.
type Environment struct {
	Config        config.Config
	Formatter     intl.Engine
	DefaultLocale string

	log io.Closer
}

// Load reads the config file, opens the log and builds the formatter.
// Callers must Close the environment.
func Load(opts Options) (*Environment, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if override := strings.TrimSpace(opts.LogLevel); override != "" {
		level = override
	}
	closer, err := logger.Open(cfg.LogFile, level)
	if err != nil {
		return nil, err
	}

	ambient := snippet.AmbientLocale()
	defaultLocale := cfg.DefaultLocale
	if defaultLocale == "" {
		defaultLocale = ambient
	}

	logger.Info("dtexplorer starting",
		"default_locale", defaultLocale,
		"time_zone", cfg.Location().String(),
		"ambient_locale", ambient,
	)

	return &Environment{
		Config: cfg,
		Formatter: intl.Engine{
			DefaultLocale: defaultLocale,
			DefaultZone:   cfg.Location(),
		},
		DefaultLocale: defaultLocale,
		log:           closer,
	}, nil
}

// Now returns the current time in the configured zone.
func (e *Environment) Now() time.Time {
	return time.Now().In(e.Config.Location())
}

// Close flushes and closes the log file.
func (e *Environment) Close() error {
	if e == nil || e.log == nil {
		return nil
	}
	return e.log.Close()
}

// Run boots the dtexplorer TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Load(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load preferences failed", "error", err)
	}

	uiOpts := ui.Options{
		Context:       ctx,
		Store:         state.NewStore(env.Now()),
		Formatter:     env.Formatter,
		Copier:        clipboard.New(),
		DefaultLocale: env.DefaultLocale,
		ThemeName:     userPrefs.Theme,
		ShowSnippet:   userPrefs.ShowSnippet,
		PrefsPath:     opts.PrefsPath,
		Now:           env.Now,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("dtexplorer exiting")
	return nil
}
