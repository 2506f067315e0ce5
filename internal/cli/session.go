package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/dtexplorer/internal/app"
	"github.com/five82/dtexplorer/internal/state"
)

// sessionFlags describe one configuration and moment on the command line.
type sessionFlags struct {
	locale  string
	ext     string
	at      string
	options []string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.locale, "locale", "", "BCP 47 locale (default: platform locale)")
	cmd.Flags().StringVar(&f.ext, "ext", "", "Locale extension as key=value (nu, ca or hc)")
	cmd.Flags().StringVar(&f.at, "at", "", "Moment to format, RFC 3339 (default: now)")
	cmd.Flags().StringArrayVar(&f.options, "opt", nil, "Option as key=value, or key=clear (repeatable)")
}

// configuration replays the flags through the reducer, the same way the
// form builds a configuration.
func (f *sessionFlags) configuration() (state.Configuration, error) {
	var cfg state.Configuration

	if locale := strings.TrimSpace(f.locale); locale != "" {
		cfg = state.Reduce(cfg, state.SetLocale{Value: locale})
	}

	if f.ext != "" {
		if cfg.BaseLocale() == "" {
			return cfg, fmt.Errorf("--ext requires --locale")
		}
		k, v, err := splitPair(f.ext)
		if err != nil {
			return cfg, fmt.Errorf("--ext: %w", err)
		}
		kind, ok := extensionKind(k)
		if !ok {
			return cfg, fmt.Errorf("--ext: unknown key %q (want nu, ca or hc)", k)
		}
		cfg = state.Reduce(cfg, state.SetLocaleExtension{Kind: kind, Value: v})
	}

	for _, raw := range f.options {
		k, v, err := splitPair(raw)
		if err != nil {
			return cfg, fmt.Errorf("--opt: %w", err)
		}
		field, ok := state.FieldByKey(k)
		if !ok {
			return cfg, fmt.Errorf("--opt: unknown option %q", k)
		}
		action, err := optionAction(field, v)
		if err != nil {
			return cfg, fmt.Errorf("--opt %s: %w", k, err)
		}
		cfg = state.Reduce(cfg, action)
	}
	return cfg, nil
}

func (f *sessionFlags) moment(env *app.Environment) (time.Time, error) {
	if strings.TrimSpace(f.at) == "" {
		return env.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(f.at))
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	return t, nil
}

func optionAction(field state.Field, value string) (state.Action, error) {
	if !field.IsBool() {
		return state.SetOption{Field: field, Value: value}, nil
	}
	switch value {
	case "true":
		return state.SetUse12Hour{Value: true}, nil
	case "false":
		return state.SetUse12Hour{Value: false}, nil
	case state.Clear:
		return state.ClearUse12Hour{}, nil
	}
	return nil, fmt.Errorf("want true, false or %s, got %q", state.Clear, value)
}

func extensionKind(key string) (state.ExtensionKind, bool) {
	for _, kind := range []state.ExtensionKind{state.ExtNumberingSystem, state.ExtCalendar, state.ExtHourCycle} {
		if kind.Key() == key {
			return kind, true
		}
	}
	return state.ExtNone, false
}

func splitPair(raw string) (string, string, error) {
	k, v, ok := strings.Cut(raw, "=")
	k, v = strings.TrimSpace(k), strings.TrimSpace(v)
	if !ok || k == "" || v == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", raw)
	}
	return k, v, nil
}
