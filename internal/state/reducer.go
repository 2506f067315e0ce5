package state

import "fmt"

// Action is a single form event. The set is closed.
type Action interface {
	isAction()
	fmt.Stringer
}

// SetLocale replaces the base locale. Clear unsets the locale together with
// any active extension.
type SetLocale struct{ Value string }

// SetLocaleExtension activates one -u- key on the current base locale.
type SetLocaleExtension struct {
	Kind  ExtensionKind
	Value string
}

// SetOption sets or clears one string-valued option.
type SetOption struct {
	Field Field
	Value string
}

// SetUse12Hour sets the hour12 flag.
type SetUse12Hour struct{ Value bool }

// ClearUse12Hour removes the hour12 flag.
type ClearUse12Hour struct{}

// Reset returns to the empty configuration.
type Reset struct{}

func (SetLocale) isAction()          {}
func (SetLocaleExtension) isAction() {}
func (SetOption) isAction()          {}
func (SetUse12Hour) isAction()       {}
func (ClearUse12Hour) isAction()     {}
func (Reset) isAction()              {}

func (a SetLocale) String() string { return fmt.Sprintf("locale=%q", a.Value) }
func (a SetLocaleExtension) String() string {
	return fmt.Sprintf("%s=%q", a.Kind.Key(), a.Value)
}
func (a SetOption) String() string    { return fmt.Sprintf("%s=%q", a.Field.Key(), a.Value) }
func (a SetUse12Hour) String() string { return fmt.Sprintf("hour12=%t", a.Value) }
func (ClearUse12Hour) String() string { return "hour12=clear" }
func (Reset) String() string          { return "reset" }

// Reduce computes the configuration that follows cfg after action. It never
// mutates its inputs; transitions that do not apply return cfg unchanged.
func Reduce(cfg Configuration, action Action) Configuration {
	switch a := action.(type) {
	case SetLocale:
		return reduceLocale(cfg, a)
	case SetLocaleExtension:
		return reduceExtension(cfg, a)
	case SetOption:
		if !a.Field.Valid() || a.Field.IsBool() {
			return cfg
		}
		cfg.Options = cfg.Options.With(a.Field, normalizeValue(a.Value))
		return cfg
	case SetUse12Hour:
		v := "false"
		if a.Value {
			v = "true"
		}
		cfg.Options = cfg.Options.With(Hour12, v)
		return cfg
	case ClearUse12Hour:
		cfg.Options = cfg.Options.Without(Hour12)
		return cfg
	case Reset:
		return Configuration{}
	default:
		return cfg
	}
}

func reduceLocale(cfg Configuration, a SetLocale) Configuration {
	base := stripExtension(normalizeValue(a.Value))
	if base == "" {
		cfg.Locale = ""
		cfg.Extension = Extension{}
		return cfg
	}
	cfg.Locale = composeLocale(base, cfg.Extension)
	return cfg
}

func reduceExtension(cfg Configuration, a SetLocaleExtension) Configuration {
	base := cfg.BaseLocale()
	if base == "" || a.Kind == ExtNone || a.Kind.Key() == "" {
		return cfg
	}

	value := normalizeValue(a.Value)
	if value == "" {
		if cfg.Extension.Kind != a.Kind {
			return cfg
		}
		cfg.Extension = Extension{}
		cfg.Locale = base
		return cfg
	}

	cfg.Extension = Extension{Kind: a.Kind, Value: value}
	cfg.Locale = composeLocale(base, cfg.Extension)
	return cfg
}
