// Package catalog holds the read-only value lists the form offers: locales,
// extension values, option enumerations and time zones.
package catalog

import (
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/five82/dtexplorer/internal/intl"
	"github.com/five82/dtexplorer/internal/state"
)

// Locale is one selectable locale tag with human-readable names.
type Locale struct {
	Tag     string
	English string // "German (Germany)"
	Native  string // "Deutsch (Deutschland)"
}

// Title returns the label shown in pickers.
func (l Locale) Title() string {
	if l.English == "" {
		return l.Tag
	}
	if l.Native == "" || l.Native == l.English {
		return l.English
	}
	return l.English + " · " + l.Native
}

// extraLocales are offered even without formatting data; the formatter
// resolves them to the closest supported locale.
var extraLocales = []string{
	"en-AU", "en-CA", "en-IN", "fr-CA", "fr-CH", "de-AT", "de-CH", "es-MX",
	"ar-EG", "he-IL", "hi-IN", "th-TH", "vi-VN", "id-ID", "el-GR", "hu-HU",
	"ro-RO", "fa-IR", "bn-BD",
}

// Locales returns the locale catalogue: locales with formatting data first,
// then the rest, each group in a fixed order.
func Locales() []Locale {
	tags := append(intl.SupportedLocales(), extraLocales...)
	out := make([]Locale, 0, len(tags))
	for _, s := range tags {
		out = append(out, describe(s))
	}
	return out
}

func describe(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{Tag: s}
	}
	return Locale{
		Tag:     s,
		English: display.English.Tags().Name(tag),
		Native:  display.Self.Name(tag),
	}
}

// NumberingSystems lists values for the -u-nu- extension and the
// numberingSystem option.
func NumberingSystems() []string { return intl.SupportedNumberingSystems() }

// Calendars lists every calendar identifier Intl accepts. Calendars the
// formatter cannot render fall back to gregory at format time.
func Calendars() []string {
	return []string{
		"buddhist", "chinese", "coptic", "dangi", "ethioaa", "ethiopic",
		"gregory", "hebrew", "indian", "islamic", "islamic-civil",
		"islamic-rgsa", "islamic-tbla", "islamic-umalqura", "iso8601",
		"japanese", "persian", "roc",
	}
}

// HourCycles lists values for -u-hc- and the hourCycle option.
func HourCycles() []string { return intl.AllowedValues(intl.OptHourCycle) }

// ExtensionValues returns the choices for one locale extension kind.
func ExtensionValues(kind state.ExtensionKind) []string {
	switch kind {
	case state.ExtNumberingSystem:
		return NumberingSystems()
	case state.ExtCalendar:
		return Calendars()
	case state.ExtHourCycle:
		return HourCycles()
	}
	return nil
}

// OptionValues returns the ordered choices for an option field. hour12
// yields true/false.
func OptionValues(f state.Field) []string {
	switch f {
	case state.Hour12:
		return []string{"true", "false"}
	case state.Calendar:
		return Calendars()
	case state.NumberingSystem:
		return NumberingSystems()
	case state.TimeZone:
		return TimeZones()
	}
	return intl.AllowedValues(f.Key())
}

// Names lists the catalogues Lookup understands.
func Names() []string {
	names := []string{"locales", "numberingSystems", "calendars", "hourCycles", "timeZones"}
	for _, f := range state.Fields() {
		if !slices.Contains(names, f.Key()+"s") && intl.AllowedValues(f.Key()) != nil {
			names = append(names, f.Key())
		}
	}
	return names
}

// Lookup returns a catalogue by name: one of Names.
func Lookup(name string) ([]string, bool) {
	switch name {
	case "locales":
		locales := Locales()
		out := make([]string, len(locales))
		for i, l := range locales {
			out[i] = l.Tag
		}
		return out, true
	case "numberingSystems":
		return NumberingSystems(), true
	case "calendars":
		return Calendars(), true
	case "hourCycles":
		return HourCycles(), true
	case "timeZones":
		return TimeZones(), true
	}
	if f, ok := state.FieldByKey(name); ok {
		if values := OptionValues(f); values != nil {
			return values, true
		}
	}
	return nil, false
}
