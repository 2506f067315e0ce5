package state

import "strings"

// Clear is the sentinel a control sends to unset a field.
const Clear = "clear"

// ExtensionKind names a Unicode locale extension key the form can drive.
type ExtensionKind int

const (
	ExtNone ExtensionKind = iota
	ExtNumberingSystem
	ExtCalendar
	ExtHourCycle
)

// Key returns the BCP 47 -u- key ("nu", "ca", "hc").
func (k ExtensionKind) Key() string {
	switch k {
	case ExtNumberingSystem:
		return "nu"
	case ExtCalendar:
		return "ca"
	case ExtHourCycle:
		return "hc"
	default:
		return ""
	}
}

func (k ExtensionKind) String() string {
	switch k {
	case ExtNumberingSystem:
		return "numbering system"
	case ExtCalendar:
		return "calendar"
	case ExtHourCycle:
		return "hour cycle"
	default:
		return "none"
	}
}

// Extension is the single active locale extension sub-tag.
type Extension struct {
	Kind  ExtensionKind
	Value string
}

// Active reports whether an extension is in effect.
func (e Extension) Active() bool { return e.Kind != ExtNone && e.Value != "" }

// Configuration is the formatting configuration. It is a comparable value;
// transitions always return a new one.
type Configuration struct {
	// Locale is the full locale tag including any -u- suffix; empty means
	// the platform default.
	Locale    string
	Extension Extension
	Options   Options
}

// BaseLocale returns the locale without its -u- extension suffix.
func (c Configuration) BaseLocale() string {
	return stripExtension(c.Locale)
}

// IsEmpty reports whether nothing has been configured.
func (c Configuration) IsEmpty() bool {
	return c == Configuration{}
}

// ExtensionValue returns the value for kind when it is the active extension.
func (c Configuration) ExtensionValue(kind ExtensionKind) (string, bool) {
	if c.Extension.Kind != kind || !c.Extension.Active() {
		return "", false
	}
	return c.Extension.Value, true
}

func stripExtension(locale string) string {
	if i := extensionIndex(locale); i >= 0 {
		return locale[:i]
	}
	return locale
}

// extensionIndex finds "-u-" case-insensitively. Only ASCII bytes are
// folded so the offset is valid in locale itself.
func extensionIndex(locale string) int {
	for i := 0; i+3 <= len(locale); i++ {
		if locale[i] == '-' && locale[i+2] == '-' && (locale[i+1] == 'u' || locale[i+1] == 'U') {
			return i
		}
	}
	return -1
}

func composeLocale(base string, ext Extension) string {
	if base == "" || !ext.Active() {
		return base
	}
	return base + "-u-" + ext.Kind.Key() + "-" + ext.Value
}

// normalizeValue maps the clear sentinel and blanks to "".
func normalizeValue(v string) string {
	v = strings.TrimSpace(v)
	if v == Clear {
		return ""
	}
	return v
}
