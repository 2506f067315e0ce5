// Package snippet renders the JavaScript that reproduces the current
// formatting configuration, for pasting into a browser console.
package snippet

import (
	"fmt"
	"os"
	"strings"
	"time"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/five82/dtexplorer/internal/state"
)

// FallbackLocale is used when the environment names no usable locale.
const FallbackLocale = "en"

// Render returns the snippet for moment and cfg. defaultLocale stands in
// when cfg has no locale.
//
// The day slot of the Date.UTC call carries the weekday ordinal
// (0 = Sunday), not the day of the month. Exported snippets have always
// done this and users paste them as-is.
func Render(moment time.Time, cfg state.Configuration, defaultLocale string) string {
	locale := cfg.Locale
	if locale == "" {
		locale = defaultLocale
	}
	if locale == "" {
		locale = FallbackLocale
	}

	var b strings.Builder
	fmt.Fprintf(&b, "var date = new Date(Date.UTC(%d, %d, %d, %d, %d, %d));\n",
		moment.Year(), int(moment.Month())-1, int(moment.Weekday()),
		moment.Hour(), moment.Minute(), moment.Second())
	fmt.Fprintf(&b, "const formattedDate = new Intl.DateTimeFormat(%s, {\n", quote(locale))

	entries := cfg.Options.Defined()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  %s: %s", e.Field.Key(), literal(e)))
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n}).format(date);")
	return b.String()
}

func literal(e state.Entry) string {
	if e.Field.IsBool() {
		return e.Value
	}
	return quote(e.Value)
}

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// quote returns s as a single-quoted JavaScript string literal.
func quote(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

// AmbientLocale reports the user's preferred locale from the environment:
// LC_ALL, LC_MESSAGES, LANGUAGE (first entry), then LANG. POSIX names such
// as de_DE.UTF-8 are converted to BCP 47. C and POSIX are skipped. When
// none is set the platform setting (AppleLocale, the Windows user locale)
// is asked before giving up.
func AmbientLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		if tag, ok := posixToTag(os.Getenv(key)); ok {
			return tag
		}
	}
	if platform, err := golocale.GetLocale(); err == nil {
		if tag, ok := posixToTag(platform); ok {
			return tag
		}
	}
	return FallbackLocale
}

func posixToTag(raw string) (string, bool) {
	raw, _, _ = strings.Cut(raw, ":")
	raw, _, _ = strings.Cut(raw, ".")
	raw, _, _ = strings.Cut(raw, "@")
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "C" || raw == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil || tag == language.Und {
		return "", false
	}
	return tag.String(), true
}
