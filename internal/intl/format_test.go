package intl

import (
	"errors"
	"testing"
	"time"
)

var (
	march15 = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	utc     = Engine{DefaultZone: time.UTC}
)

func mustFormat(t *testing.T, locale string, opts Options, at time.Time) string {
	t.Helper()
	got, err := utc.Format(locale, opts, at)
	if err != nil {
		t.Fatalf("Format(%q, %v) error: %v", locale, opts, err)
	}
	return got
}

func TestFormatFullDateStyle(t *testing.T) {
	got := mustFormat(t, "en-US", Options{OptDateStyle: "full"}, march15)
	if got != "Friday, March 15, 2024" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDefaultsToNumericDate(t *testing.T) {
	cases := map[string]string{
		"en-US": "3/15/2024",
		"de-DE": "15.3.2024",
		"ja-JP": "2024/3/15",
	}
	for locale, want := range cases {
		if got := mustFormat(t, locale, Options{}, march15); got != want {
			t.Errorf("%s: got %q, want %q", locale, got, want)
		}
	}
}

func TestFormatEmptyLocaleUsesDefault(t *testing.T) {
	e := Engine{DefaultLocale: "de-DE", DefaultZone: time.UTC}
	got, err := e.Format("", nil, march15)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "15.3.2024" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatCJKLongDate(t *testing.T) {
	if got := mustFormat(t, "ja-JP", Options{OptDateStyle: "long"}, march15); got != "2024年3月15日" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatTimeStyleShort(t *testing.T) {
	at := time.Date(2024, time.March, 15, 15, 4, 5, 0, time.UTC)
	if got := mustFormat(t, "en-US", Options{OptTimeStyle: "short"}, at); got != "3:04 PM" {
		t.Errorf("en-US: got %q", got)
	}
	if got := mustFormat(t, "de-DE", Options{OptTimeStyle: "short"}, at); got != "15:04" {
		t.Errorf("de-DE: got %q", got)
	}
}

func TestFormatHourCyclesAtMidnight(t *testing.T) {
	cases := map[string]string{
		"h11": "0 AM",
		"h12": "12 AM",
		"h23": "00",
		"h24": "24",
	}
	for hc, want := range cases {
		got := mustFormat(t, "en-US", Options{OptHour: "numeric", OptHourCycle: hc}, march15)
		if got != want {
			t.Errorf("%s: got %q, want %q", hc, got, want)
		}
	}
}

func TestHour12OverridesHourCycle(t *testing.T) {
	ro, err := utc.Resolve("en-US", Options{OptHour: "numeric", OptHourCycle: "h12", OptHour12: false})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.HourCycle != "h23" || ro.Hour12 {
		t.Fatalf("hour12=false: got %s/%v", ro.HourCycle, ro.Hour12)
	}

	ro, err = utc.Resolve("ja-JP", Options{OptHour: "numeric", OptHour12: true})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.HourCycle != "h11" || !ro.Hour12 {
		t.Fatalf("ja hour12=true: got %s/%v", ro.HourCycle, ro.Hour12)
	}
}

func TestFormatNumberingSystemExtension(t *testing.T) {
	got := mustFormat(t, "en-US-u-nu-arab", Options{}, march15)
	if got != "٣/١٥/٢٠٢٤" {
		t.Fatalf("got %q", got)
	}
	ro, err := utc.Resolve("en-US-u-nu-arab", nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Locale != "en-US-u-nu-arab" || ro.NumberingSystem != "arab" {
		t.Fatalf("resolved %q / %q", ro.Locale, ro.NumberingSystem)
	}
}

func TestOptionOverridesExtension(t *testing.T) {
	ro, err := utc.Resolve("en-US-u-nu-arab", Options{OptNumberingSystem: "thai"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Locale != "en-US" || ro.NumberingSystem != "thai" {
		t.Fatalf("resolved %q / %q", ro.Locale, ro.NumberingSystem)
	}
}

func TestFormatBuddhistCalendar(t *testing.T) {
	if got := mustFormat(t, "en-US", Options{OptCalendar: "buddhist"}, march15); got != "3/15/2567 BE" {
		t.Fatalf("got %q", got)
	}
}

func TestUnsupportedCalendarFallsBack(t *testing.T) {
	ro, err := utc.Resolve("en-US", Options{OptCalendar: "hebrew"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Calendar != "gregory" {
		t.Fatalf("calendar = %q", ro.Calendar)
	}
}

func TestFormatTimeZoneName(t *testing.T) {
	got := mustFormat(t, "en-US", Options{
		OptTimeZone:     "America/New_York",
		OptHour:         "numeric",
		OptMinute:       "2-digit",
		OptTimeZoneName: "short",
	}, march15)
	if got != "8:00 PM EDT" {
		t.Fatalf("got %q", got)
	}
}

func TestLocaleMatchers(t *testing.T) {
	ro, err := utc.Resolve("zh-Hant-TW", Options{OptLocaleMatcher: "lookup"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Locale != "zh-CN" {
		t.Errorf("lookup: got %q", ro.Locale)
	}

	ro, err = utc.Resolve("zh-Hant-TW", Options{OptLocaleMatcher: "best fit"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Locale != "zh-TW" {
		t.Errorf("best fit: got %q", ro.Locale)
	}

	ro, err = utc.Resolve("de-CH", Options{OptLocaleMatcher: "lookup"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Locale != "de-DE" {
		t.Errorf("lookup de-CH: got %q", ro.Locale)
	}
}

func TestUnknownLanguageFallsBackToDefault(t *testing.T) {
	ro, err := utc.Resolve("xx", Options{OptLocaleMatcher: "lookup"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ro.Locale != "en-US" {
		t.Fatalf("got %q", ro.Locale)
	}
}

func TestFormatErrors(t *testing.T) {
	cases := []struct {
		name      string
		locale    string
		opts      Options
		wantRange bool
	}{
		{"malformed locale", "!!", nil, true},
		{"unknown zone", "en-US", Options{OptTimeZone: "Not/AZone"}, true},
		{"bad enum", "en-US", Options{OptWeekday: "bogus"}, true},
		{"bad calendar syntax", "en-US", Options{OptCalendar: "x"}, true},
		{"wrong type", "en-US", Options{OptHour12: "yes"}, false},
		{"style with field", "en-US", Options{OptDateStyle: "full", OptYear: "numeric"}, false},
		{"time style with era", "en-US", Options{OptTimeStyle: "short", OptEra: "long"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utc.Format(tc.locale, tc.opts, march15)
			if err == nil {
				t.Fatal("expected error")
			}
			var re *RangeError
			var te *TypeError
			switch {
			case tc.wantRange && !errors.As(err, &re):
				t.Fatalf("want RangeError, got %T: %v", err, err)
			case !tc.wantRange && !errors.As(err, &te):
				t.Fatalf("want TypeError, got %T: %v", err, err)
			}
		})
	}
}

func TestResolvedEntriesOrder(t *testing.T) {
	ro, err := utc.Resolve("en-US", Options{OptHour: "numeric", OptYear: "numeric"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	var keys []string
	for _, e := range ro.Entries() {
		keys = append(keys, e.Key)
	}
	want := []string{"locale", "calendar", "numberingSystem", "timeZone", "hourCycle", "hour12", "year", "hour"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if ro.TimeZone != "UTC" {
		t.Fatalf("timeZone = %q", ro.TimeZone)
	}
}

func TestTransliterate(t *testing.T) {
	if got := transliterate("12:05", "hanidec"); got != "一二:〇五" {
		t.Fatalf("hanidec: %q", got)
	}
	if got := transliterate("2024", "deva"); got != "२०२४" {
		t.Fatalf("deva: %q", got)
	}
}

func TestNarrowWeekday(t *testing.T) {
	cases := map[string]string{
		"en-US": "F",
		"de-DE": "F",
		"ja-JP": "金",
		"zh-CN": "五",
		"zh-TW": "五",
	}
	for locale, want := range cases {
		got := mustFormat(t, locale, Options{OptWeekday: "narrow"}, march15)
		if got != want {
			t.Errorf("%s: got %q, want %q", locale, got, want)
		}
	}
}
