package state

import (
	"strings"
	"testing"
)

func TestReduce_SetLocaleAndClear(t *testing.T) {
	cfg := Reduce(Configuration{}, SetLocale{Value: "en-US"})
	if cfg.Locale != "en-US" {
		t.Fatalf("Locale = %q, want en-US", cfg.Locale)
	}

	cfg = Reduce(cfg, SetLocaleExtension{Kind: ExtCalendar, Value: "buddhist"})
	cfg = Reduce(cfg, SetLocale{Value: Clear})
	if cfg.Locale != "" {
		t.Fatalf("Locale = %q, want empty after clear", cfg.Locale)
	}
	if cfg.Extension.Active() {
		t.Fatalf("Extension = %#v, want inactive after clearing locale", cfg.Extension)
	}
}

func TestReduce_SetLocaleRecomposesActiveExtension(t *testing.T) {
	cfg := Reduce(Configuration{}, SetLocale{Value: "en-US"})
	cfg = Reduce(cfg, SetLocaleExtension{Kind: ExtHourCycle, Value: "h23"})
	cfg = Reduce(cfg, SetLocale{Value: "de-DE"})
	if cfg.Locale != "de-DE-u-hc-h23" {
		t.Fatalf("Locale = %q, want de-DE-u-hc-h23", cfg.Locale)
	}

	// An incoming suffix is replaced by the active extension.
	cfg = Reduce(cfg, SetLocale{Value: "fr-FR-u-nu-arab"})
	if cfg.Locale != "fr-FR-u-hc-h23" {
		t.Fatalf("Locale = %q, want fr-FR-u-hc-h23", cfg.Locale)
	}
}

func TestReduce_ExtensionMutualExclusion(t *testing.T) {
	values := map[ExtensionKind]string{
		ExtNumberingSystem: "arab",
		ExtCalendar:        "japanese",
		ExtHourCycle:       "h11",
	}
	kinds := []ExtensionKind{ExtNumberingSystem, ExtCalendar, ExtHourCycle}

	for _, first := range kinds {
		for _, second := range kinds {
			if first == second {
				continue
			}
			t.Run(first.Key()+"_then_"+second.Key(), func(t *testing.T) {
				cfg := Reduce(Configuration{}, SetLocale{Value: "en-US"})
				cfg = Reduce(cfg, SetLocaleExtension{Kind: first, Value: values[first]})
				cfg = Reduce(cfg, SetLocaleExtension{Kind: second, Value: values[second]})

				want := "en-US-u-" + second.Key() + "-" + values[second]
				if cfg.Locale != want {
					t.Fatalf("Locale = %q, want %q", cfg.Locale, want)
				}
				if cfg.Extension.Kind != second {
					t.Fatalf("Extension.Kind = %v, want %v", cfg.Extension.Kind, second)
				}
				if _, ok := cfg.ExtensionValue(first); ok {
					t.Fatalf("%s still active after activating %s", first, second)
				}
			})
		}
	}
}

func TestReduce_ExtensionWithoutLocaleIsNoop(t *testing.T) {
	for _, kind := range []ExtensionKind{ExtNumberingSystem, ExtCalendar, ExtHourCycle} {
		start := Reduce(Configuration{}, SetOption{Field: Year, Value: "numeric"})
		got := Reduce(start, SetLocaleExtension{Kind: kind, Value: "latn"})
		if got != start {
			t.Fatalf("%s: configuration changed without base locale: %#v", kind, got)
		}
		if again := Reduce(got, SetLocaleExtension{Kind: kind, Value: "latn"}); again != start {
			t.Fatalf("%s: repeated no-op changed configuration", kind)
		}
	}
}

func TestReduce_ClearingExtension(t *testing.T) {
	cfg := Reduce(Configuration{}, SetLocale{Value: "ja-JP"})
	cfg = Reduce(cfg, SetLocaleExtension{Kind: ExtCalendar, Value: "japanese"})

	// Clearing a kind that is not active does nothing.
	if got := Reduce(cfg, SetLocaleExtension{Kind: ExtNumberingSystem, Value: Clear}); got != cfg {
		t.Fatalf("clearing inactive kind changed config: %#v", got)
	}

	cfg = Reduce(cfg, SetLocaleExtension{Kind: ExtCalendar, Value: Clear})
	if cfg.Locale != "ja-JP" || cfg.Extension.Active() {
		t.Fatalf("after clear: Locale=%q Extension=%#v, want ja-JP and none", cfg.Locale, cfg.Extension)
	}
}

func TestReduce_OptionRoundTrip(t *testing.T) {
	values := map[Field]string{
		DateStyle:       "full",
		TimeStyle:       "short",
		LocaleMatcher:   "lookup",
		Calendar:        "buddhist",
		NumberingSystem: "thai",
		TimeZone:        "Asia/Tokyo",
		HourCycle:       "h23",
		FormatMatcher:   "basic",
		Weekday:         "long",
		Era:             "short",
		Year:            "2-digit",
		Month:           "narrow",
		Day:             "numeric",
		Hour:            "2-digit",
		Minute:          "numeric",
		Second:          "2-digit",
		TimeZoneName:    "shortOffset",
	}

	base := Configuration{}
	for f, v := range values {
		base = Reduce(base, SetOption{Field: f, Value: v})
	}

	for f, v := range values {
		t.Run(f.Key(), func(t *testing.T) {
			cleared := Reduce(base, SetOption{Field: f, Value: Clear})
			if _, ok := cleared.Options.Get(f); ok {
				t.Fatalf("%s still set after clear", f)
			}
			restored := Reduce(cleared, SetOption{Field: f, Value: v})
			if restored != base {
				t.Fatalf("%s round trip: got %#v, want %#v", f, restored, base)
			}
		})
	}
}

func TestReduce_SetOptionLeavesOthersUntouched(t *testing.T) {
	cfg := Reduce(Configuration{}, SetOption{Field: Month, Value: "long"})
	cfg = Reduce(cfg, SetOption{Field: Year, Value: "numeric"})

	if v, _ := cfg.Options.Get(Month); v != "long" {
		t.Fatalf("month = %q, want long", v)
	}
	if cfg.Options.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cfg.Options.Len())
	}
}

func TestReduce_Hour12(t *testing.T) {
	cfg := Reduce(Configuration{}, SetUse12Hour{Value: false})
	if v, ok := cfg.Options.Hour12(); !ok || v {
		t.Fatalf("Hour12 = %v,%v want false,true", v, ok)
	}
	cfg = Reduce(cfg, SetUse12Hour{Value: true})
	if v, ok := cfg.Options.Hour12(); !ok || !v {
		t.Fatalf("Hour12 = %v,%v want true,true", v, ok)
	}

	// hour12 is not reachable through SetOption.
	if got := Reduce(cfg, SetOption{Field: Hour12, Value: Clear}); got != cfg {
		t.Fatalf("SetOption(hour12) changed config")
	}

	cfg = Reduce(cfg, ClearUse12Hour{})
	if _, ok := cfg.Options.Hour12(); ok {
		t.Fatalf("hour12 still set after ClearUse12Hour")
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Reduce(Configuration{}, SetOption{Field: Day, Value: "numeric"})
	snapshot := before

	_ = Reduce(before, SetOption{Field: Day, Value: "2-digit"})
	_ = Reduce(before, Reset{})

	if before != snapshot {
		t.Fatalf("input configuration mutated: %#v", before)
	}
}

func TestReduce_Reset(t *testing.T) {
	cfg := Reduce(Configuration{}, SetLocale{Value: "en-GB"})
	cfg = Reduce(cfg, SetOption{Field: Weekday, Value: "short"})
	if got := Reduce(cfg, Reset{}); !got.IsEmpty() {
		t.Fatalf("Reset = %#v, want empty", got)
	}
}

func TestOptions_DefinedOrder(t *testing.T) {
	var o Options
	o = o.With(Month, "long")
	o = o.With(Year, "numeric")
	o = o.With(DateStyle, "full")

	got := o.Defined()
	want := []Field{DateStyle, Year, Month}
	if len(got) != len(want) {
		t.Fatalf("Defined() = %#v, want %d entries", got, len(want))
	}
	for i, f := range want {
		if got[i].Field != f {
			t.Fatalf("Defined()[%d] = %s, want %s", i, got[i].Field, f)
		}
	}
}

func TestFieldByKey(t *testing.T) {
	for _, f := range Fields() {
		got, ok := FieldByKey(f.Key())
		if !ok || got != f {
			t.Fatalf("FieldByKey(%q) = %v,%v want %v", f.Key(), got, ok, f)
		}
	}
	if _, ok := FieldByKey("dayPeriod"); ok {
		t.Fatalf("FieldByKey(dayPeriod) should be unknown")
	}
}

func TestReduce_SetLocaleNonASCII(t *testing.T) {
	invalid := strings.Repeat("\xff", 10)
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"invalid utf-8", invalid + "-u-ca-x", invalid},
		{"case-changing runes", "ȺȺȺȺ-u-ca-x", "ȺȺȺȺ"},
		{"upper-case singleton", "en-US-U-nu-arab", "en-US"},
		{"no extension", "ȺȺȺȺ", "ȺȺȺȺ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Reduce(Configuration{}, SetLocale{Value: tt.value})
			if cfg.Locale != tt.want {
				t.Fatalf("Locale = %q, want %q", cfg.Locale, tt.want)
			}
			if got := cfg.BaseLocale(); got != tt.want {
				t.Fatalf("BaseLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}
