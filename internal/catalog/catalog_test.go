package catalog

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/five82/dtexplorer/internal/state"
)

func TestLocalesHaveDisplayNames(t *testing.T) {
	locales := Locales()
	if len(locales) == 0 || locales[0].Tag != "en-US" {
		t.Fatalf("unexpected first locale %+v", locales)
	}
	for _, l := range locales {
		if l.Tag == "de-DE" {
			if l.English != "German (Germany)" {
				t.Fatalf("de-DE english name = %q", l.English)
			}
			if l.Title() == l.Tag {
				t.Fatalf("title fell back to tag")
			}
			return
		}
	}
	t.Fatal("de-DE missing from catalogue")
}

func TestOptionValues(t *testing.T) {
	if got := OptionValues(state.Hour12); !slices.Equal(got, []string{"true", "false"}) {
		t.Fatalf("hour12 values = %v", got)
	}
	if got := OptionValues(state.Month); !slices.Equal(got, []string{"numeric", "2-digit", "narrow", "short", "long"}) {
		t.Fatalf("month values = %v", got)
	}
	if got := ExtensionValues(state.ExtHourCycle); !slices.Equal(got, []string{"h11", "h12", "h23", "h24"}) {
		t.Fatalf("hour cycles = %v", got)
	}
	if !slices.Contains(ExtensionValues(state.ExtNumberingSystem), "arab") {
		t.Fatal("numbering systems missing arab")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		if values, ok := Lookup(name); !ok || len(values) == 0 {
			t.Errorf("Lookup(%q) = %v, %v", name, values, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown catalogue resolved")
	}
}

func TestZonesFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"Europe/Berlin":                  {Data: []byte("TZif")},
		"America/Argentina/Buenos_Aires": {Data: []byte("TZif")},
		"posix/Europe/Berlin":            {Data: []byte("TZif")},
		"zone.tab":                       {Data: []byte("#")},
		"Etc/UTC":                        {Data: []byte("TZif")},
	}
	got := zonesFromFS(fsys)
	want := []string{"America/Argentina/Buenos_Aires", "Etc/UTC", "Europe/Berlin", "UTC"}
	if !slices.Equal(got, want) {
		t.Fatalf("zones = %v, want %v", got, want)
	}
}

func TestTimeZonesStableAndFiltered(t *testing.T) {
	first := TimeZones()
	if len(first) == 0 || !slices.IsSorted(first) {
		t.Fatalf("zones not sorted or empty")
	}
	if !slices.Equal(first, TimeZones()) {
		t.Fatal("zone catalogue changed between calls")
	}
	for _, z := range FilterZones("berlin") {
		if z != "Europe/Berlin" {
			t.Fatalf("unexpected match %q", z)
		}
	}
}
