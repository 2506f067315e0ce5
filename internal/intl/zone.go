package intl

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Embed the zone database so resolution does not depend on the host.
	_ "time/tzdata"
)

var utcAliases = map[string]bool{
	"utc": true, "etc/utc": true, "etc/gmt": true, "gmt": true,
	"etc/universal": true, "etc/zulu": true, "universal": true, "zulu": true,
}

// resolveZone loads an IANA zone name. UTC aliases canonicalise to "UTC".
func resolveZone(name string) (*time.Location, string, error) {
	trimmed := strings.TrimSpace(name)
	if utcAliases[strings.ToLower(trimmed)] {
		return time.UTC, "UTC", nil
	}
	if trimmed == "" || strings.EqualFold(trimmed, "local") {
		return nil, "", &RangeError{Option: OptTimeZone, Value: name, Msg: "Invalid time zone specified: " + name}
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, "", &RangeError{Option: OptTimeZone, Value: name, Msg: "Invalid time zone specified: " + name}
	}
	return loc, loc.String(), nil
}

// zoneID names a location the way resolvedOptions does: the process-local
// zone is reported through TZ when it is set, UTC otherwise.
func zoneID(loc *time.Location) string {
	if loc == nil || loc == time.UTC {
		return "UTC"
	}
	name := loc.String()
	if name == "Local" {
		if _, resolved, err := resolveZone(tzEnv()); err == nil {
			return resolved
		}
		return "UTC"
	}
	return name
}

func tzEnv() string {
	return strings.TrimPrefix(os.Getenv("TZ"), ":")
}

type metazone struct {
	standard, daylight string
	generic            string
	short              string
}

// metazones gives English display names for commonly used zones.
var metazones = map[string]metazone{
	"UTC":                 {"Coordinated Universal Time", "Coordinated Universal Time", "Coordinated Universal Time", "UTC"},
	"America/New_York":    {"Eastern Standard Time", "Eastern Daylight Time", "Eastern Time", "ET"},
	"America/Detroit":     {"Eastern Standard Time", "Eastern Daylight Time", "Eastern Time", "ET"},
	"America/Toronto":     {"Eastern Standard Time", "Eastern Daylight Time", "Eastern Time", "ET"},
	"America/Chicago":     {"Central Standard Time", "Central Daylight Time", "Central Time", "CT"},
	"America/Denver":      {"Mountain Standard Time", "Mountain Daylight Time", "Mountain Time", "MT"},
	"America/Phoenix":     {"Mountain Standard Time", "Mountain Standard Time", "Mountain Time", "MT"},
	"America/Los_Angeles": {"Pacific Standard Time", "Pacific Daylight Time", "Pacific Time", "PT"},
	"America/Vancouver":   {"Pacific Standard Time", "Pacific Daylight Time", "Pacific Time", "PT"},
	"America/Anchorage":   {"Alaska Standard Time", "Alaska Daylight Time", "Alaska Time", "AKT"},
	"Pacific/Honolulu":    {"Hawaii-Aleutian Standard Time", "Hawaii-Aleutian Daylight Time", "Hawaii-Aleutian Time", "HST"},
	"Europe/London":       {"Greenwich Mean Time", "British Summer Time", "United Kingdom Time", ""},
	"Europe/Dublin":       {"Greenwich Mean Time", "Irish Standard Time", "Ireland Time", ""},
	"Europe/Berlin":       {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Paris":        {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Madrid":       {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Rome":         {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Amsterdam":    {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Stockholm":    {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Warsaw":       {"Central European Standard Time", "Central European Summer Time", "Central European Time", ""},
	"Europe/Athens":       {"Eastern European Standard Time", "Eastern European Summer Time", "Eastern European Time", ""},
	"Europe/Helsinki":     {"Eastern European Standard Time", "Eastern European Summer Time", "Eastern European Time", ""},
	"Europe/Kyiv":         {"Eastern European Standard Time", "Eastern European Summer Time", "Eastern European Time", ""},
	"Europe/Moscow":       {"Moscow Standard Time", "Moscow Summer Time", "Moscow Time", ""},
	"Asia/Tokyo":          {"Japan Standard Time", "Japan Daylight Time", "Japan Time", ""},
	"Asia/Seoul":          {"Korean Standard Time", "Korean Daylight Time", "Korean Time", ""},
	"Asia/Shanghai":       {"China Standard Time", "China Daylight Time", "China Time", ""},
	"Asia/Taipei":         {"Taipei Standard Time", "Taipei Daylight Time", "Taipei Time", ""},
	"Asia/Kolkata":        {"India Standard Time", "India Standard Time", "India Standard Time", ""},
	"Australia/Sydney":    {"Australian Eastern Standard Time", "Australian Eastern Daylight Time", "Eastern Australia Time", ""},
	"Australia/Melbourne": {"Australian Eastern Standard Time", "Australian Eastern Daylight Time", "Eastern Australia Time", ""},
}

// zoneName renders t's zone in the requested timeZoneName style.
func zoneName(t time.Time, zoneID, style string, ld localeData) string {
	abbr, offset := t.Zone()
	meta, known := metazones[zoneID]
	dst := t.IsDST()

	switch style {
	case "short":
		if zoneID == "UTC" {
			return "UTC"
		}
		if ld.zoneAbbr && known && meta.short != "" && isAlpha(abbr) {
			return abbr
		}
		return shortOffset(offset)
	case "long":
		if known && ld.english {
			if dst {
				return meta.daylight
			}
			return meta.standard
		}
		return longOffset(offset)
	case "shortGeneric":
		if ld.zoneAbbr && known && meta.short != "" {
			return meta.short
		}
		return shortOffset(offset)
	case "longGeneric":
		if known && ld.english {
			return meta.generic
		}
		return longOffset(offset)
	case "longOffset":
		return longOffset(offset)
	default:
		return shortOffset(offset)
	}
}

func shortOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign, h, m := splitOffset(offset)
	if m == 0 {
		return fmt.Sprintf("GMT%s%d", sign, h)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, h, m)
}

func longOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign, h, m := splitOffset(offset)
	return fmt.Sprintf("GMT%s%02d:%02d", sign, h, m)
}

func splitOffset(offset int) (string, int, int) {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return sign, offset / 3600, (offset % 3600) / 60
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
