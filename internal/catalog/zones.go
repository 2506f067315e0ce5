package catalog

import (
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
)

var zoneRoots = []string{"/usr/share/zoneinfo", "/usr/lib/zoneinfo", "/usr/share/lib/zoneinfo"}

var zoneAreas = []string{
	"Africa", "America", "Antarctica", "Arctic", "Asia", "Atlantic",
	"Australia", "Europe", "Indian", "Pacific", "Etc",
}

// fallbackZones is used when the host has no zoneinfo tree.
var fallbackZones = []string{
	"Africa/Cairo", "Africa/Johannesburg", "Africa/Lagos", "Africa/Nairobi",
	"America/Anchorage", "America/Argentina/Buenos_Aires", "America/Bogota",
	"America/Chicago", "America/Denver", "America/Halifax", "America/Lima",
	"America/Los_Angeles", "America/Mexico_City", "America/New_York",
	"America/Phoenix", "America/Santiago", "America/Sao_Paulo",
	"America/St_Johns", "America/Toronto", "America/Vancouver",
	"Asia/Bangkok", "Asia/Dhaka", "Asia/Dubai", "Asia/Hong_Kong",
	"Asia/Jakarta", "Asia/Jerusalem", "Asia/Karachi", "Asia/Kathmandu",
	"Asia/Kolkata", "Asia/Manila", "Asia/Seoul", "Asia/Shanghai",
	"Asia/Singapore", "Asia/Taipei", "Asia/Tehran", "Asia/Tokyo",
	"Atlantic/Azores", "Atlantic/Reykjavik", "Australia/Adelaide",
	"Australia/Brisbane", "Australia/Melbourne", "Australia/Perth",
	"Australia/Sydney", "Etc/GMT", "Europe/Amsterdam", "Europe/Athens",
	"Europe/Berlin", "Europe/Dublin", "Europe/Helsinki", "Europe/Istanbul",
	"Europe/Kyiv", "Europe/Lisbon", "Europe/London", "Europe/Madrid",
	"Europe/Moscow", "Europe/Paris", "Europe/Rome", "Europe/Stockholm",
	"Europe/Warsaw", "Europe/Zurich", "Pacific/Auckland", "Pacific/Honolulu",
	"UTC",
}

var (
	zonesOnce sync.Once
	zones     []string
)

// TimeZones returns the IANA zone identifiers known to the host, sorted.
// The list is built once per process.
func TimeZones() []string {
	zonesOnce.Do(func() {
		for _, root := range zoneRoots {
			if found := zonesFromFS(os.DirFS(root)); len(found) > 0 {
				zones = found
				return
			}
		}
		zones = slices.Clone(fallbackZones)
		slices.Sort(zones)
	})
	return slices.Clone(zones)
}

// FilterZones returns the zones containing substr, case-insensitively.
func FilterZones(substr string) []string {
	all := TimeZones()
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return all
	}
	out := all[:0]
	for _, z := range all {
		if strings.Contains(strings.ToLower(z), needle) {
			out = append(out, z)
		}
	}
	return out
}

func zonesFromFS(fsys fs.FS) []string {
	var out []string
	_ = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != "." && !isZoneArea(path) {
				return fs.SkipDir
			}
			return nil
		}
		if isZoneArea(path) && strings.Contains(path, "/") {
			out = append(out, path)
		}
		return nil
	})
	if len(out) == 0 {
		return nil
	}
	out = append(out, "UTC")
	slices.Sort(out)
	return slices.Compact(out)
}

func isZoneArea(path string) bool {
	area, _, _ := strings.Cut(path, "/")
	return slices.Contains(zoneAreas, area)
}
