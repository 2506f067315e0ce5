package intl

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"
)

// monthName returns the localised month name. withDay selects the form used
// next to a day number, which differs from the standalone form in
// inflected languages ("15 марта" vs "март").
func monthName(t time.Time, width string, withDay bool, loc monday.Locale) string {
	layout := "January"
	if width == "short" {
		layout = "Jan"
	}

	var name string
	if withDay && width != "narrow" {
		name = strings.TrimLeft(monday.Format(t, "2 "+layout, loc), "0123456789. ")
	} else {
		name = monday.Format(t, layout, loc)
	}

	if width == "narrow" {
		return narrow(name)
	}
	return name
}

func weekdayName(t time.Time, width string, loc monday.Locale) string {
	switch width {
	case "short":
		return monday.Format(t, "Mon", loc)
	case "narrow":
		name := monday.Format(t, "Monday", loc)
		if chineseWeekday(loc) {
			// 星期五 narrows to its ordinal, not the shared prefix.
			r, _ := utf8.DecodeLastRuneInString(name)
			return string(r)
		}
		return narrow(name)
	default:
		return monday.Format(t, "Monday", loc)
	}
}

func chineseWeekday(loc monday.Locale) bool {
	switch loc {
	case monday.LocaleZhCN, monday.LocaleZhTW:
		return true
	}
	return false
}

// narrow reduces a name to its first letter, upper-cased for cased scripts.
func narrow(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r))
}
