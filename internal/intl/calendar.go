package intl

import (
	"time"
)

// Calendars whose year numbering is implemented. Other valid identifiers
// resolve to the locale default.
var supportedCalendars = []string{"gregory", "iso8601", "buddhist", "japanese", "roc"}

// SupportedCalendars lists calendars the formatter can render.
func SupportedCalendars() []string {
	out := make([]string, len(supportedCalendars))
	copy(out, supportedCalendars)
	return out
}

type eraLabel struct {
	narrow, short, long string
}

func (e eraLabel) width(style string) string {
	switch style {
	case "narrow":
		return e.narrow
	case "long":
		return e.long
	default:
		return e.short
	}
}

type japaneseEra struct {
	start time.Time
	en    eraLabel
	ja    string
}

var japaneseEras = []japaneseEra{
	{start: time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC), en: eraLabel{"R", "Reiwa", "Reiwa"}, ja: "令和"},
	{start: time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC), en: eraLabel{"H", "Heisei", "Heisei"}, ja: "平成"},
	{start: time.Date(1926, time.December, 25, 0, 0, 0, 0, time.UTC), en: eraLabel{"S", "Shōwa", "Shōwa"}, ja: "昭和"},
	{start: time.Date(1912, time.July, 30, 0, 0, 0, 0, time.UTC), en: eraLabel{"T", "Taishō", "Taishō"}, ja: "大正"},
	{start: time.Date(1868, time.October, 23, 0, 0, 0, 0, time.UTC), en: eraLabel{"M", "Meiji", "Meiji"}, ja: "明治"},
}

// calendarYear converts the wall-clock date of t into the year and era of
// the given calendar. implicitEra reports whether the calendar shows its era
// whenever a year is shown.
func calendarYear(calendar string, t time.Time, ld localeData) (year int, era eraLabel, implicitEra bool) {
	switch calendar {
	case "buddhist":
		label := eraLabel{"BE", "BE", "Buddhist Era"}
		if ld.cjk {
			label = eraLabel{"仏暦", "仏暦", "仏暦"}
		}
		return t.Year() + 543, label, true

	case "roc":
		y := t.Year() - 1911
		if y >= 1 {
			label := eraLabel{"Minguo", "Minguo", "Minguo"}
			if ld.cjk {
				label = eraLabel{"民國", "民國", "民國"}
			}
			return y, label, true
		}
		label := eraLabel{"B.R.O.C.", "B.R.O.C.", "Before R.O.C."}
		if ld.cjk {
			label = eraLabel{"民國前", "民國前", "民國前"}
		}
		return 1 - y, label, true

	case "japanese":
		civil := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		for _, e := range japaneseEras {
			if !civil.Before(e.start) {
				label := e.en
				if ld.cjk {
					label = eraLabel{e.ja, e.ja, e.ja}
				}
				return t.Year() - e.start.Year() + 1, label, true
			}
		}
	}

	y := t.Year()
	idx := 1
	if y <= 0 {
		y = 1 - y
		idx = 0
	}
	return y, eraLabel{ld.eras.narrow[idx], ld.eras.short[idx], ld.eras.long[idx]}, false
}
