package intl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format renders t in the formatter's time zone.
func (f *DateTimeFormat) Format(t time.Time) string {
	t = t.In(f.loc)

	date := f.formatDate(t)
	clock := f.formatTime(t)

	var out string
	switch {
	case date != "" && clock != "":
		join := f.ld.dateTimeSep
		if (f.dateStyle == "full" || f.dateStyle == "long") && f.ld.dateTimeAt != "" {
			join = f.ld.dateTimeAt
		}
		out = date + join + clock
	case date != "":
		out = date
	default:
		out = clock
	}

	if f.fields.timeZoneName != "" {
		name := zoneName(t, f.zone, f.fields.timeZoneName, f.ld)
		if out == "" {
			out = name
		} else {
			out += " " + name
		}
	}
	return transliterate(out, f.numbering)
}

func number(n int, style string) string {
	if style == "2-digit" {
		return fmt.Sprintf("%02d", n%100)
	}
	return strconv.Itoa(n)
}

func isTextMonth(style string) bool {
	return style == "narrow" || style == "short" || style == "long"
}

func (f *DateTimeFormat) formatDate(t time.Time) string {
	fs := f.fields
	if !fs.hasDate() && fs.era == "" {
		return ""
	}
	ld := f.ld

	year, era, implicitEra := calendarYear(f.calendar, t, ld)
	var eraText string
	if fs.era != "" || (implicitEra && fs.year != "") {
		width := fs.era
		if width == "" && !isTextMonth(fs.month) {
			width = "narrow"
		}
		eraText = era.width(width)
	}

	var body string
	switch {
	case ld.cjk && (isTextMonth(fs.month) || (fs.month == "" && fs.year != "" && fs.day == "")):
		body = f.cjkDate(t, year, eraText)
	case isTextMonth(fs.month):
		body = f.textDate(t, year)
		if eraText != "" {
			body = joinNonEmpty(" ", body, eraText)
		}
	default:
		body = f.numericDate(t, year)
		if eraText != "" {
			body = joinNonEmpty(" ", body, eraText)
		}
	}

	if fs.weekday == "" {
		return body
	}
	wd := weekdayName(t, fs.weekday, ld.names)
	if body == "" {
		return wd
	}
	if ld.weekdayLast {
		return body + ld.weekdaySep + wd
	}
	return wd + ld.weekdaySep + body
}

func (f *DateTimeFormat) numericDate(t time.Time, year int) string {
	fs := f.fields
	ld := f.ld

	y, m, d := "", "", ""
	if fs.year != "" {
		y = number(year, fs.year)
	}
	if fs.month != "" {
		m = number(int(t.Month()), fs.month)
	}
	if fs.day != "" {
		d = number(t.Day(), fs.day)
	}

	var parts []string
	switch ld.numericOrder {
	case orderMDY:
		parts = []string{m, d, y}
	case orderYMD:
		parts = []string{y, m, d}
	default:
		parts = []string{d, m, y}
	}
	s := joinNonEmpty(ld.dateSep, parts...)
	if s == "" {
		return ""
	}
	return s + ld.numericTrail
}

func (f *DateTimeFormat) textDate(t time.Time, year int) string {
	fs := f.fields
	ld := f.ld

	month := monthName(t, fs.month, fs.day != "", ld.names)
	var y, d string
	if fs.year != "" {
		y = number(year, fs.year) + ld.textYearTail
	}
	if fs.day != "" {
		d = number(t.Day(), fs.day)
		if ld.dayDot {
			d += "."
		}
	}

	switch ld.textOrder {
	case orderMDY:
		// "March 15, 2024", "March 2024", "March 15"
		md := joinNonEmpty(" ", month, d)
		if d != "" && y != "" {
			return md + ", " + y
		}
		return joinNonEmpty(" ", md, y)
	case orderYMD:
		return joinNonEmpty(" ", y, month, d)
	default:
		return joinNonEmpty(ld.textJoin, d, month, y)
	}
}

// cjkDate writes "2024年3月15日" style dates with the era as a prefix.
func (f *DateTimeFormat) cjkDate(t time.Time, year int, eraText string) string {
	fs := f.fields
	ld := f.ld

	var parts []string
	if fs.year != "" {
		parts = append(parts, eraText+number(year, fs.year)+ld.yearMark)
	} else if eraText != "" {
		parts = append(parts, eraText)
	}
	if fs.month != "" {
		m := number(int(t.Month()), "numeric")
		if fs.month == "2-digit" {
			m = number(int(t.Month()), "2-digit")
		}
		parts = append(parts, m+ld.monthMark)
	}
	if fs.day != "" {
		parts = append(parts, number(t.Day(), fs.day)+ld.dayMark)
	}
	return strings.Join(parts, ld.markSpace)
}

func (f *DateTimeFormat) formatTime(t time.Time) string {
	fs := f.fields
	if !fs.hasTime() {
		return ""
	}
	ld := f.ld

	twelve := f.hourCycle == "h11" || f.hourCycle == "h12"
	var parts []string
	if fs.hour != "" {
		h := t.Hour()
		switch f.hourCycle {
		case "h11":
			h %= 12
		case "h12":
			h %= 12
			if h == 0 {
				h = 12
			}
		case "h24":
			if h == 0 {
				h = 24
			}
		}
		style := fs.hour
		if !twelve {
			style = "2-digit"
		}
		parts = append(parts, number(h, style))
	}
	if fs.minute != "" {
		style := fs.minute
		if fs.hour != "" {
			style = "2-digit"
		}
		parts = append(parts, number(t.Minute(), style))
	}
	if fs.second != "" {
		style := fs.second
		if fs.minute != "" || fs.hour != "" {
			style = "2-digit"
		}
		parts = append(parts, number(t.Second(), style))
	}
	clock := strings.Join(parts, ld.timeSep)

	if !twelve || fs.hour == "" {
		return clock
	}
	period := ld.am
	if t.Hour() >= 12 {
		period = ld.pm
	}
	if ld.periodFirst {
		return period + ld.periodSep + clock
	}
	return clock + ld.periodSep + period
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
