package intl

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Formatter turns a locale, an options record and an instant into display
// text. Errors are *RangeError or *TypeError.
type Formatter interface {
	Format(locale string, opts Options, t time.Time) (string, error)
}

// Engine is the built-in Formatter.
type Engine struct {
	// DefaultLocale is used when the requested locale is empty or matches
	// nothing. Empty means en-US.
	DefaultLocale string
	// DefaultZone is used when no timeZone option is given. Nil means
	// time.Local.
	DefaultZone *time.Location
}

var _ Formatter = Engine{}

// DateTimeFormat is a resolved formatter, ready to format instants.
type DateTimeFormat struct {
	ld        localeData
	locale    string
	calendar  string
	numbering string
	hourCycle string
	loc       *time.Location
	zone      string
	dateStyle string
	timeStyle string
	fields    fieldSet
}

// Format formats t with a freshly resolved DateTimeFormat.
func (e Engine) Format(locale string, opts Options, t time.Time) (string, error) {
	f, err := e.New(locale, opts)
	if err != nil {
		return "", err
	}
	return f.Format(t), nil
}

// Resolve reports the options a formatter would actually use.
func (e Engine) Resolve(locale string, opts Options) (ResolvedOptions, error) {
	f, err := e.New(locale, opts)
	if err != nil {
		return ResolvedOptions{}, err
	}
	return f.ResolvedOptions(), nil
}

type optionReader struct {
	opts Options
	err  error
}

func (r *optionReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	s, _, err := getString(r.opts, key)
	r.err = err
	return s
}

func (r *optionReader) unicodeType(key string) string {
	if r.err != nil {
		return ""
	}
	s, _, err := getUnicodeType(r.opts, key)
	r.err = err
	return s
}

func (r *optionReader) boolean(key string) (bool, bool) {
	if r.err != nil {
		return false, false
	}
	b, ok, err := getBool(r.opts, key)
	r.err = err
	return b, ok
}

// New resolves locale and opts into a DateTimeFormat. Options are read in
// the order Intl.DateTimeFormat reads them, so the first invalid one wins.
func (e Engine) New(locale string, opts Options) (*DateTimeFormat, error) {
	requested, explicit, err := parseLocale(locale)
	if err != nil {
		return nil, err
	}

	r := &optionReader{opts: opts}
	matcherKind := r.str(OptLocaleMatcher)
	calOpt := r.unicodeType(OptCalendar)
	nuOpt := r.unicodeType(OptNumberingSystem)
	hour12, hasHour12 := r.boolean(OptHour12)
	hcOpt := r.str(OptHourCycle)
	if r.err != nil {
		return nil, r.err
	}

	var loc *time.Location
	var zone string
	tzRaw, hasTZ, err := getString(opts, OptTimeZone)
	if err != nil {
		return nil, err
	}
	if hasTZ {
		if loc, zone, err = resolveZone(tzRaw); err != nil {
			return nil, err
		}
	} else {
		loc = e.DefaultZone
		if loc == nil {
			loc = time.Local
		}
		zone = zoneID(loc)
	}

	var fs fieldSet
	fs.weekday = r.str(OptWeekday)
	fs.era = r.str(OptEra)
	fs.year = r.str(OptYear)
	fs.month = r.str(OptMonth)
	fs.day = r.str(OptDay)
	fs.hour = r.str(OptHour)
	fs.minute = r.str(OptMinute)
	fs.second = r.str(OptSecond)
	fs.timeZoneName = r.str(OptTimeZoneName)
	r.str(OptFormatMatcher)
	dateStyle := r.str(OptDateStyle)
	timeStyle := r.str(OptTimeStyle)
	if r.err != nil {
		return nil, r.err
	}

	ld, ok := e.match(requested, explicit, matcherKind)
	if !ok {
		ld = e.defaultLocale()
	}

	if dateStyle != "" || timeStyle != "" {
		if key := fs.firstExplicit(); key != "" {
			style := OptDateStyle
			if dateStyle == "" {
				style = OptTimeStyle
			}
			return nil, &TypeError{Option: key, Msg: fmt.Sprintf("Can't set option %s when %s is used", key, style)}
		}
		if dateStyle != "" {
			fs = fs.merge(ld.dateStyle(dateStyle))
		}
		if timeStyle != "" {
			fs = fs.merge(timeStyles[timeStyle])
		}
	} else if !fs.hasDate() && !fs.hasTime() {
		fs.year, fs.month, fs.day = "numeric", "numeric", "numeric"
	}

	f := &DateTimeFormat{
		ld:        ld,
		calendar:  "gregory",
		numbering: ld.numbering,
		loc:       loc,
		zone:      zone,
		dateStyle: dateStyle,
		timeStyle: timeStyle,
		fields:    fs,
	}

	// Unicode extension keywords apply unless an option overrides them.
	// Only keywords that survive resolution are echoed in the locale.
	var kept []string
	if explicit {
		if ca := requested.TypeForKey("ca"); slices.Contains(supportedCalendars, ca) {
			f.calendar = ca
			if calOpt == "" || calOpt == ca {
				kept = append(kept, "ca-"+ca)
			}
		}
	}
	if slices.Contains(supportedCalendars, calOpt) {
		f.calendar = calOpt
	}

	hc := ld.hourCycle
	if explicit {
		if v := requested.TypeForKey("hc"); slices.Contains(allowedValues[OptHourCycle], v) {
			hc = v
			if (hcOpt == "" && !hasHour12) || hcOpt == v {
				kept = append(kept, "hc-"+v)
			}
		}
	}
	if hcOpt != "" {
		hc = hcOpt
	}
	if hasHour12 {
		if hour12 {
			hc = ld.hourCycle12
		} else {
			hc = "h23"
		}
	}
	if fs.hour != "" {
		f.hourCycle = hc
	}

	if explicit {
		if nu := requested.TypeForKey("nu"); supportsNumbering(nu) {
			f.numbering = nu
			if nuOpt == "" || nuOpt == nu {
				kept = append(kept, "nu-"+nu)
			}
		}
	}
	if supportsNumbering(nuOpt) {
		f.numbering = nuOpt
	}

	f.locale = ld.tag
	if len(kept) > 0 {
		f.locale += "-u-" + strings.Join(kept, "-")
	}
	return f, nil
}

func parseLocale(locale string) (language.Tag, bool, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, false, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		// Well-formed tags with unknown subtags still take part in
		// matching; only structural errors are rejected.
		var ve language.ValueError
		if !errors.As(err, &ve) {
			return language.Und, false, &RangeError{Option: "locale", Value: locale, Msg: "Incorrect locale information provided"}
		}
	}
	return tag, true, nil
}

var (
	supportedTags = func() []language.Tag {
		tags := make([]language.Tag, len(localeOrder))
		for i, name := range localeOrder {
			tags[i] = language.MustParse(name)
		}
		return tags
	}()
	bestFit = language.NewMatcher(supportedTags)

	// lookupIndex maps lower-cased prefixes to locale tags. A bare language
	// maps to the first listed region for it.
	lookupIndex = func() map[string]string {
		m := make(map[string]string, 2*len(localeOrder))
		for _, name := range localeOrder {
			m[strings.ToLower(name)] = name
			lang, _, _ := strings.Cut(name, "-")
			if _, ok := m[lang]; !ok {
				m[lang] = name
			}
		}
		return m
	}()
)

func (e Engine) match(tag language.Tag, explicit bool, matcherKind string) (localeData, bool) {
	if !explicit {
		return localeData{}, false
	}
	if matcherKind == "lookup" {
		return lookup(tag)
	}
	_, idx, conf := bestFit.Match(tag)
	if conf == language.No {
		return localeData{}, false
	}
	return locales[localeOrder[idx]], true
}

// lookup implements RFC 4647 lookup: the tag is truncated one subtag at a
// time until a supported locale is found.
func lookup(tag language.Tag) (localeData, bool) {
	base, script, region := tag.Raw()
	parts := []string{base.String()}
	if s := script.String(); s != "Zzzz" {
		parts = append(parts, s)
	}
	if r := region.String(); r != "ZZ" {
		parts = append(parts, r)
	}
	for i := len(parts); i > 0; i-- {
		if name, ok := lookupIndex[strings.ToLower(strings.Join(parts[:i], "-"))]; ok {
			return locales[name], true
		}
	}
	return localeData{}, false
}

func (e Engine) defaultLocale() localeData {
	if tag, explicit, err := parseLocale(e.DefaultLocale); err == nil && explicit {
		if ld, ok := lookup(tag); ok {
			return ld
		}
	}
	return locales["en-US"]
}

func (fs fieldSet) firstExplicit() string {
	switch {
	case fs.weekday != "":
		return OptWeekday
	case fs.era != "":
		return OptEra
	case fs.year != "":
		return OptYear
	case fs.month != "":
		return OptMonth
	case fs.day != "":
		return OptDay
	case fs.hour != "":
		return OptHour
	case fs.minute != "":
		return OptMinute
	case fs.second != "":
		return OptSecond
	case fs.timeZoneName != "":
		return OptTimeZoneName
	}
	return ""
}

func (fs fieldSet) merge(other fieldSet) fieldSet {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	fs.weekday = pick(fs.weekday, other.weekday)
	fs.era = pick(fs.era, other.era)
	fs.year = pick(fs.year, other.year)
	fs.month = pick(fs.month, other.month)
	fs.day = pick(fs.day, other.day)
	fs.hour = pick(fs.hour, other.hour)
	fs.minute = pick(fs.minute, other.minute)
	fs.second = pick(fs.second, other.second)
	fs.timeZoneName = pick(fs.timeZoneName, other.timeZoneName)
	return fs
}

// ResolvedOptions mirrors Intl.DateTimeFormat.prototype.resolvedOptions.
// Component fields are empty when a style was used.
type ResolvedOptions struct {
	Locale          string
	Calendar        string
	NumberingSystem string
	TimeZone        string
	HourCycle       string
	Hour12          bool
	DateStyle       string
	TimeStyle       string
	Weekday         string
	Era             string
	Year            string
	Month           string
	Day             string
	Hour            string
	Minute          string
	Second          string
	TimeZoneName    string
}

// Entry is one key/value pair of resolved options.
type Entry struct {
	Key   string
	Value string
}

// ResolvedOptions reports the settings f formats with.
func (f *DateTimeFormat) ResolvedOptions() ResolvedOptions {
	ro := ResolvedOptions{
		Locale:          f.locale,
		Calendar:        f.calendar,
		NumberingSystem: f.numbering,
		TimeZone:        f.zone,
		HourCycle:       f.hourCycle,
		Hour12:          f.hourCycle == "h11" || f.hourCycle == "h12",
		DateStyle:       f.dateStyle,
		TimeStyle:       f.timeStyle,
	}
	if f.dateStyle == "" && f.timeStyle == "" {
		ro.Weekday = f.fields.weekday
		ro.Era = f.fields.era
		ro.Year = f.fields.year
		ro.Month = f.fields.month
		ro.Day = f.fields.day
		ro.Hour = f.fields.hour
		ro.Minute = f.fields.minute
		ro.Second = f.fields.second
		ro.TimeZoneName = f.fields.timeZoneName
	}
	return ro
}

// Entries lists the set fields in resolvedOptions property order.
func (r ResolvedOptions) Entries() []Entry {
	out := []Entry{
		{"locale", r.Locale},
		{OptCalendar, r.Calendar},
		{OptNumberingSystem, r.NumberingSystem},
		{OptTimeZone, r.TimeZone},
	}
	if r.HourCycle != "" {
		out = append(out, Entry{OptHourCycle, r.HourCycle}, Entry{OptHour12, fmt.Sprint(r.Hour12)})
	}
	for _, e := range []Entry{
		{OptWeekday, r.Weekday},
		{OptEra, r.Era},
		{OptYear, r.Year},
		{OptMonth, r.Month},
		{OptDay, r.Day},
		{OptHour, r.Hour},
		{OptMinute, r.Minute},
		{OptSecond, r.Second},
		{OptTimeZoneName, r.TimeZoneName},
		{OptDateStyle, r.DateStyle},
		{OptTimeStyle, r.TimeStyle},
	} {
		if e.Value != "" {
			out = append(out, e)
		}
	}
	return out
}
