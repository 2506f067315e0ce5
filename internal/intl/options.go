package intl

import (
	"fmt"
	"regexp"
	"slices"
)

// Options is the options record handed to the formatter. Values are strings
// except hour12, which is a bool. A key that is not present means "use the
// default"; callers must omit unset keys rather than store zero values.
type Options map[string]any

// Option keys understood by DateTimeFormat.
const (
	OptDateStyle       = "dateStyle"
	OptTimeStyle       = "timeStyle"
	OptLocaleMatcher   = "localeMatcher"
	OptCalendar        = "calendar"
	OptNumberingSystem = "numberingSystem"
	OptTimeZone        = "timeZone"
	OptHour12          = "hour12"
	OptHourCycle       = "hourCycle"
	OptFormatMatcher   = "formatMatcher"
	OptWeekday         = "weekday"
	OptEra             = "era"
	OptYear            = "year"
	OptMonth           = "month"
	OptDay             = "day"
	OptHour            = "hour"
	OptMinute          = "minute"
	OptSecond          = "second"
	OptTimeZoneName    = "timeZoneName"
)

var allowedValues = map[string][]string{
	OptDateStyle:     {"full", "long", "medium", "short"},
	OptTimeStyle:     {"full", "long", "medium", "short"},
	OptLocaleMatcher: {"lookup", "best fit"},
	OptHourCycle:     {"h11", "h12", "h23", "h24"},
	OptFormatMatcher: {"basic", "best fit"},
	OptWeekday:       {"narrow", "short", "long"},
	OptEra:           {"narrow", "short", "long"},
	OptYear:          {"numeric", "2-digit"},
	OptMonth:         {"numeric", "2-digit", "narrow", "short", "long"},
	OptDay:           {"numeric", "2-digit"},
	OptHour:          {"numeric", "2-digit"},
	OptMinute:        {"numeric", "2-digit"},
	OptSecond:        {"numeric", "2-digit"},
	OptTimeZoneName:  {"short", "long", "shortOffset", "longOffset", "shortGeneric", "longGeneric"},
}

// AllowedValues returns the enumeration accepted for key, in canonical
// order, or nil for free-form and boolean keys.
func AllowedValues(key string) []string {
	values := allowedValues[key]
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// unicodeType matches a BCP 47 "type" subtag sequence (3-8 alphanumerics).
var unicodeType = regexp.MustCompile(`^[0-9A-Za-z]{3,8}(-[0-9A-Za-z]{3,8})*$`)

func getString(opts Options, key string) (string, bool, error) {
	raw, ok := opts[key]
	if !ok {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, &TypeError{Option: key, Msg: fmt.Sprintf("option %s must be a string, got %T", key, raw)}
	}
	if allowed := allowedValues[key]; allowed != nil && !slices.Contains(allowed, s) {
		return "", false, rangeErr(key, s)
	}
	return s, true, nil
}

func getBool(opts Options, key string) (bool, bool, error) {
	raw, ok := opts[key]
	if !ok {
		return false, false, nil
	}
	b, isBool := raw.(bool)
	if !isBool {
		return false, false, &TypeError{Option: key, Msg: fmt.Sprintf("option %s must be a boolean, got %T", key, raw)}
	}
	return b, true, nil
}

func getUnicodeType(opts Options, key string) (string, bool, error) {
	s, ok, err := getString(opts, key)
	if err != nil || !ok {
		return "", false, err
	}
	if !unicodeType.MatchString(s) {
		return "", false, &RangeError{Option: key, Value: s, Msg: fmt.Sprintf("invalid %s : %s", key, s)}
	}
	return s, true, nil
}
