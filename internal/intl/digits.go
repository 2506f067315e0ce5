package intl

import (
	"sort"
	"strings"
)

// zeroDigits maps numbering systems with contiguous decimal digits to the
// code point of their zero.
var zeroDigits = map[string]rune{
	"arab":     '٠',
	"arabext":  '۰',
	"bali":     '᭐',
	"beng":     '০',
	"deva":     '०',
	"fullwide": '０',
	"gujr":     '૦',
	"guru":     '੦',
	"khmr":     '០',
	"knda":     '೦',
	"laoo":     '໐',
	"latn":     '0',
	"limb":     '᥆',
	"mlym":     '൦',
	"mong":     '᠐',
	"mymr":     '၀',
	"orya":     '୦',
	"tamldec":  '௦',
	"telu":     '౦',
	"thai":     '๐',
	"tibt":     '༠',
}

var hanidec = []rune("〇一二三四五六七八九")

// SupportedNumberingSystems lists numbering systems with digit data.
func SupportedNumberingSystems() []string {
	out := make([]string, 0, len(zeroDigits)+1)
	for name := range zeroDigits {
		out = append(out, name)
	}
	out = append(out, "hanidec")
	sort.Strings(out)
	return out
}

func supportsNumbering(ns string) bool {
	if ns == "hanidec" {
		return true
	}
	_, ok := zeroDigits[ns]
	return ok
}

// transliterate rewrites ASCII digits in s into the digits of ns.
func transliterate(s, ns string) string {
	if ns == "" || ns == "latn" {
		return s
	}
	var digits func(d rune) rune
	if ns == "hanidec" {
		digits = func(d rune) rune { return hanidec[d-'0'] }
	} else {
		zero, ok := zeroDigits[ns]
		if !ok {
			return s
		}
		digits = func(d rune) rune { return zero + (d - '0') }
	}

	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits(r)
		}
		return r
	}, s)
}
