package intl

import (
	"github.com/goodsign/monday"
)

type dateOrder int

const (
	orderMDY dateOrder = iota
	orderDMY
	orderYMD
)

// eraNames holds BC/AD labels per width. Index 0 is before the epoch.
type eraNames struct {
	narrow [2]string
	short  [2]string
	long   [2]string
}

// fieldSet is the resolved set of date/time components to render.
type fieldSet struct {
	weekday      string
	era          string
	year         string
	month        string
	day          string
	hour         string
	minute       string
	second       string
	timeZoneName string
}

func (fs fieldSet) hasDate() bool {
	return fs.weekday != "" || fs.year != "" || fs.month != "" || fs.day != ""
}

func (fs fieldSet) hasTime() bool {
	return fs.hour != "" || fs.minute != "" || fs.second != ""
}

// localeData is a small CLDR-style description of how one locale lays out
// dates and times.
type localeData struct {
	tag   string
	names monday.Locale

	numericOrder dateOrder
	textOrder    dateOrder
	dateSep      string
	numericTrail string // appended to all-numeric dates ("24. 3. 15.")
	dayDot       bool   // "15. März"
	textJoin     string // between day, month and year in textual dates
	textYearTail string // " г." style suffix after a textual year

	cjk       bool
	yearMark  string
	monthMark string
	dayMark   string
	markSpace string

	weekdaySep  string
	weekdayLast bool

	hourCycle   string
	hourCycle12 string // cycle used when hour12 is forced on
	timeSep     string
	am, pm      string
	periodFirst bool
	periodSep   string

	dateTimeSep string
	dateTimeAt  string // joins full/long dates to times

	numbering string
	eras      eraNames
	zoneAbbr  bool // prefer tz abbreviations ("EST") for short zone names
	english   bool // long/generic zone names are available

	// dateStyles overrides the default component expansion of dateStyle.
	dateStyles map[string]fieldSet
}

var englishEras = eraNames{
	narrow: [2]string{"B", "A"},
	short:  [2]string{"BC", "AD"},
	long:   [2]string{"Before Christ", "Anno Domini"},
}

func baseLocale(tag string, names monday.Locale) localeData {
	return localeData{
		tag:          tag,
		names:        names,
		numericOrder: orderDMY,
		textOrder:    orderDMY,
		dateSep:      "/",
		textJoin:     " ",
		weekdaySep:   " ",
		hourCycle:    "h23",
		hourCycle12:  "h12",
		timeSep:      ":",
		am:           "AM",
		pm:           "PM",
		periodSep:    " ",
		dateTimeSep:  ", ",
		numbering:    "latn",
		eras:         englishEras,
	}
}

func twoDigitNumeric(year string) fieldSet {
	return fieldSet{year: year, month: "2-digit", day: "2-digit"}
}

// locales is keyed by canonical tag. The first entry for a language is its
// default region.
var locales = buildLocales()

// localeOrder fixes iteration order for matching and catalogues.
var localeOrder = []string{
	"en-US", "en-GB", "de-DE", "fr-FR", "es-ES", "it-IT", "pt-BR", "pt-PT",
	"nl-NL", "sv-SE", "da-DK", "fi-FI", "nb-NO", "pl-PL", "cs-CZ", "ru-RU",
	"uk-UA", "tr-TR", "ja-JP", "zh-CN", "zh-TW", "ko-KR",
}

func buildLocales() map[string]localeData {
	m := make(map[string]localeData, len(localeOrder))

	enUS := baseLocale("en-US", monday.LocaleEnUS)
	enUS.numericOrder = orderMDY
	enUS.textOrder = orderMDY
	enUS.weekdaySep = ", "
	enUS.hourCycle = "h12"
	enUS.dateTimeAt = " at "
	enUS.zoneAbbr = true
	enUS.english = true
	m["en-US"] = enUS

	enGB := baseLocale("en-GB", monday.LocaleEnGB)
	enGB.weekdaySep = " "
	enGB.dateTimeAt = " at "
	enGB.english = true
	enGB.am, enGB.pm = "am", "pm"
	enGB.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["en-GB"] = enGB

	de := baseLocale("de-DE", monday.LocaleDeDE)
	de.dateSep = "."
	de.dayDot = true
	de.weekdaySep = ", "
	de.dateTimeAt = " um "
	de.eras = eraNames{
		narrow: [2]string{"v. Chr.", "n. Chr."},
		short:  [2]string{"v. Chr.", "n. Chr."},
		long:   [2]string{"v. Chr.", "n. Chr."},
	}
	de.dateStyles = map[string]fieldSet{
		"medium": twoDigitNumeric("numeric"),
		"short":  twoDigitNumeric("2-digit"),
	}
	m["de-DE"] = de

	fr := baseLocale("fr-FR", monday.LocaleFrFR)
	fr.dateTimeSep = " "
	fr.dateTimeAt = " à "
	fr.eras = eraNames{
		narrow: [2]string{"av. J.-C.", "ap. J.-C."},
		short:  [2]string{"av. J.-C.", "ap. J.-C."},
		long:   [2]string{"avant Jésus-Christ", "après Jésus-Christ"},
	}
	fr.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["fr-FR"] = fr

	es := baseLocale("es-ES", monday.LocaleEsES)
	es.textJoin = " de "
	es.weekdaySep = ", "
	es.am, es.pm = "a. m.", "p. m."
	es.eras = eraNames{
		narrow: [2]string{"a. C.", "d. C."},
		short:  [2]string{"a. C.", "d. C."},
		long:   [2]string{"antes de Cristo", "después de Cristo"},
	}
	m["es-ES"] = es

	it := baseLocale("it-IT", monday.LocaleItIT)
	it.dateTimeAt = " alle ore "
	it.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("2-digit")}
	m["it-IT"] = it

	ptBR := baseLocale("pt-BR", monday.LocalePtBR)
	ptBR.textJoin = " de "
	ptBR.weekdaySep = ", "
	ptBR.dateTimeAt = " às "
	ptBR.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["pt-BR"] = ptBR

	ptPT := ptBR
	ptPT.tag = "pt-PT"
	ptPT.names = monday.LocalePtPT
	m["pt-PT"] = ptPT

	nl := baseLocale("nl-NL", monday.LocaleNlNL)
	nl.dateSep = "-"
	nl.dateTimeAt = " om "
	nl.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["nl-NL"] = nl

	sv := baseLocale("sv-SE", monday.LocaleSvSE)
	sv.numericOrder = orderYMD
	sv.dateSep = "-"
	sv.dateTimeSep = " "
	sv.dateTimeAt = " kl. "
	sv.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["sv-SE"] = sv

	da := baseLocale("da-DK", monday.LocaleDaDK)
	da.dateSep = "."
	da.dayDot = true
	da.timeSep = "."
	da.dateTimeSep = " "
	da.dateTimeAt = " kl. "
	da.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["da-DK"] = da

	fi := baseLocale("fi-FI", monday.LocaleFiFI)
	fi.dateSep = "."
	fi.dayDot = true
	fi.timeSep = "."
	fi.dateTimeSep = " "
	fi.dateTimeAt = " klo "
	fi.dateStyles = map[string]fieldSet{"short": {year: "numeric", month: "numeric", day: "numeric"}}
	m["fi-FI"] = fi

	nb := baseLocale("nb-NO", monday.LocaleNbNO)
	nb.dateSep = "."
	nb.dayDot = true
	nb.dateTimeAt = " kl. "
	nb.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["nb-NO"] = nb

	pl := baseLocale("pl-PL", monday.LocalePlPL)
	pl.dateSep = "."
	pl.weekdaySep = ", "
	pl.dateTimeSep = " "
	pl.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["pl-PL"] = pl

	cs := baseLocale("cs-CZ", monday.LocaleCsCZ)
	cs.dateSep = ". "
	cs.dayDot = true
	cs.dateTimeSep = " "
	cs.dateTimeAt = " v "
	m["cs-CZ"] = cs

	ru := baseLocale("ru-RU", monday.LocaleRuRU)
	ru.dateSep = "."
	ru.weekdaySep = ", "
	ru.textYearTail = " г."
	ru.dateTimeAt = " в "
	ru.eras = eraNames{
		narrow: [2]string{"до н.э.", "н.э."},
		short:  [2]string{"до н. э.", "н. э."},
		long:   [2]string{"до Рождества Христова", "от Рождества Христова"},
	}
	ru.dateStyles = map[string]fieldSet{
		"medium": twoDigitNumeric("numeric"),
		"short":  twoDigitNumeric("numeric"),
	}
	m["ru-RU"] = ru

	uk := baseLocale("uk-UA", monday.LocaleUkUA)
	uk.dateSep = "."
	uk.weekdaySep = ", "
	uk.textYearTail = " р."
	uk.dateTimeAt = " о "
	uk.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("2-digit")}
	m["uk-UA"] = uk

	tr := baseLocale("tr-TR", monday.LocaleTrTR)
	tr.dateSep = "."
	tr.weekdayLast = true
	tr.dateTimeSep = " "
	tr.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("numeric")}
	m["tr-TR"] = tr

	ja := baseLocale("ja-JP", monday.LocaleJaJP)
	ja.numericOrder = orderYMD
	ja.textOrder = orderYMD
	ja.cjk = true
	ja.yearMark, ja.monthMark, ja.dayMark = "年", "月", "日"
	ja.weekdaySep = ""
	ja.weekdayLast = true
	ja.am, ja.pm = "午前", "午後"
	ja.periodFirst = true
	ja.periodSep = ""
	ja.hourCycle12 = "h11"
	ja.dateTimeSep = " "
	ja.eras = eraNames{
		narrow: [2]string{"BC", "AD"},
		short:  [2]string{"紀元前", "西暦"},
		long:   [2]string{"紀元前", "西暦"},
	}
	ja.dateStyles = map[string]fieldSet{
		"medium": twoDigitNumeric("numeric"),
		"short":  twoDigitNumeric("numeric"),
	}
	m["ja-JP"] = ja

	zhCN := baseLocale("zh-CN", monday.LocaleZhCN)
	zhCN.numericOrder = orderYMD
	zhCN.textOrder = orderYMD
	zhCN.cjk = true
	zhCN.yearMark, zhCN.monthMark, zhCN.dayMark = "年", "月", "日"
	zhCN.weekdaySep = ""
	zhCN.weekdayLast = true
	zhCN.am, zhCN.pm = "上午", "下午"
	zhCN.periodFirst = true
	zhCN.periodSep = ""
	zhCN.dateTimeSep = " "
	zhCN.eras = eraNames{
		narrow: [2]string{"公元前", "公元"},
		short:  [2]string{"公元前", "公元"},
		long:   [2]string{"公元前", "公元"},
	}
	zhCN.dateStyles = map[string]fieldSet{
		"short": {year: "numeric", month: "numeric", day: "numeric"},
	}
	m["zh-CN"] = zhCN

	zhTW := zhCN
	zhTW.tag = "zh-TW"
	zhTW.names = monday.LocaleZhTW
	zhTW.hourCycle = "h12"
	m["zh-TW"] = zhTW

	ko := baseLocale("ko-KR", monday.LocaleKoKR)
	ko.numericOrder = orderYMD
	ko.textOrder = orderYMD
	ko.dateSep = ". "
	ko.numericTrail = "."
	ko.cjk = true
	ko.yearMark, ko.monthMark, ko.dayMark = "년", "월", "일"
	ko.markSpace = " "
	ko.weekdaySep = " "
	ko.weekdayLast = true
	ko.hourCycle = "h12"
	ko.am, ko.pm = "오전", "오후"
	ko.periodFirst = true
	ko.dateTimeSep = " "
	ko.eras = eraNames{
		narrow: [2]string{"BC", "AD"},
		short:  [2]string{"BC", "AD"},
		long:   [2]string{"기원전", "서기"},
	}
	ko.dateStyles = map[string]fieldSet{"short": twoDigitNumeric("2-digit")}
	m["ko-KR"] = ko

	return m
}

// defaultDateStyles expands dateStyle when a locale has no override.
var defaultDateStyles = map[string]fieldSet{
	"full":   {weekday: "long", year: "numeric", month: "long", day: "numeric"},
	"long":   {year: "numeric", month: "long", day: "numeric"},
	"medium": {year: "numeric", month: "short", day: "numeric"},
	"short":  {year: "2-digit", month: "numeric", day: "numeric"},
}

var timeStyles = map[string]fieldSet{
	"full":   {hour: "numeric", minute: "2-digit", second: "2-digit", timeZoneName: "long"},
	"long":   {hour: "numeric", minute: "2-digit", second: "2-digit", timeZoneName: "short"},
	"medium": {hour: "numeric", minute: "2-digit", second: "2-digit"},
	"short":  {hour: "numeric", minute: "2-digit"},
}

func (ld localeData) dateStyle(style string) fieldSet {
	if fs, ok := ld.dateStyles[style]; ok {
		if style == "full" && fs.weekday == "" {
			fs.weekday = "long"
		}
		return fs
	}
	return defaultDateStyles[style]
}

// SupportedLocales returns the locale tags with formatting data, in a
// stable order.
func SupportedLocales() []string {
	out := make([]string, len(localeOrder))
	copy(out, localeOrder)
	return out
}
