// Package intl formats instants the way Intl.DateTimeFormat does.
//
// Engine resolves a BCP 47 locale and an Options record into a
// DateTimeFormat, validating every option exactly once. Invalid values
// surface as *RangeError, values of the wrong type and style/component
// conflicts as *TypeError. Resolution honours the -u-ca, -u-nu and -u-hc
// extension keywords; explicit options win over them.
//
// Locale data is a compact CLDR subset covering SupportedLocales. Month and
// weekday names come from github.com/goodsign/monday, matching uses
// golang.org/x/text/language, and the IANA database is embedded so
// resolution does not depend on the host.
package intl
