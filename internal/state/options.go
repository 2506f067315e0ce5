package state

// Field identifies one formatting directive of the options record.
// Declaration order is the order options are serialised in.
type Field int

const (
	DateStyle Field = iota
	TimeStyle
	LocaleMatcher
	Calendar
	NumberingSystem
	TimeZone
	Hour12
	HourCycle
	FormatMatcher
	Weekday
	Era
	Year
	Month
	Day
	Hour
	Minute
	Second
	TimeZoneName

	fieldCount
)

var fieldKeys = [fieldCount]string{
	DateStyle:       "dateStyle",
	TimeStyle:       "timeStyle",
	LocaleMatcher:   "localeMatcher",
	Calendar:        "calendar",
	NumberingSystem: "numberingSystem",
	TimeZone:        "timeZone",
	Hour12:          "hour12",
	HourCycle:       "hourCycle",
	FormatMatcher:   "formatMatcher",
	Weekday:         "weekday",
	Era:             "era",
	Year:            "year",
	Month:           "month",
	Day:             "day",
	Hour:            "hour",
	Minute:          "minute",
	Second:          "second",
	TimeZoneName:    "timeZoneName",
}

// Fields returns every option field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

// Key returns the options-record key (e.g. "dateStyle").
func (f Field) Key() string {
	if !f.Valid() {
		return ""
	}
	return fieldKeys[f]
}

func (f Field) String() string { return f.Key() }

// Valid reports whether f names a known field.
func (f Field) Valid() bool { return f >= 0 && f < fieldCount }

// IsBool reports whether the field carries a boolean rather than a string.
func (f Field) IsBool() bool { return f == Hour12 }

// FieldByKey looks up a field by its options-record key.
func FieldByKey(key string) (Field, bool) {
	for f := Field(0); f < fieldCount; f++ {
		if fieldKeys[f] == key {
			return f, true
		}
	}
	return 0, false
}

// Options is the immutable options record. The zero value has every field
// unset. An empty slot means absent; hour12 is stored as "true"/"false".
type Options struct {
	values [fieldCount]string
}

// Entry is one defined option.
type Entry struct {
	Field Field
	Value string
}

// Get returns the value of f and whether it is set.
func (o Options) Get(f Field) (string, bool) {
	if !f.Valid() {
		return "", false
	}
	v := o.values[f]
	return v, v != ""
}

// Hour12 returns the boolean hour12 value and whether it is set.
func (o Options) Hour12() (bool, bool) {
	v, ok := o.Get(Hour12)
	if !ok {
		return false, false
	}
	return v == "true", true
}

// With returns a copy of o with f set to value. An empty value clears f.
func (o Options) With(f Field, value string) Options {
	if !f.Valid() {
		return o
	}
	o.values[f] = value
	return o
}

// Without returns a copy of o with f removed.
func (o Options) Without(f Field) Options {
	return o.With(f, "")
}

// Defined returns the set fields in declaration order.
func (o Options) Defined() []Entry {
	var out []Entry
	for f := Field(0); f < fieldCount; f++ {
		if v := o.values[f]; v != "" {
			out = append(out, Entry{Field: f, Value: v})
		}
	}
	return out
}

// Len returns how many fields are set.
func (o Options) Len() int {
	n := 0
	for _, v := range o.values {
		if v != "" {
			n++
		}
	}
	return n
}
