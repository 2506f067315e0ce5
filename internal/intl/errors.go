package intl

import "fmt"

// RangeError reports a value outside the accepted set (bad locale tag,
// unknown time zone, unsupported enumeration value).
type RangeError struct {
	Option string
	Value  string
	Msg    string
}

func (e *RangeError) Error() string {
	if e.Msg != "" {
		return "RangeError: " + e.Msg
	}
	return fmt.Sprintf("RangeError: value %s out of range for option %s", e.Value, e.Option)
}

// TypeError reports an option of the wrong type or an invalid combination
// of options.
type TypeError struct {
	Option string
	Msg    string
}

func (e *TypeError) Error() string {
	return "TypeError: " + e.Msg
}

func rangeErr(option, value string) error {
	return &RangeError{Option: option, Value: value}
}
