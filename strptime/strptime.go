// Package strptime extracts civil date and time fields from text
// according to a strftime-style layout.
//
// It is the text-parsing collaborator for package datetime: Parse never
// constructs a value, it only reports the raw fields it finds, which the
// caller feeds to the datetime Builder. Range validation is likewise the
// Builder's job; this package rejects only malformed text, so a parsed
// month of 13 is reported as-is and fails at Build.
package strptime

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrParse wraps all errors returned by Parse.
var ErrParse = errors.New("parse")

// directives maps each supported directive byte to the field it parses.
// Used for validation and error reporting; the parsing itself happens in
// the Parse switch.
//
//nolint:gochecknoglobals
var directives = map[byte]string{
	'Y': "year",
	'm': "month",
	'd': "day of month",
	'H': "hour",
	'M': "minute",
	'S': "second",
	'f': "fractional seconds",
	'z': "UTC offset",
	'%': "literal percent",
}

// Raw holds the civil fields extracted by Parse. Fields absent from the
// layout keep their Unix-epoch defaults: 1970-01-01, midnight, zero
// nanoseconds, and no offset.
type Raw struct {
	// Year may be negative; the proleptic Gregorian calendar applies.
	Year int
	// Month is 1-based, as a human would write it.
	Month int
	// Day is the day of the month.
	Day int
	// Hour, Minute, and Second are the time of day.
	Hour, Minute, Second int
	// Nanos is the sub-second fraction in nanoseconds.
	Nanos int
	// Offset is the UTC offset in seconds east, when HasOffset is true.
	Offset int
	// HasOffset reports whether the input carried a UTC offset.
	HasOffset bool
}

// Parse extracts the fields of input according to layout. Literal bytes
// in the layout must match the input exactly, and the whole input must
// be consumed. Supported directives:
//
//	%Y  year, four digits, optionally sign-prefixed
//	%m %d %H %M %S  two-digit month, day, hour, minute, second
//	%f  fractional seconds; %3f, %6f, and %9f bound the digits, and a
//	    period prefix (%.6f) requires a literal decimal point
//	%z  UTC offset: Z, ±hh, ±hhmm, or ±hh:mm
//	%%  literal percent
func Parse(layout, input string) (Raw, error) {
	raw := Raw{Year: 1970, Month: 1, Day: 1}
	pos := 0

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			if pos >= len(input) || input[pos] != c {
				return Raw{}, fmt.Errorf(
					"%w: expected %q at position %d in %q",
					ErrParse, string(c), pos, input,
				)
			}
			pos++
			continue
		}

		// Modifiers, only meaningful for %f.
		point := false
		digits := 9
	modifiers:
		for i++; i < len(layout); i++ {
			switch layout[i] {
			case '.':
				point = true
			case '3':
				digits = 3
			case '6':
				digits = 6
			case '9':
				digits = 9
			default:
				break modifiers
			}
		}
		if i >= len(layout) {
			return Raw{}, fmt.Errorf("%w: layout ends in %%", ErrParse)
		}

		c = layout[i]
		if _, ok := directives[c]; !ok {
			return Raw{}, fmt.Errorf(
				"%w: unknown directive %%%s (supported:%s)",
				ErrParse, string(c), directiveList(),
			)
		}

		var err error
		switch c {
		case '%':
			if pos >= len(input) || input[pos] != '%' {
				return Raw{}, fmt.Errorf(
					"%w: expected %q at position %d in %q",
					ErrParse, "%", pos, input,
				)
			}
			pos++
		case 'Y':
			neg := false
			if pos < len(input) && input[pos] == '-' {
				neg = true
				pos++
			}
			raw.Year, pos, err = number(input, pos, 4, "year")
			if neg {
				raw.Year = -raw.Year
			}
		case 'm':
			raw.Month, pos, err = number(input, pos, 2, "month")
		case 'd':
			raw.Day, pos, err = number(input, pos, 2, "day")
		case 'H':
			raw.Hour, pos, err = number(input, pos, 2, "hour")
		case 'M':
			raw.Minute, pos, err = number(input, pos, 2, "minute")
		case 'S':
			raw.Second, pos, err = number(input, pos, 2, "second")
		case 'f':
			raw.Nanos, pos, err = fraction(input, pos, point, digits)
		case 'z':
			raw.Offset, raw.HasOffset, pos, err = utcOffset(input, pos)
		}
		if err != nil {
			return Raw{}, err
		}
	}

	if pos != len(input) {
		return Raw{}, fmt.Errorf(
			"%w: unparsed trailing text %q", ErrParse, input[pos:],
		)
	}
	return raw, nil
}

// directiveList renders the supported directives, sorted, for error
// messages.
func directiveList() string {
	known := maps.Keys(directives)
	slices.Sort(known)
	var list strings.Builder
	for _, d := range known {
		fmt.Fprintf(&list, " %%%s", string(d))
	}
	return list.String()
}

// number parses exactly width digits of input at pos.
func number(input string, pos, width int, field string) (int, int, error) {
	if pos+width > len(input) {
		return 0, pos, fmt.Errorf(
			"%w: %s truncated at position %d in %q", ErrParse, field, pos, input,
		)
	}
	v := 0
	for _, b := range []byte(input[pos : pos+width]) {
		if b < '0' || b > '9' {
			return 0, pos, fmt.Errorf(
				"%w: malformed %s at position %d in %q", ErrParse, field, pos, input,
			)
		}
		v = v*10 + int(b-'0')
	}
	return v, pos + width, nil
}

// fraction parses up to digits digits of a sub-second fraction, scaled
// to nanoseconds. When point is true a literal decimal point must
// precede the digits.
func fraction(input string, pos int, point bool, digits int) (int, int, error) {
	if point {
		if pos >= len(input) || input[pos] != '.' {
			return 0, pos, fmt.Errorf(
				"%w: expected decimal point at position %d in %q", ErrParse, pos, input,
			)
		}
		pos++
	}
	start := pos
	for pos < len(input) && pos-start < digits && isDigit(input[pos]) {
		pos++
	}
	if pos == start {
		return 0, pos, fmt.Errorf(
			"%w: expected fraction at position %d in %q", ErrParse, pos, input,
		)
	}
	nanos := 0
	for _, b := range []byte(input[start:pos]) {
		nanos = nanos*10 + int(b-'0')
	}
	for n := pos - start; n < 9; n++ {
		nanos *= 10
	}
	return nanos, pos, nil
}

// utcOffset parses a UTC offset: Z, ±hh, ±hhmm, or ±hh:mm. Returns the
// offset in seconds east of UTC.
func utcOffset(input string, pos int) (int, bool, int, error) {
	if pos < len(input) && (input[pos] == 'Z' || input[pos] == 'z') {
		return 0, true, pos + 1, nil
	}
	if pos >= len(input) || (input[pos] != '+' && input[pos] != '-') {
		return 0, false, pos, fmt.Errorf(
			"%w: expected UTC offset at position %d in %q", ErrParse, pos, input,
		)
	}
	sign := 1
	if input[pos] == '-' {
		sign = -1
	}
	pos++

	hours, pos, err := number(input, pos, 2, "offset hours")
	if err != nil {
		return 0, false, pos, err
	}
	minutes := 0
	if next := skipColon(input, pos); next+2 <= len(input) &&
		isDigit(input[next]) && isDigit(input[next+1]) {
		minutes, pos, err = number(input, next, 2, "offset minutes")
		if err != nil {
			return 0, false, pos, err
		}
	}
	return sign * (hours*3600 + minutes*60), true, pos, nil
}

// skipColon returns the position after an optional colon at pos.
func skipColon(input string, pos int) int {
	if pos < len(input) && input[pos] == ':' {
		return pos + 1
	}
	return pos
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
