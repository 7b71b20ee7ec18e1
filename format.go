package datetime

import (
	"fmt"
	"strings"
)

// padding selects how a numeric directive fills its field width.
type padding int

const (
	// padDefault zero-pads, the default for every numeric directive.
	padDefault padding = iota
	// padZero explicitly zero-pads (the %0 modifier).
	padZero
	// padSpace pads with spaces (the %_ modifier).
	padSpace
	// padSuppress suppresses padding (the %- modifier).
	padSuppress
)

// Format renders the civil fields of dt, derived in its zone, according
// to a strftime-style layout. Supported directives:
//
//	%Y  year, four digits         %H  hour, 00–23
//	%C  century                   %I  hour, 01–12
//	%y  year of century, 00–99    %M  minute
//	%m  month number, 01–12       %S  second
//	%b  abbreviated month name    %p  am/pm       %P  AM/PM
//	%h  same as %b                %f  fractional seconds
//	%B  full month name           %s  Unix timestamp, in seconds
//	%d  day of month, 01–31       %z  zone offset as ±hhmm
//	%a  abbreviated weekday name  %D  %m/%d/%Y
//	%A  full weekday name         %F  %Y-%m-%d
//	%w  weekday, Sunday = 0       %v  %d-%b-%Y
//	%u  weekday, Monday = 1       %R  %H:%M
//	%j  day of year, 001–366      %T  %H:%M:%S
//	%t  tab    %n  newline    %%  literal percent
//
// Numeric directives accept the padding modifiers %- (no padding),
// %_ (spaces), and %0 (zeros, the default). %f prints nine digits;
// modify with %3f or %6f for milli- or microseconds, and prefix with a
// period (%.6f) to emit the decimal point. %z renders nothing for a
// value without a zone tag. An unsupported directive is copied to the
// output verbatim.
func (dt DateTime) Format(layout string) string {
	var out strings.Builder
	out.Grow(len(layout) + 8)

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}

		pad := padDefault
		point := false
		digits := 9
	modifiers:
		for i++; i < len(layout); i++ {
			switch layout[i] {
			case '0':
				pad = padZero
			case '-':
				pad = padSuppress
			case '_':
				pad = padSpace
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
			out.WriteByte('%')
			break
		}
		dt.writeDirective(&out, layout[i], pad, point, digits)
	}
	return out.String()
}

// String returns the canonical rendering of dt: %Y-%m-%dT%H:%M:%S, with
// the fraction appended at micro- or nanosecond precision when nonzero
// and the ±hhmm offset appended when dt carries a zone tag.
func (dt DateTime) String() string {
	switch {
	case dt.nanos == 0:
		return dt.Format("%Y-%m-%dT%H:%M:%S%z")
	case dt.nanos%1_000 == 0:
		return dt.Format("%Y-%m-%dT%H:%M:%S%.6f%z")
	default:
		return dt.Format("%Y-%m-%dT%H:%M:%S%.9f%z")
	}
}

// writeDirective renders a single directive into out.
func (dt DateTime) writeDirective(out *strings.Builder, c byte, pad padding, point bool, digits int) {
	switch c {
	case 'Y':
		writePadded(out, pad, 4, dt.Year())
	case 'C':
		writePadded(out, pad, 2, dt.Year()/100)
	case 'y':
		writePadded(out, pad, 2, int(floorMod(int64(dt.Year()), 100)))
	case 'm':
		writePadded(out, pad, 2, int(dt.Month()))
	case 'b', 'h':
		out.WriteString(dt.Month().String()[:3])
	case 'B':
		out.WriteString(dt.Month().String())
	case 'd':
		writePadded(out, pad, 2, dt.Day())
	case 'a':
		out.WriteString(dt.Weekday().String()[:3])
	case 'A':
		out.WriteString(dt.Weekday().String())
	case 'w':
		fmt.Fprintf(out, "%d", int(dt.Weekday()))
	case 'u':
		u := int(dt.Weekday())
		if u == 0 {
			u = 7
		}
		fmt.Fprintf(out, "%d", u)
	case 'j':
		writePadded(out, pad, 3, dt.DayOfYear())
	case 'H':
		writePadded(out, pad, 2, dt.Hour())
	case 'I':
		hour := dt.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		writePadded(out, pad, 2, hour)
	case 'M':
		writePadded(out, pad, 2, dt.Minute())
	case 'S':
		writePadded(out, pad, 2, dt.Second())
	case 'z':
		if dt.zone != nil {
			out.Write(appendOffset(nil, dt.zone.OffsetAt(dt.seconds)))
		}
	case 'P', 'p':
		meridiem := "AM"
		if dt.Hour() >= 12 {
			meridiem = "PM"
		}
		if c == 'p' {
			meridiem = strings.ToLower(meridiem)
		}
		out.WriteString(meridiem)
	case 's':
		fmt.Fprintf(out, "%d", dt.seconds)
	case 'f':
		if point {
			out.WriteByte('.')
		}
		switch digits {
		case 3:
			fmt.Fprintf(out, "%03d", dt.nanos/1_000_000)
		case 6:
			fmt.Fprintf(out, "%06d", dt.nanos/1_000)
		default:
			fmt.Fprintf(out, "%09d", dt.nanos)
		}
	case 'D':
		year, month, day := dt.Date()
		fmt.Fprintf(out, "%02d/%02d/%02d", month, day, year)
	case 'F':
		year, month, day := dt.Date()
		fmt.Fprintf(out, "%04d-%02d-%02d", year, month, day)
	case 'v':
		year, _, day := dt.Date()
		fmt.Fprintf(out, "%2d-%s-%04d", day, dt.Month().String()[:3], year)
	case 'R':
		fmt.Fprintf(out, "%02d:%02d", dt.Hour(), dt.Minute())
	case 'T':
		fmt.Fprintf(out, "%02d:%02d:%02d", dt.Hour(), dt.Minute(), dt.Second())
	case 't':
		out.WriteByte('\t')
	case 'n':
		out.WriteByte('\n')
	case '%':
		out.WriteByte('%')
	default:
		out.WriteByte('%')
		out.WriteByte(c)
	}
}

// writePadded writes v into a field of the given width under pad.
func writePadded(out *strings.Builder, pad padding, width, v int) {
	switch pad {
	case padSuppress:
		fmt.Fprintf(out, "%d", v)
	case padSpace:
		fmt.Fprintf(out, "%*d", width, v)
	default:
		fmt.Fprintf(out, "%0*d", width, v)
	}
}

// appendOffset appends a UTC offset in seconds to b in ±hhmm form,
// truncating any sub-minute remainder.
func appendOffset(b []byte, offset int) []byte {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Appendf(
		b, "%c%02d%02d",
		sign, offset/secondsPerHour, offset%secondsPerHour/secondsPerMinute,
	)
}
