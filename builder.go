package datetime

import "fmt"

// Builder stages civil calendar fields for constructing a DateTime. It is
// seeded with a date by YMD, optionally extended with a time of day, a
// sub-second fraction, and a zone, and converted by the terminal Build
// call. Fields never staged default to midnight, zero nanoseconds, and no
// zone. A Builder is a single-owner value; it is not safe for concurrent
// use and is not meant to be reused after Build.
type Builder struct {
	year, month, day     int
	hour, minute, second int
	nanos                int
	zone                 Zone
	err                  error
}

// YMD returns a Builder seeded with a civil date. The date is validated
// against the proleptic Gregorian calendar, including leap years; an
// invalid date is reported by Build.
func YMD(year, month, day int) *Builder {
	b := &Builder{year: year, month: month, day: day}
	if month < 1 || month > 12 {
		b.err = fmt.Errorf("%w: month %d is out of range", ErrInvalidDate, month)
		return b
	}
	if day < 1 || day > DaysInMonth(year, month) {
		b.err = fmt.Errorf(
			"%w: %04d-%02d has no day %d", ErrInvalidDate, year, month, day,
		)
	}
	return b
}

// HMS stages a time of day. Valid ranges are hour 0–23, minute 0–59, and
// second 0–59; leap seconds are not representable. An out-of-range field
// is reported by Build.
func (b *Builder) HMS(hour, minute, second int) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case hour < 0 || hour > 23:
		b.err = fmt.Errorf("%w: hour %d is out of range", ErrInvalidTime, hour)
	case minute < 0 || minute > 59:
		b.err = fmt.Errorf("%w: minute %d is out of range", ErrInvalidTime, minute)
	case second < 0 || second > 59:
		b.err = fmt.Errorf("%w: second %d is out of range", ErrInvalidTime, second)
	default:
		b.hour, b.minute, b.second = hour, minute, second
	}
	return b
}

// Nanos stages the sub-second fraction, in nanoseconds. Valid range:
// [0, 1_000_000_000).
func (b *Builder) Nanos(nanos int) *Builder {
	if b.err != nil {
		return b
	}
	if nanos < 0 || nanos >= nanosPerSecond {
		b.err = fmt.Errorf("%w: nanosecond %d is out of range", ErrInvalidTime, nanos)
		return b
	}
	b.nanos = nanos
	return b
}

// In stages the zone the other fields are local to. Resolution of the
// zone's offset is deferred to Build, because the offset of a named zone
// depends on the instant under construction.
func (b *Builder) In(zone Zone) *Builder {
	if b.err != nil {
		return b
	}
	b.zone = zone
	return b
}

// Build validates and converts the staged fields into a DateTime. It is
// the terminal step: every error latched by the staging calls is reported
// here, and the Builder must not be used afterward.
//
// The staged fields are read as local to the staged zone. The offset is
// resolved in two passes: first at the instant the fields denote when
// read as UTC, then again at the instant that first offset yields; the
// second resolution wins. Around a daylight saving transition this is
// deterministic but lossy: a local time repeated by a fall-back overlap
// resolves to the earlier of its two instants, and a local time skipped
// by a spring-forward gap resolves to an instant whose rendering differs
// from the staged fields. Neither case is an error.
func (b *Builder) Build() (DateTime, error) {
	if b.err != nil {
		return DateTime{}, b.err
	}
	provisional := daysFromCivil(b.year, b.month, b.day)*secondsPerDay +
		int64(b.hour)*secondsPerHour +
		int64(b.minute)*secondsPerMinute +
		int64(b.second)
	return resolveLocal(provisional, uint32(b.nanos), b.zone), nil
}

// MustBuild is like Build but panics on invalid fields. Use it for
// package-level values and tests with known-good fields.
func (b *Builder) MustBuild() DateTime {
	dt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return dt
}

// resolveLocal converts a timestamp denoting local civil fields into an
// instant under zone, using the two-pass offset resolution documented on
// Build. Calendar-unit arithmetic reuses it so that AddDays and AddMonths
// resolve transitions exactly as construction does.
func resolveLocal(provisional int64, nanos uint32, zone Zone) DateTime {
	if zone != nil {
		off := zone.OffsetAt(provisional)
		off = zone.OffsetAt(provisional - int64(off))
		provisional -= int64(off)
	}
	return DateTime{seconds: provisional, nanos: nanos, zone: zone}
}
