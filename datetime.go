// Package datetime provides an immutable date and time value backed by a
// Unix timestamp, together with a staged builder for constructing one from
// civil calendar fields.
//
// A [DateTime] stores whole seconds since 1970-01-01T00:00:00 UTC plus a
// nanosecond fraction, and optionally a [Zone] tag describing how its
// civil fields should be rendered. The tag never changes the instant:
// year, month, day, and the clock fields are derived on demand by
// applying the zone's offset and inverting the calendar conversion.
//
// Construct values with [YMD]:
//
//	dt, err := datetime.YMD(2012, 4, 21).HMS(11, 0, 0).Build()
//
// Named time zone support lives in the datetime/tz subpackage; a build
// that never imports it links no zone database. Likewise the strftime
// parsing of arbitrary layouts lives in datetime/strptime.
package datetime

import (
	"errors"
	"time"
)

// Sentinel errors reported by Build, Parse, and Scan.
var (
	// ErrInvalidDate reports a month or day out of range, or a day
	// impossible for the given month and year.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime reports an hour, minute, second, or sub-second field
	// out of range.
	ErrInvalidTime = errors.New("invalid time")

	// ErrUnknownZone reports a zone identifier that cannot be resolved.
	// It is returned by zone sources such as the datetime/tz package.
	ErrUnknownZone = errors.New("unknown zone")

	// ErrParse reports text that cannot be parsed as a date and time.
	ErrParse = errors.New("parse")
)

// DateTime is an instant on the UTC timeline, optionally tagged with a
// Zone for rendering civil fields. The timestamp is the sole source of
// truth; civil fields are never stored, only derived.
//
// The zone tag is display metadata. Compare, Equal, Before, and After
// consider only the instant, so two values with the same timestamp but
// different tags are equal. Go's == operator, by contrast, compares the
// representation including the tag; normalize with UTC before using
// DateTime values as map keys, as with time.Time.
//
// The zero value is 1970-01-01T00:00:00 UTC.
type DateTime struct {
	seconds int64
	nanos   uint32
	zone    Zone
}

// FromTimestamp returns the DateTime for the given count of seconds and
// nanoseconds since the Unix epoch, with no zone tag. Nanoseconds of a
// second or more are carried into the seconds.
func FromTimestamp(seconds int64, nanos uint32) DateTime {
	for nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		seconds++
	}
	return DateTime{seconds: seconds, nanos: nanos}
}

// Now returns the current instant per the system clock, with no zone tag.
func Now() DateTime {
	now := time.Now()
	return DateTime{seconds: now.Unix(), nanos: uint32(now.Nanosecond())}
}

// Timestamp returns the whole seconds since the Unix epoch. Together with
// Nanosecond and Zone it forms the canonical interchange representation
// consumed by the serialization and database adapters.
func (dt DateTime) Timestamp() int64 { return dt.seconds }

// Nanosecond returns the sub-second fraction in nanoseconds. Range:
// [0, 1_000_000_000).
func (dt DateTime) Nanosecond() int { return int(dt.nanos) }

// Zone returns the zone tag, or nil for a UTC-equivalent value.
func (dt DateTime) Zone() Zone { return dt.zone }

// In returns dt tagged with zone. The instant is unchanged; only the
// rendering of civil fields is affected.
func (dt DateTime) In(zone Zone) DateTime {
	return DateTime{seconds: dt.seconds, nanos: dt.nanos, zone: zone}
}

// UTC returns dt with the zone tag removed. The instant is unchanged.
// Two equal instants are == after UTC, whatever their tags were.
func (dt DateTime) UTC() DateTime {
	return DateTime{seconds: dt.seconds, nanos: dt.nanos}
}

// zoneSeconds returns the timestamp shifted by the zone offset in effect
// at the instant, for deriving civil fields.
func (dt DateTime) zoneSeconds() int64 {
	if dt.zone == nil {
		return dt.seconds
	}
	return dt.seconds + int64(dt.zone.OffsetAt(dt.seconds))
}

// Date returns the civil date of dt in its zone.
func (dt DateTime) Date() (year, month, day int) {
	return civilFromDays(floorDiv(dt.zoneSeconds(), secondsPerDay))
}

// Year returns the year of dt in its zone.
func (dt DateTime) Year() int {
	year, _, _ := dt.Date()
	return year
}

// Month returns the month of dt in its zone.
func (dt DateTime) Month() time.Month {
	_, month, _ := dt.Date()
	return time.Month(month)
}

// Day returns the day of the month of dt in its zone.
func (dt DateTime) Day() int {
	_, _, day := dt.Date()
	return day
}

// Hour returns the hour of dt in its zone. Range: [0, 24).
func (dt DateTime) Hour() int {
	return int(floorMod(dt.zoneSeconds(), secondsPerDay) / secondsPerHour)
}

// Minute returns the minute of dt in its zone. Range: [0, 60).
func (dt DateTime) Minute() int {
	return int(floorMod(dt.zoneSeconds(), secondsPerHour) / secondsPerMinute)
}

// Second returns the second of dt in its zone. Range: [0, 60).
func (dt DateTime) Second() int {
	return int(floorMod(dt.zoneSeconds(), secondsPerMinute))
}

// Weekday returns the day of the week of dt in its zone.
func (dt DateTime) Weekday() time.Weekday {
	return time.Weekday(weekdayForDays(floorDiv(dt.zoneSeconds(), secondsPerDay)))
}

// DayOfYear returns the ordinal day of the year of dt in its zone,
// starting at 1.
func (dt DateTime) DayOfYear() int {
	return dayOfYear(dt.Date())
}

// Compare compares the instants of dt and u, ignoring zone tags. If dt is
// before u, it returns -1; if dt is after u, it returns +1; if they're
// the same instant, it returns 0.
func (dt DateTime) Compare(u DateTime) int {
	switch {
	case dt.seconds < u.seconds:
		return -1
	case dt.seconds > u.seconds:
		return 1
	case dt.nanos < u.nanos:
		return -1
	case dt.nanos > u.nanos:
		return 1
	default:
		return 0
	}
}

// Equal reports whether dt and u represent the same instant, ignoring
// zone tags.
func (dt DateTime) Equal(u DateTime) bool {
	return dt.seconds == u.seconds && dt.nanos == u.nanos
}

// Before reports whether the instant dt is before u.
func (dt DateTime) Before(u DateTime) bool { return dt.Compare(u) < 0 }

// After reports whether the instant dt is after u.
func (dt DateTime) After(u DateTime) bool { return dt.Compare(u) > 0 }

// GoTime returns the equivalent time.Time. A tagged value maps to an
// offset-only time.Location with the zone's offset at the instant.
func (dt DateTime) GoTime() time.Time {
	t := time.Unix(dt.seconds, int64(dt.nanos))
	if dt.zone == nil {
		return t.UTC()
	}
	return t.In(time.FixedZone("", dt.zone.OffsetAt(dt.seconds)))
}
