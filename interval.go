package datetime

import "time"

// Interval is a span of time between two instants, as whole seconds plus
// a nanosecond fraction. The fraction is always positive, even when the
// interval is negative: -2.5 seconds is represented as -3 seconds and
// 500,000,000 nanoseconds. Intervals are comparable with ==.
type Interval struct {
	seconds int64
	nanos   uint32
}

// NewInterval returns the Interval for the given seconds and nanoseconds.
// Nanoseconds outside [0, 1_000_000_000) are normalized into the seconds.
func NewInterval(seconds, nanos int64) Interval {
	return Interval{
		seconds: seconds + floorDiv(nanos, nanosPerSecond),
		nanos:   uint32(floorMod(nanos, nanosPerSecond)),
	}
}

// FromMilliseconds returns the Interval for a count of milliseconds.
func FromMilliseconds(millis int64) Interval {
	return NewInterval(floorDiv(millis, 1_000), floorMod(millis, 1_000)*1_000_000)
}

// FromMicroseconds returns the Interval for a count of microseconds.
func FromMicroseconds(micros int64) Interval {
	return NewInterval(floorDiv(micros, 1_000_000), floorMod(micros, 1_000_000)*1_000)
}

// FromNanoseconds returns the Interval for a count of nanoseconds.
func FromNanoseconds(nanos int64) Interval {
	return NewInterval(0, nanos)
}

// FromDuration returns the Interval for a time.Duration.
func FromDuration(d time.Duration) Interval {
	return FromNanoseconds(d.Nanoseconds())
}

// Seconds returns the whole seconds of the interval, rounded toward
// negative infinity per the representation above.
func (iv Interval) Seconds() int64 { return iv.seconds }

// Nanoseconds returns the nanosecond fraction of the interval. Always
// positive, even for negative intervals.
func (iv Interval) Nanoseconds() int { return int(iv.nanos) }

// AsMilliseconds returns the interval as a count of milliseconds,
// truncating finer precision.
func (iv Interval) AsMilliseconds() int64 {
	return iv.seconds*1_000 + int64(iv.nanos/1_000_000)
}

// AsMicroseconds returns the interval as a count of microseconds,
// truncating finer precision.
func (iv Interval) AsMicroseconds() int64 {
	return iv.seconds*1_000_000 + int64(iv.nanos/1_000)
}

// AsNanoseconds returns the interval as a count of nanoseconds. The
// result overflows for intervals beyond roughly ±292 years.
func (iv Interval) AsNanoseconds() int64 {
	return iv.seconds*nanosPerSecond + int64(iv.nanos)
}

// AsDuration returns the interval as a time.Duration, with the same
// overflow bound as AsNanoseconds.
func (iv Interval) AsDuration() time.Duration {
	return time.Duration(iv.AsNanoseconds())
}

// Mul returns the interval scaled by n.
func (iv Interval) Mul(n int64) Interval {
	return FromNanoseconds(iv.AsNanoseconds() * n)
}

// Div returns the interval divided by n, truncating toward zero at
// nanosecond resolution.
func (iv Interval) Div(n int64) Interval {
	return FromNanoseconds(iv.AsNanoseconds() / n)
}

// Ratio returns the ratio of iv to u.
func (iv Interval) Ratio(u Interval) float64 {
	return float64(iv.AsNanoseconds()) / float64(u.AsNanoseconds())
}

// Add returns dt shifted forward by iv. The zone tag is preserved. This
// is pure timestamp arithmetic; for calendar-unit arithmetic see AddDays,
// AddMonths, and AddYears.
func (dt DateTime) Add(iv Interval) DateTime {
	seconds := dt.seconds + iv.seconds
	nanos := dt.nanos + iv.nanos
	if nanos >= nanosPerSecond {
		seconds++
		nanos -= nanosPerSecond
	}
	return DateTime{seconds: seconds, nanos: nanos, zone: dt.zone}
}

// Sub returns dt shifted backward by iv. The zone tag is preserved.
func (dt DateTime) Sub(iv Interval) DateTime {
	seconds := dt.seconds - iv.seconds
	nanos := dt.nanos
	if nanos < iv.nanos {
		seconds--
		nanos += nanosPerSecond
	}
	return DateTime{seconds: seconds, nanos: nanos - iv.nanos, zone: dt.zone}
}

// Since returns the interval from u to dt: dt.Sub(dt.Since(u)) is u.
func (dt DateTime) Since(u DateTime) Interval {
	seconds := dt.seconds - u.seconds
	nanos := dt.nanos
	if nanos < u.nanos {
		seconds--
		nanos += nanosPerSecond
	}
	return Interval{seconds: seconds, nanos: nanos - u.nanos}
}

// AddDays returns the datetime n civil days later (or earlier, for
// negative n) in dt's zone, keeping the time of day. Unlike
// Add(NewInterval(n*86400, 0)), the result lands on the same wall clock
// reading even when a daylight saving transition makes an intervening day
// shorter or longer than 24 hours; transitions resolve per the policy
// documented on Build.
func (dt DateTime) AddDays(n int) DateTime {
	zs := dt.zoneSeconds()
	days := floorDiv(zs, secondsPerDay) + int64(n)
	return resolveLocal(days*secondsPerDay+floorMod(zs, secondsPerDay), dt.nanos, dt.zone)
}

// AddMonths returns the datetime n civil months later (or earlier, for
// negative n) in dt's zone, keeping the time of day. When the target
// month is too short for the day of the month, the day clamps to the
// month's last day: January 31 plus one month is February 29 in a leap
// year and February 28 otherwise.
func (dt DateTime) AddMonths(n int) DateTime {
	zs := dt.zoneSeconds()
	year, month, day := civilFromDays(floorDiv(zs, secondsPerDay))

	months := int64(year)*12 + int64(month-1) + int64(n)
	year = int(floorDiv(months, 12))
	month = int(floorMod(months, 12)) + 1
	if max := DaysInMonth(year, month); day > max {
		day = max
	}

	provisional := daysFromCivil(year, month, day)*secondsPerDay + floorMod(zs, secondsPerDay)
	return resolveLocal(provisional, dt.nanos, dt.zone)
}

// AddYears returns the datetime n civil years later (or earlier, for
// negative n) in dt's zone, with the same day-clamping policy as
// AddMonths: February 29 plus one year is February 28.
func (dt DateTime) AddYears(n int) DateTime {
	return dt.AddMonths(n * 12)
}
