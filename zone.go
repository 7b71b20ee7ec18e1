package datetime

// Zone is the time zone tag carried by a DateTime. It reports the offset
// from UTC in effect at a given instant; for fixed-offset zones the
// instant is irrelevant. Named zones, whose offsets shift across daylight
// saving transitions, are provided by the datetime/tz package.
//
// Implementations must be immutable and safe for concurrent use.
type Zone interface {
	// OffsetAt returns the offset in seconds east of UTC in effect at
	// the instant the given number of seconds after the Unix epoch.
	OffsetAt(seconds int64) int

	// String returns the zone identifier, or the rendered ±hhmm offset
	// for fixed-offset zones.
	String() string
}

// fixedZone is a Zone with a constant offset from UTC.
type fixedZone int

// FixedZone returns a Zone with a fixed offset, in seconds east of UTC.
func FixedZone(offset int) Zone { return fixedZone(offset) }

// OffsetAt returns the fixed offset regardless of the instant.
func (z fixedZone) OffsetAt(int64) int { return int(z) }

// String returns the offset in ±hhmm form.
func (z fixedZone) String() string {
	return string(appendOffset(nil, int(z)))
}
