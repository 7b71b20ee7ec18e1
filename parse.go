package datetime

import (
	"fmt"

	"github.com/theory/datetime/strptime"
)

// parseLayouts lists the common layouts tried by Parse, most specific
// first. %.9f accepts one through nine fraction digits, so a single
// fraction variant per separator covers milli- through nanosecond
// precision; it must precede its fraction-free counterpart so trailing
// digits are not left unconsumed.
//
//nolint:gochecknoglobals
var parseLayouts = []string{
	"%Y-%m-%d %H:%M:%S%.9f%z",
	"%Y-%m-%d %H:%M:%S%.9f",
	"%Y-%m-%d %H:%M:%S%z",
	"%Y-%m-%d %H:%M:%S",
	"%Y-%m-%dT%H:%M:%S%.9f%z",
	"%Y-%m-%dT%H:%M:%S%.9f",
	"%Y-%m-%dT%H:%M:%S%z",
	"%Y-%m-%dT%H:%M:%S",
	"%Y-%m-%d",
}

// Parse parses s as a date and time in one of the common layouts: the
// date alone or the date and time separated by a space or a "T", with an
// optional fraction and an optional UTC offset (Z, ±hh, ±hhmm, or
// ±hh:mm). An offset becomes a fixed-offset zone tag on the result; a
// date alone defaults to midnight. For other layouts parse with
// [strptime.Parse] and feed the fields to [YMD] directly.
func Parse(s string) (DateTime, error) {
	for _, layout := range parseLayouts {
		raw, err := strptime.Parse(layout, s)
		if err != nil {
			continue
		}
		return fromRaw(raw)
	}
	return DateTime{}, fmt.Errorf("%w: unrecognized datetime %q", ErrParse, s)
}

// fromRaw runs parsed fields through the Builder, so parsed text is
// validated exactly as directly constructed values are.
func fromRaw(raw strptime.Raw) (DateTime, error) {
	b := YMD(raw.Year, raw.Month, raw.Day).
		HMS(raw.Hour, raw.Minute, raw.Second).
		Nanos(raw.Nanos)
	if raw.HasOffset {
		b = b.In(FixedZone(raw.Offset))
	}
	return b.Build()
}
