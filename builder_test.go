package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt, err := YMD(2012, 4, 21).HMS(11, 0, 0).Build()
	r.NoError(err)
	a.Equal(int64(1335006000), dt.Timestamp())
	a.Equal(0, dt.Nanosecond())
	a.Nil(dt.Zone())

	dt, err = YMD(1970, 1, 1).Build()
	r.NoError(err)
	a.Equal(int64(0), dt.Timestamp())

	dt, err = YMD(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).Build()
	r.NoError(err)
	a.Equal(int64(1720107045), dt.Timestamp())
	a.Equal(123_456_789, dt.Nanosecond())
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// Unset time of day defaults to midnight with zero nanos and no zone.
	implicit, err := YMD(2012, 4, 21).Build()
	r.NoError(err)
	explicit, err := YMD(2012, 4, 21).HMS(0, 0, 0).Nanos(0).Build()
	r.NoError(err)
	a.True(implicit.Equal(explicit))
	a.Equal(implicit, explicit)
	a.Equal(int64(1334966400), implicit.Timestamp())
}

func TestBuildInvalidDate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		y, m, d int
		ok      bool
	}{
		{"month_zero", 2023, 0, 1, false},
		{"month_13", 2023, 13, 1, false},
		{"day_zero", 2023, 1, 0, false},
		{"day_32", 2023, 1, 32, false},
		{"leap_2000", 2000, 2, 29, true},
		{"leap_2004", 2004, 2, 29, true},
		{"leap_2024", 2024, 2, 29, true},
		{"no_leap_1900", 1900, 2, 29, false},
		{"no_leap_2023", 2023, 2, 29, false},
		{"no_leap_2100", 2100, 2, 29, false},
		{"apr_31", 2023, 4, 31, false},
		{"jun_31", 2023, 6, 31, false},
		{"sep_31", 2023, 9, 31, false},
		{"nov_31", 2023, 11, 31, false},
		{"apr_30", 2023, 4, 30, true},
		{"jun_30", 2023, 6, 30, true},
		{"sep_30", 2023, 9, 30, true},
		{"nov_30", 2023, 11, 30, true},
		{"jan_31", 2023, 1, 31, true},
		{"negative_year", -44, 3, 15, true},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dt, err := YMD(tc.y, tc.m, tc.d).Build()
			if tc.ok {
				require.NoError(t, err)
				y, m, d := dt.Date()
				assert.Equal(t, [3]int{tc.y, tc.m, tc.d}, [3]int{y, m, d})
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestBuildInvalidTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		stage   func() *Builder
	}{
		{"hour_24", func() *Builder { return YMD(2023, 6, 1).HMS(24, 0, 0) }},
		{"hour_negative", func() *Builder { return YMD(2023, 6, 1).HMS(-1, 0, 0) }},
		{"minute_60", func() *Builder { return YMD(2023, 6, 1).HMS(0, 60, 0) }},
		{"second_60", func() *Builder { return YMD(2023, 6, 1).HMS(0, 0, 60) }},
		{"nanos_high", func() *Builder { return YMD(2023, 6, 1).Nanos(1_000_000_000) }},
		{"nanos_negative", func() *Builder { return YMD(2023, 6, 1).Nanos(-1) }},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.stage().Build()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidTime)
		})
	}
}

func TestBuildFirstErrorWins(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// Staging after a latched error never replaces it.
	_, err := YMD(2012, 13, 1).HMS(99, 0, 0).Build()
	r.ErrorIs(err, ErrInvalidDate)
	r.NotErrorIs(err, ErrInvalidTime)

	_, err = YMD(2012, 4, 21).HMS(25, 0, 0).Nanos(-1).Build()
	r.ErrorIs(err, ErrInvalidTime)
	r.EqualError(err, "invalid time: hour 25 is out of range")
}

func TestMustBuild(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(int64(1335006000), YMD(2012, 4, 21).HMS(11, 0, 0).MustBuild().Timestamp())
	a.Panics(func() { YMD(2012, 2, 30).MustBuild() })
}

func TestBuildFixedZone(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// Staged fields are local to the zone: 11:00 at +02:00 is 09:00 UTC.
	dt, err := YMD(2012, 4, 21).HMS(11, 0, 0).In(FixedZone(2 * secondsPerHour)).Build()
	r.NoError(err)
	a.Equal(int64(1335006000-2*secondsPerHour), dt.Timestamp())
	a.Equal(11, dt.Hour())
	a.Equal(9, dt.UTC().Hour())
	a.Equal("+0200", dt.Zone().String())

	dt, err = YMD(2012, 4, 21).HMS(11, 0, 0).In(FixedZone(-4*secondsPerHour - 30*secondsPerMinute)).Build()
	r.NoError(err)
	a.Equal(int64(1335006000+4*secondsPerHour+30*secondsPerMinute), dt.Timestamp())
	a.Equal("-0430", dt.Zone().String())
}
