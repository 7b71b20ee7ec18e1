package datetime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		dt   DateTime
		want string
	}{
		{
			"seconds",
			YMD(2012, 4, 21).HMS(11, 0, 0).MustBuild(),
			`"2012-04-21T11:00:00"`,
		},
		{
			"micros",
			YMD(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_000).MustBuild(),
			`"2024-07-04T15:30:45.123456"`,
		},
		{
			"nanos",
			YMD(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).MustBuild(),
			`"2024-07-04T15:30:45.123456789"`,
		},
		{
			"offset",
			YMD(2012, 4, 21).HMS(11, 0, 0).In(FixedZone(-4 * secondsPerHour)).MustBuild(),
			`"2012-04-21T11:00:00-0400"`,
		},
		{
			"offset_berlin",
			YMD(2012, 4, 21).HMS(11, 0, 0).In(FixedZone(2 * secondsPerHour)).MustBuild(),
			`"2012-04-21T11:00:00+0200"`,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			got, err := json.Marshal(tc.dt)
			r.NoError(err)
			a.Equal(tc.want, string(got))

			// Unmarshal restores the instant and the rendering, so a
			// second marshal is byte-identical.
			var back DateTime
			r.NoError(json.Unmarshal(got, &back))
			a.True(tc.dt.Equal(back))
			a.Equal(tc.dt.Timestamp(), back.Timestamp())
			again, err := json.Marshal(back)
			r.NoError(err)
			a.Equal(tc.want, string(again))
		})
	}
}

func TestUnmarshalJSONInvalid(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var dt DateTime
	err := dt.UnmarshalJSON([]byte(`"i am not a timestamp"`))
	r.Error(err)
	r.ErrorIs(err, ErrParse)

	err = dt.UnmarshalJSON([]byte(`42`))
	r.Error(err)
	r.ErrorIs(err, ErrParse)

	err = dt.UnmarshalJSON([]byte(`"2012-13-01T00:00:00"`))
	r.ErrorIs(err, ErrInvalidDate)
}

func TestMarshalText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt := YMD(2012, 4, 21).HMS(11, 0, 0).In(FixedZone(2 * secondsPerHour)).MustBuild()
	text, err := dt.MarshalText()
	r.NoError(err)
	a.Equal("2012-04-21T11:00:00+0200", string(text))

	var back DateTime
	r.NoError(back.UnmarshalText(text))
	a.True(dt.Equal(back))
	a.Equal(11, back.Hour())
}

func TestJSONStructField(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	type record struct {
		When DateTime `json:"when"`
		Name string   `json:"name"`
	}

	rec := record{When: YMD(2024, 2, 29).HMS(13, 15, 45).MustBuild(), Name: "leap"}
	blob, err := json.Marshal(rec)
	r.NoError(err)
	a.JSONEq(`{"when":"2024-02-29T13:15:45","name":"leap"}`, string(blob))

	var back record
	r.NoError(json.Unmarshal(blob, &back))
	a.True(rec.When.Equal(back.When))
}
