package datetime

// Calendar arithmetic on the proleptic Gregorian calendar. The cycle
// constants and tables follow the standard library's time package, but the
// conversions here are relative to the Unix epoch rather than an internal
// year, so a day number is directly a timestamp divided by 86400.

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	nanosPerSecond = 1_000_000_000

	// Days in a given period of years.
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// The unsigned zero year for the cycle computations. Must be 1 mod
	// 400; days before it do not compute correctly.
	absoluteZeroYear = -292277022399

	// The year of the zero internal day.
	internalYear = 1

	// Offsets to rebase absolute day counts onto the Unix epoch.
	absoluteToInternalDays int64 = (absoluteZeroYear - internalYear) * 365.2425
	unixToInternalDays     int64 = 1969*365 + 1969/4 - 1969/100 + 1969/400
	absoluteToUnixDays           = absoluteToInternalDays - unixToInternalDays
)

// daysBefore[m] counts the number of days in a non-leap year before month
// m+1 begins. The final entry counts the days in a full non-leap year.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a leap year under the proleptic Gregorian
// rule: divisible by 4 and either not divisible by 100 or divisible by
// 400. The rule extends to years before the Gregorian reform and to
// negative years.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1–12) of year,
// accounting for leap years.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// daysSinceEpoch takes a year and returns the number of days from the
// absolute epoch to the start of that year. This is basically
// (year - absoluteZeroYear) * 365, but accounting for leap days.
func daysSinceEpoch(year int) int64 {
	y := int64(year) - absoluteZeroYear

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	d += 365 * y

	return d
}

// daysFromCivil converts a civil date to its day number relative to the
// Unix epoch: 1970-01-01 is day zero, 1969-12-31 is day -1. The caller
// must have validated month and day.
func daysFromCivil(year, month, day int) int64 {
	d := daysSinceEpoch(year)
	d += int64(daysBefore[month-1])
	if month > 2 && IsLeap(year) {
		d++
	}
	d += int64(day - 1)
	return d + absoluteToUnixDays
}

// civilFromDays converts an epoch-relative day number back to a civil
// date. It is the exact inverse of daysFromCivil over the full signed
// range of representable dates.
func civilFromDays(days int64) (year, month, day int) {
	d := uint64(days - absoluteToUnixDays)

	// Account for 400-year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles. The last cycle has one extra leap year, so
	// on the last day of that year d / daysPer100Years will be 4 instead
	// of 3. Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles. The last cycle has a missing leap year,
	// which does not affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle. The last year is a leap year,
	// so on its last day d / 365 will be 4 instead of 3. Cut it back down
	// to 3 by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	day = int(d)

	if IsLeap(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return year, 2, 29
		}
	}

	// Estimate month on assumption that every month has 31 days. The
	// estimate may be too low by at most one month, so adjust.
	month = day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day
}

// dayOfYear returns the ordinal day of the year for a validated civil
// date, starting at 1.
func dayOfYear(year, month, day int) int {
	doy := daysBefore[month-1] + day
	if month > 2 && IsLeap(year) {
		doy++
	}
	return doy
}

// weekdayForDays returns the day of the week for an epoch-relative day
// number, numbered as in time.Weekday: Sunday is 0. Day zero, 1970-01-01,
// was a Thursday.
func weekdayForDays(days int64) int {
	return int(floorMod(days+4, 7))
}

// floorDiv returns the quotient of x and y, rounded toward negative
// infinity.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y < 0 {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; always in [0, y).
func floorMod(x, y int64) int64 {
	r := x % y
	if r < 0 {
		r += y
	}
	return r
}
