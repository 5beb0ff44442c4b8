package format

import "fmt"

// The datafile formats define timestamps as seconds after 1970-01-01T00:00:00
// on the proleptic Gregorian calendar. The conversion below is done by hand,
// without the time package, so the rendered text is bit-exact on every
// platform regardless of zone databases or calendar quirks.

const (
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * 60
	secondsPerDay    = secondsPerHour * 24
	secondsPerYear   = int64(secondsPerDay) * 365
)

// daysPerMonth always includes February 29; non-leap years skip it during
// the day-of-year walk instead.
var daysPerMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// leapDaysBefore returns the number of leap days in the years [1970,
// 1970+years). The current year estimate is excluded; its own leap day, if
// any, is handled by the day-of-year walk.
func leapDaysBefore(years int) int {
	return (years+1)/4 - (years+69)/100 + (years+369)/400
}

// FormatSecondsAfterEpoch renders sae as "YYYY-MM-DD HH:MM:SS". It starts
// from a 365-day year estimate and walks the estimate down while the
// accumulated leap-day count overshoots the remaining seconds.
func FormatSecondsAfterEpoch(sae int64) (string, error) {
	if sae < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeTime, sae)
	}
	years := int(sae / secondsPerYear)
	left := sae - int64(years)*secondsPerYear
	leapDays := leapDaysBefore(years)
	for int64(leapDays)*secondsPerDay > left {
		years--
		left = sae - int64(years)*secondsPerYear
		leapDays = leapDaysBefore(years)
	}
	year := 1970 + years
	left -= int64(leapDays) * secondsPerDay

	days := int(left / secondsPerDay)
	left -= int64(days) * secondsPerDay
	day := days + 1
	if day > 59 && !isLeapYear(year) {
		day++ // skip February 29
	}
	month := 0
	dayOfMonth := day
	for month < 11 && dayOfMonth > daysPerMonth[month] {
		dayOfMonth -= daysPerMonth[month]
		month++
	}
	month++

	hour := int(left / secondsPerHour)
	left -= int64(hour) * secondsPerHour
	minute := int(left / secondsPerMinute)
	second := int(left) - minute*secondsPerMinute

	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		year, month, dayOfMonth, hour, minute, second), nil
}
