package format

import (
	"fmt"

	"github.com/ebakup/edbdump/internal/buf"
)

// MtimeSize is the width of a packed last-modified field in backup records.
const MtimeSize = 9

// Mtime is a decoded last-modified timestamp. Backup records pack it into
// nine bytes: a little-endian 16-bit year, a 22-bit second-of-year and a
// 30-bit nanosecond count sharing the remaining bytes (bit 7 of byte 5 is
// second bit 21, its low 6 bits are nanosecond bits 0..5).
type Mtime struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// ParseMtime decodes the packed mtime at data[off] and returns it along with
// the offset of the first byte after the field.
func ParseMtime(data []byte, off int) (Mtime, int, error) {
	field, ok := buf.Slice(data, off, MtimeSize)
	if !ok {
		return Mtime{}, off, fmt.Errorf("%w: truncated at offset %d", ErrBadMtime, off)
	}
	year := int(buf.U16LE(field))
	secs := int(field[2]) | int(field[3])<<8 | int(field[4])<<16 | int(field[5]&0x80)<<17
	nsec := int(field[5]&0x3f) | int(field[6])<<6 | int(field[7])<<14 | int(field[8])<<22

	// Year zero marks an unset mtime and must carry no time of its own.
	if year == 0 && (secs != 0 || nsec != 0) {
		return Mtime{}, off, fmt.Errorf("%w: zero year with non-zero time", ErrBadMtime)
	}
	if nsec >= 1000000000 {
		return Mtime{}, off, fmt.Errorf("%w: %d nanoseconds", ErrBadMtime, nsec)
	}
	day := secs / secondsPerDay
	if day >= 366 {
		return Mtime{}, off, fmt.Errorf("%w: day %d of year", ErrBadMtime, day)
	}
	left := secs - day*secondsPerDay
	hour := left / secondsPerHour
	left -= hour * secondsPerHour
	minute := left / secondsPerMinute
	second := left - minute*secondsPerMinute

	month, dayOfMonth, err := monthAndDayFromDayOfYear(year, day)
	if err != nil {
		return Mtime{}, off, err
	}
	return Mtime{
		Year:       year,
		Month:      month,
		Day:        dayOfMonth,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: nsec,
	}, off + MtimeSize, nil
}

// monthAndDayFromDayOfYear converts a zero-based day of year to civil month
// and day, skipping February 29 in non-leap years.
func monthAndDayFromDayOfYear(year, day int) (int, int, error) {
	if !isLeapYear(year) && day >= 59 {
		day++
	}
	for month, days := range daysPerMonth {
		if day < days {
			return month + 1, day + 1, nil
		}
		day -= days
	}
	return 0, 0, fmt.Errorf("%w: day of year out of range", ErrBadMtime)
}

// String renders the timestamp as "YYYY-MM-DD HH:MM:SS", with a nine-digit
// fraction appended when the nanosecond count is non-zero.
func (m Mtime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second)
	if m.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", m.Nanosecond)
	}
	return s
}
