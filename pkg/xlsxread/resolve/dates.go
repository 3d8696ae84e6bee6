package resolve

import (
	"math"
	"time"
)

var (
	epoch1904     = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
	epoch1900     = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	epoch1900Leap = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
)

// SerialToTime converts a date serial number into a UTC time. The day
// fraction is kept at millisecond resolution.
//
// Under the 1900 system, serials below 60 count from 1899-12-31, so
// serial 1 is 1900-01-01. The system also counts a 1900-02-29 that
// never existed; from serial 60 on the epoch shifts back one day to
// absorb it, which lands both serial 59 and 60 on 1900-02-28. The 1904
// system counts from 1904-01-01, so serial 1 is 1904-01-02.
//
// Callers are expected to filter negative serials; they do not
// represent dates.
func SerialToTime(serial float64, date1904 bool) time.Time {
	var epoch time.Time
	switch {
	case date1904:
		epoch = epoch1904
	case serial < 60:
		epoch = epoch1900
	default:
		epoch = epoch1900Leap
	}
	days := int(serial)
	fraction := serial - float64(days)
	ms := int(math.Round(fraction * 86400000.0))
	return epoch.AddDate(0, 0, days).
		Add(time.Duration(ms/1000)*time.Second + time.Duration(ms%1000)*time.Millisecond)
}
