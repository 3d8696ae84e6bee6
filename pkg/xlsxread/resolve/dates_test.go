package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSerialToTime1900(t *testing.T) {
	cases := []struct {
		serial float64
		want   time.Time
	}{
		{1, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{2.75, time.Date(1900, 1, 2, 18, 0, 0, 0, time.UTC)},
		// The phantom leap day lands 59 and 60 on the same date.
		{59, time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC)},
		{60, time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC)},
		{61, time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC)},
		{25569, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{25569.5, time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC)},
		{43831.25, time.Date(2020, 1, 1, 6, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SerialToTime(tc.serial, false), "serial %v", tc.serial)
	}
}

func TestSerialToTime1904(t *testing.T) {
	cases := []struct {
		serial float64
		want   time.Time
	}{
		{0, time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)},
		{1, time.Date(1904, 1, 2, 0, 0, 0, 0, time.UTC)},
		{24107, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SerialToTime(tc.serial, true), "serial %v", tc.serial)
	}
}

func TestSerialToTimeMillisecondRounding(t *testing.T) {
	// One second is 1/86400 of a day; the binary representation does
	// not divide evenly, so the fraction rounds at milliseconds.
	got := SerialToTime(1+1.0/86400.0, false)
	assert.Equal(t, time.Date(1900, 1, 1, 0, 0, 1, 0, time.UTC), got)

	got = SerialToTime(1.9999999, false)
	assert.Equal(t, time.Date(1900, 1, 1, 23, 59, 59, 991000000, time.UTC), got)

	// A fraction within half a millisecond of the next day rolls over.
	got = SerialToTime(1.999999999, false)
	assert.Equal(t, time.Date(1900, 1, 2, 0, 0, 0, 0, time.UTC), got)
}
