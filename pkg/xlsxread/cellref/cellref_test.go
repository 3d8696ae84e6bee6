package cellref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseA1(t *testing.T) {
	tests := []struct {
		ref  string
		row  uint32
		col  uint32
	}{
		{"A1", 1, 1},
		{"B2", 2, 2},
		{"Z10", 10, 26},
		{"AA1", 1, 27},
		{"AZ99", 99, 52},
		{"XFD1048576", 1048576, 16384},
		{"$C$7", 7, 3},
		{"c7", 7, 3},
	}

	for _, tt := range tests {
		got, err := ParseA1(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, Coordinate{Row: tt.row, Col: tt.col}, got, tt.ref)
	}
}

func TestParseA1Invalid(t *testing.T) {
	for _, ref := range []string{"", "A", "12", "A0", "1A", "A-1", "A1B", "!!"} {
		_, err := ParseA1(ref)
		assert.ErrorIs(t, err, ErrInvalidRef, ref)
	}
}

func TestParseR1C1(t *testing.T) {
	got, err := ParseR1C1("R2C3")
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Row: 2, Col: 3}, got)

	got, err = ParseR1C1("r10c1")
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Row: 10, Col: 1}, got)

	for _, ref := range []string{"", "R2", "C3", "R0C1", "R1C0", "RC", "R2C3X"} {
		_, err := ParseR1C1(ref)
		assert.ErrorIs(t, err, ErrInvalidRef, ref)
	}
}

func TestRangeRoundTrip(t *testing.T) {
	for _, ref := range []string{"B2:C3", "A1:XFD1048576", "AA10:AB12"} {
		r, err := ParseRange(ref)
		require.NoError(t, err)
		assert.Equal(t, ref, r.String())
	}
}

func TestParseRangeSingleCell(t *testing.T) {
	r, err := ParseRange("A1")
	require.NoError(t, err)
	assert.Equal(t, Range{Start: Coordinate{1, 1}, End: Coordinate{1, 1}}, r)
}

func TestRangeContains(t *testing.T) {
	r, err := ParseRange("B2:D4")
	require.NoError(t, err)

	assert.True(t, r.Contains(Coordinate{Row: 2, Col: 2}))
	assert.True(t, r.Contains(Coordinate{Row: 4, Col: 4}))
	assert.True(t, r.Contains(Coordinate{Row: 3, Col: 3}))
	assert.False(t, r.Contains(Coordinate{Row: 1, Col: 2}))
	assert.False(t, r.Contains(Coordinate{Row: 2, Col: 5}))
}

func TestRangeOverlaps(t *testing.T) {
	a, _ := ParseRange("B2:C3")
	b, _ := ParseRange("C3:D4")
	c, _ := ParseRange("D4:E5")
	d, _ := ParseRange("A1:A10")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.True(t, b.Overlaps(c))
	assert.False(t, a.Overlaps(c))
	assert.False(t, a.Overlaps(d))
}

func TestFormatColumn(t *testing.T) {
	tests := []struct {
		col  uint32
		want string
	}{
		{1, "A"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatColumn(tt.col))
	}
}
