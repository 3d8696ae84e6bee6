// Package cellref parses and formats spreadsheet cell references.
//
// Coordinates are 1-based in both axes, matching the row/column numbers a
// spreadsheet application displays. A1-style references ("B2"), R1C1-style
// references ("R2C2") and inclusive ranges ("B2:C3") are supported.
package cellref

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidRef indicates a reference string that is not well formed.
var ErrInvalidRef = errors.New("invalid cell reference")

// Coordinate identifies a single cell. Row and Col are 1-based.
type Coordinate struct {
	// Row is the 1-based row number.
	Row uint32 `json:"row"`
	// Col is the 1-based column number (A = 1).
	Col uint32 `json:"col"`
}

// Range is an inclusive rectangular cell region.
type Range struct {
	// Start is the top-left cell of the range.
	Start Coordinate `json:"start"`
	// End is the bottom-right cell of the range (inclusive).
	End Coordinate `json:"end"`
}

var r1c1Pattern = regexp.MustCompile(`^[Rr]([0-9]+)[Cc]([0-9]+)$`)

// ParseA1 parses an A1-style reference such as "B2" or "$AA$10".
// Dollar signs are ignored; both halves must be present and non-zero.
func ParseA1(ref string) (Coordinate, error) {
	s := strings.ReplaceAll(ref, "$", "")
	if s == "" {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	// Scan the trailing digit run as the row, the rest as column letters.
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	letters, digits := s[:i], s[i:]
	if letters == "" || digits == "" {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	row, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || row == 0 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	col, err := parseColumn(letters)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	return Coordinate{Row: uint32(row), Col: col}, nil
}

// ParseR1C1 parses an R1C1-style reference such as "R2C3".
func ParseR1C1(ref string) (Coordinate, error) {
	m := r1c1Pattern.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	row, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil || row == 0 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	col, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil || col == 0 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return Coordinate{Row: uint32(row), Col: uint32(col)}, nil
}

// ParseRange parses an inclusive range such as "B2:C3". A bare cell
// reference parses as a single-cell range, as worksheet dimensions of
// one-cell sheets are written that way.
func ParseRange(ref string) (Range, error) {
	start, end, found := strings.Cut(ref, ":")
	from, err := ParseA1(start)
	if err != nil {
		return Range{}, err
	}
	if !found {
		return Range{Start: from, End: from}, nil
	}
	to, err := ParseA1(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: from, End: to}, nil
}

// A1 renders the coordinate in A1 notation.
func (c Coordinate) A1() string {
	return formatColumn(c.Col) + strconv.FormatUint(uint64(c.Row), 10)
}

// String renders the range in "A1:B2" notation. Formatting a parsed
// range reproduces the source string for well-formed input.
func (r Range) String() string {
	return r.Start.A1() + ":" + r.End.A1()
}

// Contains reports whether the coordinate lies inside the range.
func (r Range) Contains(c Coordinate) bool {
	return c.Row >= r.Start.Row && c.Row <= r.End.Row &&
		c.Col >= r.Start.Col && c.Col <= r.End.Col
}

// Overlaps reports whether two ranges share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Row <= o.End.Row && o.Start.Row <= r.End.Row &&
		r.Start.Col <= o.End.Col && o.Start.Col <= r.End.Col
}

func parseColumn(letters string) (uint32, error) {
	var col uint64
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			col = col*26 + uint64(ch-'A'+1)
		case ch >= 'a' && ch <= 'z':
			col = col*26 + uint64(ch-'a'+1)
		default:
			return 0, ErrInvalidRef
		}
		if col > math.MaxUint32 {
			return 0, ErrInvalidRef
		}
	}
	return uint32(col), nil
}

func formatColumn(col uint32) string {
	if col == 0 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		i--
		col--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}
