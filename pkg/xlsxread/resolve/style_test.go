package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

func ptr[T any](v T) *T { return &v }

func testStylesheet() *raw.Stylesheet {
	return &raw.Stylesheet{
		NumberFormats: []raw.NumberFormat{
			{ID: 164, Code: "yyyy/mm/dd"},
			{ID: 165, Code: "0.0%"},
			{ID: 14, Code: "0.00"},
		},
		Fonts: []raw.FontProperties{
			{Name: "Calibri", Size: ptr(11.0)},
			{Name: "Arial", Size: ptr(10.0), Bold: true, Color: &raw.Color{RGB: "FF0070C0"}, Charset: ptr(uint32(128))},
			{Name: "Meiryo", Size: ptr(9.0), Color: &raw.Color{Theme: ptr(uint32(4))}},
		},
		Fills: []raw.Fill{
			{Pattern: &raw.PatternFill{PatternType: "none"}},
			{Pattern: &raw.PatternFill{PatternType: "gray125"}},
			{Pattern: &raw.PatternFill{
				PatternType:     "solid",
				ForegroundColor: &raw.Color{RGB: "FFFFC000"},
				BackgroundColor: &raw.Color{Indexed: ptr(uint32(64))},
			}},
			{Gradient: &raw.GradientFill{
				Degree: 90,
				Stops: []raw.GradientStop{
					{Position: 0, Color: &raw.Color{RGB: "FF0000FF"}},
					{Position: 1, Color: &raw.Color{Theme: ptr(uint32(0))}},
				},
			}},
		},
		Borders: []raw.Border{
			{},
			{
				Left:   &raw.BorderEdge{Style: "thin", Color: &raw.Color{Indexed: ptr(uint32(64))}},
				Top:    &raw.BorderEdge{Style: "none"},
				Bottom: &raw.BorderEdge{},
			},
		},
		CellStyleXfs: []raw.CellFormat{
			{NumberFormatID: ptr(uint32(0)), FontID: ptr(uint32(0)), FillID: ptr(uint32(0)), BorderID: ptr(uint32(0))},
			{
				NumberFormatID: ptr(uint32(164)),
				FontID:         ptr(uint32(1)),
				FillID:         ptr(uint32(2)),
				BorderID:       ptr(uint32(1)),
				ApplyFill:      ptr(false),
			},
		},
		CellXfs: []raw.CellFormat{
			{NumberFormatID: ptr(uint32(0)), FontID: ptr(uint32(0)), FillID: ptr(uint32(0)), BorderID: ptr(uint32(0)), XfID: ptr(uint32(0))},
			// Inherits from parent 1 except where apply flags say otherwise.
			{
				NumberFormatID: ptr(uint32(165)),
				FontID:         ptr(uint32(2)),
				FillID:         ptr(uint32(3)),
				BorderID:       ptr(uint32(0)),
				XfID:           ptr(uint32(1)),
				ApplyFill:      ptr(true),
			},
			// Explicit opt-out without a parent.
			{FontID: ptr(uint32(1)), ApplyFont: ptr(false)},
			// Alignment and protection travel with the record.
			{
				FontID: ptr(uint32(0)),
				Alignment: &raw.Alignment{
					Horizontal: "center",
					WrapText:   ptr(true),
					Indent:     ptr(uint32(2)),
				},
				Protection:      &raw.Protection{Hidden: ptr(true)},
				ApplyAlignment:  ptr(true),
				ApplyProtection: ptr(true),
			},
			// Dangling font id.
			{FontID: ptr(uint32(99)), ApplyFont: ptr(true)},
		},
	}
}

func testTheme() *raw.Theme {
	return &raw.Theme{
		Colors: &raw.ColorScheme{
			Name:              "Office",
			Dark1:             "1F2937",
			Light1:            "FFFFFF",
			Dark2:             "44546A",
			Light2:            "E7E6E6",
			Accent1:           "4472C4",
			Accent2:           "ED7D31",
			Hyperlink:         "0563C1",
			FollowedHyperlink: "954F72",
		},
	}
}

func TestResolveFormatInheritance(t *testing.T) {
	s := NewStyles(testStylesheet(), testTheme())

	// The parent supplies the font and number format when the record
	// carries no apply flag of its own.
	style, err := s.ResolveFormat(1)
	require.NoError(t, err)
	assert.Equal(t, "Arial", style.Font.Name)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, "128", style.Font.Charset)
	assert.Equal(t, models.HexColor("0070c0ff"), style.Font.Color)
	assert.Equal(t, uint32(164), style.NumberFormat.ID)
	assert.Equal(t, "yyyy/mm/dd", style.NumberFormat.Code)
	assert.True(t, style.NumberFormat.IsDate)

	// applyFill on the record keeps its own gradient fill.
	assert.Equal(t, models.FillGradient, style.Fill.Kind)
	require.Len(t, style.Fill.Stops, 2)
	assert.Equal(t, models.HexColor("0000ffff"), style.Fill.Stops[0].Color)
	assert.Equal(t, models.HexColor("ffffffff"), style.Fill.Stops[1].Color)

	// The parent's border comes through with only the drawing edges.
	require.NotNil(t, style.Border.Left)
	assert.Equal(t, "thin", style.Border.Left.Style)
	assert.Equal(t, models.HexColor("000000ff"), style.Border.Left.Color)
	assert.Nil(t, style.Border.Top)
	assert.Nil(t, style.Border.Bottom)
}

func TestResolveFormatApplyFalseWithoutParent(t *testing.T) {
	s := NewStyles(testStylesheet(), nil)

	style, err := s.ResolveFormat(2)
	require.NoError(t, err)
	assert.Equal(t, models.Font{}, style.Font)
	assert.Equal(t, models.FillNone, style.Fill.Kind)
	assert.Equal(t, "General", style.NumberFormat.Code)
}

func TestResolveFormatAlignmentAndProtection(t *testing.T) {
	s := NewStyles(testStylesheet(), nil)

	style, err := s.ResolveFormat(3)
	require.NoError(t, err)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "center", style.Alignment.Horizontal)
	assert.True(t, style.Alignment.WrapText)
	assert.Equal(t, uint32(2), style.Alignment.Indent)
	require.NotNil(t, style.Protection)
	assert.True(t, style.Protection.Locked)
	assert.True(t, style.Protection.Hidden)
}

func TestResolveFormatDanglingFont(t *testing.T) {
	s := NewStyles(testStylesheet(), nil)

	_, err := s.ResolveFormat(4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStyleIndexOutOfRange)

	var ie *IntegrityError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "font 99", ie.Ref)
}

func TestResolveFormatIndexFallsBackToDefault(t *testing.T) {
	s := NewStyles(testStylesheet(), nil)

	style, err := s.ResolveFormat(42)
	require.NoError(t, err)
	assert.Equal(t, models.Font{}, style.Font)
	assert.Equal(t, "General", style.NumberFormat.Code)
	assert.Equal(t, models.FillNone, style.Fill.Kind)

	// A missing stylesheet behaves the same way.
	empty := NewStyles(nil, nil)
	style, err = empty.ResolveFormat(0)
	require.NoError(t, err)
	assert.Equal(t, "General", style.NumberFormat.Code)
}

func TestResolveShared(t *testing.T) {
	s := NewStyles(testStylesheet(), nil)

	first, err := s.ResolveShared(1)
	require.NoError(t, err)
	second, err := s.ResolveShared(1)
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := s.ResolveShared(0)
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestNumberFormatBuiltInWinsOverCustom(t *testing.T) {
	// The fixture declares a custom numFmt reusing reserved id 14; the
	// reserved mapping takes precedence.
	s := NewStyles(testStylesheet(), nil)

	nf := s.NumberFormat(14)
	assert.Equal(t, "mm-dd-yy", nf.Code)
	assert.True(t, nf.IsDate)

	nf = s.NumberFormat(165)
	assert.Equal(t, "0.0%", nf.Code)
	assert.False(t, nf.IsDate)

	nf = s.NumberFormat(300)
	assert.Equal(t, "General", nf.Code)
	assert.False(t, nf.IsDate)

	// Elapsed-time codes count as date formats.
	nf = s.NumberFormat(46)
	assert.Equal(t, "[h]:mm:ss", nf.Code)
	assert.True(t, nf.IsDate)

	// Text and currency codes do not.
	assert.False(t, s.NumberFormat(49).IsDate)
	assert.False(t, s.NumberFormat(44).IsDate)
}

func TestResolveColorThemeSlots(t *testing.T) {
	s := NewStyles(nil, testTheme())

	cases := []struct {
		slot uint32
		want models.HexColor
	}{
		{0, "ffffffff"},
		{1, "1f2937ff"},
		{2, "e7e6e6ff"},
		{3, "44546aff"},
		{4, "4472c4ff"},
		{5, "ed7d31ff"},
		{10, "0563c1ff"},
		{11, "954f72ff"},
	}
	for _, tc := range cases {
		got := s.resolveColor(&raw.Color{Theme: ptr(tc.slot)})
		assert.Equal(t, tc.want, got, "slot %d", tc.slot)
	}

	// Slots beyond the scheme resolve to nothing.
	assert.Equal(t, models.HexColor(""), s.resolveColor(&raw.Color{Theme: ptr(uint32(12))}))

	// Unset scheme entries resolve to nothing as well.
	assert.Equal(t, models.HexColor(""), s.resolveColor(&raw.Color{Theme: ptr(uint32(6))}))
}

func TestResolveColorLiteralForms(t *testing.T) {
	s := NewStyles(nil, nil)

	assert.Equal(t, models.HexColor("70ad47ff"), s.resolveColor(&raw.Color{RGB: "70AD47"}))
	assert.Equal(t, models.HexColor("70ad4780"), s.resolveColor(&raw.Color{RGB: "8070AD47"}))
	assert.Equal(t, models.HexColor(""), s.resolveColor(&raw.Color{RGB: "notahex"}))
	assert.Equal(t, models.HexColor(""), s.resolveColor(&raw.Color{Auto: ptr(true)}))
	assert.Equal(t, models.HexColor(""), s.resolveColor(nil))
}

func TestResolveColorIndexedPalette(t *testing.T) {
	s := NewStyles(nil, nil)

	assert.Equal(t, models.HexColor("ff0000ff"), s.resolveColor(&raw.Color{Indexed: ptr(uint32(2))}))
	assert.Equal(t, models.HexColor("000000ff"), s.resolveColor(&raw.Color{Indexed: ptr(uint32(64))}))
	assert.Equal(t, models.HexColor("ffffffff"), s.resolveColor(&raw.Color{Indexed: ptr(uint32(65))}))
	assert.Equal(t, models.HexColor(""), s.resolveColor(&raw.Color{Indexed: ptr(uint32(66))}))

	// A declared palette replaces the legacy one entirely.
	custom := NewStyles(&raw.Stylesheet{
		Colors: &raw.StylesheetColors{Indexed: []string{"FF112233", "00AABBCC"}},
	}, nil)
	assert.Equal(t, models.HexColor("112233ff"), custom.resolveColor(&raw.Color{Indexed: ptr(uint32(0))}))
	assert.Equal(t, models.HexColor("aabbcc00"), custom.resolveColor(&raw.Color{Indexed: ptr(uint32(1))}))
	assert.Equal(t, models.HexColor(""), custom.resolveColor(&raw.Color{Indexed: ptr(uint32(2))}))
}

func TestApplyTint(t *testing.T) {
	s := NewStyles(nil, nil)

	// Lightening pure red reaches the halfway point to white.
	got := s.resolveColor(&raw.Color{RGB: "FFFF0000", Tint: ptr(0.5)})
	assert.Equal(t, models.HexColor("ff8080ff"), got)

	// Darkening halves the lightness.
	got = s.resolveColor(&raw.Color{RGB: "FFFF0000", Tint: ptr(-0.5)})
	assert.Equal(t, models.HexColor("800000ff"), got)

	// Grays stay gray.
	got = s.resolveColor(&raw.Color{RGB: "FFFFFFFF", Tint: ptr(-0.25)})
	assert.Equal(t, models.HexColor("bfbfbfff"), got)
	got = s.resolveColor(&raw.Color{RGB: "FF000000", Tint: ptr(0.5)})
	assert.Equal(t, models.HexColor("808080ff"), got)

	// Zero tint is the identity, and tint applies to theme slots too.
	got = s.resolveColor(&raw.Color{RGB: "FF4472C4", Tint: ptr(0.0)})
	assert.Equal(t, models.HexColor("4472c4ff"), got)

	themed := NewStyles(nil, testTheme())
	got = themed.resolveColor(&raw.Color{Theme: ptr(uint32(0)), Tint: ptr(-0.25)})
	assert.Equal(t, models.HexColor("bfbfbfff"), got)
}

func TestDefaultTableStyle(t *testing.T) {
	s := NewStyles(&raw.Stylesheet{DefaultTableStyle: "TableStyleMedium2"}, nil)
	assert.Equal(t, "TableStyleMedium2", s.DefaultTableStyle())

	var nilStyles *Styles
	assert.Equal(t, "", nilStyles.DefaultTableStyle())
}
