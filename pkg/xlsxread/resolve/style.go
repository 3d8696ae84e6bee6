package resolve

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// Styles resolves cell format indices against one session's
// stylesheet and theme. It is not safe for concurrent use; a session
// owns its engine.
type Styles struct {
	sheet         *raw.Stylesheet
	theme         *raw.Theme
	customPalette []models.HexColor
	numberFormats map[uint32]string
	dateCache     map[uint32]bool
	resolved      map[uint32]*models.Style
}

// NewStyles builds the resolution engine. Either part may be nil, in
// which case lookups resolve to the engine defaults.
func NewStyles(sheet *raw.Stylesheet, theme *raw.Theme) *Styles {
	s := &Styles{
		sheet:     sheet,
		theme:     theme,
		dateCache: make(map[uint32]bool),
		resolved:  make(map[uint32]*models.Style),
	}
	if sheet == nil {
		return s
	}
	if len(sheet.NumberFormats) > 0 {
		s.numberFormats = make(map[uint32]string, len(sheet.NumberFormats))
		for _, nf := range sheet.NumberFormats {
			s.numberFormats[nf.ID] = nf.Code
		}
	}
	if sheet.Colors != nil && len(sheet.Colors.Indexed) > 0 {
		s.customPalette = make([]models.HexColor, len(sheet.Colors.Indexed))
		for i, rgb := range sheet.Colors.Indexed {
			if hex, ok := normalizeARGB(rgb); ok {
				s.customPalette[i] = hex
			}
		}
	}
	return s
}

// DefaultTableStyle returns the workbook-wide default table style name.
func (s *Styles) DefaultTableStyle() string {
	if s == nil || s.sheet == nil {
		return ""
	}
	return s.sheet.DefaultTableStyle
}

// ResolveFormat resolves the cellXfs record at idx into a full style.
// An idx beyond the table falls back to the default record; font,
// border and fill ids beyond their tables fail with
// ErrStyleIndexOutOfRange.
func (s *Styles) ResolveFormat(idx uint32) (models.Style, error) {
	var record raw.CellFormat
	if s.sheet != nil && int(idx) < len(s.sheet.CellXfs) {
		record = s.sheet.CellXfs[idx]
	}
	var parent raw.CellFormat
	hasParent := false
	if s.sheet != nil && record.XfID != nil && int(*record.XfID) < len(s.sheet.CellStyleXfs) {
		parent = s.sheet.CellStyleXfs[*record.XfID]
		hasParent = true
	}

	var style models.Style

	if id := effective(record.FontID, record.ApplyFont, parent.FontID, parent.ApplyFont, hasParent); id != nil {
		font, err := s.Font(*id)
		if err != nil {
			return models.Style{}, err
		}
		style.Font = font
	}

	if id := effective(record.BorderID, record.ApplyBorder, parent.BorderID, parent.ApplyBorder, hasParent); id != nil {
		border, err := s.Border(*id)
		if err != nil {
			return models.Style{}, err
		}
		style.Border = border
	}

	style.Fill = models.Fill{Kind: models.FillNone}
	if id := effective(record.FillID, record.ApplyFill, parent.FillID, parent.ApplyFill, hasParent); id != nil {
		fill, err := s.Fill(*id)
		if err != nil {
			return models.Style{}, err
		}
		style.Fill = fill
	}

	numID := uint32(0)
	if id := effective(record.NumberFormatID, record.ApplyNumberFormat, parent.NumberFormatID, parent.ApplyNumberFormat, hasParent); id != nil {
		numID = *id
	}
	style.NumberFormat = s.NumberFormat(numID)

	if al := effective(record.Alignment, record.ApplyAlignment, parent.Alignment, parent.ApplyAlignment, hasParent); al != nil {
		style.Alignment = convertAlignment(al)
	}
	if pr := effective(record.Protection, record.ApplyProtection, parent.Protection, parent.ApplyProtection, hasParent); pr != nil {
		style.Protection = convertProtection(pr)
	}
	return style, nil
}

// ResolveShared returns the same record pointer for every call with
// the same index, so cells sharing a format index share one style.
func (s *Styles) ResolveShared(idx uint32) (*models.Style, error) {
	if st, ok := s.resolved[idx]; ok {
		return st, nil
	}
	st, err := s.ResolveFormat(idx)
	if err != nil {
		return nil, err
	}
	s.resolved[idx] = &st
	return &st, nil
}

// effective selects which record supplies a property. An explicit
// apply flag of true takes the record's own value. Without a
// named-style parent the record's value stands unless the flag is an
// explicit false. With a parent, the parent supplies the property
// unless the parent's own flag is an explicit false.
func effective[T any](own *T, ownApply *bool, parent *T, parentApply *bool, hasParent bool) *T {
	if ownApply != nil && *ownApply {
		return own
	}
	if !hasParent {
		if ownApply != nil && !*ownApply {
			return nil
		}
		return own
	}
	if parentApply != nil && !*parentApply {
		return nil
	}
	return parent
}

// Font resolves a font table index.
func (s *Styles) Font(id uint32) (models.Font, error) {
	if s.sheet == nil || int(id) >= len(s.sheet.Fonts) {
		return models.Font{}, integrityErr(fmt.Sprintf("font %d", id), ErrStyleIndexOutOfRange)
	}
	return s.convertFont(&s.sheet.Fonts[id]), nil
}

// Border resolves a border table index.
func (s *Styles) Border(id uint32) (models.Border, error) {
	if s.sheet == nil || int(id) >= len(s.sheet.Borders) {
		return models.Border{}, integrityErr(fmt.Sprintf("border %d", id), ErrStyleIndexOutOfRange)
	}
	b := &s.sheet.Borders[id]
	return models.Border{
		Left:         s.convertEdge(b.Left),
		Right:        s.convertEdge(b.Right),
		Top:          s.convertEdge(b.Top),
		Bottom:       s.convertEdge(b.Bottom),
		Diagonal:     s.convertEdge(b.Diagonal),
		DiagonalUp:   b.DiagonalUp,
		DiagonalDown: b.DiagonalDown,
		Outline:      b.Outline,
	}, nil
}

// Fill resolves a fill table index.
func (s *Styles) Fill(id uint32) (models.Fill, error) {
	if s.sheet == nil || int(id) >= len(s.sheet.Fills) {
		return models.Fill{Kind: models.FillNone}, integrityErr(fmt.Sprintf("fill %d", id), ErrStyleIndexOutOfRange)
	}
	f := &s.sheet.Fills[id]
	switch {
	case f.Gradient != nil:
		fill := models.Fill{Kind: models.FillGradient, Degree: f.Gradient.Degree}
		for _, stop := range f.Gradient.Stops {
			fill.Stops = append(fill.Stops, models.GradientStop{
				Position: stop.Position,
				Color:    s.resolveColor(stop.Color),
			})
		}
		return fill, nil
	case f.Pattern != nil:
		if f.Pattern.PatternType == "" || f.Pattern.PatternType == "none" {
			return models.Fill{Kind: models.FillNone}, nil
		}
		return models.Fill{
			Kind:       models.FillPattern,
			Pattern:    f.Pattern.PatternType,
			Foreground: s.resolveColor(f.Pattern.ForegroundColor),
			Background: s.resolveColor(f.Pattern.BackgroundColor),
		}, nil
	}
	return models.Fill{Kind: models.FillNone}, nil
}

// NumberFormat resolves a number format id. Unmapped ids resolve to
// General rather than failing.
func (s *Styles) NumberFormat(id uint32) models.NumberFormat {
	code := BuiltInFormatCode(id)
	if code == "" {
		if custom, ok := s.numberFormats[id]; ok {
			code = custom
		} else {
			code = "General"
		}
	}
	return models.NumberFormat{ID: id, Code: code, IsDate: s.isDateFormat(id, code)}
}

func (s *Styles) isDateFormat(id uint32, code string) bool {
	if v, ok := s.dateCache[id]; ok {
		return v
	}
	v := isDateFormatCode(code)
	s.dateCache[id] = v
	return v
}

// convertFont maps decoded font properties to the resolved form. Safe
// on a nil engine, which leaves colors unresolved.
func (s *Styles) convertFont(p *raw.FontProperties) models.Font {
	f := models.Font{
		Name:      p.Name,
		Bold:      p.Bold,
		Italic:    p.Italic,
		Strike:    p.Strike,
		Outline:   p.Outline,
		Shadow:    p.Shadow,
		Condense:  p.Condense,
		Extend:    p.Extend,
		Underline: p.Underline,
		VertAlign: p.VertAlign,
		Scheme:    p.Scheme,
		Color:     s.resolveColor(p.Color),
	}
	if p.Size != nil {
		f.Size = *p.Size
	}
	if p.Family != nil {
		v := *p.Family
		f.Family = &v
	}
	if p.Charset != nil {
		f.Charset = strconv.FormatUint(uint64(*p.Charset), 10)
	}
	return f
}

// convertEdge drops edges that draw nothing.
func (s *Styles) convertEdge(e *raw.BorderEdge) *models.BorderEdge {
	if e == nil || e.Style == "" || e.Style == "none" {
		return nil
	}
	return &models.BorderEdge{Style: e.Style, Color: s.resolveColor(e.Color)}
}

func convertAlignment(a *raw.Alignment) *models.Alignment {
	al := &models.Alignment{
		Horizontal: a.Horizontal,
		Vertical:   a.Vertical,
	}
	if a.Indent != nil {
		al.Indent = *a.Indent
	}
	if a.TextRotation != nil {
		al.TextRotation = *a.TextRotation
	}
	if a.RelativeIndent != nil {
		al.RelativeIndent = *a.RelativeIndent
	}
	if a.ReadingOrder != nil {
		al.ReadingOrder = *a.ReadingOrder
	}
	if a.WrapText != nil {
		al.WrapText = *a.WrapText
	}
	if a.ShrinkToFit != nil {
		al.ShrinkToFit = *a.ShrinkToFit
	}
	if a.JustifyLastLine != nil {
		al.JustifyLastLine = *a.JustifyLastLine
	}
	return al
}

// convertProtection applies the format defaults: cells lock unless
// the attribute says otherwise.
func convertProtection(p *raw.Protection) *models.Protection {
	pr := &models.Protection{Locked: true}
	if p.Locked != nil {
		pr.Locked = *p.Locked
	}
	if p.Hidden != nil {
		pr.Hidden = *p.Hidden
	}
	return pr
}
