package raw

import (
	"encoding/xml"
	"io"
)

// Stylesheet is the decoded xl/styles.xml part. The slices keep part
// order so that cells can address records by index.
type Stylesheet struct {
	// NumberFormats holds the custom numFmt records.
	NumberFormats []NumberFormat `json:"number_formats,omitempty"`
	// Fonts is the font table.
	Fonts []FontProperties `json:"fonts,omitempty"`
	// Fills is the fill table.
	Fills []Fill `json:"fills,omitempty"`
	// Borders is the border table.
	Borders []Border `json:"borders,omitempty"`
	// CellStyleXfs holds the named-style parent records.
	CellStyleXfs []CellFormat `json:"cell_style_xfs,omitempty"`
	// CellXfs holds the records cells reference through their s attribute.
	CellXfs []CellFormat `json:"cell_xfs,omitempty"`
	// CellStyles holds the named style declarations.
	CellStyles []CellStyle `json:"cell_styles,omitempty"`
	// Colors carries the custom indexed palette when present.
	Colors *StylesheetColors `json:"colors,omitempty"`
	// DefaultTableStyle is the workbook default table style name.
	DefaultTableStyle string `json:"default_table_style,omitempty"`
}

// NumberFormat is one custom numFmt record.
type NumberFormat struct {
	// ID is the numFmtId cells reference.
	ID uint32 `json:"id"`
	// Code is the format code.
	Code string `json:"code"`
}

// FontProperties mirrors a font record or a rich run rPr element. The
// two share the same children apart from the name element, which is
// "name" in the font table and "rFont" in run properties.
type FontProperties struct {
	Name      string   `json:"name,omitempty"`
	Size      *float64 `json:"size,omitempty"`
	Bold      bool     `json:"bold,omitempty"`
	Italic    bool     `json:"italic,omitempty"`
	Strike    bool     `json:"strike,omitempty"`
	Outline   bool     `json:"outline,omitempty"`
	Shadow    bool     `json:"shadow,omitempty"`
	Condense  bool     `json:"condense,omitempty"`
	Extend    bool     `json:"extend,omitempty"`
	Underline string   `json:"underline,omitempty"`
	VertAlign string   `json:"vert_align,omitempty"`
	Color     *Color   `json:"color,omitempty"`
	Family    *uint32  `json:"family,omitempty"`
	Charset   *uint32  `json:"charset,omitempty"`
	Scheme    string   `json:"scheme,omitempty"`
}

// Color mirrors a stylesheet color element. At most one of the
// addressing attributes is meaningful per instance.
type Color struct {
	// Auto requests the application automatic color.
	Auto *bool `json:"auto,omitempty"`
	// Indexed addresses the legacy indexed palette.
	Indexed *uint32 `json:"indexed,omitempty"`
	// RGB is a literal ARGB value, for example "FF70AD47".
	RGB string `json:"rgb,omitempty"`
	// Theme addresses a color scheme slot.
	Theme *uint32 `json:"theme,omitempty"`
	// Tint lightens or darkens the addressed color, in [-1, 1].
	Tint *float64 `json:"tint,omitempty"`
}

// Fill is one fill record, either a pattern or a gradient.
type Fill struct {
	Pattern  *PatternFill  `json:"pattern,omitempty"`
	Gradient *GradientFill `json:"gradient,omitempty"`
}

// PatternFill mirrors the patternFill element.
type PatternFill struct {
	// PatternType is the pattern name, for example "solid" or "gray125".
	PatternType string `json:"pattern_type,omitempty"`
	// ForegroundColor is the fgColor child.
	ForegroundColor *Color `json:"foreground_color,omitempty"`
	// BackgroundColor is the bgColor child.
	BackgroundColor *Color `json:"background_color,omitempty"`
}

// GradientFill mirrors the gradientFill element.
type GradientFill struct {
	// Type is "linear" or "path"; empty means linear.
	Type string `json:"type,omitempty"`
	// Degree is the linear gradient angle in degrees.
	Degree float64 `json:"degree,omitempty"`
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	// Stops holds the gradient stops in document order.
	Stops []GradientStop `json:"stops,omitempty"`
}

// GradientStop is one gradient stop.
type GradientStop struct {
	// Position is the stop position in [0, 1].
	Position float64 `json:"position"`
	// Color is the stop color.
	Color *Color `json:"color,omitempty"`
}

// Border is one border record.
type Border struct {
	DiagonalUp   bool        `json:"diagonal_up,omitempty"`
	DiagonalDown bool        `json:"diagonal_down,omitempty"`
	Outline      bool        `json:"outline,omitempty"`
	Left         *BorderEdge `json:"left,omitempty"`
	Right        *BorderEdge `json:"right,omitempty"`
	Top          *BorderEdge `json:"top,omitempty"`
	Bottom       *BorderEdge `json:"bottom,omitempty"`
	Diagonal     *BorderEdge `json:"diagonal,omitempty"`
}

// BorderEdge is one side of a border record. An empty Style means the
// edge element was present but draws nothing.
type BorderEdge struct {
	Style string `json:"style,omitempty"`
	Color *Color `json:"color,omitempty"`
}

// CellFormat is one xf record from cellStyleXfs or cellXfs. The
// pointer fields distinguish absent attributes from explicit zeros,
// which drives the apply-flag inheritance rules.
type CellFormat struct {
	NumberFormatID *uint32 `json:"number_format_id,omitempty"`
	FontID         *uint32 `json:"font_id,omitempty"`
	FillID         *uint32 `json:"fill_id,omitempty"`
	BorderID       *uint32 `json:"border_id,omitempty"`
	// XfID points into cellStyleXfs; only meaningful on cellXfs records.
	XfID *uint32 `json:"xf_id,omitempty"`
	// QuotePrefix marks values entered with a leading apostrophe.
	QuotePrefix       bool        `json:"quote_prefix,omitempty"`
	ApplyNumberFormat *bool       `json:"apply_number_format,omitempty"`
	ApplyFont         *bool       `json:"apply_font,omitempty"`
	ApplyFill         *bool       `json:"apply_fill,omitempty"`
	ApplyBorder       *bool       `json:"apply_border,omitempty"`
	ApplyAlignment    *bool       `json:"apply_alignment,omitempty"`
	ApplyProtection   *bool       `json:"apply_protection,omitempty"`
	Alignment         *Alignment  `json:"alignment,omitempty"`
	Protection        *Protection `json:"protection,omitempty"`
}

// Alignment mirrors the alignment child of an xf record.
type Alignment struct {
	Horizontal      string  `json:"horizontal,omitempty"`
	Vertical        string  `json:"vertical,omitempty"`
	Indent          *uint32 `json:"indent,omitempty"`
	TextRotation    *uint32 `json:"text_rotation,omitempty"`
	RelativeIndent  *int32  `json:"relative_indent,omitempty"`
	ReadingOrder    *uint32 `json:"reading_order,omitempty"`
	WrapText        *bool   `json:"wrap_text,omitempty"`
	ShrinkToFit     *bool   `json:"shrink_to_fit,omitempty"`
	JustifyLastLine *bool   `json:"justify_last_line,omitempty"`
}

// Protection mirrors the protection child of an xf record.
type Protection struct {
	Locked *bool `json:"locked,omitempty"`
	Hidden *bool `json:"hidden,omitempty"`
}

// CellStyle is one named cellStyle declaration.
type CellStyle struct {
	Name      string  `json:"name,omitempty"`
	XfID      *uint32 `json:"xf_id,omitempty"`
	BuiltinID *uint32 `json:"builtin_id,omitempty"`
}

// StylesheetColors carries a workbook-specific indexed palette that
// overrides the legacy default.
type StylesheetColors struct {
	// Indexed holds the rgbColor values in palette order, as the ARGB
	// strings found in the part.
	Indexed []string `json:"indexed,omitempty"`
}

// DecodeStylesheet decodes the xl/styles.xml part. Records inside dxf
// differential formats are not collected into the tables.
func DecodeStylesheet(r io.Reader) (*Stylesheet, error) {
	d := NewDecoder(r)
	ss := &Stylesheet{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "numFmts":
			ss.NumberFormats, err = decodeNumberFormats(d, se)
		case "fonts":
			ss.Fonts, err = decodeFonts(d, se)
		case "fills":
			ss.Fills, err = decodeFills(d, se)
		case "borders":
			ss.Borders, err = decodeBorders(d, se)
		case "cellStyleXfs":
			ss.CellStyleXfs, err = decodeCellFormats(d, se)
		case "cellXfs":
			ss.CellXfs, err = decodeCellFormats(d, se)
		case "cellStyles":
			ss.CellStyles, err = decodeCellStyles(d, se)
		case "colors":
			ss.Colors, err = decodeStylesheetColors(d, se)
		case "tableStyles":
			ss.DefaultTableStyle = attrString(se, "defaultTableStyle")
			err = d.Skip()
		case "dxfs":
			err = d.Skip()
		}
		if err != nil {
			return nil, err
		}
	}
	return ss, nil
}

func decodeNumberFormats(d *xml.Decoder, start xml.StartElement) ([]NumberFormat, error) {
	var formats []NumberFormat
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "numFmt" {
				id, _ := attrUint32(t, "numFmtId")
				formats = append(formats, NumberFormat{
					ID:   id,
					Code: attrString(t, "formatCode"),
				})
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return formats, nil
			}
		}
	}
}

func decodeFonts(d *xml.Decoder, start xml.StartElement) ([]FontProperties, error) {
	var fonts []FontProperties
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "font" {
				props, err := decodeFontProperties(d, t)
				if err != nil {
					return nil, err
				}
				fonts = append(fonts, *props)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return fonts, nil
			}
		}
	}
}

// decodeFontProperties consumes a font or rPr element.
func decodeFontProperties(d *xml.Decoder, start xml.StartElement) (*FontProperties, error) {
	p := &FontProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name", "rFont":
				p.Name = attrString(t, "val")
			case "sz":
				p.Size = attrFloatPtr(t, "val")
			case "b":
				p.Bold = attrBool(t, "val", true)
			case "i":
				p.Italic = attrBool(t, "val", true)
			case "strike":
				p.Strike = attrBool(t, "val", true)
			case "outline":
				p.Outline = attrBool(t, "val", true)
			case "shadow":
				p.Shadow = attrBool(t, "val", true)
			case "condense":
				p.Condense = attrBool(t, "val", true)
			case "extend":
				p.Extend = attrBool(t, "val", true)
			case "u":
				// A bare u element means a single underline.
				if v, ok := attr(t, "val"); ok {
					p.Underline = v
				} else {
					p.Underline = "single"
				}
			case "vertAlign":
				p.VertAlign = attrString(t, "val")
			case "color":
				p.Color = decodeColor(t)
			case "family":
				p.Family = attrUint32Ptr(t, "val")
			case "charset":
				p.Charset = attrUint32Ptr(t, "val")
			case "scheme":
				p.Scheme = attrString(t, "val")
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return p, nil
			}
		}
	}
}

// decodeColor reads the attribute forms of a color element.
func decodeColor(se xml.StartElement) *Color {
	return &Color{
		Auto:    attrBoolPtr(se, "auto"),
		Indexed: attrUint32Ptr(se, "indexed"),
		RGB:     attrString(se, "rgb"),
		Theme:   attrUint32Ptr(se, "theme"),
		Tint:    attrFloatPtr(se, "tint"),
	}
}

func decodeFills(d *xml.Decoder, start xml.StartElement) ([]Fill, error) {
	var fills []Fill
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "fill" {
				fill, err := decodeFill(d, t)
				if err != nil {
					return nil, err
				}
				fills = append(fills, fill)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return fills, nil
			}
		}
	}
}

func decodeFill(d *xml.Decoder, start xml.StartElement) (Fill, error) {
	var fill Fill
	for {
		tok, err := d.Token()
		if err != nil {
			return fill, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "patternFill":
				pf, err := decodePatternFill(d, t)
				if err != nil {
					return fill, err
				}
				fill.Pattern = pf
			case "gradientFill":
				gf, err := decodeGradientFill(d, t)
				if err != nil {
					return fill, err
				}
				fill.Gradient = gf
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return fill, nil
			}
		}
	}
}

func decodePatternFill(d *xml.Decoder, start xml.StartElement) (*PatternFill, error) {
	pf := &PatternFill{PatternType: attrString(start, "patternType")}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "fgColor":
				pf.ForegroundColor = decodeColor(t)
			case "bgColor":
				pf.BackgroundColor = decodeColor(t)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return pf, nil
			}
		}
	}
}

func decodeGradientFill(d *xml.Decoder, start xml.StartElement) (*GradientFill, error) {
	gf := &GradientFill{
		Type:   attrString(start, "type"),
		Degree: attrFloat(start, "degree", 0),
		Left:   attrFloat(start, "left", 0),
		Right:  attrFloat(start, "right", 0),
		Top:    attrFloat(start, "top", 0),
		Bottom: attrFloat(start, "bottom", 0),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "stop" {
				stop := GradientStop{Position: attrFloat(t, "position", 0)}
				if err := decodeGradientStopColor(d, t, &stop); err != nil {
					return nil, err
				}
				gf.Stops = append(gf.Stops, stop)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return gf, nil
			}
		}
	}
}

func decodeGradientStopColor(d *xml.Decoder, start xml.StartElement, stop *GradientStop) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "color" {
				stop.Color = decodeColor(t)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func decodeBorders(d *xml.Decoder, start xml.StartElement) ([]Border, error) {
	var borders []Border
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "border" {
				border, err := decodeBorder(d, t)
				if err != nil {
					return nil, err
				}
				borders = append(borders, border)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return borders, nil
			}
		}
	}
}

func decodeBorder(d *xml.Decoder, start xml.StartElement) (Border, error) {
	b := Border{
		DiagonalUp:   attrBool(start, "diagonalUp", false),
		DiagonalDown: attrBool(start, "diagonalDown", false),
		Outline:      attrBool(start, "outline", false),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return b, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "left", "right", "top", "bottom", "diagonal":
				edge, err := decodeBorderEdge(d, t)
				if err != nil {
					return b, err
				}
				switch t.Name.Local {
				case "left":
					b.Left = edge
				case "right":
					b.Right = edge
				case "top":
					b.Top = edge
				case "bottom":
					b.Bottom = edge
				case "diagonal":
					b.Diagonal = edge
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return b, nil
			}
		}
	}
}

func decodeBorderEdge(d *xml.Decoder, start xml.StartElement) (*BorderEdge, error) {
	edge := &BorderEdge{Style: attrString(start, "style")}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "color" {
				edge.Color = decodeColor(t)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return edge, nil
			}
		}
	}
}

func decodeCellFormats(d *xml.Decoder, start xml.StartElement) ([]CellFormat, error) {
	var formats []CellFormat
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "xf" {
				cf, err := decodeCellFormat(d, t)
				if err != nil {
					return nil, err
				}
				formats = append(formats, cf)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return formats, nil
			}
		}
	}
}

func decodeCellFormat(d *xml.Decoder, start xml.StartElement) (CellFormat, error) {
	cf := CellFormat{
		NumberFormatID:    attrUint32Ptr(start, "numFmtId"),
		FontID:            attrUint32Ptr(start, "fontId"),
		FillID:            attrUint32Ptr(start, "fillId"),
		BorderID:          attrUint32Ptr(start, "borderId"),
		XfID:              attrUint32Ptr(start, "xfId"),
		QuotePrefix:       attrBool(start, "quotePrefix", false),
		ApplyNumberFormat: attrBoolPtr(start, "applyNumberFormat"),
		ApplyFont:         attrBoolPtr(start, "applyFont"),
		ApplyFill:         attrBoolPtr(start, "applyFill"),
		ApplyBorder:       attrBoolPtr(start, "applyBorder"),
		ApplyAlignment:    attrBoolPtr(start, "applyAlignment"),
		ApplyProtection:   attrBoolPtr(start, "applyProtection"),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return cf, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "alignment":
				cf.Alignment = &Alignment{
					Horizontal:      attrString(t, "horizontal"),
					Vertical:        attrString(t, "vertical"),
					Indent:          attrUint32Ptr(t, "indent"),
					TextRotation:    attrUint32Ptr(t, "textRotation"),
					RelativeIndent:  attrInt32Ptr(t, "relativeIndent"),
					ReadingOrder:    attrUint32Ptr(t, "readingOrder"),
					WrapText:        attrBoolPtr(t, "wrapText"),
					ShrinkToFit:     attrBoolPtr(t, "shrinkToFit"),
					JustifyLastLine: attrBoolPtr(t, "justifyLastLine"),
				}
			case "protection":
				cf.Protection = &Protection{
					Locked: attrBoolPtr(t, "locked"),
					Hidden: attrBoolPtr(t, "hidden"),
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return cf, nil
			}
		}
	}
}

func decodeCellStyles(d *xml.Decoder, start xml.StartElement) ([]CellStyle, error) {
	var styles []CellStyle
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "cellStyle" {
				styles = append(styles, CellStyle{
					Name:      attrString(t, "name"),
					XfID:      attrUint32Ptr(t, "xfId"),
					BuiltinID: attrUint32Ptr(t, "builtinId"),
				})
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return styles, nil
			}
		}
	}
}

// decodeStylesheetColors collects the indexedColors palette. Recently
// used colors under mruColors use a different element name and are
// not picked up.
func decodeStylesheetColors(d *xml.Decoder, start xml.StartElement) (*StylesheetColors, error) {
	colors := &StylesheetColors{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "rgbColor" {
				colors.Indexed = append(colors.Indexed, attrString(t, "rgb"))
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return colors, nil
			}
		}
	}
}
