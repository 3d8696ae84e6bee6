package models

// HexColor is a resolved color as lowercase "rrggbbaa" hex digits.
// Colors read as RGB literals, indexed palette entries and tinted theme
// slots all normalize to this form.
type HexColor string

// Style is a fully resolved cell format: every indirection through the
// stylesheet's font/border/fill/number-format tables and the optional
// named-style parent has been followed.
type Style struct {
	// Font is the resolved font. The zero Font means the theme default.
	Font Font `json:"font"`
	// Border is the resolved border set.
	Border Border `json:"border"`
	// Fill is the resolved fill. Kind "none" means no fill.
	Fill Fill `json:"fill"`
	// Alignment is the resolved alignment, nil for the default.
	Alignment *Alignment `json:"alignment,omitempty"`
	// NumberFormat is the resolved number format.
	NumberFormat NumberFormat `json:"number_format"`
	// Protection is the resolved protection, nil for the default.
	Protection *Protection `json:"protection,omitempty"`
}

// Font is a resolved character font.
type Font struct {
	// Name is the typeface name.
	Name string `json:"name,omitempty"`
	// Size is the font size in points, 0 when unspecified.
	Size float64 `json:"size,omitempty"`
	// Bold, Italic, Strike, Outline, Shadow, Condense and Extend are the
	// boolean font properties.
	Bold     bool `json:"bold,omitempty"`
	Italic   bool `json:"italic,omitempty"`
	Strike   bool `json:"strike,omitempty"`
	Outline  bool `json:"outline,omitempty"`
	Shadow   bool `json:"shadow,omitempty"`
	Condense bool `json:"condense,omitempty"`
	Extend   bool `json:"extend,omitempty"`
	// Underline is the underline style ("single", "double", ...), empty
	// when the font is not underlined.
	Underline string `json:"underline,omitempty"`
	// VertAlign is the vertical alignment of runs ("superscript", ...).
	VertAlign string `json:"vert_align,omitempty"`
	// Color is the resolved font color, empty when unspecified.
	Color HexColor `json:"color,omitempty"`
	// Family is the font family numbering, nil when unspecified.
	Family *uint32 `json:"family,omitempty"`
	// Charset is the character set id, empty when unspecified.
	Charset string `json:"charset,omitempty"`
	// Scheme marks the font as part of the theme scheme ("major"/"minor").
	Scheme string `json:"scheme,omitempty"`
}

// BorderEdge is one resolved border side.
type BorderEdge struct {
	// Style is the line style name ("thin", "medium", "dashed", ...).
	Style string `json:"style,omitempty"`
	// Color is the resolved line color.
	Color HexColor `json:"color,omitempty"`
}

// Border is a resolved cell border set.
type Border struct {
	Left     *BorderEdge `json:"left,omitempty"`
	Right    *BorderEdge `json:"right,omitempty"`
	Top      *BorderEdge `json:"top,omitempty"`
	Bottom   *BorderEdge `json:"bottom,omitempty"`
	Diagonal *BorderEdge `json:"diagonal,omitempty"`
	// DiagonalUp and DiagonalDown select which diagonals draw.
	DiagonalUp   bool `json:"diagonal_up,omitempty"`
	DiagonalDown bool `json:"diagonal_down,omitempty"`
	// Outline applies the border to the outline of a range.
	Outline bool `json:"outline,omitempty"`
}

// FillKind tags the fill variant.
type FillKind string

const (
	// FillNone is the absence of a fill.
	FillNone FillKind = "none"
	// FillPattern is a pattern fill.
	FillPattern FillKind = "pattern"
	// FillGradient is a gradient fill.
	FillGradient FillKind = "gradient"
)

// Fill is a resolved cell fill.
type Fill struct {
	// Kind discriminates the fill variant.
	Kind FillKind `json:"kind"`
	// Pattern is the pattern type name for pattern fills ("solid", ...).
	Pattern string `json:"pattern,omitempty"`
	// Foreground and Background are the resolved pattern colors.
	Foreground HexColor `json:"foreground,omitempty"`
	Background HexColor `json:"background,omitempty"`
	// Degree is the gradient angle for linear gradient fills.
	Degree float64 `json:"degree,omitempty"`
	// Stops are the gradient stops in declared order.
	Stops []GradientStop `json:"stops,omitempty"`
}

// GradientStop is one gradient fill stop.
type GradientStop struct {
	// Position is the stop position in [0, 1].
	Position float64 `json:"position"`
	// Color is the resolved stop color.
	Color HexColor `json:"color,omitempty"`
}

// Alignment is a resolved cell alignment.
type Alignment struct {
	// Horizontal and Vertical are the alignment keywords as written
	// ("left", "center", "top", ...), empty when unspecified.
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
	// Indent is the indentation level.
	Indent uint32 `json:"indent,omitempty"`
	// TextRotation is the rotation in degrees [0, 180].
	TextRotation uint32 `json:"text_rotation,omitempty"`
	// RelativeIndent is the additional indent applied on conditional
	// formatting, may be negative.
	RelativeIndent int32 `json:"relative_indent,omitempty"`
	// ReadingOrder is 0 context, 1 left-to-right, 2 right-to-left.
	ReadingOrder uint32 `json:"reading_order,omitempty"`
	// WrapText, ShrinkToFit and JustifyLastLine are the boolean flags.
	WrapText        bool `json:"wrap_text,omitempty"`
	ShrinkToFit     bool `json:"shrink_to_fit,omitempty"`
	JustifyLastLine bool `json:"justify_last_line,omitempty"`
}

// Protection is a resolved cell protection.
type Protection struct {
	// Locked reports whether the cell locks when the sheet is protected.
	Locked bool `json:"locked"`
	// Hidden reports whether the cell formula hides when protected.
	Hidden bool `json:"hidden,omitempty"`
}

// NumberFormat is a resolved number format.
type NumberFormat struct {
	// ID is the number format id; 0-163 are built-in.
	ID uint32 `json:"id"`
	// Code is the format code string, "General" when unmapped.
	Code string `json:"code"`
	// IsDate reports whether the code formats dates or times.
	IsDate bool `json:"is_date,omitempty"`
}
