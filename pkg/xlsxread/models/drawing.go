package models

import "github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"

// AnchorKind tags how a drawing is positioned on the sheet.
type AnchorKind string

const (
	// AnchorAbsolute positions the drawing at a fixed EMU offset from
	// the sheet origin, independent of any cell.
	AnchorAbsolute AnchorKind = "absolute"
	// AnchorOneCell pins the drawing's top-left corner to a cell and
	// gives it a fixed extent.
	AnchorOneCell AnchorKind = "oneCell"
	// AnchorTwoCell pins both corners to cells; the drawing stretches
	// with column and row resizing.
	AnchorTwoCell AnchorKind = "twoCell"
)

// Marker is an anchor corner: a cell plus an EMU offset from the
// cell's top-left corner.
type Marker struct {
	// Cell is the anchor cell (1-based row and column).
	Cell cellref.Coordinate `json:"cell"`
	// OffsetX is the horizontal EMU offset within the cell.
	OffsetX int64 `json:"offset_x"`
	// OffsetY is the vertical EMU offset within the cell.
	OffsetY int64 `json:"offset_y"`
}

// Anchor is a resolved drawing anchor. Which fields are set depends on
// Kind: absolute anchors carry Position and Extent, one-cell anchors
// From and Extent, two-cell anchors From and To.
type Anchor struct {
	// Kind discriminates the anchor variant.
	Kind AnchorKind `json:"kind"`
	// From is the top-left marker for cell-bound anchors.
	From *Marker `json:"from,omitempty"`
	// To is the bottom-right marker for two-cell anchors.
	To *Marker `json:"to,omitempty"`
	// Position is the absolute EMU position for absolute anchors.
	Position *EMUPoint `json:"position,omitempty"`
	// Extent is the explicit EMU size for absolute and one-cell anchors.
	Extent *EMUExtent `json:"extent,omitempty"`
}

// DrawingKind tags the drawing content variant.
type DrawingKind string

const (
	// DrawingShape is a preset or custom geometry shape (including
	// connectors).
	DrawingShape DrawingKind = "shape"
	// DrawingPicture is an embedded or linked image.
	DrawingPicture DrawingKind = "picture"
	// DrawingGraphicFrame hosts external graphic content such as a chart.
	DrawingGraphicFrame DrawingKind = "graphicFrame"
	// DrawingGroup is a group of child drawings.
	DrawingGroup DrawingKind = "group"
)

// Drawing is one anchored drawing on a worksheet.
type Drawing struct {
	// Anchor is the resolved anchor geometry.
	Anchor Anchor `json:"anchor"`
	// Content is the drawing content tree.
	Content DrawingContent `json:"content"`
}

// DrawingContent is the tagged drawing content variant. Exactly one of
// the variant fields matching Kind is set. GroupShape recurses into the
// same type, forming a tree.
type DrawingContent struct {
	// Kind discriminates the content variant.
	Kind DrawingKind `json:"kind"`
	// Shape is set for shape content.
	Shape *Shape `json:"shape,omitempty"`
	// Picture is set for picture content.
	Picture *Picture `json:"picture,omitempty"`
	// GraphicFrame is set for graphic frame content.
	GraphicFrame *GraphicFrame `json:"graphic_frame,omitempty"`
	// Group is set for group content.
	Group *GroupShape `json:"group,omitempty"`
}

// NonVisual carries the non-visual drawing properties shared by all
// content kinds.
type NonVisual struct {
	// ID is the drawing object id, unique within the drawing part.
	ID uint32 `json:"id"`
	// Name is the object name ("Picture 1", ...).
	Name string `json:"name,omitempty"`
	// Description is the alternative text description.
	Description string `json:"description,omitempty"`
	// Hidden reports whether the object is hidden.
	Hidden bool `json:"hidden,omitempty"`
	// Macro is the attached macro reference, if any.
	Macro string `json:"macro,omitempty"`
	// Hyperlink is the click hyperlink resolved through the drawing
	// part's relationship manifest.
	Hyperlink *Hyperlink `json:"hyperlink,omitempty"`
}

// Transform is a drawing object's 2D transform in EMU.
type Transform struct {
	// Offset is the object position.
	Offset *EMUPoint `json:"offset,omitempty"`
	// Extent is the object size.
	Extent *EMUExtent `json:"extent,omitempty"`
	// Rotation is the clockwise rotation in degrees.
	Rotation float64 `json:"rotation,omitempty"`
	// FlipH and FlipV mirror the object.
	FlipH bool `json:"flip_h,omitempty"`
	FlipV bool `json:"flip_v,omitempty"`
}

// Shape is a resolved drawing shape, including connector shapes.
type Shape struct {
	// NonVisual is the shape's non-visual property set.
	NonVisual NonVisual `json:"non_visual"`
	// Preset is the preset geometry name ("rect", "ellipse", ...);
	// empty for custom geometry.
	Preset string `json:"preset,omitempty"`
	// Transform is the shape transform, nil when unspecified.
	Transform *Transform `json:"transform,omitempty"`
	// FillColor is the resolved solid fill color, empty when the fill
	// is absent or not a solid fill.
	FillColor HexColor `json:"fill_color,omitempty"`
	// LineColor is the resolved outline color.
	LineColor HexColor `json:"line_color,omitempty"`
	// LineWidth is the outline width in EMU, 0 when unspecified.
	LineWidth int64 `json:"line_width,omitempty"`
	// Text is the concatenated text body content.
	Text string `json:"text,omitempty"`
	// Connector reports whether the shape is a connector.
	Connector bool `json:"connector,omitempty"`
	// StartID and EndID are the ids of the shapes a connector joins.
	StartID *uint32 `json:"start_id,omitempty"`
	EndID   *uint32 `json:"end_id,omitempty"`
}

// Picture is a resolved embedded or linked image.
type Picture struct {
	// NonVisual is the picture's non-visual property set.
	NonVisual NonVisual `json:"non_visual"`
	// Transform is the picture transform, nil when unspecified.
	Transform *Transform `json:"transform,omitempty"`
	// EmbedID is the relationship id of the embedded image data.
	EmbedID string `json:"embed_id,omitempty"`
	// Target is the media part path the embed id resolves to.
	Target string `json:"target,omitempty"`
}

// GraphicFrame hosts non-drawing graphic content, typically a chart.
type GraphicFrame struct {
	// NonVisual is the frame's non-visual property set.
	NonVisual NonVisual `json:"non_visual"`
	// Transform is the frame transform, nil when unspecified.
	Transform *Transform `json:"transform,omitempty"`
	// URI identifies the hosted content type.
	URI string `json:"uri,omitempty"`
	// RelID is the relationship id of the hosted part.
	RelID string `json:"rel_id,omitempty"`
	// Target is the part path the relationship resolves to.
	Target string `json:"target,omitempty"`
}

// GroupShape groups child drawings under a shared transform.
type GroupShape struct {
	// NonVisual is the group's non-visual property set.
	NonVisual NonVisual `json:"non_visual"`
	// Transform is the group transform, nil when unspecified.
	Transform *Transform `json:"transform,omitempty"`
	// Children are the grouped drawings in document order.
	Children []DrawingContent `json:"children,omitempty"`
}

// Image is an image part referenced from a sheet's drawing.
type Image struct {
	// RelID is the relationship id the drawing references it by.
	RelID string `json:"rel_id"`
	// Path is the media part path inside the package.
	Path string `json:"path"`
	// Data is the raw image bytes.
	Data []byte `json:"-"`
}
