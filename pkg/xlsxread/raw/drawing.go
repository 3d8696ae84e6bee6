package raw

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Drawing is the decoded xl/drawings/drawing<N>.xml part.
type Drawing struct {
	// Anchors holds the anchored objects in document order.
	Anchors []Anchor `json:"anchors,omitempty"`
}

// Anchor kinds, matching the element names without the Anchor suffix.
const (
	AnchorAbsolute = "absolute"
	AnchorOneCell  = "oneCell"
	AnchorTwoCell  = "twoCell"
)

// Anchor is one anchored drawing object.
type Anchor struct {
	// Kind is one of the Anchor constants.
	Kind string `json:"kind"`
	// EditAs is the twoCellAnchor editAs attribute.
	EditAs string `json:"edit_as,omitempty"`
	// From is the top-left cell marker of cell-bound anchors.
	From *Marker `json:"from,omitempty"`
	// To is the bottom-right cell marker of two-cell anchors.
	To *Marker `json:"to,omitempty"`
	// Position is the absolute anchor position.
	Position *Point `json:"position,omitempty"`
	// Extent is the object size of absolute and one-cell anchors.
	Extent *Extent `json:"extent,omitempty"`
	// Content is the anchored object, nil for an empty anchor.
	Content *DrawingContent `json:"content,omitempty"`
}

// Marker is a cell-plus-offset position. Col and Row are zero-based
// as stored in the part; offsets are EMU.
type Marker struct {
	Col       uint32 `json:"col"`
	ColOffset int64  `json:"col_offset"`
	Row       uint32 `json:"row"`
	RowOffset int64  `json:"row_offset"`
}

// Point is an EMU coordinate pair.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Extent is an EMU size.
type Extent struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// DrawingContent is one drawn object. Kind keeps the source element
// name: sp, pic, graphicFrame, grpSp or cxnSp.
type DrawingContent struct {
	Kind string `json:"kind"`
	// Macro is the attached macro reference of sp and graphicFrame.
	Macro string `json:"macro,omitempty"`
	// NonVisual is the cNvPr data.
	NonVisual *NonVisualProperties `json:"non_visual,omitempty"`
	// Transform is the xfrm data.
	Transform *Transform `json:"transform,omitempty"`
	// Preset is the prstGeom preset name of shapes and connectors.
	Preset string `json:"preset,omitempty"`
	// FillColor is the shape-level solidFill.
	FillColor *DrawingColor `json:"fill_color,omitempty"`
	// Line is the outline ln element.
	Line *LineProperties `json:"line,omitempty"`
	// Text is the shape text with paragraphs separated by newlines.
	Text string `json:"text,omitempty"`
	// EmbedRelID is the r:embed of a picture blip.
	EmbedRelID string `json:"embed_rel_id,omitempty"`
	// GraphicURI is the graphicData uri of a graphic frame.
	GraphicURI string `json:"graphic_uri,omitempty"`
	// GraphicRelID is the first r:id found inside graphicData.
	GraphicRelID string `json:"graphic_rel_id,omitempty"`
	// StartConnectionID and EndConnectionID are the shape ids a
	// connector attaches to.
	StartConnectionID *uint32 `json:"start_connection_id,omitempty"`
	EndConnectionID   *uint32 `json:"end_connection_id,omitempty"`
	// Children holds the members of a group shape.
	Children []DrawingContent `json:"children,omitempty"`
}

// NonVisualProperties mirrors the cNvPr element.
type NonVisualProperties struct {
	ID          *uint32 `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Hidden      bool    `json:"hidden,omitempty"`
	// HyperlinkRelID is the r:id of an attached hlinkClick.
	HyperlinkRelID string `json:"hyperlink_rel_id,omitempty"`
}

// Transform mirrors the xfrm element. Rot is in 60000ths of a degree
// as stored in the part.
type Transform struct {
	Rot    int64   `json:"rot,omitempty"`
	FlipH  bool    `json:"flip_h,omitempty"`
	FlipV  bool    `json:"flip_v,omitempty"`
	Offset *Point  `json:"offset,omitempty"`
	Extent *Extent `json:"extent,omitempty"`
}

// DrawingColor is a DrawingML solid color, either a literal RGB value
// or a scheme slot name.
type DrawingColor struct {
	// SrgbValue is the srgbClr val, a hex RGB string.
	SrgbValue string `json:"srgb_value,omitempty"`
	// SchemeValue is the schemeClr val, for example "accent1".
	SchemeValue string `json:"scheme_value,omitempty"`
}

// LineProperties mirrors the ln element.
type LineProperties struct {
	// Width is the line width in EMU.
	Width *int64 `json:"width,omitempty"`
	// Color is the line solidFill.
	Color *DrawingColor `json:"color,omitempty"`
}

// DecodeDrawing decodes a drawing part.
func DecodeDrawing(r io.Reader) (*Drawing, error) {
	d := NewDecoder(r)
	dr := &Drawing{}
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
		var kind string
		switch se.Name.Local {
		case "absoluteAnchor":
			kind = AnchorAbsolute
		case "oneCellAnchor":
			kind = AnchorOneCell
		case "twoCellAnchor":
			kind = AnchorTwoCell
		default:
			continue
		}
		anchor, err := decodeAnchor(d, se, kind)
		if err != nil {
			return nil, err
		}
		dr.Anchors = append(dr.Anchors, anchor)
	}
	return dr, nil
}

func decodeAnchor(d *xml.Decoder, start xml.StartElement, kind string) (Anchor, error) {
	anchor := Anchor{
		Kind:   kind,
		EditAs: attrString(start, "editAs"),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return anchor, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "from":
				m, err := decodeMarker(d, t)
				if err != nil {
					return anchor, err
				}
				anchor.From = m
			case "to":
				m, err := decodeMarker(d, t)
				if err != nil {
					return anchor, err
				}
				anchor.To = m
			case "pos":
				x, _ := attrInt64(t, "x")
				y, _ := attrInt64(t, "y")
				anchor.Position = &Point{X: x, Y: y}
			case "ext":
				cx, _ := attrInt64(t, "cx")
				cy, _ := attrInt64(t, "cy")
				anchor.Extent = &Extent{Width: cx, Height: cy}
			case "sp", "pic", "graphicFrame", "grpSp", "cxnSp":
				content, err := decodeDrawingContent(d, t)
				if err != nil {
					return anchor, err
				}
				anchor.Content = content
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return anchor, nil
			}
		}
	}
}

func decodeMarker(d *xml.Decoder, start xml.StartElement) (*Marker, error) {
	m := &Marker{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "col", "colOff", "row", "rowOff":
				text, err := elementText(d, t)
				if err != nil {
					return nil, err
				}
				n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
				if err != nil {
					continue
				}
				switch t.Name.Local {
				case "col":
					m.Col = uint32(n)
				case "colOff":
					m.ColOffset = n
				case "row":
					m.Row = uint32(n)
				case "rowOff":
					m.RowOffset = n
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return m, nil
			}
		}
	}
}

// decodeDrawingContent consumes one drawn object element. Nested
// elements that reuse generic DrawingML names, such as the solid fill
// inside an outline or inside run properties, are consumed by their
// owners so that the flat cases below only see shape-level children.
func decodeDrawingContent(d *xml.Decoder, start xml.StartElement) (*DrawingContent, error) {
	c := &DrawingContent{
		Kind:  start.Name.Local,
		Macro: attrString(start, "macro"),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				nv, err := decodeNonVisual(d, t)
				if err != nil {
					return nil, err
				}
				c.NonVisual = nv
			case "stCxn":
				c.StartConnectionID = attrUint32Ptr(t, "id")
			case "endCxn":
				c.EndConnectionID = attrUint32Ptr(t, "id")
			case "xfrm":
				tr, err := decodeTransform(d, t)
				if err != nil {
					return nil, err
				}
				c.Transform = tr
			case "prstGeom":
				c.Preset = attrString(t, "prst")
			case "solidFill":
				color, err := decodeSolidFill(d, t)
				if err != nil {
					return nil, err
				}
				c.FillColor = color
			case "ln":
				ln, err := decodeLine(d, t)
				if err != nil {
					return nil, err
				}
				c.Line = ln
			case "txBody":
				text, err := decodeTextBody(d, t)
				if err != nil {
					return nil, err
				}
				c.Text = text
			case "blip":
				c.EmbedRelID = attrString(t, "embed")
			case "graphicData":
				uri, relID, err := decodeGraphicData(d, t)
				if err != nil {
					return nil, err
				}
				c.GraphicURI = uri
				c.GraphicRelID = relID
			case "style":
				// Matrix references carry scheme colors that must not
				// leak into the shape fill.
				if err := d.Skip(); err != nil {
					return nil, err
				}
			case "effectLst":
				if err := d.Skip(); err != nil {
					return nil, err
				}
			case "sp", "pic", "graphicFrame", "grpSp", "cxnSp":
				child, err := decodeDrawingContent(d, t)
				if err != nil {
					return nil, err
				}
				c.Children = append(c.Children, *child)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return c, nil
			}
		}
	}
}

func decodeNonVisual(d *xml.Decoder, start xml.StartElement) (*NonVisualProperties, error) {
	nv := &NonVisualProperties{
		ID:          attrUint32Ptr(start, "id"),
		Name:        attrString(start, "name"),
		Description: attrString(start, "descr"),
		Hidden:      attrBool(start, "hidden", false),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "hlinkClick" {
				nv.HyperlinkRelID = attrString(t, "id")
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nv, nil
			}
		}
	}
}

func decodeTransform(d *xml.Decoder, start xml.StartElement) (*Transform, error) {
	tr := &Transform{
		FlipH: attrBool(start, "flipH", false),
		FlipV: attrBool(start, "flipV", false),
	}
	if rot, ok := attrInt64(start, "rot"); ok {
		tr.Rot = rot
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "off":
				x, _ := attrInt64(t, "x")
				y, _ := attrInt64(t, "y")
				tr.Offset = &Point{X: x, Y: y}
			case "ext":
				cx, _ := attrInt64(t, "cx")
				cy, _ := attrInt64(t, "cy")
				tr.Extent = &Extent{Width: cx, Height: cy}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return tr, nil
			}
		}
	}
}

func decodeSolidFill(d *xml.Decoder, start xml.StartElement) (*DrawingColor, error) {
	color := &DrawingColor{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "srgbClr":
				color.SrgbValue = attrString(t, "val")
			case "schemeClr":
				color.SchemeValue = attrString(t, "val")
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return color, nil
			}
		}
	}
}

func decodeLine(d *xml.Decoder, start xml.StartElement) (*LineProperties, error) {
	ln := &LineProperties{}
	if w, ok := attrInt64(start, "w"); ok {
		ln.Width = &w
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "solidFill" {
				color, err := decodeSolidFill(d, t)
				if err != nil {
					return nil, err
				}
				ln.Color = color
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return ln, nil
			}
		}
	}
}

// decodeGraphicData reads the payload uri and the first relationship
// id found among the payload elements, which is how charts and other
// framed parts are referenced.
func decodeGraphicData(d *xml.Decoder, start xml.StartElement) (string, string, error) {
	uri := attrString(start, "uri")
	var relID string
	for {
		tok, err := d.Token()
		if err != nil {
			return uri, relID, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if relID == "" {
				if id, ok := attr(t, "id"); ok {
					relID = id
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return uri, relID, nil
			}
		}
	}
}

// decodeTextBody joins the run texts of a text body, separating
// paragraphs with newlines.
func decodeTextBody(d *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	paragraphs := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if paragraphs > 0 {
					sb.WriteByte('\n')
				}
				paragraphs++
			case "t":
				text, err := elementText(d, t)
				if err != nil {
					return "", err
				}
				sb.WriteString(text)
			case "rPr", "pPr", "endParaRPr":
				// Run and paragraph properties can hold fills and
				// theme colors; keep them out of the text scan.
				if err := d.Skip(); err != nil {
					return "", err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return sb.String(), nil
			}
		}
	}
}
