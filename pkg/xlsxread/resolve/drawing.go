package resolve

import (
	"fmt"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// DrawingResolver resolves a decoded drawing part into anchored
// drawing objects, following relationship ids for hyperlinks, media
// and hosted graphic parts.
type DrawingResolver struct {
	// Styles supplies the theme for scheme color resolution.
	Styles *Styles
	// Rels is the drawing part's relationship manifest, nil when the
	// part has none.
	Rels *raw.Relationships
	// DrawingPath is the drawing part path, the base for relationship
	// target resolution.
	DrawingPath string
}

// Resolve maps every anchored object of the part. Anchors without
// content carry no object and are dropped.
func (r *DrawingResolver) Resolve(d *raw.Drawing) ([]models.Drawing, error) {
	if d == nil || len(d.Anchors) == 0 {
		return nil, nil
	}
	out := make([]models.Drawing, 0, len(d.Anchors))
	for i := range d.Anchors {
		a := &d.Anchors[i]
		if a.Content == nil {
			continue
		}
		content, err := r.resolveContent(a.Content)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Drawing{
			Anchor:  resolveAnchor(a),
			Content: content,
		})
	}
	return out, nil
}

// resolveAnchor converts marker cells to 1-based coordinates. A
// two-cell anchor with an editAs override reclassifies to the edit
// behavior it declares; its markers stay as stored.
func resolveAnchor(a *raw.Anchor) models.Anchor {
	kind := models.AnchorKind(a.Kind)
	if a.Kind == raw.AnchorTwoCell {
		switch a.EditAs {
		case "oneCell":
			kind = models.AnchorOneCell
		case "absolute":
			kind = models.AnchorAbsolute
		}
	}
	out := models.Anchor{Kind: kind}
	if a.From != nil {
		out.From = resolveMarker(a.From)
	}
	if a.To != nil {
		out.To = resolveMarker(a.To)
	}
	if a.Position != nil {
		out.Position = &models.EMUPoint{X: a.Position.X, Y: a.Position.Y}
	}
	if a.Extent != nil {
		out.Extent = &models.EMUExtent{Width: a.Extent.Width, Height: a.Extent.Height}
	}
	return out
}

func resolveMarker(m *raw.Marker) *models.Marker {
	return &models.Marker{
		Cell:    cellref.Coordinate{Row: m.Row + 1, Col: m.Col + 1},
		OffsetX: m.ColOffset,
		OffsetY: m.RowOffset,
	}
}

func (r *DrawingResolver) resolveContent(c *raw.DrawingContent) (models.DrawingContent, error) {
	nv, err := r.nonVisual(c)
	if err != nil {
		return models.DrawingContent{}, err
	}

	switch c.Kind {
	case "pic":
		pic := &models.Picture{
			NonVisual: nv,
			Transform: resolveTransform(c.Transform),
			EmbedID:   c.EmbedRelID,
		}
		if c.EmbedRelID != "" {
			target, err := TargetPathByID(r.Rels, r.DrawingPath, c.EmbedRelID)
			if err != nil {
				return models.DrawingContent{}, err
			}
			pic.Target = target
		}
		return models.DrawingContent{Kind: models.DrawingPicture, Picture: pic}, nil

	case "graphicFrame":
		frame := &models.GraphicFrame{
			NonVisual: nv,
			Transform: resolveTransform(c.Transform),
			URI:       c.GraphicURI,
			RelID:     c.GraphicRelID,
		}
		if c.GraphicRelID != "" {
			target, err := TargetPathByID(r.Rels, r.DrawingPath, c.GraphicRelID)
			if err != nil {
				return models.DrawingContent{}, err
			}
			frame.Target = target
		}
		return models.DrawingContent{Kind: models.DrawingGraphicFrame, GraphicFrame: frame}, nil

	case "grpSp":
		group := &models.GroupShape{
			NonVisual: nv,
			Transform: resolveTransform(c.Transform),
		}
		if len(c.Children) > 0 {
			group.Children = make([]models.DrawingContent, 0, len(c.Children))
			for i := range c.Children {
				child, err := r.resolveContent(&c.Children[i])
				if err != nil {
					return models.DrawingContent{}, err
				}
				group.Children = append(group.Children, child)
			}
		}
		return models.DrawingContent{Kind: models.DrawingGroup, Group: group}, nil

	default:
		// sp and cxnSp share the shape form; connectors add endpoints.
		shape := &models.Shape{
			NonVisual: nv,
			Preset:    c.Preset,
			Transform: resolveTransform(c.Transform),
			Text:      c.Text,
			Connector: c.Kind == "cxnSp",
			FillColor: r.drawingColor(c.FillColor),
		}
		if c.Line != nil {
			shape.LineColor = r.drawingColor(c.Line.Color)
			if c.Line.Width != nil {
				shape.LineWidth = *c.Line.Width
			}
		}
		if c.StartConnectionID != nil {
			v := *c.StartConnectionID
			shape.StartID = &v
		}
		if c.EndConnectionID != nil {
			v := *c.EndConnectionID
			shape.EndID = &v
		}
		return models.DrawingContent{Kind: models.DrawingShape, Shape: shape}, nil
	}
}

func (r *DrawingResolver) nonVisual(c *raw.DrawingContent) (models.NonVisual, error) {
	nv := models.NonVisual{Macro: c.Macro}
	p := c.NonVisual
	if p == nil {
		return nv, nil
	}
	if p.ID != nil {
		nv.ID = *p.ID
	}
	nv.Name = p.Name
	nv.Description = p.Description
	nv.Hidden = p.Hidden

	if p.HyperlinkRelID != "" && r.Rels != nil {
		rel, ok := FindByID(r.Rels, p.HyperlinkRelID)
		if !ok {
			return models.NonVisual{}, integrityErr(fmt.Sprintf("hyperlink %q of %s", p.HyperlinkRelID, r.DrawingPath), ErrRelationshipNotFound)
		}
		link := &models.Hyperlink{External: rel.TargetMode == raw.TargetModeExternal}
		if link.External {
			link.Target = rel.Target
		} else {
			link.Target = NormalizeTarget(r.DrawingPath, rel.Target)
		}
		nv.Hyperlink = link
	}
	return nv, nil
}

func resolveTransform(t *raw.Transform) *models.Transform {
	if t == nil {
		return nil
	}
	out := &models.Transform{
		// Rotation is stored in 60000ths of a degree.
		Rotation: float64(t.Rot) / 60000,
		FlipH:    t.FlipH,
		FlipV:    t.FlipV,
	}
	if t.Offset != nil {
		out.Offset = &models.EMUPoint{X: t.Offset.X, Y: t.Offset.Y}
	}
	if t.Extent != nil {
		out.Extent = &models.EMUExtent{Width: t.Extent.Width, Height: t.Extent.Height}
	}
	return out
}

func (r *DrawingResolver) drawingColor(c *raw.DrawingColor) models.HexColor {
	if c == nil {
		return ""
	}
	if c.SrgbValue != "" {
		hex, _ := normalizeARGB(c.SrgbValue)
		return hex
	}
	if c.SchemeValue != "" {
		hex, _ := r.Styles.schemeColor(c.SchemeValue)
		return hex
	}
	return ""
}
