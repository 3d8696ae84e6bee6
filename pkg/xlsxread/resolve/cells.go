package resolve

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// Sheet-wide fallbacks when neither the cell's column/row nor the
// sheet format properties specify a metric.
const (
	defaultColumnWidth = 8.43
	defaultRowHeight   = 15.0
)

// Materializer combines raw worksheet records with the shared string
// table and style engine into typed cells.
type Materializer struct {
	// Strings resolves shared-string indices.
	Strings *StringTable
	// Styles resolves cell format indices.
	Styles *Styles
	// Rels is the worksheet's relationship manifest, nil when the sheet
	// has none.
	Rels *raw.Relationships
	// SheetPath is the worksheet part path, the base for relationship
	// target resolution.
	SheetPath string
	// Date1904 selects the workbook date system for serial conversion.
	Date1904 bool
}

// SheetContent is the materialized content of one worksheet.
type SheetContent struct {
	// Dimension is the declared cell range, nil when the sheet declares
	// none.
	Dimension *cellref.Range `json:"dimension,omitempty"`
	// Merged holds the merged regions in document order.
	Merged []cellref.Range `json:"merged,omitempty"`
	// Cells holds the materialized cells in document order.
	Cells []models.Cell `json:"cells,omitempty"`
}

// Materialize resolves every cell record of the worksheet. A sheet
// without a declared dimension yields no cells; merged regions still
// parse so their integrity is checked either way.
func (m *Materializer) Materialize(ws *raw.Worksheet) (*SheetContent, error) {
	content := &SheetContent{}
	if ws == nil {
		return content, nil
	}

	if ws.Dimension != "" {
		r, err := cellref.ParseRange(ws.Dimension)
		if err != nil {
			return nil, err
		}
		content.Dimension = &r
	}

	merged, err := MergedRegions(ws.MergedCells)
	if err != nil {
		return nil, err
	}
	content.Merged = merged

	if content.Dimension == nil {
		return content, nil
	}

	links, err := m.hyperlinks(ws)
	if err != nil {
		return nil, err
	}

	for ri := range ws.Rows {
		row := &ws.Rows[ri]
		for ci := range row.Cells {
			cell, err := m.materializeCell(ws, row, &row.Cells[ci], links)
			if err != nil {
				return nil, err
			}
			content.Cells = append(content.Cells, cell)
		}
	}
	return content, nil
}

// MergedRegions parses merge range strings and verifies the regions
// are pairwise disjoint.
func MergedRegions(refs []string) ([]cellref.Range, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	regions := make([]cellref.Range, 0, len(refs))
	for _, ref := range refs {
		r, err := cellref.ParseRange(ref)
		if err != nil {
			return nil, err
		}
		for _, prev := range regions {
			if prev.Overlaps(r) {
				return nil, integrityErr(fmt.Sprintf("%s and %s", prev, r), ErrMergeOverlap)
			}
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// sheetLink pairs a hyperlink with the region of cells it anchors to.
type sheetLink struct {
	region cellref.Range
	link   *models.Hyperlink
}

func (m *Materializer) hyperlinks(ws *raw.Worksheet) ([]sheetLink, error) {
	if len(ws.Hyperlinks) == 0 {
		return nil, nil
	}
	links := make([]sheetLink, 0, len(ws.Hyperlinks))
	for i := range ws.Hyperlinks {
		h := &ws.Hyperlinks[i]
		region, err := cellref.ParseRange(h.Ref)
		if err != nil {
			return nil, err
		}
		link := &models.Hyperlink{
			Location: h.Location,
			Display:  h.Display,
			Tooltip:  h.Tooltip,
		}
		if h.RelID != "" && m.Rels != nil {
			rel, ok := FindByID(m.Rels, h.RelID)
			if !ok {
				return nil, integrityErr(fmt.Sprintf("hyperlink %q of %s", h.RelID, m.SheetPath), ErrRelationshipNotFound)
			}
			link.External = rel.TargetMode == raw.TargetModeExternal
			if link.External {
				link.Target = rel.Target
			} else {
				link.Target = NormalizeTarget(m.SheetPath, rel.Target)
			}
		}
		links = append(links, sheetLink{region: region, link: link})
	}
	return links, nil
}

func (m *Materializer) materializeCell(ws *raw.Worksheet, row *raw.Row, cd *raw.CellData, links []sheetLink) (models.Cell, error) {
	coord, err := cellref.ParseA1(cd.Ref)
	if err != nil {
		return models.Cell{}, err
	}

	cell := models.Cell{Ref: coord}
	col := columnFor(ws.Columns, coord.Col)

	if cd.Style != nil {
		style, err := m.Styles.ResolveShared(*cd.Style)
		if err != nil {
			return models.Cell{}, err
		}
		cell.Style = style
	}

	value, err := m.resolveValue(cd, cell.Style)
	if err != nil {
		return models.Cell{}, err
	}
	cell.Value = value

	if cd.Formula != nil {
		cell.Formula = &models.Formula{Expr: cd.Formula.Expression, Result: cd.Value}
	}

	cell.Width = columnWidth(ws, col)
	cell.Height = rowHeight(ws, row)
	cell.Hidden = hiddenState(cell.Style, row, ws, col)
	cell.ShowPhonetic = cd.ShowPhonetic || row.ShowPhonetic

	for i := range links {
		if links[i].region.Contains(coord) {
			cell.Hyperlink = links[i].link
			break
		}
	}
	return cell, nil
}

// resolveValue maps a cell record to its typed value following the
// declared type attribute.
func (m *Materializer) resolveValue(cd *raw.CellData, style *models.Style) (models.CellValue, error) {
	if !cd.HasValue && cd.InlineString == nil {
		return models.BlankValue(), nil
	}

	switch cd.Type {
	case "s":
		idx, convErr := strconv.Atoi(strings.TrimSpace(cd.Value))
		if convErr != nil {
			return models.CellValue{}, integrityErr("cell "+cd.Ref, ErrIndexOutOfRange)
		}
		rs, err := m.Strings.Get(idx)
		if err != nil {
			return models.CellValue{}, integrityErr("cell "+cd.Ref, err)
		}
		return textValue(rs), nil
	case "str":
		return models.TextValue(cd.Value), nil
	case "inlineStr":
		if cd.InlineString == nil {
			return models.BlankValue(), nil
		}
		return textValue(resolveStringItem(cd.InlineString, m.Styles)), nil
	case "b":
		return models.BoolValue(parseCellBool(cd.Value)), nil
	case "e":
		return models.ErrorValue(cd.Value), nil
	case "d":
		if t, ok := parseISOTime(cd.Value); ok {
			return models.CellValue{Kind: models.KindDate, Time: &t}, nil
		}
		return models.TextValue(cd.Value), nil
	default:
		text := strings.TrimSpace(cd.Value)
		f, convErr := strconv.ParseFloat(text, 64)
		if convErr != nil {
			// Untyped or "n"-typed records with non-numeric text keep
			// the text.
			return models.TextValue(cd.Value), nil
		}
		if style != nil && style.NumberFormat.IsDate && f >= 0 {
			return models.DateValue(SerialToTime(f, m.Date1904), f), nil
		}
		return models.NumberValue(f), nil
	}
}

// textValue picks the rich or plain text variant for a resolved string.
func textValue(rs models.RichString) models.CellValue {
	if len(rs.Runs) > 0 {
		return models.RichTextValue(rs)
	}
	return models.TextValue(rs.Text)
}

// parseCellBool reads a stored boolean. Only "0" and "false" read as
// false; any other stored text asserts truth.
func parseCellBool(v string) bool {
	v = strings.TrimSpace(v)
	return v != "0" && !strings.EqualFold(v, "false")
}

// Fractional seconds after the seconds field parse without a layout
// element of their own.
var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"15:04:05",
}

func parseISOTime(v string) (time.Time, bool) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "Z"))
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// columnFor finds the column definition spanning a 1-based column.
func columnFor(cols []raw.Column, col uint32) *raw.Column {
	for i := range cols {
		if col >= cols[i].Min && col <= cols[i].Max {
			return &cols[i]
		}
	}
	return nil
}

// columnWidth follows the width fallback chain: the column record,
// then the sheet default, then the base width plus padding, then the
// application default.
func columnWidth(ws *raw.Worksheet, col *raw.Column) float64 {
	if col != nil && col.Width != nil {
		return *col.Width
	}
	if fp := ws.FormatProperties; fp != nil {
		if fp.DefaultColWidth != nil {
			return *fp.DefaultColWidth
		}
		if fp.BaseColWidth != nil {
			return float64(*fp.BaseColWidth) + 5
		}
	}
	return defaultColumnWidth
}

// rowHeight follows the height fallback chain: the row record, then
// the sheet default, then the application default.
func rowHeight(ws *raw.Worksheet, row *raw.Row) float64 {
	if row.Height != nil {
		return *row.Height
	}
	if fp := ws.FormatProperties; fp != nil && fp.DefaultRowHeight != nil {
		return *fp.DefaultRowHeight
	}
	return defaultRowHeight
}

// hiddenState resolves the hidden flag: style protection first, then
// the row, the sheet-wide zero-height default, and the column.
func hiddenState(style *models.Style, row *raw.Row, ws *raw.Worksheet, col *raw.Column) bool {
	if style != nil && style.Protection != nil && style.Protection.Hidden {
		return true
	}
	if row.Hidden {
		return true
	}
	if fp := ws.FormatProperties; fp != nil && fp.ZeroHeight {
		return true
	}
	return col != nil && col.Hidden
}
