package raw

import (
	"encoding/xml"
	"io"
)

// Worksheet is the decoded xl/worksheets/sheet<N>.xml part.
type Worksheet struct {
	// Dimension is the declared used range, advisory only.
	Dimension string `json:"dimension,omitempty"`
	// FormatProperties is the sheetFormatPr element, nil when absent.
	FormatProperties *SheetFormatProperties `json:"format_properties,omitempty"`
	// Columns holds the col range definitions.
	Columns []Column `json:"columns,omitempty"`
	// Rows holds the row elements in document order.
	Rows []Row `json:"rows,omitempty"`
	// MergedCells holds the mergeCell ref attributes.
	MergedCells []string `json:"merged_cells,omitempty"`
	// Hyperlinks holds the hyperlink elements.
	Hyperlinks []Hyperlink `json:"hyperlinks,omitempty"`
	// DrawingRelID is the r:id of the drawing part, empty when none.
	DrawingRelID string `json:"drawing_rel_id,omitempty"`
	// TablePartRelIDs holds the r:id values of the attached tables.
	TablePartRelIDs []string `json:"table_part_rel_ids,omitempty"`
}

// SheetFormatProperties mirrors the sheetFormatPr element.
type SheetFormatProperties struct {
	// BaseColWidth is the width basis in characters of the default font.
	BaseColWidth *uint32 `json:"base_col_width,omitempty"`
	// DefaultColWidth is the default column width in character units.
	DefaultColWidth *float64 `json:"default_col_width,omitempty"`
	// DefaultRowHeight is the default row height in points.
	DefaultRowHeight *float64 `json:"default_row_height,omitempty"`
	// ZeroHeight hides rows by default.
	ZeroHeight bool `json:"zero_height,omitempty"`
}

// Column is one col element covering the closed column range Min..Max.
type Column struct {
	Min         uint32   `json:"min"`
	Max         uint32   `json:"max"`
	Width       *float64 `json:"width,omitempty"`
	Style       *uint32  `json:"style,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
	BestFit     bool     `json:"best_fit,omitempty"`
	CustomWidth bool     `json:"custom_width,omitempty"`
}

// Row is one row element with its cells.
type Row struct {
	// Ref is the one-based row number from the r attribute.
	Ref uint32 `json:"ref"`
	// Spans is the advisory column span hint, for example "1:5".
	Spans string `json:"spans,omitempty"`
	// Style is the row-level format index, applied when CustomFormat.
	Style        *uint32  `json:"style,omitempty"`
	CustomFormat bool     `json:"custom_format,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	CustomHeight bool     `json:"custom_height,omitempty"`
	Hidden       bool     `json:"hidden,omitempty"`
	ShowPhonetic bool     `json:"show_phonetic,omitempty"`
	// Cells holds the c elements in document order.
	Cells []CellData `json:"cells,omitempty"`
}

// CellData is one c element.
type CellData struct {
	// Ref is the A1 reference from the r attribute.
	Ref string `json:"ref"`
	// Type is the t attribute; empty means a numeric cell.
	Type string `json:"type,omitempty"`
	// Style is the cellXfs index from the s attribute.
	Style        *uint32 `json:"style,omitempty"`
	ShowPhonetic bool    `json:"show_phonetic,omitempty"`
	// Value is the v element text; HasValue distinguishes an empty v
	// element from a cell without one.
	Value    string `json:"value,omitempty"`
	HasValue bool   `json:"has_value,omitempty"`
	// Formula is the f element, nil when the cell has none.
	Formula *CellFormula `json:"formula,omitempty"`
	// InlineString is the is element for inlineStr cells.
	InlineString *StringItem `json:"inline_string,omitempty"`
}

// CellFormula is one f element.
type CellFormula struct {
	// Expression is the formula text without a leading equals sign.
	Expression string `json:"expression,omitempty"`
	// Type is the t attribute: shared, array or dataTable; empty means
	// a normal formula.
	Type string `json:"type,omitempty"`
	// Ref is the host range of a shared or array formula.
	Ref string `json:"ref,omitempty"`
	// SharedIndex is the si attribute linking shared formula members.
	SharedIndex *uint32 `json:"shared_index,omitempty"`
}

// Hyperlink is one hyperlink element. External targets resolve through
// RelID; in-workbook links carry Location instead.
type Hyperlink struct {
	Ref      string `json:"ref"`
	RelID    string `json:"rel_id,omitempty"`
	Location string `json:"location,omitempty"`
	Display  string `json:"display,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
}

// DecodeWorksheet decodes a worksheet part.
func DecodeWorksheet(r io.Reader) (*Worksheet, error) {
	d := NewDecoder(r)
	ws := &Worksheet{}
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
		case "dimension":
			ws.Dimension = attrString(se, "ref")
		case "sheetFormatPr":
			ws.FormatProperties = &SheetFormatProperties{
				BaseColWidth:     attrUint32Ptr(se, "baseColWidth"),
				DefaultColWidth:  attrFloatPtr(se, "defaultColWidth"),
				DefaultRowHeight: attrFloatPtr(se, "defaultRowHeight"),
				ZeroHeight:       attrBool(se, "zeroHeight", false),
			}
		case "col":
			col, err := decodeColumn(se)
			if err != nil {
				return nil, err
			}
			ws.Columns = append(ws.Columns, col)
		case "row":
			row, err := decodeRow(d, se)
			if err != nil {
				return nil, err
			}
			ws.Rows = append(ws.Rows, row)
		case "mergeCell":
			if ref, ok := attr(se, "ref"); ok {
				ws.MergedCells = append(ws.MergedCells, ref)
			}
		case "hyperlink":
			ws.Hyperlinks = append(ws.Hyperlinks, Hyperlink{
				Ref:      attrString(se, "ref"),
				RelID:    attrString(se, "id"),
				Location: attrString(se, "location"),
				Display:  attrString(se, "display"),
				Tooltip:  attrString(se, "tooltip"),
			})
		case "drawing":
			ws.DrawingRelID = attrString(se, "id")
		case "tablePart":
			if id, ok := attr(se, "id"); ok {
				ws.TablePartRelIDs = append(ws.TablePartRelIDs, id)
			}
		}
	}
	return ws, nil
}

func decodeColumn(se xml.StartElement) (Column, error) {
	min, ok := attrUint32(se, "min")
	if !ok {
		return Column{}, missingAttr("col", "min")
	}
	max, ok := attrUint32(se, "max")
	if !ok {
		return Column{}, missingAttr("col", "max")
	}
	return Column{
		Min:         min,
		Max:         max,
		Width:       attrFloatPtr(se, "width"),
		Style:       attrUint32Ptr(se, "style"),
		Hidden:      attrBool(se, "hidden", false),
		BestFit:     attrBool(se, "bestFit", false),
		CustomWidth: attrBool(se, "customWidth", false),
	}, nil
}

func decodeRow(d *xml.Decoder, start xml.StartElement) (Row, error) {
	ref, ok := attrUint32(start, "r")
	if !ok {
		return Row{}, missingAttr("row", "r")
	}
	row := Row{
		Ref:          ref,
		Spans:        attrString(start, "spans"),
		Style:        attrUint32Ptr(start, "s"),
		CustomFormat: attrBool(start, "customFormat", false),
		Height:       attrFloatPtr(start, "ht"),
		CustomHeight: attrBool(start, "customHeight", false),
		Hidden:       attrBool(start, "hidden", false),
		ShowPhonetic: attrBool(start, "ph", false),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return row, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "c" {
				cell, err := decodeCell(d, t)
				if err != nil {
					return row, err
				}
				row.Cells = append(row.Cells, cell)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return row, nil
			}
		}
	}
}

func decodeCell(d *xml.Decoder, start xml.StartElement) (CellData, error) {
	ref, ok := attr(start, "r")
	if !ok {
		return CellData{}, missingAttr("c", "r")
	}
	cell := CellData{
		Ref:          ref,
		Type:         attrString(start, "t"),
		Style:        attrUint32Ptr(start, "s"),
		ShowPhonetic: attrBool(start, "ph", false),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return cell, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "v":
				text, err := elementText(d, t)
				if err != nil {
					return cell, err
				}
				cell.Value = text
				cell.HasValue = true
			case "f":
				f := &CellFormula{
					Type:        attrString(t, "t"),
					Ref:         attrString(t, "ref"),
					SharedIndex: attrUint32Ptr(t, "si"),
				}
				expr, err := elementText(d, t)
				if err != nil {
					return cell, err
				}
				f.Expression = expr
				cell.Formula = f
			case "is":
				item, err := decodeStringItem(d, t)
				if err != nil {
					return cell, err
				}
				cell.InlineString = item
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return cell, nil
			}
		}
	}
}
