package raw

import (
	"encoding/xml"
	"io"
)

// Table is the decoded xl/tables/table<N>.xml part.
type Table struct {
	// ID is the table id attribute.
	ID *uint32 `json:"id,omitempty"`
	// Name is the table name.
	Name string `json:"name,omitempty"`
	// DisplayName is the name shown in formulas and the UI.
	DisplayName string `json:"display_name,omitempty"`
	// Ref is the table range including header and totals rows.
	Ref string `json:"ref"`
	// HeaderRowCount is nil when the attribute is absent; the format
	// default is one header row.
	HeaderRowCount *uint32 `json:"header_row_count,omitempty"`
	// TotalsRowCount is nil when the attribute is absent; the format
	// default is no totals row.
	TotalsRowCount *uint32 `json:"totals_row_count,omitempty"`
	// TotalsRowShown records whether a totals row has ever been shown.
	TotalsRowShown *bool `json:"totals_row_shown,omitempty"`
	// Columns holds the tableColumn entries in left-to-right order.
	Columns []TableColumn `json:"columns,omitempty"`
	// StyleInfo is the tableStyleInfo element, nil when absent.
	StyleInfo *TableStyleInfo `json:"style_info,omitempty"`
}

// TableColumn is one tableColumn entry.
type TableColumn struct {
	ID   *uint32 `json:"id,omitempty"`
	Name string  `json:"name,omitempty"`
	// TotalsRowFunction names the aggregate of the totals cell.
	TotalsRowFunction string `json:"totals_row_function,omitempty"`
	// TotalsRowLabel is a literal label in the totals cell.
	TotalsRowLabel string `json:"totals_row_label,omitempty"`
	// Formula is the calculatedColumnFormula text.
	Formula string `json:"formula,omitempty"`
}

// TableStyleInfo mirrors the tableStyleInfo element.
type TableStyleInfo struct {
	// Name is the style name; empty defers to the workbook default.
	Name              string `json:"name,omitempty"`
	ShowFirstColumn   *bool  `json:"show_first_column,omitempty"`
	ShowLastColumn    *bool  `json:"show_last_column,omitempty"`
	ShowRowStripes    *bool  `json:"show_row_stripes,omitempty"`
	ShowColumnStripes *bool  `json:"show_column_stripes,omitempty"`
}

// DecodeTable decodes a table part.
func DecodeTable(r io.Reader) (*Table, error) {
	d := NewDecoder(r)
	tbl := &Table{}
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
		case "table":
			tbl.ID = attrUint32Ptr(se, "id")
			tbl.Name = attrString(se, "name")
			tbl.DisplayName = attrString(se, "displayName")
			tbl.Ref = attrString(se, "ref")
			tbl.HeaderRowCount = attrUint32Ptr(se, "headerRowCount")
			tbl.TotalsRowCount = attrUint32Ptr(se, "totalsRowCount")
			tbl.TotalsRowShown = attrBoolPtr(se, "totalsRowShown")
		case "tableColumn":
			col, err := decodeTableColumn(d, se)
			if err != nil {
				return nil, err
			}
			tbl.Columns = append(tbl.Columns, col)
		case "tableStyleInfo":
			tbl.StyleInfo = &TableStyleInfo{
				Name:              attrString(se, "name"),
				ShowFirstColumn:   attrBoolPtr(se, "showFirstColumn"),
				ShowLastColumn:    attrBoolPtr(se, "showLastColumn"),
				ShowRowStripes:    attrBoolPtr(se, "showRowStripes"),
				ShowColumnStripes: attrBoolPtr(se, "showColumnStripes"),
			}
		}
	}
	return tbl, nil
}

func decodeTableColumn(d *xml.Decoder, start xml.StartElement) (TableColumn, error) {
	col := TableColumn{
		ID:                attrUint32Ptr(start, "id"),
		Name:              attrString(start, "name"),
		TotalsRowFunction: attrString(start, "totalsRowFunction"),
		TotalsRowLabel:    attrString(start, "totalsRowLabel"),
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return col, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "calculatedColumnFormula" {
				text, err := elementText(d, t)
				if err != nil {
					return col, err
				}
				col.Formula = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return col, nil
			}
		}
	}
}
