package models

import "github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"

// Table is a resolved worksheet table descriptor.
type Table struct {
	// Name is the table display name.
	Name string `json:"name"`
	// ID is the numeric table id.
	ID uint32 `json:"id"`
	// Range is the cell region the table occupies, header included.
	Range cellref.Range `json:"range"`
	// Columns are the table columns in declared order.
	Columns []TableColumn `json:"columns"`
	// HeaderRows is the number of header rows (usually 1).
	HeaderRows uint32 `json:"header_rows"`
	// TotalsRows is the number of totals rows (usually 0).
	TotalsRows uint32 `json:"totals_rows"`
	// Style is the table style reference.
	Style TableStyle `json:"style"`
}

// TableColumn is one declared table column.
type TableColumn struct {
	// ID is the column's stable numeric id.
	ID uint32 `json:"id"`
	// Name is the column header name.
	Name string `json:"name"`
	// Formula is the calculated-column formula, if declared.
	Formula string `json:"formula,omitempty"`
	// TotalsFunction is the totals-row aggregate name, if declared.
	TotalsFunction string `json:"totals_function,omitempty"`
	// TotalsLabel is the totals-row label text, if declared.
	TotalsLabel string `json:"totals_label,omitempty"`
}

// TableStyle is a table's style reference and stripe/emphasis flags.
type TableStyle struct {
	// Name is the style name; falls back to the stylesheet's default
	// table style when the table declares none.
	Name string `json:"name,omitempty"`
	// ShowFirstColumn and ShowLastColumn emphasize the edge columns.
	ShowFirstColumn bool `json:"show_first_column,omitempty"`
	ShowLastColumn  bool `json:"show_last_column,omitempty"`
	// ShowRowStripes and ShowColumnStripes enable banded rendering.
	ShowRowStripes    bool `json:"show_row_stripes,omitempty"`
	ShowColumnStripes bool `json:"show_column_stripes,omitempty"`
}
