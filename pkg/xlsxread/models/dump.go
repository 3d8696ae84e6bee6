package models

import "github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"

// WorkbookDump is the workbook-level export container with per-sheet data.
type WorkbookDump struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Date1904 reports whether the workbook uses the 1904 date system.
	Date1904 bool `json:"date_1904,omitempty"`
	// CalcRefMode is the workbook's formula reference style.
	CalcRefMode CalcRefMode `json:"calc_ref_mode,omitempty"`
	// Sheets holds the per-sheet dumps in workbook order.
	Sheets []SheetDump `json:"sheets"`
	// DefinedNames holds the workbook defined names.
	DefinedNames []DefinedName `json:"defined_names,omitempty"`
}

// SheetDump is the export view of one sheet.
type SheetDump struct {
	// Info is the sheet descriptor.
	Info SheetInfo `json:"info"`
	// Dimension is the declared cell range, empty when the sheet
	// declares none.
	Dimension string `json:"dimension,omitempty"`
	// Cells holds the materialized cells in document order.
	Cells []Cell `json:"cells,omitempty"`
	// Merged holds the merged cell ranges.
	Merged []cellref.Range `json:"merged,omitempty"`
	// Tables holds the sheet's tables.
	Tables []Table `json:"tables,omitempty"`
	// Drawings holds the sheet's drawings (verbose exports only).
	Drawings []Drawing `json:"drawings,omitempty"`
	// PrintAreas holds the sheet's print areas.
	PrintAreas []cellref.Range `json:"print_areas,omitempty"`
}
