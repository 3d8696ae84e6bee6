package models

import "github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"

// DefinedName is a workbook defined name.
type DefinedName struct {
	// Name is the defined name, including built-in "_xlnm." names.
	Name string `json:"name"`
	// RefersTo is the formula text the name stands for.
	RefersTo string `json:"refers_to"`
	// LocalSheetID scopes the name to a sheet (an index into the sheet
	// list); nil for workbook-scoped names.
	LocalSheetID *uint32 `json:"local_sheet_id,omitempty"`
	// Hidden reports whether the name is hidden from the UI.
	Hidden bool `json:"hidden,omitempty"`
	// Function reports whether the name refers to a function.
	Function bool `json:"function,omitempty"`
	// Comment is the user comment attached to the name.
	Comment string `json:"comment,omitempty"`
}

// NameRange is one sheet-qualified cell range extracted from a defined
// name's reference formula.
type NameRange struct {
	// Sheet is the sheet name the range belongs to.
	Sheet string `json:"sheet"`
	// Range is the referenced region; single-cell operands parse as
	// one-cell ranges.
	Range cellref.Range `json:"range"`
}
