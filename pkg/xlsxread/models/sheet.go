package models

// SheetType classifies a sheet by the part path it resolves to.
type SheetType string

const (
	// SheetTypeWorksheet is an ordinary cell grid sheet.
	SheetTypeWorksheet SheetType = "worksheet"
	// SheetTypeChartsheet is a sheet holding a single chart.
	SheetTypeChartsheet SheetType = "chartsheet"
	// SheetTypeDialogsheet is a legacy dialog sheet.
	SheetTypeDialogsheet SheetType = "dialogsheet"
)

// SheetVisibility is the sheet's visible state.
type SheetVisibility string

const (
	// VisibilityVisible is the default visible state.
	VisibilityVisible SheetVisibility = "visible"
	// VisibilityHidden hides the sheet from the tab bar.
	VisibilityHidden SheetVisibility = "hidden"
	// VisibilityVeryHidden hides the sheet from the UI entirely.
	VisibilityVeryHidden SheetVisibility = "veryHidden"
)

// SheetInfo is a workbook sheet descriptor with its part resolved.
type SheetInfo struct {
	// RelID is the relationship id linking the descriptor to its part.
	RelID string `json:"rel_id"`
	// Name is the sheet display name.
	Name string `json:"name"`
	// SheetID is the stable numeric sheet id.
	SheetID uint32 `json:"sheet_id"`
	// Type is the sheet kind derived from the resolved part path.
	Type SheetType `json:"type"`
	// Visibility is the sheet's visible state.
	Visibility SheetVisibility `json:"visibility"`
	// Path is the zip part path the descriptor resolves to.
	Path string `json:"-"`
}

// CalcRefMode is the workbook's formula reference style.
type CalcRefMode string

const (
	// RefModeA1 is the default A1 reference style.
	RefModeA1 CalcRefMode = "A1"
	// RefModeR1C1 is the R1C1 reference style.
	RefModeR1C1 CalcRefMode = "R1C1"
)
