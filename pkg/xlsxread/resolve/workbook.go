package resolve

import (
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// WorkbookInfo carries the resolved workbook-level facts a session
// needs before touching any sheet part.
type WorkbookInfo struct {
	// Sheets holds the sheet descriptors in workbook order, with their
	// part paths resolved.
	Sheets []models.SheetInfo `json:"sheets"`
	// Date1904 selects the workbook date system.
	Date1904 bool `json:"date_1904,omitempty"`
	// RefMode is the calculation reference mode.
	RefMode models.CalcRefMode `json:"ref_mode"`
	// DefinedNames holds the workbook defined names.
	DefinedNames []models.DefinedName `json:"defined_names,omitempty"`
	// CodeName is the workbook VBA code name.
	CodeName string `json:"code_name,omitempty"`
}

// ResolveWorkbook resolves sheet descriptors against the workbook
// manifest and normalizes the workbook-level flags.
func ResolveWorkbook(wb *raw.Workbook, rels *raw.Relationships, workbookPath string) (*WorkbookInfo, error) {
	info := &WorkbookInfo{RefMode: models.RefModeA1}
	if wb == nil {
		return info, nil
	}

	info.Date1904 = Date1904(wb.Properties)
	if wb.Properties != nil {
		info.CodeName = wb.Properties.CodeName
	}
	if cp := wb.CalcProperties; cp != nil && strings.EqualFold(cp.RefMode, "R1C1") {
		info.RefMode = models.RefModeR1C1
	}
	info.DefinedNames = ResolveDefinedNames(wb.DefinedNames)

	if len(wb.Sheets) > 0 {
		info.Sheets = make([]models.SheetInfo, 0, len(wb.Sheets))
	}
	for i := range wb.Sheets {
		sh := &wb.Sheets[i]
		si := models.SheetInfo{
			RelID:      sh.RelID,
			Name:       sh.Name,
			Visibility: sheetVisibility(sh.State),
		}
		if sh.SheetID != nil {
			si.SheetID = *sh.SheetID
		}
		target, err := TargetPathByID(rels, workbookPath, sh.RelID)
		if err != nil {
			return nil, err
		}
		si.Path = target
		si.Type = sheetTypeFor(rels, sh.RelID, target)
		info.Sheets = append(info.Sheets, si)
	}
	return info, nil
}

// Date1904 reports whether the workbook uses the 1904 date system.
// dateCompatibility gates the flag: when explicitly false the workbook
// is locked to the 1900 system regardless of date1904.
func Date1904(p *raw.WorkbookProperties) bool {
	if p == nil {
		return false
	}
	if p.DateCompatibility != nil && !*p.DateCompatibility {
		return false
	}
	return p.Date1904 != nil && *p.Date1904
}

// sheetVisibility normalizes the sheet state attribute. Unknown states
// read as visible, the format default.
func sheetVisibility(state string) models.SheetVisibility {
	switch state {
	case "hidden":
		return models.VisibilityHidden
	case "veryHidden":
		return models.VisibilityVeryHidden
	default:
		return models.VisibilityVisible
	}
}

// sheetTypeFor classifies a sheet by its relationship type, falling
// back to the resolved part path when the manifest is silent.
func sheetTypeFor(rels *raw.Relationships, relID, target string) models.SheetType {
	if rel, ok := FindByID(rels, relID); ok {
		t := strings.ToLower(rel.Type)
		switch {
		case strings.Contains(t, "chartsheet"):
			return models.SheetTypeChartsheet
		case strings.Contains(t, "dialogsheet"):
			return models.SheetTypeDialogsheet
		case strings.Contains(t, "worksheet"):
			return models.SheetTypeWorksheet
		}
	}
	switch {
	case strings.Contains(target, "chartsheets/"):
		return models.SheetTypeChartsheet
	case strings.Contains(target, "dialogsheets/"):
		return models.SheetTypeDialogsheet
	default:
		return models.SheetTypeWorksheet
	}
}
