package resolve

import (
	"strings"

	"github.com/xuri/efp"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// PrintAreaName is the built-in defined name that stores a sheet's
// print area.
const PrintAreaName = "_xlnm.Print_Area"

// ResolveDefinedNames maps the workbook's definedName entries.
func ResolveDefinedNames(names []raw.DefinedName) []models.DefinedName {
	if len(names) == 0 {
		return nil
	}
	out := make([]models.DefinedName, 0, len(names))
	for _, n := range names {
		dn := models.DefinedName{
			Name:     n.Name,
			RefersTo: n.Value,
			Comment:  n.Comment,
			Hidden:   n.Hidden != nil && *n.Hidden,
			Function: n.Function != nil && *n.Function,
		}
		if n.LocalSheetID != nil {
			id := *n.LocalSheetID
			dn.LocalSheetID = &id
		}
		out = append(out, dn)
	}
	return out
}

// PrintAreas extracts the ranges declared by the built-in print-area
// names. sheetNames indexes sheet names by workbook position for
// resolving the scope of operands without a sheet qualifier.
// Operands that do not parse as ranges, such as #REF! left by deleted
// sheets, are skipped.
func PrintAreas(names []models.DefinedName, sheetNames []string) []models.NameRange {
	var areas []models.NameRange
	for _, n := range names {
		if n.Name != PrintAreaName {
			continue
		}
		scope := ""
		if n.LocalSheetID != nil && int(*n.LocalSheetID) < len(sheetNames) {
			scope = sheetNames[*n.LocalSheetID]
		}
		areas = append(areas, RangesFromFormula(n.RefersTo, scope)...)
	}
	return areas
}

// RangesFromFormula tokenizes a reference formula and collects every
// range operand as a sheet-qualified range. defaultSheet applies to
// operands without their own sheet qualifier.
func RangesFromFormula(formula, defaultSheet string) []models.NameRange {
	if formula == "" {
		return nil
	}
	var out []models.NameRange
	parser := efp.ExcelParser()
	for _, token := range parser.Parse(formula) {
		if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
			continue
		}
		sheet, ref := splitSheetRef(token.TValue)
		if sheet == "" {
			sheet = defaultSheet
		}
		r, err := cellref.ParseRange(strings.ReplaceAll(ref, "$", ""))
		if err != nil {
			continue
		}
		out = append(out, models.NameRange{Sheet: sheet, Range: r})
	}
	return out
}

// splitSheetRef separates the sheet qualifier from a reference
// operand, unquoting names like 'My Sheet'.
func splitSheetRef(operand string) (sheet, ref string) {
	i := strings.LastIndex(operand, "!")
	if i < 0 {
		return "", operand
	}
	sheet, ref = operand[:i], operand[i+1:]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, ref
}
