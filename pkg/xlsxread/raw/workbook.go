package raw

import (
	"encoding/xml"
	"io"
)

// Workbook is the decoded xl/workbook.xml part.
type Workbook struct {
	// Sheets holds the sheet descriptors in workbook order.
	Sheets []Sheet `json:"sheets"`
	// Properties is the workbookPr element, nil when absent.
	Properties *WorkbookProperties `json:"properties,omitempty"`
	// CalcProperties is the calcPr element, nil when absent.
	CalcProperties *CalcProperties `json:"calc_properties,omitempty"`
	// DefinedNames holds the definedName entries in document order.
	DefinedNames []DefinedName `json:"defined_names,omitempty"`
}

// Sheet is one sheet descriptor from the workbook part.
type Sheet struct {
	// RelID is the r:id linking the descriptor to its part.
	RelID string `json:"rel_id"`
	// Name is the sheet display name.
	Name string `json:"name"`
	// SheetID is the stable numeric id, nil when the attribute is absent.
	SheetID *uint32 `json:"sheet_id,omitempty"`
	// State is the visible state attribute, empty for the default.
	State string `json:"state,omitempty"`
}

// WorkbookProperties mirrors the workbookPr element attributes the
// reader consumes.
type WorkbookProperties struct {
	// Date1904 selects the 1904 date system.
	Date1904 *bool `json:"date_1904,omitempty"`
	// DateCompatibility gates whether Date1904 applies at all.
	DateCompatibility *bool `json:"date_compatibility,omitempty"`
	// CodeName is the VBA code name of the workbook.
	CodeName string `json:"code_name,omitempty"`
}

// CalcProperties mirrors the calcPr element attributes.
type CalcProperties struct {
	// RefMode is "A1" or "R1C1".
	RefMode string `json:"ref_mode,omitempty"`
	// CalcMode is "auto", "autoNoTable" or "manual".
	CalcMode string `json:"calc_mode,omitempty"`
	// FullCalcOnLoad forces a recalculation when the file opens.
	FullCalcOnLoad *bool `json:"full_calc_on_load,omitempty"`
}

// DefinedName is one definedName entry; Value is the element text.
type DefinedName struct {
	// Name is the defined name.
	Name string `json:"name"`
	// Value is the reference formula the name stands for.
	Value string `json:"value"`
	// LocalSheetID scopes the name to a sheet index, nil for workbook scope.
	LocalSheetID *uint32 `json:"local_sheet_id,omitempty"`
	// Hidden hides the name from the UI.
	Hidden *bool `json:"hidden,omitempty"`
	// Function marks function names.
	Function *bool `json:"function,omitempty"`
	// Comment is the attached user comment.
	Comment string `json:"comment,omitempty"`
}

// DecodeWorkbook decodes the xl/workbook.xml part.
func DecodeWorkbook(r io.Reader) (*Workbook, error) {
	d := NewDecoder(r)
	wb := &Workbook{}
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
		case "sheet":
			wb.Sheets = append(wb.Sheets, Sheet{
				RelID:   attrString(se, "id"),
				Name:    attrString(se, "name"),
				SheetID: attrUint32Ptr(se, "sheetId"),
				State:   attrString(se, "state"),
			})
		case "workbookPr":
			wb.Properties = &WorkbookProperties{
				Date1904:          attrBoolPtr(se, "date1904"),
				DateCompatibility: attrBoolPtr(se, "dateCompatibility"),
				CodeName:          attrString(se, "codeName"),
			}
		case "calcPr":
			wb.CalcProperties = &CalcProperties{
				RefMode:        attrString(se, "refMode"),
				CalcMode:       attrString(se, "calcMode"),
				FullCalcOnLoad: attrBoolPtr(se, "fullCalcOnLoad"),
			}
		case "definedName":
			dn := DefinedName{
				Name:         attrString(se, "name"),
				LocalSheetID: attrUint32Ptr(se, "localSheetId"),
				Hidden:       attrBoolPtr(se, "hidden"),
				Function:     attrBoolPtr(se, "function"),
				Comment:      attrString(se, "comment"),
			}
			text, err := elementText(d, se)
			if err != nil {
				return nil, err
			}
			dn.Value = text
			wb.DefinedNames = append(wb.DefinedNames, dn)
		}
	}
	return wb, nil
}
