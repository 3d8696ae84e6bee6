package xlsxread

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/resolve"
)

// Worksheet is one fully materialized worksheet: typed cells with
// their styles resolved, plus the sheet-level facts queries need
// alongside them.
type Worksheet struct {
	// Info is the descriptor the worksheet was opened from.
	Info models.SheetInfo
	// Dimension is the declared cell range, nil when the sheet
	// declares none.
	Dimension *cellref.Range
	// Merged holds the merged regions in document order.
	Merged []cellref.Range
	// Tables holds the sheet's tables.
	Tables []models.Table
	// Date1904 mirrors the workbook date system the cell values were
	// resolved under.
	Date1904 bool
	// RefMode is the workbook's calculation reference mode.
	RefMode models.CalcRefMode

	cells []models.Cell
	byRef map[cellref.Coordinate]int
}

// Cells returns the materialized cells in document order.
func (w *Worksheet) Cells() []models.Cell {
	return w.cells
}

// Cell returns the materialized cell at coord, reporting whether the
// sheet holds a record there.
func (w *Worksheet) Cell(coord cellref.Coordinate) (models.Cell, bool) {
	i, ok := w.byRef[coord]
	if !ok {
		return models.Cell{}, false
	}
	return w.cells[i], true
}

// Sheets returns the workbook's sheet descriptors in workbook order.
func (p *Package) Sheets() ([]models.SheetInfo, error) {
	info, err := p.workbookInfo()
	if err != nil {
		return nil, err
	}
	out := make([]models.SheetInfo, len(info.Sheets))
	copy(out, info.Sheets)
	return out, nil
}

// SheetByName returns the descriptor of the named sheet, matched
// case-insensitively.
func (p *Package) SheetByName(name string) (models.SheetInfo, error) {
	info, err := p.workbookInfo()
	if err != nil {
		return models.SheetInfo{}, err
	}
	for i := range info.Sheets {
		if strings.EqualFold(info.Sheets[i].Name, name) {
			return info.Sheets[i], nil
		}
	}
	return models.SheetInfo{}, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// SheetBySheetID returns the descriptor with the given sheet id.
func (p *Package) SheetBySheetID(id uint32) (models.SheetInfo, error) {
	info, err := p.workbookInfo()
	if err != nil {
		return models.SheetInfo{}, err
	}
	for i := range info.Sheets {
		if info.Sheets[i].SheetID == id {
			return info.Sheets[i], nil
		}
	}
	return models.SheetInfo{}, fmt.Errorf("%w: sheet id %d", ErrSheetNotFound, id)
}

// Worksheet materializes the worksheet behind a descriptor. Chartsheet
// and dialogsheet descriptors fail with ErrNotWorksheet; they have no
// cell content to materialize.
func (p *Package) Worksheet(info models.SheetInfo) (*Worksheet, error) {
	info, err := p.worksheetDescriptor(info)
	if err != nil {
		return nil, err
	}

	wbInfo, err := p.workbookInfo()
	if err != nil {
		return nil, err
	}
	ws, err := p.rawWorksheetPart(info.Path)
	if err != nil {
		return nil, err
	}
	sheetRels, err := p.relsFor(info.Path)
	if err != nil {
		return nil, err
	}
	styles, err := p.styleEngine()
	if err != nil {
		return nil, err
	}
	table, err := p.sharedStringTable()
	if err != nil {
		return nil, err
	}

	mat := &resolve.Materializer{
		Strings:   table,
		Styles:    styles,
		Rels:      sheetRels,
		SheetPath: info.Path,
		Date1904:  wbInfo.Date1904,
	}
	content, err := mat.Materialize(ws)
	if err != nil {
		return nil, err
	}
	tables, err := p.sheetTables(ws, sheetRels, info.Path)
	if err != nil {
		return nil, err
	}

	w := &Worksheet{
		Info:      info,
		Dimension: content.Dimension,
		Merged:    content.Merged,
		Tables:    tables,
		Date1904:  wbInfo.Date1904,
		RefMode:   wbInfo.RefMode,
		cells:     content.Cells,
		byRef:     make(map[cellref.Coordinate]int, len(content.Cells)),
	}
	for i := range w.cells {
		w.byRef[w.cells[i].Ref] = i
	}
	return w, nil
}

// WorksheetByName materializes the named worksheet, matched
// case-insensitively.
func (p *Package) WorksheetByName(name string) (*Worksheet, error) {
	info, err := p.SheetByName(name)
	if err != nil {
		return nil, err
	}
	return p.Worksheet(info)
}

// WorksheetBySheetID materializes the worksheet with the given sheet
// id.
func (p *Package) WorksheetBySheetID(id uint32) (*Worksheet, error) {
	info, err := p.SheetBySheetID(id)
	if err != nil {
		return nil, err
	}
	return p.Worksheet(info)
}

// sheetTables loads and resolves the table parts a worksheet points
// at. A sheet without a relationship manifest contributes none.
func (p *Package) sheetTables(ws *raw.Worksheet, rels *raw.Relationships, sheetPath string) ([]models.Table, error) {
	if len(ws.TablePartRelIDs) == 0 {
		return nil, nil
	}
	styles, err := p.styleEngine()
	if err != nil {
		return nil, err
	}
	var out []models.Table
	for _, id := range ws.TablePartRelIDs {
		target, err := resolve.TargetPathByID(rels, sheetPath, id)
		if err != nil {
			return nil, err
		}
		if target == "" {
			continue
		}
		part, err := p.rawTablePart(target)
		if err != nil {
			return nil, err
		}
		t, err := resolve.ResolveTable(part, styles)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// DefinedNames returns the workbook's defined names, built-ins
// included.
func (p *Package) DefinedNames() ([]models.DefinedName, error) {
	info, err := p.workbookInfo()
	if err != nil {
		return nil, err
	}
	out := make([]models.DefinedName, len(info.DefinedNames))
	copy(out, info.DefinedNames)
	return out, nil
}

// PrintAreas returns the print areas declared through the
// _xlnm.Print_Area built-in, one entry per sheet-qualified range.
func (p *Package) PrintAreas() ([]models.NameRange, error) {
	info, err := p.workbookInfo()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(info.Sheets))
	for i := range info.Sheets {
		names[i] = info.Sheets[i].Name
	}
	return resolve.PrintAreas(info.DefinedNames, names), nil
}

// validateDescriptors rejects workbook sheet descriptors missing the
// attributes every downstream lookup depends on.
func validateDescriptors(wb *raw.Workbook) error {
	for i := range wb.Sheets {
		sh := &wb.Sheets[i]
		if sh.Name == "" {
			return descriptorErr(fmt.Sprintf("#%d", i), "missing name")
		}
		if sh.RelID == "" {
			return descriptorErr(sh.Name, "missing relationship id")
		}
		if sh.SheetID == nil {
			return descriptorErr(sh.Name, "missing sheet id")
		}
		switch sh.State {
		case "", "visible", "hidden", "veryHidden":
		default:
			return descriptorErr(sh.Name, "unknown state %q", sh.State)
		}
	}
	return nil
}

func descriptorErr(sheet, format string, args ...any) error {
	return fmt.Errorf("%w: sheet %s: %s", ErrSheetDescriptor, sheet, fmt.Sprintf(format, args...))
}

// knownSheetPath reports whether a resolved sheet part path belongs to
// one of the recognized sheet families.
func knownSheetPath(path string) bool {
	p := strings.ToLower(path)
	return strings.Contains(p, "worksheets/") ||
		strings.Contains(p, "chartsheets/") ||
		strings.Contains(p, "dialogsheets/")
}
