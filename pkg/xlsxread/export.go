package xlsxread

import (
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/resolve"
)

// Export walks an open package into a serializable dump. The mode
// decides how much each sheet carries: light keeps descriptors and
// typed cells, standard adds merged ranges, tables, hyperlinks,
// defined names and print areas, verbose adds per-cell styles and
// drawings. Chartsheets and dialogsheets appear as bare descriptors.
// A drawing that fails to resolve drops out of the dump rather than
// failing it.
func Export(p *Package, opts Options) (*models.WorkbookDump, error) {
	info, err := p.workbookInfo()
	if err != nil {
		return nil, err
	}

	dump := &models.WorkbookDump{
		BookName:    p.Name(),
		Date1904:    info.Date1904,
		CalcRefMode: info.RefMode,
		Sheets:      make([]models.SheetDump, 0, len(info.Sheets)),
	}
	if opts.Mode != ModeLight {
		dump.DefinedNames = append([]models.DefinedName(nil), info.DefinedNames...)
	}

	areas := make(map[string][]cellref.Range)
	if opts.ShouldIncludePrintAreas() {
		names := make([]string, len(info.Sheets))
		for i := range info.Sheets {
			names[i] = info.Sheets[i].Name
		}
		for _, nr := range resolve.PrintAreas(info.DefinedNames, names) {
			key := strings.ToLower(nr.Sheet)
			areas[key] = append(areas[key], nr.Range)
		}
	}

	for _, si := range info.Sheets {
		if opts.Sheet != "" && !strings.EqualFold(si.Name, opts.Sheet) {
			continue
		}
		sd := models.SheetDump{Info: si}
		if si.Type == models.SheetTypeWorksheet {
			w, err := p.Worksheet(si)
			if err != nil {
				return nil, err
			}
			if w.Dimension != nil {
				sd.Dimension = w.Dimension.String()
			}
			sd.Cells = exportCells(w.Cells(), opts)
			if opts.Mode != ModeLight {
				sd.Merged = w.Merged
				sd.Tables = w.Tables
			}
			if opts.ShouldIncludeDrawings() {
				if drawings, err := p.Drawings(si); err == nil {
					sd.Drawings = drawings
				}
			}
		}
		sd.PrintAreas = areas[strings.ToLower(si.Name)]
		dump.Sheets = append(dump.Sheets, sd)
	}
	return dump, nil
}

// ExportFile opens path and exports it in one call.
func ExportFile(path string, opts Options) (*models.WorkbookDump, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return Export(p, opts)
}

// exportCells copies the cell stream for the dump, stripped to what
// the mode keeps.
func exportCells(cells []models.Cell, opts Options) []models.Cell {
	if len(cells) == 0 {
		return nil
	}
	keepStyles := opts.ShouldIncludeStyles()
	keepLinks := opts.Mode != ModeLight
	out := make([]models.Cell, len(cells))
	copy(out, cells)
	for i := range out {
		if !keepStyles {
			out[i].Style = nil
		}
		if !keepLinks {
			out[i].Hyperlink = nil
		}
	}
	return out
}
