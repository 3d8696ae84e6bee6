package xlsxread

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/resolve"
)

// Raw accessors hand out the parsed parts as decoded, before any
// resolution. Every accessor returns a deep copy, so callers can
// mutate the result without poisoning the session cache. Optional
// parts the package does not carry come back nil without error.

// copyPart deep-copies a cached part for hand-out.
func copyPart[T any](src *T, err error) (*T, error) {
	if err != nil || src == nil {
		return nil, err
	}
	out := new(T)
	if err := deepcopy.Copy(out, src); err != nil {
		return nil, err
	}
	return out, nil
}

// RawWorkbook returns the workbook part.
func (p *Package) RawWorkbook() (*raw.Workbook, error) {
	return copyPart(p.rawWorkbookPart())
}

// RawStylesheet returns the styles part, nil when the package has
// none.
func (p *Package) RawStylesheet() (*raw.Stylesheet, error) {
	return copyPart(p.rawStylesheetPart())
}

// RawTheme returns the theme part, nil when the package has none.
func (p *Package) RawTheme() (*raw.Theme, error) {
	return copyPart(p.rawThemePart())
}

// RawSharedStrings returns the shared string part, nil when the
// package has none.
func (p *Package) RawSharedStrings() (*raw.SharedStrings, error) {
	return copyPart(p.rawSharedStringsPart())
}

// RawWorkbookRels returns the workbook relationship manifest.
func (p *Package) RawWorkbookRels() (*raw.Relationships, error) {
	return copyPart(p.workbookRels, nil)
}

// RawWorksheet returns the worksheet part behind a descriptor.
func (p *Package) RawWorksheet(info models.SheetInfo) (*raw.Worksheet, error) {
	info, err := p.worksheetDescriptor(info)
	if err != nil {
		return nil, err
	}
	return copyPart(p.rawWorksheetPart(info.Path))
}

// RawWorksheetByName returns the worksheet part of the named sheet,
// matched case-insensitively.
func (p *Package) RawWorksheetByName(name string) (*raw.Worksheet, error) {
	info, err := p.SheetByName(name)
	if err != nil {
		return nil, err
	}
	return p.RawWorksheet(info)
}

// RawWorksheetBySheetID returns the worksheet part of the sheet with
// the given id.
func (p *Package) RawWorksheetBySheetID(id uint32) (*raw.Worksheet, error) {
	info, err := p.SheetBySheetID(id)
	if err != nil {
		return nil, err
	}
	return p.RawWorksheet(info)
}

// RawSheetRels returns a worksheet's relationship manifest, nil when
// the sheet carries none.
func (p *Package) RawSheetRels(info models.SheetInfo) (*raw.Relationships, error) {
	info, err := p.worksheetDescriptor(info)
	if err != nil {
		return nil, err
	}
	return copyPart(p.relsFor(info.Path))
}

// RawTables returns the table parts a worksheet points at, in
// declaration order.
func (p *Package) RawTables(info models.SheetInfo) ([]*raw.Table, error) {
	info, err := p.worksheetDescriptor(info)
	if err != nil {
		return nil, err
	}
	ws, err := p.rawWorksheetPart(info.Path)
	if err != nil {
		return nil, err
	}
	rels, err := p.relsFor(info.Path)
	if err != nil {
		return nil, err
	}
	var out []*raw.Table
	for _, id := range ws.TablePartRelIDs {
		target, err := resolve.TargetPathByID(rels, info.Path, id)
		if err != nil {
			return nil, err
		}
		if target == "" {
			continue
		}
		t, err := copyPart(p.rawTablePart(target))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// worksheetDescriptor normalizes a descriptor for worksheet-scoped
// access: path filled in by name lookup when absent, non-worksheet
// kinds rejected.
func (p *Package) worksheetDescriptor(info models.SheetInfo) (models.SheetInfo, error) {
	if info.Path == "" {
		resolved, err := p.SheetByName(info.Name)
		if err != nil {
			return models.SheetInfo{}, err
		}
		info = resolved
	}
	if info.Type != models.SheetTypeWorksheet {
		return models.SheetInfo{}, fmt.Errorf("%w: %q is a %s", ErrNotWorksheet, info.Name, info.Type)
	}
	return info, nil
}
