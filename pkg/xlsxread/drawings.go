//go:build !nodrawings

package xlsxread

import (
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/resolve"
)

// Drawings resolves the drawing objects anchored on a worksheet. A
// sheet without a drawing part yields nothing. The query shares the
// session cache with cell queries but none of their state, so a
// malformed drawing part never disturbs cell materialization.
func (p *Package) Drawings(info models.SheetInfo) ([]models.Drawing, error) {
	target, err := p.drawingPath(info)
	if err != nil || target == "" {
		return nil, err
	}
	d, err := p.rawDrawingPart(target)
	if err != nil {
		return nil, err
	}
	rels, err := p.relsFor(target)
	if err != nil {
		return nil, err
	}
	styles, err := p.styleEngine()
	if err != nil {
		return nil, err
	}
	res := &resolve.DrawingResolver{
		Styles:      styles,
		Rels:        rels,
		DrawingPath: target,
	}
	return res.Resolve(d)
}

// Images returns the image parts a worksheet's drawing references, in
// manifest order with their bytes.
func (p *Package) Images(info models.SheetInfo) ([]models.Image, error) {
	target, err := p.drawingPath(info)
	if err != nil || target == "" {
		return nil, err
	}
	rels, err := p.relsFor(target)
	if err != nil || rels == nil {
		return nil, err
	}
	var out []models.Image
	for i := range rels.Items {
		rel := &rels.Items[i]
		if rel.TargetMode == raw.TargetModeExternal {
			continue
		}
		if !strings.Contains(strings.ToLower(rel.Type), relFragmentImage) {
			continue
		}
		path := resolve.NormalizeTarget(target, rel.Target)
		data, err := p.mediaBytes(path)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Image{RelID: rel.ID, Path: path, Data: data})
	}
	return out, nil
}

// drawingPath resolves a worksheet's drawing part path, empty when the
// sheet anchors no drawing or carries no manifest to resolve it with.
func (p *Package) drawingPath(info models.SheetInfo) (string, error) {
	info, err := p.worksheetDescriptor(info)
	if err != nil {
		return "", err
	}
	ws, err := p.rawWorksheetPart(info.Path)
	if err != nil {
		return "", err
	}
	if ws.DrawingRelID == "" {
		return "", nil
	}
	rels, err := p.relsFor(info.Path)
	if err != nil {
		return "", err
	}
	return resolve.TargetPathByID(rels, info.Path, ws.DrawingRelID)
}
