//go:build nodrawings

package xlsxread

import "github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"

// Builds tagged nodrawings compile the drawing surface out; the
// queries stay present so callers link either way, and report
// ErrDrawingsDisabled.

// Drawings reports ErrDrawingsDisabled in this build.
func (p *Package) Drawings(info models.SheetInfo) ([]models.Drawing, error) {
	return nil, ErrDrawingsDisabled
}

// Images reports ErrDrawingsDisabled in this build.
func (p *Package) Images(info models.SheetInfo) ([]models.Image, error) {
	return nil, ErrDrawingsDisabled
}
