package resolve

import (
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/cellref"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// ResolveTable maps a decoded table part into its descriptor. Absent
// counts take the format defaults of one header row and no totals
// row; a table without its own style name takes the workbook default.
func ResolveTable(t *raw.Table, styles *Styles) (models.Table, error) {
	rng, err := cellref.ParseRange(t.Ref)
	if err != nil {
		return models.Table{}, err
	}

	out := models.Table{
		Name:       t.DisplayName,
		Range:      rng,
		HeaderRows: 1,
	}
	if out.Name == "" {
		out.Name = t.Name
	}
	if t.ID != nil {
		out.ID = *t.ID
	}
	if t.HeaderRowCount != nil {
		out.HeaderRows = *t.HeaderRowCount
	}
	if t.TotalsRowCount != nil {
		out.TotalsRows = *t.TotalsRowCount
	}

	if len(t.Columns) > 0 {
		out.Columns = make([]models.TableColumn, 0, len(t.Columns))
		for _, c := range t.Columns {
			col := models.TableColumn{
				Name:           c.Name,
				Formula:        c.Formula,
				TotalsFunction: c.TotalsRowFunction,
				TotalsLabel:    c.TotalsRowLabel,
			}
			if c.ID != nil {
				col.ID = *c.ID
			}
			out.Columns = append(out.Columns, col)
		}
	}

	if info := t.StyleInfo; info != nil {
		out.Style = models.TableStyle{
			Name:              info.Name,
			ShowFirstColumn:   info.ShowFirstColumn != nil && *info.ShowFirstColumn,
			ShowLastColumn:    info.ShowLastColumn != nil && *info.ShowLastColumn,
			ShowRowStripes:    info.ShowRowStripes != nil && *info.ShowRowStripes,
			ShowColumnStripes: info.ShowColumnStripes != nil && *info.ShowColumnStripes,
		}
	}
	if out.Style.Name == "" {
		out.Style.Name = styles.DefaultTableStyle()
	}
	return out, nil
}
