package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

func TestResolveTable(t *testing.T) {
	styles := NewStyles(&raw.Stylesheet{DefaultTableStyle: "TableStyleMedium9"}, nil)

	tbl := &raw.Table{
		ID:             ptr(uint32(2)),
		Name:           "Table2",
		DisplayName:    "Sales",
		Ref:            "B2:D10",
		TotalsRowCount: ptr(uint32(1)),
		Columns: []raw.TableColumn{
			{ID: ptr(uint32(1)), Name: "Region"},
			{ID: ptr(uint32(2)), Name: "Amount", TotalsRowFunction: "sum"},
			{ID: ptr(uint32(3)), Name: "Ratio", Formula: "[Amount]/100"},
		},
		StyleInfo: &raw.TableStyleInfo{
			Name:           "TableStyleLight1",
			ShowRowStripes: ptr(true),
		},
	}

	got, err := ResolveTable(tbl, styles)
	require.NoError(t, err)
	assert.Equal(t, "Sales", got.Name)
	assert.Equal(t, uint32(2), got.ID)
	assert.Equal(t, "B2:D10", got.Range.String())
	assert.Equal(t, uint32(1), got.HeaderRows, "header rows default to one")
	assert.Equal(t, uint32(1), got.TotalsRows)
	require.Len(t, got.Columns, 3)
	assert.Equal(t, uint32(2), got.Columns[1].ID)
	assert.Equal(t, "sum", got.Columns[1].TotalsFunction)
	assert.Equal(t, "[Amount]/100", got.Columns[2].Formula)
	assert.Equal(t, "TableStyleLight1", got.Style.Name)
	assert.True(t, got.Style.ShowRowStripes)
	assert.False(t, got.Style.ShowFirstColumn)
}

func TestResolveTableDefaults(t *testing.T) {
	styles := NewStyles(&raw.Stylesheet{DefaultTableStyle: "TableStyleMedium9"}, nil)

	got, err := ResolveTable(&raw.Table{Name: "Table1", Ref: "A1:B2"}, styles)
	require.NoError(t, err)
	assert.Equal(t, "Table1", got.Name, "display name falls back to the table name")
	assert.Equal(t, uint32(1), got.HeaderRows)
	assert.Equal(t, uint32(0), got.TotalsRows)
	assert.Equal(t, "TableStyleMedium9", got.Style.Name, "missing style takes the workbook default")
}

func TestResolveTableBadRange(t *testing.T) {
	_, err := ResolveTable(&raw.Table{Ref: "nope"}, NewStyles(nil, nil))
	require.Error(t, err)
}
