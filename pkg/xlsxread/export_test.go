package xlsxread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
)

func TestExportLight(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	dump, err := Export(p, Options{Mode: ModeLight})
	require.NoError(t, err)

	assert.Equal(t, "fixture.xlsx", dump.BookName)
	assert.Empty(t, dump.DefinedNames)
	require.Len(t, dump.Sheets, 3)

	sheet1 := dump.Sheets[0]
	assert.Equal(t, "Sheet1", sheet1.Info.Name)
	assert.NotEmpty(t, sheet1.Dimension)
	assert.NotEmpty(t, sheet1.Cells)
	assert.Empty(t, sheet1.Merged)
	assert.Empty(t, sheet1.Tables)
	assert.Empty(t, sheet1.PrintAreas)

	for _, cell := range sheet1.Cells {
		assert.Nil(t, cell.Style)
		assert.Nil(t, cell.Hyperlink)
	}
}

func TestExportStandard(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	dump, err := Export(p, Options{Mode: ModeStandard})
	require.NoError(t, err)

	assert.NotEmpty(t, dump.DefinedNames)

	sheet1 := dump.Sheets[0]
	assert.Len(t, sheet1.Merged, 1)
	assert.Len(t, sheet1.PrintAreas, 2)

	var linked bool
	for _, cell := range sheet1.Cells {
		assert.Nil(t, cell.Style)
		if cell.Hyperlink != nil {
			linked = true
		}
	}
	assert.True(t, linked, "standard mode keeps hyperlinks")

	data := dump.Sheets[1]
	require.Len(t, data.Tables, 1)
	assert.Equal(t, "RegionTable", data.Tables[0].Name)
	assert.Empty(t, data.PrintAreas)
}

func TestExportVerbose(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	dump, err := Export(p, Options{Mode: ModeVerbose})
	require.NoError(t, err)

	var dated *models.Cell
	for i := range dump.Sheets[0].Cells {
		cell := &dump.Sheets[0].Cells[i]
		if cell.Value.Kind == models.KindDate {
			dated = cell
		}
	}
	require.NotNil(t, dated)
	require.NotNil(t, dated.Style)
	assert.True(t, dated.Style.NumberFormat.IsDate)
	assert.Equal(t, uint32(14), dated.Style.NumberFormat.ID)
}

func TestExportSheetFilter(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	dump, err := Export(p, Options{Mode: ModeStandard, Sheet: "data"})
	require.NoError(t, err)

	require.Len(t, dump.Sheets, 1)
	assert.Equal(t, "Data", dump.Sheets[0].Info.Name)
}

func TestExportOptionOverrides(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	yes := true
	dump, err := Export(p, Options{Mode: ModeLight, IncludeStyles: &yes})
	require.NoError(t, err)

	var styled bool
	for _, cell := range dump.Sheets[0].Cells {
		if cell.Style != nil {
			styled = true
		}
	}
	assert.True(t, styled, "explicit IncludeStyles beats the mode default")

	no := false
	dump, err = Export(p, Options{Mode: ModeStandard, IncludePrintAreas: &no})
	require.NoError(t, err)
	assert.Empty(t, dump.Sheets[0].PrintAreas)
}

func TestExportFile(t *testing.T) {
	dump, err := ExportFile(buildTestWorkbook(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "fixture.xlsx", dump.BookName)
	assert.Equal(t, models.RefModeA1, dump.CalcRefMode)
	require.Len(t, dump.Sheets, 3)
	assert.Equal(t, models.VisibilityHidden, dump.Sheets[2].Info.Visibility)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, ModeStandard, opts.Mode)
	assert.False(t, opts.ShouldIncludeStyles())
	assert.False(t, opts.ShouldIncludeDrawings())
	assert.True(t, opts.ShouldIncludePrintAreas())

	verbose := Options{Mode: ModeVerbose}
	assert.True(t, verbose.ShouldIncludeStyles())
	assert.True(t, verbose.ShouldIncludeDrawings())
	assert.True(t, verbose.ShouldIncludePrintAreas())

	light := Options{Mode: ModeLight}
	assert.False(t, light.ShouldIncludeStyles())
	assert.False(t, light.ShouldIncludeDrawings())
	assert.False(t, light.ShouldIncludePrintAreas())
}
