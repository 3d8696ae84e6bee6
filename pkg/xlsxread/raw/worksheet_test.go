package raw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWorksheet(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <dimension ref="A1:C3"/>
  <sheetFormatPr baseColWidth="10" defaultRowHeight="18" zeroHeight="1"/>
  <cols>
    <col min="1" max="2" width="12.5" customWidth="1"/>
    <col min="3" max="3" width="0" hidden="1" style="7"/>
  </cols>
  <sheetData>
    <row r="1" spans="1:3" ht="24" customHeight="1">
      <c r="A1" t="s"><v>0</v></c>
      <c r="B1" t="str"><f>CONCATENATE(A1,"x")</f><v>hellox</v></c>
      <c r="C1" s="2"><v>3.5</v></c>
    </row>
    <row r="2" hidden="1">
      <c r="A2" t="inlineStr"><is><t>inline</t></is></c>
      <c r="B2" t="b"><v>1</v></c>
      <c r="C2" t="e"><f t="shared" ref="C2:C4" si="0">1/0</f><v>#DIV/0!</v></c>
    </row>
    <row r="3">
      <c r="A3"/>
    </row>
  </sheetData>
  <mergeCell ref="A5:B6"/>
  <hyperlinks>
    <hyperlink ref="B1" r:id="rId2" tooltip="docs"/>
    <hyperlink ref="C1" location="Sheet2!A1" display="jump"/>
  </hyperlinks>
  <drawing r:id="rId3"/>
  <tableParts count="1"><tablePart r:id="rId4"/></tableParts>
</worksheet>`

	ws, err := DecodeWorksheet(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "A1:C3", ws.Dimension)

	require.NotNil(t, ws.FormatProperties)
	require.NotNil(t, ws.FormatProperties.BaseColWidth)
	assert.Equal(t, uint32(10), *ws.FormatProperties.BaseColWidth)
	assert.Nil(t, ws.FormatProperties.DefaultColWidth)
	require.NotNil(t, ws.FormatProperties.DefaultRowHeight)
	assert.Equal(t, 18.0, *ws.FormatProperties.DefaultRowHeight)
	assert.True(t, ws.FormatProperties.ZeroHeight)

	require.Len(t, ws.Columns, 2)
	assert.Equal(t, uint32(1), ws.Columns[0].Min)
	assert.Equal(t, uint32(2), ws.Columns[0].Max)
	require.NotNil(t, ws.Columns[0].Width)
	assert.Equal(t, 12.5, *ws.Columns[0].Width)
	assert.True(t, ws.Columns[0].CustomWidth)
	assert.True(t, ws.Columns[1].Hidden)
	require.NotNil(t, ws.Columns[1].Style)
	assert.Equal(t, uint32(7), *ws.Columns[1].Style)

	require.Len(t, ws.Rows, 3)
	first := ws.Rows[0]
	assert.Equal(t, uint32(1), first.Ref)
	assert.Equal(t, "1:3", first.Spans)
	require.NotNil(t, first.Height)
	assert.Equal(t, 24.0, *first.Height)
	assert.True(t, first.CustomHeight)
	require.Len(t, first.Cells, 3)

	shared := first.Cells[0]
	assert.Equal(t, "A1", shared.Ref)
	assert.Equal(t, "s", shared.Type)
	assert.Equal(t, "0", shared.Value)
	assert.True(t, shared.HasValue)

	formula := first.Cells[1]
	assert.Equal(t, "str", formula.Type)
	require.NotNil(t, formula.Formula)
	assert.Equal(t, `CONCATENATE(A1,"x")`, formula.Formula.Expression)
	assert.Equal(t, "hellox", formula.Value)

	numeric := first.Cells[2]
	assert.Empty(t, numeric.Type)
	require.NotNil(t, numeric.Style)
	assert.Equal(t, uint32(2), *numeric.Style)
	assert.Equal(t, "3.5", numeric.Value)

	second := ws.Rows[1]
	assert.True(t, second.Hidden)
	inline := second.Cells[0]
	assert.Equal(t, "inlineStr", inline.Type)
	require.NotNil(t, inline.InlineString)
	require.NotNil(t, inline.InlineString.Text)
	assert.Equal(t, "inline", *inline.InlineString.Text)
	assert.False(t, inline.HasValue)

	errCell := second.Cells[2]
	assert.Equal(t, "e", errCell.Type)
	require.NotNil(t, errCell.Formula)
	assert.Equal(t, "shared", errCell.Formula.Type)
	assert.Equal(t, "C2:C4", errCell.Formula.Ref)
	require.NotNil(t, errCell.Formula.SharedIndex)
	assert.Equal(t, uint32(0), *errCell.Formula.SharedIndex)
	assert.Equal(t, "#DIV/0!", errCell.Value)

	blank := ws.Rows[2].Cells[0]
	assert.False(t, blank.HasValue)
	assert.Nil(t, blank.Formula)

	assert.Equal(t, []string{"A5:B6"}, ws.MergedCells)

	require.Len(t, ws.Hyperlinks, 2)
	assert.Equal(t, "B1", ws.Hyperlinks[0].Ref)
	assert.Equal(t, "rId2", ws.Hyperlinks[0].RelID)
	assert.Equal(t, "docs", ws.Hyperlinks[0].Tooltip)
	assert.Empty(t, ws.Hyperlinks[1].RelID)
	assert.Equal(t, "Sheet2!A1", ws.Hyperlinks[1].Location)
	assert.Equal(t, "jump", ws.Hyperlinks[1].Display)

	assert.Equal(t, "rId3", ws.DrawingRelID)
	assert.Equal(t, []string{"rId4"}, ws.TablePartRelIDs)
}

func TestDecodeWorksheetMissingCellRef(t *testing.T) {
	src := `<worksheet><sheetData><row r="1"><c><v>1</v></c></row></sheetData></worksheet>`
	_, err := DecodeWorksheet(strings.NewReader(src))
	require.ErrorIs(t, err, ErrMissingAttribute)
}

func TestDecodeTable(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<table xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" id="2" name="Sales" displayName="SalesTable" ref="A1:C5" totalsRowCount="1">
  <autoFilter ref="A1:C4"/>
  <tableColumns count="3">
    <tableColumn id="1" name="Region"/>
    <tableColumn id="2" name="Amount" totalsRowFunction="sum"/>
    <tableColumn id="3" name="Growth" totalsRowLabel="Total">
      <calculatedColumnFormula>SalesTable[[#This Row],[Amount]]*2</calculatedColumnFormula>
    </tableColumn>
  </tableColumns>
  <tableStyleInfo name="TableStyleLight9" showFirstColumn="0" showRowStripes="1"/>
</table>`

	tbl, err := DecodeTable(strings.NewReader(src))
	require.NoError(t, err)

	require.NotNil(t, tbl.ID)
	assert.Equal(t, uint32(2), *tbl.ID)
	assert.Equal(t, "Sales", tbl.Name)
	assert.Equal(t, "SalesTable", tbl.DisplayName)
	assert.Equal(t, "A1:C5", tbl.Ref)
	assert.Nil(t, tbl.HeaderRowCount)
	require.NotNil(t, tbl.TotalsRowCount)
	assert.Equal(t, uint32(1), *tbl.TotalsRowCount)

	require.Len(t, tbl.Columns, 3)
	assert.Equal(t, "Region", tbl.Columns[0].Name)
	assert.Equal(t, "sum", tbl.Columns[1].TotalsRowFunction)
	assert.Equal(t, "Total", tbl.Columns[2].TotalsRowLabel)
	assert.Equal(t, "SalesTable[[#This Row],[Amount]]*2", tbl.Columns[2].Formula)

	require.NotNil(t, tbl.StyleInfo)
	assert.Equal(t, "TableStyleLight9", tbl.StyleInfo.Name)
	require.NotNil(t, tbl.StyleInfo.ShowRowStripes)
	assert.True(t, *tbl.StyleInfo.ShowRowStripes)
	require.NotNil(t, tbl.StyleInfo.ShowFirstColumn)
	assert.False(t, *tbl.StyleInfo.ShowFirstColumn)
}
