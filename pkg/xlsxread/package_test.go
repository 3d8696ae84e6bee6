package xlsxread

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
)

// buildTestWorkbook writes a workbook with the fixtures most facade
// tests share: typed cells, a merged range, a hyperlink, a table on a
// second sheet, a hidden sheet, a defined name and a print area.
func buildTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Score"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 42))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 3.14))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", true))

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "B3", "B3", dateStyle))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", 45000))

	require.NoError(t, f.SetCellValue("Sheet1", "C1", "site"))
	require.NoError(t, f.SetCellHyperLink("Sheet1", "C1", "https://example.com/", "External"))

	require.NoError(t, f.MergeCell("Sheet1", "A4", "B4"))
	require.NoError(t, f.SetColWidth("Sheet1", "A", "A", 12.5))
	require.NoError(t, f.SetRowHeight("Sheet1", 2, 30))

	_, err = f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Data", "A1", "Region"))
	require.NoError(t, f.SetCellValue("Data", "B1", "Total"))
	require.NoError(t, f.SetCellValue("Data", "A2", "North"))
	require.NoError(t, f.SetCellValue("Data", "B2", 10))
	require.NoError(t, f.SetCellValue("Data", "A3", "South"))
	require.NoError(t, f.SetCellValue("Data", "B3", 20))
	require.NoError(t, f.AddTable("Data", &excelize.Table{
		Range:     "A1:B3",
		Name:      "RegionTable",
		StyleName: "TableStyleMedium9",
	}))

	_, err = f.NewSheet("Secret")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Secret", "A1", "hidden away"))
	require.NoError(t, f.SetSheetVisible("Secret", false))

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Costs",
		RefersTo: "Sheet1!$A$1:$A$3",
		Scope:    "Workbook",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$2,Sheet1!$D$1:$D$5",
		Scope:    "Sheet1",
	}))

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// writeArchive writes a zip with the given entries and returns its
// path.
func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook at all"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenRejectsShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenCompoundFileJunkIsNotAZipError(t *testing.T) {
	// A compound-file signature followed by nothing useful: the error
	// must come from the container classifier, not the zip reader.
	data := append([]byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}, make([]byte, 512)...)
	path := filepath.Join(t.TempDir(), "junk.xls")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrWorkbookEncrypted))
	assert.NotContains(t, err.Error(), "zip")
}

func TestOpenEncryptedWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "locked"))

	path := filepath.Join(t.TempDir(), "locked.xlsx")
	require.NoError(t, f.SaveAs(path, excelize.Options{Password: "opensesame"}))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrWorkbookEncrypted)
}

func TestOpenMissingWorkbookRels(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"hello.txt": "not a workbook",
	})

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartNotFound)

	var perr *PartError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "xl/_rels/workbook.xml.rels", perr.Path)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestOpenCaseInsensitiveEntries(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"XL/WorkBook.xml": `<?xml version="1.0"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets><sheet name="Alpha" sheetId="1" r:id="rId1"/></sheets>
</workbook>`,
		"xl/_RELS/workbook.xml.RELS": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`,
		"xl/Worksheets/Sheet1.XML": `<?xml version="1.0"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <dimension ref="A1:A1"/>
  <sheetData><row r="1"><c r="A1"><v>7</v></c></row></sheetData>
</worksheet>`,
	})

	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	sheets, err := p.Sheets()
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "Alpha", sheets[0].Name)

	w, err := p.WorksheetByName("alpha")
	require.NoError(t, err)
	require.Len(t, w.Cells(), 1)
	assert.Equal(t, models.KindNumber, w.Cells()[0].Value.Kind)
}

func TestSheets(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	sheets, err := p.Sheets()
	require.NoError(t, err)
	require.Len(t, sheets, 3)

	assert.Equal(t, "Sheet1", sheets[0].Name)
	assert.Equal(t, "Data", sheets[1].Name)
	assert.Equal(t, "Secret", sheets[2].Name)

	for _, si := range sheets {
		assert.Equal(t, models.SheetTypeWorksheet, si.Type)
		assert.NotZero(t, si.SheetID)
		assert.NotEmpty(t, si.RelID)
	}
	assert.Equal(t, models.VisibilityVisible, sheets[0].Visibility)
	assert.Equal(t, models.VisibilityHidden, sheets[2].Visibility)
}

func TestSheetByName(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	si, err := p.SheetByName("sheet1")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", si.Name)

	_, err = p.SheetByName("NoSuchSheet")
	assert.ErrorIs(t, err, ErrSheetNotFound)

	bySheetID, err := p.SheetBySheetID(si.SheetID)
	require.NoError(t, err)
	assert.Equal(t, si, bySheetID)

	_, err = p.SheetBySheetID(9999)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestRawAccessorIsolation(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	wb1, err := p.RawWorkbook()
	require.NoError(t, err)
	require.NotEmpty(t, wb1.Sheets)
	wb1.Sheets[0].Name = "Mutated"
	wb1.Sheets = wb1.Sheets[:1]

	wb2, err := p.RawWorkbook()
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", wb2.Sheets[0].Name)
	assert.Len(t, wb2.Sheets, 3)

	sst1, err := p.RawSharedStrings()
	require.NoError(t, err)
	require.NotNil(t, sst1)
	require.NotEmpty(t, sst1.Items)
	require.NotNil(t, sst1.Items[0].Text)
	original := *sst1.Items[0].Text
	*sst1.Items[0].Text = "clobbered"

	sst2, err := p.RawSharedStrings()
	require.NoError(t, err)
	require.NotNil(t, sst2.Items[0].Text)
	assert.Equal(t, original, *sst2.Items[0].Text)

	// The resolved view is built from the pristine cache, not the
	// handed-out copies.
	w, err := p.WorksheetByName("Sheet1")
	require.NoError(t, err)
	cell, ok := w.Cell(mustCoord(t, "A1"))
	require.True(t, ok)
	assert.Equal(t, "Name", cell.Value.Text)
}

func TestRawSheetAccessors(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	ws, err := p.RawWorksheetByName("Sheet1")
	require.NoError(t, err)
	assert.NotEmpty(t, ws.Dimension)
	assert.NotEmpty(t, ws.Rows)

	info, err := p.SheetByName("Data")
	require.NoError(t, err)

	tables, err := p.RawTables(info)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "RegionTable", tables[0].Name)

	rels, err := p.RawSheetRels(info)
	require.NoError(t, err)
	require.NotNil(t, rels)
	assert.NotEmpty(t, rels.Items)

	wbRels, err := p.RawWorkbookRels()
	require.NoError(t, err)
	assert.NotEmpty(t, wbRels.Items)

	styles, err := p.RawStylesheet()
	require.NoError(t, err)
	require.NotNil(t, styles)
	assert.NotEmpty(t, styles.CellXfs)

	theme, err := p.RawTheme()
	require.NoError(t, err)
	assert.NotNil(t, theme)
}

func TestWorksheetRejectsNonWorksheet(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	chart := models.SheetInfo{
		Name: "Chart1",
		Type: models.SheetTypeChartsheet,
		Path: "xl/chartsheets/sheet1.xml",
	}
	_, err = p.Worksheet(chart)
	assert.ErrorIs(t, err, ErrNotWorksheet)

	_, err = p.RawWorksheet(chart)
	assert.ErrorIs(t, err, ErrNotWorksheet)
}

func TestOpenReaderKeepsName(t *testing.T) {
	path := buildTestWorkbook(t)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	p, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	defer p.Close()

	assert.Empty(t, p.Name())

	fromFile, err := Open(path)
	require.NoError(t, err)
	defer fromFile.Close()
	assert.Equal(t, "fixture.xlsx", fromFile.Name())
}

func TestSerialDateThroughFacade(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	w, err := p.WorksheetByName("Sheet1")
	require.NoError(t, err)

	cell, ok := w.Cell(mustCoord(t, "B3"))
	require.True(t, ok)
	require.Equal(t, models.KindDate, cell.Value.Kind)
	require.NotNil(t, cell.Value.Time)
	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), *cell.Value.Time)
	require.NotNil(t, cell.Value.Number)
	assert.Equal(t, 45000.0, *cell.Value.Number)
}
