// Package main provides the CLI entry point for xlsxread-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/output"
)

var (
	outputPath string
	pretty     bool
	mode       string
	sheetName  string
	rawPart    string
	sheetsDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxread [input.xlsx]",
		Short: "Read xlsx workbooks into structured JSON",
		Long: `xlsxread-go materializes xlsx workbooks (cells with resolved values and
styles, merged ranges, tables, drawings, defined names) and outputs JSON,
either as a full dump or as one raw part.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "standard", "Export mode: light, standard, verbose")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Limit the export to one sheet by name")
	rootCmd.Flags().StringVar(&rawPart, "raw", "", "Dump one raw part instead of exporting: workbook, styles, theme, sharedstrings, workbook-rels, sheet, sheet-rels, tables")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	// Parse mode
	var exportMode xlsxread.Mode
	switch mode {
	case "light":
		exportMode = xlsxread.ModeLight
	case "standard":
		exportMode = xlsxread.ModeStandard
	case "verbose":
		exportMode = xlsxread.ModeVerbose
	default:
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}

	p, err := xlsxread.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open failed: %w", err)
	}
	defer p.Close()

	// Raw part dumps bypass the export walk
	if rawPart != "" {
		return dumpRawPart(p)
	}

	opts := xlsxread.Options{
		Mode:  exportMode,
		Sheet: sheetName,
	}
	wb, err := xlsxread.Export(p, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.WorkbookToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Println(string(jsonData))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func dumpRawPart(p *xlsxread.Package) error {
	v, err := rawPartValue(p)
	if err != nil {
		return fmt.Errorf("raw dump failed: %w", err)
	}

	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func rawPartValue(p *xlsxread.Package) (any, error) {
	switch rawPart {
	case "workbook":
		wb, err := p.RawWorkbook()
		return wb, err
	case "styles":
		ss, err := p.RawStylesheet()
		return ss, err
	case "theme":
		th, err := p.RawTheme()
		return th, err
	case "sharedstrings":
		sst, err := p.RawSharedStrings()
		return sst, err
	case "workbook-rels":
		rels, err := p.RawWorkbookRels()
		return rels, err
	case "sheet":
		info, err := rawSheetInfo(p)
		if err != nil {
			return nil, err
		}
		ws, err := p.RawWorksheet(info)
		return ws, err
	case "sheet-rels":
		info, err := rawSheetInfo(p)
		if err != nil {
			return nil, err
		}
		rels, err := p.RawSheetRels(info)
		return rels, err
	case "tables":
		info, err := rawSheetInfo(p)
		if err != nil {
			return nil, err
		}
		tables, err := p.RawTables(info)
		return tables, err
	default:
		return nil, fmt.Errorf("unknown raw part: %s (must be workbook, styles, theme, sharedstrings, workbook-rels, sheet, sheet-rels, or tables)", rawPart)
	}
}

func rawSheetInfo(p *xlsxread.Package) (models.SheetInfo, error) {
	if sheetName == "" {
		return models.SheetInfo{}, fmt.Errorf("--raw %s requires --sheet", rawPart)
	}
	return p.SheetByName(sheetName)
}

func writeSheetFiles(wb *models.WorkbookDump, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&wb.Sheets[i], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, wb.Sheets[i].Info.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
