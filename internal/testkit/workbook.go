package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SampleHeader is the header row of the district workbook
var SampleHeader = []string{
	"House District", "County", "", "Senate District", "County", "", "Congressional District", "County",
}

// SampleRows is a small excerpt in the layout of the published district workbook
func SampleRows() [][]string {
	return [][]string{
		SampleHeader,
		{"1–2", "Lake", "", "1", "Lake (part)", "", "1", "Lake, Porter, LaPorte (part)"},
		{"3", "Lake (part), Porter (part)", "", "4", "Porter County, LaPorte Co.", "", "2", "St. Joseph, Elkhart (part)"},
		{"4", "Porter", "", "5-6", "LaPorte (part)", "", "", ""},
		{"House District", "", "", "", "", "", "", ""},
		{"5", "St. Joseph (part)", "", "", "", "", "2", "Marshall"},
	}
}

// TwoRowSample is the minimal table used in end-to-end tests
func TwoRowSample() [][]string {
	return [][]string{
		{"1–2", "Lake", "", "5", "Porter (part)", "", "", ""},
		{"3", "Lake, Porter"},
	}
}

// WriteWorkbook saves rows to an xlsx file under t.TempDir() and returns its path.
// The first sheet is named sheet; extra sheets are appended after it.
func WriteWorkbook(t testing.TB, name, sheet string, rows [][]string, extraSheets ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}
	for i, row := range rows {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			values[j] = cell
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &values); err != nil {
			t.Fatalf("write row %d: %v", i, err)
		}
	}
	for _, extra := range extraSheets {
		if _, err := f.NewSheet(extra); err != nil {
			t.Fatalf("add sheet %s: %v", extra, err)
		}
		if err := f.SetCellValue(extra, "A1", "99"); err != nil {
			t.Fatalf("write sheet %s: %v", extra, err)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// WriteCSV saves rows as a CSV file under t.TempDir() and returns its path
func WriteCSV(t testing.TB, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create csv: %v", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}
