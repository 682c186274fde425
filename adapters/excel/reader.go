package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"districtmap/domain/district"
	"districtmap/internal/errors"
	"districtmap/internal/logging"

	"github.com/xuri/excelize/v2"
)

var logger = logging.New("DataReader")

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath  string
	fileType  string // "xlsx" or "csv"
	sheetName string
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: config.FilePath, fileType: fileType, sheetName: config.SheetName}
}

// ReadData reads every row of the selected sheet, header included
func (r *DataReader) ReadData() (*SheetData, error) {
	logger.Info("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.InputNotFound(r.filePath)
		}
		return nil, errors.ReadFailed("failed to stat input file", err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

// readExcelData reads the configured sheet, or the first one, of a workbook
func (r *DataReader) readExcelData() (*SheetData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed("failed to open Excel file", err)
	}
	defer f.Close()
	logger.Info("Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.sheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.InvalidInput("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ReadFailed(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	logger.Info("Sheet %q read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(sheet, rows), nil
}

// readCSVData reads CSV data with the same positional layout as a sheet
func (r *DataReader) readCSVData() (*SheetData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed("failed to open CSV file", err)
	}
	defer file.Close()

	rows, err := readCSV(file)
	if err != nil {
		return nil, errors.ReadFailed("failed to read CSV file", err)
	}
	logger.Info("CSV file read (%d rows)", len(rows))

	return r.processRows(filepath.Base(r.filePath), rows), nil
}

func readCSV(in io.Reader) ([][]string, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

// processRows trims every cell; trailing empty cells are left to the caller
func (r *DataReader) processRows(sheet string, rows [][]string) *SheetData {
	for _, row := range rows {
		for j, cell := range row {
			row[j] = strings.TrimSpace(cell)
		}
	}

	logger.Info("%s file processed (%d rows)", strings.ToUpper(r.fileType), len(rows))

	return &SheetData{
		SheetName: sheet,
		Rows:      rows,
	}
}

// ReadRows reads the sheet and returns its rows as district rows
func (r *DataReader) ReadRows(ctx context.Context) ([]district.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "read of %s cancelled", r.filePath)
	}
	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}
	rows := make([]district.Row, len(data.Rows))
	for i, row := range data.Rows {
		rows[i] = district.Row(row)
	}
	return rows, nil
}
