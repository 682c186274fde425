package excel

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"districtmap/internal/errors"
	"districtmap/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadData_FirstSheet(t *testing.T) {
	path := testkit.WriteWorkbook(t, "districts.xlsx", "Districts 2024", testkit.SampleRows(), "Notes")

	data, err := NewDataReader(ReaderConfig{FilePath: path}).ReadData()
	require.NoError(t, err)

	assert.Equal(t, "Districts 2024", data.SheetName)
	require.Len(t, data.Rows, len(testkit.SampleRows()))
	assert.Equal(t, "House District", data.Rows[0][0])
	assert.Equal(t, "1–2", data.Rows[1][0])
	assert.Equal(t, "Lake, Porter, LaPorte (part)", data.Rows[1][7])
}

func TestReadData_NamedSheet(t *testing.T) {
	path := testkit.WriteWorkbook(t, "districts.xlsx", "Districts", testkit.SampleRows(), "Notes")

	data, err := NewDataReader(ReaderConfig{FilePath: path, SheetName: "Notes"}).ReadData()
	require.NoError(t, err)

	assert.Equal(t, "Notes", data.SheetName)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "99", data.Rows[0][0])
}

func TestReadData_MissingSheet(t *testing.T) {
	path := testkit.WriteWorkbook(t, "districts.xlsx", "Districts", testkit.SampleRows())

	_, err := NewDataReader(ReaderConfig{FilePath: path, SheetName: "Nope"}).ReadData()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeReadFailed))
}

func TestReadData_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := NewDataReader(ReaderConfig{FilePath: path}).ReadData()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInputNotFound))
	assert.Contains(t, err.Error(), "missing.xlsx")
}

func TestReadData_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := NewDataReader(ReaderConfig{FilePath: path}).ReadData()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeReadFailed))
}

func TestReadData_CSV(t *testing.T) {
	path := testkit.WriteCSV(t, "districts.csv", testkit.TwoRowSample())

	data, err := NewDataReader(ReaderConfig{FilePath: path}).ReadData()
	require.NoError(t, err)

	assert.Equal(t, "districts.csv", data.SheetName)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"3", "Lake, Porter"}, data.Rows[1])
}

func TestReadCSV_StripsBOM(t *testing.T) {
	rows, err := readCSV(strings.NewReader("\ufeff1,Lake\n2, Porter ,x\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", rows[0][0])
	assert.Len(t, rows[1], 3)
}

func TestReadRows(t *testing.T) {
	path := testkit.WriteWorkbook(t, "districts.xlsx", "Sheet1", testkit.TwoRowSample())

	rows, err := NewDataReader(ReaderConfig{FilePath: path}).ReadRows(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "1–2", rows[0].Cell(0))
	assert.Equal(t, "Porter (part)", rows[0].Cell(4))
	assert.Equal(t, "", rows[1].Cell(7))
}

func TestReadRows_Cancelled(t *testing.T) {
	path := testkit.WriteWorkbook(t, "districts.xlsx", "Sheet1", testkit.TwoRowSample())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDataReader(ReaderConfig{FilePath: path}).ReadRows(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read of "+path+" cancelled")
	assert.ErrorIs(t, err, context.Canceled)
}
