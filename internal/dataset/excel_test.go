package dataset

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	require.NoError(t, err)
	f.SetActiveSheet(idx)

	for i, row := range rows {
		for j, cell := range row {
			col, err := excelize.ColumnNumberToName(j + 1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, col+strconv.Itoa(i+1), cell))
		}
	}

	path := filepath.Join(t.TempDir(), "millennium.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeTempWorkbook(t, "Headline series", [][]string{
		{"Description", "Real GDP of England at market prices", "Population (GB+NI)"},
		{"1300", "1000.5", "4.5"},
		{"1301", "1050.2", "4.6"},
	})

	rows, err := LoadWorkbook(path, slog.Default())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1300", rows[0].Year)
	assert.Equal(t, "1000.5", rows[0].Values["Real GDP of England at market prices"])
}

func TestLoadWorkbook_SheetDiscoveredByHeader(t *testing.T) {
	path := writeTempWorkbook(t, "Annual data", [][]string{
		{"Notes about the release"},
		{"Description", "Consumer price index", "Bank Rate"},
		{"1700", "5.2", "4.0"},
	})

	rows, err := LoadWorkbook(path, slog.Default())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1700", rows[0].Year)
	assert.Equal(t, "5.2", rows[0].Values["Consumer price index"])
}

func TestLoadWorkbook_NoIndicatorSheet(t *testing.T) {
	path := writeTempWorkbook(t, "Notes", [][]string{
		{"Release", "Date"},
		{"2016", "July"},
	})

	_, err := LoadWorkbook(path, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sheet contains indicator columns")
}

func TestLoadWorkbook_MissingFile(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")
}
