package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"ukmcli/internal/millennium"
)

// possibleSheetNames are tried first when locating the data sheet in a
// workbook edition of the dataset. Spreadsheet editions vary the sheet
// title across releases.
var possibleSheetNames = []string{"A1. Headline series", "Headline series", "Data", "Sheet1"}

// LoadWorkbook reads the millennium dataset from an Excel workbook and
// returns its raw rows. The data sheet is located by name first and by
// header inspection as a fallback.
func LoadWorkbook(path string, logger *slog.Logger) ([]millennium.RawRow, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: open workbook: %w", path, err)
	}
	defer f.Close()

	rows, sheetName, err := findDataSheet(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("load dataset %q: no header row in sheet %q", path, sheetName)
	}

	raw := rowsFromTable(rows[headerIdx], rows[headerIdx+1:])

	logger.Info("workbook loaded",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(raw)))

	return raw, nil
}

// findDataSheet tries the known sheet titles first, then scans every
// sheet for one whose early rows carry an indicator column label.
func findDataSheet(f *excelize.File) ([][]string, string, error) {
	for _, name := range possibleSheetNames {
		if rows, err := f.GetRows(name); err == nil && len(rows) > 1 {
			return rows, name, nil
		}
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		limit := len(rows)
		if limit > 10 {
			limit = 10
		}
		for _, row := range rows[:limit] {
			if rowMatchesIndicators(row) {
				return rows, name, nil
			}
		}
	}

	return nil, "", fmt.Errorf("no sheet contains indicator columns")
}

// findHeaderRow returns the index of the first row that carries at
// least one known indicator column label, or -1.
func findHeaderRow(rows [][]string) int {
	limit := len(rows) - 1
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		if rowMatchesIndicators(rows[i]) {
			return i
		}
	}
	return -1
}

func rowMatchesIndicators(row []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	for _, key := range millennium.Indicators() {
		column, ok := millennium.ColumnFor(key)
		if ok && strings.Contains(joined, strings.ToLower(column)) {
			return true
		}
	}
	return false
}
