package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"ukmcli/internal/millennium"
)

// defaultFetchTimeout bounds the one-time dataset download.
const defaultFetchTimeout = 60 * time.Second

// utf8BOM is stripped from the head of CSV content so the first header
// cell matches cleanly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads the millennium dataset from a local file or an HTTP(S)
// URL and returns its raw rows. The first column of the table is the
// year cell; remaining columns are keyed by their header label. Any
// failure to fetch or decode the table is returned wrapped; this is
// the pipeline's only hard external failure.
func LoadCSV(ctx context.Context, source string, logger *slog.Logger) ([]millennium.RawRow, error) {
	if logger == nil {
		logger = slog.Default()
	}

	content, err := fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", source, err)
	}

	rows, err := parseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", source, err)
	}

	logger.InfoContext(ctx, "dataset loaded",
		slog.String("source", source),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// fetch reads the raw bytes of the source, which is either an HTTP(S)
// URL or a filesystem path.
func fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchHTTP(ctx, source)
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return content, nil
}

func fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return content, nil
}

// parseCSV decodes table content into raw rows. The header row names
// the columns; data rows shorter than the header are padded with empty
// cells rather than rejected.
func parseCSV(content []byte) ([]millennium.RawRow, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("table has no data rows")
	}

	header := records[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("table has an empty header row")
	}

	return rowsFromTable(header, records[1:]), nil
}

// rowsFromTable maps each data row onto the header labels. The first
// logical column is the year cell regardless of its label.
func rowsFromTable(header []string, data [][]string) []millennium.RawRow {
	rows := make([]millennium.RawRow, 0, len(data))

	for _, record := range data {
		if len(record) == 0 {
			continue
		}

		row := millennium.RawRow{
			Year:   strings.TrimSpace(record[0]),
			Values: make(map[string]string, len(header)-1),
		}
		for j := 1; j < len(header); j++ {
			if j < len(record) {
				row.Values[strings.TrimSpace(header[j])] = record[j]
			} else {
				row.Values[strings.TrimSpace(header[j])] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}
