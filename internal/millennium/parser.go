package millennium

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// ParseRows converts raw table rows into typed year records. Rows whose
// year cell does not parse as an integer are dropped silently, as are
// rows outside [MinYear, MaxYear]. The result is sorted ascending by
// year regardless of input order.
func ParseRows(rows []RawRow, logger *slog.Logger) []YearRecord {
	if logger == nil {
		logger = slog.Default()
	}

	records := make([]YearRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(row.Year))
		if err != nil {
			dropped++
			continue
		}
		if year < MinYear || year > MaxYear {
			dropped++
			continue
		}

		rec := YearRecord{Year: year}
		for _, b := range indicatorBindings {
			rec.setValue(b.Key, parseIndicatorValue(row.Values[b.Column]))
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Year < records[j].Year
	})

	logger.Debug("parsed raw rows",
		slog.Int("input_rows", len(rows)),
		slog.Int("records", len(records)),
		slog.Int("dropped", dropped))

	return records
}

// parseIndicatorValue converts one cell of text to an optional float.
// Empty cells, the literal "n/a", and anything non-numeric become nil.
// Thousands separators are tolerated.
func parseIndicatorValue(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
