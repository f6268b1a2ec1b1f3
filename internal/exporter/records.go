package exporter

import (
	"fmt"
	"strings"

	"ukmcli/internal/millennium"
)

// recordHeaders lists the exported columns for enriched year records:
// the year, every indicator in canonical order, the derived rates,
// then the period and change point annotation.
func recordHeaders() []string {
	headers := []string{"year"}
	for _, key := range millennium.Indicators() {
		headers = append(headers, string(key))
	}
	headers = append(headers,
		"gdp_growth_rate",
		"population_growth_rate",
		"inflation_rate",
		"period",
		"change_point_type",
		"change_point_description",
	)
	return headers
}

// recordRow renders one enriched year record as CSV cells. Missing
// observations export as empty cells.
func recordRow(rec millennium.YearRecord) []string {
	row := []string{fmt.Sprintf("%d", rec.Year)}
	for _, key := range millennium.Indicators() {
		row = append(row, formatOptional(rec.Value(key)))
	}
	row = append(row,
		formatOptional(rec.GDPGrowthRate),
		formatOptional(rec.PopulationGrowthRate),
		formatOptional(rec.InflationRate),
		string(rec.Period),
	)
	if rec.ChangePoint != nil {
		row = append(row, string(rec.ChangePoint.Type), rec.ChangePoint.Description)
	} else {
		row = append(row, "", "")
	}
	return row
}

// WriteRecords exports enriched year records to a CSV file.
func (w *CSVWriter) WriteRecords(filePath string, records []millennium.YearRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, recordRow(rec))
	}
	return w.WriteSimpleCSV(filePath, recordHeaders(), rows)
}

// WriteChangePoints exports the detected and curated change points to
// a CSV file.
func (w *CSVWriter) WriteChangePoints(filePath string, points []millennium.ChangePoint) error {
	rows := make([][]string, 0, len(points))
	for _, cp := range points {
		magnitude := ""
		if cp.Magnitude != 0 {
			magnitude = formatFloat(cp.Magnitude)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", cp.Year),
			string(cp.Type),
			cp.Description,
			magnitude,
		})
	}
	return w.WriteSimpleCSV(filePath, []string{"year", "type", "description", "magnitude"}, rows)
}

// trendCells renders a trend summary as growth/CAGR/multiplier cells,
// empty when the period had too little data to compute a trend.
func trendCells(trend *millennium.TrendSummary) []string {
	if trend == nil {
		return []string{"", "", ""}
	}
	return []string{
		formatFloat(trend.TotalGrowthPct),
		formatFloat(trend.CAGR * 100),
		formatFloat(trend.Multiplier),
	}
}

// WritePeriodStats exports one row per historical period with its
// coverage and trend statistics, in canonical period order.
func (w *CSVWriter) WritePeriodStats(filePath string, segments map[millennium.PeriodKey]*millennium.PeriodSegment) error {
	headers := []string{
		"period", "name", "start", "end", "records",
		"data_quality", "available_indicators",
		"gdp_total_growth_pct", "gdp_cagr_pct", "gdp_multiplier",
		"population_total_growth_pct", "population_cagr_pct", "population_multiplier",
	}

	var rows [][]string
	for _, period := range millennium.Periods() {
		segment, ok := segments[period.Key]
		if !ok {
			continue
		}

		available := make([]string, 0, len(segment.Stats.AvailableIndicators))
		for _, ind := range segment.Stats.AvailableIndicators {
			available = append(available, string(ind))
		}

		row := []string{
			string(period.Key),
			period.Name,
			fmt.Sprintf("%d", period.Start),
			fmt.Sprintf("%d", period.End),
			fmt.Sprintf("%d", len(segment.Records)),
			segment.Stats.DataQuality,
			strings.Join(available, ";"),
		}
		row = append(row, trendCells(segment.Stats.GDPTrend)...)
		row = append(row, trendCells(segment.Stats.PopulationTrend)...)
		rows = append(rows, row)
	}

	return w.WriteSimpleCSV(filePath, headers, rows)
}
