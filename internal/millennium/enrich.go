package millennium

import "log/slog"

// growthDerivations lists the indicator-to-derived-field pairs that get
// a year-over-year growth rate during enrichment.
var growthDerivations = []struct {
	Source Indicator
	Set    func(*YearRecord, *float64)
}{
	{IndicatorGDPReal, func(r *YearRecord, v *float64) { r.GDPGrowthRate = v }},
	{IndicatorPopulation, func(r *YearRecord, v *float64) { r.PopulationGrowthRate = v }},
	{IndicatorCPI, func(r *YearRecord, v *float64) { r.InflationRate = v }},
}

// Enrich returns a new record slice with derived growth rates, period
// classification, and change points populated. The input slice is not
// modified; each stage produces fully-owned values.
func Enrich(records []YearRecord, logger *slog.Logger) []YearRecord {
	if logger == nil {
		logger = slog.Default()
	}

	enriched := make([]YearRecord, len(records))
	copy(enriched, records)

	// Growth rates compare each record to the previous record by
	// order, not by calendar adjacency. The first record never gets a
	// rate.
	for i := range enriched {
		if i == 0 {
			continue
		}
		for _, d := range growthDerivations {
			curr := enriched[i].Value(d.Source)
			prev := enriched[i-1].Value(d.Source)
			if curr == nil || prev == nil {
				continue
			}
			rate := (*curr - *prev) / *prev * 100
			d.Set(&enriched[i], &rate)
		}
	}

	for i := range enriched {
		enriched[i].Period = ClassifyYear(enriched[i].Year).Key
	}

	points := DetectChangePoints(enriched)
	attachChangePoints(enriched, points)

	logger.Debug("enriched records",
		slog.Int("records", len(enriched)),
		slog.Int("change_points", len(points)))

	return enriched
}

// attachChangePoints links each change point to the record with the
// matching year. When the list carries duplicate years, the first entry
// wins; records without a match keep a nil change point.
func attachChangePoints(records []YearRecord, points []ChangePoint) {
	byYear := make(map[int]ChangePoint, len(points))
	for _, cp := range points {
		if _, seen := byYear[cp.Year]; !seen {
			byYear[cp.Year] = cp
		}
	}

	for i := range records {
		if cp, ok := byYear[records[i].Year]; ok {
			attached := cp
			records[i].ChangePoint = &attached
		} else {
			records[i].ChangePoint = nil
		}
	}
}
