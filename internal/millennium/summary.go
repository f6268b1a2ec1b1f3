package millennium

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when an operation needs at least one
// valid year record and none survived parsing.
var ErrEmptyDataset = errors.New("no valid year records in dataset")

// Summarize builds the top-level dataset summary. Unlike the rest of
// the pipeline, which degrades to nils on sparse data, an empty record
// set is a hard error here: the year range is undefined without at
// least one record.
func Summarize(records []YearRecord) (*DatasetSummary, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	summary := &DatasetSummary{
		TotalYears: len(records),
		YearRange: YearRange{
			Min: records[0].Year,
			Max: records[len(records)-1].Year,
		},
		Indicators: Indicators(),
	}
	for _, p := range definedPeriods {
		summary.Periods = append(summary.Periods, p.Key)
	}

	if change := dramaticChange(records, IndicatorGDPReal, "Real GDP"); change != "" {
		summary.DramaticChanges = append(summary.DramaticChanges, change)
	}
	if change := dramaticChange(records, IndicatorPopulation, "Population"); change != "" {
		summary.DramaticChanges = append(summary.DramaticChanges, change)
	}

	return summary, nil
}

// dramaticChange formats a multiplier-over-range narrative comparing
// the first and last non-nil values of an indicator. Returns "" when
// the indicator has no usable observations.
func dramaticChange(records []YearRecord, key Indicator, label string) string {
	var first, last *YearRecord
	for i := range records {
		if records[i].Value(key) == nil {
			continue
		}
		if first == nil {
			first = &records[i]
		}
		last = &records[i]
	}

	if first == nil || first == last {
		return ""
	}

	startVal := *first.Value(key)
	if startVal <= 0 {
		return ""
	}
	ratio := *last.Value(key) / startVal

	return fmt.Sprintf("%s grew %.0fx between %d and %d", label, ratio, first.Year, last.Year)
}
