package millennium

import "math"

// SegmentByPeriod slices the enriched records into the five fixed
// historical periods and computes per-period statistics. Period bounds
// are inclusive on both ends, so a boundary year such as 1500 appears
// in both adjacent segments.
func SegmentByPeriod(records []YearRecord, changePoints []ChangePoint) map[PeriodKey]*PeriodSegment {
	segments := make(map[PeriodKey]*PeriodSegment, len(definedPeriods))

	for _, period := range definedPeriods {
		var slice []YearRecord
		for _, rec := range records {
			if period.Contains(rec.Year) {
				slice = append(slice, rec)
			}
		}

		var points []ChangePoint
		for _, cp := range changePoints {
			if period.Contains(cp.Year) {
				points = append(points, cp)
			}
		}

		segments[period.Key] = &PeriodSegment{
			Period:       period,
			Records:      slice,
			ChangePoints: points,
			Stats:        computePeriodStats(slice),
		}
	}

	return segments
}

// computePeriodStats derives the data quality tier, available
// indicators, and key trends for one period's records.
func computePeriodStats(records []YearRecord) PeriodStats {
	stats := PeriodStats{
		DataQuality: qualityTier(meanAvailability(records)),
	}

	for _, b := range indicatorBindings {
		for i := range records {
			if b.Get(&records[i]) != nil {
				stats.AvailableIndicators = append(stats.AvailableIndicators, b.Key)
				break
			}
		}
	}

	stats.GDPTrend = computeTrend(records, IndicatorGDPReal, MinGDPTrendSamples)
	stats.PopulationTrend = computeTrend(records, IndicatorPopulation, MinPopulationTrendSamples)

	return stats
}

// meanAvailability is the average, over all indicators, of the fraction
// of records carrying that indicator. Empty input yields zero.
func meanAvailability(records []YearRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	var sum float64
	for _, b := range indicatorBindings {
		present := 0
		for i := range records {
			if b.Get(&records[i]) != nil {
				present++
			}
		}
		sum += float64(present) / float64(len(records))
	}
	return sum / float64(len(indicatorBindings))
}

func qualityTier(availability float64) string {
	switch {
	case availability > HighQualityThreshold:
		return "high"
	case availability > MediumQualityThreshold:
		return "medium"
	default:
		return "low"
	}
}

// computeTrend summarizes indicator movement across a period using the
// first and last records that carry the indicator. Returns nil when
// fewer than minSamples records qualify (strictly greater is required),
// or when the span or starting value make the growth math degenerate.
func computeTrend(records []YearRecord, key Indicator, minSamples int) *TrendSummary {
	var present []YearRecord
	for i := range records {
		if records[i].Value(key) != nil {
			present = append(present, records[i])
		}
	}

	if len(present) <= minSamples {
		return nil
	}

	first := present[0]
	last := present[len(present)-1]
	start := *first.Value(key)
	end := *last.Value(key)
	span := last.Year - first.Year

	if start <= 0 || span <= 0 {
		return nil
	}

	return &TrendSummary{
		StartYear:      first.Year,
		EndYear:        last.Year,
		StartValue:     start,
		EndValue:       end,
		TotalGrowthPct: (end - start) / start * 100,
		CAGR:           math.Pow(end/start, 1/float64(span)) - 1,
		Multiplier:     end / start,
		Samples:        len(present),
	}
}
