package millennium

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentByPeriod_BoundaryYearsInBothSegments(t *testing.T) {
	records := Enrich([]YearRecord{
		{Year: 1499},
		{Year: 1500},
		{Year: 1501},
	}, slog.Default())

	segments := SegmentByPeriod(records, nil)
	require.Len(t, segments, 5)

	medieval := segments[PeriodMedieval]
	awakening := segments[PeriodAwakening]
	require.NotNil(t, medieval)
	require.NotNil(t, awakening)

	medievalYears := recordYears(medieval.Records)
	awakeningYears := recordYears(awakening.Records)

	assert.Equal(t, []int{1499, 1500}, medievalYears)
	assert.Equal(t, []int{1500, 1501}, awakeningYears, "boundary year 1500 belongs to both adjacent periods")
}

func recordYears(records []YearRecord) []int {
	years := make([]int, 0, len(records))
	for _, rec := range records {
		years = append(years, rec.Year)
	}
	return years
}

func TestSegmentByPeriod_ChangePointsAssigned(t *testing.T) {
	records := Enrich([]YearRecord{{Year: 1348}, {Year: 1914}}, slog.Default())
	points := DetectChangePoints(records)

	segments := SegmentByPeriod(records, points)

	medievalYears := changePointYears(segments[PeriodMedieval].ChangePoints)
	assert.Equal(t, []int{1348}, medievalYears)

	// 1750 sits on the awakening/industrial boundary, so the curated
	// event lands in both segments.
	assert.Contains(t, changePointYears(segments[PeriodAwakening].ChangePoints), 1750)
	assert.Contains(t, changePointYears(segments[PeriodIndustrial].ChangePoints), 1750)

	crisisYears := changePointYears(segments[PeriodCrisis].ChangePoints)
	assert.Equal(t, []int{1914, 1929}, crisisYears)

	modernYears := changePointYears(segments[PeriodModern].ChangePoints)
	assert.Equal(t, []int{1971, 2008}, modernYears)
}

func changePointYears(points []ChangePoint) []int {
	years := make([]int, 0, len(points))
	for _, cp := range points {
		years = append(years, cp.Year)
	}
	return years
}

func TestQualityTier(t *testing.T) {
	tests := []struct {
		availability float64
		want         string
	}{
		{1.0, "high"},
		{0.81, "high"},
		{0.8, "medium"}, // threshold is strict
		{0.5, "medium"},
		{0.41, "medium"},
		{0.4, "low"},
		{0.1, "low"},
		{0.0, "low"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, qualityTier(tt.availability), "availability %.2f", tt.availability)
	}
}

func TestComputePeriodStats_DataQualityAndAvailability(t *testing.T) {
	// Two records, one indicator fully present out of eleven: mean
	// availability 1/11, tier low.
	records := []YearRecord{
		{Year: 1300, GDPReal: fp(1)},
		{Year: 1301, GDPReal: fp(2)},
	}

	stats := computePeriodStats(records)
	assert.Equal(t, "low", stats.DataQuality)
	assert.Equal(t, []Indicator{IndicatorGDPReal}, stats.AvailableIndicators)
	assert.Nil(t, stats.GDPTrend)
	assert.Nil(t, stats.PopulationTrend)
}

func TestComputePeriodStats_EmptyPeriod(t *testing.T) {
	stats := computePeriodStats(nil)
	assert.Equal(t, "low", stats.DataQuality)
	assert.Empty(t, stats.AvailableIndicators)
	assert.Nil(t, stats.GDPTrend)
	assert.Nil(t, stats.PopulationTrend)
}

func TestComputeTrend_SampleThresholds(t *testing.T) {
	build := func(n int) []YearRecord {
		records := make([]YearRecord, n)
		for i := range records {
			records[i] = YearRecord{Year: 1800 + i, GDPReal: fp(float64(100 + i)), Population: fp(float64(10 + i))}
		}
		return records
	}

	// Exactly the minimum is not enough; the threshold is strict.
	assert.Nil(t, computeTrend(build(MinGDPTrendSamples), IndicatorGDPReal, MinGDPTrendSamples))
	assert.NotNil(t, computeTrend(build(MinGDPTrendSamples+1), IndicatorGDPReal, MinGDPTrendSamples))

	assert.Nil(t, computeTrend(build(MinPopulationTrendSamples), IndicatorPopulation, MinPopulationTrendSamples))
	assert.NotNil(t, computeTrend(build(MinPopulationTrendSamples+1), IndicatorPopulation, MinPopulationTrendSamples))
}

func TestComputeTrend_Math(t *testing.T) {
	// Doubling over exactly 10 years.
	records := make([]YearRecord, 11)
	for i := range records {
		records[i] = YearRecord{Year: 1900 + i, GDPReal: fp(100)}
	}
	*records[0].GDPReal = 100
	*records[10].GDPReal = 200

	trend := computeTrend(records, IndicatorGDPReal, MinGDPTrendSamples)
	require.NotNil(t, trend)

	assert.Equal(t, 1900, trend.StartYear)
	assert.Equal(t, 1910, trend.EndYear)
	assert.InDelta(t, 100.0, trend.TotalGrowthPct, 1e-9)
	assert.InDelta(t, 2.0, trend.Multiplier, 1e-9)
	assert.InDelta(t, math.Pow(2, 0.1)-1, trend.CAGR, 1e-12)
	assert.Equal(t, 11, trend.Samples)
}

func TestComputeTrend_UsesFirstAndLastObservations(t *testing.T) {
	// Gaps inside the period: the trend spans the first and last
	// records that carry the indicator, not the period bounds.
	records := []YearRecord{
		{Year: 1800},
		{Year: 1805, Population: fp(10)},
		{Year: 1810, Population: fp(12)},
		{Year: 1815, Population: fp(14)},
		{Year: 1820, Population: fp(16)},
		{Year: 1825, Population: fp(18)},
		{Year: 1830, Population: fp(20)},
		{Year: 1840},
	}

	trend := computeTrend(records, IndicatorPopulation, MinPopulationTrendSamples)
	require.NotNil(t, trend)
	assert.Equal(t, 1805, trend.StartYear)
	assert.Equal(t, 1830, trend.EndYear)
	assert.InDelta(t, 2.0, trend.Multiplier, 1e-9)
}

func TestComputeTrend_DegenerateStartValue(t *testing.T) {
	records := make([]YearRecord, 12)
	for i := range records {
		records[i] = YearRecord{Year: 1900 + i, GDPReal: fp(float64(i))}
	}

	// First observation is zero; growth math is undefined.
	assert.Nil(t, computeTrend(records, IndicatorGDPReal, MinGDPTrendSamples))
}
