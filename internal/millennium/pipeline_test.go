package millennium

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticRows builds raw rows for a contiguous year range with GDP
// and population values.
func syntheticRows(t *testing.T, startYear, count int) []RawRow {
	t.Helper()

	gdpCol, ok := ColumnFor(IndicatorGDPReal)
	require.True(t, ok)
	popCol, ok := ColumnFor(IndicatorPopulation)
	require.True(t, ok)

	rows := make([]RawRow, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, RawRow{
			Year: fmt.Sprintf("%d", startYear+i),
			Values: map[string]string{
				gdpCol: fmt.Sprintf("%.2f", 100.0+float64(i)*2),
				popCol: fmt.Sprintf("%.2f", 10.0+float64(i)*0.1),
			},
		})
	}
	return rows
}

func TestPipeline_Run(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	rows := syntheticRows(t, 1800, 50)

	err := pipeline.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.NotEmpty(t, pipeline.RunID())
	assert.Len(t, pipeline.Records(), 50)
	assert.Len(t, pipeline.Segments(), 5)

	summary := pipeline.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, YearRange{Min: 1800, Max: 1849}, summary.YearRange)

	// Curated events survive regardless of data shape.
	years := make([]int, 0)
	for _, cp := range pipeline.ChangePoints() {
		years = append(years, cp.Year)
	}
	for _, y := range curatedYears {
		assert.Contains(t, years, y)
	}
}

func TestPipeline_RunEmptyInput(t *testing.T) {
	pipeline := NewPipeline(slog.Default())

	err := pipeline.Run(context.Background(), []RawRow{
		{Year: "not a year"},
		{Year: "1100"}, // out of range
	})
	assert.ErrorIs(t, err, ErrEmptyDataset)
	assert.Nil(t, pipeline.Summary())
}

func TestPipeline_DataForPeriod(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	require.NoError(t, pipeline.Run(context.Background(), syntheticRows(t, 1490, 30)))

	t.Run("medieval slice bounds", func(t *testing.T) {
		records, err := pipeline.DataForPeriod(PeriodMedieval)
		require.NoError(t, err)
		require.NotEmpty(t, records)
		for _, rec := range records {
			assert.GreaterOrEqual(t, rec.Year, 1209)
			assert.LessOrEqual(t, rec.Year, 1500)
		}
	})

	t.Run("projection keeps only requested indicators", func(t *testing.T) {
		records, err := pipeline.DataForPeriod(PeriodAwakening, IndicatorGDPReal)
		require.NoError(t, err)
		require.NotEmpty(t, records)
		for _, rec := range records {
			assert.NotNil(t, rec.GDPReal)
			assert.Nil(t, rec.Population, "unrequested indicator projected away")
			assert.Nil(t, rec.ChangePoint)
			assert.Empty(t, rec.Period)
		}
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := pipeline.DataForPeriod(PeriodKey("renaissance"))
		assert.ErrorIs(t, err, ErrUnknownPeriod)
	})

	t.Run("unknown indicator in projection", func(t *testing.T) {
		_, err := pipeline.DataForPeriod(PeriodMedieval, Indicator("gdpNominal"))
		assert.ErrorIs(t, err, ErrUnknownIndicator)
	})
}

func TestPipeline_TimeSeriesForIndicator(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	require.NoError(t, pipeline.Run(context.Background(), syntheticRows(t, 1790, 80)))

	t.Run("bounded series", func(t *testing.T) {
		series, err := pipeline.TimeSeriesForIndicator(IndicatorGDPReal, 1800, 1850)
		require.NoError(t, err)
		require.NotEmpty(t, series)
		for _, pt := range series {
			assert.GreaterOrEqual(t, pt.Year, 1800)
			assert.LessOrEqual(t, pt.Year, 1850)
			assert.NotZero(t, pt.Value)
		}
	})

	t.Run("unbounded series returns every observation", func(t *testing.T) {
		series, err := pipeline.TimeSeriesForIndicator(IndicatorPopulation, 0, 0)
		require.NoError(t, err)
		assert.Len(t, series, 80)
	})

	t.Run("missing values excluded", func(t *testing.T) {
		series, err := pipeline.TimeSeriesForIndicator(IndicatorHousePrice, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, series)
	})

	t.Run("unknown indicator", func(t *testing.T) {
		_, err := pipeline.TimeSeriesForIndicator(Indicator("gini"), 0, 0)
		assert.ErrorIs(t, err, ErrUnknownIndicator)
	})
}
