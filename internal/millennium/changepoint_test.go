package millennium

import (
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curatedYears = []int{1348, 1694, 1750, 1914, 1929, 1971, 2008}

func TestDetectChangePoints_CuratedAlwaysPresent(t *testing.T) {
	tests := []struct {
		name    string
		records []YearRecord
	}{
		{"empty series", nil},
		{"no GDP data", []YearRecord{{Year: 1300}, {Year: 1301}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := DetectChangePoints(tt.records)
			require.Len(t, points, len(curatedYears))

			for i, year := range curatedYears {
				assert.Equal(t, year, points[i].Year)
				assert.NotEmpty(t, points[i].Description)
				assert.NotEqual(t, ChangeGrowthAcceleration, points[i].Type)
			}
		})
	}
}

func TestDetectChangePoints_SortedAscending(t *testing.T) {
	points := DetectChangePoints(acceleratingSeries(t))

	assert.True(t, sort.SliceIsSorted(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	}))
}

// acceleratingSeries builds an enriched series where GDP grows 1% a
// year for three decades and then 5% a year, which must trigger the
// acceleration detector.
func acceleratingSeries(t *testing.T) []YearRecord {
	t.Helper()

	records := make([]YearRecord, 0, 61)
	gdp := 100.0
	for i := 0; i <= 60; i++ {
		if i > 0 && i <= 30 {
			gdp *= 1.01
		} else if i > 30 {
			gdp *= 1.05
		}
		v := gdp
		records = append(records, YearRecord{Year: 1700 + i, GDPReal: &v})
	}
	return Enrich(records, slog.Default())
}

func TestDetectGrowthAccelerations(t *testing.T) {
	points := detectGrowthAccelerations(acceleratingSeries(t))
	require.NotEmpty(t, points, "a 1%% to 5%% regime change must be detected")

	var shift *ChangePoint
	for i := range points {
		assert.Equal(t, ChangeGrowthAcceleration, points[i].Type)
		assert.Greater(t, points[i].Magnitude, AccelerationThreshold)
		assert.Contains(t, points[i].Description, "%")
		if points[i].Year == 1731 {
			shift = &points[i]
		}
	}

	// The index where both windows sit fully inside their regimes sees
	// the full 5x ratio.
	require.NotNil(t, shift, "expected a change point at the regime boundary year")
	assert.InDelta(t, 5.0, shift.Magnitude, 0.2)
}

func TestDetectGrowthAccelerations_NeedsContext(t *testing.T) {
	// 40 usable growth observations is one short of the margin
	// requirement on both sides, so nothing can be flagged.
	records := make([]YearRecord, 0, 41)
	gdp := 100.0
	for i := 0; i <= 40; i++ {
		if i > 0 {
			if i <= 20 {
				gdp *= 1.01
			} else {
				gdp *= 1.10
			}
		}
		v := gdp
		records = append(records, YearRecord{Year: 1800 + i, GDPReal: &v})
	}

	points := detectGrowthAccelerations(Enrich(records, slog.Default()))
	assert.Empty(t, points)
}

func TestDetectGrowthAccelerations_SteadyGrowthNotFlagged(t *testing.T) {
	records := make([]YearRecord, 0, 100)
	gdp := 100.0
	for i := 0; i < 100; i++ {
		if i > 0 {
			gdp *= 1.02
		}
		v := gdp
		records = append(records, YearRecord{Year: 1850 + i, GDPReal: &v})
	}

	points := detectGrowthAccelerations(Enrich(records, slog.Default()))
	assert.Empty(t, points)
}

func TestCuratedChangePoints_CopyIsIndependent(t *testing.T) {
	first := CuratedChangePoints()
	first[0].Description = "mutated"

	second := CuratedChangePoints()
	assert.NotEqual(t, "mutated", second[0].Description)
}
