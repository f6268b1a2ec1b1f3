package millennium

import (
	"fmt"
	"sort"
)

// curatedChangePoints are the fixed historical events attached to the
// series regardless of what the data shows.
var curatedChangePoints = []ChangePoint{
	{Year: 1348, Type: ChangeCrisis, Description: "Black Death devastates the population and reshapes the labour market"},
	{Year: 1694, Type: ChangeInnovation, Description: "Founding of the Bank of England"},
	{Year: 1750, Type: ChangeTransformation, Description: "Industrial Revolution takes hold"},
	{Year: 1914, Type: ChangeCrisis, Description: "First World War begins"},
	{Year: 1929, Type: ChangeCrisis, Description: "Great Depression reaches Britain"},
	{Year: 1971, Type: ChangeTransformation, Description: "End of Bretton Woods and the move to fiat money"},
	{Year: 2008, Type: ChangeCrisis, Description: "Global financial crisis"},
}

// CuratedChangePoints returns a copy of the fixed historical event list.
func CuratedChangePoints() []ChangePoint {
	out := make([]ChangePoint, len(curatedChangePoints))
	copy(out, curatedChangePoints)
	return out
}

// DetectChangePoints finds structural breaks in the enriched series.
// Detected GDP growth accelerations are merged with the curated
// historical events and the combined list is sorted ascending by year.
// A year may appear more than once when a detected acceleration
// coincides with a curated event; attachment to records keeps only the
// first match per year.
func DetectChangePoints(records []YearRecord) []ChangePoint {
	points := detectGrowthAccelerations(records)
	points = append(points, CuratedChangePoints()...)

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})

	return points
}

// detectGrowthAccelerations scans the GDP growth series with a sliding
// window, flagging years where the mean growth over the following
// DetectionWindow records exceeds the preceding window's mean by the
// acceleration threshold.
func detectGrowthAccelerations(records []YearRecord) []ChangePoint {
	// Only records carrying both GDP and a growth rate take part.
	var series []YearRecord
	for _, rec := range records {
		if rec.GDPReal != nil && rec.GDPGrowthRate != nil {
			series = append(series, rec)
		}
	}

	var points []ChangePoint
	for i := DetectionMargin; i <= len(series)-DetectionMargin-1; i++ {
		beforeAvg := meanGrowthRate(series[i-DetectionWindow : i])
		afterAvg := meanGrowthRate(series[i : i+DetectionWindow])

		if beforeAvg > 0 && afterAvg > beforeAvg*AccelerationThreshold {
			points = append(points, ChangePoint{
				Year: series[i].Year,
				Type: ChangeGrowthAcceleration,
				Description: fmt.Sprintf("GDP growth accelerates from %.1f%% to %.1f%% average",
					beforeAvg, afterAvg),
				Magnitude: afterAvg / beforeAvg,
			})
		}
	}

	return points
}

func meanGrowthRate(records []YearRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range records {
		sum += *rec.GDPGrowthRate
	}
	return sum / float64(len(records))
}
