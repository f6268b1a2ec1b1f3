package millennium

import "fmt"

// PeriodKey identifies one of the named historical periods.
type PeriodKey string

const (
	PeriodMedieval   PeriodKey = "medieval"
	PeriodAwakening  PeriodKey = "awakening"
	PeriodIndustrial PeriodKey = "industrial"
	PeriodCrisis     PeriodKey = "crisis"
	PeriodModern     PeriodKey = "modern"
	PeriodOther      PeriodKey = "other"
)

// Period is a named interval of calendar years. Start and End are both
// inclusive, so adjacent periods share their boundary year.
type Period struct {
	Key   PeriodKey `json:"key"`
	Name  string    `json:"name"`
	Start int       `json:"start"`
	End   int       `json:"end"`
}

// Contains reports whether year falls within the period, inclusive on
// both ends.
func (p Period) Contains(year int) bool {
	return year >= p.Start && year <= p.End
}

// definedPeriods is the fixed ordered list of periods covering
// [MinYear, MaxYear]. Classification walks this list in order, so a
// boundary year such as 1500 classifies to the earlier period even
// though segmentation slices include it in both.
var definedPeriods = []Period{
	{Key: PeriodMedieval, Name: "Medieval", Start: 1209, End: 1500},
	{Key: PeriodAwakening, Name: "Great Awakening", Start: 1500, End: 1750},
	{Key: PeriodIndustrial, Name: "Industrial Explosion", Start: 1750, End: 1900},
	{Key: PeriodCrisis, Name: "Crisis & Transformation", Start: 1900, End: 1950},
	{Key: PeriodModern, Name: "Modern Service Economy", Start: 1950, End: 2016},
}

// Periods returns the fixed ordered list of historical periods.
func Periods() []Period {
	out := make([]Period, len(definedPeriods))
	copy(out, definedPeriods)
	return out
}

// PeriodByKey looks up a period definition. The second result is false
// for unknown keys, including PeriodOther which has no fixed bounds.
func PeriodByKey(key PeriodKey) (Period, bool) {
	for _, p := range definedPeriods {
		if p.Key == key {
			return p, true
		}
	}
	return Period{}, false
}

// ClassifyYear assigns a year to its historical period. Years outside
// [MinYear, MaxYear] receive a degenerate single-year period keyed
// "other".
func ClassifyYear(year int) Period {
	for _, p := range definedPeriods {
		if p.Contains(year) {
			return p
		}
	}
	return Period{
		Key:   PeriodOther,
		Name:  fmt.Sprintf("Other (%d)", year),
		Start: year,
		End:   year,
	}
}
