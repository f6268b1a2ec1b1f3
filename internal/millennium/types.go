package millennium

// Year bounds of the millennium dataset. Rows outside this range are
// discarded during parsing.
const (
	MinYear = 1209
	MaxYear = 2016
)

// Change-point detection parameters. Detection compares the mean GDP
// growth rate over the DetectionWindow records before and after each
// candidate index, and only considers indices with DetectionMargin
// records of context on either side.
const (
	DetectionWindow       = 10
	DetectionMargin       = 20
	AccelerationThreshold = 1.5
)

// Minimum sample counts before a trend is computed for a period.
const (
	MinGDPTrendSamples        = 10
	MinPopulationTrendSamples = 5
)

// Data quality tier thresholds (mean indicator availability).
const (
	HighQualityThreshold   = 0.8
	MediumQualityThreshold = 0.4
)

// RawRow is one unprocessed row of the source table: a year cell plus a
// mapping from source column label to cell text. Produced by the dataset
// loaders, consumed once by the parser.
type RawRow struct {
	Year   string
	Values map[string]string
}

// YearRecord is the parsed and enriched view of one calendar year.
// Indicator fields are nil when the source cell was empty, "n/a", or not
// numeric. Derived fields are populated during enrichment.
type YearRecord struct {
	Year int `json:"year"`

	GDPReal           *float64 `json:"gdpReal,omitempty"`
	Population        *float64 `json:"population,omitempty"`
	PopulationEngland *float64 `json:"populationEngland,omitempty"`
	CPI               *float64 `json:"cpi,omitempty"`
	Wages             *float64 `json:"wages,omitempty"`
	GovSpending       *float64 `json:"govSpending,omitempty"`
	PublicDebt        *float64 `json:"publicDebt,omitempty"`
	InterestRates     *float64 `json:"interestRates,omitempty"`
	TradeBalance      *float64 `json:"tradeBalance,omitempty"`
	Unemployment      *float64 `json:"unemployment,omitempty"`
	HousePrice        *float64 `json:"housePrice,omitempty"`

	// Derived during enrichment. Growth rates are percentages and are
	// only set when both this year and the previous record carry the
	// underlying indicator.
	GDPGrowthRate        *float64 `json:"gdpGrowthRate,omitempty"`
	PopulationGrowthRate *float64 `json:"populationGrowthRate,omitempty"`
	InflationRate        *float64 `json:"inflationRate,omitempty"`

	Period      PeriodKey    `json:"period,omitempty"`
	ChangePoint *ChangePoint `json:"changePoint,omitempty"`
}

// ChangePointType tags the nature of a structural break.
type ChangePointType string

const (
	ChangeGrowthAcceleration ChangePointType = "growth_acceleration"
	ChangeCrisis             ChangePointType = "crisis"
	ChangeInnovation         ChangePointType = "innovation"
	ChangeTransformation     ChangePointType = "transformation"
)

// ChangePoint marks a year as a structural break or major historical
// event. Magnitude is only set for detected growth accelerations and is
// the ratio of the after-window mean growth to the before-window mean.
type ChangePoint struct {
	Year        int             `json:"year"`
	Type        ChangePointType `json:"type"`
	Description string          `json:"description"`
	Magnitude   float64         `json:"magnitude,omitempty"`
}

// TrendSummary describes how an indicator moved across a period, based
// on the first and last records that carry the indicator.
type TrendSummary struct {
	StartYear      int     `json:"start_year"`
	EndYear        int     `json:"end_year"`
	StartValue     float64 `json:"start_value"`
	EndValue       float64 `json:"end_value"`
	TotalGrowthPct float64 `json:"total_growth_pct"`
	CAGR           float64 `json:"cagr"` // compound annual rate, as a fraction
	Multiplier     float64 `json:"multiplier"`
	Samples        int     `json:"samples"`
}

// PeriodStats summarizes data coverage and movement within a period.
type PeriodStats struct {
	DataQuality         string        `json:"data_quality"` // "high", "medium", "low"
	AvailableIndicators []Indicator   `json:"available_indicators"`
	GDPTrend            *TrendSummary `json:"gdp_trend,omitempty"`
	PopulationTrend     *TrendSummary `json:"population_trend,omitempty"`
}

// PeriodSegment groups the records, change points, and statistics for
// one historical period.
type PeriodSegment struct {
	Period       Period        `json:"period"`
	Records      []YearRecord  `json:"records"`
	ChangePoints []ChangePoint `json:"change_points"`
	Stats        PeriodStats   `json:"stats"`
}

// YearRange is the inclusive span of years covered by the dataset.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DatasetSummary is the top-level description of the enriched dataset.
type DatasetSummary struct {
	TotalYears      int         `json:"total_years"`
	YearRange       YearRange   `json:"year_range"`
	Indicators      []Indicator `json:"indicators"`
	Periods         []PeriodKey `json:"periods"`
	DramaticChanges []string    `json:"dramatic_changes"`
}

// SeriesPoint is one observation in an indicator time series. Only
// years where the indicator is present appear in a series.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}
