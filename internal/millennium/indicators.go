package millennium

// Indicator identifies one economic time series tracked per year.
type Indicator string

const (
	IndicatorGDPReal           Indicator = "gdpReal"
	IndicatorPopulation        Indicator = "population"
	IndicatorPopulationEngland Indicator = "populationEngland"
	IndicatorCPI               Indicator = "cpi"
	IndicatorWages             Indicator = "wages"
	IndicatorGovSpending       Indicator = "govSpending"
	IndicatorPublicDebt        Indicator = "publicDebt"
	IndicatorInterestRates     Indicator = "interestRates"
	IndicatorTradeBalance      Indicator = "tradeBalance"
	IndicatorUnemployment      Indicator = "unemployment"
	IndicatorHousePrice        Indicator = "housePrice"
)

// indicatorBinding ties an indicator key to its source column label and
// to the matching YearRecord field. Iterating the fixed binding table
// applies the same logic to every indicator without reflection.
type indicatorBinding struct {
	Key    Indicator
	Column string
	Get    func(*YearRecord) *float64
	Set    func(*YearRecord, *float64)
}

// indicatorBindings is the fixed, ordered mapping from indicator key to
// source column label. Column labels match the millennium dataset's
// header row verbatim.
var indicatorBindings = []indicatorBinding{
	{
		Key:    IndicatorGDPReal,
		Column: "Real GDP of England at market prices",
		Get:    func(r *YearRecord) *float64 { return r.GDPReal },
		Set:    func(r *YearRecord, v *float64) { r.GDPReal = v },
	},
	{
		Key:    IndicatorPopulation,
		Column: "Population (GB+NI)",
		Get:    func(r *YearRecord) *float64 { return r.Population },
		Set:    func(r *YearRecord, v *float64) { r.Population = v },
	},
	{
		Key:    IndicatorPopulationEngland,
		Column: "Population of England",
		Get:    func(r *YearRecord) *float64 { return r.PopulationEngland },
		Set:    func(r *YearRecord, v *float64) { r.PopulationEngland = v },
	},
	{
		Key:    IndicatorCPI,
		Column: "Consumer price index",
		Get:    func(r *YearRecord) *float64 { return r.CPI },
		Set:    func(r *YearRecord, v *float64) { r.CPI = v },
	},
	{
		Key:    IndicatorWages,
		Column: "Average weekly earnings",
		Get:    func(r *YearRecord) *float64 { return r.Wages },
		Set:    func(r *YearRecord, v *float64) { r.Wages = v },
	},
	{
		Key:    IndicatorGovSpending,
		Column: "Total government expenditure",
		Get:    func(r *YearRecord) *float64 { return r.GovSpending },
		Set:    func(r *YearRecord, v *float64) { r.GovSpending = v },
	},
	{
		Key:    IndicatorPublicDebt,
		Column: "Public sector debt",
		Get:    func(r *YearRecord) *float64 { return r.PublicDebt },
		Set:    func(r *YearRecord, v *float64) { r.PublicDebt = v },
	},
	{
		Key:    IndicatorInterestRates,
		Column: "Bank Rate",
		Get:    func(r *YearRecord) *float64 { return r.InterestRates },
		Set:    func(r *YearRecord, v *float64) { r.InterestRates = v },
	},
	{
		Key:    IndicatorTradeBalance,
		Column: "Trade balance",
		Get:    func(r *YearRecord) *float64 { return r.TradeBalance },
		Set:    func(r *YearRecord, v *float64) { r.TradeBalance = v },
	},
	{
		Key:    IndicatorUnemployment,
		Column: "Unemployment rate",
		Get:    func(r *YearRecord) *float64 { return r.Unemployment },
		Set:    func(r *YearRecord, v *float64) { r.Unemployment = v },
	},
	{
		Key:    IndicatorHousePrice,
		Column: "House price index",
		Get:    func(r *YearRecord) *float64 { return r.HousePrice },
		Set:    func(r *YearRecord, v *float64) { r.HousePrice = v },
	},
}

// Indicators returns the fixed, ordered list of indicator keys.
func Indicators() []Indicator {
	keys := make([]Indicator, len(indicatorBindings))
	for i, b := range indicatorBindings {
		keys[i] = b.Key
	}
	return keys
}

// ColumnFor returns the source column label for an indicator key. The
// second result is false for unknown keys.
func ColumnFor(key Indicator) (string, bool) {
	for _, b := range indicatorBindings {
		if b.Key == key {
			return b.Column, true
		}
	}
	return "", false
}

// IsIndicator reports whether key names a tracked indicator.
func IsIndicator(key Indicator) bool {
	_, ok := ColumnFor(key)
	return ok
}

// Value returns the indicator's value for this record, or nil when the
// indicator is missing for the year or the key is unknown.
func (r *YearRecord) Value(key Indicator) *float64 {
	for _, b := range indicatorBindings {
		if b.Key == key {
			return b.Get(r)
		}
	}
	return nil
}

// setValue assigns an indicator field by key. Unknown keys are ignored.
func (r *YearRecord) setValue(key Indicator, v *float64) {
	for _, b := range indicatorBindings {
		if b.Key == key {
			b.Set(r, v)
			return
		}
	}
}
