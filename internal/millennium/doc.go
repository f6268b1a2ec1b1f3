// Package millennium implements the data enrichment pipeline for the
// UK millennium macroeconomic dataset (1209-2016).
//
// The pipeline is a single-pass, in-memory batch transform:
//
//	raw rows -> parse/clean -> derived growth metrics -> change-point
//	detection -> period classification -> per-period statistics ->
//	dataset summary
//
// # Core Components
//
//   - types.go: record, change-point, segment, and summary structures
//   - indicators.go: the fixed mapping of eleven indicator keys to
//     their source column labels
//   - periods.go: the five named historical periods partitioning
//     1209-2016 and year classification
//   - parser.go: tolerant row and value parsing (bad years drop the
//     row, bad values become nil)
//   - enrich.go: year-over-year growth rates and change-point
//     attachment
//   - changepoint.go: sliding-window GDP acceleration detection plus
//     the curated historical event list
//   - segment.go: per-period slicing, data quality tiers, and trends
//   - summary.go: top-level dataset summary with empty-input guard
//   - pipeline.go: orchestration and the read-only query operations
//
// # Usage Example
//
//	pipeline := millennium.NewPipeline(slog.Default())
//	if err := pipeline.Run(ctx, rows); err != nil {
//	    log.Fatal(err)
//	}
//
//	medieval, _ := pipeline.DataForPeriod(millennium.PeriodMedieval)
//	gdp, _ := pipeline.TimeSeriesForIndicator(millennium.IndicatorGDPReal, 1800, 1850)
//
// # Failure Semantics
//
// Only two operations return errors: Run, when parsing yields zero
// valid records, and the query operations on unknown period or
// indicator keys. Everything else degrades gracefully: rows with
// non-numeric years are skipped, unparsable values become nil, and
// trends are omitted when a period has too few observations.
//
// Period bounds are inclusive on both ends, so boundary years (1500,
// 1750, 1900, 1950) belong to both adjacent periods in segmentation.
// Classification walks the period list in order and assigns the
// earlier period.
package millennium
