package millennium

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for the query operations.
var (
	ErrUnknownPeriod    = errors.New("unknown period key")
	ErrUnknownIndicator = errors.New("unknown indicator key")
)

// Pipeline runs the full enrichment sequence over a raw dataset and
// holds the derived state for read-only querying. A Pipeline is owned
// by its creator; there is no shared instance. Re-running recomputes
// everything from the new input.
type Pipeline struct {
	logger *slog.Logger
	runID  string

	records      []YearRecord
	changePoints []ChangePoint
	segments     map[PeriodKey]*PeriodSegment
	summary      *DatasetSummary
}

// NewPipeline creates an empty pipeline. Call Run before querying.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger: logger.With(slog.String("component", "millennium_pipeline")),
	}
}

// Run executes parse, enrich, change-point detection, segmentation, and
// summarization over the raw rows. The only hard failure is an empty
// result set after parsing; every other anomaly degrades to nil fields.
func (p *Pipeline) Run(ctx context.Context, rows []RawRow) error {
	p.runID = uuid.NewString()
	started := time.Now()

	p.logger.InfoContext(ctx, "starting enrichment run",
		slog.String("run_id", p.runID),
		slog.Int("raw_rows", len(rows)))

	records := ParseRows(rows, p.logger)
	if len(records) == 0 {
		return fmt.Errorf("enrichment run %s: %w", p.runID, ErrEmptyDataset)
	}

	p.records = Enrich(records, p.logger)
	p.changePoints = DetectChangePoints(p.records)
	p.segments = SegmentByPeriod(p.records, p.changePoints)

	summary, err := Summarize(p.records)
	if err != nil {
		return fmt.Errorf("summarize dataset: %w", err)
	}
	p.summary = summary

	p.logger.InfoContext(ctx, "enrichment run complete",
		slog.String("run_id", p.runID),
		slog.Int("records", len(p.records)),
		slog.Int("change_points", len(p.changePoints)),
		slog.Int("year_min", summary.YearRange.Min),
		slog.Int("year_max", summary.YearRange.Max),
		slog.Duration("elapsed", time.Since(started)))

	return nil
}

// RunID identifies the most recent Run invocation.
func (p *Pipeline) RunID() string { return p.runID }

// Records returns the full enriched record sequence, sorted ascending
// by year.
func (p *Pipeline) Records() []YearRecord { return p.records }

// ChangePoints returns the merged detected and curated change-point
// list, sorted ascending by year.
func (p *Pipeline) ChangePoints() []ChangePoint { return p.changePoints }

// Segments returns the per-period segmentation mapping.
func (p *Pipeline) Segments() map[PeriodKey]*PeriodSegment { return p.segments }

// Summary returns the dataset summary, or nil before a successful Run.
func (p *Pipeline) Summary() *DatasetSummary { return p.summary }

// DataForPeriod returns the record slice for one period, optionally
// projected to year plus the requested indicator keys. With no
// indicators requested, full records are returned.
func (p *Pipeline) DataForPeriod(key PeriodKey, indicators ...Indicator) ([]YearRecord, error) {
	segment, ok := p.segments[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, key)
	}

	if len(indicators) == 0 {
		return segment.Records, nil
	}

	for _, ind := range indicators {
		if !IsIndicator(ind) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, ind)
		}
	}

	projected := make([]YearRecord, len(segment.Records))
	for i := range segment.Records {
		rec := YearRecord{Year: segment.Records[i].Year}
		for _, ind := range indicators {
			rec.setValue(ind, segment.Records[i].Value(ind))
		}
		projected[i] = rec
	}
	return projected, nil
}

// TimeSeriesForIndicator returns {year, value} pairs for every record
// where the indicator is present, optionally bounded by an inclusive
// year range. Pass zero for an unbounded end.
func (p *Pipeline) TimeSeriesForIndicator(key Indicator, from, to int) ([]SeriesPoint, error) {
	if !IsIndicator(key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, key)
	}

	var series []SeriesPoint
	for i := range p.records {
		rec := &p.records[i]
		if from != 0 && rec.Year < from {
			continue
		}
		if to != 0 && rec.Year > to {
			continue
		}
		if v := rec.Value(key); v != nil {
			series = append(series, SeriesPoint{Year: rec.Year, Value: *v})
		}
	}
	return series, nil
}
