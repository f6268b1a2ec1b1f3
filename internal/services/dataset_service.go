package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ukmcli/internal/config"
	"ukmcli/internal/dataset"
	"ukmcli/internal/infrastructure"
	"ukmcli/internal/millennium"
)

// DatasetService owns the enriched millennium dataset and answers
// queries against it. Load replaces the whole dataset atomically;
// readers see either the previous run or the new one, never a mix.
type DatasetService struct {
	config *config.Config
	logger *slog.Logger

	mu       sync.RWMutex
	pipeline *millennium.Pipeline
	loadedAt time.Time
	metrics  *infrastructure.BusinessMetrics
}

// NewDatasetService creates a new dataset service
func NewDatasetService(cfg *config.Config, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("DatasetService initialized",
		slog.String("source", cfg.Dataset.Source),
		slog.Bool("load_on_start", cfg.Dataset.LoadOnStart))

	return &DatasetService{
		config: cfg,
		logger: logger,
	}
}

// SetMetrics attaches pipeline metrics. Safe to leave unset; loads
// then run unobserved.
func (s *DatasetService) SetMetrics(metrics *infrastructure.BusinessMetrics) {
	s.mu.Lock()
	s.metrics = metrics
	s.mu.Unlock()
}

// Load fetches the configured source, runs the enrichment pipeline,
// and swaps in the result.
func (s *DatasetService) Load(ctx context.Context) error {
	return s.LoadFrom(ctx, s.config.Dataset.Source)
}

// LoadFrom fetches rows from an explicit source. The workbook loader
// handles .xlsx paths; everything else goes through the CSV loader.
func (s *DatasetService) LoadFrom(ctx context.Context, source string) error {
	started := time.Now()

	var rows []millennium.RawRow
	var err error

	if strings.HasSuffix(strings.ToLower(source), ".xlsx") {
		rows, err = dataset.LoadWorkbook(source, s.logger)
	} else {
		rows, err = dataset.LoadCSV(ctx, source, s.logger)
	}
	if err != nil {
		s.recordLoad(ctx, started, nil, 0)
		return fmt.Errorf("dataset service: %w", err)
	}

	pipeline := millennium.NewPipeline(s.logger)
	if err := pipeline.Run(ctx, rows); err != nil {
		s.recordLoad(ctx, started, nil, len(rows))
		return fmt.Errorf("dataset service: %w", err)
	}

	s.mu.Lock()
	s.pipeline = pipeline
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.recordLoad(ctx, started, pipeline, len(rows))

	s.logger.InfoContext(ctx, "dataset ready",
		slog.String("source", source),
		slog.String("run_id", pipeline.RunID()),
		slog.Int("records", len(pipeline.Records())))

	return nil
}

// recordLoad updates the pipeline metrics for one load attempt. A nil
// pipeline marks a failure.
func (s *DatasetService) recordLoad(ctx context.Context, started time.Time, pipeline *millennium.Pipeline, rawRows int) {
	s.mu.RLock()
	metrics := s.metrics
	s.mu.RUnlock()
	if metrics == nil {
		return
	}

	metrics.DatasetLoadsTotal.Add(ctx, 1)
	metrics.PipelineRunDuration.Record(ctx, time.Since(started).Seconds())

	if pipeline == nil {
		metrics.DatasetLoadFailures.Add(ctx, 1)
		return
	}

	parsed := len(pipeline.Records())
	metrics.RowsParsedTotal.Add(ctx, int64(parsed))
	if dropped := rawRows - parsed; dropped > 0 {
		metrics.RowsDroppedTotal.Add(ctx, int64(dropped))
	}
	metrics.ChangePointsDetected.Add(ctx, int64(len(pipeline.ChangePoints())))
}

// Loaded reports whether a dataset run is available.
func (s *DatasetService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipeline != nil
}

// LoadedAt returns the time of the last successful load, zero when
// nothing is loaded.
func (s *DatasetService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// current returns the active pipeline or ErrDatasetNotLoaded.
func (s *DatasetService) current() (*millennium.Pipeline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pipeline == nil {
		return nil, ErrDatasetNotLoaded
	}
	return s.pipeline, nil
}

// Summary returns the dataset-level summary.
func (s *DatasetService) Summary(ctx context.Context) (*millennium.DatasetSummary, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}
	return p.Summary(), nil
}

// Records returns every enriched year record in ascending order.
func (s *DatasetService) Records(ctx context.Context) ([]millennium.YearRecord, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}
	return p.Records(), nil
}

// ChangePoints returns all detected and curated change points.
func (s *DatasetService) ChangePoints(ctx context.Context) ([]millennium.ChangePoint, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}
	return p.ChangePoints(), nil
}

// Periods returns the defined historical periods.
func (s *DatasetService) Periods(ctx context.Context) ([]millennium.Period, error) {
	if _, err := s.current(); err != nil {
		return nil, err
	}
	return millennium.Periods(), nil
}

// PeriodSegment returns the records, change points, and statistics for
// one historical period.
func (s *DatasetService) PeriodSegment(ctx context.Context, key millennium.PeriodKey) (*millennium.PeriodSegment, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}

	segment, ok := p.Segments()[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPeriodNotFound, key)
	}
	return segment, nil
}

// PeriodRecords returns a period's records, optionally projected down
// to a subset of indicators.
func (s *DatasetService) PeriodRecords(ctx context.Context, key millennium.PeriodKey, indicators []millennium.Indicator) ([]millennium.YearRecord, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}

	records, err := p.DataForPeriod(key, indicators...)
	if err != nil {
		switch {
		case errors.Is(err, millennium.ErrUnknownPeriod):
			return nil, fmt.Errorf("%w: %s", ErrPeriodNotFound, key)
		case errors.Is(err, millennium.ErrUnknownIndicator):
			return nil, fmt.Errorf("%w: %v", ErrIndicatorNotFound, err)
		default:
			return nil, err
		}
	}
	return records, nil
}

// Indicators returns the tracked indicator keys.
func (s *DatasetService) Indicators(ctx context.Context) ([]millennium.Indicator, error) {
	if _, err := s.current(); err != nil {
		return nil, err
	}
	return millennium.Indicators(), nil
}

// Series returns one indicator's time series bounded by the inclusive
// year range; zero bounds are open.
func (s *DatasetService) Series(ctx context.Context, key millennium.Indicator, from, to int) ([]millennium.SeriesPoint, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}

	series, err := p.TimeSeriesForIndicator(key, from, to)
	if err != nil {
		if errors.Is(err, millennium.ErrUnknownIndicator) {
			return nil, fmt.Errorf("%w: %s", ErrIndicatorNotFound, key)
		}
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSeriesData, key)
	}
	return series, nil
}
