package http

import (
	"context"
	"time"

	"ukmcli/internal/millennium"
	"ukmcli/internal/services"
)

// DatasetServiceInterface defines the dataset operations the handlers
// depend on. The concrete implementation is services.DatasetService;
// tests substitute fakes.
type DatasetServiceInterface interface {
	Loaded() bool
	LoadedAt() time.Time
	Summary(ctx context.Context) (*millennium.DatasetSummary, error)
	Records(ctx context.Context) ([]millennium.YearRecord, error)
	ChangePoints(ctx context.Context) ([]millennium.ChangePoint, error)
	Periods(ctx context.Context) ([]millennium.Period, error)
	PeriodSegment(ctx context.Context, key millennium.PeriodKey) (*millennium.PeriodSegment, error)
	PeriodRecords(ctx context.Context, key millennium.PeriodKey, indicators []millennium.Indicator) ([]millennium.YearRecord, error)
	Indicators(ctx context.Context) ([]millennium.Indicator, error)
	Series(ctx context.Context, key millennium.Indicator, from, to int) ([]millennium.SeriesPoint, error)
}

// HealthServiceInterface defines the health check surface.
type HealthServiceInterface interface {
	Check(ctx context.Context) *services.HealthStatus
}
