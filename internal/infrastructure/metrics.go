package infrastructure

import (
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics holds all application-specific metrics
type BusinessMetrics struct {
	// HTTP metrics
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPActiveRequests  metric.Int64UpDownCounter

	// Dataset pipeline metrics
	DatasetLoadsTotal    metric.Int64Counter
	DatasetLoadFailures  metric.Int64Counter
	PipelineRunDuration  metric.Float64Histogram
	RowsParsedTotal      metric.Int64Counter
	RowsDroppedTotal     metric.Int64Counter
	ChangePointsDetected metric.Int64Counter
}

// CreateBusinessMetrics creates application-specific metrics
func CreateBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	httpRequestsTotal, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	httpRequestDuration, err := meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	httpActiveRequests, err := meter.Int64UpDownCounter(
		"http_active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	datasetLoadsTotal, err := meter.Int64Counter(
		"dataset_loads_total",
		metric.WithDescription("Total number of dataset loads"),
	)
	if err != nil {
		return nil, err
	}

	datasetLoadFailures, err := meter.Int64Counter(
		"dataset_load_failures_total",
		metric.WithDescription("Total number of failed dataset loads"),
	)
	if err != nil {
		return nil, err
	}

	pipelineRunDuration, err := meter.Float64Histogram(
		"pipeline_run_duration_seconds",
		metric.WithDescription("Enrichment pipeline run duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	rowsParsedTotal, err := meter.Int64Counter(
		"rows_parsed_total",
		metric.WithDescription("Total number of year rows parsed into records"),
	)
	if err != nil {
		return nil, err
	}

	rowsDroppedTotal, err := meter.Int64Counter(
		"rows_dropped_total",
		metric.WithDescription("Total number of source rows dropped during parsing"),
	)
	if err != nil {
		return nil, err
	}

	changePointsDetected, err := meter.Int64Counter(
		"change_points_detected_total",
		metric.WithDescription("Total number of change points detected"),
	)
	if err != nil {
		return nil, err
	}

	return &BusinessMetrics{
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		HTTPActiveRequests:  httpActiveRequests,

		DatasetLoadsTotal:    datasetLoadsTotal,
		DatasetLoadFailures:  datasetLoadFailures,
		PipelineRunDuration:  pipelineRunDuration,
		RowsParsedTotal:      rowsParsedTotal,
		RowsDroppedTotal:     rowsDroppedTotal,
		ChangePointsDetected: changePointsDetected,
	}, nil
}
