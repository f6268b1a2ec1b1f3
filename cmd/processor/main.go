// Command processor runs the enrichment pipeline over a millennium
// dataset table and writes the results to CSV and JSON export files
// without starting the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ukmcli/internal/config"
	"ukmcli/internal/exporter"
	"ukmcli/internal/infrastructure"
	"ukmcli/internal/millennium"
	"ukmcli/internal/services"
)

func main() {
	source := flag.String("source", "", "dataset source: CSV path, HTTP(S) URL, or .xlsx workbook (defaults to the configured source)")
	out := flag.String("out", "millennium", "base name for export files, resolved inside the export directory")
	format := flag.String("format", "both", "export format: csv, json, or both")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *source == "" {
		*source = cfg.Dataset.Source
	}

	logger.Info("Starting millennium dataset processing",
		slog.String("source", *source),
		slog.String("out", *out),
		slog.String("format", *format))

	if err := run(context.Background(), cfg, logger, *source, *out, *format); err != nil {
		logger.Error("Processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Processing complete",
		slog.String("export_dir", cfg.Paths.ExportDir))
}

// run loads the dataset, runs the enrichment pipeline, and writes the
// requested export artifacts.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, source, out, format string) error {
	if format != "csv" && format != "json" && format != "both" {
		return fmt.Errorf("unsupported format %q: want csv, json, or both", format)
	}

	svc := services.NewDatasetService(cfg, logger)
	if err := svc.LoadFrom(ctx, source); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	records, err := svc.Records(ctx)
	if err != nil {
		return err
	}
	points, err := svc.ChangePoints(ctx)
	if err != nil {
		return err
	}

	segments := make(map[millennium.PeriodKey]*millennium.PeriodSegment)
	for _, period := range millennium.Periods() {
		segment, err := svc.PeriodSegment(ctx, period.Key)
		if err != nil {
			continue
		}
		segments[period.Key] = segment
	}

	if format == "csv" || format == "both" {
		csvWriter := exporter.NewCSVWriter(cfg)
		if err := csvWriter.WriteRecords(out+".csv", records); err != nil {
			return fmt.Errorf("write records: %w", err)
		}
		if err := csvWriter.WriteChangePoints(out+"_changepoints.csv", points); err != nil {
			return fmt.Errorf("write change points: %w", err)
		}
		if err := csvWriter.WritePeriodStats(out+"_periods.csv", segments); err != nil {
			return fmt.Errorf("write period stats: %w", err)
		}
	}

	if format == "json" || format == "both" {
		summary, err := svc.Summary(ctx)
		if err != nil {
			return err
		}

		jsonWriter := exporter.NewJSONWriter(cfg)
		doc := exporter.DatasetDocument{
			Summary:      summary,
			Records:      records,
			ChangePoints: points,
			Segments:     segments,
		}
		if err := jsonWriter.WriteDataset(out+".json", doc); err != nil {
			return fmt.Errorf("write dataset document: %w", err)
		}
	}

	return nil
}
