package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ukmcli/internal/config"
	"ukmcli/internal/millennium"
)

// JSONWriter exports enriched dataset artifacts as JSON documents.
type JSONWriter struct {
	cfg *config.Config
}

// NewJSONWriter creates a new JSON writer instance
func NewJSONWriter(cfg *config.Config) *JSONWriter {
	return &JSONWriter{cfg: cfg}
}

// DatasetDocument is the JSON export envelope.
type DatasetDocument struct {
	GeneratedAt  time.Time                                         `json:"generated_at"`
	Summary      *millennium.DatasetSummary                        `json:"summary"`
	Records      []millennium.YearRecord                           `json:"records"`
	ChangePoints []millennium.ChangePoint                          `json:"change_points"`
	Segments     map[millennium.PeriodKey]*millennium.PeriodSegment `json:"segments,omitempty"`
}

// WriteDataset writes the full enriched dataset to a JSON file.
func (w *JSONWriter) WriteDataset(filePath string, doc DatasetDocument) error {
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now().UTC()
	}

	fullPath := w.cfg.ExportPath(filePath)

	slog.Info("Writing JSON file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(doc.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	return nil
}
