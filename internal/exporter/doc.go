// Package exporter writes enriched dataset artifacts to disk. CSV
// exports carry a UTF-8 BOM so spreadsheets open them cleanly; JSON
// exports wrap the records, change points, and summary in a single
// timestamped document.
package exporter
