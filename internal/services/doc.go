// Package services holds the application service layer between the
// HTTP transport and the enrichment pipeline. DatasetService owns the
// loaded dataset and exposes query operations; HealthService reports
// readiness. Services translate pipeline errors into the sentinel
// errors the transport layer maps onto HTTP responses.
package services
