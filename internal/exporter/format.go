package exporter

import (
	"fmt"
	"strconv"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	// Values like 13.4 should appear as 13.40 in CSV
	return fmt.Sprintf("%.2f", f)
}

// formatOptional formats a possibly missing observation; nil exports
// as an empty cell.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
