package services

import "errors"

// Dataset service errors
var (
	ErrDatasetNotLoaded  = errors.New("dataset not loaded")
	ErrPeriodNotFound    = errors.New("period not found")
	ErrIndicatorNotFound = errors.New("indicator not found")
	ErrNoSeriesData      = errors.New("no series data available")
)
