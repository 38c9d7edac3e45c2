// Package ingest reads raw job postings from tabular files.
package ingest

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
)

// Source column names.
const (
	ColTitle      = "title"
	ColCountry    = "country"
	ColIsHourly   = "is_hourly"
	ColHourlyLow  = "hourly_low"
	ColHourlyHigh = "hourly_high"
	ColBudget     = "budget"
)

// Loader reads every posting of a source, in source order.
type Loader interface {
	Load(ctx context.Context) ([]job.Raw, error)
}

// New picks a loader by file extension.
func New(path string) (Loader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return NewCSVLoader(path), nil
	case ".parquet":
		return NewParquetLoader(path), nil
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", ext)
	}
}

// parseString treats an empty cell as missing.
func parseString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseBool accepts true/false, 1/0 and yes/no. Anything else is missing.
func parseBool(s string) *bool {
	var v bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "1.0":
		v = true
	case "false", "0", "no", "0.0":
		v = false
	default:
		return nil
	}
	return &v
}

// parseFloat treats empty, unparsable and non-finite cells as missing.
func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
