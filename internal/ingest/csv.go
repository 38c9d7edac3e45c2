package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
)

// CSVLoader reads postings from a CSV file with a header row.
// Columns are looked up by name; absent columns read as missing values.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a CSV loader for path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads the whole file.
func (l *CSVLoader) Load(ctx context.Context) ([]job.Raw, error) {
	f, err := os.Open(filepath.Clean(l.path))
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(ctx, f)
}

// ReadCSV parses postings from r.
func ReadCSV(ctx context.Context, r io.Reader) ([]job.Raw, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv is empty")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	cell := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var rows []job.Raw
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		rows = append(rows, job.Raw{
			Title:      parseString(cell(rec, ColTitle)),
			Country:    parseString(cell(rec, ColCountry)),
			IsHourly:   parseBool(cell(rec, ColIsHourly)),
			HourlyLow:  parseFloat(cell(rec, ColHourlyLow)),
			HourlyHigh: parseFloat(cell(rec, ColHourlyHigh)),
			Budget:     parseFloat(cell(rec, ColBudget)),
		})
	}
	return rows, nil
}
