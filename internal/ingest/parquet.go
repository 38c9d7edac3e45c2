package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
)

const parquetBatchSize = 1000

// ParquetLoader reads postings from a Parquet file.
// Columns are resolved by name; absent columns and null values read as missing.
type ParquetLoader struct {
	path string
}

// NewParquetLoader creates a Parquet loader for path.
func NewParquetLoader(path string) *ParquetLoader {
	return &ParquetLoader{path: path}
}

// jobColumns holds leaf column indices, -1 when absent.
type jobColumns struct {
	title, country, isHourly, hourlyLow, hourlyHigh, budget int
}

func resolveJobColumns(pf *parquet.File) jobColumns {
	cols := jobColumns{-1, -1, -1, -1, -1, -1}
	for i, path := range pf.Schema().Columns() {
		if len(path) == 0 {
			continue
		}
		switch path[0] {
		case ColTitle:
			cols.title = i
		case ColCountry:
			cols.country = i
		case ColIsHourly:
			cols.isHourly = i
		case ColHourlyLow:
			cols.hourlyLow = i
		case ColHourlyHigh:
			cols.hourlyHigh = i
		case ColBudget:
			cols.budget = i
		}
	}
	return cols
}

// Load reads every row group in order.
func (l *ParquetLoader) Load(ctx context.Context) ([]job.Raw, error) {
	f, err := os.Open(filepath.Clean(l.path))
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	cols := resolveJobColumns(pf)
	var out []job.Raw
	for _, rg := range pf.RowGroups() {
		rows := parquet.NewRowGroupReader(rg)
		buf := make([]parquet.Row, parquetBatchSize)
		for {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("read parquet: %w", err)
			}
			n, readErr := rows.ReadRows(buf)
			for i := 0; i < n; i++ {
				out = append(out, rowToRaw(buf[i], cols))
			}
			if readErr != nil {
				if errors.Is(readErr, io.EOF) {
					break
				}
				return nil, fmt.Errorf("read parquet rows: %w", readErr)
			}
		}
	}
	return out, nil
}

func rowToRaw(row parquet.Row, cols jobColumns) job.Raw {
	var r job.Raw
	for _, v := range row {
		if v.IsNull() {
			continue
		}
		switch v.Column() {
		case cols.title:
			r.Title = parseString(v.String())
		case cols.country:
			r.Country = parseString(v.String())
		case cols.isHourly:
			r.IsHourly = valueBool(v)
		case cols.hourlyLow:
			r.HourlyLow = valueFloat(v)
		case cols.hourlyHigh:
			r.HourlyHigh = valueFloat(v)
		case cols.budget:
			r.Budget = valueFloat(v)
		}
	}
	return r
}

func valueBool(v parquet.Value) *bool {
	if v.Kind() == parquet.Boolean {
		b := v.Boolean()
		return &b
	}
	return parseBool(v.String())
}

func valueFloat(v parquet.Value) *float64 {
	var f float64
	switch v.Kind() {
	case parquet.Double:
		f = v.Double()
	case parquet.Float:
		f = float64(v.Float())
	case parquet.Int32:
		f = float64(v.Int32())
	case parquet.Int64:
		f = float64(v.Int64())
	default:
		return parseFloat(v.String())
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
