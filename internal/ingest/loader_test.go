package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
)

func TestReadCSV_AllColumns(t *testing.T) {
	in := "title,country,is_hourly,hourly_low,hourly_high,budget\n" +
		"Engineer,USA,False,,,50000\n" +
		"Writer,UK,True,10,20,\n"

	rows, err := ReadCSV(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	c := job.NewCorpus(rows)
	if got := c.At(0).CombinedText(); got != "Engineer USA false" {
		t.Errorf("row 0 combined = %q", got)
	}
	if c.At(0).Budget() != 50000 || c.At(0).HourlyLow() != 0 {
		t.Errorf("row 0 numerics = %v/%v", c.At(0).Budget(), c.At(0).HourlyLow())
	}
	if got := c.At(1).CombinedText(); got != "Writer UK true" {
		t.Errorf("row 1 combined = %q", got)
	}
	if c.At(1).HourlyHigh() != 20 {
		t.Errorf("row 1 hourly_high = %v", c.At(1).HourlyHigh())
	}
}

func TestReadCSV_MissingColumnsAndCells(t *testing.T) {
	in := "id,title,budget,extra\n" +
		"1,,abc,x\n" +
		"2,Designer\n"

	rows, err := ReadCSV(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := job.NewCorpus(rows)
	if got := c.At(0).CombinedText(); got != "Unknown Unknown false" {
		t.Errorf("row 0 combined = %q", got)
	}
	if c.At(0).Budget() != 0 {
		t.Errorf("unparsable budget should default to 0, got %v", c.At(0).Budget())
	}
	if got := c.At(1).CombinedText(); got != "Designer Unknown false" {
		t.Errorf("row 1 combined = %q", got)
	}
}

func TestReadCSV_InfiniteCellsAreMissing(t *testing.T) {
	in := "title,country,is_hourly,hourly_low,hourly_high,budget\n" +
		"Engineer,USA,True,inf,-Infinity,1e400\n"

	rows, err := ReadCSV(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].HourlyLow != nil || rows[0].HourlyHigh != nil || rows[0].Budget != nil {
		t.Fatalf("non-finite cells should be missing, got %v/%v/%v",
			rows[0].HourlyLow, rows[0].HourlyHigh, rows[0].Budget)
	}
	c := job.NewCorpus(rows)
	if c.At(0).HourlyLow() != 0 || c.At(0).HourlyHigh() != 0 || c.At(0).Budget() != 0 {
		t.Errorf("numerics = %v/%v/%v, want zeros", c.At(0).HourlyLow(), c.At(0).HourlyHigh(), c.At(0).Budget())
	}
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	rows, err := ReadCSV(context.Background(), strings.NewReader("title,country\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(context.Background(), strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	in := "title,country\n\"unterminated,USA\n"
	if _, err := ReadCSV(context.Background(), strings.NewReader(in)); err == nil {
		t.Fatal("expected error for malformed csv")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want *bool
	}{
		{"True", ptr(true)},
		{"false", ptr(false)},
		{"1", ptr(true)},
		{"no", ptr(false)},
		{"", nil},
		{"maybe", nil},
	}
	for _, tt := range tests {
		got := parseBool(tt.in)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCSVLoader_FileMissing(t *testing.T) {
	l := NewCSVLoader(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestNew_ByExtension(t *testing.T) {
	if l, err := New("data.csv"); err != nil {
		t.Errorf("csv: %v", err)
	} else if _, ok := l.(*CSVLoader); !ok {
		t.Errorf("csv: got %T", l)
	}
	if l, err := New("data.PARQUET"); err != nil {
		t.Errorf("parquet: %v", err)
	} else if _, ok := l.(*ParquetLoader); !ok {
		t.Errorf("parquet: got %T", l)
	}
	if _, err := New("data.xlsx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

type parquetJob struct {
	Title      *string  `parquet:"title,optional"`
	Country    *string  `parquet:"country,optional"`
	IsHourly   *bool    `parquet:"is_hourly,optional"`
	HourlyLow  *float64 `parquet:"hourly_low,optional"`
	HourlyHigh *float64 `parquet:"hourly_high,optional"`
	Budget     *float64 `parquet:"budget,optional"`
}

func TestParquetLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.parquet")
	err := parquet.WriteFile(path, []parquetJob{
		{Title: ptr("Engineer"), Country: ptr("USA"), IsHourly: ptr(false), Budget: ptr(50000.0)},
		{Title: ptr("Writer"), IsHourly: ptr(true), HourlyLow: ptr(10.0), HourlyHigh: ptr(20.0)},
	})
	if err != nil {
		t.Fatalf("write parquet: %v", err)
	}

	rows, err := NewParquetLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	c := job.NewCorpus(rows)
	if got := c.At(0).CombinedText(); got != "Engineer USA false" {
		t.Errorf("row 0 combined = %q", got)
	}
	if c.At(0).Budget() != 50000 {
		t.Errorf("row 0 budget = %v", c.At(0).Budget())
	}
	if got := c.At(1).CombinedText(); got != "Writer Unknown true" {
		t.Errorf("row 1 combined = %q", got)
	}
	if c.At(1).HourlyLow() != 10 || c.At(1).HourlyHigh() != 20 {
		t.Errorf("row 1 hourly = %v/%v", c.At(1).HourlyLow(), c.At(1).HourlyHigh())
	}
}

func TestParquetLoader_NotParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.parquet")
	if err := os.WriteFile(path, []byte("title,country\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewParquetLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for non-parquet file")
	}
}

func ptr[T any](v T) *T { return &v }
