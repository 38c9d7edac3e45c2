package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

func TestRecommendFlags_Request(t *testing.T) {
	f := recommendFlags{skills: "Go", location: "USA", maxHourly: math.MaxFloat64, maxBudget: math.MaxFloat64}
	req, err := f.request(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit() != 7 {
		t.Errorf("limit = %d, want default 7", req.Limit())
	}
	if req.Query().Text() != "Go USA True" {
		t.Errorf("query text = %q", req.Query().Text())
	}

	f.limit = 3
	if req, _ = f.request(7); req.Limit() != 3 {
		t.Errorf("limit = %d, want 3", req.Limit())
	}
}

func TestRecommendFlags_NegativeBound(t *testing.T) {
	f := recommendFlags{minBudget: -1, maxHourly: math.MaxFloat64, maxBudget: math.MaxFloat64}
	_, err := f.request(10)
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUserError(t *testing.T) {
	if got := userError(domain.ErrDataUnavailable).Error(); got != domain.MsgDataUnavailable {
		t.Errorf("data unavailable = %q", got)
	}
	if got := userError(errors.New("boom")).Error(); got != domain.MsgInternal {
		t.Errorf("internal = %q", got)
	}
	invalid := errors.Join(domain.ErrInvalidRequest, errors.New("min_budget must be >= 0"))
	if got := userError(invalid).Error(); !strings.Contains(got, "min_budget") {
		t.Errorf("validation detail lost: %q", got)
	}
}

func TestRenderRecommendations(t *testing.T) {
	items := []result.Scored{
		result.New(job.New("Engineer", "USA", false, 0, 0, 50000), 0.8123, 0),
		result.New(job.New("Writer", "UK", true, 10, 20, 0), 0.1, 1),
	}
	out := renderRecommendations(items)
	for _, want := range []string{"Engineer", "Writer", "0.8123", "50000", "10-20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Engineer") > strings.Index(out, "Writer") {
		t.Error("rows must keep ranking order")
	}
}

func TestRenderStats_EmptyStd(t *testing.T) {
	c := job.FromRecords([]job.Record{job.New("A", "B", false, 0, 0, 100)})
	out := renderStats(recommenduc.CorpusStats{Records: 1, Fingerprint: "abc", Salary: c.Stats()})
	if !strings.Contains(out, "1 postings") || !strings.Contains(out, "budget") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "-") {
		t.Error("NaN std should render as -")
	}
}

func TestRenderModel(t *testing.T) {
	out := renderModel(recommenduc.ModelInfo{
		ID: "m-1", FittedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), VocabularySize: 12, Documents: 3, MaxFeatures: 5000,
	})
	for _, want := range []string{"m-1", "2024-01-02T03:04:05Z", "5000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCommands_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "jobs.csv")
	data := "title,country,is_hourly,hourly_low,hourly_high,budget\n" +
		"Engineer,USA,False,,,50000\n" +
		"Writer,UK,True,10,20,\n"
	if err := os.WriteFile(corpus, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfgFile := filepath.Join(dir, "test.yaml")
	yaml := "database:\n  driver: sqlite\n  path: " + filepath.Join(dir, "jobmatch.db") + "\n" +
		"corpus:\n  path: " + corpus + "\n" +
		"logging:\n  level: error\n"
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cfgPath, corpusPath, envName, debug = "", "", "", false
		recFlags = recommendFlags{}
		fitReset = false
	})

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append(args, "--config", cfgFile))
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if out := run("fit"); !strings.Contains(out, "vocabulary") {
		t.Errorf("fit output:\n%s", out)
	}
	if out := run("recommend", "--skills", "Engineer", "--location", "USA"); !strings.Contains(out, "Engineer") {
		t.Errorf("recommend output:\n%s", out)
	}
	if out := run("recommend", "--skills", "x", "--min-budget", "1000000"); !strings.Contains(out, domain.MsgNoMatches) {
		t.Errorf("expected no-matches notice:\n%s", out)
	}
	if out := run("stats"); !strings.Contains(out, "2 postings") {
		t.Errorf("stats output:\n%s", out)
	}
	if out := run("fit", "--reset"); !strings.Contains(out, "vocabulary") {
		t.Errorf("fit --reset output:\n%s", out)
	}
}
