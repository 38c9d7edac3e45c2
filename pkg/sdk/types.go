package jobmatch

import (
	"math"
	"time"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

// Unbounded disables a max bound in Preferences.
const Unbounded = math.MaxFloat64

// Job is one posting of an in-memory corpus (see WithJobs).
type Job struct {
	Title      string
	Country    string
	IsHourly   bool
	HourlyLow  float64
	HourlyHigh float64
	Budget     float64
}

// Preferences is what a job seeker asks for.
// All four salary bounds apply to every posting. Zero max bounds match only
// postings with zero rates; use Unbounded to switch a max bound off.
type Preferences struct {
	Skills        string
	Location      string
	MinHourlyRate float64
	MaxHourlyRate float64
	MinBudget     float64
	MaxBudget     float64
	// Limit caps the result size. 0 means the client default.
	Limit int
	// ForceRefit reloads the corpus and refits before scoring.
	ForceRefit bool
}

// Recommendation is one ranked posting.
type Recommendation struct {
	Title      string
	Country    string
	IsHourly   bool
	HourlyLow  float64
	HourlyHigh float64
	Budget     float64
	Similarity float64
}

// ModelInfo describes the model serving requests.
type ModelInfo struct {
	ID             string
	FittedAt       time.Time
	Fingerprint    string
	VocabularySize int
	Documents      int
	MaxFeatures    int
}

// Summary describes one salary column. Std is NaN for fewer than two postings.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// CorpusStats describes the loaded corpus.
type CorpusStats struct {
	Records     int
	Fingerprint string
	HourlyLow   Summary
	HourlyHigh  Summary
	Budget      Summary
}

// --- converters ---

func toRaw(j Job) job.Raw {
	return job.Raw{
		Title:      &j.Title,
		Country:    &j.Country,
		IsHourly:   &j.IsHourly,
		HourlyLow:  &j.HourlyLow,
		HourlyHigh: &j.HourlyHigh,
		Budget:     &j.Budget,
	}
}

func toRecommendation(s *result.Scored) Recommendation {
	r := s.Record()
	return Recommendation{
		Title:      r.Title(),
		Country:    r.Country(),
		IsHourly:   r.IsHourly(),
		HourlyLow:  r.HourlyLow(),
		HourlyHigh: r.HourlyHigh(),
		Budget:     r.Budget(),
		Similarity: s.Similarity(),
	}
}

func toModelInfo(m recommenduc.ModelInfo) ModelInfo {
	return ModelInfo{
		ID:             m.ID,
		FittedAt:       m.FittedAt,
		Fingerprint:    m.Fingerprint,
		VocabularySize: m.VocabularySize,
		Documents:      m.Documents,
		MaxFeatures:    m.MaxFeatures,
	}
}

func toSummary(s job.Summary) Summary {
	return Summary(s)
}

func toCorpusStats(s recommenduc.CorpusStats) CorpusStats {
	return CorpusStats{
		Records:     s.Records,
		Fingerprint: s.Fingerprint,
		HourlyLow:   toSummary(s.Salary.HourlyLow),
		HourlyHigh:  toSummary(s.Salary.HourlyHigh),
		Budget:      toSummary(s.Salary.Budget),
	}
}
