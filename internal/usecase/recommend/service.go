// Package recommend runs the recommendation pipeline: corpus, model, score, rank.
package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/request"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

// ModelInfo describes the model currently serving requests.
type ModelInfo struct {
	ID             string
	FittedAt       time.Time
	Fingerprint    string
	VocabularySize int
	Documents      int
	MaxFeatures    int
}

// CorpusStats describes the loaded corpus.
type CorpusStats struct {
	Records     int
	Fingerprint string
	Salary      job.SalaryStats
}

// Service handles recommendation requests.
//
// mu pairs the corpus with the model scored against it: readers hold the read
// lock from corpus fetch to model fetch, reloads hold the write lock.
type Service struct {
	corpus CorpusProvider
	models ModelProvider
	logger *zap.Logger

	mu sync.RWMutex
}

// New creates a recommendation service.
func New(corpus CorpusProvider, models ModelProvider, logger *zap.Logger) *Service {
	return &Service{corpus: corpus, models: models, logger: logger}
}

// Recommend returns up to req.Limit() postings ranked by similarity.
//
// Errors: domain.ErrDataUnavailable when the corpus is empty,
// domain.ErrModelUnavailable when no model can be fitted or loaded,
// domain.ErrNoMatches when nothing passes the salary bounds.
func (s *Service) Recommend(ctx context.Context, req *request.Request) ([]result.Scored, error) {
	items, err := s.recommend(ctx, req)
	metrics.RecommendationsTotal.WithLabelValues(domain.Outcome(err)).Inc()
	return items, err
}

func (s *Service) recommend(ctx context.Context, req *request.Request) ([]result.Scored, error) {
	q, b := req.Query(), req.Bounds()
	s.logger.Debug("Recommendation request",
		zap.String("skills", q.Skills()),
		zap.String("location", q.Location()),
		zap.Float64("min_hourly_rate", b.MinHourly()),
		zap.Float64("max_hourly_rate", b.MaxHourly()),
		zap.Float64("min_budget", b.MinBudget()),
		zap.Float64("max_budget", b.MaxBudget()),
		zap.Bool("force_refit", req.ForceRefit()),
	)

	corpus, m, err := s.prepare(ctx, req.ForceRefit())
	if err != nil {
		return nil, err
	}

	ranked := Rank(Score(m, corpus, q), b, req.Limit())
	if len(ranked) == 0 {
		return nil, domain.ErrNoMatches
	}
	return ranked, nil
}

// Refit reloads the corpus and fits a new model over it.
func (s *Service) Refit(ctx context.Context) (ModelInfo, error) {
	_, m, err := s.prepare(ctx, true)
	if err != nil {
		return ModelInfo{}, err
	}
	return infoOf(m), nil
}

// ModelInfo describes the cached model. Returns domain.ErrModelNotFound when
// nothing has been fitted or loaded yet.
func (s *Service) ModelInfo(_ context.Context) (ModelInfo, error) {
	m, ok := s.models.Current()
	if !ok {
		return ModelInfo{}, domain.ErrModelNotFound
	}
	return infoOf(m), nil
}

// CorpusStats summarizes the salary columns of the corpus.
func (s *Service) CorpusStats(ctx context.Context) (CorpusStats, error) {
	s.mu.RLock()
	corpus := s.corpus.Load(ctx)
	s.mu.RUnlock()
	if corpus.IsEmpty() {
		return CorpusStats{}, domain.ErrDataUnavailable
	}
	return CorpusStats{
		Records:     corpus.Len(),
		Fingerprint: corpus.Fingerprint(),
		Salary:      corpus.Stats(),
	}, nil
}

// prepare returns the corpus and a model fitted on exactly that corpus. fresh
// reloads the source and forces a fit.
func (s *Service) prepare(ctx context.Context, fresh bool) (job.Corpus, *tfidf.Model, error) {
	var corpus job.Corpus
	if fresh {
		s.mu.Lock()
		defer s.mu.Unlock()
		corpus = s.corpus.Reload(ctx)
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
		corpus = s.corpus.Load(ctx)
	}
	if corpus.IsEmpty() {
		return job.Corpus{}, nil, domain.ErrDataUnavailable
	}

	m, err := s.models.FitOrLoad(ctx, corpus, fresh)
	if err != nil {
		return job.Corpus{}, nil, fmt.Errorf("fit or load model: %w", err)
	}
	if m.Fingerprint() != corpus.Fingerprint() || m.Len() != corpus.Len() {
		s.logger.Error("Model does not match corpus",
			zap.String("model_id", m.ID()),
			zap.String("model_fingerprint", m.Fingerprint()),
			zap.String("corpus_fingerprint", corpus.Fingerprint()),
		)
		return job.Corpus{}, nil, fmt.Errorf("%w: model %s was fitted on a different corpus",
			domain.ErrModelUnavailable, m.ID())
	}
	return corpus, m, nil
}

func infoOf(m *tfidf.Model) ModelInfo {
	return ModelInfo{
		ID:             m.ID(),
		FittedAt:       m.FittedAt(),
		Fingerprint:    m.Fingerprint(),
		VocabularySize: m.VocabularySize(),
		Documents:      m.Len(),
		MaxFeatures:    m.MaxFeatures(),
	}
}
