// Package model decides whether a request is served by a fresh fit, the
// cached model or the persisted artifact.
package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

// Service owns the process-lifetime model state.
type Service struct {
	repo   Repository
	cfg    domain.VectorizerConfig
	cache  *Cache
	logger *zap.Logger

	mu     sync.Mutex // serializes fits and artifact loads
	fitted atomic.Bool
}

// New creates a model service.
func New(repo Repository, cfg domain.VectorizerConfig, logger *zap.Logger) *Service {
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = domain.DefaultMaxFeatures
	}
	if cfg.FirstRequest == "" {
		cfg.FirstRequest = domain.FirstRequestFit
	}
	return &Service{repo: repo, cfg: cfg, cache: &Cache{}, logger: logger}
}

// FitOrLoad returns a model whose vectors line up with corpus.
//
// forceRefit always fits and persists. Otherwise the first request of the process
// follows cfg.FirstRequest and later requests use the cache, falling back to the
// persisted artifact on a miss. Every failure wraps domain.ErrModelUnavailable.
func (s *Service) FitOrLoad(ctx context.Context, corpus job.Corpus, forceRefit bool) (*tfidf.Model, error) {
	if forceRefit {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.fitLocked(ctx, corpus)
	}

	if !s.fitted.Load() && s.cfg.FirstRequest == domain.FirstRequestFit {
		if m, ok, err := s.fitFirst(ctx, corpus); ok {
			return m, err
		}
	}

	m, err := s.cachedOrLoad(ctx)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, m, corpus)
}

// fitFirst fits unless a concurrent request already did. ok is false when the
// caller should fall through to the cache.
func (s *Service) fitFirst(ctx context.Context, corpus job.Corpus) (*tfidf.Model, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fitted.Load() {
		return nil, false, nil
	}
	m, err := s.fitLocked(ctx, corpus)
	return m, true, err
}

// Current returns the cached model, if any.
func (s *Service) Current() (*tfidf.Model, bool) {
	m := s.cache.Get()
	return m, m != nil
}

// Ready reports whether a model is cached.
func (s *Service) Ready() bool { return s.cache.Get() != nil }

// Reset deletes the persisted artifact and drops the cached model. The next
// request behaves like the first request of a fresh process.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		metrics.ModelOperationsTotal.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("reset model: %w", err)
	}
	metrics.ModelOperationsTotal.WithLabelValues("delete", "ok").Inc()

	s.cache.Clear()
	s.fitted.Store(false)
	s.logger.Info("Model reset")
	return nil
}

func (s *Service) fitLocked(ctx context.Context, corpus job.Corpus) (*tfidf.Model, error) {
	start := time.Now()
	m := tfidf.Fit(corpus.Texts(), tfidf.Options{
		MaxFeatures: s.cfg.MaxFeatures,
		Fingerprint: corpus.Fingerprint(),
	})
	duration := time.Since(start)
	metrics.ModelFitDuration.Observe(duration.Seconds())
	metrics.ModelOperationsTotal.WithLabelValues("fit", "ok").Inc()

	if err := s.repo.Save(ctx, m); err != nil {
		metrics.ModelOperationsTotal.WithLabelValues("save", "error").Inc()
		s.logger.Error("Model save failed",
			zap.String("model_id", m.ID()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	metrics.ModelOperationsTotal.WithLabelValues("save", "ok").Inc()

	s.swap(m)
	s.fitted.Store(true)
	domain.ModelUsageFromContext(ctx).Record(m.ID(), true)

	s.logger.Info("Model fitted",
		zap.String("model_id", m.ID()),
		zap.Int("documents", m.Len()),
		zap.Int("vocabulary", m.VocabularySize()),
		zap.Duration("duration", duration),
	)
	return m, nil
}

func (s *Service) cachedOrLoad(ctx context.Context) (*tfidf.Model, error) {
	if m := s.cache.Get(); m != nil {
		metrics.ModelCacheTotal.WithLabelValues("hit").Inc()
		return m, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.cache.Get(); m != nil {
		metrics.ModelCacheTotal.WithLabelValues("hit").Inc()
		return m, nil
	}
	metrics.ModelCacheTotal.WithLabelValues("miss").Inc()

	m, err := s.repo.Load(ctx)
	if err != nil {
		metrics.ModelOperationsTotal.WithLabelValues("load", "error").Inc()
		if errors.Is(err, domain.ErrModelNotFound) {
			s.logger.Warn("No persisted model", zap.Error(err))
		} else {
			s.logger.Error("Model load failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	metrics.ModelOperationsTotal.WithLabelValues("load", "ok").Inc()

	s.swap(m)
	s.logger.Info("Model loaded",
		zap.String("model_id", m.ID()),
		zap.Int("documents", m.Len()),
		zap.Int("vocabulary", m.VocabularySize()),
	)
	return m, nil
}

// reconcile checks that m still describes corpus. Vectors are positional, so a
// model fitted on other postings is never served.
func (s *Service) reconcile(ctx context.Context, m *tfidf.Model, corpus job.Corpus) (*tfidf.Model, error) {
	fp := corpus.Fingerprint()
	if m.Fingerprint() == fp && m.Len() == corpus.Len() {
		domain.ModelUsageFromContext(ctx).Record(m.ID(), false)
		return m, nil
	}

	if s.cfg.RefitOnCorpusChange {
		s.logger.Info("Corpus changed, refitting",
			zap.String("model_id", m.ID()),
			zap.String("model_fingerprint", m.Fingerprint()),
			zap.String("corpus_fingerprint", fp),
		)
		s.mu.Lock()
		defer s.mu.Unlock()
		if cur := s.cache.Get(); cur != nil && cur.Fingerprint() == fp && cur.Len() == corpus.Len() {
			domain.ModelUsageFromContext(ctx).Record(cur.ID(), false)
			return cur, nil
		}
		return s.fitLocked(ctx, corpus)
	}

	s.logger.Error("Model does not match corpus",
		zap.String("model_id", m.ID()),
		zap.String("model_fingerprint", m.Fingerprint()),
		zap.String("corpus_fingerprint", fp),
		zap.Int("model_documents", m.Len()),
		zap.Int("corpus_documents", corpus.Len()),
	)
	return nil, fmt.Errorf("%w: model %s was fitted on a different corpus",
		domain.ErrModelUnavailable, m.ID())
}

func (s *Service) swap(m *tfidf.Model) {
	s.cache.Store(m)
	metrics.ModelVocabularySize.Set(float64(m.VocabularySize()))
	metrics.ModelDocuments.Set(float64(m.Len()))
}
