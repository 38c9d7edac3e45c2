// Package corpus loads and caches the prepared job corpus.
package corpus

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
)

// Service prepares the corpus from a Loader. A failed or empty load yields an
// empty corpus, which callers report as data unavailable.
type Service struct {
	loader Loader
	source string
	logger *zap.Logger

	mu     sync.Mutex
	cached *job.Corpus
}

// New creates a corpus service. source names the data for logs.
func New(loader Loader, source string, logger *zap.Logger) *Service {
	return &Service{loader: loader, source: source, logger: logger}
}

// Load returns the cached corpus or reads it from the loader.
func (s *Service) Load(ctx context.Context) job.Corpus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		metrics.CorpusLoadsTotal.WithLabelValues("cached").Inc()
		return *s.cached
	}
	return s.loadLocked(ctx)
}

// Reload drops the cached corpus and reads the source again.
func (s *Service) Reload(ctx context.Context) job.Corpus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	return s.loadLocked(ctx)
}

func (s *Service) loadLocked(ctx context.Context) job.Corpus {
	raws, err := s.loader.Load(ctx)
	if err != nil {
		metrics.CorpusLoadsTotal.WithLabelValues("error").Inc()
		s.logger.Error("Corpus load failed",
			zap.String("source", s.source),
			zap.Error(err),
		)
		return job.Corpus{}
	}

	c := job.NewCorpus(raws)
	if c.IsEmpty() {
		metrics.CorpusLoadsTotal.WithLabelValues("empty").Inc()
		s.logger.Warn("Corpus is empty", zap.String("source", s.source))
		return c
	}

	metrics.CorpusLoadsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("Corpus loaded",
		zap.String("source", s.source),
		zap.Int("records", c.Len()),
	)
	s.cached = &c
	return c
}
