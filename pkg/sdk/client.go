package jobmatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/jobmatch/internal/db/redis"
	"github.com/kailas-cloud/jobmatch/internal/db/sqlite"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/filter"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/query"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/request"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	"github.com/kailas-cloud/jobmatch/internal/ingest"
	modelrepo "github.com/kailas-cloud/jobmatch/internal/repository/model"
	corpusuc "github.com/kailas-cloud/jobmatch/internal/usecase/corpus"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	modeluc "github.com/kailas-cloud/jobmatch/internal/usecase/model"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "jobmatch:"
)

// Internal interface, swapped for a mock in tests.
type recommendUseCase interface {
	Recommend(ctx context.Context, req *request.Request) ([]result.Scored, error)
	Refit(ctx context.Context) (recommenduc.ModelInfo, error)
	ModelInfo(ctx context.Context) (recommenduc.ModelInfo, error)
	CorpusStats(ctx context.Context) (recommenduc.CorpusStats, error)
}

// Client is the jobmatch SDK entry point.
type Client struct {
	store     db.Store
	recSvc    recommendUseCase
	healthSvc healthUseCase
	limit     int
	obs       *observer
}

// New creates a Client, opens the artifact store and waits until it answers.
// The corpus is read lazily on the first call that needs it.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:      "memory",
		keyPrefix:   defaultKeyPrefix,
		maxFeatures: domain.DefaultMaxFeatures,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.corpusPath == "" && cfg.jobs == nil {
		return nil, errors.New("jobmatch: corpus required (use WithCorpus or WithJobs)")
	}
	loader, source, err := createLoader(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("jobmatch: database not ready: %w", err)
	}

	return wireClient(store, loader, source, cfg, obs)
}

func createLoader(cfg *clientConfig) (corpusuc.Loader, string, error) {
	if cfg.jobs != nil {
		return &staticLoader{jobs: cfg.jobs}, "memory", nil
	}
	l, err := ingest.New(cfg.corpusPath)
	if err != nil {
		return nil, "", fmt.Errorf("jobmatch: %w", err)
	}
	return l, cfg.corpusPath, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return memory.NewStore(), nil
	case "sqlite":
		s, err := sqlite.NewStore(cfg.path)
		if err != nil {
			return nil, fmt.Errorf("jobmatch: create sqlite store: %w", err)
		}
		return s, nil
	case "redis", "valkey":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			Standalone: cfg.standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("jobmatch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("jobmatch: unknown driver %q", cfg.driver)
	}
}

func wireClient(
	store db.Store, loader corpusuc.Loader, source string, cfg *clientConfig, obs *observer,
) (*Client, error) {
	first, err := domain.ParseFirstRequest(cfg.firstRequest)
	if err != nil {
		return nil, fmt.Errorf("jobmatch: %w", err)
	}
	vcfg := domain.VectorizerConfig{
		MaxFeatures:         cfg.maxFeatures,
		FirstRequest:        first,
		RefitOnCorpusChange: cfg.refitOnCorpusChange,
	}

	// Services log through zap; the SDK reports through its own slog observer.
	nop := zap.NewNop()
	corpusSvc := corpusuc.New(loader, source, nop)
	modelSvc := modeluc.New(modelrepo.New(store, cfg.keyPrefix), vcfg, nop)
	recSvc := recommenduc.New(corpusSvc, modelSvc, nop)

	return &Client{
		store:     store,
		recSvc:    recSvc,
		healthSvc: healthuc.New(store, modelSvc),
		limit:     cfg.limit,
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Recommend ranks the corpus against p and returns the best matches.
//
// Errors: ErrDataUnavailable (empty corpus), ErrModelUnavailable (no model could
// be fitted or loaded), ErrNoMatches (nothing passed the salary bounds),
// ErrInvalidRequest (bad preferences).
func (c *Client) Recommend(ctx context.Context, p Preferences) (recs []Recommendation, err error) {
	start := time.Now()
	defer func() { c.obs.observe("recommend", start, err) }()

	req, err := c.buildRequest(p)
	if err != nil {
		return nil, err
	}
	scored, err := c.recSvc.Recommend(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	recs = make([]Recommendation, len(scored))
	for i := range scored {
		recs[i] = toRecommendation(&scored[i])
	}
	return recs, nil
}

func (c *Client) buildRequest(p Preferences) (request.Request, error) {
	bounds, err := filter.NewBounds(p.MinHourlyRate, p.MaxHourlyRate, p.MinBudget, p.MaxBudget)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	limit := p.Limit
	if limit == 0 {
		limit = c.limit
	}
	req, err := request.New(query.New(p.Skills, p.Location), bounds, p.ForceRefit, limit)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}

// Refit reloads the corpus and fits a new model over it.
func (c *Client) Refit(ctx context.Context) (info ModelInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("model.refit", start, err) }()

	m, err := c.recSvc.Refit(ctx)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("refit: %w", err)
	}
	return toModelInfo(m), nil
}

// Model describes the model in memory. Returns ErrModelNotFound before the
// first recommendation or refit.
func (c *Client) Model(ctx context.Context) (info ModelInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("model.get", start, err) }()

	m, err := c.recSvc.ModelInfo(ctx)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("model info: %w", err)
	}
	return toModelInfo(m), nil
}

// CorpusStats summarizes the salary columns of the corpus.
func (c *Client) CorpusStats(ctx context.Context) (stats CorpusStats, err error) {
	start := time.Now()
	defer func() { c.obs.observe("corpus.stats", start, err) }()

	s, err := c.recSvc.CorpusStats(ctx)
	if err != nil {
		return CorpusStats{}, fmt.Errorf("corpus stats: %w", err)
	}
	return toCorpusStats(s), nil
}

// staticLoader serves the postings passed to WithJobs.
type staticLoader struct {
	jobs []Job
}

func (l *staticLoader) Load(context.Context) ([]job.Raw, error) {
	out := make([]job.Raw, len(l.jobs))
	for i, j := range l.jobs {
		out[i] = toRaw(j)
	}
	return out, nil
}
