package jobmatch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver     string // "memory" (default), "sqlite", "redis" or "valkey"
	addrs      []string
	password   string
	path       string
	standalone bool
	keyPrefix  string

	corpusPath string
	jobs       []Job

	maxFeatures         int
	firstRequest        string
	refitOnCorpusChange bool
	limit               int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCorpus reads postings from a .csv or .parquet file.
func WithCorpus(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.corpusPath = path
		c.jobs = nil
	})
}

// WithJobs serves a fixed in-memory corpus instead of a file.
func WithJobs(jobs []Job) Option {
	return optionFunc(func(c *clientConfig) {
		c.jobs = make([]Job, len(jobs))
		copy(c.jobs, jobs)
		c.corpusPath = ""
	})
}

// WithMemory keeps the model artifact in process memory (default).
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
	})
}

// WithSQLite persists the model artifact in a SQLite file.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "sqlite"
		c.path = path
	})
}

// WithValkey persists the model artifact in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis persists the model artifact in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithStandalone disables cluster topology discovery for Redis/Valkey.
func WithStandalone() Option {
	return optionFunc(func(c *clientConfig) {
		c.standalone = true
	})
}

// WithKeyPrefix namespaces the artifact key. Default: "jobmatch:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithMaxFeatures caps the vocabulary size. Default: 5000.
func WithMaxFeatures(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxFeatures = n
	})
}

// WithLoadOnFirstRequest makes the first request load the persisted artifact
// instead of fitting a fresh model.
func WithLoadOnFirstRequest() Option {
	return optionFunc(func(c *clientConfig) {
		c.firstRequest = "load"
	})
}

// WithRefitOnCorpusChange refits when the corpus no longer matches the model.
func WithRefitOnCorpusChange() Option {
	return optionFunc(func(c *clientConfig) {
		c.refitOnCorpusChange = true
	})
}

// WithLimit sets the default result size. Default: 10, capped at 100.
func WithLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.limit = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
