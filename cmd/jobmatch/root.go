package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/config"
	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/jobmatch/internal/db/redis"
	"github.com/kailas-cloud/jobmatch/internal/db/sqlite"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/ingest"
	logpkg "github.com/kailas-cloud/jobmatch/internal/logger"
	modelrepo "github.com/kailas-cloud/jobmatch/internal/repository/model"
	corpusuc "github.com/kailas-cloud/jobmatch/internal/usecase/corpus"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	modeluc "github.com/kailas-cloud/jobmatch/internal/usecase/model"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

var (
	envName    string
	cfgPath    string
	corpusPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Content-based job recommender",
	Long:  "jobmatch ranks job postings against free-text skills and a location using TF-IDF similarity.",
	// No subcommand runs the API server.
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "environment name, selects config/<env>.yaml (default: ENV or local)")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "explicit path to a config file")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "corpus file, overrides corpus.path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config file.
// Priority: --config > --env > ENV variable > "local".
func loadConfig() (config.Config, string, error) {
	env := envName
	if env == "" {
		env = config.GetEnv()
	}

	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return config.Config{}, "", err
	}
	if corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, env, nil
}

func setupLogger(env string, cfg config.Config) (*zap.Logger, error) {
	return logpkg.NewLogger(env, cfg.Logging.Level)
}

// openStore creates the artifact store for the configured driver and waits for it.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		store, err = sqlite.NewStore(cfg.Database.Path)
	case config.DriverRedis, config.DriverValkey:
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	case config.DriverMemory:
		store = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Database.Driver, err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	return store, nil
}

// app is the wired object graph shared by every subcommand.
type app struct {
	store     db.Store
	models    *modeluc.Service
	recommend *recommenduc.Service
	health    *healthuc.Service
}

// wire builds the services over store. Composition root.
func wire(cfg config.Config, store db.Store, logger *zap.Logger) (*app, error) {
	loader, err := ingest.New(cfg.Corpus.Path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	corpusSvc := corpusuc.New(loader, cfg.Corpus.Path, logger)
	modelSvc := modeluc.New(modelrepo.New(store, cfg.Storage.KeyPrefix), cfg.Vectorizer(), logger)
	recSvc := recommenduc.New(corpusSvc, modelSvc, logger)

	return &app{
		store:     store,
		models:    modelSvc,
		recommend: recSvc,
		health:    healthuc.New(store, modelSvc),
	}, nil
}

// bootstrap loads config, logger and store, then wires the services.
// The returned cleanup closes the store and flushes the logger.
func bootstrap(ctx context.Context) (*app, config.Config, *zap.Logger, func(), error) {
	cfg, env, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := setupLogger(env, cfg)
	if err != nil {
		return nil, config.Config{}, nil, nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, config.Config{}, nil, nil, err
	}
	a, err := wire(cfg, store, logger)
	if err != nil {
		store.Close()
		_ = logger.Sync()
		return nil, config.Config{}, nil, nil, err
	}

	cleanup := func() {
		store.Close()
		_ = logger.Sync()
	}
	return a, cfg, logger, cleanup, nil
}

// userError keeps validation details and replaces everything else with the
// user-facing message. The cause is already in the logs.
func userError(err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return err
	}
	return errors.New(domain.UserMessage(err))
}
