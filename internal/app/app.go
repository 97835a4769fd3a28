package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"LawTracker/internal/classify"
	"LawTracker/internal/config"
	"LawTracker/internal/domain"
	"LawTracker/internal/infrastructure/parser"
	"LawTracker/internal/infrastructure/rss"
	"LawTracker/internal/infrastructure/scheduler"
	"LawTracker/internal/infrastructure/sparql"
	"LawTracker/internal/infrastructure/storage"
	"LawTracker/internal/logging"
	"LawTracker/internal/metrics"
	"LawTracker/internal/ports"
	"LawTracker/internal/scanner"
	"LawTracker/internal/scoring"
	"LawTracker/internal/signals"
	"LawTracker/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Pipeline
	repo     *storage.SQLRepository
	pipeline *usecase.Pipeline
	baseline *usecase.BaselineImport
}

// New builds an application backed by the configured database.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	repo, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	a, err := build(cfg, baseLogger, repo)
	if err != nil {
		repo.Close()
		return nil, err
	}
	return a, nil
}

// NewOffline builds an application that classifies without fetching or
// persisting anything.
func NewOffline(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	return build(cfg, baseLogger, nil)
}

func build(cfg config.Config, baseLogger *slog.Logger, repo *storage.SQLRepository) (*Application, error) {
	signalSet, err := signals.Load(cfg.Signals.Path)
	if err != nil {
		return nil, err
	}
	if signalSet.Len() > 0 {
		baseLogger.Info("signals loaded", "path", cfg.Signals.Path, "entries", signalSet.Len())
	}

	httpClient := &http.Client{Timeout: cfg.Fetch.TimeoutDuration()}
	sparqlClient := sparql.NewClient(sparqlEndpoint(cfg.Sources), sparql.Options{
		HTTPClient:      httpClient,
		UserAgent:       cfg.Fetch.UserAgent,
		RequestInterval: cfg.Fetch.Interval(),
		Logger:          baseLogger.With("component", "scanner.sparql"),
	})

	registry := scanner.NewRegistry()
	registry.Register(sparqlClient)
	registry.Register(rss.NewFeedScanner(httpClient, cfg.Fetch.UserAgent, baseLogger.With("component", "scanner.rss")))
	registry.Register(parser.NewSearchScanner(httpClient, cfg.Fetch.UserAgent, baseLogger.With("component", "scanner.search")))

	source := parser.NewStrategySource(registry, cfg.Sources, cfg.Fetch.Limit, baseLogger.With("component", "source"))

	var repository ports.LegislationRepository
	if repo != nil {
		repository = repo
	}

	classifier := classify.New()
	scorer := scoring.New(nil)
	pipelineMetrics := metrics.NewPipeline()

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Repository: repository,
		Signals:    signalSet,
		Classifier: classifier,
		Scorer:     scorer,
		Metrics:    pipelineMetrics,
		Logger:     baseLogger.With("component", "pipeline"),
		MinPrimary: cfg.Fetch.MinPrimary,
	})

	baselineImport := usecase.NewBaselineImport(usecase.BaselineDeps{
		Details:    sparqlClient,
		Repository: repository,
		Signals:    signalSet,
		Classifier: classifier,
		Scorer:     scorer,
		Metrics:    pipelineMetrics,
		Logger:     baseLogger.With("component", "baseline"),
	})

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		metrics:  pipelineMetrics,
		repo:     repo,
		pipeline: pipeline,
		baseline: baselineImport,
	}, nil
}

// Scan performs one pipeline execution over the configured look-back window.
func (a *Application) Scan(ctx context.Context) (usecase.Result, error) {
	now := time.Now().In(a.cfg.Scheduler.Location())
	return a.pipeline.Run(ctx, now.Add(-a.window()))
}

// Watch reruns the pipeline on the configured interval until ctx is done.
func (a *Application) Watch(ctx context.Context) error {
	driver := scheduler.NewIntervalScheduler(a.cfg.Scheduler.Every(), a.cfg.Scheduler.Location())
	sched := usecase.NewScheduler(driver, a.pipeline, a.window(), a.logger.With("component", "scheduler"))

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	a.logger.Info("watching", "every", a.cfg.Scheduler.Every().String())

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return sched.Stop(stopCtx)
}

// ImportBaseline loads the bundled foundational acts.
func (a *Application) ImportBaseline(ctx context.Context) (usecase.Result, error) {
	return a.baseline.Run(ctx)
}

// Classify classifies, scores and merges caller-supplied records.
func (a *Application) Classify(records []domain.Record) []domain.Record {
	return a.pipeline.Classify(records)
}

// Records lists stored records, highest score first.
func (a *Application) Records(ctx context.Context, limit int) ([]domain.Record, error) {
	if a.repo == nil {
		return nil, errors.New("no database configured")
	}
	return a.repo.List(ctx, limit)
}

// ServeMetrics exposes prometheus counters until ctx is done. It returns
// immediately when no address is configured.
func (a *Application) ServeMetrics(ctx context.Context) error {
	if a.cfg.Metrics.Addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{Addr: a.cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	a.logger.Info("metrics listening", "addr", a.cfg.Metrics.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve metrics: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close releases the database handle.
func (a *Application) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *Application) window() time.Duration {
	days := a.cfg.Fetch.DaysBack
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

func sparqlEndpoint(sources []config.SourceConfig) string {
	for _, src := range sources {
		if src.Scanner == "sparql" && src.URL != "" {
			return src.URL
		}
	}
	return sparql.DefaultEndpoint
}
