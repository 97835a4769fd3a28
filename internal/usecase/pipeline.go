package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"LawTracker/internal/classify"
	"LawTracker/internal/domain"
	"LawTracker/internal/logging"
	"LawTracker/internal/merge"
	"LawTracker/internal/metrics"
	"LawTracker/internal/ports"
	"LawTracker/internal/scoring"
)

// ErrAllSourcesFailed is returned when no source produced a usable batch.
var ErrAllSourcesFailed = errors.New("all sources failed")

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.LegislationSource
	Repository ports.LegislationRepository
	Signals    ports.SignalProvider
	Classifier *classify.Classifier
	Scorer     *scoring.Scorer
	Metrics    *metrics.Pipeline
	Logger     *slog.Logger
	// MinPrimary is the record count below which the first source is
	// reported as thin.
	MinPrimary int
	NewRunID   func() string
	Now        func() time.Time
}

// Pipeline implements the legislation scan workflow.
type Pipeline struct {
	source     ports.LegislationSource
	signals    ports.SignalProvider
	classifier *classify.Classifier
	scorer     *scoring.Scorer
	metrics    *metrics.Pipeline
	logger     *slog.Logger
	minPrimary int
	store      *recordStore
}

// Result is what one run produced.
type Result struct {
	Records []domain.Record
	Report  domain.RunReport
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	classifier := deps.Classifier
	if classifier == nil {
		classifier = classify.New()
	}
	scorer := deps.Scorer
	if scorer == nil {
		scorer = scoring.New(nil)
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pipeline{
		source:     deps.Source,
		signals:    deps.Signals,
		classifier: classifier,
		scorer:     scorer,
		metrics:    deps.Metrics,
		logger:     logger,
		minPrimary: deps.MinPrimary,
		store:      newRecordStore(deps.Repository, deps.Metrics, logger, deps.NewRunID, deps.Now),
	}
}

// Process classifies and scores records without fetching or persisting.
// Records keep their input order.
func (p *Pipeline) Process(records []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		rec = p.classifier.Classify(rec)
		out = append(out, p.scorer.Apply(rec, p.signalsFor(rec.Identifier)))
	}
	return out
}

// Classify is Process followed by the merge step, so the result holds at
// most one record per identifier and none without one.
func (p *Pipeline) Classify(records []domain.Record) []domain.Record {
	merged, stats := merge.MergeStats(p.Process(records))
	if stats.Rejected > 0 {
		p.logger.Debug("records without identifier dropped", "count", stats.Rejected)
	}
	if stats.Duplicates > 0 {
		p.logger.Debug("duplicate records dropped", "count", stats.Duplicates)
	}
	return merged
}

// Run fetches every source published since the given time, classifies,
// scores and merges the results, then persists them and logs the run.
func (p *Pipeline) Run(ctx context.Context, since time.Time) (Result, error) {
	if p.source == nil {
		return Result{}, nil
	}

	report := p.store.startReport("eurlex")

	batches, err := p.source.FetchRecent(ctx, since)
	if err != nil {
		return Result{}, fmt.Errorf("fetch recent: %w", err)
	}

	lists := make([][]domain.Record, 0, len(batches))
	failed := 0
	for i, batch := range batches {
		p.metrics.Fetched(batch.Source, len(batch.Records))
		if batch.Err != nil {
			failed++
			p.metrics.SourceFailed(batch.Source)
			report.Errors = append(report.Errors, batch.Err.Error())
			p.logger.Warn("source failed", "source", batch.Source, "error", batch.Err)
		}
		if i == 0 && len(batch.Records) < p.minPrimary {
			p.logger.Warn("primary source returned few records", "source", batch.Source, "count", len(batch.Records))
		}
		lists = append(lists, p.Process(batch.Records))
	}
	if len(batches) > 0 && failed == len(batches) {
		return Result{}, fmt.Errorf("fetch recent: %w", ErrAllSourcesFailed)
	}

	merged, stats := merge.MergeStats(lists...)
	p.metrics.Merged(stats.Unique, stats.Duplicates, stats.Rejected)
	if stats.Rejected > 0 {
		p.logger.Debug("records without identifier dropped", "count", stats.Rejected)
	}
	for _, rec := range merged {
		p.metrics.Classified(rec.Tier)
	}
	p.logger.Info("records merged",
		"input", stats.Input, "unique", stats.Unique, "duplicates", stats.Duplicates)

	report.Found = len(merged)
	if err := p.store.persist(ctx, merged, &report); err != nil {
		return Result{Records: merged, Report: report}, err
	}
	return Result{Records: merged, Report: report}, nil
}

func (p *Pipeline) signalsFor(identifier string) domain.Signals {
	if p.signals == nil {
		return domain.Signals{}
	}
	return p.signals.For(identifier)
}
