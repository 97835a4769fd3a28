package usecase

import (
	"context"
	"log/slog"
	"time"

	"LawTracker/internal/baseline"
	"LawTracker/internal/classify"
	"LawTracker/internal/domain"
	"LawTracker/internal/logging"
	"LawTracker/internal/merge"
	"LawTracker/internal/metrics"
	"LawTracker/internal/ports"
	"LawTracker/internal/scoring"
)

const baselineSource = "baseline"

// BaselineDeps wires the one-off import of foundational acts.
type BaselineDeps struct {
	Acts       []baseline.Act
	Details    ports.DetailFetcher
	Repository ports.LegislationRepository
	Signals    ports.SignalProvider
	Classifier *classify.Classifier
	Scorer     *scoring.Scorer
	Metrics    *metrics.Pipeline
	Logger     *slog.Logger
	NewRunID   func() string
	Now        func() time.Time
}

// BaselineImport loads the baseline list with pinned categories.
type BaselineImport struct {
	acts       []baseline.Act
	details    ports.DetailFetcher
	signals    ports.SignalProvider
	classifier *classify.Classifier
	scorer     *scoring.Scorer
	metrics    *metrics.Pipeline
	logger     *slog.Logger
	store      *recordStore
}

// NewBaselineImport uses the bundled list when deps.Acts is nil.
func NewBaselineImport(deps BaselineDeps) *BaselineImport {
	acts := deps.Acts
	if acts == nil {
		acts = baseline.Acts()
	}
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
	return &BaselineImport{
		acts:       acts,
		details:    deps.Details,
		signals:    deps.Signals,
		classifier: classifier,
		scorer:     scorer,
		metrics:    deps.Metrics,
		logger:     logger,
		store:      newRecordStore(deps.Repository, deps.Metrics, logger, deps.NewRunID, deps.Now),
	}
}

// Run resolves titles, classifies, scores and persists every act. A failed
// detail lookup falls back to the bundled title.
func (b *BaselineImport) Run(ctx context.Context) (Result, error) {
	report := b.store.startReport(baselineSource)

	records := make([]domain.Record, 0, len(b.acts))
	for i, act := range b.acts {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		rec := domain.Record{Identifier: act.CELEX, Title: act.Title, SourceHint: baselineSource}
		if b.details != nil {
			details, found, err := b.details.FetchDetails(ctx, act.CELEX)
			switch {
			case err != nil:
				b.logger.Warn("detail lookup failed, using fallback title", "identifier", act.CELEX, "error", err)
			case found:
				rec.Title = details.Title
				rec.Date = details.Date
			default:
				b.logger.Debug("no english expression, using fallback title", "identifier", act.CELEX)
			}
		}

		rec = b.classifier.Pin(rec, act.Category)
		var signals domain.Signals
		if b.signals != nil {
			signals = b.signals.For(rec.Identifier)
		}
		rec = b.scorer.Apply(rec, signals)
		b.logger.Debug("baseline act prepared", "n", i+1, "of", len(b.acts), "identifier", rec.Identifier, "tier", rec.Tier)
		records = append(records, rec)
	}

	merged, stats := merge.MergeStats(records)
	b.metrics.Merged(stats.Unique, stats.Duplicates, stats.Rejected)
	for _, rec := range merged {
		b.metrics.Classified(rec.Tier)
	}

	report.Found = len(merged)
	if err := b.store.persist(ctx, merged, &report); err != nil {
		return Result{Records: merged, Report: report}, err
	}
	return Result{Records: merged, Report: report}, nil
}
