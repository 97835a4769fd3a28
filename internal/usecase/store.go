package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"LawTracker/internal/domain"
	"LawTracker/internal/metrics"
	"LawTracker/internal/ports"
)

// recordStore persists merged records and the run log. A nil repository
// turns every call into a no-op apart from filling the report.
type recordStore struct {
	repository ports.LegislationRepository
	metrics    *metrics.Pipeline
	logger     *slog.Logger
	newRunID   func() string
	now        func() time.Time
}

func newRecordStore(repo ports.LegislationRepository, m *metrics.Pipeline, logger *slog.Logger, newRunID func() string, now func() time.Time) *recordStore {
	if newRunID == nil {
		newRunID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &recordStore{repository: repo, metrics: m, logger: logger, newRunID: newRunID, now: now}
}

func (s *recordStore) startReport(source string) domain.RunReport {
	return domain.RunReport{ID: s.newRunID(), Source: source, StartedAt: s.now()}
}

// persist saves every record and then the run log. Per-record failures are
// collected in the report; only a failing run log write is returned.
func (s *recordStore) persist(ctx context.Context, records []domain.Record, report *domain.RunReport) error {
	if s.repository != nil && len(records) > 0 {
		ids := make([]string, len(records))
		for i, rec := range records {
			ids[i] = rec.Identifier
		}

		known, err := s.repository.Known(ctx, ids)
		if err != nil {
			return fmt.Errorf("load known: %w", err)
		}

		for _, rec := range records {
			if err := s.save(ctx, rec); err != nil {
				s.metrics.PersistFailed()
				report.Errors = append(report.Errors, err.Error())
				s.logger.Warn("persist failed", "identifier", rec.Identifier, "error", err)
				continue
			}
			if known[rec.Identifier] {
				report.Updated++
			} else {
				report.Inserted++
			}
		}
	}

	report.CompletedAt = s.now()
	s.logger.Info("run completed",
		"run", report.ID, "source", report.Source, "found", report.Found,
		"inserted", report.Inserted, "updated", report.Updated, "errors", len(report.Errors))

	if s.repository == nil {
		return nil
	}
	if err := s.repository.LogRun(ctx, *report); err != nil {
		return fmt.Errorf("log run: %w", err)
	}
	return nil
}

func (s *recordStore) save(ctx context.Context, rec domain.Record) error {
	if err := s.repository.SaveLegislation(ctx, rec); err != nil {
		return err
	}
	return s.repository.SaveAnalysis(ctx, rec)
}
