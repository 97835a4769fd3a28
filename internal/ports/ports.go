package ports

import (
	"context"
	"time"

	"LawTracker/internal/domain"
)

// SourceBatch is everything one fetch channel produced in a run. Err is set
// when the channel failed; Records may still hold a partial result.
type SourceBatch struct {
	Source  string
	Records []domain.Record
	Err     error
}

// LegislationSource pulls raw records from every configured upstream
// channel, one batch per channel in configuration order.
type LegislationSource interface {
	FetchRecent(ctx context.Context, since time.Time) ([]SourceBatch, error)
}

// Details is the English title and document date of a single act.
type Details struct {
	Title string
	Date  string
}

// DetailFetcher looks up one act by CELEX number. found is false when the
// upstream has no English expression for it.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, celex string) (details Details, found bool, err error)
}

// LegislationRepository persists classified records and run history.
type LegislationRepository interface {
	Known(ctx context.Context, identifiers []string) (map[string]bool, error)
	SaveLegislation(ctx context.Context, rec domain.Record) error
	SaveAnalysis(ctx context.Context, rec domain.Record) error
	LogRun(ctx context.Context, report domain.RunReport) error
}

// SignalProvider supplies optional scoring inputs per identifier.
type SignalProvider interface {
	For(identifier string) domain.Signals
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
