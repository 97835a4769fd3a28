package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"LawTracker/internal/config"
	"LawTracker/internal/domain"
	"LawTracker/internal/ports"
	"LawTracker/internal/scanner"
)

// StrategySource implements LegislationSource via registered scanner strategies.
type StrategySource struct {
	registry *scanner.Registry
	sources  []config.SourceConfig
	limit    int
	logger   *slog.Logger
}

var _ ports.LegislationSource = (*StrategySource)(nil)

// NewStrategySource wires scanner registry with config-defined sources.
func NewStrategySource(reg *scanner.Registry, sources []config.SourceConfig, limit int, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		sources:  sources,
		limit:    limit,
		logger:   log,
	}
}

// FetchRecent runs every configured source concurrently. Batches come back
// in configuration order regardless of completion order; a failing source
// is reported in its batch and does not cancel the others.
func (s *StrategySource) FetchRecent(ctx context.Context, since time.Time) ([]ports.SourceBatch, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch recent", "sources", len(s.sources), "since", since.Format("2006-01-02"))

	batches := make([]ports.SourceBatch, len(s.sources))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		batches[i].Source = src.Name
		group.Go(func() error {
			batches[i].Records, batches[i].Err = s.scan(groupCtx, src, since)
			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch recent: %w", err)
	}

	total := 0
	for _, batch := range batches {
		total += len(batch.Records)
	}
	s.debug("strategy source done", "total_records", total)
	return batches, nil
}

func (s *StrategySource) scan(ctx context.Context, src config.SourceConfig, since time.Time) ([]domain.Record, error) {
	strategy, err := s.registry.Resolve(src.Scanner)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src.Name, err)
	}

	s.debug("process source", "source", src.Name, "scanner", src.Scanner)
	records, err := strategy.Scan(ctx, scanner.Request{
		Since:      since,
		SourceName: src.Name,
		URL:        src.URL,
		Limit:      s.limit,
		Options:    src.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("scan source %s: %w", src.Name, err)
	}

	for i := range records {
		if records[i].SourceHint == "" {
			records[i].SourceHint = src.Name
		}
	}
	s.debug("source produced records", "source", src.Name, "count", len(records))
	return records, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
