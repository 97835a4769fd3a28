package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"LawTracker/internal/domain"
	"LawTracker/internal/ports"
)

type fakeSource struct {
	batches []ports.SourceBatch
	err     error

	mu    sync.Mutex
	since []time.Time
}

func (f *fakeSource) FetchRecent(_ context.Context, since time.Time) ([]ports.SourceBatch, error) {
	f.mu.Lock()
	f.since = append(f.since, since)
	f.mu.Unlock()
	return f.batches, f.err
}

func (f *fakeSource) calls() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.since...)
}

type fakeRepository struct {
	known    map[string]bool
	failSave map[string]bool
	logErr   error

	legislation []domain.Record
	analysis    []domain.Record
	runs        []domain.RunReport
}

func (f *fakeRepository) Known(_ context.Context, ids []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, id := range ids {
		if f.known[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeRepository) SaveLegislation(_ context.Context, rec domain.Record) error {
	if f.failSave[rec.Identifier] {
		return errors.New("disk full " + rec.Identifier)
	}
	f.legislation = append(f.legislation, rec)
	return nil
}

func (f *fakeRepository) SaveAnalysis(_ context.Context, rec domain.Record) error {
	f.analysis = append(f.analysis, rec)
	return nil
}

func (f *fakeRepository) LogRun(_ context.Context, report domain.RunReport) error {
	f.runs = append(f.runs, report)
	return f.logErr
}

type fakeSignals map[string]domain.Signals

func (f fakeSignals) For(identifier string) domain.Signals {
	return f[identifier]
}

type fakeDetails struct {
	details map[string]ports.Details
	errs    map[string]error
}

func (f fakeDetails) FetchDetails(_ context.Context, celex string) (ports.Details, bool, error) {
	if err := f.errs[celex]; err != nil {
		return ports.Details{}, false, err
	}
	d, ok := f.details[celex]
	return d, ok, nil
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC) }
}

func fixedID(id string) func() string {
	return func() string { return id }
}
