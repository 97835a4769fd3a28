package usecase

import (
	"context"
	"log/slog"
	"time"

	"LawTracker/internal/logging"
	"LawTracker/internal/ports"
)

// Scheduler wires the interval driver with the pipeline use case.
type Scheduler struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	window   time.Duration
	logger   *slog.Logger
}

// NewScheduler returns a helper to start/stop recurring scans. Each run
// looks back over window from its trigger time.
func NewScheduler(driver ports.Scheduler, pipeline *Pipeline, window time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scheduler{driver: driver, pipeline: pipeline, window: window, logger: logger}
}

// Start registers the pipeline with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if _, err := s.pipeline.Run(ctx, trigger.Add(-s.window)); err != nil {
			s.logger.Error("scheduled scan failed", "error", err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
