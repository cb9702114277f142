// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler wraps a cron engine with logging and per-run timeouts.
type Scheduler struct {
	engine *cron.Cron
	log    *slog.Logger
}

// New creates a Scheduler evaluating specs in the given IANA timezone.
func New(log *slog.Logger, timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	return &Scheduler{
		engine: cron.New(cron.WithLocation(loc)),
		log:    log.With("component", "scheduler"),
	}, nil
}

// Add registers job under name. Each run gets its own context bounded by timeout.
func (s *Scheduler) Add(name, spec string, timeout time.Duration, job Job) error {
	_, err := s.engine.AddFunc(spec, func() { s.run(name, timeout, job) })
	if err != nil {
		return fmt.Errorf("add job %s: %w", name, err)
	}
	s.log.Info("job registered", slog.String("job", name), slog.String("spec", spec))
	return nil
}

func (s *Scheduler) run(name string, timeout time.Duration, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		s.log.Error("job failed",
			slog.String("job", name),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return
	}
	s.log.Info("job finished", slog.String("job", name), slog.Duration("duration", time.Since(start)))
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.engine.Start()
	s.log.Info("scheduler started", slog.Int("jobs", len(s.engine.Entries())))
}

// Stop prevents new runs and waits for running jobs or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.engine.Stop()
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out")
	}
}
