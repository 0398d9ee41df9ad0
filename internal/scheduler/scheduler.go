package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Refresher fetches current and historic data in one go.
type Refresher interface {
	Refresh(ctx context.Context, window time.Duration) error
}

// Settings exposes the user preferences the refresh job depends on.
type Settings interface {
	AutoRefresh() bool
	ChartWindow() time.Duration
}

// Scheduler periodically refreshes the session while auto-refresh is on.
type Scheduler struct {
	scheduler *gocron.Scheduler
	session   Refresher
	settings  Settings
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler. timeout bounds a single refresh run.
func New(interval, timeout time.Duration, session Refresher, settings Settings, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		session:   session,
		settings:  settings,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).SingletonMode().Do(func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce performs one refresh if auto-refresh is enabled. It reports whether
// a refresh was attempted.
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	if !s.settings.AutoRefresh() {
		return false
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	window := s.settings.ChartWindow()
	s.logger.Debug("running refresh job", "window", window)
	if err := s.session.Refresh(ctx, window); err != nil {
		s.logger.Warn("refresh failed", "error", err)
		return true
	}
	s.logger.Debug("refresh job completed")
	return true
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
