package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name SchedulerStorage --filename scheduler_storage.go
//go:generate mockery --name CheckCommander --filename check_commander.go

// SchedulerStorage lists monitors whose next check is due.
type SchedulerStorage interface {
	// ListDueMonitors returns active monitors whose check interval elapsed
	// since their last check.
	ListDueMonitors(ctx context.Context, now time.Time) ([]models.Monitor, error)
}

// CheckCommander enqueues a check command for a monitor.
type CheckCommander interface {
	SendCheckCommand(ctx context.Context, monitorID int) error
}

// SchedulerOption is custom configuration of Scheduler.
type SchedulerOption func(s *Scheduler)

// Scheduler periodically enqueues check commands for due monitors.
type Scheduler struct {
	storage   SchedulerStorage
	commander CheckCommander
	interval  time.Duration
	clock     Clock
	logger    *zerolog.Logger
}

// NewScheduler returns new Scheduler waking up every interval.
func NewScheduler(
	storage SchedulerStorage,
	commander CheckCommander,
	interval time.Duration,
	logger *zerolog.Logger,
	ops ...SchedulerOption,
) *Scheduler {
	sch := &Scheduler{
		storage:   storage,
		commander: commander,
		interval:  interval,
		clock:     systemClock{},
		logger:    logger,
	}

	for _, op := range ops {
		op(sch)
	}

	return sch
}

// Run dispatches due monitors immediately and then on every tick until ctx
// is cancelled.
func (s Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.DispatchDue(ctx); err != nil {
			s.logger.Error().Err(err).Msg("can't dispatch due monitors")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// DispatchDue enqueues a check command for every monitor due now. A failed
// enqueue is logged and skipped, the monitor stays due for the next tick.
func (s Scheduler) DispatchDue(ctx context.Context) error {
	monitors, err := s.storage.ListDueMonitors(ctx, *s.clock.Now())
	if err != nil {
		return fmt.Errorf("can't list due monitors: %w", err)
	}

	for _, monitor := range monitors {
		if err := s.commander.SendCheckCommand(ctx, monitor.ID); err != nil {
			s.logger.Warn().
				Err(err).
				Int("monitorId", monitor.ID).
				Msg("can't enqueue monitor check")
			continue
		}

		s.logger.Debug().
			Int("monitorId", monitor.ID).
			Str("monitor", monitor.Name).
			Msg("monitor check enqueued")
	}

	return nil
}

// WithSchedulerClock sets Scheduler's custom Clock.
func WithSchedulerClock(c Clock) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = c
	}
}
