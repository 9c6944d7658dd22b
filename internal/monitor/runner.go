// Package monitor runs saved searches against their marketplaces and turns
// the results into stored listings and notifications.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/marketradar-pl/marketradar/internal/platform"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/marketradar-pl/marketradar/internal/scraper"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Notifier --filename notifier.go

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Scrapers resolves marketplace names to their scrapers.
type Scrapers interface {
	Get(name string) (scraper.Scraper, bool)
}

// Storage persists monitors and everything their checks produce.
type Storage interface {
	// GetMonitor returns the monitor with provided id.
	GetMonitor(ctx context.Context, id int) (*models.Monitor, error)
	// UpsertListings stores listings found for a monitor. Returns listings
	// stored for the first time and listings whose price moved since the
	// previous check, both with storage ids set.
	UpsertListings(
		ctx context.Context,
		monitorID int,
		listings []models.Listing,
	) (created []models.Listing, priceChanged []models.PriceChange, err error)
	// SaveSearchRun records the outcome of a single marketplace search.
	SaveSearchRun(ctx context.Context, run *models.SearchRun) error
	// SaveNotifications stores notifications and returns them with ids set.
	SaveNotifications(ctx context.Context, notifications []models.Notification) ([]models.Notification, error)
	// MarkNotificationsSent flips the sent flag of notifications with provided ids.
	MarkNotificationsSent(ctx context.Context, ids []int) error
	// SetMonitorChecked stamps the monitor's last check time.
	SetMonitorChecked(ctx context.Context, id int, checkedAt time.Time) error
}

// Notifier delivers one notification produced for a monitor.
type Notifier interface {
	Send(ctx context.Context, notification models.Notification, monitor *models.Monitor) error
}

// Option is custom configuration of Runner.
type Option func(r *Runner)

// Runner checks monitors against their marketplaces.
type Runner struct {
	scrapers Scrapers
	storage  Storage
	notifier Notifier
	clock    Clock
	logger   *zerolog.Logger
}

// NewRunner returns new Runner.
func NewRunner(scrapers Scrapers, storage Storage, notifier Notifier, logger *zerolog.Logger, ops ...Option) *Runner {
	run := &Runner{
		scrapers: scrapers,
		storage:  storage,
		notifier: notifier,
		clock:    systemClock{},
		logger:   logger,
	}

	for _, op := range ops {
		op(run)
	}

	return run
}

// CheckMonitor searches every marketplace the monitor is configured for,
// stores the results and notifies about new listings and price changes.
func (r Runner) CheckMonitor(ctx context.Context, monitorID int) error {
	monitor, err := r.storage.GetMonitor(ctx, monitorID)
	if err != nil {
		return fmt.Errorf("can't load monitor: %w", err)
	}

	if !monitor.IsActive {
		r.logger.Debug().
			Int("monitorId", monitor.ID).
			Msg("monitor is paused, check skipped")
		return nil
	}

	listings, err := r.searchMarketplaces(ctx, monitor)
	if err != nil {
		return err
	}

	created, priceChanged, err := r.storage.UpsertListings(ctx, monitor.ID, listings)
	if err != nil {
		return fmt.Errorf("can't store listings: %w", err)
	}

	if err := r.notify(ctx, monitor, created, priceChanged); err != nil {
		return err
	}

	if err := r.storage.SetMonitorChecked(ctx, monitor.ID, *r.clock.Now()); err != nil {
		return fmt.Errorf("can't finish check: %w", err)
	}

	return nil
}

// searchMarketplaces runs the monitor's search on all its marketplaces in
// parallel and records one search run per marketplace. Scrapers absorb their
// own failures, so the only errors here come from storage.
func (r Runner) searchMarketplaces(ctx context.Context, monitor *models.Monitor) ([]models.Listing, error) {
	var (
		mu       sync.Mutex
		listings []models.Listing
	)

	errGroup, egCtx := errgroup.WithContext(ctx)

	for _, name := range monitor.Marketplaces {
		name := name
		errGroup.Go(func() error {
			run := models.SearchRun{
				MonitorID:   &monitor.ID,
				Marketplace: name,
				Query:       strings.Join(monitor.Keywords, " "),
			}

			if scr, ok := r.scrapers.Get(name); ok {
				found := scr.Search(egCtx, monitor.Keywords, monitor.Filters)

				mu.Lock()
				listings = append(listings, found...)
				mu.Unlock()

				run.ResultCount = len(found)
				run.IsSuccess = true
			} else {
				run.StatusMessage = lo.ToPtr(platform.ErrUnknownMarketplace.Error())
				r.logger.Warn().
					Int("monitorId", monitor.ID).
					Str("marketplace", name).
					Msg("monitor references unknown marketplace")
			}

			if err := r.storage.SaveSearchRun(egCtx, &run); err != nil {
				return fmt.Errorf("can't save search run: %w", err)
			}

			return nil
		})
	}

	err := errGroup.Wait()

	return listings, err
}

// notify stores notifications for the check results and delivers them. A
// failed delivery leaves the notification stored as unsent and never fails
// the check.
func (r Runner) notify(
	ctx context.Context,
	monitor *models.Monitor,
	created []models.Listing,
	priceChanged []models.PriceChange,
) error {
	notifications := buildNotifications(monitor, created, priceChanged)
	if len(notifications) == 0 {
		return nil
	}

	notifications, err := r.storage.SaveNotifications(ctx, notifications)
	if err != nil {
		return fmt.Errorf("can't save notifications: %w", err)
	}

	sent := make([]int, 0, len(notifications))
	for _, notification := range notifications {
		if err := r.notifier.Send(ctx, notification, monitor); err != nil {
			r.logger.Warn().
				Err(err).
				Int("monitorId", monitor.ID).
				Int("notificationId", notification.ID).
				Msg("can't send notification")
			continue
		}
		sent = append(sent, notification.ID)
	}

	if len(sent) == 0 {
		return nil
	}

	if err := r.storage.MarkNotificationsSent(ctx, sent); err != nil {
		return fmt.Errorf("can't mark notifications as sent: %w", err)
	}

	return nil
}

// WithClock sets Runner's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}
