// Package notifier delivers monitor notifications to their channels.
package notifier

import (
	"context"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/rs/zerolog"
)

// Notifier delivers one notification produced for a monitor.
type Notifier interface {
	Send(ctx context.Context, notification models.Notification, monitor *models.Monitor) error
}

// Router dispatches notifications to the notifier serving their channel.
// Notifications for channels without a registered notifier go to the fallback.
type Router struct {
	channels map[string]Notifier
	fallback Notifier
}

// NewRouter returns new Router with provided fallback notifier.
func NewRouter(fallback Notifier) *Router {
	return &Router{
		channels: map[string]Notifier{},
		fallback: fallback,
	}
}

// Register routes notifications with provided channel to the notifier.
func (r *Router) Register(channel string, notifier Notifier) {
	r.channels[channel] = notifier
}

// Send delivers the notification through its channel's notifier.
func (r *Router) Send(ctx context.Context, notification models.Notification, monitor *models.Monitor) error {
	if notifier, ok := r.channels[notification.Channel]; ok {
		return notifier.Send(ctx, notification, monitor)
	}

	return r.fallback.Send(ctx, notification, monitor)
}

// Log writes notifications to the log. It is the delivery channel of monitors
// without a Telegram chat and the fallback when no bot token is configured.
type Log struct {
	logger *zerolog.Logger
}

// NewLog returns new Log notifier.
func NewLog(logger *zerolog.Logger) *Log {
	return &Log{
		logger: logger,
	}
}

// Send logs the notification.
func (l *Log) Send(_ context.Context, notification models.Notification, _ *models.Monitor) error {
	l.logger.Info().
		Int("monitorId", notification.MonitorID).
		Str("channel", notification.Channel).
		Str("title", notification.Title).
		Str("message", notification.Message).
		Msg("notification")

	return nil
}
