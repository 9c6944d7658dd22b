package api

import (
	"errors"
	"strings"
	"time"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
)

// defaultIntervalMinutes is used when a monitor request omits the interval.
const defaultIntervalMinutes = 60

// searchRequest is the live search payload. Keywords are comma separated.
type searchRequest struct {
	Keywords    string         `json:"keywords"`
	Marketplace string         `json:"marketplace"`
	Filters     models.Filters `json:"filters"`
}

type searchResponse struct {
	Results []models.Listing `json:"results"`
	Total   int              `json:"total"`
}

type marketplacesResponse struct {
	Marketplaces []string `json:"marketplaces"`
}

// monitorRequest is the create and update payload of a monitor.
type monitorRequest struct {
	Name            string         `json:"name"`
	Keywords        []string       `json:"keywords"`
	Marketplaces    []string       `json:"marketplaces"`
	Filters         models.Filters `json:"filters"`
	IntervalMinutes int            `json:"interval_minutes"`
	TelegramChatID  *int64         `json:"telegram_chat_id"`
	IsActive        *bool          `json:"is_active"`
}

// toMonitor validates the request and converts it to a monitor. Omitted
// interval falls back to defaultIntervalMinutes, omitted is_active to true.
func (r monitorRequest) toMonitor() (models.Monitor, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return models.Monitor{}, errors.New("name is required")
	}

	keywords := trimList(r.Keywords)
	if len(keywords) == 0 {
		return models.Monitor{}, errors.New("at least one keyword is required")
	}

	marketplaces := trimList(r.Marketplaces)
	if len(marketplaces) == 0 {
		return models.Monitor{}, errors.New("at least one marketplace is required")
	}

	monitor := models.Monitor{
		Name:            name,
		Keywords:        keywords,
		Marketplaces:    marketplaces,
		Filters:         r.Filters,
		IntervalMinutes: r.IntervalMinutes,
		TelegramChatID:  r.TelegramChatID,
		IsActive:        true,
	}

	if r.IsActive != nil {
		monitor.IsActive = *r.IsActive
	}
	if monitor.IntervalMinutes <= 0 {
		monitor.IntervalMinutes = defaultIntervalMinutes
	}

	return monitor, nil
}

type monitorResponse struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Keywords        []string       `json:"keywords"`
	Marketplaces    []string       `json:"marketplaces"`
	Filters         models.Filters `json:"filters"`
	IntervalMinutes int            `json:"interval_minutes"`
	TelegramChatID  *int64         `json:"telegram_chat_id,omitempty"`
	IsActive        bool           `json:"is_active"`
	LastCheckedAt   *time.Time     `json:"last_checked_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func toMonitorResponse(monitor *models.Monitor) monitorResponse {
	return monitorResponse{
		ID:              monitor.ID,
		Name:            monitor.Name,
		Keywords:        monitor.Keywords,
		Marketplaces:    monitor.Marketplaces,
		Filters:         monitor.Filters,
		IntervalMinutes: monitor.IntervalMinutes,
		TelegramChatID:  monitor.TelegramChatID,
		IsActive:        monitor.IsActive,
		LastCheckedAt:   monitor.LastCheckedAt,
		CreatedAt:       monitor.CreatedAt,
	}
}

type monitorsResponse struct {
	Monitors []monitorResponse `json:"monitors"`
}

// storedListing adds the storage ID to the canonical listing shape.
type storedListing struct {
	ID int `json:"id"`
	models.Listing
}

type listingsResponse struct {
	Listings []storedListing `json:"listings"`
}

type notificationResponse struct {
	ID        int       `json:"id"`
	MonitorID int       `json:"monitor_id"`
	ListingID *int      `json:"listing_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	IsSent    bool      `json:"is_sent"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(notification models.Notification) notificationResponse {
	return notificationResponse{
		ID:        notification.ID,
		MonitorID: notification.MonitorID,
		ListingID: notification.ListingID,
		Title:     notification.Title,
		Message:   notification.Message,
		Channel:   notification.Channel,
		IsSent:    notification.IsSent,
		CreatedAt: notification.CreatedAt,
	}
}

type notificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
}

type searchRunResponse struct {
	ID            int       `json:"id"`
	MonitorID     *int      `json:"monitor_id,omitempty"`
	Marketplace   string    `json:"marketplace"`
	Query         string    `json:"query"`
	ResultCount   int       `json:"result_count"`
	IsSuccess     bool      `json:"is_success"`
	StatusMessage *string   `json:"status_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toSearchRunResponse(run models.SearchRun) searchRunResponse {
	return searchRunResponse{
		ID:            run.ID,
		MonitorID:     run.MonitorID,
		Marketplace:   run.Marketplace,
		Query:         run.Query,
		ResultCount:   run.ResultCount,
		IsSuccess:     run.IsSuccess,
		StatusMessage: run.StatusMessage,
		CreatedAt:     run.CreatedAt,
	}
}

type searchRunsResponse struct {
	Runs []searchRunResponse `json:"runs"`
}

type checkResponse struct {
	Status    string `json:"status"`
	MonitorID int    `json:"monitor_id"`
}

// splitKeywords splits the comma separated keywords of a search request.
func splitKeywords(keywords string) []string {
	return trimList(strings.Split(keywords, ","))
}

func trimList(values []string) []string {
	return lo.FilterMap(values, func(value string, _ int) (string, bool) {
		value = strings.TrimSpace(value)
		return value, value != ""
	})
}
