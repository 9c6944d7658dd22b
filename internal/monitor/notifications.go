package monitor

import (
	"fmt"
	"strconv"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
)

func buildNotifications(
	monitor *models.Monitor,
	created []models.Listing,
	priceChanged []models.PriceChange,
) []models.Notification {
	notifications := lo.Map(created, func(listing models.Listing, _ int) models.Notification {
		return newListingNotification(monitor, listing)
	})

	return append(notifications, lo.Map(priceChanged, func(change models.PriceChange, _ int) models.Notification {
		return priceChangeNotification(monitor, change)
	})...)
}

func newListingNotification(monitor *models.Monitor, listing models.Listing) models.Notification {
	return models.Notification{
		MonitorID: monitor.ID,
		ListingID: listingID(listing),
		Title:     fmt.Sprintf("New listing: %s", listing.Title),
		Message: fmt.Sprintf(
			"%s\n%s %s, %s\n%s",
			listing.Title,
			formatPrice(listing.Price), listing.Currency,
			listing.Location,
			listing.URL,
		),
		Channel: notificationChannel(monitor),
	}
}

func priceChangeNotification(monitor *models.Monitor, change models.PriceChange) models.Notification {
	return models.Notification{
		MonitorID: monitor.ID,
		ListingID: listingID(change.Listing),
		Title:     fmt.Sprintf("Price change: %s", change.Listing.Title),
		Message: fmt.Sprintf(
			"%s\n%s %s, was %s %s\n%s",
			change.Listing.Title,
			formatPrice(change.Listing.Price), change.Listing.Currency,
			formatPrice(change.PreviousPrice), change.Listing.Currency,
			change.Listing.URL,
		),
		Channel: notificationChannel(monitor),
	}
}

// notificationChannel picks the delivery channel the monitor is set up for.
func notificationChannel(monitor *models.Monitor) string {
	if monitor.TelegramChatID != nil {
		return models.ChannelTelegram
	}
	return models.ChannelLog
}

func listingID(listing models.Listing) *int {
	if listing.ID == 0 {
		return nil
	}
	return &listing.ID
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
