package monitor

import (
	"testing"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestUnitBuildNotifications(t *testing.T) {
	telegramMonitor := models.Monitor{ID: 7, Name: "mokotów flats", TelegramChatID: lo.ToPtr(int64(123456))}
	logMonitor := models.Monitor{ID: 7, Name: "mokotów flats"}

	listing := models.Listing{
		ID:       31,
		Title:    "Mieszkanie na Pradze",
		Price:    620000,
		Currency: "PLN",
		Location: "Warszawa, Praga-Północ",
		URL:      "https://www.otodom.pl/pl/oferta/praga-ID3",
	}

	tests := map[string]struct {
		monitor      models.Monitor
		created      []models.Listing
		priceChanged []models.PriceChange
		want         []models.Notification
	}{
		"should build notification per new listing": {
			monitor: telegramMonitor,
			created: []models.Listing{listing},
			want: []models.Notification{{
				MonitorID: 7,
				ListingID: lo.ToPtr(31),
				Title:     "New listing: Mieszkanie na Pradze",
				Message:   "Mieszkanie na Pradze\n620000 PLN, Warszawa, Praga-Północ\nhttps://www.otodom.pl/pl/oferta/praga-ID3",
				Channel:   models.ChannelTelegram,
			}},
		},
		"should build notification per price change": {
			monitor:      telegramMonitor,
			priceChanged: []models.PriceChange{{Listing: listing, PreviousPrice: 640000}},
			want: []models.Notification{{
				MonitorID: 7,
				ListingID: lo.ToPtr(31),
				Title:     "Price change: Mieszkanie na Pradze",
				Message:   "Mieszkanie na Pradze\n620000 PLN, was 640000 PLN\nhttps://www.otodom.pl/pl/oferta/praga-ID3",
				Channel:   models.ChannelTelegram,
			}},
		},
		"should order new listings before price changes": {
			monitor:      telegramMonitor,
			created:      []models.Listing{listing},
			priceChanged: []models.PriceChange{{Listing: listing, PreviousPrice: 640000}},
			want: []models.Notification{
				{
					MonitorID: 7,
					ListingID: lo.ToPtr(31),
					Title:     "New listing: Mieszkanie na Pradze",
					Message:   "Mieszkanie na Pradze\n620000 PLN, Warszawa, Praga-Północ\nhttps://www.otodom.pl/pl/oferta/praga-ID3",
					Channel:   models.ChannelTelegram,
				},
				{
					MonitorID: 7,
					ListingID: lo.ToPtr(31),
					Title:     "Price change: Mieszkanie na Pradze",
					Message:   "Mieszkanie na Pradze\n620000 PLN, was 640000 PLN\nhttps://www.otodom.pl/pl/oferta/praga-ID3",
					Channel:   models.ChannelTelegram,
				},
			},
		},
		"should use log channel when monitor has no telegram chat": {
			monitor: logMonitor,
			created: []models.Listing{listing},
			want: []models.Notification{{
				MonitorID: 7,
				ListingID: lo.ToPtr(31),
				Title:     "New listing: Mieszkanie na Pradze",
				Message:   "Mieszkanie na Pradze\n620000 PLN, Warszawa, Praga-Północ\nhttps://www.otodom.pl/pl/oferta/praga-ID3",
				Channel:   models.ChannelLog,
			}},
		},
		"should skip listing link for unsaved listings": {
			monitor: telegramMonitor,
			created: []models.Listing{{
				Title:    "Dom pod lasem",
				Price:    1999.99,
				Currency: "PLN",
				Location: "Komorniki",
				URL:      "https://www.gumtree.pl/a-dom/9",
			}},
			want: []models.Notification{{
				MonitorID: 7,
				Title:     "New listing: Dom pod lasem",
				Message:   "Dom pod lasem\n1999.99 PLN, Komorniki\nhttps://www.gumtree.pl/a-dom/9",
				Channel:   models.ChannelTelegram,
			}},
		},
		"should return no notifications when nothing changed": {
			monitor: telegramMonitor,
			want:    []models.Notification{},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			got := buildNotifications(&tt.monitor, tt.created, tt.priceChanged)

			assert.Equal(t, tt.want, got, "should build correct notifications")
		})
	}
}
