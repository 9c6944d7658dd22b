package modelstesting

import (
	"math/rand"
	"strconv"

	"github.com/go-faker/faker/v4"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
)

// FakeListing returns models.Listing with fake data.
func FakeListing(ops ...func(l *models.Listing)) models.Listing {
	listing := models.Listing{
		Title:        faker.Sentence(),
		Price:        float64(rand.Intn(1000000) + 1),
		Currency:     "PLN",
		URL:          faker.URL(),
		ImageURL:     lo.ToPtr(faker.URL()),
		Marketplace:  faker.Word(),
		Location:     faker.Word(),
		Description:  faker.Sentence(),
		PropertyType: models.PropertyApartment,
		AreaSize:     lo.ToPtr(float64(rand.Intn(200) + 20)),
		Rooms:        lo.ToPtr(rand.Intn(5) + 1),
		Floor:        lo.ToPtr(strconv.Itoa(rand.Intn(10))),
		SellerName:   faker.Name(),
		SellerType:   models.SellerPrivate,
		Condition:    faker.Word(),
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}

// FakeMonitor returns active models.Monitor with fake data and telegram
// notifications set up.
func FakeMonitor(ops ...func(m *models.Monitor)) models.Monitor {
	monitor := models.Monitor{
		ID:              rand.Intn(1000) + 1,
		Name:            faker.Word(),
		Keywords:        []string{faker.Word(), faker.Word()},
		Marketplaces:    []string{faker.Word()},
		IntervalMinutes: rand.Intn(120) + 5,
		TelegramChatID:  lo.ToPtr(rand.Int63()),
		IsActive:        true,
	}

	for _, op := range ops {
		op(&monitor)
	}

	return monitor
}

// FakeNotification returns unsent models.Notification with fake data.
func FakeNotification(ops ...func(n *models.Notification)) models.Notification {
	notification := models.Notification{
		MonitorID: rand.Intn(1000) + 1,
		Title:     faker.Sentence(),
		Message:   faker.Sentence(),
		Channel:   models.ChannelTelegram,
	}

	for _, op := range ops {
		op(&notification)
	}

	return notification
}
