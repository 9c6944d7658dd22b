package helpers

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	pgmodels "github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/model"
	"github.com/marketradar-pl/marketradar/internal/platform/storage/storagetesting"
	"github.com/marketradar-pl/marketradar/internal/scraper/otodom"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// WaitForMonitorChecked is blocking helper function, returns the monitor once
// its last checked time moves past the after marker. Nil after accepts any
// checked monitor.
func WaitForMonitorChecked(t *testing.T, queryable qrm.Queryable, monitorID int32, after *time.Time) *pgmodels.Monitor {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)

		monitors := storagetesting.GetMonitors(t, queryable)
		for ix := range monitors {
			monitor := monitors[ix]
			if monitor.ID != monitorID || monitor.LastCheckedAt == nil {
				continue
			}
			if after == nil || monitor.LastCheckedAt.After(*after) {
				return &monitor
			}
		}
	}
}

// GetListings is helper function for getting monitor's listings from db ordered by URL.
func GetListings(t *testing.T, queryable qrm.Queryable, monitorID int32) []models.Listing {
	t.Helper()

	dbListings := storagetesting.GetListings(t, queryable)

	listings := make([]models.Listing, 0, len(dbListings))
	for ix := range dbListings {
		if dbListings[ix].MonitorID != monitorID {
			continue
		}
		listings = append(listings, *fromDBListing(&dbListings[ix]))
	}

	sort.Slice(listings, func(i, j int) bool { return listings[i].URL < listings[j].URL })

	return listings
}

// GetSearchRuns is helper function for getting monitor's search runs from db ordered by ID.
func GetSearchRuns(t *testing.T, queryable qrm.Queryable, monitorID int32) []pgmodels.SearchRun {
	t.Helper()

	runs := lo.Filter(storagetesting.GetSearchRuns(t, queryable), func(run pgmodels.SearchRun, _ int) bool {
		return run.MonitorID != nil && *run.MonitorID == monitorID
	})

	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })

	return runs
}

// GetNotifications is helper function for getting monitor's notifications from db ordered by ID.
func GetNotifications(t *testing.T, queryable qrm.Queryable, monitorID int32) []pgmodels.Notification {
	t.Helper()

	notifications := lo.Filter(storagetesting.GetNotifications(t, queryable), func(notification pgmodels.Notification, _ int) bool {
		return notification.MonitorID == monitorID
	})

	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })

	return notifications
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting page to return, page number is from 0 to len(pages)-1 inclusive.
// Pages may be filled in after the server is started, they are read per request.
func PrepareMockedHTTPServer(t *testing.T, pages [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	pageToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "text/html; charset=utf-8")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(pages[pageToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { pageToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// GenerateListings generates n listings shaped like otodom result cards, with
// offer URLs under baseURL. Listing fields are limited to what a result card
// carries, so a round trip through extraction reproduces them exactly.
func GenerateListings(t *testing.T, baseURL string, n int) []models.Listing {
	t.Helper()

	results := make([]models.Listing, n)

	for ix := 0; ix < n; ix++ {
		number := ix + 1
		results[ix] = models.Listing{
			Title:        fmt.Sprintf("Mieszkanie Mokotów numer %d", number),
			Price:        float64(500000 + number*10000),
			Currency:     "PLN",
			URL:          fmt.Sprintf("%s/pl/oferta/mieszkanie-ID%d", baseURL, number),
			Marketplace:  otodom.Name,
			Location:     "Warszawa, Mokotów",
			Description:  fmt.Sprintf("Przestronne mieszkanie numer %d blisko metra", number),
			PropertyType: models.PropertyApartment,
			SellerName:   models.Unknown,
			SellerType:   models.SellerUnknown,
			Condition:    models.Unknown,
		}
	}

	return results
}

// ListingsToHTML is helper function which renders listings as an otodom
// results page and returns it as byte slice.
func ListingsToHTML(t *testing.T, listings []models.Listing) []byte {
	t.Helper()

	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html><html><head><title>Wyniki wyszukiwania</title></head><body><main>")
	for ix := range listings {
		writeListingCard(&buf, &listings[ix])
	}
	buf.WriteString("</main></body></html>")

	return buf.Bytes()
}

func writeListingCard(buf *bytes.Buffer, listing *models.Listing) {
	buf.WriteString(`<article data-cy="listing-item">`)
	fmt.Fprintf(buf, `<a data-cy="listing-item-link" href="%s">`, listing.URL)
	fmt.Fprintf(buf, `<p data-cy="listing-item-title">%s</p>`, html.EscapeString(listing.Title))
	buf.WriteString(`</a>`)
	fmt.Fprintf(buf, `<span data-cy="listing-item-price">%s zł</span>`, priceText(listing.Price))
	fmt.Fprintf(buf, `<p data-cy="listing-item-location">%s</p>`, html.EscapeString(listing.Location))
	fmt.Fprintf(buf, `<p data-cy="listing-item-description">%s</p>`, html.EscapeString(listing.Description))
	buf.WriteString(`</article>`)
}

// priceText formats price the way otodom renders it, thousands separated with spaces.
func priceText(price float64) string {
	digits := strconv.FormatFloat(price, 'f', 0, 64)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}

	return strings.Join(append([]string{digits}, groups...), " ")
}

// fromDBListing converts postgres listing model into models.Listing.
func fromDBListing(listing *pgmodels.Listing) *models.Listing {
	return &models.Listing{
		ID:            int(listing.ID),
		MonitorID:     lo.ToPtr(int(listing.MonitorID)),
		Title:         listing.Title,
		Price:         listing.Price,
		PreviousPrice: listing.PreviousPrice,
		PriceChanged:  listing.PriceChanged,
		Currency:      listing.Currency,
		URL:           listing.URL,
		ImageURL:      listing.ImageURL,
		Marketplace:   listing.Marketplace,
		Location:      listing.Location,
		Description:   listing.Description,
		PropertyType:  listing.PropertyType,
		AreaSize:      listing.AreaSize,
		Rooms:         fromDBRooms(listing.Rooms),
		Floor:         listing.Floor,
		SellerName:    listing.SellerName,
		SellerType:    listing.SellerType,
		Condition:     listing.Condition,
	}
}

func fromDBRooms(rooms *int32) *int {
	if rooms == nil {
		return nil
	}
	return lo.ToPtr(int(*rooms))
}
