package storage_test

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/marketradar-pl/marketradar/internal/platform"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/marketradar-pl/marketradar/internal/platform/models/modelstesting"
	"github.com/marketradar-pl/marketradar/internal/platform/storage"
	pgmodels "github.com/marketradar-pl/marketradar/internal/platform/storage/gen/postgres/public/model"
	"github.com/marketradar-pl/marketradar/internal/platform/storage/storagetesting"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationCreateMonitor() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	monitor := modelstesting.FakeMonitor(func(m *models.Monitor) {
		m.ID = 0
		m.LastCheckedAt = nil
	})

	post := storage.NewPostgres(s.DB)

	err := post.CreateMonitor(context.TODO(), &monitor)

	s.Require().NoError(err, "shouldn't return any error")
	s.NotZero(monitor.ID, "should set monitor ID")
	s.NotZero(monitor.CreatedAt.UnixMilli(), "should set monitor creation time")

	stored, err := post.GetMonitor(context.TODO(), monitor.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(&monitor, stored, "should store all monitor fields")
}

func (s *PostgresTestSuite) TestIntegrationGetMonitor() {
	storagetesting.CleanupData(s.T(), s.DB)
	lastChecked := time.Date(2024, time.May, 2, 10, 0, 0, 0, loc)

	storedMonitors := []pgmodels.Monitor{
		storedMonitor(123),
		storedMonitor(124, func(m *pgmodels.Monitor) {
			m.Name = "Domy pod Krakowem"
			m.Keywords = "dom\nogród"
			m.Marketplaces = "gumtree"
			m.Filters = `{"price_min":500000,"rooms":4}`
			m.TelegramChatID = lo.ToPtr(int64(998877))
			m.LastCheckedAt = &lastChecked
		}),
	}

	tests := map[string]struct {
		id          int
		wantMonitor *models.Monitor
		wantErr     error
	}{
		"plain monitor": {
			id: 123,
			wantMonitor: &models.Monitor{
				ID:              123,
				Name:            "Mieszkania Mokotów",
				Keywords:        []string{"mieszkanie", "mokotów"},
				Marketplaces:    []string{"otodom", "gumtree"},
				IntervalMinutes: 30,
				IsActive:        true,
			},
		},
		"monitor with filters and telegram chat": {
			id: 124,
			wantMonitor: &models.Monitor{
				ID:           124,
				Name:         "Domy pod Krakowem",
				Keywords:     []string{"dom", "ogród"},
				Marketplaces: []string{"gumtree"},
				Filters: models.Filters{
					PriceMin: lo.ToPtr(500000.0),
					Rooms:    lo.ToPtr(4),
				},
				IntervalMinutes: 30,
				TelegramChatID:  lo.ToPtr(int64(998877)),
				IsActive:        true,
				LastCheckedAt:   &lastChecked,
			},
		},
		"not existing monitor error": {
			id:      7,
			wantErr: platform.ErrMonitorNotFound,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertMonitors(s.T(), s.DB, storedMonitors...)

			post := storage.NewPostgres(s.DB)

			monitor, err := post.GetMonitor(context.TODO(), tt.id)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			assertMonitor(s.T(), tt.wantMonitor, monitor)
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationListMonitors() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	storagetesting.InsertMonitors(s.T(), s.DB,
		storedMonitor(124, func(m *pgmodels.Monitor) { m.Name = "Drugi monitor" }),
		storedMonitor(123),
	)

	post := storage.NewPostgres(s.DB)

	monitors, err := post.ListMonitors(context.TODO())

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(monitors, 2, "should return all monitors")
	s.Equal([]int{123, 124}, lo.Map(monitors, func(m models.Monitor, _ int) int { return m.ID }), "should order monitors by ID")
	s.Equal("Mieszkania Mokotów", monitors[0].Name)
	s.Equal("Drugi monitor", monitors[1].Name)
	s.Equal([]string{"mieszkanie", "mokotów"}, monitors[0].Keywords, "should unpack keywords")
}

func (s *PostgresTestSuite) TestIntegrationUpdateMonitor() {
	storagetesting.CleanupData(s.T(), s.DB)
	lastChecked := time.Date(2024, time.May, 2, 10, 0, 0, 0, loc)

	tests := map[string]struct {
		monitor   models.Monitor
		wantState *pgmodels.Monitor
		wantErr   error
	}{
		"existing monitor": {
			monitor: models.Monitor{
				ID:           123,
				Name:         "Domy Wilanów",
				Keywords:     []string{"dom", "wilanów"},
				Marketplaces: []string{"otodom", "gumtree"},
				Filters: models.Filters{
					PriceMax: lo.ToPtr(2000000.0),
				},
				IntervalMinutes: 60,
				TelegramChatID:  lo.ToPtr(int64(112233)),
				IsActive:        false,
				LastCheckedAt:   &lastChecked,
			},
			wantState: &pgmodels.Monitor{
				ID:              123,
				Name:            "Domy Wilanów",
				Keywords:        "dom\nwilanów",
				Marketplaces:    "otodom\ngumtree",
				Filters:         `{"price_max":2000000}`,
				IntervalMinutes: 60,
				TelegramChatID:  lo.ToPtr(int64(112233)),
				IsActive:        false,
				LastCheckedAt:   &lastChecked,
			},
		},
		"not existing monitor error": {
			monitor: models.Monitor{
				ID:   7,
				Name: "Nieistniejący monitor",
			},
			wantErr: platform.ErrMonitorNotFound,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123))

			post := storage.NewPostgres(s.DB)

			err := post.UpdateMonitor(context.TODO(), &tt.monitor)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")

			state := storagetesting.GetMonitors(s.T(), s.DB)
			s.Require().Len(state, 1, "should keep single monitor")

			got := state[0]
			if tt.wantState.LastCheckedAt != nil {
				s.Require().NotNil(got.LastCheckedAt, "monitor should have last check time set")
				s.Require().True(got.LastCheckedAt.Equal(*tt.wantState.LastCheckedAt), "monitor should have correct last check time")
				got.LastCheckedAt = tt.wantState.LastCheckedAt
			}
			got.CreatedAt = tt.wantState.CreatedAt

			s.Equal(*tt.wantState, got, "monitor has incorrect values")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationDeleteMonitor() {
	storagetesting.CleanupData(s.T(), s.DB)
	createdAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)

	tests := map[string]struct {
		id      int
		wantErr error
	}{
		"existing monitor": {
			id: 123,
		},
		"not existing monitor error": {
			id:      7,
			wantErr: platform.ErrMonitorNotFound,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123), storedMonitor(124))
			listing := modelstesting.FakeListing()
			storagetesting.InsertListings(s.T(), s.DB, *storage.ToDBListing(&listing, 123, nil))
			storagetesting.InsertNotifications(s.T(), s.DB, pgmodels.Notification{
				MonitorID: 123,
				Title:     "New listing",
				Message:   "Found new listing",
				Channel:   models.ChannelLog,
				CreatedAt: createdAt,
			})
			storagetesting.InsertSearchRuns(s.T(), s.DB, pgmodels.SearchRun{
				MonitorID:   lo.ToPtr(int32(123)),
				Marketplace: "otodom",
				Query:       "mieszkanie mokotów",
				ResultCount: 1,
				IsSuccess:   true,
				CreatedAt:   createdAt,
			})

			post := storage.NewPostgres(s.DB)

			err := post.DeleteMonitor(context.TODO(), tt.id)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")

			monitors := storagetesting.GetMonitors(s.T(), s.DB)
			s.Require().Len(monitors, 1, "should delete only requested monitor")
			s.Equal(int32(124), monitors[0].ID, "should keep other monitors")

			s.Empty(storagetesting.GetListings(s.T(), s.DB), "should delete monitor listings")
			s.Empty(storagetesting.GetNotifications(s.T(), s.DB), "should delete monitor notifications")

			runs := storagetesting.GetSearchRuns(s.T(), s.DB)
			s.Require().Len(runs, 1, "should keep search runs")
			s.Nil(runs[0].MonitorID, "should detach search runs from deleted monitor")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationListDueMonitors() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, loc)

	storagetesting.InsertMonitors(s.T(), s.DB,
		storedMonitor(201, func(m *pgmodels.Monitor) {
			m.Name = "Nigdy nie sprawdzany"
		}),
		storedMonitor(202, func(m *pgmodels.Monitor) {
			m.Name = "Sprawdzony niedawno"
			m.LastCheckedAt = lo.ToPtr(now.Add(-10 * time.Minute))
		}),
		storedMonitor(203, func(m *pgmodels.Monitor) {
			m.Name = "Zaległy"
			m.LastCheckedAt = lo.ToPtr(now.Add(-45 * time.Minute))
		}),
		storedMonitor(204, func(m *pgmodels.Monitor) {
			m.Name = "Wyłączony"
			m.IsActive = false
			m.LastCheckedAt = lo.ToPtr(now.Add(-45 * time.Minute))
		}),
	)

	post := storage.NewPostgres(s.DB)

	monitors, err := post.ListDueMonitors(context.TODO(), now)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(
		[]int{201, 203},
		lo.Map(monitors, func(m models.Monitor, _ int) int { return m.ID }),
		"should return only active monitors with elapsed interval",
	)
}

func (s *PostgresTestSuite) TestIntegrationSetMonitorChecked() {
	storagetesting.CleanupData(s.T(), s.DB)
	checkedAt := time.Date(2024, time.May, 10, 12, 30, 0, 0, loc)

	tests := map[string]struct {
		id      int
		wantErr error
	}{
		"existing monitor": {
			id: 123,
		},
		"not existing monitor error": {
			id:      7,
			wantErr: platform.ErrMonitorNotFound,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123))

			post := storage.NewPostgres(s.DB)

			err := post.SetMonitorChecked(context.TODO(), tt.id, checkedAt)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")

			state := storagetesting.GetMonitors(s.T(), s.DB)
			s.Require().Len(state, 1)
			s.Require().NotNil(state[0].LastCheckedAt, "monitor should have last check time set")
			s.True(state[0].LastCheckedAt.Equal(checkedAt), "monitor should have correct last check time")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationUpsertListings() {
	storagetesting.CleanupData(s.T(), s.DB)
	monitorID := 123

	listings := []models.Listing{
		{
			Title:        "Mieszkanie 3-pokojowe Mokotów",
			Price:        750000,
			Currency:     "PLN",
			URL:          "https://www.otodom.pl/pl/oferta/mieszkanie-ID1",
			Marketplace:  "otodom",
			Location:     "Warszawa, Mokotów",
			Description:  "Jasne mieszkanie z balkonem",
			PropertyType: models.PropertyApartment,
			AreaSize:     lo.ToPtr(64.0),
			Rooms:        lo.ToPtr(3),
			SellerName:   "Biuro Mokotów",
			SellerType:   models.SellerAgency,
			Condition:    "used",
		},
		{
			Title:        "Kawalerka przy Rynku",
			Price:        459000,
			Currency:     "PLN",
			URL:          "https://www.gumtree.pl/a-mieszkania/krakow/kawalerka-ID2",
			Marketplace:  "gumtree",
			Location:     "Kraków",
			PropertyType: models.PropertyApartment,
			SellerType:   models.SellerPrivate,
			Condition:    models.Unknown,
		},
	}

	dbListing := func(listing models.Listing, ops ...func(*pgmodels.Listing)) pgmodels.Listing {
		row := *storage.ToDBListing(&listing, monitorID, nil)
		for _, op := range ops {
			op(&row)
		}
		return row
	}

	tests := map[string]struct {
		storedListings   []pgmodels.Listing
		listings         []models.Listing
		wantCreated      []models.Listing
		wantPriceChanged []models.PriceChange
		wantState        []pgmodels.Listing
	}{
		"all listings new": {
			listings:    listings,
			wantCreated: listings,
			wantState: []pgmodels.Listing{
				dbListing(listings[0]),
				dbListing(listings[1]),
			},
		},
		"price change detected": {
			storedListings: []pgmodels.Listing{
				dbListing(listings[0], func(l *pgmodels.Listing) { l.Price = 700000 }),
			},
			listings:    listings,
			wantCreated: []models.Listing{listings[1]},
			wantPriceChanged: []models.PriceChange{
				{Listing: listings[0], PreviousPrice: 700000},
			},
			wantState: []pgmodels.Listing{
				dbListing(listings[0], func(l *pgmodels.Listing) {
					l.PreviousPrice = lo.ToPtr(700000.0)
					l.PriceChanged = true
				}),
				dbListing(listings[1]),
			},
		},
		"unchanged listing keeps price history": {
			storedListings: []pgmodels.Listing{
				dbListing(listings[0], func(l *pgmodels.Listing) {
					l.PreviousPrice = lo.ToPtr(700000.0)
					l.PriceChanged = true
				}),
			},
			listings:    listings,
			wantCreated: []models.Listing{listings[1]},
			wantState: []pgmodels.Listing{
				dbListing(listings[0], func(l *pgmodels.Listing) {
					l.PreviousPrice = lo.ToPtr(700000.0)
					l.PriceChanged = true
				}),
				dbListing(listings[1]),
			},
		},
		"duplicated urls stored once": {
			listings:    append([]models.Listing{listings[0]}, listings...),
			wantCreated: listings,
			wantState: []pgmodels.Listing{
				dbListing(listings[0]),
				dbListing(listings[1]),
			},
		},
		"no listings found": {},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(int32(monitorID)))
			storagetesting.InsertListings(s.T(), s.DB, tt.storedListings...)

			post := storage.NewPostgres(s.DB)

			created, priceChanged, err := post.UpsertListings(context.TODO(), monitorID, tt.listings)

			s.Require().NoError(err, "shouldn't return any error")
			assertFoundListings(s.T(), tt.wantCreated, created, monitorID)
			assertPriceChanges(s.T(), tt.wantPriceChanged, priceChanged, monitorID)
			assertListings(s.T(), tt.wantState, storagetesting.GetListings(s.T(), s.DB))
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationListListings() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	seenEarlier := time.Date(2024, time.May, 10, 11, 0, 0, 0, loc)
	seenLater := time.Date(2024, time.May, 10, 12, 0, 0, 0, loc)

	first := modelstesting.FakeListing(func(l *models.Listing) {
		l.Title = "Starsze ogłoszenie"
		l.URL = "https://www.otodom.pl/pl/oferta/starsze-ID1"
	})
	second := modelstesting.FakeListing(func(l *models.Listing) {
		l.Title = "Nowsze ogłoszenie"
		l.URL = "https://www.otodom.pl/pl/oferta/nowsze-ID2"
	})

	firstRow := *storage.ToDBListing(&first, 123, nil)
	firstRow.LastSeenAt = seenEarlier
	secondRow := *storage.ToDBListing(&second, 123, nil)
	secondRow.LastSeenAt = seenLater

	storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123))
	storagetesting.InsertListings(s.T(), s.DB, firstRow, secondRow)

	post := storage.NewPostgres(s.DB)

	stored, err := post.ListListings(context.TODO(), 123)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(stored, 2, "should return all monitor listings")
	s.Equal(
		[]string{"Nowsze ogłoszenie", "Starsze ogłoszenie"},
		lo.Map(stored, func(l models.Listing, _ int) string { return l.Title }),
		"should order listings from the most recently seen",
	)
	s.Equal(lo.ToPtr(123), stored[0].MonitorID, "should set monitor ID")
	s.NotZero(stored[0].ID, "should set listing ID")
}

func (s *PostgresTestSuite) TestIntegrationSaveSearchRun() {
	storagetesting.CleanupData(s.T(), s.DB)

	tests := map[string]struct {
		run       models.SearchRun
		wantState pgmodels.SearchRun
	}{
		"monitor search run": {
			run: models.SearchRun{
				MonitorID:   lo.ToPtr(123),
				Marketplace: "otodom",
				Query:       "mieszkanie mokotów",
				ResultCount: 2,
				IsSuccess:   true,
			},
			wantState: pgmodels.SearchRun{
				MonitorID:   lo.ToPtr(int32(123)),
				Marketplace: "otodom",
				Query:       "mieszkanie mokotów",
				ResultCount: 2,
				IsSuccess:   true,
			},
		},
		"failed search run": {
			run: models.SearchRun{
				MonitorID:     lo.ToPtr(123),
				Marketplace:   "allegro",
				Query:         "mieszkanie mokotów",
				StatusMessage: lo.ToPtr("unknown marketplace"),
			},
			wantState: pgmodels.SearchRun{
				MonitorID:     lo.ToPtr(int32(123)),
				Marketplace:   "allegro",
				Query:         "mieszkanie mokotów",
				StatusMessage: lo.ToPtr("unknown marketplace"),
			},
		},
		"ad-hoc search run without monitor": {
			run: models.SearchRun{
				Marketplace: "gumtree",
				Query:       "kawalerka kraków",
				ResultCount: 5,
				IsSuccess:   true,
			},
			wantState: pgmodels.SearchRun{
				Marketplace: "gumtree",
				Query:       "kawalerka kraków",
				ResultCount: 5,
				IsSuccess:   true,
			},
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123))

			post := storage.NewPostgres(s.DB)

			run := tt.run
			err := post.SaveSearchRun(context.TODO(), &run)

			s.Require().NoError(err, "shouldn't return any error")
			s.NotZero(run.ID, "should set search run ID")

			state := storagetesting.GetSearchRuns(s.T(), s.DB)
			s.Require().Len(state, 1, "should store single search run")

			got := state[0]
			s.NotZero(got.CreatedAt.UnixMilli(), "search run should have creation time set")
			got.ID = 0
			got.CreatedAt = time.Time{}
			s.Equal(tt.wantState, got, "search run has incorrect values")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationListSearchRuns() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	earlier := time.Date(2024, time.May, 10, 11, 0, 0, 0, loc)
	later := time.Date(2024, time.May, 10, 12, 0, 0, 0, loc)

	storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123), storedMonitor(124))
	storagetesting.InsertSearchRuns(s.T(), s.DB,
		pgmodels.SearchRun{
			MonitorID:   lo.ToPtr(int32(123)),
			Marketplace: "otodom",
			Query:       "mieszkanie mokotów",
			ResultCount: 2,
			IsSuccess:   true,
			CreatedAt:   earlier,
		},
		pgmodels.SearchRun{
			MonitorID:   lo.ToPtr(int32(123)),
			Marketplace: "gumtree",
			Query:       "mieszkanie mokotów",
			ResultCount: 1,
			IsSuccess:   true,
			CreatedAt:   later,
		},
		pgmodels.SearchRun{
			MonitorID:   lo.ToPtr(int32(124)),
			Marketplace: "otodom",
			Query:       "dom wilanów",
			IsSuccess:   true,
			CreatedAt:   later,
		},
	)

	post := storage.NewPostgres(s.DB)

	runs, err := post.ListSearchRuns(context.TODO(), 123)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(runs, 2, "should return only monitor's search runs")
	s.Equal(
		[]string{"gumtree", "otodom"},
		lo.Map(runs, func(r models.SearchRun, _ int) string { return r.Marketplace }),
		"should order search runs from the most recent",
	)
}

func (s *PostgresTestSuite) TestIntegrationSaveNotifications() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	listing := modelstesting.FakeListing()
	storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123))
	storagetesting.InsertListings(s.T(), s.DB, *storage.ToDBListing(&listing, 123, nil))
	listingID := int(storagetesting.GetListings(s.T(), s.DB)[0].ID)

	post := storage.NewPostgres(s.DB)

	notifications := []models.Notification{
		{
			MonitorID: 123,
			ListingID: &listingID,
			Title:     "New listing: Kawalerka przy Rynku",
			Message:   "Kawalerka przy Rynku\n459000 PLN, Kraków",
			Channel:   models.ChannelTelegram,
		},
		{
			MonitorID: 123,
			Title:     "Price change: Mieszkanie 3-pokojowe",
			Message:   "Mieszkanie 3-pokojowe\n750000 PLN, was 760000 PLN",
			Channel:   models.ChannelLog,
		},
	}

	saved, err := post.SaveNotifications(context.TODO(), notifications)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(saved, 2, "should return all saved notifications")

	for ix := range saved {
		s.NotZero(saved[ix].ID, "notification should have ID set")
		s.NotZero(saved[ix].CreatedAt.UnixMilli(), "notification should have creation time set")

		want := notifications[ix]
		want.ID = saved[ix].ID
		want.CreatedAt = saved[ix].CreatedAt
		s.Equal(want, saved[ix], "notification at index %d has incorrect values", ix)
	}

	empty, err := post.SaveNotifications(context.TODO(), nil)
	s.Require().NoError(err, "shouldn't return any error for no notifications")
	s.Nil(empty, "should store nothing for no notifications")

	stored, err := post.ListNotifications(context.TODO(), 123)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(stored, 2, "should list all monitor notifications")
	s.Equal(saved[1].ID, stored[0].ID, "should order notifications from the most recent")
	s.Equal(saved[0].ID, stored[1].ID, "should order notifications from the most recent")
}

func (s *PostgresTestSuite) TestIntegrationMarkNotificationsSent() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	createdAt := time.Date(2024, time.May, 10, 12, 0, 0, 0, loc)

	storagetesting.InsertMonitors(s.T(), s.DB, storedMonitor(123))
	storagetesting.InsertNotifications(s.T(), s.DB,
		pgmodels.Notification{MonitorID: 123, Title: "Pierwsze", Message: "m", Channel: models.ChannelLog, CreatedAt: createdAt},
		pgmodels.Notification{MonitorID: 123, Title: "Drugie", Message: "m", Channel: models.ChannelLog, CreatedAt: createdAt},
		pgmodels.Notification{MonitorID: 123, Title: "Trzecie", Message: "m", Channel: models.ChannelLog, CreatedAt: createdAt},
	)

	state := storagetesting.GetNotifications(s.T(), s.DB)
	s.Require().Len(state, 3)
	slices.SortFunc(state, func(a, b pgmodels.Notification) int { return int(a.ID - b.ID) })

	post := storage.NewPostgres(s.DB)

	err := post.MarkNotificationsSent(context.TODO(), []int{int(state[0].ID), int(state[1].ID)})

	s.Require().NoError(err, "shouldn't return any error")

	state = storagetesting.GetNotifications(s.T(), s.DB)
	slices.SortFunc(state, func(a, b pgmodels.Notification) int { return int(a.ID - b.ID) })
	s.True(state[0].IsSent, "should mark first notification as sent")
	s.True(state[1].IsSent, "should mark second notification as sent")
	s.False(state[2].IsSent, "should keep other notifications unsent")

	s.Require().NoError(post.MarkNotificationsSent(context.TODO(), nil), "shouldn't return any error for no IDs")
}

// storedMonitor is a helper test function returning monitor row fixture.
func storedMonitor(id int32, ops ...func(*pgmodels.Monitor)) pgmodels.Monitor {
	monitor := pgmodels.Monitor{
		ID:              id,
		Name:            "Mieszkania Mokotów",
		Keywords:        "mieszkanie\nmokotów",
		Marketplaces:    "otodom\ngumtree",
		Filters:         "{}",
		IntervalMinutes: 30,
		IsActive:        true,
		CreatedAt:       time.Date(2024, time.April, 1, 1, 1, 1, 0, loc),
	}

	for _, op := range ops {
		op(&monitor)
	}

	return monitor
}

// assertMonitor is a helper test function to assert monitor.
func assertMonitor(t *testing.T, expected, actual *models.Monitor) {
	t.Helper()

	require.NotNil(t, actual, "monitor should not be nil")
	require.NotZero(t, actual.CreatedAt.UnixMilli(), "monitor should have creation time set")

	if expected.LastCheckedAt == nil {
		require.Nil(t, actual.LastCheckedAt, "monitor shouldn't have last check time set")
	} else {
		require.NotNil(t, actual.LastCheckedAt, "monitor should have last check time set")
		require.True(t, actual.LastCheckedAt.Equal(*expected.LastCheckedAt), "monitor should have correct last check time")
		actual.LastCheckedAt = expected.LastCheckedAt
	}
	actual.CreatedAt = expected.CreatedAt

	assert.Equal(t, *expected, *actual, "monitor has incorrect values")
}

// assertFoundListings is a helper test function to assert listings returned from upsert.
func assertFoundListings(t *testing.T, expected, actual []models.Listing, monitorID int) {
	t.Helper()

	require.Len(t, actual, len(expected), "listings slice should have correct length")

	exp := make([]models.Listing, 0, len(expected))
	for ix := range expected {
		listing := expected[ix]
		listing.MonitorID = lo.ToPtr(monitorID)
		exp = append(exp, listing)
	}

	slices.SortFunc(exp, func(a, b models.Listing) int { return strings.Compare(a.URL, b.URL) })
	slices.SortFunc(actual, func(a, b models.Listing) int { return strings.Compare(a.URL, b.URL) })

	for ix := range actual {
		require.NotZero(t, actual[ix].ID, "listing should have ID set")
		actual[ix].ID = 0
		assert.EqualValues(t, exp[ix], actual[ix], "listing at index %d has incorrect values", ix)
	}
}

// assertPriceChanges is a helper test function to assert price changes returned from upsert.
func assertPriceChanges(t *testing.T, expected, actual []models.PriceChange, monitorID int) {
	t.Helper()

	require.Len(t, actual, len(expected), "price changes slice should have correct length")

	exp := make([]models.PriceChange, 0, len(expected))
	for ix := range expected {
		change := expected[ix]
		change.Listing.MonitorID = lo.ToPtr(monitorID)
		exp = append(exp, change)
	}

	slices.SortFunc(exp, func(a, b models.PriceChange) int { return strings.Compare(a.Listing.URL, b.Listing.URL) })
	slices.SortFunc(actual, func(a, b models.PriceChange) int { return strings.Compare(a.Listing.URL, b.Listing.URL) })

	for ix := range actual {
		require.NotZero(t, actual[ix].Listing.ID, "listing should have ID set")
		actual[ix].Listing.ID = 0
		assert.EqualValues(t, exp[ix], actual[ix], "price change at index %d has incorrect values", ix)
	}
}

// assertListings is a helper test function to assert stored listings state.
func assertListings(t *testing.T, expected, actual []pgmodels.Listing) {
	t.Helper()

	require.Len(t, actual, len(expected), "listings slice should have correct length")

	slices.SortFunc(expected, func(a, b pgmodels.Listing) int { return strings.Compare(a.URL, b.URL) })
	slices.SortFunc(actual, func(a, b pgmodels.Listing) int { return strings.Compare(a.URL, b.URL) })

	lo.ForEach(actual, func(_ pgmodels.Listing, ix int) {
		actual[ix].ID = 0
		actual[ix].CreatedAt = time.Time{}
		actual[ix].LastSeenAt = time.Time{}
		expected[ix].CreatedAt = time.Time{}
		expected[ix].LastSeenAt = time.Time{}
	})

	for ix := range actual {
		assert.EqualValues(t, expected[ix], actual[ix], "listing at index %d has incorrect values", ix)
	}
}
