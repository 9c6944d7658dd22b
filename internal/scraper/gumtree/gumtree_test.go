package gumtree_test

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/marketradar-pl/marketradar/internal/scraper/gumtree"
	"github.com/marketradar-pl/marketradar/internal/scraper/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const searchURL = "https://www.gumtree.pl/s-q-mieszkanie"

func TestUnitSearch(t *testing.T) {
	t.Parallel()

	markupListings := []models.Listing{
		{
			Title:        "Przytulne mieszkanie na Pradze",
			Price:        2400,
			Currency:     "PLN",
			URL:          "https://www.gumtree.pl/a-mieszkanie-wynajem/warszawa/przytulne-mieszkanie-praga/1009123",
			ImageURL:     lo.ToPtr("https://img.gumtree.pl/praga48.jpg"),
			Marketplace:  gumtree.Name,
			Location:     "Warszawa",
			Description:  "Dwa pokoje z aneksem, 48 m2, umeblowane.",
			PropertyType: models.PropertyApartment,
			AreaSize:     lo.ToPtr(48.0),
			SellerName:   models.Unknown,
			SellerType:   models.SellerUnknown,
			Condition:    models.Unknown,
		},
		{
			Title:        "Dom na sprzedaż Wilanów",
			Price:        1590000,
			Currency:     "PLN",
			URL:          "https://www.gumtree.pl/a-dom-sprzedaz/wilanow/dom-z-ogrodem/1007654",
			ImageURL:     lo.ToPtr("https://img.gumtree.pl/wilanow210.jpg"),
			Marketplace:  gumtree.Name,
			Location:     "Warszawa, Wilanów",
			Description:  "Dom 210 m2, 6 pokoi, garaż na dwa auta.",
			PropertyType: models.PropertyHouse,
			AreaSize:     lo.ToPtr(210.0),
			Rooms:        lo.ToPtr(6),
			SellerName:   models.Unknown,
			SellerType:   models.SellerUnknown,
			Condition:    models.Unknown,
		},
	}

	tests := map[string]struct {
		pageFile string
		pageURL  string
		filters  models.Filters
		want     []models.Listing
	}{
		"should extract listings from result tiles": {
			pageFile: "results.html",
			pageURL:  searchURL,
			want:     markupListings,
		},
		"should keep only listings matching filters": {
			pageFile: "results.html",
			pageURL:  "https://www.gumtree.pl/s-q-mieszkanie?pr=,3000",
			filters:  models.Filters{PriceMax: lo.ToPtr(3000.0)},
			want:     markupListings[:1],
		},
		"should fall back to text scan when page has no tiles": {
			pageFile: "results_fallback.html",
			pageURL:  searchURL,
			want: []models.Listing{
				{
					Title:        "Rower górski Kross, stan bardzo dobry, 1 450 zł. Poznań, Jeżyce.",
					Price:        1450,
					Currency:     "PLN",
					URL:          searchURL,
					Marketplace:  gumtree.Name,
					Location:     "Poznań",
					Description:  "Rower górski Kross, stan bardzo dobry, 1 450 zł. Poznań, Jeżyce.",
					PropertyType: models.PropertyUnknown,
					SellerName:   models.Unknown,
					SellerType:   models.SellerUnknown,
					Condition:    models.Unknown,
				},
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher := mocks.NewPageFetcher(t)
			fetcher.On("FetchPage", mock.Anything, tt.pageURL).
				Return(pageFromFile(t, tt.pageFile), nil)

			scr := gumtree.New(fetcher, testLogger())

			got := scr.Search(context.TODO(), []string{"mieszkanie"}, tt.filters)

			assert.Equal(t, tt.want, got, "should return expected listings")
		})
	}
}

func TestUnitSearchBuildsURL(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		keywords []string
		filters  models.Filters
		wantURL  string
	}{
		"should join and escape keywords": {
			keywords: []string{"rower", "górski"},
			wantURL:  "https://www.gumtree.pl/s-q-rower%20g%C3%B3rski",
		},
		"should render both price bounds": {
			keywords: []string{"rower"},
			filters: models.Filters{
				PriceMin: lo.ToPtr(500.0),
				PriceMax: lo.ToPtr(2000.0),
			},
			wantURL: "https://www.gumtree.pl/s-q-rower?pr=500,2000",
		},
		"should leave absent price bounds empty": {
			keywords: []string{"rower"},
			filters:  models.Filters{PriceMin: lo.ToPtr(500.0)},
			wantURL:  "https://www.gumtree.pl/s-q-rower?pr=500,",
		},
		"should append escaped location": {
			keywords: []string{"rower"},
			filters: models.Filters{
				PriceMax: lo.ToPtr(2000.0),
				Location: "Praga Północ",
			},
			wantURL: "https://www.gumtree.pl/s-q-rower?pr=,2000&l=Praga%20P%C3%B3%C5%82noc",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher := mocks.NewPageFetcher(t)
			fetcher.On("FetchPage", mock.Anything, tt.wantURL).
				Return(nil, assert.AnError)

			scr := gumtree.New(fetcher, testLogger())

			got := scr.Search(context.TODO(), tt.keywords, tt.filters)

			assert.Empty(t, got, "should return nothing when fetch fails")
		})
	}
}

func TestUnitItemDetails(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		pageFile string
		pageURL  string
		want     models.Listing
		wantOK   bool
	}{
		"should extract offer page field by field": {
			pageFile: "offer.html",
			pageURL:  "https://www.gumtree.pl/a-mieszkanie-wynajem/warszawa/przytulne-mieszkanie-praga/1009123",
			want: models.Listing{
				Title:        "Przytulne mieszkanie na Pradze",
				Price:        2400,
				Currency:     "PLN",
				URL:          "https://www.gumtree.pl/a-mieszkanie-wynajem/warszawa/przytulne-mieszkanie-praga/1009123",
				ImageURL:     lo.ToPtr("https://www.gumtree.pl/img/praga-1.jpg"),
				Marketplace:  gumtree.Name,
				Location:     "Warszawa, Praga-Północ",
				Description:  "Dwupokojowe mieszkanie z aneksem kuchennym, 48 m2, drugie piętro, cicha kamienica.",
				PropertyType: models.PropertyApartment,
				AreaSize:     lo.ToPtr(48.0),
				Rooms:        lo.ToPtr(2),
				SellerName:   "Anna K.",
				SellerType:   models.SellerUnknown,
				Condition:    "Używane",
			},
			wantOK: true,
		},
		"should fail on removed offer page": {
			pageFile: "offer_removed.html",
			pageURL:  "https://www.gumtree.pl/a-usuniete/0000",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher := mocks.NewPageFetcher(t)
			fetcher.On("FetchPage", mock.Anything, tt.pageURL).
				Return(pageFromFile(t, tt.pageFile), nil)

			scr := gumtree.New(fetcher, testLogger())

			got, ok := scr.ItemDetails(context.TODO(), tt.pageURL)

			require.Equal(t, tt.wantOK, ok, "should report whether extraction succeeded")
			assert.Equal(t, tt.want, got, "should return expected listing")
		})
	}
}

func TestUnitItemDetailsFetchError(t *testing.T) {
	t.Parallel()

	fetcher := mocks.NewPageFetcher(t)
	fetcher.On("FetchPage", mock.Anything, "https://www.gumtree.pl/a-cokolwiek/1").
		Return(nil, assert.AnError)

	scr := gumtree.New(fetcher, testLogger())

	got, ok := scr.ItemDetails(context.TODO(), "https://www.gumtree.pl/a-cokolwiek/1")

	assert.False(t, ok, "should report failed extraction")
	assert.Equal(t, models.Listing{}, got, "should return empty listing")
}

func pageFromFile(t *testing.T, name string) []byte {
	t.Helper()

	page, err := os.ReadFile(path.Join("testdata", name))
	require.NoError(t, err)

	return page
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
