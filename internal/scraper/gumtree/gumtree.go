// Package gumtree implements the marketplace scraper for gumtree.pl
// classifieds.
package gumtree

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/marketradar-pl/marketradar/internal/scraper"
	"github.com/marketradar-pl/marketradar/internal/scraper/extract"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Name is the marketplace identifier gumtree listings carry.
const Name = "gumtree"

const defaultBaseURL = "https://www.gumtree.pl"

// Result page selector cascades. Order matters.
var (
	cardSelectors        = []string{".tileV1", ".result", "article"}
	linkSelectors        = []string{"a.href-link", `a[href*="/a-"]`}
	titleSelectors       = []string{".title", "h2"}
	priceSelectors       = []string{".price", ".amount"}
	locationSelectors    = []string{".category-location", ".location"}
	descriptionSelectors = []string{".description"}
)

// Offer page selector cascades.
var (
	offerTitleSelectors       = []string{"h1"}
	offerPriceSelectors       = []string{".price-value", ".vip-price"}
	offerDescriptionSelectors = []string{".description"}
	offerLocationSelectors    = []string{".location", ".address"}
	sellerNameSelectors       = []string{".seller-box a", ".seller-box .name"}
	gallerySelectors          = []string{".vip-gallery img", ".carousel img"}
)

var errNoCardLink = errors.New("result card has no listing link")

// searchStrategy is one self-contained way of turning a fetched results page
// into listings.
type searchStrategy struct {
	name    string
	extract func(page []byte, searchURL string) []models.Listing
}

// Option is custom configuration of Scraper.
type Option func(s *Scraper)

// Scraper extracts listings from gumtree.pl results and offer pages.
type Scraper struct {
	fetcher scraper.PageFetcher
	logger  *zerolog.Logger
	baseURL string
}

// New returns new gumtree Scraper fetching pages with fetcher.
func New(fetcher scraper.PageFetcher, logger *zerolog.Logger, ops ...Option) *Scraper {
	scr := &Scraper{
		fetcher: fetcher,
		logger:  logger,
		baseURL: defaultBaseURL,
	}

	for _, op := range ops {
		op(scr)
	}

	return scr
}

// Marketplace returns the static marketplace identifier.
func (s Scraper) Marketplace() string {
	return Name
}

// Search fetches a single results page for keywords and returns the listings
// matching filters. It never fails: fetch and parse problems are logged and
// degraded to an empty result.
func (s Scraper) Search(ctx context.Context, keywords []string, filters models.Filters) []models.Listing {
	searchURL := s.searchURL(keywords, filters)

	page, err := s.fetcher.FetchPage(ctx, searchURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", searchURL).Msg("can't fetch gumtree results page")
		return nil
	}

	strategies := []searchStrategy{
		{name: "markup", extract: s.markupListings},
		{name: "structured data", extract: s.structuredDataListings},
	}

	// First strategy extracting anything wins; filters are applied to its
	// result, so a page where everything gets filtered out stays empty.
	for _, strategy := range strategies {
		listings := strategy.extract(page, searchURL)
		if len(listings) == 0 {
			continue
		}

		matched := lo.Filter(listings, func(listing models.Listing, _ int) bool {
			return scraper.MatchesFilters(listing, filters)
		})

		s.logger.Debug().
			Str("strategy", strategy.name).
			Int("extracted", len(listings)).
			Int("matched", len(matched)).
			Msg("gumtree search finished")

		if len(matched) == 0 {
			return nil
		}

		return matched
	}

	return nil
}

// ItemDetails fetches a single offer page and extracts the full listing.
// Returns false when nothing could be extracted.
func (s Scraper) ItemDetails(ctx context.Context, pageURL string) (models.Listing, bool) {
	page, err := s.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", pageURL).Msg("can't fetch gumtree offer page")
		return models.Listing{}, false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		s.logger.Warn().Err(err).Str("url", pageURL).Msg("can't parse gumtree offer page")
		return models.Listing{}, false
	}

	// Gumtree rarely embeds linked data, but when it does it is the most
	// reliable source.
	if listings := extract.StructuredData(doc, Name, pageURL, s.logger); len(listings) > 0 {
		return listings[0], true
	}

	return s.listingFromOfferPage(doc, pageURL)
}

func (s Scraper) markupListings(page []byte, searchURL string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		s.logger.Warn().Err(err).Msg("can't parse gumtree results page")
		return nil
	}

	cards := extract.Containers(doc, cardSelectors)
	if cards == nil {
		return nil
	}

	listings := make([]models.Listing, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		listing, err := s.listingFromCard(card)
		if err != nil {
			s.logger.Debug().Err(err).Str("url", searchURL).Msg("skipping gumtree result card")
			return
		}
		listings = append(listings, listing)
	})

	return listings
}

func (s Scraper) structuredDataListings(page []byte, searchURL string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err == nil {
		if listings := extract.StructuredData(doc, Name, searchURL, s.logger); len(listings) > 0 {
			return listings
		}
	}

	return extract.HeuristicListings(extract.ProseText(page), Name, searchURL)
}

func (s Scraper) listingFromCard(card *goquery.Selection) (models.Listing, error) {
	href := extract.FirstAttr(card, linkSelectors, "href")
	if href == "" {
		return models.Listing{}, errNoCardLink
	}

	listing := models.Listing{
		Title:       models.DefaultTitle,
		Currency:    extract.CurrencyPLN,
		URL:         extract.AbsoluteURL(s.baseURL, href),
		Marketplace: Name,
		Location:    models.Unknown,
		SellerName:  models.Unknown,
		SellerType:  models.SellerUnknown,
		Condition:   models.Unknown,
	}

	if title := extract.FirstText(card, titleSelectors); title != "" {
		listing.Title = title
	}
	if priceText := extract.FirstText(card, priceSelectors); priceText != "" {
		listing.Price, listing.Currency = extract.PriceWithCurrency(priceText)
	}
	// The location cell often carries the posting date after a dash.
	if location := extract.FirstText(card, locationSelectors); location != "" {
		if place := strings.TrimSpace(strings.SplitN(location, " - ", 2)[0]); place != "" {
			listing.Location = place
		}
	}
	listing.Description = extract.FirstText(card, descriptionSelectors)

	details := extract.NormalizeSpace(card.Text())
	listing.PropertyType = extract.PropertyType(listing.Title, details)
	listing.AreaSize = extract.AreaSize(details)
	listing.Rooms = extract.Rooms(details)
	listing.Floor = extract.Floor(details)

	if img := extract.FirstImage(card); img != "" {
		listing.ImageURL = lo.ToPtr(extract.AbsoluteURL(s.baseURL, img))
	}

	return listing, nil
}

func (s Scraper) listingFromOfferPage(doc *goquery.Document, pageURL string) (models.Listing, bool) {
	root := doc.Selection

	title := extract.FirstText(root, offerTitleSelectors)
	priceText := extract.FirstText(root, offerPriceSelectors)
	if title == "" && priceText == "" {
		s.logger.Warn().Str("url", pageURL).Msg("can't extract gumtree offer page")
		return models.Listing{}, false
	}

	listing := models.Listing{
		Title:        models.DefaultTitle,
		Currency:     extract.CurrencyPLN,
		URL:          pageURL,
		Marketplace:  Name,
		Location:     models.Unknown,
		PropertyType: models.PropertyUnknown,
		SellerName:   models.Unknown,
		SellerType:   models.SellerUnknown,
		Condition:    models.Unknown,
	}

	if title != "" {
		listing.Title = title
	}
	listing.Price, listing.Currency = extract.PriceWithCurrency(priceText)
	listing.Description = extract.FirstText(root, offerDescriptionSelectors)
	if location := extract.FirstText(root, offerLocationSelectors); location != "" {
		listing.Location = location
	}

	for _, attribute := range extract.DetailAttributes(doc) {
		extract.ApplyAttribute(&listing, attribute)
	}

	if name := extract.FirstText(root, sellerNameSelectors); name != "" {
		listing.SellerName = name
	}

	if gallery := extract.GalleryImages(doc, gallerySelectors, pageURL); len(gallery) > 0 {
		listing.ImageURL = lo.ToPtr(gallery[0])
	}

	details := listing.Title + " " + listing.Description
	if listing.PropertyType == models.PropertyUnknown {
		listing.PropertyType = extract.PropertyType(listing.Title, listing.Description)
	}
	if listing.AreaSize == nil {
		listing.AreaSize = extract.AreaSize(details)
	}
	if listing.Rooms == nil {
		listing.Rooms = extract.Rooms(details)
	}
	if listing.Floor == nil {
		listing.Floor = extract.Floor(details)
	}

	return listing, true
}

// searchURL builds the results page address. Gumtree takes the query as a
// path segment and the price range as a single "min,max" parameter.
func (s Scraper) searchURL(keywords []string, filters models.Filters) string {
	query := url.PathEscape(strings.Join(keywords, " "))
	searchURL := s.baseURL + "/s-q-" + query

	if filters.PriceMin != nil || filters.PriceMax != nil {
		searchURL = addParam(searchURL, "pr", priceRange(filters.PriceMin, filters.PriceMax))
	}
	if filters.Location != "" {
		searchURL = addParam(searchURL, "l", url.PathEscape(filters.Location))
	}

	return searchURL
}

func addParam(rawURL, name, value string) string {
	separator := "?"
	if strings.Contains(rawURL, "?") {
		separator = "&"
	}

	return rawURL + separator + name + "=" + value
}

// priceRange renders the price bounds parameter, leaving absent bounds empty.
func priceRange(priceMin, priceMax *float64) string {
	var bounds [2]string
	if priceMin != nil {
		bounds[0] = formatAmount(*priceMin)
	}
	if priceMax != nil {
		bounds[1] = formatAmount(*priceMax)
	}

	return bounds[0] + "," + bounds[1]
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// WithBaseURL sets scraper's custom site address. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}
