// Package otodom implements the marketplace scraper for otodom.pl,
// a Polish real-estate portal.
package otodom

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

// Name is the marketplace identifier otodom listings carry.
const Name = "otodom"

const (
	defaultBaseURL = "https://www.otodom.pl"
	searchPath     = "/pl/wyniki/sprzedaz"
)

// Result page selector cascades, site-specific attributes first,
// generic tags last. Order matters.
var (
	cardSelectors = []string{`article[data-cy="listing-item"]`, "div.offer-item", "article"}
	linkSelectors = []string{`a[data-cy="listing-item-link"]`, `a[href*="/oferta/"]`}
	titleSelectors = []string{
		`[data-cy="listing-item-title"]`,
		"h2",
		"h3",
		"h6",
	}
	priceSelectors       = []string{`[data-cy="listing-item-price"]`, ".offer-item-price", ".price"}
	locationSelectors    = []string{`[data-cy="listing-item-location"]`, ".offer-item-location", "address", ".location"}
	descriptionSelectors = []string{`[data-cy="listing-item-description"]`, ".offer-item-details", ".description"}
)

// Offer page selector cascades.
var (
	offerTitleSelectors       = []string{`h1[data-cy="adPageAdTitle"]`, "h1"}
	offerPriceSelectors       = []string{`[data-cy="adPageHeaderPrice"]`, ".offer-price", ".price"}
	offerDescriptionSelectors = []string{`[data-cy="adPageAdDescription"]`, ".description"}
	offerLocationSelectors    = []string{`[data-cy="adPageAdLocation"]`, "address", ".location"}
	sellerNameSelectors       = []string{`[data-cy="seller-name"]`, ".seller-box .name", ".owner-name"}
	agencyLinkSelectors       = []string{`a[href*="/agencje/"]`, `a[href*="/firmy/"]`}
	gallerySelectors          = []string{`[data-cy="adPageGallery"] img`, ".gallery img", ".carousel img"}
)

var errNoCardLink = errors.New("result card has no listing link")

// searchStrategy is one self-contained way of turning a fetched results page
// into listings. Strategies are tried in order until one yields listings
// surviving the filters.
type searchStrategy struct {
	name    string
	extract func(page []byte, searchURL string) []models.Listing
}

// Option is custom configuration of Scraper.
type Option func(s *Scraper)

// Scraper extracts listings from otodom.pl results and offer pages.
type Scraper struct {
	fetcher scraper.PageFetcher
	logger  *zerolog.Logger
	baseURL string
}

// New returns new otodom Scraper fetching pages with fetcher.
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
// degraded to an empty result, indistinguishable from "no matches".
func (s Scraper) Search(ctx context.Context, keywords []string, filters models.Filters) []models.Listing {
	searchURL := s.searchURL(keywords, filters)

	page, err := s.fetcher.FetchPage(ctx, searchURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", searchURL).Msg("can't fetch otodom results page")
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
			Msg("otodom search finished")

		if len(matched) == 0 {
			return nil
		}

		return matched
	}

	return nil
}

// ItemDetails fetches a single offer page and extracts the full listing.
// Structured data is preferred; markup extraction is the fallback. Returns
// false when nothing could be extracted.
func (s Scraper) ItemDetails(ctx context.Context, pageURL string) (models.Listing, bool) {
	page, err := s.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", pageURL).Msg("can't fetch otodom offer page")
		return models.Listing{}, false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		s.logger.Warn().Err(err).Str("url", pageURL).Msg("can't parse otodom offer page")
		return models.Listing{}, false
	}

	if listings := extract.StructuredData(doc, Name, pageURL, s.logger); len(listings) > 0 {
		return listings[0], true
	}

	return s.listingFromOfferPage(doc, pageURL)
}

// markupListings extracts listings directly from result cards in the page
// markup. A card that can't be parsed is skipped, not fatal to the batch.
func (s Scraper) markupListings(page []byte, searchURL string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		s.logger.Warn().Err(err).Msg("can't parse otodom results page")
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
			s.logger.Debug().Err(err).Str("url", searchURL).Msg("skipping otodom result card")
			return
		}
		listings = append(listings, listing)
	})

	return listings
}

// structuredDataListings extracts listings from the page's linked-data blocks
// and, when the page carries none, falls back to scanning its prose for
// price-bearing text blocks.
func (s Scraper) structuredDataListings(page []byte, searchURL string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err == nil {
		if listings := extract.StructuredData(doc, Name, searchURL, s.logger); len(listings) > 0 {
			return listings
		}
	}

	return extract.HeuristicListings(extract.ProseText(page), Name, searchURL)
}

// listingFromCard maps a single result card onto a listing. Cards without a
// recognizable listing link are rejected.
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
	if location := extract.FirstText(card, locationSelectors); location != "" {
		listing.Location = location
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

// listingFromOfferPage extracts the listing field by field from offer page
// markup. Pages yielding neither a title nor a price are treated as failed
// extractions.
func (s Scraper) listingFromOfferPage(doc *goquery.Document, pageURL string) (models.Listing, bool) {
	root := doc.Selection

	title := extract.FirstText(root, offerTitleSelectors)
	priceText := extract.FirstText(root, offerPriceSelectors)
	if title == "" && priceText == "" {
		s.logger.Warn().Str("url", pageURL).Msg("can't extract otodom offer page")
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
		SellerType:   models.SellerPrivate,
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
	if root.Find(strings.Join(agencyLinkSelectors, ", ")).Length() > 0 {
		listing.SellerType = models.SellerAgency
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

// searchURL builds the results page address from keywords and filters.
func (s Scraper) searchURL(keywords []string, filters models.Filters) string {
	params := url.Values{}
	params.Set("q", strings.Join(keywords, " "))

	if filters.PriceMin != nil {
		params.Set("priceMin", formatAmount(*filters.PriceMin))
	}
	if filters.PriceMax != nil {
		params.Set("priceMax", formatAmount(*filters.PriceMax))
	}
	if filters.Location != "" {
		params.Set("locations", filters.Location)
	}

	return s.baseURL + searchPath + "?" + params.Encode()
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
