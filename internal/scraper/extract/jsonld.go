package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// structuredDataTypes is the allow-list of linked-data record types that
// describe a listing. Records declaring any other type are ignored.
var structuredDataTypes = map[string]struct{}{
	"Product":          {},
	"Place":            {},
	"Residence":        {},
	"ApartmentComplex": {},
	"House":            {},
}

// StructuredData extracts canonical listings from the page's embedded
// application/ld+json blocks. A block may hold a single record or a list of
// records; both shapes are flattened. Records that can't be mapped onto a
// listing are skipped, never fatal to the batch.
func StructuredData(doc *goquery.Document, marketplace, pageURL string, logger *zerolog.Logger) []models.Listing {
	var listings []models.Listing

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		records, err := structuredRecords(script.Text())
		if err != nil {
			logger.Debug().Err(err).Str("marketplace", marketplace).Msg("skipping malformed linked-data block")
			return
		}

		for _, record := range records {
			if !isListingRecord(record) {
				continue
			}

			listing, ok := listingFromRecord(record, marketplace, pageURL)
			if !ok {
				logger.Debug().Str("marketplace", marketplace).Msg("skipping empty linked-data record")
				continue
			}

			listings = append(listings, listing)
		}
	})

	return listings
}

// structuredRecords parses a raw linked-data payload into a flat record list.
func structuredRecords(raw string) ([]map[string]any, error) {
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}

	switch block := payload.(type) {
	case map[string]any:
		return []map[string]any{block}, nil
	case []any:
		records := make([]map[string]any, 0, len(block))
		for _, entry := range block {
			if record, ok := entry.(map[string]any); ok {
				records = append(records, record)
			}
		}
		return records, nil
	default:
		return nil, nil
	}
}

// isListingRecord reports whether the record's declared @type is in the
// allow-list. The type may be declared as a single string or a list.
func isListingRecord(record map[string]any) bool {
	switch declared := record["@type"].(type) {
	case string:
		_, ok := structuredDataTypes[declared]
		return ok
	case []any:
		for _, entry := range declared {
			name, ok := entry.(string)
			if !ok {
				continue
			}
			if _, ok := structuredDataTypes[name]; ok {
				return true
			}
		}
	}

	return false
}

// listingFromRecord maps one linked-data record onto a canonical listing.
// Returns false for records carrying neither a name, an offer, nor a URL.
func listingFromRecord(record map[string]any, marketplace, pageURL string) (models.Listing, bool) {
	title := asString(record["name"])
	rawURL := asString(record["url"])
	offer, hasOffer := firstRecord(record["offers"])

	if title == "" && rawURL == "" && !hasOffer {
		return models.Listing{}, false
	}

	listing := models.Listing{
		Title:       models.DefaultTitle,
		Currency:    CurrencyPLN,
		URL:         pageURL,
		Marketplace: marketplace,
		Location:    models.Unknown,
		Description: asString(record["description"]),
		SellerName:  models.Unknown,
		SellerType:  models.SellerUnknown,
		Condition:   models.Unknown,
	}

	if title != "" {
		listing.Title = NormalizeSpace(title)
	}
	if rawURL != "" {
		listing.URL = AbsoluteURL(pageURL, rawURL)
	}

	if hasOffer {
		listing.Price = asFloat(offer["price"])
		if currency := asString(offer["priceCurrency"]); currency != "" {
			listing.Currency = currency
		}
	}

	if image := asString(firstValue(record["image"])); image != "" {
		listing.ImageURL = lo.ToPtr(AbsoluteURL(pageURL, image))
	}

	if address, ok := record["address"].(map[string]any); ok {
		if location := joinAddress(address); location != "" {
			listing.Location = location
		}
	}

	if seller, ok := record["seller"].(map[string]any); ok {
		if name := asString(seller["name"]); name != "" {
			listing.SellerName = NormalizeSpace(name)
		}
	}

	details := listing.Title + " " + listing.Description
	listing.PropertyType = PropertyType(listing.Title, listing.Description)
	listing.AreaSize = AreaSize(details)
	listing.Rooms = Rooms(details)
	listing.Floor = Floor(details)

	return listing, true
}

// joinAddress combines locality and street into a single location string.
func joinAddress(address map[string]any) string {
	parts := make([]string, 0, 2)
	if locality := asString(address["addressLocality"]); locality != "" {
		parts = append(parts, locality)
	}
	if street := asString(address["streetAddress"]); street != "" {
		parts = append(parts, street)
	}

	return strings.Join(parts, ", ")
}

// firstRecord unwraps a record-or-list value into its first record.
func firstRecord(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case []any:
		for _, entry := range typed {
			if record, ok := entry.(map[string]any); ok {
				return record, true
			}
		}
	}

	return nil, false
}

// firstValue unwraps a value-or-list into its first value.
func firstValue(value any) any {
	if list, ok := value.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		return list[0]
	}

	return value
}

func asString(value any) string {
	text, _ := value.(string)
	return strings.TrimSpace(text)
}

func asFloat(value any) float64 {
	switch typed := value.(type) {
	case float64:
		if typed < 0 {
			return 0
		}
		return typed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
