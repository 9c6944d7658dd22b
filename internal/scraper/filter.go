package scraper

import (
	"strings"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
)

// MatchesFilters reports whether a listing satisfies every populated filter
// field, short-circuiting on the first failing one. Filters on condition,
// property type, area and rooms are skipped when the listing's own field is
// unknown: unknown data must not be filtered out. Price bounds and the
// location filter are always evaluated.
func MatchesFilters(listing models.Listing, filters models.Filters) bool {
	if filters.PriceMin != nil && listing.Price < *filters.PriceMin {
		return false
	}

	if filters.PriceMax != nil && listing.Price > *filters.PriceMax {
		return false
	}

	if filters.Location != "" && !containsFold(listing.Location, filters.Location) {
		return false
	}

	if filters.Condition != "" && isKnown(listing.Condition) && !containsFold(listing.Condition, filters.Condition) {
		return false
	}

	if filters.PropertyType != "" && listing.PropertyType != models.PropertyUnknown &&
		!strings.EqualFold(listing.PropertyType, filters.PropertyType) {
		return false
	}

	if filters.MinArea != nil && listing.AreaSize != nil && *listing.AreaSize < *filters.MinArea {
		return false
	}

	if filters.MaxArea != nil && listing.AreaSize != nil && *listing.AreaSize > *filters.MaxArea {
		return false
	}

	if filters.Rooms != nil && listing.Rooms != nil && *listing.Rooms != *filters.Rooms {
		return false
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func isKnown(value string) bool {
	return value != "" && value != models.Unknown
}
