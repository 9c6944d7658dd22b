package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
)

// Currency codes recognized in raw price text.
const (
	CurrencyPLN = "PLN"
	CurrencyEUR = "EUR"
)

var (
	priceRegexp = regexp.MustCompile(`\d+[\s\d]*\d*,?\d*`)
	areaRegexp  = regexp.MustCompile(`(\d+[.,]?\d*)\s*(?:m2|m²)`)
	roomsRegexp = regexp.MustCompile(`(\d+)\s*(?:pok|room)`)
	floorRegexp = regexp.MustCompile(`(?i)(?:piętro|floor)[:\s]+(\d+|parter|ground)`)
)

// propertyTypeTable maps keyword fragments to property type categories.
// It is an ordered slice, not a map: the first matching fragment wins, so
// more specific fragments must stay above the generic ones ("działk" above
// "dom", "biuro" above "lokal").
var propertyTypeTable = []struct {
	fragment string
	category string
}{
	{"mieszkan", models.PropertyApartment},
	{"kawalerka", models.PropertyApartment},
	{"apartament", models.PropertyApartment},
	{"apartment", models.PropertyApartment},
	{"flat", models.PropertyApartment},
	{"działk", models.PropertyLand},
	{"grunt", models.PropertyLand},
	{"plot", models.PropertyLand},
	{"dom", models.PropertyHouse},
	{"house", models.PropertyHouse},
	{"willa", models.PropertyHouse},
	{"bliźniak", models.PropertyHouse},
	{"szeregow", models.PropertyHouse},
	{"biuro", models.PropertyOffice},
	{"office", models.PropertyOffice},
	{"garaż", models.PropertyGarage},
	{"garage", models.PropertyGarage},
	{"lokal", models.PropertyCommercial},
	{"commercial", models.PropertyCommercial},
	{"land", models.PropertyLand},
}

// Price extracts a price value from raw text. Spaces inside digit groups are
// stripped and a decimal comma is converted to a dot. Returns 0 when the text
// contains no price pattern or the matched pattern can't be parsed.
func Price(text string) float64 {
	match := priceRegexp.FindString(text)
	if match == "" {
		return 0
	}

	normalized := strings.ReplaceAll(match, " ", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil || price < 0 {
		return 0
	}

	return price
}

// PriceWithCurrency extracts a price value together with the currency marker
// found next to it. PLN is the default currency of all supported marketplaces.
func PriceWithCurrency(text string) (float64, string) {
	currency := CurrencyPLN
	if strings.Contains(text, "€") || strings.Contains(text, CurrencyEUR) {
		currency = CurrencyEUR
	}

	return Price(text), currency
}

// AreaSize extracts an area in square meters from text like "65,5 m2".
// Returns nil when no area pattern is found or the value can't be parsed.
func AreaSize(text string) *float64 {
	match := areaRegexp.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	area, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil {
		return nil
	}

	return lo.ToPtr(area)
}

// Rooms extracts a room count from text like "3 pokoje" or "2 rooms".
// Returns nil when no rooms pattern is found.
func Rooms(text string) *int {
	match := roomsRegexp.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	rooms, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}

	return lo.ToPtr(rooms)
}

// Floor extracts a floor label from text like "piętro: 3" or "floor: ground".
// Ground floor markers ("parter", "ground") normalize to "0". Returns nil
// when no floor pattern is found.
func Floor(text string) *string {
	match := floorRegexp.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	floor := strings.ToLower(match[1])
	if floor == "parter" || floor == "ground" {
		floor = "0"
	}

	return lo.ToPtr(floor)
}

// PropertyType classifies a listing into a property type category by matching
// keyword fragments against the lower-cased title and details text. Returns
// models.PropertyUnknown when nothing matches.
func PropertyType(title, details string) string {
	text := strings.ToLower(title + " " + details)

	for _, entry := range propertyTypeTable {
		if strings.Contains(text, entry.fragment) {
			return entry.category
		}
	}

	return models.PropertyUnknown
}

// NormalizeSpace collapses all whitespace runs, including non-breaking
// spaces, into single spaces and trims the result.
func NormalizeSpace(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	return strings.Join(strings.Fields(text), " ")
}

// TruncateRunes shortens text to at most limit runes.
func TruncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit])
}
