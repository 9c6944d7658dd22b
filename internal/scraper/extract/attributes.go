package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
)

// Attribute is one label/value row of a details table.
type Attribute struct {
	Label string
	Value string
}

var leadingNumberRegexp = regexp.MustCompile(`\d+[.,]?\d*`)

// DetailAttributes collects label/value rows from the detail-page layouts the
// marketplaces use: attribute blocks, plain tables and definition lists.
func DetailAttributes(doc *goquery.Document) []Attribute {
	var attributes []Attribute

	doc.Find(".attribute").Each(func(_ int, row *goquery.Selection) {
		appendAttribute(&attributes, row.Find(".name").Text(), row.Find(".value").Text())
	})

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		appendAttribute(&attributes, row.Find("th").First().Text(), row.Find("td").First().Text())
	})

	doc.Find("dl").Each(func(_ int, list *goquery.Selection) {
		labels := list.Find("dt")
		values := list.Find("dd")
		for i := 0; i < labels.Length() && i < values.Length(); i++ {
			appendAttribute(&attributes, labels.Eq(i).Text(), values.Eq(i).Text())
		}
	})

	return attributes
}

func appendAttribute(attributes *[]Attribute, label, value string) {
	label = strings.TrimSuffix(NormalizeSpace(label), ":")
	value = NormalizeSpace(value)
	if label == "" || value == "" {
		return
	}

	*attributes = append(*attributes, Attribute{Label: label, Value: value})
}

// ApplyAttribute maps one details-table row onto the listing. Label matching
// is case-insensitive and accepts both polish and english synonyms; rows with
// unrecognized labels are ignored.
func ApplyAttribute(listing *models.Listing, attribute Attribute) {
	label := strings.ToLower(attribute.Label)
	value := attribute.Value

	switch {
	case strings.Contains(label, "powierzchnia") || strings.Contains(label, "area"):
		if area := attributeArea(value); area != nil {
			listing.AreaSize = area
		}
	case strings.Contains(label, "poko") || strings.Contains(label, "room"):
		if rooms := attributeRooms(value); rooms != nil {
			listing.Rooms = rooms
		}
	case strings.Contains(label, "piętro") || strings.Contains(label, "floor"):
		if floor := attributeFloor(value); floor != nil {
			listing.Floor = floor
		}
	case strings.Contains(label, "stan") || strings.Contains(label, "condition"):
		listing.Condition = value
	case strings.Contains(label, "rodzaj zabudowy") || strings.Contains(label, "typ nieruchomości") ||
		strings.Contains(label, "property type") || strings.Contains(label, "kategoria") ||
		strings.Contains(label, "category"):
		if propertyType := PropertyType(value, ""); propertyType != models.PropertyUnknown {
			listing.PropertyType = propertyType
		}
	}
}

// attributeArea parses a table area value, which may or may not carry the
// square-meter unit.
func attributeArea(value string) *float64 {
	if area := AreaSize(value); area != nil {
		return area
	}

	match := leadingNumberRegexp.FindString(value)
	if match == "" {
		return nil
	}

	area, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return nil
	}

	return lo.ToPtr(area)
}

// attributeRooms parses a table rooms value, usually a bare number.
func attributeRooms(value string) *int {
	if rooms := Rooms(value); rooms != nil {
		return rooms
	}

	match := leadingNumberRegexp.FindString(value)
	if match == "" {
		return nil
	}
	match, _, _ = strings.Cut(match, ",")
	match, _, _ = strings.Cut(match, ".")

	rooms, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}

	return lo.ToPtr(rooms)
}

// attributeFloor parses a table floor value like "3", "3/5" or "parter".
func attributeFloor(value string) *string {
	lowered := strings.ToLower(value)
	if strings.HasPrefix(lowered, "parter") || strings.HasPrefix(lowered, "ground") {
		return lo.ToPtr("0")
	}

	if match := leadingNumberRegexp.FindString(value); match != "" {
		if digits, _, found := strings.Cut(match, ","); found {
			match = digits
		}
		if digits, _, found := strings.Cut(match, "."); found {
			match = digits
		}
		return lo.ToPtr(match)
	}

	return nil
}
