package extract

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"golang.org/x/net/html"
)

// skippedProseElements are subtrees that never contribute listing prose.
var skippedProseElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"head":     {},
	"nav":      {},
	"header":   {},
	"footer":   {},
	"aside":    {},
	"form":     {},
	"iframe":   {},
	"svg":      {},
	"button":   {},
	"select":   {},
	"option":   {},
}

// blockProseElements close a text block, producing the blank line the
// heuristic splits on. Plain divs do not close a block, they are too common
// inside a single listing card.
var blockProseElements = map[string]struct{}{
	"article": {},
	"section": {},
	"p":       {},
	"li":      {},
	"tr":      {},
	"ul":      {},
	"ol":      {},
	"table":   {},
	"h1":      {},
	"h2":      {},
	"h3":      {},
	"h4":      {},
	"h5":      {},
	"h6":      {},
}

var (
	blockSeparatorRegexp = regexp.MustCompile(`\n{2,}`)
	// Digit groups are separated by plain spaces only: crossing newlines
	// would glue digits of a preceding line into the price.
	pricedBlockRegexp = regexp.MustCompile(`(\d+[ \d]*\d*,?\d*)\s*(?:zł|PLN)`)
	cityRegexp        = regexp.MustCompile(`(Warszawa|Kraków|Łódź|Wrocław|Poznań|Gdańsk|Szczecin|Bydgoszcz|Lublin|Białystok|Katowice)[\s,]`)
)

// heuristicTitleLimit caps how much of a block's first line becomes the title.
const heuristicTitleLimit = 100

// ProseText renders the page's readable text with boilerplate containers
// stripped, one line per text node and a blank line after every block
// element. Returns an empty string for unparseable pages.
func ProseText(page []byte) string {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var builder strings.Builder
	writeProse(root, &builder)

	return builder.String()
}

func writeProse(node *html.Node, builder *strings.Builder) {
	if node.Type == html.ElementNode {
		if _, skip := skippedProseElements[node.Data]; skip {
			return
		}
	}

	if node.Type == html.TextNode {
		if text := NormalizeSpace(node.Data); text != "" {
			builder.WriteString(text)
			builder.WriteString("\n")
		}
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeProse(child, builder)
	}

	if node.Type == html.ElementNode {
		if _, block := blockProseElements[node.Data]; block {
			builder.WriteString("\n")
		}
	}
}

// HeuristicListings recovers listings from page prose as a last resort.
// Blocks are separated by blank lines; a block is kept only when it contains
// a price followed by a currency marker. Every produced listing shares
// searchURL, since text extraction carries no per-item link.
func HeuristicListings(prose, marketplace, searchURL string) []models.Listing {
	var listings []models.Listing

	for _, block := range blockSeparatorRegexp.Split(prose, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		priced := pricedBlockRegexp.FindStringSubmatch(block)
		if priced == nil {
			continue
		}

		normalized := strings.ReplaceAll(priced[1], " ", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
		price, err := strconv.ParseFloat(normalized, 64)
		if err != nil || price < 0 {
			price = 0
		}

		location := models.Unknown
		if city := cityRegexp.FindStringSubmatch(block); city != nil {
			location = city[1]
		}

		title := TruncateRunes(strings.SplitN(block, "\n", 2)[0], heuristicTitleLimit)

		listings = append(listings, models.Listing{
			Title:        title,
			Price:        price,
			Currency:     CurrencyPLN,
			URL:          searchURL,
			Marketplace:  marketplace,
			Location:     location,
			Description:  block,
			PropertyType: PropertyType(title, block),
			AreaSize:     AreaSize(block),
			Rooms:        Rooms(block),
			Floor:        Floor(block),
			SellerName:   models.Unknown,
			SellerType:   models.SellerUnknown,
			Condition:    models.Unknown,
		})
	}

	return listings
}
