// Package scraper defines the contract every marketplace scraper implements
// and the registry the rest of the system selects scrapers from.
package scraper

import (
	"context"
	"slices"
	"strings"

	"github.com/marketradar-pl/marketradar/internal/platform/models"
)

//go:generate mockery --name PageFetcher --filename page_fetcher.go
//go:generate mockery --name Scraper --filename scraper.go

// PageFetcher fetches a single page body.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) ([]byte, error)
}

// Scraper is one marketplace's search and detail extraction. Implementations
// absorb every failure: Search degrades to an empty result and ItemDetails to
// ok == false, so callers treat all marketplaces identically without
// per-site error handling.
type Scraper interface {
	// Search looks up listings matching keywords, keeping only those that
	// satisfy filters. It never returns an error; an empty result means
	// "no matches or total failure" and the two are indistinguishable.
	Search(ctx context.Context, keywords []string, filters models.Filters) []models.Listing
	// ItemDetails fetches a single listing page and extracts the full
	// canonical record. ok is false when nothing could be extracted.
	ItemDetails(ctx context.Context, url string) (listing models.Listing, ok bool)
	// Marketplace returns the static marketplace identifier.
	Marketplace() string
}

// Registry holds configured marketplace scrapers keyed by lower-cased name.
type Registry struct {
	order    []string
	scrapers map[string]Scraper
}

// NewRegistry creates a Registry from the given scrapers. Registration order
// is preserved for Names; a duplicated marketplace name keeps the first
// registered scraper.
func NewRegistry(scrapers ...Scraper) *Registry {
	registry := Registry{
		order:    make([]string, 0, len(scrapers)),
		scrapers: make(map[string]Scraper, len(scrapers)),
	}

	for _, s := range scrapers {
		name := strings.ToLower(s.Marketplace())
		if _, exists := registry.scrapers[name]; exists {
			continue
		}
		registry.order = append(registry.order, name)
		registry.scrapers[name] = s
	}

	return &registry
}

// Get returns the scraper registered under name, matched case-insensitively.
func (r *Registry) Get(name string) (Scraper, bool) {
	s, ok := r.scrapers[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Names returns the registered marketplace names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}
