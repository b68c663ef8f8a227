// Package scrape orchestrates the tiered card extraction pipeline: one page
// fetch, then each extraction tier in strict priority order until one yields
// a non-empty catalog, with an unconditional static fallback last.
package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mbazin/testcards"
)

// DefaultURL is the Adyen documentation page listing test card numbers.
const DefaultURL = "https://docs.adyen.com/development-resources/testing/test-card-numbers/"

// Scraper runs the extraction pipeline. The zero value is not usable; at
// minimum Fetcher must be set.
//
// Execution is synchronous and single-threaded: one fetch attempt, one pass
// through each tier. A Scraper holds no state between runs; every Run builds
// a fresh catalog, so replacing a previous result is atomic by construction.
type Scraper struct {
	// Fetcher retrieves the page content. Fetch failure is fatal to the run.
	Fetcher testcards.Fetcher

	// Extractors are the automated tiers, tried in order. The first tier to
	// produce a non-empty catalog wins. A tier returning an error or an
	// empty catalog just hands over to the next one.
	Extractors []testcards.Extractor

	// Fallback supplies the catalog of last resort. Defaults to
	// testcards.FallbackCatalog, which is never empty.
	Fallback func() *testcards.Catalog

	// Now is the clock used for run metadata. Defaults to time.Now.
	Now func() time.Time
}

// Run fetches the page at url (DefaultURL if empty) and extracts a card
// catalog. The returned catalog is never empty: if every automated tier
// comes back empty the static fallback dataset is used.
//
// Returns EUNAVAILABLE if the fetch fails or yields empty content; no
// partial catalog is produced in that case.
func (s *Scraper) Run(ctx context.Context, url string) (*testcards.Catalog, error) {
	if url == "" {
		url = DefaultURL
	}
	if s.Fetcher == nil {
		return nil, testcards.Errorf(testcards.EINTERNAL, "scraper has no fetcher")
	}

	content, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, testcards.Errorf(testcards.EUNAVAILABLE, "empty content from %s", url)
	}

	var catalog *testcards.Catalog
	for _, extractor := range s.Extractors {
		result, err := extractor.Extract(content)
		if err != nil {
			// A broken tier degrades to the next one.
			continue
		}
		if result != nil && !result.Empty() {
			catalog = result
			break
		}
	}

	if catalog == nil {
		if s.Fallback != nil {
			catalog = s.Fallback()
		} else {
			catalog = testcards.FallbackCatalog()
		}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	catalog.RunID = uuid.NewString()
	catalog.SourceURL = url
	catalog.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(content))
	catalog.FetchedAt = now()

	return catalog, nil
}
