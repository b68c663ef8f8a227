// Package rod provides a browser-based implementation of testcards.Fetcher
// for fetching the documentation page with JavaScript rendering.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/mbazin/testcards"
)

// Ensure Fetcher implements testcards.Fetcher at compile time.
var _ testcards.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered page content using Chrome browser automation.
// The documentation site renders its card tables client-side in some
// variants; this fetcher sees the tables the HTTP fetcher may miss.
type Fetcher struct {
	browser *rod.Browser
	proxy   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithProxy routes browser traffic through the given proxy address.
func WithProxy(addr string) Option {
	return func(f *Fetcher) {
		f.proxy = addr
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	if f.proxy != "" {
		l = l.Proxy(f.proxy)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	return f, nil
}

// Fetch navigates to the URL and returns the rendered page content.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Create a new page
	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	// Navigate to URL
	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// Wait for page to load
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Get rendered HTML
	content, err := page.HTML()
	if err != nil {
		return "", err
	}

	if content == "" {
		return "", testcards.Errorf(testcards.EUNAVAILABLE, "empty content from %s", url)
	}

	return content, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
