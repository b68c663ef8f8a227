package testcards

import "context"

// Fetcher retrieves raw page content from URLs.
// Implementations may use plain HTTP or browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the content at the URL. A non-success status or an
	// empty body is an EUNAVAILABLE error; a single attempt is made, with
	// no retry. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
