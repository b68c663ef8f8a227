// Package resty provides the HTTP-based implementation of testcards.Fetcher
// for retrieving the documentation page without browser rendering.
package resty

import (
	"context"
	"crypto/tls"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/mbazin/testcards"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent simulates a real browser; the documentation site serves reduced
// content to obvious bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Ensure Fetcher implements testcards.Fetcher at compile time.
var _ testcards.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content over HTTP. It follows redirects, presents
// browser-like headers, and optionally routes through an HTTP proxy. It does
// not execute JavaScript; use the rod package for pages that require it.
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
	proxy   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProxy routes requests through the given HTTP proxy address.
func WithProxy(addr string) Option {
	return func(f *Fetcher) {
		f.proxy = addr
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := resty.New()
	client.SetTimeout(f.timeout)
	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	if f.proxy != "" {
		client.SetProxy(f.proxy)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	f.client = client
	return f
}

// Fetch retrieves the content at the given URL. A single attempt is made;
// a non-success status or an empty body is an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", testcards.Errorf(testcards.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode(), url)
	}

	content := resp.String()
	if content == "" {
		return "", testcards.Errorf(testcards.EUNAVAILABLE, "empty response from %s", url)
	}

	return content, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since the
// underlying client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
