// Package http provides HTTP-based implementations of fieldguide.Fetcher
// and fieldguide.IndexSource for the static guide site.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/terrafirmagreg/fieldguide"
)

// DefaultFetchTimeout bounds every page and index request. Once a fetch is
// issued it runs to completion or times out; there is no cancellation
// beyond this.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements fieldguide.Fetcher at compile time.
var _ fieldguide.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents with a single bounded GET per call.
// No retries, no caching.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
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

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Network failures and
// non-2xx statuses are reported as EUNAVAILABLE; callers decide fallback
// behavior.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fieldguide.Errorf(fieldguide.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fieldguide.Errorf(fieldguide.EUNAVAILABLE, "could not retrieve page %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fieldguide.Errorf(fieldguide.EUNAVAILABLE, "could not retrieve page %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fieldguide.Errorf(fieldguide.EUNAVAILABLE, "could not retrieve page %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
