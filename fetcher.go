package fieldguide

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a bounded request for the URL and returns the response
	// body. Network failures and non-2xx statuses are EUNAVAILABLE errors;
	// no retries are performed at this layer.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
