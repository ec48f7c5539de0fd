package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/terrafirmagreg/fieldguide"
)

// Ensure IndexSource implements fieldguide.IndexSource at compile time.
var _ fieldguide.IndexSource = (*IndexSource)(nil)

// IndexSource downloads the per-locale search_index.json documents.
type IndexSource struct {
	client      *http.Client
	timeout     time.Duration
	overrideURL string
}

// IndexOption configures an IndexSource.
type IndexOption func(*IndexSource)

// WithIndexTimeout sets the timeout for index requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithIndexTimeout(d time.Duration) IndexOption {
	return func(s *IndexSource) {
		s.timeout = d
	}
}

// WithIndexURL overrides the per-locale index URL with a fixed one.
// Intended for testing and for the SEARCH_INDEX_URL environment override.
func WithIndexURL(url string) IndexOption {
	return func(s *IndexSource) {
		s.overrideURL = url
	}
}

// NewIndexSource creates a new IndexSource.
func NewIndexSource(opts ...IndexOption) *IndexSource {
	s := &IndexSource{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// FetchIndex downloads and decodes the locale's search index. A malformed
// (non-array or null) document is an EINVALID error scoped to this locale;
// network failures are EUNAVAILABLE.
func (s *IndexSource) FetchIndex(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
	url := s.indexURL(locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fieldguide.Errorf(fieldguide.EINVALID, "invalid index URL %q: %v", url, err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fieldguide.Errorf(fieldguide.EUNAVAILABLE, "fetch search index for %s: %v", locale, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fieldguide.Errorf(fieldguide.EUNAVAILABLE, "fetch search index for %s: HTTP %d", locale, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fieldguide.Errorf(fieldguide.EUNAVAILABLE, "fetch search index for %s: %v", locale, err)
	}

	var entries []fieldguide.SearchIndexEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fieldguide.Errorf(fieldguide.EINVALID, "malformed search index for %s: %v", locale, err)
	}
	if entries == nil {
		return nil, fieldguide.Errorf(fieldguide.EINVALID, "malformed search index for %s: expected a JSON array", locale)
	}

	return entries, nil
}

// indexURL builds the index document URL for a locale, honoring the
// configured override.
func (s *IndexSource) indexURL(locale fieldguide.Locale) string {
	if s.overrideURL != "" {
		return s.overrideURL
	}
	return fieldguide.BaseURL + string(fieldguide.EffectiveLocale(locale)) + "/search_index.json"
}
