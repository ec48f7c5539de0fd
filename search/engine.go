// Package search implements fieldguide.Searcher on top of the per-locale
// JSON search indices, with TTL caching and cross-locale relevance ranking.
package search

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/terrafirmagreg/fieldguide"
	"golang.org/x/sync/singleflight"
)

// DefaultIndexTTL is how long a fetched locale index is served before a
// request triggers a synchronous refetch.
const DefaultIndexTTL = 10 * time.Minute

// maxSearchResults caps any single search, regardless of the requested
// limit.
const maxSearchResults = 500

// Ensure Engine implements fieldguide.Searcher at compile time.
var _ fieldguide.Searcher = (*Engine)(nil)

// cachedIndex is one locale's index snapshot. Entries are replaced
// wholesale on refresh, never mutated in place.
type cachedIndex struct {
	data      []fieldguide.SearchIndexEntry
	fetchedAt time.Time
}

// Engine scores free-text queries against every supported locale's search
// index. Indices are cached per locale with a TTL; refresh happens lazily
// on the first request that observes an expired entry, deduplicated across
// concurrent requests so each locale is refetched at most once at a time.
type Engine struct {
	source fieldguide.IndexSource
	ttl    time.Duration
	now    func() time.Time

	group singleflight.Group

	mu    sync.RWMutex
	cache map[fieldguide.Locale]*cachedIndex
}

// Option configures an Engine.
type Option func(*Engine)

// WithTTL sets the index cache TTL.
// Defaults to DefaultIndexTTL (10m) if not specified.
func WithTTL(d time.Duration) Option {
	return func(e *Engine) {
		e.ttl = d
	}
}

// WithClock sets the time source, used by tests to expire the cache.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a new Engine backed by the given index source.
func NewEngine(source fieldguide.IndexSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		ttl:    DefaultIndexTTL,
		now:    time.Now,
		cache:  make(map[fieldguide.Locale]*cachedIndex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Invalidate drops the cached index for a locale, forcing the next request
// to refetch it.
func (e *Engine) Invalidate(locale fieldguide.Locale) {
	e.mu.Lock()
	delete(e.cache, locale)
	e.mu.Unlock()
}

// index returns the locale's index, refetching synchronously when the
// cached copy is absent or older than the TTL.
func (e *Engine) index(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
	if data, ok := e.cached(locale); ok {
		return data, nil
	}

	v, err, _ := e.group.Do(string(locale), func() (any, error) {
		// Another request may have refreshed while we waited on the flight.
		if data, ok := e.cached(locale); ok {
			return data, nil
		}
		data, err := e.source.FetchIndex(ctx, locale)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		e.cache[locale] = &cachedIndex{data: data, fetchedAt: e.now()}
		e.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]fieldguide.SearchIndexEntry), nil
}

func (e *Engine) cached(locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, bool) {
	e.mu.RLock()
	entry := e.cache[locale]
	e.mu.RUnlock()
	if entry == nil || e.now().Sub(entry.fetchedAt) >= e.ttl {
		return nil, false
	}
	return entry.data, true
}

// scoredResult is produced transiently during ranking and discarded after
// sort and filter.
type scoredResult struct {
	score  int
	title  string
	url    string
	locale fieldguide.Locale
}

// Search scores the query against every supported locale's index,
// aggregates and ranks the hits, then filters to the effectively-requested
// locale, deduplicating by resolved URL and capping the result count. A
// locale whose index cannot be fetched simply contributes no candidates.
func (e *Engine) Search(ctx context.Context, query string, locale fieldguide.Locale, limit int) ([]fieldguide.SearchResult, error) {
	terms := fieldguide.Tokenize(query)
	if len(terms) == 0 {
		return nil, nil
	}
	effective := fieldguide.EffectiveLocale(locale)

	var combined []scoredResult
	for _, lang := range fieldguide.Locales {
		idx, err := e.index(ctx, lang)
		if err != nil {
			continue
		}
		for _, entry := range idx {
			s := fieldguide.ScoreEntry(entry, terms)
			if s <= 0 {
				continue
			}
			title := entry.Entry
			if title == "" {
				title = fieldguide.DefaultTitle
			}
			combined = append(combined, scoredResult{
				score:  s,
				title:  title,
				url:    fieldguide.BuildURL(entry.URL, lang),
				locale: lang,
			})
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].score > combined[j].score
	})

	capped := limit
	if capped > maxSearchResults {
		capped = maxSearchResults
	}
	if capped < 1 {
		capped = 1
	}

	seen := make(map[uint64]struct{})
	var top []fieldguide.SearchResult
	for _, r := range combined {
		if r.locale != effective {
			continue
		}
		key := xxhash.Sum64String(r.url)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		top = append(top, fieldguide.SearchResult{Title: r.title, URL: r.url})
		if len(top) >= capped {
			break
		}
	}
	return top, nil
}
