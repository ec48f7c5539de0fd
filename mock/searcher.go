package mock

import (
	"context"

	"github.com/terrafirmagreg/fieldguide"
)

var _ fieldguide.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of fieldguide.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, locale fieldguide.Locale, limit int) ([]fieldguide.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, locale fieldguide.Locale, limit int) ([]fieldguide.SearchResult, error) {
	return s.SearchFn(ctx, query, locale, limit)
}
