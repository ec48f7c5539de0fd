package mock

import (
	"context"

	"github.com/terrafirmagreg/fieldguide"
)

var _ fieldguide.IndexSource = (*IndexSource)(nil)

// IndexSource is a mock implementation of fieldguide.IndexSource.
type IndexSource struct {
	FetchIndexFn func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error)
}

func (s *IndexSource) FetchIndex(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
	return s.FetchIndexFn(ctx, locale)
}
