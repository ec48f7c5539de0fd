package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/terrafirmagreg/fieldguide"
	"github.com/terrafirmagreg/fieldguide/mock"
	"github.com/terrafirmagreg/fieldguide/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteRoot = "https://terrafirmagreg-team.github.io/Field-Guide-Modern/"

func TestEngine_Search_Ranking(t *testing.T) {
	t.Parallel()

	t.Run("orders by score descending", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				if locale != "en_us" {
					return []fieldguide.SearchIndexEntry{}, nil
				}
				return []fieldguide.SearchIndexEntry{
					{Entry: "Wool", Content: "Shear sheep for wool.", URL: "mechanics/wool.html"},
					{Entry: "Sheep", Content: "Sheep graze on grass.", URL: "mechanics/sheep.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "en_us", 10)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Sheep", results[0].Title)
		assert.Equal(t, siteRoot+"en_us/mechanics/sheep.html", results[0].URL)
		assert.Equal(t, "Wool", results[1].Title)
	})

	t.Run("results are restricted to the requested locale", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				return []fieldguide.SearchIndexEntry{
					{Entry: "Sheep", Content: "", URL: "mechanics/sheep.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "ja_jp", 50)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, siteRoot+"ja_jp/mechanics/sheep.html", results[0].URL)
	})

	t.Run("invalid locale falls back to the default", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				return []fieldguide.SearchIndexEntry{
					{Entry: "Sheep", Content: "", URL: "mechanics/sheep.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "xx_yy", 10)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, siteRoot+"en_us/mechanics/sheep.html", results[0].URL)
	})

	t.Run("untitled entries get the default title", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				return []fieldguide.SearchIndexEntry{
					{Entry: "", Content: "All about sheep.", URL: "index.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "en_us", 10)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, fieldguide.DefaultTitle, results[0].Title)
	})

	t.Run("deduplicates results by URL", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				return []fieldguide.SearchIndexEntry{
					{Entry: "Sheep", Content: "", URL: "mechanics/sheep.html"},
					{Entry: "Sheep", Content: "Sheep again.", URL: "mechanics/sheep.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "en_us", 10)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("limit below one returns a single result", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				return []fieldguide.SearchIndexEntry{
					{Entry: "Sheep", Content: "", URL: "mechanics/sheep.html"},
					{Entry: "Sheep Pen", Content: "", URL: "mechanics/pen.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "en_us", 0)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("empty query returns no results without fetching", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				fetches++
				return []fieldguide.SearchIndexEntry{}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "  !!! ", "en_us", 10)

		require.NoError(t, err)
		assert.Nil(t, results)
		assert.Zero(t, fetches)
	})

	t.Run("a failing locale contributes no candidates", func(t *testing.T) {
		t.Parallel()

		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				if locale == "ja_jp" {
					return nil, fieldguide.Errorf(fieldguide.EUNAVAILABLE, "fetch search index for %s: boom", locale)
				}
				return []fieldguide.SearchIndexEntry{
					{Entry: "Sheep", Content: "", URL: "mechanics/sheep.html"},
				}, nil
			},
		}
		engine := search.NewEngine(source)

		results, err := engine.Search(context.Background(), "sheep", "en_us", 10)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

func TestEngine_Caching(t *testing.T) {
	t.Parallel()

	t.Run("reuses indices within the TTL", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				fetches++
				return []fieldguide.SearchIndexEntry{}, nil
			},
		}
		engine := search.NewEngine(source)

		_, err := engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)
		_, err = engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)

		assert.Equal(t, len(fieldguide.Locales), fetches)
	})

	t.Run("refetches after the TTL elapses", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				fetches++
				return []fieldguide.SearchIndexEntry{}, nil
			},
		}
		current := time.Unix(0, 0)
		engine := search.NewEngine(source, search.WithClock(func() time.Time { return current }))

		_, err := engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)

		current = current.Add(search.DefaultIndexTTL + time.Minute)

		_, err = engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)

		assert.Equal(t, 2*len(fieldguide.Locales), fetches)
	})

	t.Run("failed fetches are not cached", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				fetches++
				return nil, fieldguide.Errorf(fieldguide.EUNAVAILABLE, "fetch search index for %s: boom", locale)
			},
		}
		engine := search.NewEngine(source)

		_, err := engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)
		_, err = engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)

		assert.Equal(t, 2*len(fieldguide.Locales), fetches)
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		t.Parallel()

		fetches := map[fieldguide.Locale]int{}
		source := &mock.IndexSource{
			FetchIndexFn: func(ctx context.Context, locale fieldguide.Locale) ([]fieldguide.SearchIndexEntry, error) {
				fetches[locale]++
				return []fieldguide.SearchIndexEntry{}, nil
			},
		}
		engine := search.NewEngine(source)

		_, err := engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)

		engine.Invalidate("en_us")

		_, err = engine.Search(context.Background(), "sheep", "en_us", 10)
		require.NoError(t, err)

		assert.Equal(t, 2, fetches["en_us"])
		assert.Equal(t, 1, fetches["ja_jp"])
	})
}
