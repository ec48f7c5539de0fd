package fieldguide_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/terrafirmagreg/fieldguide"
	"github.com/stretchr/testify/assert"
)

func TestIsBlacklistedFragment(t *testing.T) {
	t.Parallel()

	t.Run("matches chrome anchors by substring", func(t *testing.T) {
		t.Parallel()

		assert.True(t, fieldguide.IsBlacklistedFragment("glb-viewer-3"))
		assert.True(t, fieldguide.IsBlacklistedFragment("NAV-PRIMARY"))
		assert.True(t, fieldguide.IsBlacklistedFragment("bd-theme-text"))
	})

	t.Run("checks only the part after the last hash", func(t *testing.T) {
		t.Parallel()

		assert.True(t, fieldguide.IsBlacklistedFragment("https://example.com/page.html#lang-dropdown-button"))
		assert.False(t, fieldguide.IsBlacklistedFragment("https://example.com/glb-viewer.html#scythes"))
	})

	t.Run("passes ordinary anchors", func(t *testing.T) {
		t.Parallel()

		assert.False(t, fieldguide.IsBlacklistedFragment("scythes"))
		assert.False(t, fieldguide.IsBlacklistedFragment(""))
	})
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()

	t.Run("returns short text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", fieldguide.TruncateWithEllipsis("hello", 10))
	})

	t.Run("cuts to the limit including the ellipsis", func(t *testing.T) {
		t.Parallel()

		got := fieldguide.TruncateWithEllipsis("abcdefghijk", 10)

		assert.Equal(t, "abcdefg...", got)
		assert.Len(t, got, 10)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		got := fieldguide.TruncateWithEllipsis(strings.Repeat("日", 11), 10)

		assert.Equal(t, strings.Repeat("日", 7)+"...", got)
		assert.Equal(t, 10, utf8.RuneCountInString(got))
	})
}

func TestTocLine(t *testing.T) {
	t.Parallel()

	it := fieldguide.TocItem{Title: "Crops", URL: "https://example.com/page.html#crops"}

	assert.Equal(t, "- [Crops](https://example.com/page.html#crops)", fieldguide.TocLine(it))
}

func TestComposePageText(t *testing.T) {
	t.Parallel()

	t.Run("summary alone", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A summary.", fieldguide.ComposePageText("A summary.", nil))
	})

	t.Run("toc alone", func(t *testing.T) {
		t.Parallel()

		got := fieldguide.ComposePageText("", []string{"- [A](u)", "- [B](v)"})

		assert.Equal(t, "- [A](u)\n- [B](v)", got)
	})

	t.Run("summary then blank line then toc", func(t *testing.T) {
		t.Parallel()

		got := fieldguide.ComposePageText("A summary.", []string{"- [A](u)"})

		assert.Equal(t, "A summary.\n\n- [A](u)", got)
	})

	t.Run("stops adding toc lines at the budget", func(t *testing.T) {
		t.Parallel()

		summary := strings.Repeat("a", 4000)
		line := "- [" + strings.Repeat("b", 75) + "](u)"
		got := fieldguide.ComposePageText(summary, []string{line, line + "x"})

		assert.Equal(t, summary+"\n\n"+line, got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), fieldguide.EmbedTextLimit)
	})

	t.Run("truncates an oversized summary", func(t *testing.T) {
		t.Parallel()

		got := fieldguide.ComposePageText(strings.Repeat("a", 5000), nil)

		assert.Equal(t, fieldguide.EmbedTextLimit, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, fieldguide.ComposePageText("", nil))
	})
}
