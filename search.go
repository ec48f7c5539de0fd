package fieldguide

import (
	"context"
	"regexp"
	"strings"
)

// SearchIndexEntry is one record of the per-locale search_index.json
// document published alongside the site. Entries are immutable once
// fetched.
type SearchIndexEntry struct {
	// Entry is the page or section title.
	Entry string `json:"entry"`

	// Content is the plain-text body used for content matches.
	Content string `json:"content"`

	// URL is the site-relative path of the page, possibly with a fragment.
	URL string `json:"url"`
}

// SearchResult is a single ranked search hit with a resolved absolute URL.
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Searcher ranks pages across the known locale indices for a free-text
// query.
type Searcher interface {
	// Search tokenizes the query, scores it against every locale's index,
	// and returns deduplicated top results restricted to the requested
	// locale (falling back to DefaultLocale if invalid). An empty or
	// all-punctuation query yields an empty result set, never an error.
	Search(ctx context.Context, query string, locale Locale, limit int) ([]SearchResult, error)
}

// IndexSource retrieves the raw search index for a locale.
type IndexSource interface {
	// FetchIndex downloads and decodes the locale's search index document.
	// A malformed (non-array/null) document is an EINVALID error for that
	// locale only.
	FetchIndex(ctx context.Context, locale Locale) ([]SearchIndexEntry, error)
}

var (
	querySeparatorsRe = regexp.MustCompile(`[_#./-]+`)
	queryNonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	queryWhitespaceRe = regexp.MustCompile(`\s+`)
)

// Tokenize lowercases a query, treats separator characters (_ # . / -) as
// spaces, strips everything that is not a letter, digit, or whitespace, and
// splits on whitespace. The result is nil for queries with no usable
// tokens.
func Tokenize(query string) []string {
	s := strings.ToLower(query)
	s = querySeparatorsRe.ReplaceAllString(s, " ")
	s = queryNonWordRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return queryWhitespaceRe.Split(s, -1)
}

// HasStandaloneTerm reports whether term appears in text as a whole word,
// bounded by non-alphanumeric characters or the string edges. Matching is
// case-insensitive and Unicode-aware; substrings inside larger words do not
// count.
func HasStandaloneTerm(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(term) + `(?:[^\p{L}\p{N}]|$)`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// TitleStartsWithTerm reports whether the title begins with term as a whole
// word, with the same boundary rules as HasStandaloneTerm.
func TitleStartsWithTerm(title, term string) bool {
	if title == "" || term == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)^(?:` + regexp.QuoteMeta(term) + `)(?:[^\p{L}\p{N}]|$)`)
	if err != nil {
		return false
	}
	return re.MatchString(title)
}

// ScoreEntry computes the relevance of an index entry for the given query
// terms: +4 per term appearing standalone in the title, +2 per term in the
// content, and +1 per term the title starts with.
func ScoreEntry(entry SearchIndexEntry, terms []string) int {
	score := 0
	for _, t := range terms {
		if HasStandaloneTerm(entry.Entry, t) {
			score += 4
		}
		if HasStandaloneTerm(entry.Content, t) {
			score += 2
		}
	}
	for _, t := range terms {
		if TitleStartsWithTerm(entry.Entry, t) {
			score++
		}
	}
	return score
}
