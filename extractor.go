package fieldguide

// PageContent is everything extracted from a fetched document in one pass:
// the title, the budget-bounded summary, the first image, and the table of
// contents.
type PageContent struct {
	Title   string
	Summary string
	Image   string
	TOC     []TocItem
}

// Extractor converts raw HTML into chat-friendly text. The PageRef supplies
// the document's canonical URL, used to resolve relative links and re-apply
// the active locale to them.
type Extractor interface {
	// Extract parses the document and returns its title, summary, first
	// image, and table of contents.
	Extract(html string, ref PageRef) (*PageContent, error)

	// ExtractSection extracts the heading-bounded section starting at the
	// given anchor id. A missing or blacklisted anchor returns (nil, nil)
	// so callers can fall back to the whole-page summary.
	ExtractSection(html string, ref PageRef, fragment string) (*Section, error)
}
