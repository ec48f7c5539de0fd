// Package guide composes the resolver, fetcher, and extractor into
// page-level operations: a budget-bounded page view and a title lookup.
package guide

import (
	"context"

	"github.com/terrafirmagreg/fieldguide"
)

// fallbackDescription is shown when a page or section yields no usable
// text.
const fallbackDescription = "Open the page for details."

// Service builds chat-ready page views.
type Service struct {
	Fetcher   fieldguide.Fetcher
	Extractor fieldguide.Extractor
}

// Page resolves the identifier, fetches the document, and assembles a view.
// When the identifier carried a fragment and its section exists, the
// section text is shown alone; otherwise the summary is merged with as many
// TOC lines as fit under the embed budget. Fetch failures propagate;
// callers decide fallback behavior.
func (s *Service) Page(ctx context.Context, identifier string, locale fieldguide.Locale) (*fieldguide.Page, error) {
	ref := fieldguide.ResolvePage(identifier, locale)

	html, err := s.Fetcher.Fetch(ctx, ref.BaseURL)
	if err != nil {
		return nil, err
	}

	content, err := s.Extractor.Extract(html, ref)
	if err != nil {
		return nil, err
	}

	if ref.Fragment != "" {
		sect, err := s.Extractor.ExtractSection(html, ref, ref.Fragment)
		if err != nil {
			return nil, err
		}
		if sect != nil {
			desc := sect.Description
			if desc == "" {
				desc = fallbackDescription
			}
			image := sect.Image
			if image == "" {
				image = content.Image
			}
			return &fieldguide.Page{
				Title:       sect.Title + " — " + content.Title,
				URL:         ref.String(),
				Description: fieldguide.TruncateWithEllipsis(desc, fieldguide.EmbedTextLimit),
				Image:       image,
			}, nil
		}
		// Missing or blacklisted anchor: fall back to the whole-page view.
	}

	tocLines := make([]string, 0, len(content.TOC))
	for _, it := range content.TOC {
		tocLines = append(tocLines, fieldguide.TocLine(it))
	}
	description := fieldguide.ComposePageText(content.Summary, tocLines)
	if description == "" {
		description = fallbackDescription
	}

	return &fieldguide.Page{
		Title:       content.Title,
		URL:         ref.BaseURL,
		Description: description,
		Image:       content.Image,
		TOC:         content.TOC,
	}, nil
}

// PageTitle fetches a page and returns its localized title with the
// canonical URL. On fetch or extraction failure it degrades to path-only
// metadata: the default title with the resolved URL.
func (s *Service) PageTitle(ctx context.Context, identifier string, locale fieldguide.Locale) fieldguide.SearchResult {
	ref := fieldguide.ResolvePage(identifier, locale)

	html, err := s.Fetcher.Fetch(ctx, ref.BaseURL)
	if err != nil {
		return fieldguide.SearchResult{Title: fieldguide.DefaultTitle, URL: ref.BaseURL}
	}
	content, err := s.Extractor.Extract(html, ref)
	if err != nil || content.Title == "" {
		return fieldguide.SearchResult{Title: fieldguide.DefaultTitle, URL: ref.BaseURL}
	}
	return fieldguide.SearchResult{Title: content.Title, URL: ref.BaseURL}
}
