// Package goquery implements fieldguide.Extractor over parsed HTML
// documents: title, first-image, summary, section, and table-of-contents
// extraction with the site's block-classification and noise rules.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/terrafirmagreg/fieldguide"
)

// contentRootSelector identifies the primary content region of a guide
// page; extraction falls back to the whole body when it is absent.
const contentRootSelector = ".col-md-9"

// Ensure Extractor implements fieldguide.Extractor at compile time.
var _ fieldguide.Extractor = (*Extractor)(nil)

// Extractor converts guide pages into chat-friendly text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the document and returns its title, budget-bounded
// summary, first image, and table of contents.
func (e *Extractor) Extract(html string, ref fieldguide.PageRef) (*fieldguide.PageContent, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	title := extractTitle(doc)
	return &fieldguide.PageContent{
		Title:   title,
		Summary: extractSummary(doc, title, ref),
		Image:   firstImage(doc.Selection),
		TOC:     buildTOC(doc, ref.BaseURL, title),
	}, nil
}

// ExtractSection extracts the heading-bounded section starting at the given
// anchor id. A missing or blacklisted anchor returns (nil, nil).
func (e *Extractor) ExtractSection(html string, ref fieldguide.PageRef, fragment string) (*fieldguide.Section, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	return extractSection(doc, fragment, ref), nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fieldguide.Errorf(fieldguide.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// extractTitle prefers the first non-empty h1, then h2, then the document
// title, then the fixed default.
func extractTitle(doc *goquery.Document) string {
	if t := firstNonEmptyText(doc, "h1"); t != "" {
		return t
	}
	if t := firstNonEmptyText(doc, "h2"); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return fieldguide.DefaultTitle
}

func firstNonEmptyText(doc *goquery.Document, selector string) string {
	var out string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = t
			return false
		}
		return true
	})
	return out
}

// firstImage returns the first img src within the scope, resolved against
// the site root when relative.
func firstImage(scope *goquery.Selection) string {
	src, ok := scope.Find("img").First().Attr("src")
	if !ok || src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http") {
		return src
	}
	return resolveAgainst(fieldguide.BaseURL, src)
}

// extractSummary builds a short intro for the page. When a heading matching
// the page title carries a usable anchor it delegates to section
// extraction; otherwise it scans the primary content region's blocks in
// document order, accumulating under the embed budget.
func extractSummary(doc *goquery.Document, pageTitle string, ref fieldguide.PageRef) string {
	var header *goquery.Selection
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == pageTitle {
			header = s
			return false
		}
		return true
	})
	if header != nil {
		if id, ok := header.Attr("id"); ok && id != "" && !fieldguide.IsBlacklistedFragment(id) {
			if sect := extractSection(doc, id, ref); sect != nil && sect.Description != "" {
				return sect.Description
			}
		}
	}

	scope := doc.Find(contentRootSelector).First()
	if scope.Length() == 0 {
		scope = doc.Find("body").First()
	}

	var blocks []string
	currentLen := 0
	const sepLen = 2
	scope.Find("p, ul, ol").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		t := nodeToText(el, ref.BaseURL)
		if t == "" {
			return true
		}
		addLen := utf8.RuneCountInString(t)
		if len(blocks) > 0 {
			addLen += sepLen
		}
		if currentLen+addLen > fieldguide.EmbedTextLimit {
			return false
		}
		blocks = append(blocks, t)
		currentLen += addLen
		return true
	})

	return fieldguide.TruncateWithEllipsis(strings.Join(blocks, "\n\n"), fieldguide.EmbedTextLimit)
}
