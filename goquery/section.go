package goquery

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/terrafirmagreg/fieldguide"
)

// walkState models the sibling walk explicitly: the walk collects text
// until a boundary transition fires, then stays stopped.
type walkState int

const (
	stateCollecting walkState = iota
	stateStopped
)

// walkAction is the transition decided for each sibling during the walk.
type walkAction int

const (
	// actionStop ends the section: a heading at or above the anchor's
	// level, an element outside the anchor's content region, or a
	// breadcrumb.
	actionStop walkAction = iota
	// actionSubheading appends the heading text as a bolded sub-header.
	actionSubheading
	// actionCollect converts the element to text and appends it.
	actionCollect
	// actionSkip ignores the element and continues.
	actionSkip
)

// headingLevel parses a heading tag into its level. Any tag starting with
// "h" counts, with unparsable suffixes treated as the deepest level.
func headingLevel(tag string) (int, bool) {
	if !strings.HasPrefix(tag, "h") {
		return 0, false
	}
	lvl, err := strconv.Atoi(tag[1:])
	if err != nil {
		return 6, true
	}
	return lvl, true
}

// sectionAction decides the transition for one sibling. anchorLevel is 0
// when the anchor element is not a heading, in which case headings never
// terminate the walk.
func sectionAction(cursor *goquery.Selection, anchorLevel int, contentRoot *goquery.Selection) walkAction {
	tag := goquery.NodeName(cursor)
	if lvl, ok := headingLevel(tag); ok && anchorLevel > 0 && lvl <= anchorLevel {
		return actionStop
	}
	if contentRoot != nil && contentRoot.Length() > 0 && !isDescendant(contentRoot, cursor) {
		return actionStop
	}
	if isBreadcrumb(cursor) {
		return actionStop
	}
	if _, ok := headingLevel(tag); ok {
		return actionSubheading
	}
	if !shouldIncludeNode(cursor) {
		return actionSkip
	}
	return actionCollect
}

// extractSection collects the text of the section starting at fragmentID:
// following siblings of the anchor up to the next heading of equal or
// shallower level, converted to text under the embed budget, then
// de-duplicated against the section and page titles. Returns nil when the
// anchor is missing or blacklisted.
func extractSection(doc *goquery.Document, fragmentID string, ref fieldguide.PageRef) *fieldguide.Section {
	if fragmentID == "" || fieldguide.IsBlacklistedFragment(fragmentID) {
		return nil
	}
	anchor := findByID(doc, fragmentID)
	if anchor == nil {
		return nil
	}

	anchorLevel := 0
	if lvl, ok := headingLevel(goquery.NodeName(anchor)); ok {
		anchorLevel = lvl
	}
	contentRoot := anchor.Closest(contentRootSelector)

	var parts []string
	state := stateCollecting
	for cursor := anchor.Next(); cursor.Length() > 0 && state == stateCollecting; cursor = cursor.Next() {
		switch sectionAction(cursor, anchorLevel, contentRoot) {
		case actionStop:
			state = stateStopped
		case actionSubheading:
			if text := strings.TrimSpace(cursor.Text()); text != "" {
				parts = append(parts, "**"+text+"**")
			}
		case actionCollect:
			if txt := nodeToText(cursor, ref.BaseURL); txt != "" {
				parts = append(parts, txt)
			}
			if utf8.RuneCountInString(strings.Join(parts, "\n\n")) > fieldguide.EmbedTextLimit {
				state = stateStopped
			}
		case actionSkip:
		}
	}

	title := strings.TrimSpace(anchor.Text())
	if title == "" {
		title = fragmentID
	}
	cleaned := dedupeBlocks(parts, title, extractTitle(doc))

	return &fieldguide.Section{
		Title:       title,
		Description: fieldguide.TruncateWithEllipsis(strings.Join(cleaned, "\n\n"), fieldguide.EmbedTextLimit),
		Image:       firstImage(anchor.Parent()),
	}
}

// dedupeBlocks drops title echoes from collected blocks: exact normalized
// matches of the section or page title anywhere, a leading block that is a
// near-duplicate prefix of either title (within 15 characters of the title
// length), and exact normalized duplicates thereafter, preserving first
// occurrence order.
func dedupeBlocks(parts []string, sectionTitle, pageTitle string) []string {
	normTitle := fieldguide.NormalizeKey(sectionTitle)
	normPage := fieldguide.NormalizeKey(pageTitle)
	titleLen := utf8.RuneCountInString(sectionTitle)
	pageLen := utf8.RuneCountInString(pageTitle)

	var cleaned []string
	seen := make(map[string]struct{})
	for _, block := range parts {
		pt := strings.TrimSpace(block)
		if pt == "" {
			continue
		}
		norm := fieldguide.NormalizeKey(pt)
		if norm == normTitle || norm == normPage {
			continue
		}
		if len(cleaned) == 0 {
			ptLen := utf8.RuneCountInString(pt)
			if (strings.HasPrefix(norm, normTitle) && ptLen <= titleLen+15) ||
				(strings.HasPrefix(norm, normPage) && ptLen <= pageLen+15) {
				continue
			}
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		cleaned = append(cleaned, pt)
	}
	return cleaned
}

// findByID locates the element with the exact id attribute. Lookup avoids
// selector syntax so ids with CSS metacharacters still resolve.
func findByID(doc *goquery.Document, id string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("id"); v == id {
			found = s
			return false
		}
		return true
	})
	return found
}

// isDescendant reports whether sel's node sits anywhere below root's node.
func isDescendant(root, sel *goquery.Selection) bool {
	if len(root.Nodes) == 0 || len(sel.Nodes) == 0 {
		return false
	}
	rootNode := root.Nodes[0]
	for n := sel.Nodes[0].Parent; n != nil; n = n.Parent {
		if n == rootNode {
			return true
		}
	}
	return false
}
