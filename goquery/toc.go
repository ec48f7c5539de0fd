package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/terrafirmagreg/fieldguide"
)

// maxTocEntries caps the table of contents.
const maxTocEntries = 60

// buildTOC collects h2/h3 headings carrying a non-empty id into
// (title, base_url#id) pairs, excluding blacklisted fragments and headings
// echoing the page title. Entries are deduplicated by normalized title plus
// anchor id, preserving document order.
func buildTOC(doc *goquery.Document, baseURL, pageTitle string) []fieldguide.TocItem {
	var items []fieldguide.TocItem
	doc.Find("h2[id], h3[id]").Each(func(_ int, el *goquery.Selection) {
		id, _ := el.Attr("id")
		txt := strings.TrimSpace(el.Text())
		if id == "" || txt == "" {
			return
		}
		if fieldguide.IsBlacklistedFragment(id) {
			return
		}
		if txt == pageTitle {
			return
		}
		items = append(items, fieldguide.TocItem{Title: txt, URL: baseURL + "#" + id})
	})

	seen := make(map[uint64]struct{}, len(items))
	var unique []fieldguide.TocItem
	for _, it := range items {
		anchor := it.URL[strings.LastIndex(it.URL, "#")+1:]
		key := xxhash.Sum64String(fieldguide.NormalizeKey(it.Title) + "#" + anchor)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, it)
		if len(unique) >= maxTocEntries {
			break
		}
	}
	return unique
}
