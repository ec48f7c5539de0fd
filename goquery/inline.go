package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/terrafirmagreg/fieldguide"
	"golang.org/x/net/html"
)

// excludedContainers are UI/recipe widgets whose text is structured
// metadata, not prose. Elements nested inside them are never extracted.
const excludedContainers = ".crafting-recipe, .minecraft-text, .item-header, .glb-viewer, .glb-viewer-container"

var (
	// Lines starting with these labels are metadata, not prose.
	statPrefixRe = regexp.MustCompile(`(?i)^(Recipe:|Multiblock:)`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)

	absoluteLinkRe = regexp.MustCompile(`(?i)^https?://`)
)

// nodeKind is the closed set of element categories the inline renderer
// distinguishes. Anything else recurses into its children unchanged, so
// text is never dropped for unrecognized tags.
type nodeKind int

const (
	kindIgnore nodeKind = iota
	kindText
	kindBreak
	kindBold
	kindItalic
	kindCode
	kindLink
	kindOther
)

func classifyNode(n *html.Node) nodeKind {
	switch n.Type {
	case html.TextNode:
		return kindText
	case html.ElementNode:
	default:
		return kindIgnore
	}
	switch strings.ToLower(n.Data) {
	case "br":
		return kindBreak
	case "strong", "b":
		return kindBold
	case "em", "i":
		return kindItalic
	case "code", "kbd":
		return kindCode
	case "a":
		return kindLink
	default:
		return kindOther
	}
}

// inlineMarkdown renders the children of n as inline markdown. Hyperlinks
// are resolved to absolute, locale-corrected canonical URLs against
// currentURL.
func inlineMarkdown(n *html.Node, currentURL string) string {
	var out strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch classifyNode(child) {
		case kindText:
			out.WriteString(child.Data)
		case kindBreak:
			out.WriteString("\n")
		case kindBold:
			if inner := inlineMarkdown(child, currentURL); inner != "" {
				out.WriteString("**" + inner + "**")
			}
		case kindItalic:
			if inner := inlineMarkdown(child, currentURL); inner != "" {
				out.WriteString("*" + inner + "*")
			}
		case kindCode:
			// Backticks inside code spans are prefixed with a zero-width
			// space so they cannot terminate the span.
			inner := strings.ReplaceAll(inlineMarkdown(child, currentURL), "`", "\u200b`")
			if inner != "" {
				out.WriteString("`" + inner + "`")
			}
		case kindLink:
			out.WriteString(renderLink(child, currentURL))
		case kindOther:
			out.WriteString(inlineMarkdown(child, currentURL))
		}
	}
	return out.String()
}

func renderLink(n *html.Node, currentURL string) string {
	href := attrVal(n, "href")
	text := inlineMarkdown(n, currentURL)
	if text == "" {
		text = href
	}
	abs := resolveGuideLink(href, currentURL)
	if abs == "" {
		return text
	}
	return "[" + text + "](" + abs + ")"
}

// resolveGuideLink resolves a href discovered in page markup to an
// absolute URL carrying the locale of the page it was found on, so links
// always point at the reader's locale rather than the link author's.
// Unresolvable hrefs yield "" and the caller falls back to plain text.
func resolveGuideLink(href, currentURL string) string {
	if href == "" {
		return ""
	}
	base := currentURL
	if base == "" {
		base = fieldguide.BaseURL
	}
	locale := fieldguide.DefaultLocale
	if found, ok := fieldguide.LocaleFromURL(base); ok {
		locale = found
	}

	switch {
	case strings.HasPrefix(href, "#"):
		resolved := resolveAgainst(base, href)
		if resolved == "" {
			return ""
		}
		return fieldguide.EnsureLocale(resolved, locale)
	case absoluteLinkRe.MatchString(href):
		return fieldguide.CanonicalURL(href, locale)
	default:
		resolved := resolveAgainst(base, href)
		if resolved == "" {
			return ""
		}
		return fieldguide.CanonicalURL(resolved, locale)
	}
}

func resolveAgainst(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// listText converts a ul/ol element into one line per non-empty item:
// "- text" for unordered lists, "N. text" (1-based) for ordered ones.
func listText(sel *goquery.Selection, ordered bool, currentURL string) string {
	var lines []string
	index := 1
	sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if len(li.Nodes) == 0 {
			return
		}
		clean := strings.TrimSpace(inlineMarkdown(li.Nodes[0], currentURL))
		if clean == "" {
			return
		}
		if ordered {
			lines = append(lines, strconv.Itoa(index)+". "+clean)
			index++
		} else {
			lines = append(lines, "- "+clean)
		}
	})
	return strings.Join(lines, "\n")
}

// isBreadcrumb detects breadcrumb/navigation regions by tag name,
// aria-label, or class.
func isBreadcrumb(sel *goquery.Selection) bool {
	if goquery.NodeName(sel) == "nav" {
		return true
	}
	if aria, ok := sel.Attr("aria-label"); ok && strings.Contains(strings.ToLower(aria), "breadcrumb") {
		return true
	}
	if cls, ok := sel.Attr("class"); ok && strings.Contains(strings.ToLower(cls), "breadcrumb") {
		return true
	}
	return false
}

func isWithinExcluded(sel *goquery.Selection) bool {
	return sel.Closest(excludedContainers).Length() > 0
}

// isWithinBreadcrumb reports whether the element is itself a breadcrumb
// region or nested inside one.
func isWithinBreadcrumb(sel *goquery.Selection) bool {
	if isBreadcrumb(sel) {
		return true
	}
	return sel.Closest(`nav, [aria-label*="breadcrumb"], [class*="breadcrumb"]`).Length() > 0
}

// shouldIncludeNode reports whether an element is eligible for text
// extraction: a paragraph or list in main content, outside breadcrumbs and
// excluded containers.
func shouldIncludeNode(sel *goquery.Selection) bool {
	tag := goquery.NodeName(sel)
	if tag == "" {
		return false
	}
	if isWithinBreadcrumb(sel) {
		return false
	}
	if isWithinExcluded(sel) {
		return false
	}
	if strings.HasPrefix(tag, "h") {
		return false
	}
	return tag == "p" || tag == "ul" || tag == "ol"
}

// nodeToText converts an element into plain text, handling lists specially
// and dropping metadata noise (Recipe:/Multiblock: labels, digit-only
// counts).
func nodeToText(sel *goquery.Selection, currentURL string) string {
	tag := goquery.NodeName(sel)
	if isWithinBreadcrumb(sel) {
		return ""
	}
	if cls, ok := sel.Attr("class"); ok && strings.Contains(strings.ToLower(cls), "crafting-recipe-item-count") {
		return ""
	}
	if isWithinExcluded(sel) {
		return ""
	}
	if strings.HasPrefix(tag, "h") {
		return ""
	}
	switch tag {
	case "ul":
		return listText(sel, false, currentURL)
	case "ol":
		return listText(sel, true, currentURL)
	}
	if len(sel.Nodes) == 0 {
		return ""
	}
	t := strings.TrimSpace(inlineMarkdown(sel.Nodes[0], currentURL))
	if statPrefixRe.MatchString(t) {
		return ""
	}
	if digitsOnlyRe.MatchString(t) {
		return ""
	}
	return t
}
