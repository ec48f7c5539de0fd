package fieldguide

import (
	"strings"
	"unicode/utf8"
)

// EmbedTextLimit is the hard budget, in characters, for any body of text
// destined for a single chat embed.
const EmbedTextLimit = 4096

// DefaultTitle is used whenever a page or index entry has no usable title.
const DefaultTitle = "Field Guide"

// fragmentBlacklist lists substrings of anchor ids that belong to site
// chrome (theme toggles, language dropdowns, 3D viewers) rather than
// content. Fragments containing any of these are ignored everywhere.
var fragmentBlacklist = []string{
	"glb-viewer",
	"nav-primary",
	"navbar-content",
	"lang-dropdown-button",
	"bd-theme",
	"bd-theme-text",
}

// IsBlacklistedFragment reports whether an anchor id, or the fragment part
// of a URL, contains any blacklisted substring.
func IsBlacklistedFragment(idOrURL string) bool {
	if idOrURL == "" {
		return false
	}
	candidate := idOrURL
	if i := strings.LastIndex(idOrURL, "#"); i != -1 {
		candidate = idOrURL[i+1:]
	}
	lc := strings.ToLower(candidate)
	for _, sub := range fragmentBlacklist {
		if strings.Contains(lc, sub) {
			return true
		}
	}
	return false
}

// Page is the assembled, budget-bounded view of a guide page or section,
// ready to be rendered by a chat frontend.
type Page struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	TOC         []TocItem `json:"toc,omitempty"`
}

// TocItem is a single table-of-contents entry pointing at a heading anchor.
type TocItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Section is the extracted text of a single heading-bounded page section.
type Section struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// TocLine renders a TOC entry as a markdown list line.
func TocLine(it TocItem) string {
	return "- [" + it.Title + "](" + it.URL + ")"
}

// TruncateWithEllipsis shortens text to at most limit characters, replacing
// the tail with "..." when it was cut.
func TruncateWithEllipsis(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	slice := limit - 3
	if slice < 0 {
		slice = 0
	}
	return string(runes[:slice]) + "..."
}

// ComposePageText merges a page summary with as many TOC lines as fit under
// EmbedTextLimit. The summary comes first, followed by a blank line and the
// selected TOC lines newline-joined; the combined text is ellipsis-truncated
// if it still exceeds the budget.
func ComposePageText(summary string, tocLines []string) string {
	baseText := strings.TrimSpace(summary)
	baseLen := utf8.RuneCountInString(baseText)

	remaining := EmbedTextLimit
	if baseLen > 0 {
		remaining -= baseLen + 2
	}
	if remaining < 0 {
		remaining = 0
	}

	var picked []string
	used := 0
	for _, line := range tocLines {
		add := utf8.RuneCountInString(line) + 1
		if len(picked) > 0 {
			add++
		}
		if used+add > remaining {
			break
		}
		picked = append(picked, line)
		used += add
	}

	var parts []string
	if baseText != "" {
		parts = append(parts, baseText)
	}
	if len(picked) > 0 {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, picked...)
	}

	combined := strings.TrimSpace(strings.Join(parts, "\n"))
	return TruncateWithEllipsis(combined, EmbedTextLimit)
}
