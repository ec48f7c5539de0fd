package fieldguide

import (
	"net/url"
	"regexp"
	"strings"
)

// BaseURL is the root of the guide site. Locale segments are inserted
// directly below it.
const BaseURL = "https://terrafirmagreg-team.github.io/Field-Guide-Modern/"

// siteRootSegments are the path components recognized as the site root.
// The locale segment, when present, immediately follows one of these.
var siteRootSegments = []string{"Field-Guide-Modern", "Field-Guide"}

var absoluteURLRe = regexp.MustCompile(`(?i)^https?://`)

// PageRef is a resolved document reference: a canonical, locale-tagged base
// URL with no fragment, plus the fragment that was split off (if any).
type PageRef struct {
	BaseURL  string
	Fragment string
}

// String returns the full URL, re-attaching the fragment when present.
func (r PageRef) String() string {
	if r.Fragment != "" {
		return r.BaseURL + "#" + r.Fragment
	}
	return r.BaseURL
}

// ResolvePage converts a user-supplied identifier into a canonical document
// reference. The identifier may be a bare path ("mechanics/crops"), a path
// with a fragment ("mechanics/crops#scythes"), or a full URL. A locale
// segment already present in an absolute URL wins over the requested
// locale; invalid locales silently fall back to DefaultLocale.
//
// ResolvePage is idempotent: resolving its own BaseURL yields the same
// reference.
func ResolvePage(identifier string, locale Locale) PageRef {
	if absoluteURLRe.MatchString(identifier) {
		u, err := url.Parse(identifier)
		if err != nil {
			return PageRef{BaseURL: identifier}
		}
		useLocale := locale
		if found, ok := LocaleFromURL(identifier); ok {
			useLocale = found
		}
		fragment := u.Fragment
		u.Fragment = ""
		return PageRef{
			BaseURL:  CanonicalURL(u.String(), useLocale),
			Fragment: fragment,
		}
	}

	path, fragment, _ := strings.Cut(identifier, "#")
	path = strings.Trim(path, "/")
	if !strings.HasSuffix(path, ".html") {
		path += ".html"
	}
	safe := EffectiveLocale(locale)
	return PageRef{
		BaseURL:  CanonicalURL(BaseURL+string(safe)+"/"+path, safe),
		Fragment: fragment,
	}
}

// BuildURL builds a full URL from a relative path or absolute URL,
// preserving any fragment.
func BuildURL(identifier string, locale Locale) string {
	return ResolvePage(identifier, locale).String()
}

// EnsureLocale rewrites the locale segment of a URL whose path contains the
// site root: inserted if absent, replaced if different. URLs outside the
// site root are returned unchanged, as are unparseable ones. Query and
// fragment are preserved.
func EnsureLocale(rawURL string, locale Locale) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	safe := EffectiveLocale(locale)

	parts := strings.Split(u.Path, "/")
	rootIdx := siteRootIndex(parts)
	if rootIdx == -1 {
		return rawURL
	}

	if rootIdx+1 < len(parts) {
		if next := Locale(parts[rootIdx+1]); next.Valid() {
			if next != safe {
				parts[rootIdx+1] = string(safe)
			}
		} else {
			parts = append(parts[:rootIdx+1], append([]string{string(safe)}, parts[rootIdx+1:]...)...)
		}
	} else {
		parts = append(parts, string(safe))
	}

	u.Path = strings.Join(parts, "/")
	return u.String()
}

// CanonicalURL produces the canonical locale-tagged HTML URL: locale
// segment enforced, fragment removed, and directory-like paths resolved to
// a trailing index.html.
func CanonicalURL(rawURL string, locale Locale) string {
	ensured := EnsureLocale(rawURL, locale)
	u, err := url.Parse(ensured)
	if err != nil {
		return ensured
	}
	u.Fragment = ""

	path := u.Path
	last := path[strings.LastIndex(path, "/")+1:]
	switch {
	case last == "":
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		path += "index.html"
	case !strings.Contains(last, "."):
		path += "/index.html"
	case last == "index":
		path = strings.TrimSuffix(path, "/index") + "/index.html"
	}

	u.Path = path
	return u.String()
}

// LocaleFromURL detects a valid locale segment directly after the site-root
// path component. The second return value reports whether one was found;
// when absent the first value is DefaultLocale.
func LocaleFromURL(rawURL string) (Locale, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DefaultLocale, false
	}
	parts := strings.Split(u.Path, "/")
	rootIdx := siteRootIndex(parts)
	if rootIdx == -1 || rootIdx+1 >= len(parts) {
		return DefaultLocale, false
	}
	if candidate := Locale(parts[rootIdx+1]); candidate.Valid() {
		return candidate, true
	}
	return DefaultLocale, false
}

func siteRootIndex(parts []string) int {
	for i, part := range parts {
		for _, root := range siteRootSegments {
			if part == root {
				return i
			}
		}
	}
	return -1
}
