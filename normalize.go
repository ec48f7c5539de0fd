package fieldguide

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey reduces a string to a lowercase underscore-separated key for
// duplicate detection: Unicode-decompose (NFKD), strip combining marks,
// lowercase, collapse every run of non-alphanumeric characters to a single
// underscore, and trim leading/trailing underscores.
//
// Only ASCII letters and digits survive, so text in non-Latin scripts
// normalizes to the empty string. Comparisons relying on this function
// deliberately keep that behavior.
func NormalizeKey(s string) string {
	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	underscore := false
	for _, r := range decomposed {
		if r >= 0x0300 && r <= 0x036f {
			// Combining diacritical marks split off by NFKD.
			continue
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
