package fieldguide

// Locale is a supported language/region code. It gates both the locale
// segment of page URLs and which search-index document is consulted.
type Locale string

// DefaultLocale is substituted silently whenever an unsupported or empty
// locale is supplied.
const DefaultLocale Locale = "en_us"

// Locales lists every locale the guide site is published in, in the order
// searches consult them.
var Locales = []Locale{
	"en_us",
	"ja_jp",
	"ko_kr",
	"pt_br",
	"ru_ru",
	"uk_ua",
	"zh_cn",
	"zh_hk",
	"zh_tw",
}

var localeLabels = map[Locale]string{
	"en_us": "English (en_us)",
	"ja_jp": "日本語 (ja_jp)",
	"ko_kr": "한국어 (ko_kr)",
	"pt_br": "Português (pt_br)",
	"ru_ru": "Русский (ru_ru)",
	"uk_ua": "Українська (uk_ua)",
	"zh_cn": "简体中文 (zh_cn)",
	"zh_hk": "香港繁體 (zh_hk)",
	"zh_tw": "繁體中文 (zh_tw)",
}

// Valid reports whether l is one of the supported locale codes.
func (l Locale) Valid() bool {
	for _, known := range Locales {
		if l == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable display name for the locale, or the raw
// code when no label is known.
func (l Locale) Label() string {
	if label, ok := localeLabels[l]; ok {
		return label
	}
	return string(l)
}

// EffectiveLocale returns l if it is supported, DefaultLocale otherwise.
// The substitution is silent; an invalid locale is never an error.
func EffectiveLocale(l Locale) Locale {
	if l.Valid() {
		return l
	}
	return DefaultLocale
}
