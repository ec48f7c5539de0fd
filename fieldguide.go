// Package fieldguide turns pages of the TerraFirmaGreg Field Guide website
// into ranked, size-bounded, chat-friendly text: canonical locale-tagged
// URLs, page summaries, section extracts, tables of contents, and scored
// search results backed by the site's per-locale JSON search index.
//
// This package contains domain types, interfaces, and pure functions
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. http/,
// goquery/), orchestration in guide/ and search/.
package fieldguide
