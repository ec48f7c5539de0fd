package mock

import (
	"github.com/terrafirmagreg/fieldguide"
)

var _ fieldguide.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of fieldguide.Extractor.
type Extractor struct {
	ExtractFn        func(html string, ref fieldguide.PageRef) (*fieldguide.PageContent, error)
	ExtractSectionFn func(html string, ref fieldguide.PageRef, fragment string) (*fieldguide.Section, error)
}

func (e *Extractor) Extract(html string, ref fieldguide.PageRef) (*fieldguide.PageContent, error) {
	return e.ExtractFn(html, ref)
}

func (e *Extractor) ExtractSection(html string, ref fieldguide.PageRef, fragment string) (*fieldguide.Section, error) {
	return e.ExtractSectionFn(html, ref, fragment)
}
