package mock

import "github.com/mbazin/testcards"

var _ testcards.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of testcards.Extractor.
type Extractor struct {
	ExtractFn func(content string) (*testcards.Catalog, error)
}

func (e *Extractor) Extract(content string) (*testcards.Catalog, error) {
	return e.ExtractFn(content)
}
