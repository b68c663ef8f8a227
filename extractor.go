package testcards

// Extractor turns raw page content into a card catalog.
//
// Extraction is best-effort: content with no recognizable card data yields
// an empty catalog, not an error. Malformed fragments (broken rows, numbers
// failing validation) are skipped silently. An error is returned only when
// the input cannot be processed at all.
type Extractor interface {
	Extract(content string) (*Catalog, error)
}
