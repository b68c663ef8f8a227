package scrape

import (
	"regexp"

	"github.com/mbazin/testcards"
)

// TextCategory is the single category the text tier buckets its results
// under.
const TextCategory = "Scraped from text"

// textNote marks records recovered by pattern scanning rather than table
// parsing.
const textNote = "Extracted from text"

// numberPatterns are tried in order over the raw content. Digit groupings
// match how the documentation formats numbers inline: four groups of four,
// the 4+6+5 Amex shape, and the 4+6+4 Diners shape.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}\s*\d{4}\s*\d{4}\s*\d{4}`),
	regexp.MustCompile(`\d{4}\s*\d{6}\s*\d{5}`),
	regexp.MustCompile(`\d{4}\s*\d{6}\s*\d{4}`),
}

// Ensure TextExtractor implements testcards.Extractor at compile time.
var _ testcards.Extractor = (*TextExtractor)(nil)

// TextExtractor is the second extraction tier. It scans raw page content
// with ordered digit-grouping patterns, keeps every match that passes Luhn
// validation, and infers the brand from the number prefix. Numbers matched
// by more than one pattern are kept once per pattern; this tier does not
// deduplicate.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract scans content for card-shaped digit groups. Content without any
// valid number yields an empty catalog.
func (e *TextExtractor) Extract(content string) (*testcards.Catalog, error) {
	catalog := testcards.NewCatalog()

	for _, pattern := range numberPatterns {
		for _, match := range pattern.FindAllString(content, -1) {
			number := testcards.CleanNumber(match)
			if !testcards.ValidNumber(number) {
				continue
			}
			catalog.Add(TextCategory, testcards.Card{
				Number: number,
				Brand:  string(testcards.InferBrand(number)),
				Expiry: testcards.DefaultExpiry,
				CVC:    testcards.DefaultCVC,
				Note:   textNote,
			})
		}
	}

	return catalog, nil
}
