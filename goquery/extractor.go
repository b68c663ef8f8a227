// Package goquery provides the table-based extraction tier on top of
// github.com/PuerkitoBio/goquery DOM queries.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbazin/testcards"
)

// DefaultCategory labels tables that have no preceding heading.
const DefaultCategory = "Other"

// anchorPrefix is a rendering artifact the documentation page leaves at the
// start of heading text.
const anchorPrefix = "Anchor"

// Ensure TableExtractor implements testcards.Extractor at compile time.
var _ testcards.Extractor = (*TableExtractor)(nil)

// TableExtractor is the first extraction tier. It walks every table in the
// document, labels it with the nearest preceding h2/h3 heading, and runs
// each row with at least three cells through the row classifier. Malformed
// rows are skipped silently; a document with no recognizable tables yields
// an empty catalog.
//
// Parsing is best-effort: the underlying HTML parser tolerates recoverable
// structural errors, so real-world markup never aborts extraction.
type TableExtractor struct{}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{}
}

// Extract parses content and accumulates validated cards keyed by category.
func (e *TableExtractor) Extract(content string) (*testcards.Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, testcards.Errorf(testcards.EINVALID, "failed to parse HTML: %v", err)
	}

	catalog := testcards.NewCatalog()

	// Find returns matches in document order, so walking headings and
	// tables together tracks the nearest heading preceding each table.
	category := DefaultCategory
	doc.Find("h2, h3, table").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2", "h3":
			// The nearest preceding heading wins, even when it cleans to
			// nothing; an empty heading resets the label to the default.
			if label := cleanHeading(sel.Text()); label != "" {
				category = label
			} else {
				category = DefaultCategory
			}
		case "table":
			e.extractTable(catalog, category, sel)
		}
	})

	return catalog, nil
}

// extractTable classifies every row of the table and appends the survivors
// to the category's list.
func (e *TableExtractor) extractTable(catalog *testcards.Catalog, category string, table *goquery.Selection) {
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, cell.Text())
		})

		card, err := testcards.ClassifyRow(texts)
		if err != nil {
			// Rows without a valid number are dropped, not fatal.
			return
		}
		catalog.Add(category, *card)
	})
}

// cleanHeading strips the Anchor prefix artifact and collapses internal
// whitespace.
func cleanHeading(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, anchorPrefix)
	return strings.Join(strings.Fields(text), " ")
}
