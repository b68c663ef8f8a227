package testcards

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/gocarina/gocsv"
)

// Catalog holds extracted cards grouped by category. Categories keep the
// order in which they were first populated, and cards keep discovery order
// within their category. A Catalog is populated once by an extraction run
// and read-only afterwards; re-extraction builds a fresh Catalog.
//
// A Catalog is not safe for concurrent mutation; concurrent reads after the
// extraction run completes are fine.
type Catalog struct {
	// Extraction run metadata, stamped by the scrape pipeline. Zero values
	// for catalogs that did not come from a fetch (e.g. the static dataset).
	RunID       string
	SourceURL   string
	ContentHash string
	FetchedAt   time.Time

	categories []string
	cards      map[string][]Card
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{cards: make(map[string][]Card)}
}

// Add appends a card to the named category, creating the category on first
// use.
func (c *Catalog) Add(category string, card Card) {
	if _, ok := c.cards[category]; !ok {
		c.categories = append(c.categories, category)
	}
	c.cards[category] = append(c.cards[category], card)
}

// Empty reports whether the catalog holds no categories.
func (c *Catalog) Empty() bool {
	return len(c.categories) == 0
}

// Categories returns the category names in first-populated order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// All returns a snapshot of the full category to card-list mapping.
func (c *Catalog) All() map[string][]Card {
	out := make(map[string][]Card, len(c.cards))
	for name, cards := range c.cards {
		out[name] = append([]Card(nil), cards...)
	}
	return out
}

// ByCategory returns the cards of the named category, or an empty slice if
// the category is absent.
func (c *Catalog) ByCategory(name string) []Card {
	return append([]Card(nil), c.cards[name]...)
}

// ByBrand returns all cards whose brand contains the given text,
// case-insensitively, across all categories.
func (c *Catalog) ByBrand(brand string) []Card {
	needle := strings.ToLower(brand)
	var out []Card
	for _, name := range c.categories {
		for _, card := range c.cards[name] {
			if strings.Contains(strings.ToLower(card.Brand), needle) {
				out = append(out, card)
			}
		}
	}
	return out
}

// ByCountry returns all cards issued in the given country. The comparison is
// exact and case-sensitive; codes are stored uppercase.
func (c *Catalog) ByCountry(country string) []Card {
	var out []Card
	for _, name := range c.categories {
		for _, card := range c.cards[name] {
			if card.Country == country {
				out = append(out, card)
			}
		}
	}
	return out
}

// SearchResult is a card annotated with the category it was found under.
type SearchResult struct {
	Card
	Category string `json:"category"`
}

// Search returns all cards whose number, brand, country, or enclosing
// category name contains the term, case-insensitively.
func (c *Catalog) Search(term string) []SearchResult {
	needle := strings.ToLower(term)
	var out []SearchResult
	for _, name := range c.categories {
		for _, card := range c.cards[name] {
			if strings.Contains(strings.ToLower(card.Number), needle) ||
				strings.Contains(strings.ToLower(card.Brand), needle) ||
				strings.Contains(strings.ToLower(card.Country), needle) ||
				strings.Contains(strings.ToLower(name), needle) {
				out = append(out, SearchResult{Card: card, Category: name})
			}
		}
	}
	return out
}

// Total returns the number of cards across all categories.
func (c *Catalog) Total() int {
	total := 0
	for _, cards := range c.cards {
		total += len(cards)
	}
	return total
}

// CatalogStats summarizes an extraction run.
type CatalogStats struct {
	RunID           string         `json:"runId,omitempty"`
	SourceURL       string         `json:"sourceUrl,omitempty"`
	ContentHash     string         `json:"contentHash,omitempty"`
	FetchedAt       time.Time      `json:"fetchedAt"`
	TotalCards      int            `json:"totalCards"`
	CategoryCount   int            `json:"categoryCount"`
	Categories      []string       `json:"categories"`
	CardsByCategory map[string]int `json:"cardsByCategory"`
}

// Stats returns summary statistics for the catalog.
func (c *Catalog) Stats() CatalogStats {
	byCategory := make(map[string]int, len(c.cards))
	for name, cards := range c.cards {
		byCategory[name] = len(cards)
	}
	return CatalogStats{
		RunID:           c.RunID,
		SourceURL:       c.SourceURL,
		ContentHash:     c.ContentHash,
		FetchedAt:       c.FetchedAt,
		TotalCards:      c.Total(),
		CategoryCount:   len(c.categories),
		Categories:      c.Categories(),
		CardsByCategory: byCategory,
	}
}

// MarshalJSON serializes the catalog as a category name to card-list object,
// preserving category insertion order. Non-ASCII text is left unescaped.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		cards, err := marshalNoEscape(c.cards[name])
		if err != nil {
			return nil, err
		}
		buf.Write(cards)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ExportJSON serializes the full catalog as pretty-printed JSON with HTML
// escaping disabled so non-ASCII brand and note text survives verbatim.
func (c *Catalog) ExportJSON() (string, error) {
	compact, err := c.MarshalJSON()
	if err != nil {
		return "", Errorf(EINTERNAL, "serializing catalog: %v", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return "", Errorf(EINTERNAL, "indenting catalog JSON: %v", err)
	}
	return buf.String(), nil
}

// csvRow flattens a card with its category for CSV export.
type csvRow struct {
	Category string `csv:"category"`
	Card
}

// ExportCSV serializes the catalog as CSV with one row per card, prefixed by
// its category.
func (c *Catalog) ExportCSV() (string, error) {
	rows := make([]csvRow, 0, c.Total())
	for _, name := range c.categories {
		for _, card := range c.cards[name] {
			rows = append(rows, csvRow{Category: name, Card: card})
		}
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", Errorf(EINTERNAL, "serializing catalog CSV: %v", err)
	}
	return out, nil
}

// ExportXML serializes the catalog as an indented XML document.
func (c *Catalog) ExportXML() (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	if c.RunID != "" {
		root.CreateAttr("runId", c.RunID)
	}
	if c.SourceURL != "" {
		root.CreateAttr("sourceUrl", c.SourceURL)
	}

	for _, name := range c.categories {
		cat := root.CreateElement("category")
		cat.CreateAttr("name", name)
		for _, card := range c.cards[name] {
			el := cat.CreateElement("card")
			el.CreateElement("number").SetText(card.Number)
			el.CreateElement("brand").SetText(card.Brand)
			el.CreateElement("expiry").SetText(card.Expiry)
			el.CreateElement("cvc").SetText(card.CVC)
			el.CreateElement("country").SetText(card.Country)
			if card.Note != "" {
				el.CreateElement("note").SetText(card.Note)
			}
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", Errorf(EINTERNAL, "serializing catalog XML: %v", err)
	}
	return out, nil
}

// marshalNoEscape marshals v without HTML escaping and without the trailing
// newline json.Encoder appends.
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
