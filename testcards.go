// Package testcards extracts structured test payment card records from the
// Adyen test-card documentation page. It fetches the page, parses the card
// tables, validates every number, and exposes query and export operations
// over the resulting in-memory catalog. When table parsing finds nothing it
// falls back to text-pattern scanning, and finally to a curated static
// dataset, so an extraction run always produces a usable catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, resty/, rod/).
package testcards
