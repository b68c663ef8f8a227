package slog

import (
	"log/slog"
	"time"

	"github.com/mbazin/testcards"
)

// Ensure LoggingExtractor implements testcards.Extractor.
var _ testcards.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. The tier label
// distinguishes the table and text tiers in log output.
type LoggingExtractor struct {
	next   testcards.Extractor
	tier   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next testcards.Extractor, tier string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, tier: tier, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(content string) (catalog *testcards.Catalog, err error) {
	defer func(begin time.Time) {
		cards, categories := 0, 0
		if catalog != nil {
			cards = catalog.Total()
			categories = len(catalog.Categories())
		}
		e.logger.Info("extract",
			"tier", e.tier,
			"cards", cards,
			"categories", categories,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(content)
}
