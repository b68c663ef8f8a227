package main

import (
	"fmt"

	"github.com/mbazin/testcards"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Scraper.Run(deps.Ctx, deps.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testcards.ErrorMessage(err))
		return err
	}

	stats := catalog.Stats()
	fmt.Fprintf(deps.Stdout, "Run:         %s\n", stats.RunID)
	fmt.Fprintf(deps.Stdout, "Source:      %s\n", stats.SourceURL)
	fmt.Fprintf(deps.Stdout, "Content:     %s\n", stats.ContentHash)
	fmt.Fprintf(deps.Stdout, "Fetched:     %s\n", stats.FetchedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(deps.Stdout, "Cards:       %d\n", stats.TotalCards)
	fmt.Fprintf(deps.Stdout, "Categories:  %d\n", stats.CategoryCount)
	for _, name := range stats.Categories {
		fmt.Fprintf(deps.Stdout, "  %-30s %d\n", name, stats.CardsByCategory[name])
	}

	return nil
}
