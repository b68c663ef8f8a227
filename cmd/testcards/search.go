package main

import (
	"fmt"

	"github.com/mbazin/testcards"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Scraper.Run(deps.Ctx, deps.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testcards.ErrorMessage(err))
		return err
	}

	results := catalog.Search(c.Term)
	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No cards match %q.\n", c.Term)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Cards matching %q (%d total):\n\n", c.Term, len(results))
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "  %s  %s  %s %s %s  [%s]\n",
			testcards.FormatNumber(r.Number), r.Brand, r.Expiry, r.CVC, r.Country, r.Category)
	}

	return nil
}
