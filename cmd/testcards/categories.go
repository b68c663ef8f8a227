package main

import (
	"fmt"

	"github.com/mbazin/testcards"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Scraper.Run(deps.Ctx, deps.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testcards.ErrorMessage(err))
		return err
	}

	for _, name := range catalog.Categories() {
		fmt.Fprintf(deps.Stdout, "%s  (%d cards)\n", name, len(catalog.ByCategory(name)))
	}

	return nil
}
