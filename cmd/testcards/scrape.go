package main

import (
	"fmt"

	"github.com/mbazin/testcards"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Scraper.Run(deps.Ctx, deps.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testcards.ErrorMessage(err))
		return err
	}

	var out string
	switch c.Format {
	case "csv":
		out, err = catalog.ExportCSV()
	case "xml":
		out, err = catalog.ExportXML()
	default:
		out, err = catalog.ExportJSON()
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testcards.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
