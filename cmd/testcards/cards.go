package main

import (
	"fmt"

	"github.com/mbazin/testcards"
)

// Run executes the cards command.
func (c *CardsCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Scraper.Run(deps.Ctx, deps.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", testcards.ErrorMessage(err))
		return err
	}

	var cards []testcards.Card
	switch {
	case c.Category != "":
		cards = catalog.ByCategory(c.Category)
	case c.Brand != "":
		cards = catalog.ByBrand(c.Brand)
	case c.Country != "":
		cards = catalog.ByCountry(c.Country)
	default:
		for _, name := range catalog.Categories() {
			cards = append(cards, catalog.ByCategory(name)...)
		}
	}

	if len(cards) == 0 {
		fmt.Fprintln(deps.Stdout, "No cards found.")
		return nil
	}

	for _, card := range cards {
		line := fmt.Sprintf("%s  %s  %s %s %s",
			testcards.FormatNumber(card.Number), card.Brand, card.Expiry, card.CVC, card.Country)
		if card.Note != "" {
			line += "  (" + card.Note + ")"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
