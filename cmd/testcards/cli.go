package main

import (
	"context"
	"io"
	"time"

	"github.com/mbazin/testcards/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
	URL     string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string        `help:"Documentation page URL to scrape." default:""`
	Proxy   string        `help:"HTTP proxy address for the fetch."`
	Browser bool          `help:"Render the page in headless Chrome instead of plain HTTP."`
	Timeout time.Duration `help:"Fetch timeout." default:"10s"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr."`

	Scrape     ScrapeCmd     `cmd:"" default:"withargs" help:"Extract cards and export the catalog"`
	Search     SearchCmd     `cmd:"" help:"Search extracted cards by number, brand, country, or category"`
	Stats      StatsCmd      `cmd:"" help:"Show extraction run statistics"`
	Categories CategoriesCmd `cmd:"" help:"List categories with card counts"`
	Cards      CardsCmd      `cmd:"" help:"List cards, optionally filtered by category, brand, or country"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Format string `help:"Export format." enum:"json,csv,xml" default:"json"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" help:"Search term"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// CardsCmd is the "cards" subcommand.
type CardsCmd struct {
	Category string `help:"Exact category name."`
	Brand    string `help:"Case-insensitive brand substring."`
	Country  string `help:"Two-letter country code (exact match)."`
}

// defaultURL returns the configured URL or the Adyen documentation page.
func (c *CLI) defaultURL() string {
	if c.URL != "" {
		return c.URL
	}
	return scrape.DefaultURL
}
