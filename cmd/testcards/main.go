package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mbazin/testcards"
	"github.com/mbazin/testcards/goquery"
	"github.com/mbazin/testcards/resty"
	"github.com/mbazin/testcards/rod"
	"github.com/mbazin/testcards/scrape"
	tcslog "github.com/mbazin/testcards/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used by the pipeline. Wired by Run, kept for Close.
	Fetcher testcards.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("testcards"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Select the fetcher: plain HTTP by default, headless Chrome on demand.
	if cli.Browser {
		fetcher, err := rod.NewFetcher(rod.WithProxy(cli.Proxy))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Fetcher = fetcher
	} else {
		opts := []resty.Option{resty.WithTimeout(cli.Timeout)}
		if cli.Proxy != "" {
			opts = append(opts, resty.WithProxy(cli.Proxy))
		}
		m.Fetcher = resty.NewFetcher(opts...)
	}
	defer m.Close()

	deps.URL = cli.defaultURL()
	deps.Scraper = &scrape.Scraper{
		Fetcher: tcslog.NewLoggingFetcher(m.Fetcher, logger),
		Extractors: []testcards.Extractor{
			tcslog.NewLoggingExtractor(goquery.NewTableExtractor(), "table", logger),
			tcslog.NewLoggingExtractor(scrape.NewTextExtractor(), "text", logger),
		},
	}

	return kongCtx.Run(deps)
}
