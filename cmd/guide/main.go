package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/terrafirmagreg/fieldguide"
	"github.com/terrafirmagreg/fieldguide/goquery"
	"github.com/terrafirmagreg/fieldguide/guide"
	fghttp "github.com/terrafirmagreg/fieldguide/http"
	"github.com/terrafirmagreg/fieldguide/search"
	fgslog "github.com/terrafirmagreg/fieldguide/slog"
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
	// Search index URL override. Set before calling Run().
	IndexURL string

	// Services for end-to-end testing.
	Fetcher  fieldguide.Fetcher
	Searcher fieldguide.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		IndexURL: os.Getenv("SEARCH_INDEX_URL"),
	}
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
		kong.Name("guide"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'guide --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire core services into dependencies.
	m.Fetcher = fghttp.NewFetcher()

	var indexOpts []fghttp.IndexOption
	if m.IndexURL != "" {
		indexOpts = append(indexOpts, fghttp.WithIndexURL(m.IndexURL))
	}
	m.Searcher = search.NewEngine(fghttp.NewIndexSource(indexOpts...))

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		m.Fetcher = fgslog.NewLoggingFetcher(m.Fetcher, logger)
		m.Searcher = fgslog.NewLoggingSearcher(m.Searcher, logger)
	}
	defer m.Close()

	deps.Guide = &guide.Service{
		Fetcher:   m.Fetcher,
		Extractor: goquery.NewExtractor(),
	}
	deps.Searcher = m.Searcher

	return kongCtx.Run(deps)
}
