package main

import (
	"context"
	"io"

	"github.com/terrafirmagreg/fieldguide"
	"github.com/terrafirmagreg/fieldguide/guide"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Guide    *guide.Service
	Searcher fieldguide.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and search operations to stderr"`

	Page    PageCmd    `cmd:"" help:"Show a documentation page or section"`
	Search  SearchCmd  `cmd:"" help:"Search the documentation"`
	Toc     TocCmd     `cmd:"" help:"Show a page's table of contents"`
	Title   TitleCmd   `cmd:"" help:"Show a page's localized title"`
	Locales LocalesCmd `cmd:"" help:"List supported locales"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Identifier string `arg:"" help:"Page path or URL, with optional #fragment"`
	Locale     string `short:"l" default:"en_us" help:"Locale code"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Locale string `short:"l" default:"en_us" help:"Locale code"`
	Limit  int    `short:"n" default:"10" help:"Maximum number of results"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Identifier string `arg:"" help:"Page path or URL"`
	Locale     string `short:"l" default:"en_us" help:"Locale code"`
}

// TitleCmd is the "title" subcommand.
type TitleCmd struct {
	Identifier string `arg:"" help:"Page path or URL"`
	Locale     string `short:"l" default:"en_us" help:"Locale code"`
}

// LocalesCmd is the "locales" subcommand.
type LocalesCmd struct{}
