package main

import (
	"fmt"

	"github.com/terrafirmagreg/fieldguide"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	page, err := deps.Guide.Page(deps.Ctx, c.Identifier, fieldguide.Locale(c.Locale))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fieldguide.ErrorMessage(err))
		return err
	}

	if len(page.TOC) == 0 {
		fmt.Fprintln(deps.Stdout, "No table of contents.")
		return nil
	}

	for _, it := range page.TOC {
		fmt.Fprintln(deps.Stdout, fieldguide.TocLine(it))
	}

	return nil
}
