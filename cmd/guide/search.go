package main

import (
	"fmt"

	"github.com/terrafirmagreg/fieldguide"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query, fieldguide.Locale(c.Locale), c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fieldguide.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Title, r.URL)
	}

	return nil
}
