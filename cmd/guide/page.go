package main

import (
	"fmt"

	"github.com/terrafirmagreg/fieldguide"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, err := deps.Guide.Page(deps.Ctx, c.Identifier, fieldguide.Locale(c.Locale))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fieldguide.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, page.Title)
	fmt.Fprintln(deps.Stdout, page.URL)
	if page.Image != "" {
		fmt.Fprintln(deps.Stdout, page.Image)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, page.Description)

	return nil
}
