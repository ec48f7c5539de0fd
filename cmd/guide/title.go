package main

import (
	"fmt"

	"github.com/terrafirmagreg/fieldguide"
)

// Run executes the title command.
func (c *TitleCmd) Run(deps *Dependencies) error {
	result := deps.Guide.PageTitle(deps.Ctx, c.Identifier, fieldguide.Locale(c.Locale))
	fmt.Fprintf(deps.Stdout, "%s  %s\n", result.Title, result.URL)
	return nil
}
