package main

import (
	"fmt"

	"github.com/terrafirmagreg/fieldguide"
)

// Run executes the locales command.
func (c *LocalesCmd) Run(deps *Dependencies) error {
	for _, l := range fieldguide.Locales {
		marker := " "
		if l == fieldguide.DefaultLocale {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, l, l.Label())
	}
	return nil
}
