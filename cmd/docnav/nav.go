package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the nav command.
func (c *NavCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.Slug)
	if err != nil {
		return err
	}

	pair, err := deps.Navigation.Neighbors(deps.Ctx, doc.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "prev: %s\n", c.link(deps.Prefix, pair.Prev))
	fmt.Fprintf(deps.Stdout, "next: %s\n", c.link(deps.Prefix, pair.Next))
	return nil
}

func (c *NavCmd) link(prefix string, doc *docnav.Document) string {
	if doc == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", doc.Title, docnav.Address(prefix, doc.Slug, ""))
}
