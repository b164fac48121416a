package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.ListDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents found in %s.\n", deps.Root)
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", docnav.Address(deps.Prefix, d.Slug, ""), d.Title)
	}

	return nil
}
