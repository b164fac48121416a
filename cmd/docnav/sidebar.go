package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the sidebar command.
func (c *SidebarCmd) Run(deps *Dependencies) error {
	sections, err := deps.Navigation.Sidebar(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, s.Label)
		for _, d := range s.Items {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", d.Title, docnav.Address(deps.Prefix, d.Slug, ""))
		}
	}

	return nil
}
