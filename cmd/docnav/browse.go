package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/bubbletea"
)

// Run executes the browse command. The chosen address is printed after the
// palette exits.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	entries, err := deps.Search.Entries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	var chosen string
	model := bubbletea.NewModel(entries, deps.Prefix, func(addr string) {
		chosen = addr
	})

	p := tea.NewProgram(model,
		tea.WithContext(deps.Ctx),
		tea.WithInput(deps.Stdin),
		tea.WithOutput(deps.Stderr),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	if chosen != "" {
		fmt.Fprintln(deps.Stdout, chosen)
	}
	return nil
}
