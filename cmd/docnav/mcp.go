package main

import (
	"github.com/fwojciec/docnav/mcp"
)

// Run executes the mcp command, serving tools over stdin and stdout until
// the client disconnects or the context is canceled.
func (c *MCPCmd) Run(deps *Dependencies) error {
	s := mcp.NewServer(mcp.Services{
		Documents:  deps.Documents,
		Search:     deps.Search,
		Navigation: deps.Navigation,
		Segmenter:  deps.Segmenter,
		Prefix:     deps.Prefix,
	})
	return mcp.Serve(deps.Ctx, s, deps.Stdin, deps.Stdout)
}
