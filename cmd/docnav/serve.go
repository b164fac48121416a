package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
	dnhttp "github.com/fwojciec/docnav/http"
	"github.com/fwojciec/docnav/lru"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	renderer, err := lru.NewCachedRenderer(deps.Renderer, c.CacheSize)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	srv := dnhttp.NewServer(deps.Documents, deps.Search, deps.Navigation, renderer, deps.Logger)
	srv.Prefix = deps.Prefix
	srv.BaseURL = c.BaseURL
	if c.RateLimit > 0 {
		limiter, err := dnhttp.NewClientLimiter(c.RateLimit, c.RateBurst, c.RateClients)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
			return err
		}
		srv.Limiter = limiter
	}

	fmt.Fprintf(deps.Stdout, "Serving %s on %s\n", deps.Root, c.Addr)
	return srv.ListenAndServe(deps.Ctx, c.Addr)
}
