package mock

import (
	"context"

	"github.com/fwojciec/docnav"
)

var _ docnav.NavigationService = (*NavigationService)(nil)

// NavigationService is a mock implementation of docnav.NavigationService.
type NavigationService struct {
	SidebarFn   func(ctx context.Context) ([]*docnav.SidebarSection, error)
	NeighborsFn func(ctx context.Context, slug []string) (docnav.NavPair, error)
}

func (s *NavigationService) Sidebar(ctx context.Context) ([]*docnav.SidebarSection, error) {
	return s.SidebarFn(ctx)
}

func (s *NavigationService) Neighbors(ctx context.Context, slug []string) (docnav.NavPair, error) {
	return s.NeighborsFn(ctx, slug)
}
