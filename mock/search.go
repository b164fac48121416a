package mock

import (
	"context"

	"github.com/fwojciec/docnav"
)

var _ docnav.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docnav.SearchService.
type SearchService struct {
	EntriesFn func(ctx context.Context) ([]*docnav.SearchEntry, error)
	SearchFn  func(ctx context.Context, query string) ([]*docnav.SearchEntry, error)
}

func (s *SearchService) Entries(ctx context.Context) ([]*docnav.SearchEntry, error) {
	return s.EntriesFn(ctx)
}

func (s *SearchService) Search(ctx context.Context, query string) ([]*docnav.SearchEntry, error) {
	return s.SearchFn(ctx, query)
}
