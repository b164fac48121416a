package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docnav"
)

// Ensure LoggingSearchService implements docnav.SearchService.
var _ docnav.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   docnav.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docnav.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Entries delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Entries(ctx context.Context) (entries []*docnav.SearchEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search index",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Entries(ctx)
}

// Search delegates to the wrapped service and logs the query.
func (s *LoggingSearchService) Search(ctx context.Context, query string) (results []*docnav.SearchEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
