package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docnav"
)

// Ensure LoggingNavigationService implements docnav.NavigationService.
var _ docnav.NavigationService = (*LoggingNavigationService)(nil)

// LoggingNavigationService wraps a NavigationService with logging.
type LoggingNavigationService struct {
	next   docnav.NavigationService
	logger *slog.Logger
}

// NewLoggingNavigationService creates a new LoggingNavigationService.
func NewLoggingNavigationService(next docnav.NavigationService, logger *slog.Logger) *LoggingNavigationService {
	return &LoggingNavigationService{next: next, logger: logger}
}

// Sidebar delegates to the wrapped service and logs the operation.
func (s *LoggingNavigationService) Sidebar(ctx context.Context) (sections []*docnav.SidebarSection, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("sidebar",
			"sections", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Sidebar(ctx)
}

// Neighbors delegates to the wrapped service and logs the operation.
func (s *LoggingNavigationService) Neighbors(ctx context.Context, slug []string) (pair docnav.NavPair, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("neighbors",
			"slug", docnav.JoinSlug(slug),
			"prev", pair.Prev != nil,
			"next", pair.Next != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Neighbors(ctx, slug)
}

// ConfigErrorLogger returns a callback that logs an unusable sidebar
// configuration as a warning.
func ConfigErrorLogger(logger *slog.Logger) func(error) {
	return func(err error) {
		logger.Warn("sidebar config ignored",
			"file", docnav.SidebarConfigFile,
			"err", err,
		)
	}
}
