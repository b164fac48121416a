package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docnav"
)

// Ensure LoggingDocumentService implements docnav.DocumentService.
var _ docnav.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   docnav.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next docnav.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// ListDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) ListDocuments(ctx context.Context) (docs []*docnav.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListDocuments(ctx)
}

// FindDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocument(ctx context.Context, slug []string) (doc *docnav.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find document",
			"slug", docnav.JoinSlug(slug),
			"found", doc != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocument(ctx, slug)
}

// ReadSource delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) ReadSource(ctx context.Context, doc *docnav.Document) (src string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read source",
			"slug", doc.Path(),
			"bytes", len(src),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadSource(ctx, doc)
}
