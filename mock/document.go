package mock

import (
	"context"

	"github.com/fwojciec/docnav"
)

var _ docnav.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docnav.DocumentService.
type DocumentService struct {
	ListDocumentsFn func(ctx context.Context) ([]*docnav.Document, error)
	FindDocumentFn  func(ctx context.Context, slug []string) (*docnav.Document, error)
	ReadSourceFn    func(ctx context.Context, doc *docnav.Document) (string, error)
}

func (s *DocumentService) ListDocuments(ctx context.Context) ([]*docnav.Document, error) {
	return s.ListDocumentsFn(ctx)
}

func (s *DocumentService) FindDocument(ctx context.Context, slug []string) (*docnav.Document, error) {
	return s.FindDocumentFn(ctx, slug)
}

func (s *DocumentService) ReadSource(ctx context.Context, doc *docnav.Document) (string, error) {
	return s.ReadSourceFn(ctx, doc)
}
