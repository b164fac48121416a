package fs

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/docnav"
)

// Ensure Index implements docnav.SearchService at compile time.
var _ docnav.SearchService = (*Index)(nil)

// Index is the in-memory search index over a document service. Like
// Repository it is built on first use and never invalidated.
type Index struct {
	documents docnav.DocumentService
	segmenter docnav.Segmenter

	// Policy ranks results. Defaults to docnav.DefaultSearchPolicy.
	Policy docnav.SearchPolicy

	entries atomic.Pointer[[]*docnav.SearchEntry]
}

// NewIndex returns an Index over documents, split into sections by segmenter.
func NewIndex(documents docnav.DocumentService, segmenter docnav.Segmenter) *Index {
	return &Index{
		documents: documents,
		segmenter: segmenter,
		Policy:    docnav.DefaultSearchPolicy,
	}
}

// Entries returns the index: for every document, one entry per non-empty
// section followed by one page-level entry.
func (idx *Index) Entries(ctx context.Context) ([]*docnav.SearchEntry, error) {
	if p := idx.entries.Load(); p != nil {
		return *p, nil
	}

	entries, err := idx.build(ctx)
	if err != nil {
		return nil, err
	}

	idx.entries.CompareAndSwap(nil, &entries)
	return *idx.entries.Load(), nil
}

// Search ranks the index against query.
func (idx *Index) Search(ctx context.Context, query string) ([]*docnav.SearchEntry, error) {
	entries, err := idx.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Policy.Search(entries, query), nil
}

func (idx *Index) build(ctx context.Context) ([]*docnav.SearchEntry, error) {
	docs, err := idx.documents.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var entries []*docnav.SearchEntry
	for _, doc := range docs {
		raw, err := idx.documents.ReadSource(ctx, doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DocumentEntries(doc, raw, idx.segmenter)...)
	}
	return entries, nil
}

// DocumentEntries returns the search entries of one document.
func DocumentEntries(doc *docnav.Document, raw string, segmenter docnav.Segmenter) []*docnav.SearchEntry {
	_, body := docnav.SplitHeader(raw)

	var entries []*docnav.SearchEntry
	for _, s := range segmenter.Segment(body) {
		text := docnav.Truncate(docnav.PlainText(s.Raw), docnav.SectionExcerptLen)
		if s.Heading == "" && text == "" {
			continue
		}
		entries = append(entries, &docnav.SearchEntry{
			Slug:      doc.Slug,
			PageTitle: doc.Title,
			Section:   s.Heading,
			Anchor:    s.Anchor,
			Text:      text,
		})
	}

	return append(entries, &docnav.SearchEntry{
		Slug:      doc.Slug,
		PageTitle: doc.Title,
		Text:      docnav.Truncate(docnav.PlainText(body), docnav.PageExcerptLen),
	})
}
