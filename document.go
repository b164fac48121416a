package docnav

import (
	"context"
	"strings"
)

// RootSlug is the slug of the document at the top of the content tree
// (index.md in the root directory).
const RootSlug = "index"

// Document represents one Markdown source file in the content tree.
type Document struct {
	// Slug is the ordered list of path segments identifying the document.
	// A directory's index file takes the directory's slug.
	Slug []string `json:"slug"`

	Title       string `json:"title"`
	FilePath    string `json:"-"`
	ContentHash string `json:"contentHash,omitempty"`
}

// Path returns the slug segments joined with "/".
func (d *Document) Path() string {
	return JoinSlug(d.Slug)
}

// IsRoot reports whether d is the root index document.
func (d *Document) IsRoot() bool {
	return d.Path() == RootSlug
}

// DocumentService represents a service for discovering documents.
type DocumentService interface {
	// ListDocuments returns all documents ordered by slug.
	ListDocuments(ctx context.Context) ([]*Document, error)

	// FindDocument returns the document with the given slug.
	// Returns nil without an error if no such document exists.
	FindDocument(ctx context.Context, slug []string) (*Document, error)

	// ReadSource returns the full source text of the document,
	// including any header block.
	ReadSource(ctx context.Context, doc *Document) (string, error)
}

// JoinSlug joins slug segments with "/".
func JoinSlug(slug []string) string {
	return strings.Join(slug, "/")
}

// SplitSlug splits a "/"-separated path into slug segments, dropping empty
// segments. An empty path yields the root slug.
func SplitSlug(path string) []string {
	var slug []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			slug = append(slug, part)
		}
	}
	if len(slug) == 0 {
		return []string{RootSlug}
	}
	return slug
}

// Address returns the navigable address of a document, optionally pointing
// at one of its sections. The root document maps to the bare prefix.
//
//	Address("/docs", []string{"guide", "setup"}, "install") == "/docs/guide/setup#install"
func Address(prefix string, slug []string, anchor string) string {
	prefix = strings.TrimSuffix(prefix, "/")

	var addr string
	if path := JoinSlug(slug); path == RootSlug || path == "" {
		addr = prefix
		if addr == "" {
			addr = "/"
		}
	} else {
		addr = prefix + "/" + path
	}

	if anchor != "" {
		addr += "#" + anchor
	}
	return addr
}
