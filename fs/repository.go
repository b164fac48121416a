// Package fs provides the content repository, search index and navigation
// backed by a directory of Markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docnav"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files read in parallel during discovery.
const DefaultConcurrency = 8

// Ensure Repository implements docnav.DocumentService at compile time.
var _ docnav.DocumentService = (*Repository)(nil)

// Repository discovers the Markdown documents under a root directory.
// The tree is walked once, on first use, and the result is kept for the
// lifetime of the Repository. Concurrent first calls may each walk the tree;
// the first result stored wins and all callers see equivalent data.
type Repository struct {
	root      string
	segmenter docnav.Segmenter

	// Concurrency bounds parallel file reads. Zero means DefaultConcurrency.
	Concurrency int

	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	docs    []*docnav.Document
	byPath  map[string]*docnav.Document
	sources map[string]string
}

// NewRepository returns a Repository rooted at root. Titles taken from a
// document's headings use the level-1 headings segmenter finds.
func NewRepository(root string, segmenter docnav.Segmenter) *Repository {
	return &Repository{root: root, segmenter: segmenter}
}

// Root returns the content root directory.
func (r *Repository) Root() string {
	return r.root
}

// ListDocuments returns every document ordered by slug.
func (r *Repository) ListDocuments(ctx context.Context) ([]*docnav.Document, error) {
	s, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.docs), nil
}

// FindDocument returns the document with the given slug, or nil if there is
// no such document.
func (r *Repository) FindDocument(ctx context.Context, slug []string) (*docnav.Document, error) {
	s, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.byPath[docnav.JoinSlug(slug)], nil
}

// ReadSource returns the source text read during discovery.
func (r *Repository) ReadSource(ctx context.Context, doc *docnav.Document) (string, error) {
	s, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	src, ok := s.sources[doc.Path()]
	if !ok {
		return "", docnav.Errorf(docnav.ENOTFOUND, "document %q not found", doc.Path())
	}
	return src, nil
}

func (r *Repository) load(ctx context.Context) (*snapshot, error) {
	if s := r.snapshot.Load(); s != nil {
		return s, nil
	}

	s, err := r.build(ctx)
	if err != nil {
		return nil, err
	}

	r.snapshot.CompareAndSwap(nil, s)
	return r.snapshot.Load(), nil
}

func (r *Repository) build(ctx context.Context) (*snapshot, error) {
	files, err := r.walk()
	if err != nil {
		return nil, err
	}

	docs := make([]*docnav.Document, len(files))
	sources := make([]string, len(files))

	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			raw := string(data)
			slug, err := SlugFromPath(r.root, path)
			if err != nil {
				return err
			}
			header, body := docnav.SplitHeader(raw)
			docs[i] = &docnav.Document{
				Slug:        slug,
				Title:       r.title(slug, header, body, path),
				FilePath:    path,
				ContentHash: ContentHash(data),
			}
			sources[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &snapshot{
		byPath:  make(map[string]*docnav.Document, len(docs)),
		sources: make(map[string]string, len(docs)),
	}
	for i, d := range docs {
		s.byPath[d.Path()] = d
		s.sources[d.Path()] = sources[i]
	}
	s.docs = slices.Clone(docs)
	slices.SortFunc(s.docs, func(a, b *docnav.Document) int {
		return slices.Compare(a.Slug, b.Slug)
	})
	return s, nil
}

func (r *Repository) title(slug []string, header docnav.Header, body, path string) string {
	if docnav.JoinSlug(slug) == docnav.RootSlug || header.Get("title") != "" {
		return docnav.ResolveTitle(slug, header, "", path)
	}
	return docnav.ResolveTitle(slug, header, docnav.TitleHeading(r.segmenter.Segment(body)), path)
}

// walk returns the paths of all candidate Markdown files. Hidden entries
// and files starting with an underscore are skipped.
func (r *Repository) walk() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == r.root {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(name, "_") || !IsMarkdown(name) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", r.root, err)
	}
	return files, nil
}

// IsMarkdown reports whether name has a .md extension, in any case.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

// SlugFromPath derives a document slug from a file path relative to root.
// A directory's index.md takes the directory's slug; the root index.md is
// the root document.
//
//	guide/setup.md  → [guide setup]
//	guide/index.md  → [guide]
//	index.md        → [index]
func SlugFromPath(root, path string) ([]string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, fmt.Errorf("relative path of %s: %w", path, err)
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	last := parts[len(parts)-1]
	parts[len(parts)-1] = strings.TrimSuffix(last, filepath.Ext(last))

	if parts[len(parts)-1] == docnav.RootSlug && len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	return parts, nil
}

// ContentHash returns the hex xxhash of data.
func ContentHash(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
