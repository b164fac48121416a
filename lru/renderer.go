// Package lru caches rendered pages with github.com/hashicorp/golang-lru.
package lru

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docnav"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of rendered pages kept by default.
const DefaultSize = 256

// Ensure CachedRenderer implements docnav.Renderer.
var _ docnav.Renderer = (*CachedRenderer)(nil)

// CachedRenderer wraps a Renderer with a bounded cache keyed by document
// slug and body hash, so an edited body is rendered again. Failed renders
// are not cached.
type CachedRenderer struct {
	next  docnav.Renderer
	cache *lru.Cache[string, *docnav.Rendered]
}

// NewCachedRenderer returns a CachedRenderer holding up to size pages.
func NewCachedRenderer(next docnav.Renderer, size int) (*CachedRenderer, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, *docnav.Rendered](size)
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}
	return &CachedRenderer{next: next, cache: cache}, nil
}

// Render returns the cached page for doc and body, rendering it on a miss.
func (r *CachedRenderer) Render(doc *docnav.Document, body string) (*docnav.Rendered, error) {
	key := cacheKey(doc, body)
	if out, ok := r.cache.Get(key); ok {
		return out, nil
	}

	out, err := r.next.Render(doc, body)
	if err != nil {
		return nil, err
	}
	r.cache.Add(key, out)
	return out, nil
}

// Len returns the number of cached pages.
func (r *CachedRenderer) Len() int {
	return r.cache.Len()
}

func cacheKey(doc *docnav.Document, body string) string {
	return doc.Path() + "@" + strconv.FormatUint(xxhash.Sum64String(body), 16)
}
