package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docnav"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.ListDocuments(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// documentResponse is a document with its page metadata.
type documentResponse struct {
	Document *docnav.Document `json:"document"`
	Address  string           `json:"address"`
	SEO      docnav.SEO       `json:"seo"`
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, raw, err := s.loadDocument(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentResponse{
		Document: doc,
		Address:  docnav.Address(s.Prefix, doc.Slug, ""),
		SEO:      docnav.ResolveSEO(doc, raw),
	})
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	sections, err := s.navigation.Sidebar(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": sections})
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	pair, err := s.navigation.Neighbors(r.Context(), slugParam(r))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

// searchResult is a search entry with its address and highlighted excerpt.
type searchResult struct {
	*docnav.SearchEntry
	Address string          `json:"address"`
	Snippet *docnav.Snippet `json:"snippet,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	entries, err := s.search.Search(r.Context(), query)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	results := make([]searchResult, len(entries))
	for i, e := range entries {
		results[i] = searchResult{
			SearchEntry: e,
			Address:     docnav.Address(s.Prefix, e.Slug, e.Anchor),
			Snippet:     docnav.BuildSnippet(e.Text, query),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": query, "results": results})
}

// pageResponse is everything needed to display one document.
type pageResponse struct {
	Document *docnav.Document `json:"document"`
	Address  string           `json:"address"`
	SEO      docnav.SEO       `json:"seo"`
	HTML     string           `json:"html"`
	Headings []docnav.Heading `json:"headings"`
	Prev     *docnav.Document `json:"prev"`
	Next     *docnav.Document `json:"next"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, raw, err := s.loadDocument(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	pair, err := s.navigation.Neighbors(r.Context(), doc.Slug)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if doc.ContentHash != "" {
		etag := pageETag(doc, pair)
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	_, body := docnav.SplitHeader(raw)
	rendered, err := s.renderer.Render(doc, body)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Document: doc,
		Address:  docnav.Address(s.Prefix, doc.Slug, ""),
		SEO:      docnav.ResolveSEO(doc, raw),
		HTML:     rendered.HTML,
		Headings: rendered.Headings,
		Prev:     pair.Prev,
		Next:     pair.Next,
	})
}

// pageETag identifies a page response: the document's content plus its
// previous and next links, which change with the sidebar configuration.
func pageETag(doc *docnav.Document, pair docnav.NavPair) string {
	var prev, next string
	if pair.Prev != nil {
		prev = pair.Prev.Path()
	}
	if pair.Next != nil {
		next = pair.Next.Path()
	}
	nav := xxhash.Sum64String(prev + "\x00" + next)
	return `"` + doc.ContentHash + "-" + strconv.FormatUint(nav, 16) + `"`
}

// loadDocument resolves the wildcard slug of r and reads the document's
// source. A missing document is an ENOTFOUND error.
func (s *Server) loadDocument(r *http.Request) (*docnav.Document, string, error) {
	slug := slugParam(r)
	doc, err := s.documents.FindDocument(r.Context(), slug)
	if err != nil {
		return nil, "", err
	} else if doc == nil {
		return nil, "", docnav.Errorf(docnav.ENOTFOUND, "Document not found: %s", docnav.JoinSlug(slug))
	}

	raw, err := s.documents.ReadSource(r.Context(), doc)
	if err != nil {
		return nil, "", err
	}
	return doc, raw, nil
}

// slugParam returns the slug in the wildcard part of the route. An empty
// wildcard addresses the root document.
func slugParam(r *http.Request) []string {
	return docnav.SplitSlug(chi.URLParam(r, "*"))
}
