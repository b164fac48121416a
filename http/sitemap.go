package http

import (
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docnav"
)

// SitemapNamespace is the XML namespace of sitemap documents.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// BuildSitemap returns a sitemap <urlset> listing docs under baseURL.
func BuildSitemap(baseURL, prefix string, docs []*docnav.Document) *etree.Document {
	baseURL = strings.TrimSuffix(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	for _, d := range docs {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(baseURL + docnav.Address(prefix, d.Slug, ""))
	}

	doc.Indent(2)
	return doc
}

// SitemapOrder lists every document once: the reading order of sidebar
// first, then the documents outside it in their repository order.
func SitemapOrder(sidebar []*docnav.SidebarSection, docs []*docnav.Document) []*docnav.Document {
	order := docnav.ReadingOrder(sidebar, docs)

	seen := make(map[string]bool, len(docs))
	out := make([]*docnav.Document, 0, len(docs))
	for _, d := range order {
		if !seen[d.Path()] {
			seen[d.Path()] = true
			out = append(out, d)
		}
	}
	for _, d := range docs {
		if !seen[d.Path()] {
			seen[d.Path()] = true
			out = append(out, d)
		}
	}
	return out
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.ListDocuments(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	sidebar, err := s.navigation.Sidebar(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}

	baseURL := s.BaseURL
	if baseURL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		baseURL = scheme + "://" + r.Host
	}

	w.Header().Set("Content-Type", "application/xml")
	if _, err := BuildSitemap(baseURL, s.Prefix, SitemapOrder(sidebar, docs)).WriteTo(w); err != nil {
		s.log.Error("write sitemap", "err", err)
	}
}
