package docnav

import (
	"context"
	"encoding/json"
)

// SidebarConfigFile is the name of the optional ordering configuration in
// the content root.
const SidebarConfigFile = "_sidebar.json"

// DefaultSidebarLabel labels the implicit section used without configuration.
const DefaultSidebarLabel = "Docs"

// SidebarConfig is the explicit grouping and order of documents.
type SidebarConfig struct {
	Sections []SidebarConfigSection `json:"sections"`
}

// SidebarConfigSection lists document slugs ("guide/setup") under a label.
type SidebarConfigSection struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// ParseSidebarConfig decodes a sidebar configuration. The input must be a
// JSON object with a "sections" array.
func ParseSidebarConfig(data []byte) (*SidebarConfig, error) {
	var cfg SidebarConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, Errorf(EINVALID, "malformed sidebar config: %s", err)
	}
	if cfg.Sections == nil {
		return nil, Errorf(EINVALID, "sidebar config has no sections array")
	}
	return &cfg, nil
}

// SidebarSection is a labeled group of documents.
type SidebarSection struct {
	Label string      `json:"label"`
	Items []*Document `json:"items"`
}

// NavPair holds the documents before and after one document in the
// effective order. Either may be nil.
type NavPair struct {
	Prev *Document `json:"prev"`
	Next *Document `json:"next"`
}

// NavigationService builds the sidebar and previous/next links.
type NavigationService interface {
	// Sidebar returns the sidebar sections in display order.
	Sidebar(ctx context.Context) ([]*SidebarSection, error)

	// Neighbors returns the documents around slug. Both are nil when slug is
	// not part of the order.
	Neighbors(ctx context.Context, slug []string) (NavPair, error)
}

// BuildSidebar groups docs according to cfg. Slugs in cfg that match no
// document are skipped. Without a configuration every document except the
// root goes into one section named label, in the order given.
func BuildSidebar(docs []*Document, cfg *SidebarConfig, label string) []*SidebarSection {
	if cfg == nil {
		items := make([]*Document, 0, len(docs))
		for _, d := range docs {
			if !d.IsRoot() {
				items = append(items, d)
			}
		}
		return []*SidebarSection{{Label: label, Items: items}}
	}

	lookup := make(map[string]*Document, len(docs))
	for _, d := range docs {
		lookup[d.Path()] = d
	}

	sections := make([]*SidebarSection, 0, len(cfg.Sections))
	for _, s := range cfg.Sections {
		items := []*Document{}
		for _, slug := range s.Items {
			if d, ok := lookup[slug]; ok {
				items = append(items, d)
			}
		}
		sections = append(sections, &SidebarSection{Label: s.Label, Items: items})
	}
	return sections
}

// ReadingOrder flattens sidebar into one sequence. When the sidebar holds no
// documents the order is docs itself.
func ReadingOrder(sidebar []*SidebarSection, docs []*Document) []*Document {
	var ordered []*Document
	for _, s := range sidebar {
		ordered = append(ordered, s.Items...)
	}
	if len(ordered) == 0 {
		return docs
	}
	return ordered
}

// Neighbors locates slug in the reading order and returns its immediate
// neighbors.
func Neighbors(sidebar []*SidebarSection, docs []*Document, slug []string) NavPair {
	ordered := ReadingOrder(sidebar, docs)

	key := JoinSlug(slug)
	for i, d := range ordered {
		if d.Path() != key {
			continue
		}
		var pair NavPair
		if i > 0 {
			pair.Prev = ordered[i-1]
		}
		if i+1 < len(ordered) {
			pair.Next = ordered[i+1]
		}
		return pair
	}
	return NavPair{}
}
