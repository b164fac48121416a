package docnav

import (
	"context"
	"slices"
	"strings"
	"unicode"
)

// SearchEntry is one searchable unit: a section of a document, or the
// document as a whole when Section and Anchor are empty.
type SearchEntry struct {
	Slug      []string `json:"slug"`
	PageTitle string   `json:"pageTitle"`
	Section   string   `json:"section,omitempty"`
	Anchor    string   `json:"anchor,omitempty"`

	// Text is a bounded plain-text excerpt.
	Text string `json:"text"`
}

// Key identifies the target of an entry: slug plus anchor.
func (e *SearchEntry) Key() string {
	return JoinSlug(e.Slug) + "#" + e.Anchor
}

// IsPage reports whether e is a page-level entry.
func (e *SearchEntry) IsPage() bool {
	return e.Section == "" && e.Anchor == ""
}

// SearchService answers free-text queries over the document index.
type SearchService interface {
	// Entries returns the full index, built on first use.
	Entries(ctx context.Context) ([]*SearchEntry, error)

	// Search returns ranked entries matching query.
	Search(ctx context.Context, query string) ([]*SearchEntry, error)
}

// SearchPolicy holds the ranking constants. Only the relative order of the
// scores matters.
type SearchPolicy struct {
	Limit         int
	SectionScore  int
	TitleScore    int
	TextScore     int
	SnippetRadius int
}

// DefaultSearchPolicy is the policy used by Search and BuildSnippet.
var DefaultSearchPolicy = SearchPolicy{
	Limit:         30,
	SectionScore:  3,
	TitleScore:    2,
	TextScore:     1,
	SnippetRadius: 70,
}

// Search ranks entries against query using DefaultSearchPolicy.
func Search(entries []*SearchEntry, query string) []*SearchEntry {
	return DefaultSearchPolicy.Search(entries, query)
}

// Search returns the entries whose page title, section label or excerpt
// contains query, case-insensitively. Only the first matching entry per Key
// is kept. Results are ordered by score (section label, then page title,
// then excerpt), ties keeping index order, and capped at p.Limit.
func (p SearchPolicy) Search(entries []*SearchEntry, query string) []*SearchEntry {
	q := lower(strings.TrimSpace(query))
	if q == "" {
		return []*SearchEntry{}
	}

	type scored struct {
		entry *SearchEntry
		score int
	}

	seen := make(map[string]bool)
	var matches []scored
	for _, e := range entries {
		key := e.Key()
		if seen[key] {
			continue
		}

		sectionHit := e.Section != "" && strings.Contains(lower(e.Section), q)
		titleHit := strings.Contains(lower(e.PageTitle), q)
		textHit := strings.Contains(lower(e.Text), q)
		if !sectionHit && !titleHit && !textHit {
			continue
		}
		seen[key] = true

		score := p.TextScore
		if sectionHit {
			score = p.SectionScore
		} else if titleHit {
			score = p.TitleScore
		}
		matches = append(matches, scored{entry: e, score: score})
	}

	slices.SortStableFunc(matches, func(a, b scored) int {
		return b.score - a.score
	})

	if p.Limit > 0 && len(matches) > p.Limit {
		matches = matches[:p.Limit]
	}

	results := make([]*SearchEntry, len(matches))
	for i, m := range matches {
		results[i] = m.entry
	}
	return results
}

// Snippet is an excerpt around a match, split for highlighting.
type Snippet struct {
	Before string `json:"before"`
	Match  string `json:"match"`
	After  string `json:"after"`
}

// String joins the parts without highlighting.
func (s *Snippet) String() string {
	return s.Before + s.Match + s.After
}

// BuildSnippet returns the context around the first case-insensitive
// occurrence of query in text using DefaultSearchPolicy.
func BuildSnippet(text, query string) *Snippet {
	return DefaultSearchPolicy.BuildSnippet(text, query)
}

// BuildSnippet returns up to p.SnippetRadius characters of context on each
// side of the first case-insensitive occurrence of query in text. An
// ellipsis marks each side where context was cut. Match keeps the casing of
// text. Returns nil when text does not contain query.
func (p SearchPolicy) BuildSnippet(text, query string) *Snippet {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return nil
	}

	src := []rune(text)
	folded := []rune(lower(text))
	needle := []rune(lower(query))

	idx := indexRunes(folded, needle)
	if idx < 0 {
		return nil
	}

	start := max(0, idx-p.SnippetRadius)
	end := min(len(src), idx+len(needle)+p.SnippetRadius)

	s := &Snippet{
		Before: string(src[start:idx]),
		Match:  string(src[idx : idx+len(needle)]),
		After:  string(src[idx+len(needle) : end]),
	}
	if start > 0 {
		s.Before = "…" + s.Before
	}
	if end < len(src) {
		s.After += "…"
	}
	return s
}

// lower folds case rune by rune so that the result has as many runes as s.
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
