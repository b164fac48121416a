package docnav_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		entries := []*docnav.SearchEntry{
			{Slug: []string{"storage"}, PageTitle: "Storage", Section: "Journal", Anchor: "journal", Text: "Uses a WAL for durability."},
		}

		results := docnav.Search(entries, "wal")

		require.Len(t, results, 1)
		assert.Equal(t, "journal", results[0].Anchor)
	})

	t.Run("ranks section over title over text", func(t *testing.T) {
		t.Parallel()

		textOnly := &docnav.SearchEntry{Slug: []string{"a"}, PageTitle: "A", Section: "One", Anchor: "one", Text: "mentions cache here"}
		titleOnly := &docnav.SearchEntry{Slug: []string{"cache"}, PageTitle: "Cache", Section: "Two", Anchor: "two", Text: "nothing"}
		sectionHit := &docnav.SearchEntry{Slug: []string{"b"}, PageTitle: "B", Section: "Cache sizing", Anchor: "cache-sizing", Text: "nothing"}

		results := docnav.Search([]*docnav.SearchEntry{textOnly, titleOnly, sectionHit}, "CACHE")

		assert.Equal(t, []*docnav.SearchEntry{sectionHit, titleOnly, textOnly}, results)
	})

	t.Run("keeps index order among equal scores", func(t *testing.T) {
		t.Parallel()

		first := &docnav.SearchEntry{Slug: []string{"a"}, PageTitle: "A", Anchor: "x", Section: "X", Text: "go"}
		second := &docnav.SearchEntry{Slug: []string{"b"}, PageTitle: "B", Anchor: "y", Section: "Y", Text: "go"}

		results := docnav.Search([]*docnav.SearchEntry{first, second}, "go")

		assert.Equal(t, []*docnav.SearchEntry{first, second}, results)
	})

	t.Run("returns each key once", func(t *testing.T) {
		t.Parallel()

		entries := []*docnav.SearchEntry{
			{Slug: []string{"guide"}, PageTitle: "Guide", Section: "Install", Anchor: "install", Text: "install steps"},
			{Slug: []string{"guide"}, PageTitle: "Guide", Section: "Install", Anchor: "install", Text: "duplicate"},
			{Slug: []string{"guide"}, PageTitle: "Guide", Text: "install overview"},
		}

		results := docnav.Search(entries, "install")

		require.Len(t, results, 2)
		keys := map[string]bool{}
		for _, r := range results {
			assert.False(t, keys[r.Key()], "duplicate key %s", r.Key())
			keys[r.Key()] = true
		}
		assert.Equal(t, "install steps", results[0].Text)
	})

	t.Run("non-matching entry does not claim its key", func(t *testing.T) {
		t.Parallel()

		entries := []*docnav.SearchEntry{
			{Slug: []string{"guide"}, PageTitle: "Guide", Section: "Setup", Anchor: "setup", Text: "unrelated"},
			{Slug: []string{"guide"}, PageTitle: "Guide", Section: "Setup", Anchor: "setup", Text: "kubernetes"},
		}

		results := docnav.Search(entries, "kubernetes")

		require.Len(t, results, 1)
		assert.Equal(t, "kubernetes", results[0].Text)
	})

	t.Run("returns empty result for blank query", func(t *testing.T) {
		t.Parallel()

		entries := []*docnav.SearchEntry{{Slug: []string{"a"}, PageTitle: "A", Text: "   "}}

		assert.Empty(t, docnav.Search(entries, ""))
		assert.Empty(t, docnav.Search(entries, "   "))
		assert.NotNil(t, docnav.Search(entries, ""))
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		entries := []*docnav.SearchEntry{{Slug: []string{"a"}, PageTitle: "A", Text: "alpha"}}

		assert.Empty(t, docnav.Search(entries, "omega"))
	})

	t.Run("caps results at limit", func(t *testing.T) {
		t.Parallel()

		var entries []*docnav.SearchEntry
		for i := range 50 {
			entries = append(entries, &docnav.SearchEntry{
				Slug:      []string{fmt.Sprintf("doc%d", i)},
				PageTitle: "Doc",
				Text:      "shared term",
			})
		}

		assert.Len(t, docnav.Search(entries, "term"), docnav.DefaultSearchPolicy.Limit)
	})

	t.Run("custom policy reorders by weights", func(t *testing.T) {
		t.Parallel()

		textOnly := &docnav.SearchEntry{Slug: []string{"a"}, PageTitle: "A", Text: "cache"}
		titleOnly := &docnav.SearchEntry{Slug: []string{"cache"}, PageTitle: "Cache", Text: "x"}
		policy := docnav.SearchPolicy{Limit: 10, SectionScore: 1, TitleScore: 1, TextScore: 5}

		results := policy.Search([]*docnav.SearchEntry{titleOnly, textOnly}, "cache")

		assert.Equal(t, []*docnav.SearchEntry{textOnly, titleOnly}, results)
	})
}

func TestBuildSnippet(t *testing.T) {
	t.Parallel()

	t.Run("preserves source casing", func(t *testing.T) {
		t.Parallel()

		s := docnav.BuildSnippet("Enable the WAL mode.", "wal")

		require.NotNil(t, s)
		assert.Equal(t, &docnav.Snippet{Before: "Enable the ", Match: "WAL", After: " mode."}, s)
	})

	t.Run("adds ellipsis only on truncated sides", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 100) + "needle" + strings.Repeat("b", 10)

		s := docnav.BuildSnippet(text, "needle")

		require.NotNil(t, s)
		assert.Equal(t, "…"+strings.Repeat("a", 70), s.Before)
		assert.Equal(t, "needle", s.Match)
		assert.Equal(t, strings.Repeat("b", 10), s.After)
	})

	t.Run("bounds context length", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 500) + "Query" + strings.Repeat("y", 500)

		s := docnav.BuildSnippet(text, "query")

		require.NotNil(t, s)
		before := strings.TrimPrefix(s.Before, "…")
		after := strings.TrimSuffix(s.After, "…")
		assert.LessOrEqual(t, utf8.RuneCountInString(before+s.Match+after), 70+len("query")+70)
		assert.True(t, strings.HasPrefix(s.Before, "…"))
		assert.True(t, strings.HasSuffix(s.After, "…"))
	})

	t.Run("counts multibyte characters", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", 80) + "match"

		s := docnav.BuildSnippet(text, "MATCH")

		require.NotNil(t, s)
		assert.Equal(t, "…"+strings.Repeat("é", 70), s.Before)
		assert.Empty(t, s.After)
	})

	t.Run("returns nil when query is absent", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docnav.BuildSnippet("some text", "other"))
		assert.Nil(t, docnav.BuildSnippet("some text", ""))
	})

	t.Run("string joins parts", func(t *testing.T) {
		t.Parallel()

		s := &docnav.Snippet{Before: "a ", Match: "b", After: " c"}

		assert.Equal(t, "a b c", s.String())
	})
}
