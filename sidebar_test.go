package docnav_test

import (
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sidebarDocs() []*docnav.Document {
	return []*docnav.Document{
		{Slug: []string{"api"}, Title: "API"},
		{Slug: []string{"guide", "setup"}, Title: "Setup"},
		{Slug: []string{"index"}, Title: "Overview"},
		{Slug: []string{"intro"}, Title: "Intro"},
	}
}

func TestParseSidebarConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses sections", func(t *testing.T) {
		t.Parallel()

		cfg, err := docnav.ParseSidebarConfig([]byte(`{"sections":[{"label":"Start","items":["intro","guide/setup"]}]}`))

		require.NoError(t, err)
		assert.Equal(t, &docnav.SidebarConfig{Sections: []docnav.SidebarConfigSection{
			{Label: "Start", Items: []string{"intro", "guide/setup"}},
		}}, cfg)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := docnav.ParseSidebarConfig([]byte(`{"sections":`))

		assert.Equal(t, docnav.EINVALID, docnav.ErrorCode(err))
	})

	t.Run("rejects missing sections array", func(t *testing.T) {
		t.Parallel()

		_, err := docnav.ParseSidebarConfig([]byte(`{"label":"x"}`))

		assert.Equal(t, docnav.EINVALID, docnav.ErrorCode(err))
	})

	t.Run("rejects non-string items", func(t *testing.T) {
		t.Parallel()

		_, err := docnav.ParseSidebarConfig([]byte(`{"sections":[{"label":"x","items":[1]}]}`))

		assert.Equal(t, docnav.EINVALID, docnav.ErrorCode(err))
	})

	t.Run("accepts empty sections array", func(t *testing.T) {
		t.Parallel()

		cfg, err := docnav.ParseSidebarConfig([]byte(`{"sections":[]}`))

		require.NoError(t, err)
		assert.Empty(t, cfg.Sections)
	})
}

func TestBuildSidebar(t *testing.T) {
	t.Parallel()

	t.Run("falls back to one section without root", func(t *testing.T) {
		t.Parallel()

		sidebar := docnav.BuildSidebar(sidebarDocs(), nil, docnav.DefaultSidebarLabel)

		require.Len(t, sidebar, 1)
		assert.Equal(t, "Docs", sidebar[0].Label)
		assert.Equal(t, []string{"api", "guide/setup", "intro"}, paths(sidebar[0].Items))
	})

	t.Run("follows configured order", func(t *testing.T) {
		t.Parallel()

		cfg := &docnav.SidebarConfig{Sections: []docnav.SidebarConfigSection{
			{Label: "Start", Items: []string{"intro", "guide/setup"}},
			{Label: "Reference", Items: []string{"api"}},
		}}

		sidebar := docnav.BuildSidebar(sidebarDocs(), cfg, docnav.DefaultSidebarLabel)

		require.Len(t, sidebar, 2)
		assert.Equal(t, "Start", sidebar[0].Label)
		assert.Equal(t, []string{"intro", "guide/setup"}, paths(sidebar[0].Items))
		assert.Equal(t, []string{"api"}, paths(sidebar[1].Items))
	})

	t.Run("drops unknown slugs and keeps siblings", func(t *testing.T) {
		t.Parallel()

		cfg := &docnav.SidebarConfig{Sections: []docnav.SidebarConfigSection{
			{Label: "Start", Items: []string{"intro", "removed/page", "api"}},
		}}

		sidebar := docnav.BuildSidebar(sidebarDocs(), cfg, docnav.DefaultSidebarLabel)

		require.Len(t, sidebar, 1)
		assert.Equal(t, []string{"intro", "api"}, paths(sidebar[0].Items))
	})

	t.Run("may include root when configured", func(t *testing.T) {
		t.Parallel()

		cfg := &docnav.SidebarConfig{Sections: []docnav.SidebarConfigSection{
			{Label: "Start", Items: []string{"index", "intro"}},
		}}

		sidebar := docnav.BuildSidebar(sidebarDocs(), cfg, docnav.DefaultSidebarLabel)

		assert.Equal(t, []string{"index", "intro"}, paths(sidebar[0].Items))
	})
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	docs := sidebarDocs()
	sidebar := docnav.BuildSidebar(docs, nil, docnav.DefaultSidebarLabel)

	t.Run("first document has no previous", func(t *testing.T) {
		t.Parallel()

		pair := docnav.Neighbors(sidebar, docs, []string{"api"})

		assert.Nil(t, pair.Prev)
		require.NotNil(t, pair.Next)
		assert.Equal(t, "guide/setup", pair.Next.Path())
	})

	t.Run("last document has no next", func(t *testing.T) {
		t.Parallel()

		pair := docnav.Neighbors(sidebar, docs, []string{"intro"})

		require.NotNil(t, pair.Prev)
		assert.Equal(t, "guide/setup", pair.Prev.Path())
		assert.Nil(t, pair.Next)
	})

	t.Run("middle document has both", func(t *testing.T) {
		t.Parallel()

		pair := docnav.Neighbors(sidebar, docs, []string{"guide", "setup"})

		assert.Equal(t, "api", pair.Prev.Path())
		assert.Equal(t, "intro", pair.Next.Path())
	})

	t.Run("unknown slug yields empty pair", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, docnav.NavPair{}, docnav.Neighbors(sidebar, docs, []string{"missing"}))
	})

	t.Run("empty sidebar falls back to document order", func(t *testing.T) {
		t.Parallel()

		empty := []*docnav.SidebarSection{{Label: "Empty", Items: []*docnav.Document{}}}

		pair := docnav.Neighbors(empty, docs, []string{"index"})

		assert.Equal(t, "guide/setup", pair.Prev.Path())
		assert.Equal(t, "intro", pair.Next.Path())
	})
}

func paths(docs []*docnav.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Path()
	}
	return out
}

func TestReadingOrder(t *testing.T) {
	t.Parallel()

	docs := sidebarDocs()

	t.Run("flattens sidebar sections", func(t *testing.T) {
		t.Parallel()

		sidebar := []*docnav.SidebarSection{
			{Label: "Start", Items: []*docnav.Document{docs[3]}},
			{Label: "Guides", Items: []*docnav.Document{docs[1], docs[0]}},
		}

		assert.Equal(t, []*docnav.Document{docs[3], docs[1], docs[0]}, docnav.ReadingOrder(sidebar, docs))
	})

	t.Run("falls back to docs when sidebar is empty", func(t *testing.T) {
		t.Parallel()

		sidebar := []*docnav.SidebarSection{{Label: "Empty", Items: []*docnav.Document{}}}

		assert.Equal(t, docs, docnav.ReadingOrder(sidebar, docs))
	})
}
