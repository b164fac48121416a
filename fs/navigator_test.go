package fs_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/fs"
	"github.com/fwojciec/docnav/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Navigation
// The sidebar follows _sidebar.json and falls back to slug order

func sidebarPaths(sections []*docnav.SidebarSection) map[string][]string {
	out := map[string][]string{}
	for _, s := range sections {
		paths := []string{}
		for _, d := range s.Items {
			paths = append(paths, d.Path())
		}
		out[s.Label] = paths
	}
	return out
}

func TestNavigator_Sidebar(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"index.md":       "# Home",
		"intro.md":       "# Intro",
		"guide/setup.md": "# Setup",
	}

	t.Run("uses configuration", func(t *testing.T) {
		t.Parallel()

		// Given a configuration that references a removed page
		root := t.TempDir()
		writeTree(t, root, docs)
		writeTree(t, root, map[string]string{
			"_sidebar.json": `{"sections":[{"label":"Start","items":["intro","gone","guide/setup"]}]}`,
		})
		nav := fs.NewNavigator(fs.NewRepository(root, goldmark.NewMarkdown()), root)

		// When I build the sidebar
		sidebar, err := nav.Sidebar(context.Background())

		// Then the removed page is skipped without error
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"Start": {"intro", "guide/setup"}}, sidebarPaths(sidebar))
	})

	t.Run("falls back without configuration", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, docs)
		nav := fs.NewNavigator(fs.NewRepository(root, goldmark.NewMarkdown()), root)

		sidebar, err := nav.Sidebar(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"Docs": {"guide/setup", "intro"}}, sidebarPaths(sidebar))
	})

	t.Run("falls back on malformed configuration and reports it", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, docs)
		writeTree(t, root, map[string]string{"_sidebar.json": `{"sections": "nope"}`})
		nav := fs.NewNavigator(fs.NewRepository(root, goldmark.NewMarkdown()), root)
		nav.Label = "Handbook"
		var reported error
		nav.OnConfigError = func(err error) { reported = err }

		sidebar, err := nav.Sidebar(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"Handbook": {"guide/setup", "intro"}}, sidebarPaths(sidebar))
		assert.Equal(t, docnav.EINVALID, docnav.ErrorCode(reported))
	})
}

func TestNavigator_Neighbors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":          "# A",
		"b.md":          "# B",
		"c.md":          "# C",
		"_sidebar.json": `{"sections":[{"label":"All","items":["c","a","b"]}]}`,
	})
	nav := fs.NewNavigator(fs.NewRepository(root, goldmark.NewMarkdown()), root)
	ctx := context.Background()

	t.Run("follows configured order", func(t *testing.T) {
		t.Parallel()

		pair, err := nav.Neighbors(ctx, []string{"a"})

		require.NoError(t, err)
		assert.Equal(t, "c", pair.Prev.Path())
		assert.Equal(t, "b", pair.Next.Path())
	})

	t.Run("first has no previous", func(t *testing.T) {
		t.Parallel()

		pair, err := nav.Neighbors(ctx, []string{"c"})

		require.NoError(t, err)
		assert.Nil(t, pair.Prev)
		assert.Equal(t, "a", pair.Next.Path())
	})

	t.Run("last has no next", func(t *testing.T) {
		t.Parallel()

		pair, err := nav.Neighbors(ctx, []string{"b"})

		require.NoError(t, err)
		assert.Equal(t, "a", pair.Prev.Path())
		assert.Nil(t, pair.Next)
	})

	t.Run("unknown slug yields empty pair", func(t *testing.T) {
		t.Parallel()

		pair, err := nav.Neighbors(ctx, []string{"zzz"})

		require.NoError(t, err)
		assert.Equal(t, docnav.NavPair{}, pair)
	})
}
