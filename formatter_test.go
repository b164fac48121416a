package docnav_test

import (
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
)

func TestFormatResults(t *testing.T) {
	t.Parallel()

	t.Run("formats section result with snippet", func(t *testing.T) {
		t.Parallel()

		results := []*docnav.SearchEntry{
			{Slug: []string{"guide", "storage"}, PageTitle: "Storage", Section: "WAL mode", Anchor: "wal-mode", Text: "Enable the WAL for speed."},
		}

		result := docnav.FormatResults(results, "wal", "/docs")

		expected := "1. Storage › WAL mode\n   /docs/guide/storage#wal-mode\n   Enable the **WAL** for speed."
		assert.Equal(t, expected, result)
	})

	t.Run("omits section label and snippet when absent", func(t *testing.T) {
		t.Parallel()

		results := []*docnav.SearchEntry{
			{Slug: []string{"index"}, PageTitle: "Overview", Text: "Welcome."},
		}

		result := docnav.FormatResults(results, "overview", "/docs")

		assert.Equal(t, "1. Overview\n   /docs", result)
	})

	t.Run("separates results with blank line", func(t *testing.T) {
		t.Parallel()

		results := []*docnav.SearchEntry{
			{Slug: []string{"a"}, PageTitle: "A"},
			{Slug: []string{"b"}, PageTitle: "B"},
		}

		result := docnav.FormatResults(results, "zzz", "")

		assert.Equal(t, "1. A\n   /a\n\n2. B\n   /b", result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docnav.FormatResults(nil, "x", "/docs"))
	})
}

func TestFormatOutline(t *testing.T) {
	t.Parallel()

	sections := []*docnav.Section{
		{},
		{Heading: "Intro", Anchor: "intro", Level: 1},
		{Heading: "Setup", Anchor: "setup", Level: 2},
		{Heading: "Details", Anchor: "details", Level: 3},
	}

	result := docnav.FormatOutline(sections)

	assert.Equal(t, "Intro (#intro)\n  Setup (#setup)\n    Details (#details)", result)
}
