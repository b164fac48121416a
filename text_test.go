package docnav_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	t.Run("strips header block", func(t *testing.T) {
		t.Parallel()

		raw := "---\ntitle: Setup\n---\nInstall the tool."

		assert.Equal(t, "Install the tool.", docnav.PlainText(raw))
	})

	t.Run("removes fenced and inline code", func(t *testing.T) {
		t.Parallel()

		raw := "Run `make` first.\n\n```sh\nmake build\n```\n\nThen deploy."

		assert.Equal(t, "Run first. Then deploy.", docnav.PlainText(raw))
	})

	t.Run("keeps link text", func(t *testing.T) {
		t.Parallel()

		raw := "See [the guide](/docs/guide) for details."

		assert.Equal(t, "See the guide for details.", docnav.PlainText(raw))
	})

	t.Run("strips tags and markdown tokens", func(t *testing.T) {
		t.Parallel()

		raw := "## Heading\n\n> **Bold** and <em>tagged</em>\n\n- item"

		assert.Equal(t, "Heading Bold and tagged item", docnav.PlainText(raw))
	})

	t.Run("returns empty string for markup only", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docnav.PlainText("---\n\n***\n"))
	})
}

func TestStripInlineMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{"link", "Using [chi](https://go-chi.io)", "Using chi"},
		{"code", "The `Search` method", "The Search method"},
		{"bold", "**Important** notes", "Important notes"},
		{"italic", "An *emphasized* word", "An emphasized word"},
		{"plain", "  Plain  ", "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docnav.StripInlineMarkup(tt.heading))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "héll", docnav.Truncate("héllo", 4))
	})

	t.Run("returns short strings unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", docnav.Truncate("abc", 10))
	})

	t.Run("returns empty string for non-positive limit", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docnav.Truncate("abc", -1))
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("appends ellipsis when cut", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 300)

		summary := docnav.Summarize(text, docnav.SummaryLen)

		assert.Equal(t, strings.Repeat("a", 220)+"…", summary)
	})

	t.Run("keeps short text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", docnav.Summarize("short", docnav.SummaryLen))
	})
}
