package docnav_test

import (
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
)

func TestAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		slug   []string
		anchor string
		want   string
	}{
		{"nested document", "/docs", []string{"guide", "setup"}, "", "/docs/guide/setup"},
		{"with anchor", "/docs", []string{"guide", "setup"}, "install", "/docs/guide/setup#install"},
		{"root document", "/docs", []string{"index"}, "", "/docs"},
		{"root document with anchor", "/docs", []string{"index"}, "intro", "/docs#intro"},
		{"trailing slash prefix", "/docs/", []string{"faq"}, "", "/docs/faq"},
		{"empty prefix root", "", []string{"index"}, "", "/"},
		{"empty prefix", "", []string{"faq"}, "", "/faq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docnav.Address(tt.prefix, tt.slug, tt.anchor))
		})
	}
}

func TestSplitSlug(t *testing.T) {
	t.Parallel()

	t.Run("splits path", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"guide", "setup"}, docnav.SplitSlug("/guide//setup/"))
	})

	t.Run("empty path is root", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{docnav.RootSlug}, docnav.SplitSlug(""))
	})
}

func TestDocument_IsRoot(t *testing.T) {
	t.Parallel()

	assert.True(t, (&docnav.Document{Slug: []string{"index"}}).IsRoot())
	assert.False(t, (&docnav.Document{Slug: []string{"guide", "index"}}).IsRoot())
}
