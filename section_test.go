package docnav_test

import (
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
)

func TestTitleHeading(t *testing.T) {
	t.Parallel()

	t.Run("returns first level-1 heading", func(t *testing.T) {
		t.Parallel()

		sections := []*docnav.Section{
			{Raw: "Intro\n"},
			{Heading: "Not this", Anchor: "not-this", Level: 2},
			{Heading: "The Real Title", Anchor: "the-real-title", Level: 1},
			{Heading: "Later", Anchor: "later", Level: 1},
		}

		assert.Equal(t, "The Real Title", docnav.TitleHeading(sections))
	})

	t.Run("returns empty without level-1 heading", func(t *testing.T) {
		t.Parallel()

		sections := []*docnav.Section{
			{Raw: "Intro\n"},
			{Heading: "Usage", Anchor: "usage", Level: 2},
		}

		assert.Empty(t, docnav.TitleHeading(sections))
	})
}

func TestFindSection(t *testing.T) {
	t.Parallel()

	sections := []*docnav.Section{
		{Raw: "Intro\n"},
		{Heading: "Usage", Anchor: "usage", Level: 2},
	}

	assert.Equal(t, "Usage", docnav.FindSection(sections, "usage").Heading)
	assert.Nil(t, docnav.FindSection(sections, "missing"))
}
