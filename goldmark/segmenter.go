package goldmark

import (
	"github.com/fwojciec/docnav"
)

// Ensure Markdown implements docnav.Segmenter.
var _ docnav.Segmenter = (*Markdown)(nil)

// Segment splits body at its heading lines. The first section holds the text
// before the first heading and is present even when empty. Each heading's
// section runs from the end of its line to the start of the next heading
// line, so the concatenated Raw fields equal body without its heading lines.
// Section.Slug is left for the caller to fill in.
func (m *Markdown) Segment(body string) []*docnav.Section {
	src := []byte(body)
	_, headings := m.parse(src)

	sections := make([]*docnav.Section, 0, len(headings)+1)

	end := len(src)
	if len(headings) > 0 {
		end = headings[0].start
	}
	sections = append(sections, &docnav.Section{Raw: body[:end]})

	for i, h := range headings {
		end := len(src)
		if i+1 < len(headings) {
			end = headings[i+1].start
		}
		sections = append(sections, &docnav.Section{
			Heading: h.label,
			Anchor:  h.anchor,
			Level:   h.node.Level,
			Raw:     body[h.end:end],
		})
	}

	return sections
}

// Outline returns the labeled headings of body with the anchors Render
// assigns to them.
func (m *Markdown) Outline(body string) []docnav.Heading {
	_, headings := m.parse([]byte(body))
	return outline(headings)
}

func outline(headings []heading) []docnav.Heading {
	out := make([]docnav.Heading, len(headings))
	for i, h := range headings {
		out[i] = docnav.Heading{ID: h.anchor, Text: h.label, Level: h.node.Level}
	}
	return out
}
