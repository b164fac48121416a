package docnav

// Section is a heading-delimited span of a document body.
type Section struct {
	// Slug of the owning document.
	Slug []string `json:"slug"`

	// Heading is the display label with inline markup stripped.
	// Empty for the preamble before the first heading.
	Heading string `json:"heading"`

	// Anchor is unique within the document. Empty for the preamble.
	Anchor string `json:"anchor"`

	Level int `json:"level"`

	// Raw is the original Markdown between this heading line and the next.
	Raw string `json:"raw"`
}

// IsPreamble reports whether s is the content before the first heading.
func (s *Section) IsPreamble() bool {
	return s.Anchor == "" && s.Heading == ""
}

// Heading is one entry of a page outline.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Rendered is a document rendered for display.
type Rendered struct {
	HTML     string    `json:"html"`
	Headings []Heading `json:"headings"`
}

// Segmenter splits a document body into sections.
type Segmenter interface {
	// Segment returns the body's sections in order. The first section is
	// always the preamble. Concatenating the Raw fields reproduces the body
	// without its heading lines.
	Segment(body string) []*Section
}

// Renderer renders a document body to HTML.
// Heading ids in the output equal the anchors a Segmenter assigns to the
// same body.
type Renderer interface {
	Render(doc *Document, body string) (*Rendered, error)
}

// FindSection returns the section with the given anchor, or nil.
func FindSection(sections []*Section, anchor string) *Section {
	for _, s := range sections {
		if s.Anchor == anchor {
			return s
		}
	}
	return nil
}

// TitleHeading returns the label of the first level-1 section, or "".
func TitleHeading(sections []*Section) string {
	for _, s := range sections {
		if s.Level == 1 && s.Heading != "" {
			return s.Heading
		}
	}
	return ""
}
