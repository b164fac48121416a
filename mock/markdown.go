package mock

import (
	"github.com/fwojciec/docnav"
)

var _ docnav.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docnav.Renderer.
type Renderer struct {
	RenderFn func(doc *docnav.Document, body string) (*docnav.Rendered, error)
}

func (r *Renderer) Render(doc *docnav.Document, body string) (*docnav.Rendered, error) {
	return r.RenderFn(doc, body)
}

var _ docnav.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of docnav.Segmenter.
type Segmenter struct {
	SegmentFn func(body string) []*docnav.Section
}

func (s *Segmenter) Segment(body string) []*docnav.Section {
	return s.SegmentFn(body)
}
