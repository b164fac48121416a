package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docnav"
)

// Ensure LoggingRenderer implements docnav.Renderer.
var _ docnav.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   docnav.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next docnav.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(doc *docnav.Document, body string) (out *docnav.Rendered, err error) {
	defer func(begin time.Time) {
		headings := 0
		if out != nil {
			headings = len(out.Headings)
		}
		r.logger.Debug("render",
			"slug", doc.Path(),
			"headings", headings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(doc, body)
}
