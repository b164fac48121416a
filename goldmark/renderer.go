package goldmark

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docnav"
	"github.com/yuin/goldmark/ast"
)

// AssetsURLPrefix is the URL path under which AssetsDir is served.
const AssetsURLPrefix = "/assets/"

// Ensure Markdown implements docnav.Renderer.
var _ docnav.Renderer = (*Markdown)(nil)

// Render converts body to HTML. Every labeled heading carries an id equal to
// the anchor Segment assigns to it, and Headings lists them in order.
func (m *Markdown) Render(doc *docnav.Document, body string) (*docnav.Rendered, error) {
	src := []byte(body)
	root, headings := m.parse(src)

	for _, h := range headings {
		h.node.SetAttributeString("id", []byte(h.anchor))
	}
	if m.AssetsDir != "" && doc != nil && doc.FilePath != "" {
		m.rewriteImages(root, filepath.Dir(doc.FilePath))
	}

	var buf bytes.Buffer
	if err := m.md.Renderer().Render(&buf, src, root); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	return &docnav.Rendered{
		HTML:     buf.String(),
		Headings: outline(headings),
	}, nil
}

// rewriteImages points relative image destinations that resolve inside
// AssetsDir at AssetsURLPrefix. dir is the directory of the source file.
func (m *Markdown) rewriteImages(root ast.Node, dir string) {
	assets, err := filepath.Abs(m.AssetsDir)
	if err != nil {
		return
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(img.Destination)
		if dest == "" || strings.HasPrefix(dest, "/") || strings.Contains(dest, "://") || strings.HasPrefix(dest, "data:") {
			return ast.WalkContinue, nil
		}

		abs, err := filepath.Abs(filepath.Join(dir, filepath.FromSlash(dest)))
		if err != nil {
			return ast.WalkContinue, nil
		}
		rel, err := filepath.Rel(assets, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return ast.WalkContinue, nil
		}

		img.Destination = []byte(AssetsURLPrefix + filepath.ToSlash(rel))
		return ast.WalkContinue, nil
	})
}
