// Package goldmark implements the Markdown parts of docnav on top of
// github.com/yuin/goldmark: splitting a body into sections and rendering it
// to HTML. Both walk the same parsed heading list and assign anchors with one
// docnav.Slugger, so a heading's section anchor always equals its HTML id.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/docnav"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Markdown parses document bodies. It is safe for concurrent use.
type Markdown struct {
	md goldmark.Markdown

	// AssetsDir is the directory served under /assets/. Relative image
	// destinations that resolve inside it are rewritten by Render.
	// Empty disables rewriting.
	AssetsDir string
}

// NewMarkdown returns a Markdown with GitHub Flavored Markdown enabled and
// setext headings disabled, so that every heading occupies exactly one line.
// Raw HTML in a body is passed through to the rendered output.
func NewMarkdown() *Markdown {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewThematicBreakParser(), 200),
			util.Prioritized(parser.NewListParser(), 300),
			util.Prioritized(parser.NewListItemParser(), 400),
			util.Prioritized(parser.NewCodeBlockParser(), 500),
			util.Prioritized(parser.NewATXHeadingParser(), 600),
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewBlockquoteParser(), 800),
			util.Prioritized(parser.NewHTMLBlockParser(), 900),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)

	return &Markdown{
		md: goldmark.New(
			goldmark.WithParser(p),
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// heading is one labeled heading of a parsed body.
type heading struct {
	node   *ast.Heading
	label  string
	anchor string

	// start and end delimit the heading's source line, newline excluded.
	start, end int
}

// parse parses body and returns its AST with the labeled headings in
// document order. Headings whose label is empty after stripping inline
// markup are not part of the list.
func (m *Markdown) parse(src []byte) (ast.Node, []heading) {
	doc := m.md.Parser().Parse(text.NewReader(src))

	slugger := docnav.NewSlugger()
	var headings []heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		seg := h.Lines().At(0)
		label := docnav.StripInlineMarkup(string(seg.Value(src)))
		if label == "" {
			return ast.WalkSkipChildren, nil
		}

		start := bytes.LastIndexByte(src[:seg.Start], '\n') + 1
		end := len(src)
		if i := bytes.IndexByte(src[seg.Stop:], '\n'); i >= 0 {
			end = seg.Stop + i
		}

		headings = append(headings, heading{
			node:   h,
			label:  label,
			anchor: slugger.Slug(label),
			start:  start,
			end:    end,
		})
		return ast.WalkSkipChildren, nil
	})

	return doc, headings
}
