package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.Slug)
	if err != nil {
		return err
	}

	raw, err := deps.Documents.ReadSource(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}
	_, body := docnav.SplitHeader(raw)

	outline := docnav.FormatOutline(deps.Segmenter.Segment(body))
	if outline == "" {
		fmt.Fprintf(deps.Stdout, "%s has no headings.\n", doc.Title)
		return nil
	}

	fmt.Fprintln(deps.Stdout, doc.Title)
	fmt.Fprintln(deps.Stdout, outline)
	return nil
}

// findDocument looks up the document for a slash-separated slug and reports
// a missing document on stderr.
func findDocument(deps *Dependencies, slug string) (*docnav.Document, error) {
	doc, err := deps.Documents.FindDocument(deps.Ctx, docnav.SplitSlug(slug))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return nil, err
	}
	if doc == nil {
		fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docnav list' to see available documents.\n", slug)
		return nil, docnav.Errorf(docnav.ENOTFOUND, "document %q not found", slug)
	}
	return doc, nil
}
