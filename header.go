package docnav

import (
	"path/filepath"
	"strings"
)

// headerDelim opens and closes a header block.
const headerDelim = "---"

// OverviewTitle is the fixed title of the root document.
const OverviewTitle = "Overview"

// Header holds the key/value pairs of a document's leading header block.
type Header map[string]string

// Get returns the value for key, or "" if the key is absent.
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[key]
}

// SplitHeader separates an optional leading header block from the document
// body. The block must open with a line of exactly "---" and close with the
// next such line; an unterminated block is not a header and the whole input
// is returned as the body.
func SplitHeader(raw string) (Header, string) {
	first, rest, ok := strings.Cut(raw, "\n")
	if !ok || strings.TrimSuffix(first, "\r") != headerDelim {
		return nil, raw
	}

	var lines []string
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimSuffix(line, "\r") == headerDelim {
			return parseHeader(lines), next
		}
		if !more {
			return nil, raw
		}
		lines = append(lines, line)
		rest = next
	}
}

func parseHeader(lines []string) Header {
	h := make(Header)
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		h[key] = strings.TrimSpace(value)
	}
	return h
}

// ResolveTitle picks a document's display title: the root document is always
// titled "Overview"; otherwise the header's title, then heading (the body's
// first level-1 heading, see TitleHeading), then the file name without
// extension.
func ResolveTitle(slug []string, header Header, heading, filename string) string {
	if JoinSlug(slug) == RootSlug {
		return OverviewTitle
	}
	if title := header.Get("title"); title != "" {
		return title
	}
	if heading != "" {
		return heading
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SEO holds page metadata for search engines and link previews.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResolveSEO derives page metadata from a document's source. Explicit header
// fields win; the description otherwise falls back to a plain-text summary
// of the document.
func ResolveSEO(doc *Document, raw string) SEO {
	header, _ := SplitHeader(raw)

	title := header.Get("title")
	if title == "" {
		title = doc.Title
		if doc.IsRoot() {
			title = OverviewTitle
		}
	}

	description := header.Get("description")
	if description == "" {
		description = Summarize(PlainText(raw), SummaryLen)
	}

	return SEO{Title: title, Description: description}
}
