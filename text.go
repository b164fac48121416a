package docnav

import (
	"regexp"
	"strings"
)

// Excerpt length limits, in characters.
const (
	SectionExcerptLen = 500
	PageExcerptLen    = 300
	SummaryLen        = 220
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	mdTokenRe    = regexp.MustCompile("[#>*_`~+\\-]")
	spaceRe      = regexp.MustCompile(`\s+`)

	headingLinkRe   = regexp.MustCompile(`\[([^\]]*?)\]\([^)]*\)`)
	headingCodeRe   = regexp.MustCompile("`([^`]*)`")
	headingBoldRe   = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	headingItalicRe = regexp.MustCompile(`\*([^*]*)\*`)
)

// PlainText reduces Markdown to matchable text: the header block, code and
// markup are removed and whitespace is collapsed. The result is lossy and
// only meant for searching and excerpts.
func PlainText(raw string) string {
	_, text := SplitHeader(raw)
	text = fencedCodeRe.ReplaceAllString(text, " ")
	text = inlineCodeRe.ReplaceAllString(text, " ")
	text = linkRe.ReplaceAllString(text, "$1")
	text = tagRe.ReplaceAllString(text, " ")
	text = mdTokenRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripInlineMarkup removes link, code and emphasis markup from heading text,
// keeping the visible text. The index and the renderer both label headings
// with it, so anchors are derived from identical strings.
func StripInlineMarkup(heading string) string {
	s := headingLinkRe.ReplaceAllString(heading, "$1")
	s = headingCodeRe.ReplaceAllString(s, "$1")
	s = headingBoldRe.ReplaceAllString(s, "$1")
	s = headingItalicRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Summarize returns the first n characters of text, trimmed, with an
// ellipsis appended when text was cut.
func Summarize(text string, n int) string {
	if text == "" {
		return ""
	}
	summary := strings.TrimSpace(Truncate(text, n))
	if len([]rune(summary)) < len([]rune(text)) {
		return summary + "…"
	}
	return summary
}
