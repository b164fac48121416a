package docnav

import (
	"strconv"
	"strings"
)

// FormatResults formats search results as a numbered plain-text list for
// terminals and tool output. Each result shows its page and section label,
// its address under prefix and, when query occurs in the excerpt, a snippet
// with the match wrapped in ** **.
func FormatResults(results []*SearchEntry, query, prefix string) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		var b strings.Builder
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(r.PageTitle)
		if !r.IsPage() {
			b.WriteString(" › ")
			b.WriteString(r.Section)
		}
		b.WriteString("\n   ")
		b.WriteString(Address(prefix, r.Slug, r.Anchor))
		if s := BuildSnippet(r.Text, query); s != nil {
			b.WriteString("\n   ")
			b.WriteString(s.Before + "**" + s.Match + "**" + s.After)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatOutline formats a document's sections as an indented outline, one
// heading per line with its anchor. The preamble is omitted.
func FormatOutline(sections []*Section) string {
	var lines []string
	for _, s := range sections {
		if s.IsPreamble() {
			continue
		}
		indent := strings.Repeat("  ", max(0, s.Level-1))
		lines = append(lines, indent+s.Heading+" (#"+s.Anchor+")")
	}
	return strings.Join(lines, "\n")
}
