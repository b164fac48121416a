package docnav

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fallbackSlug is used when a heading has no characters that survive
// BaseSlug, so that every heading still gets a usable anchor.
const fallbackSlug = "section"

// BaseSlug derives an anchor identifier from heading text. The text is
// lowercased, diacritics are removed, runs of whitespace become a single
// hyphen, every other character outside [a-z0-9-_] is dropped, and leading
// and trailing hyphens are trimmed.
func BaseSlug(text string) string {
	var sb strings.Builder
	inSpace := false

	for _, r := range norm.NFD.String(strings.ToLower(text)) {
		switch {
		case unicode.IsSpace(r):
			inSpace = true
			continue
		case unicode.Is(unicode.Mn, r):
			continue
		case !isSlugRune(r):
			continue
		}
		if inSpace && sb.Len() > 0 {
			sb.WriteByte('-')
		}
		inSpace = false
		sb.WriteRune(r)
	}

	return strings.Trim(sb.String(), "-")
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

// Slugger assigns anchor identifiers that are unique within one document.
// A Slugger holds the identifiers issued so far; use a fresh Slugger (or call
// Reset) for every document. The same heading sequence always yields the same
// identifier sequence.
type Slugger struct {
	issued map[string]bool
	counts map[string]int
}

// NewSlugger returns a Slugger with no issued identifiers.
func NewSlugger() *Slugger {
	return &Slugger{
		issued: make(map[string]bool),
		counts: make(map[string]int),
	}
}

// Slug returns the identifier for the next heading. A base identifier that
// was already issued gets the first unused suffix -1, -2, ...
func (s *Slugger) Slug(text string) string {
	base := BaseSlug(text)
	if base == "" {
		base = fallbackSlug
	}

	slug := base
	for s.issued[slug] {
		s.counts[base]++
		slug = base + "-" + strconv.Itoa(s.counts[base])
	}
	s.issued[slug] = true
	return slug
}

// Reset forgets all issued identifiers.
func (s *Slugger) Reset() {
	clear(s.issued)
	clear(s.counts)
}
