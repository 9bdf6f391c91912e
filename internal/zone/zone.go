// Package zone tracks spans of markdown content that the linker must
// not rewrite: frontmatter, code, existing links, and other syntax.
//
// A zone is a half-open interval [Start, End) over the content string.
// Zones are never merged or nested; overlap checks are pairwise against
// a position range. A zone list is computed once per rewrite pass and
// then kept valid under splicing via ShiftAfter/Insert.
package zone

import "sort"

// Type identifies what kind of syntax a zone protects.
type Type string

const (
	Frontmatter     Type = "frontmatter"
	CodeBlock       Type = "code_block"
	InlineCode      Type = "inline_code"
	Wikilink        Type = "wikilink"
	MarkdownLink    Type = "markdown_link"
	URL             Type = "url"
	Hashtag         Type = "hashtag"
	HTMLTag         Type = "html_tag"
	ObsidianComment Type = "obsidian_comment"
	Math            Type = "math"
)

// Zone is a protected span [Start, End) of the content string.
type Zone struct {
	Start int
	End   int
	Type  Type
}

// List is a set of zones ordered ascending by Start.
type List []Zone

// Overlaps reports whether any zone intersects [start, end).
// Any intersection counts, not just full containment.
func (l List) Overlaps(start, end int) bool {
	for _, z := range l {
		if start < z.End && end > z.Start {
			return true
		}
	}
	return false
}

// ShiftAfter shifts every zone offset that lies at or after pos by delta.
// Zones entirely before pos are untouched. Call after splicing a
// replacement of different length into the content at pos.
func (l List) ShiftAfter(pos, delta int) {
	for i := range l {
		if l[i].Start >= pos {
			l[i].Start += delta
		}
		if l[i].End >= pos {
			l[i].End += delta
		}
	}
}

// Insert adds a zone and restores Start ordering.
func (l List) Insert(z Zone) List {
	l = append(l, z)
	sortByStart(l)
	return l
}

func sortByStart(l List) {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Start < l[j].Start
	})
}
