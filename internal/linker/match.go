package linker

import (
	"regexp"

	"github.com/pcreed/magpie/internal/zone"
)

// Match is a located occurrence of a term in content. Matched preserves
// the exact substring so the rewriter can keep the author's casing as
// display text.
type Match struct {
	Start   int
	End     int
	Matched string
}

// Candidate ties a match to the entity and the surface term (name or
// alias) that produced it.
type Candidate struct {
	EntityName string
	Term       string
	Match      Match
}

func isBracket(b byte) bool {
	switch b {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// termPattern builds a word-bounded pattern for a user-controlled term.
// The term is regexp-escaped; boundaries are only asserted on ends that
// begin/end with a word character, so terms like "C++" still match.
func termPattern(term string, caseInsensitive bool) string {
	pattern := regexp.QuoteMeta(term)
	if isWordByte(term[0]) {
		pattern = `\b` + pattern
	}
	if isWordByte(term[len(term)-1]) {
		pattern += `\b`
	}
	if caseInsensitive {
		pattern = `(?i)` + pattern
	}
	return pattern
}

// findMatches locates every word-bounded occurrence of term in content,
// discarding matches adjacent to a bracket character on either side
// (text already inside link syntax that zone detection may have
// missed) and matches that intersect a protected zone at all.
func findMatches(content, term string, caseInsensitive bool, zones zone.List) []Match {
	if term == "" {
		return nil
	}
	re, err := regexp.Compile(termPattern(term, caseInsensitive))
	if err != nil {
		return nil
	}

	var out []Match
	for _, loc := range re.FindAllStringIndex(content, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isBracket(content[start-1]) {
			continue
		}
		if end < len(content) && isBracket(content[end]) {
			continue
		}
		if zones.Overlaps(start, end) {
			continue
		}
		out = append(out, Match{Start: start, End: end, Matched: content[start:end]})
	}
	return out
}
