// Package wikilink provides canonical parsing/scanning of wikilinks.
//
// Wikilink grammar:
//
//	[[target]]
//	[[target|display text]]
//
// Notes:
//   - The target and display text are trimmed of surrounding whitespace.
//   - This package does not understand protected markdown regions; the
//     linker decides whether a found link may be rewritten.
package wikilink

import (
	"regexp"
	"strings"
)

// Match represents a wikilink found in content.
type Match struct {
	Target      string
	DisplayText *string
	Start       int
	End         int
	Literal     string
}

// re matches [[target]] or [[target|display]].
// The target cannot contain [ or ] so array-ish syntax like [[[ref]]]
// is not swallowed.
var re = regexp.MustCompile(`\[\[([^\]\[|]+)(?:\|([^\]]+))?\]\]`)

// ParseExact parses a string that is exactly a wikilink literal.
func ParseExact(s string) (target string, display *string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[[") || !strings.HasSuffix(s, "]]") {
		return "", nil, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "[["), "]]")
	parts := strings.SplitN(inner, "|", 2)
	target = strings.TrimSpace(parts[0])
	if target == "" {
		return "", nil, false
	}
	if len(parts) == 2 {
		d := strings.TrimSpace(parts[1])
		display = &d
	}
	return target, display, true
}

// FindAll finds every wikilink in content in a single linear scan.
// Offsets are content offsets, so callers can rewrite matches in place
// (right to left) without recomputing positions.
func FindAll(content string) []Match {
	var out []Match

	for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
		if len(m) < 4 {
			continue
		}
		start, end := m[0], m[1]

		// Skip matches preceded by '[': array syntax like [[[ref]]].
		if start > 0 && content[start-1] == '[' {
			continue
		}

		target := strings.TrimSpace(content[m[2]:m[3]])
		if target == "" {
			continue
		}

		var display *string
		if len(m) >= 6 && m[4] >= 0 && m[5] >= 0 {
			d := strings.TrimSpace(content[m[4]:m[5]])
			display = &d
		}

		out = append(out, Match{
			Target:      target,
			DisplayText: display,
			Start:       start,
			End:         end,
			Literal:     content[start:end],
		})
	}

	return out
}
