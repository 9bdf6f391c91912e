package linker

import (
	"sort"
	"strings"
)

// selectMatches picks at most one match per canonical entity, with no
// two selected spans overlapping.
//
// Candidates are ordered by (ascending start, descending matched-text
// length, ascending term length) and accepted greedily. The ordering
// makes the output deterministic regardless of entity list order:
// leftmost wins on position, the more specific surface form wins among
// overlapping candidates at the same start ("API Management" over
// "API"), and an exact short alias beats an accidentally longer
// partial overlap. Equal-length ties at the same start fall through to
// the stable sort, so the first-declared entity wins.
func selectMatches(cands []Candidate) []Candidate {
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Match.Start != b.Match.Start {
			return a.Match.Start < b.Match.Start
		}
		if la, lb := len(a.Match.Matched), len(b.Match.Matched); la != lb {
			return la > lb
		}
		return len(a.Term) < len(b.Term)
	})

	var accepted []Candidate
	linked := make(map[string]bool)
	for _, c := range sorted {
		key := strings.ToLower(c.EntityName)
		if linked[key] {
			continue
		}
		conflict := false
		for _, a := range accepted {
			if spansConflict(c.Match.Start, c.Match.End, a.Match.Start, a.Match.End) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		linked[key] = true
		accepted = append(accepted, c)
	}
	return accepted
}

// spansConflict reports whether two spans overlap: one's start falls
// strictly inside the other, or one fully contains the other.
func spansConflict(aStart, aEnd, bStart, bEnd int) bool {
	if bStart > aStart && bStart < aEnd {
		return true
	}
	if aStart > bStart && aStart < bEnd {
		return true
	}
	if aStart <= bStart && aEnd >= bEnd {
		return true
	}
	return bStart <= aStart && bEnd >= aEnd
}
