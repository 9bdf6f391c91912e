package linker

import (
	"sort"
	"strings"

	"github.com/pcreed/magpie/internal/zone"
)

// replacementFor builds the wikilink text for an accepted candidate:
// [[Name]] when the matched text already equals the canonical name
// (ignoring case), otherwise [[Name|Matched]] to preserve the author's
// casing or alias as display text.
func replacementFor(c Candidate) string {
	if strings.EqualFold(c.Match.Matched, c.EntityName) {
		return "[[" + c.EntityName + "]]"
	}
	return "[[" + c.EntityName + "|" + c.Match.Matched + "]]"
}

// applyCandidates splices wikilinks into content. Candidates are
// processed strictly right to left by start offset so earlier offsets
// stay valid while later insertions are applied. After each splice the
// zone list is shifted to match the new string length and a wikilink
// zone is added over the inserted text, so no later candidate in the
// same pass can land inside it.
//
// Returns the rewritten content, the number of links added, and the
// linked canonical names de-duplicated in first-link (ascending
// position) order.
func applyCandidates(content string, cands []Candidate, zones zone.List) (string, int, []string) {
	ordered := make([]Candidate, len(cands))
	copy(ordered, cands)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Match.Start > ordered[j].Match.Start
	})

	var applied []Candidate
	for _, c := range ordered {
		// Candidates were filtered against the original zones; in
		// all-occurrences mode they can still collide with links
		// inserted earlier in this loop, so re-check here.
		if zones.Overlaps(c.Match.Start, c.Match.End) {
			continue
		}
		repl := replacementFor(c)
		content = content[:c.Match.Start] + repl + content[c.Match.End:]
		zones.ShiftAfter(c.Match.Start, len(repl)-(c.Match.End-c.Match.Start))
		zones = zones.Insert(zone.Zone{
			Start: c.Match.Start,
			End:   c.Match.Start + len(repl),
			Type:  zone.Wikilink,
		})
		applied = append(applied, c)
	}

	return content, len(applied), linkedNames(applied)
}

// linkedNames returns the canonical names that received a link, in
// ascending position of their first link.
func linkedNames(applied []Candidate) []string {
	ordered := make([]Candidate, len(applied))
	copy(ordered, applied)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Match.Start < ordered[j].Match.Start
	})

	var names []string
	seen := make(map[string]bool)
	for _, c := range ordered {
		key := strings.ToLower(c.EntityName)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, c.EntityName)
	}
	return names
}
