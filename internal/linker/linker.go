// Package linker rewrites markdown content with [[wikilink]] references
// to a known set of named entities without corrupting markdown syntax
// or user-authored links.
//
// Every entry point is a pure function of its inputs: no I/O, no shared
// state, deterministic output regardless of entity list ordering. It is
// safe to call concurrently on independent content values; callers own
// serializing edits to the same underlying file.
package linker

import (
	"sort"
	"strings"

	"github.com/pcreed/magpie/internal/entity"
	"github.com/pcreed/magpie/internal/zone"
)

// Options configures an annotation pass.
type Options struct {
	// FirstOccurrenceOnly links each entity at most once per document,
	// at its earliest valid position.
	FirstOccurrenceOnly bool

	// CaseInsensitive matches terms ignoring case.
	CaseInsensitive bool

	// AlreadyLinked seeds entity names to treat as already satisfied,
	// used when chaining passes over the same document.
	AlreadyLinked []string
}

// DefaultOptions returns the default annotation options:
// first-occurrence, case-insensitive.
func DefaultOptions() Options {
	return Options{FirstOccurrenceOnly: true, CaseInsensitive: true}
}

// ExtendedOptions adds implicit-entity detection on top of Options.
type ExtendedOptions struct {
	Options

	// DetectImplicit enables the heuristic pattern pass after
	// known-entity linking.
	DetectImplicit bool

	// ImplicitPatterns selects the pattern families to run; nil or
	// empty enables all of them.
	ImplicitPatterns []string

	// ExcludePatterns are regexps; implicit candidates whose text
	// matches any of them are dropped.
	ExcludePatterns []string

	// MinEntityLength drops implicit candidates shorter than this
	// (0 means the built-in minimum).
	MinEntityLength int

	// NotePath is the path of the note being processed, used to
	// suppress implicit self-links on the note's own title.
	NotePath string
}

// Result is the output contract of an annotation pass. Content is the
// fully rewritten string; LinkedEntities lists canonical names that
// received a link, at most once per name in first-occurrence mode.
type Result struct {
	Content          string
	LinksAdded       int
	LinkedEntities   []string
	ImplicitEntities []ImplicitMatch
}

// Apply annotates content with wikilinks to the given entities.
// Empty content or an empty entity list short-circuits to a no-op.
func Apply(content string, entities []entity.Entity, opts Options) Result {
	cands, zones := candidates(content, entities, opts)
	if opts.FirstOccurrenceOnly {
		cands = selectMatches(cands)
	}
	rewritten, added, names := applyCandidates(content, cands, zones)
	return Result{Content: rewritten, LinksAdded: added, LinkedEntities: names}
}

// Suggest returns the candidates Apply would link, in ascending
// position order, without rewriting anything.
func Suggest(content string, entities []entity.Entity, opts Options) []Candidate {
	cands, _ := candidates(content, entities, opts)
	if opts.FirstOccurrenceOnly {
		cands = selectMatches(cands)
	}
	sortCandidatesByStart(cands)
	return cands
}

// candidates runs zone detection, term expansion, and the match search,
// returning every valid candidate plus the zone list for the rewriter.
func candidates(content string, entities []entity.Entity, opts Options) ([]Candidate, zone.List) {
	if content == "" || len(entities) == 0 {
		return nil, nil
	}

	zones := zone.Detect(content)

	satisfied := make(map[string]bool, len(opts.AlreadyLinked))
	for _, name := range opts.AlreadyLinked {
		satisfied[strings.ToLower(name)] = true
	}

	var cands []Candidate
	for _, term := range entity.ExpandTerms(entities) {
		if satisfied[strings.ToLower(term.EntityName)] {
			continue
		}
		for _, m := range findMatches(content, term.Text, opts.CaseInsensitive, zones) {
			cands = append(cands, Candidate{
				EntityName: term.EntityName,
				Term:       term.Text,
				Match:      m,
			})
		}
	}
	return cands, zones
}

func sortCandidatesByStart(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Match.Start < cands[j].Match.Start
	})
}
