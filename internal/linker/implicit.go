package linker

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pcreed/magpie/internal/zone"
)

// Pattern family names for implicit entity detection.
const (
	PatternProperNouns = "proper-nouns"
	PatternSingleCaps  = "single-caps"
	PatternQuotedTerms = "quoted-terms"
	PatternCamelCase   = "camel-case"
	PatternAcronyms    = "acronyms"
)

// AllImplicitPatterns lists every pattern family, in detection order.
var AllImplicitPatterns = []string{
	PatternProperNouns,
	PatternSingleCaps,
	PatternQuotedTerms,
	PatternCamelCase,
	PatternAcronyms,
}

// defaultMinEntityLength is used when ImplicitConfig.MinEntityLength
// is zero.
const defaultMinEntityLength = 3

// ImplicitMatch is a heuristically detected span with no backing
// entity. For quoted terms the span covers the quote characters while
// Text does not.
type ImplicitMatch struct {
	Text    string
	Start   int
	End     int
	Pattern string
}

// ImplicitConfig configures implicit entity detection.
type ImplicitConfig struct {
	// Patterns selects the pattern families; nil or empty runs all.
	Patterns []string

	// ExcludePatterns are regexps; candidates whose text matches any
	// of them are dropped.
	ExcludePatterns []string

	// MinEntityLength drops candidates with shorter text.
	MinEntityLength int
}

var (
	properNounsRe = regexp.MustCompile(`\b[A-Z][a-z]+(?: +[A-Z][a-z]+)+\b`)
	singleCapsRe  = regexp.MustCompile(`\b[a-z]+ ([A-Z][a-zA-Z]+)\b`)
	quotedTermsRe = regexp.MustCompile(`"([^"\n]{3,30})"`)
	camelCaseRe   = regexp.MustCompile(`\b[a-z]+[A-Z][a-zA-Z]*\b`)
	acronymsRe    = regexp.MustCompile(`\b[A-Z]{3,}\b`)
)

// sentenceStarters are leading words that commonly begin a sentence
// and capitalize the word after them. A proper-noun match starting
// with one is re-anchored past it.
var sentenceStarters = map[string]struct{}{
	"The": {}, "This": {}, "That": {}, "These": {}, "Those": {},
	"A": {}, "An": {}, "My": {}, "Our": {}, "Your": {}, "Their": {},
	"Visit": {}, "See": {}, "Check": {}, "Read": {}, "Use": {},
	"Try": {}, "Ask": {}, "Tell": {}, "Meet": {}, "Call": {},
	"In": {}, "On": {}, "At": {}, "From": {}, "With": {}, "For": {},
	"If": {}, "When": {}, "While": {}, "After": {}, "Before": {},
	"And": {}, "But": {}, "Or": {}, "So": {}, "Then": {},
}

// DetectImplicit finds candidate entities that have no vault file,
// using the configured pattern families. It runs independently of any
// known-entity list. The only failure mode is a malformed user exclude
// regexp, which is a caller contract violation.
func DetectImplicit(content string, cfg ImplicitConfig) ([]ImplicitMatch, error) {
	if content == "" {
		return nil, nil
	}

	excludes, err := compileExcludes(cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	minLen := cfg.MinEntityLength
	if minLen <= 0 {
		minLen = defaultMinEntityLength
	}

	zones := zone.Detect(content)

	var raw []ImplicitMatch
	for _, pattern := range enabledPatterns(cfg.Patterns) {
		raw = append(raw, scanPattern(content, pattern)...)
	}

	var kept []ImplicitMatch
	seen := make(map[string]bool)
	for _, m := range raw {
		if len(m.Text) < minLen {
			continue
		}
		if isImplicitStopword(m.Text) {
			continue
		}
		if matchesAny(excludes, m.Text) {
			continue
		}
		key := strings.ToLower(m.Text)
		if seen[key] {
			continue
		}
		if zones.Overlaps(m.Start, m.End) {
			continue
		}
		seen[key] = true
		kept = append(kept, m)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End-a.Start > b.End-b.Start
	})
	return filterOverlapping(kept), nil
}

// filterOverlapping walks matches sorted by (start, longest first) and
// drops any match overlapping an earlier survivor. Unlike known-entity
// resolution there is no per-entity cap: every match is already
// globally unique by text.
func filterOverlapping(matches []ImplicitMatch) []ImplicitMatch {
	var out []ImplicitMatch
	for _, m := range matches {
		overlaps := false
		for _, a := range out {
			if spansConflict(m.Start, m.End, a.Start, a.End) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			out = append(out, m)
		}
	}
	return out
}

func enabledPatterns(requested []string) []string {
	if len(requested) == 0 {
		return AllImplicitPatterns
	}
	want := make(map[string]bool, len(requested))
	for _, p := range requested {
		want[p] = true
	}
	var out []string
	for _, p := range AllImplicitPatterns {
		if want[p] {
			out = append(out, p)
		}
	}
	return out
}

func scanPattern(content, pattern string) []ImplicitMatch {
	var out []ImplicitMatch
	switch pattern {
	case PatternProperNouns:
		for _, loc := range properNounsRe.FindAllStringIndex(content, -1) {
			if m, ok := properNounMatch(content, loc[0], loc[1]); ok {
				out = append(out, m)
			}
		}
	case PatternSingleCaps:
		for _, loc := range singleCapsRe.FindAllStringSubmatchIndex(content, -1) {
			start, end := loc[2], loc[3]
			out = append(out, ImplicitMatch{
				Text:    content[start:end],
				Start:   start,
				End:     end,
				Pattern: PatternSingleCaps,
			})
		}
	case PatternQuotedTerms:
		for _, loc := range quotedTermsRe.FindAllStringSubmatchIndex(content, -1) {
			out = append(out, ImplicitMatch{
				Text:    content[loc[2]:loc[3]],
				Start:   loc[0],
				End:     loc[1],
				Pattern: PatternQuotedTerms,
			})
		}
	case PatternCamelCase:
		out = appendPlainMatches(out, content, camelCaseRe, PatternCamelCase)
	case PatternAcronyms:
		out = appendPlainMatches(out, content, acronymsRe, PatternAcronyms)
	}
	return out
}

func appendPlainMatches(out []ImplicitMatch, content string, re *regexp.Regexp, pattern string) []ImplicitMatch {
	for _, loc := range re.FindAllStringIndex(content, -1) {
		out = append(out, ImplicitMatch{
			Text:    content[loc[0]:loc[1]],
			Start:   loc[0],
			End:     loc[1],
			Pattern: pattern,
		})
	}
	return out
}

// properNounMatch strips a detected sentence-starter word from the
// front of a multi-word capitalized match and re-anchors the span to
// the remainder. The match is discarded when fewer than two words
// remain.
func properNounMatch(content string, start, end int) (ImplicitMatch, bool) {
	text := content[start:end]
	words := strings.Fields(text)

	if _, starter := sentenceStarters[words[0]]; starter {
		if len(words) < 3 {
			return ImplicitMatch{}, false
		}
		trimmed := strings.TrimPrefix(text, words[0])
		start = end - len(strings.TrimLeft(trimmed, " "))
		text = content[start:end]
	}

	return ImplicitMatch{
		Text:    text,
		Start:   start,
		End:     end,
		Pattern: PatternProperNouns,
	}, true
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
