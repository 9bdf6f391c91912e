package entity

import "strings"

// Term is a surface form to search for, tagged with the canonical name
// of the entity that owns it.
type Term struct {
	Text       string
	EntityName string
}

// ExpandTerms expands each entity into its searchable terms: the
// canonical name plus one term per alias, all mapping back to the same
// canonical name. Terms equal to a stop word (day/month names, common
// conjunctions, holiday words) are dropped entirely so the linker never
// produces links like [[Monday]].
func ExpandTerms(entities []Entity) []Term {
	var terms []Term
	for _, e := range entities {
		if !isStopTerm(e.Name()) {
			terms = append(terms, Term{Text: e.Name(), EntityName: e.Name()})
		}
		for _, alias := range e.Aliases() {
			alias = strings.TrimSpace(alias)
			if alias == "" || isStopTerm(alias) {
				continue
			}
			terms = append(terms, Term{Text: alias, EntityName: e.Name()})
		}
	}
	return terms
}
