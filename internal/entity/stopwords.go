package entity

import "strings"

// termStopwords are surface forms that are never worth linking even
// when a note by that name exists: day and month names, common
// conjunctions, and holiday words.
var termStopwords = map[string]struct{}{
	// days
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	// months
	"january": {}, "february": {}, "march": {}, "april": {},
	"may": {}, "june": {}, "july": {}, "august": {},
	"september": {}, "october": {}, "november": {}, "december": {},
	// conjunctions and similar glue
	"and": {}, "or": {}, "but": {}, "nor": {}, "yet": {}, "so": {},
	"for": {}, "the": {}, "a": {}, "an": {}, "of": {}, "to": {},
	"in": {}, "on": {}, "at": {}, "with": {}, "from": {},
	// holidays
	"christmas": {}, "easter": {}, "thanksgiving": {}, "halloween": {},
	"hanukkah": {}, "ramadan": {}, "diwali": {}, "new year": {},
	"new years": {}, "new year's": {},
}

func isStopTerm(s string) bool {
	_, ok := termStopwords[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
