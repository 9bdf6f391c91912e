package linker

import "strings"

// implicitStopwords filters heuristic candidates that are almost never
// worth a note of their own: sentence-leading function words, days,
// months, and similar common capitalized English.
var implicitStopwords = map[string]struct{}{
	"the": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"a": {}, "an": {}, "and": {}, "but": {}, "or": {}, "nor": {},
	"for": {}, "yet": {}, "so": {}, "not": {}, "all": {}, "any": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
	"they": {}, "them": {}, "his": {}, "her": {}, "its": {}, "our": {},
	"your": {}, "their": {}, "who": {}, "whom": {}, "whose": {},
	"what": {}, "which": {}, "when": {}, "where": {}, "why": {},
	"how": {}, "if": {}, "then": {}, "else": {}, "than": {},
	"because": {}, "while": {}, "after": {}, "before": {}, "during": {},
	"about": {}, "above": {}, "below": {}, "between": {}, "into": {},
	"through": {}, "under": {}, "over": {}, "with": {}, "without": {},
	"within": {}, "from": {}, "onto": {}, "upon": {}, "also": {},
	"however": {}, "therefore": {}, "although": {}, "though": {},
	"maybe": {}, "perhaps": {}, "just": {}, "only": {}, "very": {},
	"here": {}, "there": {}, "now": {}, "today": {}, "tomorrow": {},
	"yesterday": {}, "soon": {}, "later": {}, "again": {}, "once": {},
	"yes": {}, "no": {}, "okay": {}, "ok": {}, "oh": {}, "well": {},
	"please": {}, "thanks": {}, "thank": {}, "hello": {}, "hi": {},
	"note": {}, "notes": {}, "todo": {}, "done": {}, "new": {},
	"old": {}, "first": {}, "last": {}, "next": {}, "previous": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {},
	"june": {}, "july": {}, "august": {}, "september": {},
	"october": {}, "november": {}, "december": {},
	"next week": {}, "last week": {}, "this week": {},
	"next month": {}, "last month": {}, "this month": {},
}

func isImplicitStopword(s string) bool {
	_, ok := implicitStopwords[strings.ToLower(s)]
	return ok
}
