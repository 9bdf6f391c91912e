package linker

import (
	"reflect"
	"testing"

	"github.com/pcreed/magpie/internal/zone"
)

func TestFindMatchesWordBoundary(t *testing.T) {
	content := "the API lives in APIManager and api too"
	got := findMatches(content, "API", true, nil)
	want := []Match{
		{Start: 4, End: 7, Matched: "API"},
		{Start: 32, End: 35, Matched: "api"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matches = %+v, want %+v", got, want)
	}
}

func TestFindMatchesCaseSensitive(t *testing.T) {
	content := "React and react"
	got := findMatches(content, "React", false, nil)
	if len(got) != 1 || got[0].Start != 0 {
		t.Fatalf("matches = %+v, want only the exact-case occurrence", got)
	}
}

func TestFindMatchesBracketAdjacency(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "preceding bracket", content: "[React] and more", want: 0},
		{name: "trailing paren", content: "see React) here", want: 0},
		{name: "inside braces", content: "{React}", want: 0},
		{name: "clean occurrence", content: "plain React here", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findMatches(tt.content, "React", true, nil)
			if len(got) != tt.want {
				t.Fatalf("got %d matches, want %d: %+v", len(got), tt.want, got)
			}
		})
	}
}

func TestFindMatchesZoneExclusion(t *testing.T) {
	content := "use React here"
	zones := zone.List{{Start: 2, End: 6, Type: zone.InlineCode}}
	// The zone clips only the first character of the match; inclusive
	// overlap still excludes it.
	if got := findMatches(content, "React", true, zones); len(got) != 0 {
		t.Fatalf("expected zone-overlapping match to be dropped, got %+v", got)
	}
}

func TestFindMatchesEscapesRegexMeta(t *testing.T) {
	content := "we use C++ and C here"
	got := findMatches(content, "C++", true, nil)
	if len(got) != 1 || got[0].Matched != "C++" {
		t.Fatalf("matches = %+v, want one C++ match", got)
	}
}

func TestFindMatchesEmptyTerm(t *testing.T) {
	if got := findMatches("anything", "", true, nil); got != nil {
		t.Fatalf("expected nil for empty term, got %+v", got)
	}
}
