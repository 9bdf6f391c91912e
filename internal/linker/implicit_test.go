package linker

import (
	"reflect"
	"testing"
)

func implicitTexts(matches []ImplicitMatch) []string {
	var out []string
	for _, m := range matches {
		out = append(out, m.Text)
	}
	return out
}

func TestDetectImplicit(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cfg     ImplicitConfig
		want    []string
	}{
		{
			name:    "proper nouns",
			content: "met Alice Johnson downtown",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}},
			want:    []string{"Alice Johnson"},
		},
		{
			name:    "sentence starter is stripped and re-anchored",
			content: "you should Visit New York sometime",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}},
			want:    []string{"New York"},
		},
		{
			name:    "starter match with one remaining word is discarded",
			content: "you should Visit Paris sometime",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}},
			want:    nil,
		},
		{
			name:    "single cap after lowercase word",
			content: "deployed using Docker yesterday",
			cfg:     ImplicitConfig{Patterns: []string{PatternSingleCaps}},
			want:    []string{"Docker"},
		},
		{
			name:    "quoted terms keep text without quotes",
			content: `she said "microservices" loudly`,
			cfg:     ImplicitConfig{Patterns: []string{PatternQuotedTerms}},
			want:    []string{"microservices"},
		},
		{
			name:    "quoted span too short",
			content: `he said "no" quietly`,
			cfg:     ImplicitConfig{Patterns: []string{PatternQuotedTerms}},
			want:    nil,
		},
		{
			name:    "quoted span too long",
			content: `he said "this quoted span is far too long to be an entity name"`,
			cfg:     ImplicitConfig{Patterns: []string{PatternQuotedTerms}},
			want:    nil,
		},
		{
			name:    "camel case",
			content: "the oldCodebase needs work",
			cfg:     ImplicitConfig{Patterns: []string{PatternCamelCase}},
			want:    []string{"oldCodebase"},
		},
		{
			name:    "acronyms need three capitals",
			content: "an AWS deploy and a DB and a GRPC call",
			cfg:     ImplicitConfig{Patterns: []string{PatternAcronyms}},
			want:    []string{"AWS", "GRPC"},
		},
		{
			name:    "stopwords are excluded",
			content: "see you Next Week sometime",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}},
			want:    nil,
		},
		{
			name:    "min entity length",
			content: "met Al Jo downtown and Alice Johnson later",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}, MinEntityLength: 10},
			want:    []string{"Alice Johnson"},
		},
		{
			name:    "exclude regex",
			content: "met Bob Smith and Alice Johnson",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}, ExcludePatterns: []string{"^Bob"}},
			want:    []string{"Alice Johnson"},
		},
		{
			name:    "case-insensitive dedup keeps first occurrence",
			content: "using Docker then more docker via Docker again",
			cfg:     ImplicitConfig{Patterns: []string{PatternSingleCaps}},
			want:    []string{"Docker"},
		},
		{
			name:    "protected zones are excluded",
			content: "code `Alice Johnson` and [[Bob Smith]] but Carol Danvers",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns}},
			want:    []string{"Carol Danvers"},
		},
		{
			name:    "longest match at earliest position survives overlap filtering",
			content: "met Alice Johnson downtown",
			cfg:     ImplicitConfig{Patterns: []string{PatternProperNouns, PatternSingleCaps}},
			want:    []string{"Alice Johnson"},
		},
		{
			name:    "empty content",
			content: "",
			cfg:     ImplicitConfig{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectImplicit(tt.content, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(implicitTexts(got), tt.want) {
				t.Fatalf("matches = %+v, want texts %v", got, tt.want)
			}
		})
	}
}

func TestDetectImplicitBadExcludeRegex(t *testing.T) {
	_, err := DetectImplicit("some content", ImplicitConfig{ExcludePatterns: []string{"["}})
	if err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}

func TestDetectImplicitQuotedSpanIncludesQuotes(t *testing.T) {
	content := `note "Term" here`
	got, err := DetectImplicit(content, ImplicitConfig{Patterns: []string{PatternQuotedTerms}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("matches = %+v", got)
	}
	m := got[0]
	if content[m.Start:m.End] != `"Term"` {
		t.Fatalf("span = %q, want it to include the quotes", content[m.Start:m.End])
	}
	if m.Text != "Term" {
		t.Fatalf("text = %q, want Term", m.Text)
	}
}

func TestDetectImplicitSortedAndNonOverlapping(t *testing.T) {
	content := "met Alice Johnson using Docker and saw GRPC with someCamel here"
	got, err := DetectImplicit(content, ImplicitConfig{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].Start {
			t.Fatalf("matches not sorted: %+v", got)
		}
		if spansConflict(got[i].Start, got[i].End, got[i-1].Start, got[i-1].End) {
			t.Fatalf("overlapping matches survived: %+v", got)
		}
	}
}
