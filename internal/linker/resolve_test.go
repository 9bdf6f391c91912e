package linker

import (
	"testing"
)

func cand(entity, term string, start int, matched string) Candidate {
	return Candidate{
		EntityName: entity,
		Term:       term,
		Match:      Match{Start: start, End: start + len(matched), Matched: matched},
	}
}

func TestSelectMatches(t *testing.T) {
	tests := []struct {
		name  string
		cands []Candidate
		want  []Candidate
	}{
		{
			name: "leftmost wins per entity",
			cands: []Candidate{
				cand("React", "React", 20, "React"),
				cand("React", "React", 3, "React"),
			},
			want: []Candidate{cand("React", "React", 3, "React")},
		},
		{
			name: "longer match wins at the same start",
			cands: []Candidate{
				cand("API", "API", 4, "API"),
				cand("API Management", "API Management", 4, "API Management"),
			},
			want: []Candidate{cand("API Management", "API Management", 4, "API Management")},
		},
		{
			name: "overlapping later candidate is rejected",
			cands: []Candidate{
				cand("API Management", "API Management", 4, "API Management"),
				cand("Management", "Management", 8, "Management"),
			},
			want: []Candidate{cand("API Management", "API Management", 4, "API Management")},
		},
		{
			name: "shorter term breaks equal matched-length ties",
			cands: []Candidate{
				cand("Golang", "longer-term", 0, "testing"),
				cand("Go", "go", 0, "testing"),
			},
			want: []Candidate{cand("Go", "go", 0, "testing")},
		},
		{
			name: "equal length same start tie goes to first declared",
			cands: []Candidate{
				cand("Alpha", "Alpha", 7, "Alpha"),
				cand("Beta", "Alpha", 7, "Alpha"),
			},
			want: []Candidate{cand("Alpha", "Alpha", 7, "Alpha")},
		},
		{
			name: "entity linked at most once across its aliases",
			cands: []Candidate{
				cand("MCP", "MCP", 2, "MCP"),
				cand("MCP", "Model Context Protocol", 30, "Model Context Protocol"),
			},
			want: []Candidate{cand("MCP", "MCP", 2, "MCP")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectMatches(tt.cands)
			if len(got) != len(tt.want) {
				t.Fatalf("selected %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("selected[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSelectMatchesEntityKeyCaseInsensitive(t *testing.T) {
	got := selectMatches([]Candidate{
		cand("react", "react", 0, "react"),
		cand("React", "React", 10, "React"),
	})
	if len(got) != 1 || got[0].Match.Start != 0 {
		t.Fatalf("expected one link for case-colliding entity names, got %+v", got)
	}
}

func TestSpansConflict(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd int
		bStart, bEnd int
		want         bool
	}{
		{"disjoint", 0, 3, 5, 8, false},
		{"adjacent", 0, 3, 3, 6, false},
		{"start inside", 0, 5, 3, 8, true},
		{"contains", 0, 10, 3, 6, true},
		{"contained", 3, 6, 0, 10, true},
		{"identical", 2, 7, 2, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spansConflict(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Fatalf("spansConflict = %v, want %v", got, tt.want)
			}
			// Symmetric.
			if got := spansConflict(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Fatalf("spansConflict (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
