package entity

import (
	"reflect"
	"testing"
)

func TestConstructors(t *testing.T) {
	b := Bare("React")
	if b.Name() != "React" || b.Path() != "" || b.Aliases() != nil {
		t.Fatalf("bare entity: %+v", b)
	}

	w := WithAliases("MCP", "protocols/mcp.md", []string{"Model Context Protocol"})
	if w.Name() != "MCP" || w.Path() != "protocols/mcp.md" {
		t.Fatalf("entity with aliases: %+v", w)
	}
	if got := w.Aliases(); len(got) != 1 || got[0] != "Model Context Protocol" {
		t.Fatalf("aliases = %v", got)
	}
}

func TestExpandTerms(t *testing.T) {
	tests := []struct {
		name     string
		entities []Entity
		want     []Term
	}{
		{
			name:     "bare entity yields one term",
			entities: []Entity{Bare("React")},
			want:     []Term{{Text: "React", EntityName: "React"}},
		},
		{
			name: "aliases map back to the canonical name",
			entities: []Entity{
				WithAliases("MCP", "mcp.md", []string{"Model Context Protocol", "mcp protocol"}),
			},
			want: []Term{
				{Text: "MCP", EntityName: "MCP"},
				{Text: "Model Context Protocol", EntityName: "MCP"},
				{Text: "mcp protocol", EntityName: "MCP"},
			},
		},
		{
			name:     "stop-word names are dropped",
			entities: []Entity{Bare("Monday"), Bare("December"), Bare("Christmas")},
			want:     nil,
		},
		{
			name: "stop-word aliases are dropped but the name survives",
			entities: []Entity{
				WithAliases("Weekly Sync", "sync.md", []string{"Monday", "sync"}),
			},
			want: []Term{
				{Text: "Weekly Sync", EntityName: "Weekly Sync"},
				{Text: "sync", EntityName: "Weekly Sync"},
			},
		},
		{
			name: "blank aliases are skipped",
			entities: []Entity{
				WithAliases("Go", "go.md", []string{"", "  ", "golang"}),
			},
			want: []Term{
				{Text: "Go", EntityName: "Go"},
				{Text: "golang", EntityName: "Go"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandTerms(tt.entities)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("terms = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsStopTermCaseInsensitive(t *testing.T) {
	for _, s := range []string{"monday", "MONDAY", "MoNdAy", " Friday "} {
		if !isStopTerm(s) {
			t.Errorf("expected %q to be a stop term", s)
		}
	}
	if isStopTerm("React") {
		t.Error("React must not be a stop term")
	}
}
