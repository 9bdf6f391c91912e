package vault

import (
	"testing"

	"github.com/pcreed/magpie/internal/entity"
	"github.com/pcreed/magpie/internal/testutil"
)

func entityByName(t *testing.T, entities []entity.Entity, name string) entity.Entity {
	t.Helper()
	for _, e := range entities {
		if e.Name() == name {
			return e
		}
	}
	t.Fatalf("entity %q not found in %+v", name, entities)
	return entity.Entity{}
}

func TestScanEntities(t *testing.T) {
	v := testutil.NewVault(t)
	v.WriteFile("React.md", "# React\nnotes about react\n")
	v.WriteFile("protocols/MCP.md", "---\naliases:\n  - Model Context Protocol\n  - mcp protocol\n---\nbody\n")
	v.WriteFile("scalar.md", "---\naliases: single\n---\nbody\n")
	v.WriteFile("broken.md", "---\naliases: [unterminated\n---\nbody\n")
	v.WriteFile("notes.txt", "not markdown")
	v.WriteFile(".magpie/ignored.md", "never scanned")
	v.WriteFile(".trash/gone.md", "never scanned")

	entities, err := ScanEntities(v.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entities) != 4 {
		t.Fatalf("expected 4 entities, got %d: %+v", len(entities), entities)
	}

	react := entityByName(t, entities, "React")
	if react.Path() != "React.md" || len(react.Aliases()) != 0 {
		t.Fatalf("react = %+v", react)
	}

	mcp := entityByName(t, entities, "MCP")
	if mcp.Path() != "protocols/MCP.md" {
		t.Fatalf("mcp path = %q", mcp.Path())
	}
	if got := mcp.Aliases(); len(got) != 2 || got[0] != "Model Context Protocol" || got[1] != "mcp protocol" {
		t.Fatalf("mcp aliases = %v", got)
	}

	scalar := entityByName(t, entities, "scalar")
	if got := scalar.Aliases(); len(got) != 1 || got[0] != "single" {
		t.Fatalf("scalar aliases = %v", got)
	}

	// Malformed frontmatter degrades to a bare entity, not an error.
	broken := entityByName(t, entities, "broken")
	if len(broken.Aliases()) != 0 {
		t.Fatalf("broken aliases = %v", broken.Aliases())
	}
}

func TestFrontmatterBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{name: "closed", content: "---\na: 1\n---\nbody", want: "a: 1", wantOK: true},
		{name: "unclosed", content: "---\na: 1\nbody", wantOK: false},
		{name: "absent", content: "body", wantOK: false},
		{name: "empty", content: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := frontmatterBlock(tt.content)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("frontmatterBlock = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
