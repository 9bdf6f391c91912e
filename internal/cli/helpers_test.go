package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pcreed/magpie/internal/testutil"
)

func TestResolveTargets(t *testing.T) {
	v := testutil.NewVault(t)
	v.WriteFile("react.md", "# React\n")
	v.WriteFile("notes/daily.md", "Learning React today.\n")
	v.WriteFile("notes/image.png", "not markdown")
	v.WriteFile(".magpie/audit.log", "")

	t.Run("no args targets every markdown file", func(t *testing.T) {
		targets, err := resolveTargets(v.Path, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(targets) != 2 {
			t.Fatalf("expected 2 targets, got %v", targets)
		}
	})

	t.Run("vault-relative argument", func(t *testing.T) {
		targets, err := resolveTargets(v.Path, []string{"notes/daily.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(targets) != 1 || filepath.Base(targets[0]) != "daily.md" {
			t.Fatalf("expected daily.md, got %v", targets)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := resolveTargets(v.Path, []string{"nope.md"}); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("file outside vault", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "outside.md")
		if err := os.WriteFile(outside, []byte("# Outside\n"), 0644); err != nil {
			t.Fatalf("write outside file: %v", err)
		}
		if _, err := resolveTargets(v.Path, []string{outside}); err == nil {
			t.Error("expected error for file outside vault")
		}
	})
}

func TestLoadEntitiesFallsBackToScan(t *testing.T) {
	v := testutil.NewVault(t)
	v.WriteFile("react.md", "# React\n")
	v.WriteFile("vue.md", "# Vue\n")

	// No index exists yet; loadEntities should scan the vault instead.
	entities, err := loadEntities(v.Path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities from scan, got %d", len(entities))
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := newSessionID(), newSessionID()
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}
	if a == b {
		t.Error("expected distinct session ids")
	}
}
