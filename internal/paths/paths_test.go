package paths

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidateWithinVault(t *testing.T) {
	vault := t.TempDir()

	if err := ValidateWithinVault(vault, filepath.Join(vault, "notes", "a.md")); err != nil {
		t.Fatalf("expected path inside vault to validate, got %v", err)
	}
	if err := ValidateWithinVault(vault, filepath.Join(vault, "..", "escape.md")); !errors.Is(err, ErrPathOutsideVault) {
		t.Fatalf("expected ErrPathOutsideVault, got %v", err)
	}
	if err := ValidateWithinVault(vault, vault); err != nil {
		t.Fatalf("vault root itself should validate, got %v", err)
	}
}

func TestNormalizeRel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"./notes/a.md", "notes/a.md"},
		{"/notes/a.md", "notes/a.md"},
		{"notes//a.md", "notes/a.md"},
		{"notes/a.md", "notes/a.md"},
	}
	for _, tt := range tests {
		if got := NormalizeRel(tt.in); got != tt.want {
			t.Errorf("NormalizeRel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntityName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"notes/React.md", "React"},
		{"React.md", "React"},
		{"deep/path/API Management.md", "API Management"},
	}
	for _, tt := range tests {
		if got := EntityName(tt.in); got != tt.want {
			t.Errorf("EntityName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
