// Package testutil provides helpers for tests that need an on-disk
// vault.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Vault is a temporary vault directory for a test.
type Vault struct {
	t    *testing.T
	Path string
}

// NewVault creates an empty vault under t.TempDir().
func NewVault(t *testing.T) *Vault {
	t.Helper()
	return &Vault{t: t, Path: t.TempDir()}
}

// WriteFile writes a file at a vault-relative path, creating parents.
func (v *Vault) WriteFile(relPath, content string) {
	v.t.Helper()
	full := filepath.Join(v.Path, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		v.t.Fatalf("mkdir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		v.t.Fatalf("write %s: %v", relPath, err)
	}
}

// ReadFile reads a vault-relative file.
func (v *Vault) ReadFile(relPath string) string {
	v.t.Helper()
	data, err := os.ReadFile(filepath.Join(v.Path, filepath.FromSlash(relPath)))
	if err != nil {
		v.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(data)
}

// AssertFileContains fails the test when the file lacks the substring.
func (v *Vault) AssertFileContains(relPath, substr string) {
	v.t.Helper()
	content := v.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		v.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test when the file has the substring.
func (v *Vault) AssertFileNotContains(relPath, substr string) {
	v.t.Helper()
	content := v.ReadFile(relPath)
	if strings.Contains(content, substr) {
		v.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}
