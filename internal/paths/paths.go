// Package paths provides canonical helpers for vault-relative markdown
// paths and for keeping file operations inside the vault.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathOutsideVault indicates a file path that escapes the vault root.
var ErrPathOutsideVault = errors.New("path is outside the vault")

// ValidateWithinVault returns ErrPathOutsideVault when path does not
// resolve to a location under vaultPath.
func ValidateWithinVault(vaultPath, path string) error {
	absVault, err := filepath.Abs(vaultPath)
	if err != nil {
		return fmt.Errorf("resolve vault path: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	rel, err := filepath.Rel(absVault, absPath)
	if err != nil {
		return ErrPathOutsideVault
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrPathOutsideVault
	}
	return nil
}

// NormalizeRel normalizes a vault-relative path-like value: converts OS
// separators to '/', trims leading "./" and "/", collapses repeated '/'.
func NormalizeRel(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// EntityName derives the canonical entity name for a vault-relative
// markdown file path: the base name without the ".md" extension.
func EntityName(relPath string) string {
	base := filepath.Base(filepath.FromSlash(relPath))
	return strings.TrimSuffix(base, ".md")
}
