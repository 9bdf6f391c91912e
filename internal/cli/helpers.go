package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pcreed/magpie/internal/entity"
	"github.com/pcreed/magpie/internal/index"
	"github.com/pcreed/magpie/internal/paths"
	"github.com/pcreed/magpie/internal/vault"
)

// newSessionID returns a short random correlation id for audit entries.
func newSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(buf)
}

// loadEntities loads the entity catalog, preferring the index and
// falling back to a live vault scan when the index is empty.
func loadEntities(vaultPath string) ([]entity.Entity, error) {
	db, err := index.Open(vaultPath)
	if err == nil {
		defer db.Close()
		if n, countErr := db.Count(); countErr == nil && n > 0 {
			return db.All()
		}
	}
	return vault.ScanEntities(vaultPath)
}

// resolveTargets maps command arguments to absolute note paths inside
// the vault. With no arguments, every markdown file in the vault is a
// target.
func resolveTargets(vaultPath string, args []string) ([]string, error) {
	if len(args) == 0 {
		return vaultMarkdownFiles(vaultPath)
	}

	targets := make([]string, 0, len(args))
	for _, arg := range args {
		p := arg
		if !filepath.IsAbs(p) {
			// Prefer vault-relative, then cwd-relative.
			vaultRel := filepath.Join(vaultPath, p)
			if _, err := os.Stat(vaultRel); err == nil {
				p = vaultRel
			} else if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("file not found: %s", arg)
		}
		if err := paths.ValidateWithinVault(vaultPath, p); err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		targets = append(targets, p)
	}
	return targets, nil
}

func vaultMarkdownFiles(vaultPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != vaultPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault: %w", err)
	}
	return files, nil
}

// vaultRel returns the vault-relative form of an absolute note path,
// falling back to the input when it cannot be relativized.
func vaultRel(vaultPath, path string) string {
	rel, err := filepath.Rel(vaultPath, path)
	if err != nil {
		return path
	}
	return paths.NormalizeRel(rel)
}

// readNote reads a note and returns its content and file mode, so
// rewrites can preserve permissions.
func readNote(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	return string(data), info.Mode().Perm(), nil
}
