// Package vault scans a notes directory for linkable entities.
package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pcreed/magpie/internal/entity"
	"github.com/pcreed/magpie/internal/paths"
)

// DataDir is the vault-local directory holding the index and logs.
const DataDir = ".magpie"

// ScanEntities walks every markdown file in the vault and derives one
// entity per note: canonical name from the file base name, path
// relative to the vault, aliases from the frontmatter `aliases` field.
//
// Hidden directories (including the data dir) are skipped, files
// outside the vault are ignored, and notes whose frontmatter fails to
// parse degrade to alias-less entities rather than failing the scan.
func ScanEntities(vaultPath string) ([]entity.Entity, error) {
	var entities []entity.Entity

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
		if !strings.HasSuffix(path, ".md") {
			return nil
		}
		if err := paths.ValidateWithinVault(vaultPath, path); err != nil {
			if errors.Is(err, paths.ErrPathOutsideVault) {
				return nil
			}
			return err
		}

		rel, err := filepath.Rel(vaultPath, path)
		if err != nil {
			return err
		}
		rel = paths.NormalizeRel(rel)

		entities = append(entities, entity.WithAliases(
			paths.EntityName(rel),
			rel,
			readAliases(path),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// frontmatter is the subset of note frontmatter the scanner cares
// about. Obsidian-style vaults allow a scalar or a list for aliases.
type frontmatter struct {
	Aliases aliasList `yaml:"aliases"`
}

type aliasList []string

func (a *aliasList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*a = aliasList{s}
		return nil
	default:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*a = aliasList(list)
		return nil
	}
}

// readAliases extracts frontmatter aliases from a note. Any read or
// parse failure yields no aliases; scans never fail on one bad note.
func readAliases(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	raw, ok := frontmatterBlock(string(data))
	if !ok {
		return nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil
	}

	var out []string
	for _, a := range fm.Aliases {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// frontmatterBlock returns the YAML between the opening "---" line and
// the first closing "---" line. Unclosed frontmatter yields nothing.
func frontmatterBlock(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
