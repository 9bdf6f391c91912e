// Package slugs provides slugification for proposed note paths, built
// on gosimple/slug so unicode entity names degrade sensibly.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// EntitySlug converts an entity name to a URL/file-safe slug.
func EntitySlug(name string) string {
	name = strings.TrimSuffix(name, ".md")
	slugged := goslug.Make(name)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}
	return slugged
}

// NotePath proposes a vault-relative markdown path for an entity that
// has no file yet (typically a detected implicit entity).
func NotePath(name string) string {
	return EntitySlug(name) + ".md"
}
