package linker

import (
	"strings"

	"github.com/pcreed/magpie/internal/entity"
	"github.com/pcreed/magpie/internal/wikilink"
)

// ResolveAliases rewrites existing [[target]] links whose target is a
// known alias so they point at the canonical name instead. Existing
// display text is preserved; when a link had none, the original target
// becomes the display text so the rendered note does not change.
// Links whose target already is the canonical name, or that match
// nothing, are left untouched.
func ResolveAliases(content string, entities []entity.Entity) Result {
	if content == "" || len(entities) == 0 {
		return Result{Content: content}
	}

	canonical := aliasMap(entities)
	links := wikilink.FindAll(content)

	var applied []Candidate
	// Rewrite right to left so earlier offsets stay valid.
	for i := len(links) - 1; i >= 0; i-- {
		link := links[i]
		name, ok := canonical[strings.ToLower(link.Target)]
		if !ok || name == link.Target {
			continue
		}
		display := link.Target
		if link.DisplayText != nil {
			display = *link.DisplayText
		}
		repl := "[[" + name + "|" + display + "]]"
		content = content[:link.Start] + repl + content[link.End:]
		applied = append(applied, Candidate{
			EntityName: name,
			Term:       link.Target,
			Match:      Match{Start: link.Start, End: link.End, Matched: link.Literal},
		})
	}

	return Result{
		Content:        content,
		LinksAdded:     len(applied),
		LinkedEntities: linkedNames(applied),
	}
}

// aliasMap builds the lowercased alias/name -> canonical name map.
// Aliases register first and win collisions (first-registered-wins
// across entities); a name mapping never overwrites an alias mapping.
func aliasMap(entities []entity.Entity) map[string]string {
	m := make(map[string]string)
	for _, e := range entities {
		for _, alias := range e.Aliases() {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				continue
			}
			if _, exists := m[key]; !exists {
				m[key] = e.Name()
			}
		}
	}
	for _, e := range entities {
		key := strings.ToLower(e.Name())
		if _, exists := m[key]; !exists {
			m[key] = e.Name()
		}
	}
	return m
}
