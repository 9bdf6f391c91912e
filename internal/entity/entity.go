// Package entity defines the linkable-entity model and the expansion
// of entities into searchable surface terms.
package entity

// Entity is a named note that wikilinks can target. It has exactly two
// shapes: a bare name, or a name with a vault path and aliases. Use the
// constructors; the zero value is not a valid entity.
//
// Within one annotation pass names are unique (case-insensitive).
// Aliases may collide across entities; the alias map resolves such
// collisions first-registered-wins.
type Entity struct {
	name    string
	path    string
	aliases []string
}

// Bare returns an entity that is only a canonical name.
func Bare(name string) Entity {
	return Entity{name: name}
}

// WithAliases returns an entity backed by a vault file, with zero or
// more aliases that resolve to the same canonical name.
func WithAliases(name, path string, aliases []string) Entity {
	return Entity{name: name, path: path, aliases: aliases}
}

// Name returns the canonical name.
func (e Entity) Name() string { return e.name }

// Path returns the vault-relative file path, empty for bare entities.
func (e Entity) Path() string { return e.path }

// Aliases returns the alias list, nil for bare entities.
func (e Entity) Aliases() []string { return e.aliases }
