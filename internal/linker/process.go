package linker

import (
	"path/filepath"
	"strings"

	"github.com/pcreed/magpie/internal/entity"
)

// Process runs the full annotation pipeline: known-entity linking
// first, then (when enabled) implicit detection over the already
// rewritten content. Implicit matches whose text equals an
// already-linked entity, a known entity's name, or the note's own
// title are filtered out, the rest are de-overlapped and wrapped in
// [[...]] right to left. Quoted-term spans drop their quote characters:
// "Term" becomes [[Term]].
func Process(content string, entities []entity.Entity, opts ExtendedOptions) (Result, error) {
	res := Apply(content, entities, opts.Options)
	if !opts.DetectImplicit {
		return res, nil
	}

	matches, err := DetectImplicit(res.Content, ImplicitConfig{
		Patterns:        opts.ImplicitPatterns,
		ExcludePatterns: opts.ExcludePatterns,
		MinEntityLength: opts.MinEntityLength,
	})
	if err != nil {
		return res, err
	}

	skip := make(map[string]bool)
	for _, name := range res.LinkedEntities {
		skip[strings.ToLower(name)] = true
	}
	for _, e := range entities {
		skip[strings.ToLower(e.Name())] = true
	}
	if opts.NotePath != "" {
		title := strings.TrimSuffix(filepath.Base(opts.NotePath), ".md")
		skip[strings.ToLower(title)] = true
	}

	var kept []ImplicitMatch
	for _, m := range matches {
		if !skip[strings.ToLower(m.Text)] {
			kept = append(kept, m)
		}
	}
	kept = filterOverlapping(kept)

	// Wrap right to left so earlier offsets stay valid.
	rewritten := res.Content
	for i := len(kept) - 1; i >= 0; i-- {
		m := kept[i]
		rewritten = rewritten[:m.Start] + "[[" + m.Text + "]]" + rewritten[m.End:]
	}

	res.Content = rewritten
	res.ImplicitEntities = kept
	return res, nil
}
