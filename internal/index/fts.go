package index

import (
	"database/sql"
	"fmt"
	"strings"
)

// SearchResult is one FTS hit with its catalog row.
type SearchResult struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Aliases []string `json:"aliases,omitempty"`
}

// Search runs a prefix FTS query over entity names and aliases.
func (d *Database) Search(query string, limit int) ([]SearchResult, error) {
	ftsQuery := buildFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := d.db.Query(
		`SELECT e.name, e.path
		 FROM entities_fts f
		 JOIN entities e ON e.name = f.name
		 WHERE entities_fts MATCH ?
		 ORDER BY rank, e.link_count DESC
		 LIMIT ?`,
		ftsQuery, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search entities: %w", err)
	}
	results, err := scanRows(rows, func(r *sql.Rows) (SearchResult, error) {
		var res SearchResult
		err := r.Scan(&res.Name, &res.Path)
		return res, err
	})
	if err != nil {
		return nil, fmt.Errorf("search entities: %w", err)
	}

	for i := range results {
		e, err := d.Get(results[i].Name)
		if err != nil {
			continue
		}
		results[i].Aliases = e.Aliases()
	}
	return results, nil
}

// buildFTSQuery turns free text into a safe FTS5 MATCH expression:
// each term is quoted (doubling embedded quotes) and prefix-matched.
func buildFTSQuery(query string) string {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ReplaceAll(term, `"`, `""`)
		quoted = append(quoted, `"`+term+`"*`)
	}
	return strings.Join(quoted, " ")
}
