package index

import (
	"database/sql"
	"strings"
)

// inClauseArgs builds the placeholder list and args for an IN clause.
func inClauseArgs(values []string) (string, []any) {
	placeholders := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		args[i] = v
	}
	return strings.Join(placeholders, ", "), args
}

// scanRows drains rows through scan, closing them and surfacing any
// iteration error.
func scanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func normKey(s string) string {
	return strings.ToLower(s)
}

func joinAliases(aliases []string) string {
	return strings.Join(aliases, " ")
}
