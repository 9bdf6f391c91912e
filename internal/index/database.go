// Package index persists the vault's entity catalog in SQLite: names,
// paths, aliases, link recency, and an FTS5 search surface.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pcreed/magpie/internal/entity"
	"github.com/pcreed/magpie/internal/vault"
)

// schemaVersion bumps whenever the table layout changes; incompatible
// databases are deleted and rebuilt rather than migrated.
const schemaVersion = "1"

var (
	// ErrEntityNotFound indicates the requested entity is not indexed.
	ErrEntityNotFound = errors.New("entity not found in index")
	// ErrIndexLocked indicates another process is rebuilding the index.
	ErrIndexLocked = errors.New("index is locked for rebuild")
)

// Database is the SQLite index handle.
type Database struct {
	db *sql.DB
}

// Open opens or creates the index database under the vault's data dir.
func Open(vaultPath string) (*Database, error) {
	dbDir := filepath.Join(vaultPath, vault.DataDir)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create %s directory: %w", vault.DataDir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dbDir, "index.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// OpenWithRebuild opens the database, recreating it when the on-disk
// schema is incompatible. Returns (database, wasRebuilt, error).
func OpenWithRebuild(vaultPath string) (*Database, bool, error) {
	dbDir := filepath.Join(vaultPath, vault.DataDir)
	dbPath := filepath.Join(dbDir, "index.db")

	lock, err := acquireIndexLock(dbDir)
	if err != nil {
		return nil, false, err
	}
	defer lock.Release()

	if _, err := os.Stat(dbPath); err == nil {
		db, err := sql.Open("sqlite", dbPath)
		if err == nil {
			compatible := isSchemaCompatible(db)
			db.Close()
			if !compatible {
				if err := removeDatabaseFiles(dbPath); err != nil {
					return nil, false, err
				}
				fresh, err := Open(vaultPath)
				return fresh, true, err
			}
		}
	}

	db, err := Open(vaultPath)
	return db, false, err
}

// Close closes the underlying database.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entities (
			name TEXT PRIMARY KEY COLLATE NOCASE,
			path TEXT NOT NULL,
			link_count INTEGER NOT NULL DEFAULT 0,
			last_linked_at INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS aliases (
			alias TEXT NOT NULL COLLATE NOCASE,
			entity_name TEXT NOT NULL REFERENCES entities(name) ON DELETE CASCADE,
			PRIMARY KEY (alias, entity_name)
		)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS entities_fts USING fts5(
			name, aliases
		)`,
	}
	for _, stmt := range stmts {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
	}

	_, err := d.db.Exec(
		`INSERT INTO meta (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		schemaVersion,
	)
	if err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

func isSchemaCompatible(db *sql.DB) bool {
	var version string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	return err == nil && version == schemaVersion
}

func removeDatabaseFiles(dbPath string) error {
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

type indexLock struct {
	file *os.File
}

func acquireIndexLock(dbDir string) (*indexLock, error) {
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create %s directory: %w", vault.DataDir, err)
	}

	lockFile, err := os.OpenFile(filepath.Join(dbDir, "index.lock"), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open index lock: %w", err)
	}

	if err := lockFileExclusiveNonBlocking(lockFile); err != nil {
		lockFile.Close()
		if isWouldBlockError(err) {
			return nil, ErrIndexLocked
		}
		return nil, fmt.Errorf("acquire index lock: %w", err)
	}
	return &indexLock{file: lockFile}, nil
}

func (l *indexLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}

// Rebuild replaces the whole entity catalog with the scanner's output.
// Link recency for entities that survive the rebuild is preserved.
func (d *Database) Rebuild(entities []entity.Entity) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer tx.Rollback()

	type recencyRow struct {
		count sql.NullInt64
		last  sql.NullInt64
	}
	recency := make(map[string]recencyRow)
	rows, err := tx.Query(`SELECT name, link_count, last_linked_at FROM entities`)
	if err != nil {
		return fmt.Errorf("load recency: %w", err)
	}
	for rows.Next() {
		var name string
		var row recencyRow
		if err := rows.Scan(&name, &row.count, &row.last); err != nil {
			rows.Close()
			return fmt.Errorf("load recency: %w", err)
		}
		recency[normKey(name)] = row
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("load recency: %w", err)
	}
	rows.Close()

	for _, stmt := range []string{
		`DELETE FROM entities`,
		`DELETE FROM aliases`,
		`DELETE FROM entities_fts`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear index: %w", err)
		}
	}

	for _, e := range entities {
		count, last := sql.NullInt64{Int64: 0, Valid: true}, sql.NullInt64{}
		if kept, ok := recency[normKey(e.Name())]; ok {
			count, last = kept.count, kept.last
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO entities (name, path, link_count, last_linked_at) VALUES (?, ?, ?, ?)`,
			e.Name(), e.Path(), count, last,
		); err != nil {
			return fmt.Errorf("insert entity %s: %w", e.Name(), err)
		}
		for _, alias := range e.Aliases() {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO aliases (alias, entity_name) VALUES (?, ?)`,
				alias, e.Name(),
			); err != nil {
				return fmt.Errorf("insert alias %s: %w", alias, err)
			}
		}
		if _, err := tx.Exec(
			`INSERT INTO entities_fts (name, aliases) VALUES (?, ?)`,
			e.Name(), joinAliases(e.Aliases()),
		); err != nil {
			return fmt.Errorf("index entity %s: %w", e.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

// All loads the full entity catalog for an annotation pass.
func (d *Database) All() ([]entity.Entity, error) {
	aliasRows, err := d.db.Query(`SELECT alias, entity_name FROM aliases ORDER BY alias`)
	if err != nil {
		return nil, fmt.Errorf("load aliases: %w", err)
	}
	type aliasRow struct{ alias, name string }
	aliases, err := scanRows(aliasRows, func(r *sql.Rows) (aliasRow, error) {
		var row aliasRow
		err := r.Scan(&row.alias, &row.name)
		return row, err
	})
	if err != nil {
		return nil, fmt.Errorf("load aliases: %w", err)
	}
	byEntity := make(map[string][]string)
	for _, a := range aliases {
		key := normKey(a.name)
		byEntity[key] = append(byEntity[key], a.alias)
	}

	rows, err := d.db.Query(`SELECT name, path FROM entities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}
	return scanRows(rows, func(r *sql.Rows) (entity.Entity, error) {
		var name, path string
		if err := r.Scan(&name, &path); err != nil {
			return entity.Entity{}, err
		}
		return entity.WithAliases(name, path, byEntity[normKey(name)]), nil
	})
}

// Get returns one entity by exact (case-insensitive) name.
func (d *Database) Get(name string) (entity.Entity, error) {
	var gotName, path string
	err := d.db.QueryRow(`SELECT name, path FROM entities WHERE name = ?`, name).
		Scan(&gotName, &path)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		return entity.Entity{}, fmt.Errorf("load entity %s: %w", name, err)
	}

	rows, err := d.db.Query(`SELECT alias FROM aliases WHERE entity_name = ? ORDER BY alias`, gotName)
	if err != nil {
		return entity.Entity{}, fmt.Errorf("load aliases for %s: %w", name, err)
	}
	aliases, err := scanRows(rows, func(r *sql.Rows) (string, error) {
		var a string
		err := r.Scan(&a)
		return a, err
	})
	if err != nil {
		return entity.Entity{}, fmt.Errorf("load aliases for %s: %w", name, err)
	}
	return entity.WithAliases(gotName, path, aliases), nil
}

// Count returns the number of indexed entities.
func (d *Database) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM entities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entities: %w", err)
	}
	return n, nil
}

// RecordLinks bumps link counts and recency for entities that just
// received a link.
func (d *Database) RecordLinks(names []string, at time.Time) error {
	if len(names) == 0 {
		return nil
	}
	placeholders, args := inClauseArgs(names)
	args = append([]any{at.Unix()}, args...)
	_, err := d.db.Exec(
		`UPDATE entities
		 SET link_count = link_count + 1, last_linked_at = ?
		 WHERE name IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("record links: %w", err)
	}
	return nil
}
