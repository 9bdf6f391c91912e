// Package audit provides an append-only operation log for annotation
// runs. Every entry carries the session (correlation) id of the run
// that produced it; the id is always passed in by the caller rather
// than held as process state, so concurrent runs stay distinguishable.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is a single operation log record.
type Entry struct {
	Timestamp time.Time      `json:"ts"`
	Session   string         `json:"session"`
	Operation string         `json:"op"` // link, resolve, scan
	File      string         `json:"file,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// Logger appends entries to the vault's operation log.
type Logger struct {
	path    string
	enabled bool
	mu      sync.Mutex
}

// New creates a logger for the given vault. If enabled is false the
// logger is a no-op.
func New(vaultPath string, enabled bool) *Logger {
	if !enabled {
		return &Logger{enabled: false}
	}
	return &Logger{
		path:    filepath.Join(vaultPath, ".magpie", "audit.log"),
		enabled: true,
	}
}

// Log appends an entry, setting the timestamp if unset.
func (l *Logger) Log(entry Entry) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create audit directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(string(data) + "\n"); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

// LogLink records an annotation pass over one file.
func (l *Logger) LogLink(session, file string, linksAdded int, linked []string) error {
	extra := map[string]any{"links_added": linksAdded}
	if len(linked) > 0 {
		extra["entities"] = linked
	}
	return l.Log(Entry{Session: session, Operation: "link", File: file, Extra: extra})
}

// LogResolve records an alias-resolution pass over one file.
func (l *Logger) LogResolve(session, file string, rewritten int) error {
	return l.Log(Entry{
		Session:   session,
		Operation: "resolve",
		File:      file,
		Extra:     map[string]any{"links_rewritten": rewritten},
	})
}

// LogScan records an entity index rebuild.
func (l *Logger) LogScan(session string, entityCount int) error {
	return l.Log(Entry{
		Session:   session,
		Operation: "scan",
		Extra:     map[string]any{"entities": entityCount},
	})
}
