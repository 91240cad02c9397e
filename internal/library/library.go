// Package library records processed documents in a SQLite database so
// repeat runs and past renames can be inspected later.
package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/render"
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
  id TEXT PRIMARY KEY,
  doi TEXT,
  title TEXT NOT NULL,
  year TEXT NOT NULL,
  venue TEXT,
  names_json TEXT NOT NULL,
  renamed_to TEXT,
  processed_at TEXT NOT NULL
)`

// Entry is one processed document as stored in the library.
type Entry struct {
	ID          string
	DOI         string
	Title       string
	Year        string
	Venue       string
	Names       []string
	RenamedTo   string
	ProcessedAt time.Time
}

// Library is a handle on the documents database.
type Library struct {
	db *sql.DB
}

// Open opens (creating if needed) the library at path.
func Open(path string) (*Library, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing library: %w", err)
	}

	return &Library{db: db}, nil
}

// Close releases the database handle.
func (l *Library) Close() error {
	return l.db.Close()
}

// Record upserts a processed document and reports whether an existing
// entry was replaced. renamedTo is the path the file ended up at, or
// empty when no copy or rename was performed.
func (l *Library) Record(rec *bib.Record, renamedTo string) (updated bool, err error) {
	names, err := json.Marshal(rec.Names())
	if err != nil {
		return false, fmt.Errorf("encoding names: %w", err)
	}

	id := render.Key(rec)
	if err := l.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM documents WHERE id = ?)`,
		id).Scan(&updated); err != nil {
		return false, fmt.Errorf("checking for existing entry: %w", err)
	}

	_, err = l.db.Exec(`INSERT OR REPLACE INTO documents
		(id, doi, title, year, venue, names_json, renamed_to, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		rec.DOI.Value(),
		rec.Title.Value(),
		rec.Year.Value(),
		rec.Venue(),
		string(names),
		renamedTo,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("recording document: %w", err)
	}
	return updated, nil
}

// Recent returns up to limit entries, most recently processed first.
func (l *Library) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(`SELECT id, doi, title, year, venue,
		names_json, renamed_to, processed_at
		FROM documents ORDER BY processed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var names, processedAt string
		if err := rows.Scan(&e.ID, &e.DOI, &e.Title, &e.Year, &e.Venue,
			&names, &e.RenamedTo, &processedAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if err := json.Unmarshal([]byte(names), &e.Names); err != nil {
			return nil, fmt.Errorf("decoding names for %s: %w", e.ID, err)
		}
		if t, err := time.Parse(time.RFC3339, processedAt); err == nil {
			e.ProcessedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
