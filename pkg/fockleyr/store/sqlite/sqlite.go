// Package sqlite implements store.Store on SQLite via modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database at path with WAL mode enabled and the index
// schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL mode for better concurrency between indexing and lookup.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	parent_id TEXT NOT NULL DEFAULT '',
	word TEXT NOT NULL,
	definition TEXT NOT NULL DEFAULT '',
	raw_word TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entry_tags (
	entry_id TEXT NOT NULL,
	tag TEXT NOT NULL,
	pos INTEGER NOT NULL,
	UNIQUE(entry_id, tag),
	FOREIGN KEY(entry_id) REFERENCES entries(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS entry_words (
	entry_id TEXT NOT NULL,
	word TEXT NOT NULL,
	pos INTEGER NOT NULL,
	UNIQUE(entry_id, word),
	FOREIGN KEY(entry_id) REFERENCES entries(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entry_words_word ON entry_words(word);
CREATE INDEX IF NOT EXISTS idx_entries_parent ON entries(parent_id);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertEntry inserts or replaces an entry and its tag/word rows in one
// transaction.
func (s *sqliteStore) UpsertEntry(ctx context.Context, e store.IndexedEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entries (id, parent_id, word, definition, raw_word)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			parent_id = excluded.parent_id,
			word = excluded.word,
			definition = excluded.definition,
			raw_word = excluded.raw_word`,
		e.ID, e.ParentID, e.Word, e.Definition, e.RawWord)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entry_tags WHERE entry_id = ?", e.ID); err != nil {
		return err
	}
	for i, tag := range e.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO entry_tags (entry_id, tag, pos) VALUES (?, ?, ?)",
			e.ID, tag, i); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entry_words WHERE entry_id = ?", e.ID); err != nil {
		return err
	}
	for i, w := range e.Words {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO entry_words (entry_id, word, pos) VALUES (?, ?, ?)",
			e.ID, w, i); err != nil {
			return fmt.Errorf("insert word: %w", err)
		}
	}

	return tx.Commit()
}

// GetEntry returns the entry with the given ID.
func (s *sqliteStore) GetEntry(ctx context.Context, id string) (store.IndexedEntry, bool, error) {
	var e store.IndexedEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, parent_id, word, definition, raw_word
		FROM entries WHERE id = ?`, id).
		Scan(&e.ID, &e.ParentID, &e.Word, &e.Definition, &e.RawWord)
	if err == sql.ErrNoRows {
		return store.IndexedEntry{}, false, nil
	}
	if err != nil {
		return store.IndexedEntry{}, false, err
	}

	if err := s.loadLists(ctx, &e); err != nil {
		return store.IndexedEntry{}, false, err
	}
	return e, true, nil
}

// LookupWord returns every entry indexed under word, in insertion order.
func (s *sqliteStore) LookupWord(ctx context.Context, word string) ([]store.IndexedEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.parent_id, e.word, e.definition, e.raw_word
		FROM entries e
		JOIN entry_words w ON w.entry_id = e.id
		WHERE w.word = ?
		ORDER BY e.rowid`, word)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collect(ctx, rows)
}

// Children returns the entries whose parent is the given ID.
func (s *sqliteStore) Children(ctx context.Context, parentID string) ([]store.IndexedEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent_id, word, definition, raw_word
		FROM entries WHERE parent_id = ?
		ORDER BY rowid`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collect(ctx, rows)
}

func (s *sqliteStore) collect(ctx context.Context, rows *sql.Rows) ([]store.IndexedEntry, error) {
	var out []store.IndexedEntry
	for rows.Next() {
		var e store.IndexedEntry
		if err := rows.Scan(&e.ID, &e.ParentID, &e.Word, &e.Definition, &e.RawWord); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := s.loadLists(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *sqliteStore) loadLists(ctx context.Context, e *store.IndexedEntry) error {
	tagRows, err := s.db.QueryContext(ctx,
		"SELECT tag FROM entry_tags WHERE entry_id = ? ORDER BY pos", e.ID)
	if err != nil {
		return err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var tag string
		if err := tagRows.Scan(&tag); err != nil {
			return err
		}
		e.Tags = append(e.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return err
	}

	wordRows, err := s.db.QueryContext(ctx,
		"SELECT word FROM entry_words WHERE entry_id = ? ORDER BY pos", e.ID)
	if err != nil {
		return err
	}
	defer wordRows.Close()
	for wordRows.Next() {
		var w string
		if err := wordRows.Scan(&w); err != nil {
			return err
		}
		e.Words = append(e.Words, w)
	}
	return wordRows.Err()
}
