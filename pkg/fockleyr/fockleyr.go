// Package fockleyr is the dictionary indexing facade: it walks a parsed
// entry tree, materializes each entry's tags and possible words, and makes
// entries resolvable by any of their surface forms through a store.
package fockleyr

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/entry"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/store"
)

// Fockleyr is the main indexing engine facade.
type Fockleyr struct {
	store store.Store
}

// Options configures a Fockleyr instance.
type Options struct {
	Store store.Store
}

// New creates a Fockleyr instance with the given dependencies.
func New(opts Options) *Fockleyr {
	return &Fockleyr{store: opts.Store}
}

// Close cleanly shuts down the instance.
func (f *Fockleyr) Close() error {
	return f.store.Close()
}

// IndexTree walks the given root entries depth-first in document order and
// upserts one record per entry with its tags and possible words
// materialized. Entry IDs are stable across runs, so re-indexing the same
// page replaces prior rows instead of duplicating them. It returns the
// number of entries indexed.
func (f *Fockleyr) IndexTree(ctx context.Context, roots []*entry.Entry) (int, error) {
	count := 0
	var walk func(e *entry.Entry, parentID string) error
	walk = func(e *entry.Entry, parentID string) error {
		id := entryID(count, e.RawWord)

		rec := store.IndexedEntry{
			ID:         id,
			ParentID:   parentID,
			Word:       e.Word(),
			Definition: e.DefinitionText(),
			RawWord:    e.RawWord,
			Words:      e.PossibleWords(),
		}
		for _, t := range e.Tags() {
			rec.Tags = append(rec.Tags, string(t))
		}

		if err := f.store.UpsertEntry(ctx, rec); err != nil {
			return err
		}
		count++

		for _, child := range e.Children() {
			if err := walk(child, id); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range roots {
		if err := walk(root, ""); err != nil {
			return count, err
		}
	}
	return count, nil
}

// Lookup resolves a surface form to the entries it indexes to.
func (f *Fockleyr) Lookup(ctx context.Context, word string) ([]store.IndexedEntry, error) {
	return f.store.LookupWord(ctx, word)
}

// entryID derives a stable identifier from an entry's document position and
// raw heading, ULID-encoded for compact lexicographic keys.
func entryID(pos int, rawWord string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d\x00%s", pos, rawWord)))
	var id ulid.ULID
	copy(id[:], sum[:])
	return id.String()
}
