// Package store defines the persistence surface for the possible-word
// index: one record per parsed entry, looked up by any of its surface
// forms.
package store

import "context"

// Store persists indexed entries and resolves surface forms back to them.
// Implementations must be safe for concurrent use.
type Store interface {
	Close() error

	// UpsertEntry inserts or replaces an entry record, keyed by ID.
	UpsertEntry(ctx context.Context, e IndexedEntry) error

	// GetEntry returns the entry with the given ID.
	GetEntry(ctx context.Context, id string) (IndexedEntry, bool, error)

	// LookupWord returns every entry one of whose possible words equals
	// word, in insertion order.
	LookupWord(ctx context.Context, word string) ([]IndexedEntry, error)

	// Children returns the entries whose parent is the given ID, in
	// insertion (document) order.
	Children(ctx context.Context, parentID string) ([]IndexedEntry, error)
}

// IndexedEntry is the stored form of one parsed entry.
type IndexedEntry struct {
	ID         string // ULID, assigned at indexing time
	ParentID   string // "" for roots
	Word       string // decoded headword
	Definition string // decoded definition text, "" if absent
	RawWord    string // original headword markup, verbatim
	Tags       []string
	Words      []string // possible words, deduplicated, document order
}
