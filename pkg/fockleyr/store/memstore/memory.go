// Package memstore is an in-memory store.Store for tests and small corpora.
package memstore

import (
	"context"
	"sync"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu        sync.RWMutex
	order     []string // insertion order of IDs
	entries   map[string]store.IndexedEntry
	wordIndex map[string][]string // possible word -> entry IDs, insertion order
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		entries:   make(map[string]store.IndexedEntry),
		wordIndex: make(map[string][]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertEntry inserts or replaces an entry, keyed by ID.
func (s *Store) UpsertEntry(ctx context.Context, e store.IndexedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[e.ID]; ok {
		for _, w := range old.Words {
			s.wordIndex[w] = removeID(s.wordIndex[w], e.ID)
		}
	} else {
		s.order = append(s.order, e.ID)
	}

	s.entries[e.ID] = copyEntry(e)
	for _, w := range e.Words {
		s.wordIndex[w] = append(s.wordIndex[w], e.ID)
	}
	return nil
}

// GetEntry returns the entry with the given ID.
func (s *Store) GetEntry(ctx context.Context, id string) (store.IndexedEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return store.IndexedEntry{}, false, nil
	}
	return copyEntry(e), true, nil
}

// LookupWord returns every entry indexed under the given surface form.
func (s *Store) LookupWord(ctx context.Context, word string) ([]store.IndexedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.wordIndex[word]
	out := make([]store.IndexedEntry, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.entries[id]; ok {
			out = append(out, copyEntry(e))
		}
	}
	return out, nil
}

// Children returns the entries whose ParentID equals parentID.
func (s *Store) Children(ctx context.Context, parentID string) ([]store.IndexedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.IndexedEntry
	for _, id := range s.order {
		if e := s.entries[id]; e.ParentID == parentID {
			out = append(out, copyEntry(e))
		}
	}
	return out, nil
}

func copyEntry(e store.IndexedEntry) store.IndexedEntry {
	out := e
	out.Tags = append([]string(nil), e.Tags...)
	out.Words = append([]string(nil), e.Words...)
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
