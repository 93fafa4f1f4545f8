package catalog

import "sync"

// Store owns the current catalog for the lifetime of the process. Uploads
// replace the catalog wholesale; there is no incremental merge, so readers
// observe either the previous fully-formed catalog or the new one, never a
// partially built state.
type Store struct {
	mu      sync.RWMutex
	catalog *Catalog
	hasData bool
}

// NewStore returns a store holding an empty catalog with no data loaded.
func NewStore() *Store {
	return &Store{catalog: New()}
}

// Replace swaps in a new catalog and marks the store as loaded.
func (s *Store) Replace(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
	s.hasData = true
}

// Reset returns the store to its initial state: empty catalog, no data.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = New()
	s.hasData = false
}

// Snapshot returns the current catalog and whether data has been loaded.
func (s *Store) Snapshot() (*Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.hasData
}

// HasData reports whether an upload has populated the store.
func (s *Store) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasData
}

// Find looks up a model by name in the current catalog.
func (s *Store) Find(name string) (*PhoneModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Find(name)
}
