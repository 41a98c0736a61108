package layout

import "sync"

// Store is the durable key-value backend a layout engine persists to.
// Keys are caller-supplied dashboard identifiers; values are JSON
// layout blobs. A store entry is a single-writer resource with
// last-write-wins semantics; the engine does no cross-writer
// coordination.
type Store interface {
	// Get returns the stored value for key, or false if absent.
	Get(key string) (string, bool)
	// Set replaces the stored value for key.
	Set(key, value string) error
}

// MemStore is an in-memory Store, used in tests and as a fallback when
// no database is available.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
