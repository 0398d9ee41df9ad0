package preferences

import (
	"sync"
)

// Store is a string key-value store for persisted preferences.
type Store interface {
	// Get returns the value for key and whether it was set.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Clear drops every stored preference.
	Clear() error
}

// MemoryStore is a concurrency-safe in-memory Store. Values live as long as
// the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]string)
	return nil
}
