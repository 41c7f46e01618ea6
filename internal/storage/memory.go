package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store with the same quota contract as the
// SQLite store. Used by tests and ephemeral (no-persistence) runs.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	quota int
}

// NewMemoryStore returns an empty store enforcing the given per-value quota
// in bytes. A quota of 0 disables the limit.
func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte), quota: quota}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) bool {
	if s.quota > 0 && len(value) > s.quota {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return true
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
