package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is the fallback SlotStore used when the SQLite file cannot be
// opened. Slots survive for the process lifetime only.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Read(_ context.Context, key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.slots[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *MemoryStore) Write(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
