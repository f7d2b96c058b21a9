package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps documents in a map. Used by tests; it round-trips
// through JSON so it catches the same marshaling mistakes the real store
// would.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string

	// FailSaves makes every Save return an error, for crash-window tests.
	FailSaves bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Load(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

func (s *MemoryStore) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves {
		return fmt.Errorf("save %s: store unavailable", key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = string(data)
	return nil
}
