package compare

import (
	"context"
	"sync"
)

// MemoryStore is the in-process Store.
type MemoryStore struct {
	mu   sync.Mutex
	sets map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]string)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sets[userID]...), nil
}

func (s *MemoryStore) Add(_ context.Context, userID, recordID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := add(s.sets[userID], recordID)
	if err != nil {
		return append([]string(nil), ids...), err
	}
	s.sets[userID] = ids
	return append([]string(nil), ids...), nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, userID)
	return nil
}
