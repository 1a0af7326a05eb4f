package session

import (
	"context"
	"log"
	"sync"
	"time"
)

const defaultJanitorInterval = time.Minute

// MemoryStore is the in-process Store. A background janitor evicts entries
// idle for longer than the TTL so a long-lived process does not accumulate
// state for every user that ever wrote to it.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry

	ttl      time.Duration // 0 = never evict
	Interval time.Duration
}

type memoryEntry struct {
	session Session
	touched time.Time
}

// NewMemoryStore creates a MemoryStore. ttl 0 disables eviction.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		Interval: defaultJanitorInterval,
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(userID).session, nil
}

func (s *MemoryStore) Update(_ context.Context, userID string, mutate func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(userID)
	mutate(&e.session)
	return e.session, nil
}

// entry returns the live entry for userID, creating it with defaults on
// miss. Callers must hold mu.
func (s *MemoryStore) entry(userID string) *memoryEntry {
	e, ok := s.sessions[userID]
	if !ok {
		e = &memoryEntry{session: New()}
		s.sessions[userID] = e
	}
	e.touched = time.Now()
	return e
}

// StartJanitor runs the eviction loop until ctx is cancelled. It should be
// launched as a goroutine; it returns immediately when eviction is disabled.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	log.Printf("session janitor started (ttl=%s interval=%s)", s.ttl, s.Interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("session janitor stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(time.Now()); n > 0 {
				log.Printf("session janitor: evicted %d idle sessions", n)
			}
		}
	}
}

// Sweep evicts every entry idle since before now-ttl and reports how many.
func (s *MemoryStore) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	deadline := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, e := range s.sessions {
		if e.touched.Before(deadline) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
