package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	resp      *StoredResponse
	expiresAt time.Time
}

// MemoryStore is the single-instance fallback used when REDIS_ADDR is unset.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ IdempotencyStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live(key); ok {
		return false, nil
	}
	s.entries[key] = memoryEntry{expiresAt: s.now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, resp StoredResponse, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := resp
	s.entries[key] = memoryEntry{resp: &r, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (StoredResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		return StoredResponse{}, false, nil
	}
	if e.resp == nil {
		return StoredResponse{}, true, ErrKeyInFlight
	}
	return *e.resp, true, nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// live returns the entry for key, evicting it when expired. Caller holds mu.
func (s *MemoryStore) live(key string) (memoryEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}
