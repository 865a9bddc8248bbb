// internal/pkg/session/store.go
package session

import (
	"context"
	"sync"
)

// Store persists the bearer token and the cached identity for one browser
// session. Both live under a single key with a single lifecycle: written
// together, cleared together. Reads of an absent session return empty
// values, not errors.
type Store interface {
	Set(ctx context.Context, sid, token string, identity *CachedIdentity) error
	Token(ctx context.Context, sid string) (string, error)
	Identity(ctx context.Context, sid string) (*CachedIdentity, error)
	Clear(ctx context.Context, sid string) error
}

type slot struct {
	token    string
	identity *CachedIdentity
}

// MemoryStore is an in-process Store used in tests and single-instance
// deployments without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]slot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]slot)}
}

func (s *MemoryStore) Set(_ context.Context, sid, token string, identity *CachedIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sid] = slot{token: token, identity: identity}
	return nil
}

func (s *MemoryStore) Token(_ context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[sid].token, nil
}

func (s *MemoryStore) Identity(_ context.Context, sid string) (*CachedIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[sid].identity, nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, sid)
	return nil
}
