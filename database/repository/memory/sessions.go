package memoryRepo

import (
	"context"
	"sync"
	"time"
)

// SessionStore implements auth.SessionStore.
type SessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	// Err, when set, is returned by every call.
	Err error
}

func NewSessionStore() *SessionStore {
	return &SessionStore{revoked: make(map[string]time.Time)}
}

func (s *SessionStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if s.Err != nil {
		return s.Err
	}
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *SessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}

func (s *SessionStore) Ping(context.Context) error {
	return s.Err
}
