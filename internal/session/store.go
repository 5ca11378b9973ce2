package session

import (
	"context"
	"sync"
)

// Store persists the upstream bearer token for each console session. The
// token string is the only value a store ever holds; there is no separate
// session object.
type Store interface {
	SetToken(ctx context.Context, sid, token string) error
	// GetToken returns the stored token, or "" when none is stored.
	GetToken(ctx context.Context, sid string) (string, error)
	// ClearToken removes the stored token. Clearing an absent token is a
	// no-op, not an error.
	ClearToken(ctx context.Context, sid string) error
}

// MemoryStore keeps tokens in process memory. Used in tests and as a
// fallback when Redis is not configured.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]string)}
}

// SetToken overwrites any existing token for the session.
func (s *MemoryStore) SetToken(_ context.Context, sid, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = token
	return nil
}

// GetToken returns the stored token or "".
func (s *MemoryStore) GetToken(_ context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[sid], nil
}

// ClearToken removes the token for the session.
func (s *MemoryStore) ClearToken(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	return nil
}
