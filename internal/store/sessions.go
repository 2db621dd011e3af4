// Package store keeps the live registries behind the API: sessions (memory
// or Redis) and rooms (always in process memory, since each room is mutated
// under its own mutex by the request that holds it).
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/thereayou/spyfall-lite/internal/models"
)

var ErrNotFound = errors.New("not found")

// SessionStore resolves opaque player ids into sessions. Get refreshes the
// session's lastSeen (and, for Redis, its TTL) on every successful lookup.
type SessionStore interface {
	Put(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
}

// MemorySessionStore is the default store when no Redis is configured, and
// the one tests use. Sessions live until process restart.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.Session)}
}

func (s *MemorySessionStore) Put(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	session.LastSeen = time.Now().UnixMilli()
	return session, nil
}
