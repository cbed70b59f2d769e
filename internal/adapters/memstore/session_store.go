// Package memstore provides an in-memory session store used when no Redis
// backend is configured. Sessions do not survive process restarts, which is
// acceptable for guest-only deployments and local development.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	redisstore "github.com/ArturCreativeLab/studio-api/internal/adapters/redis"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
)

// SessionStore keeps sessions in a process-local map.
// Expired entries are dropped lazily on Get.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

// Save stores a session, rejecting empty IDs and already-expired sessions.
func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !sess.ExpiresAt.After(time.Now()) {
		return errors.New("session is expired")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get fetches a session by ID, treating expired entries as missing.
func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, redisstore.ErrNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, redisstore.ErrNotFound
	}

	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domainauth.Session{}, redisstore.ErrNotFound
	}

	return sess, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
