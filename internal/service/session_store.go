package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"healthquiz/internal/cache"
	"healthquiz/internal/domain"
)

// SessionStore defines where active quiz sessions are parked between
// requests. Sessions are short-lived state, not durable history; stores
// may evict them after their TTL.
type SessionStore interface {
	// Get returns the session with the given ID, or a SESSION_NOT_FOUND
	// domain error when it does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)

	// Put saves the session, overwriting any previous state under its ID.
	Put(ctx context.Context, session *domain.Session) error

	// Delete removes the session. Unknown IDs are not an error.
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	session   *domain.Session
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory. It is the default
// store for single-instance deployments and for tests.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemorySessionStore creates a memory store. A zero ttl keeps sessions
// until they are deleted.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get implements SessionStore. Expired entries are dropped lazily.
func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return entry.session, nil
}

// Put implements SessionStore.
func (s *MemorySessionStore) Put(_ context.Context, session *domain.Session) error {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[session.ID] = memoryEntry{session: session, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

// Delete implements SessionStore.
func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// RedisSessionStore keeps sessions in Redis so multiple API instances can
// share them. Sessions are stored as JSON under cache.SessionKey.
type RedisSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(c domain.Cache, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{cache: c, ttl: ttl}
}

// Get implements SessionStore.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	raw, err := s.cache.Get(ctx, cache.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("failed to load session from cache", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, domain.NewInternalError("failed to decode cached session", err)
	}
	return &session, nil
}

// Put implements SessionStore.
func (s *RedisSessionStore) Put(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to encode session", err)
	}
	if err := s.cache.Set(ctx, cache.SessionKey(session.ID), string(raw), s.ttl); err != nil {
		return domain.NewInternalError("failed to store session in cache", err)
	}
	return nil
}

// Delete implements SessionStore.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.SessionKey(sessionID)); err != nil {
		return domain.NewInternalError("failed to delete session from cache", err)
	}
	return nil
}
