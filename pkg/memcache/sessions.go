package memcache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// SessionStore is an in-memory TTL map. Expired entries are removed lazily
// on read; there is no background janitor.
type SessionStore[T any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry[T]
}

func NewSessionStore[T any](ttl time.Duration) *SessionStore[T] {
	return &SessionStore[T]{
		ttl:  ttl,
		data: make(map[string]entry[T]),
	}
}

func (s *SessionStore[T]) Put(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry[T]{
		value:     value,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *SessionStore[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		var zero T
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		var zero T
		return zero, false
	}
	return e.value, true
}

func (s *SessionStore[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
