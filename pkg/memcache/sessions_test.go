package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStore_PutGet(t *testing.T) {
	s := NewSessionStore[string](time.Minute)
	s.Put("a", "hello")

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore[int](10 * time.Millisecond)
	s.Put("a", 1)

	time.Sleep(25 * time.Millisecond)

	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestSessionStore_Delete(t *testing.T) {
	s := NewSessionStore[int](time.Minute)
	s.Put("a", 1)
	s.Delete("a")

	_, ok := s.Get("a")
	assert.False(t, ok)
}
