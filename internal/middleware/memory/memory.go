// Package memory provides an in-memory ttl store for the cache middleware.
package memory

import (
	"sync"
	"time"
)

type record struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu sync.RWMutex
	mm map[string]record
}

// NewStorage creates a storage and starts its eviction loop.
func NewStorage() *Storage {
	s := &Storage{mm: make(map[string]record)}
	go s.evictLoop()

	return s
}

func (s *Storage) evictLoop() {
	for range time.Tick(time.Minute) {
		now := time.Now()

		s.mu.Lock()
		for k, v := range s.mm {
			if v.expiresAt.Before(now) {
				delete(s.mm, k)
			}
		}
		s.mu.Unlock()
	}
}

// Get returns nil for missing or expired keys.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.mm[key]
	if !ok || r.expiresAt.Before(time.Now()) {
		return nil
	}

	return r.content
}

// Set ...
func (s *Storage) Set(key string, content []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mm[key] = record{content: content, expiresAt: time.Now().Add(ttl)}
}
