// Package memory contains bounded in-memory storage with expiration.
package memory

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const defaultSize = 256

type item struct {
	content    []byte
	expiration time.Time
}

// Storage ...
type Storage struct {
	c   *lru.Cache
	now func() time.Time
}

// NewStorage returns storage keeping at most size entries; least recently used are evicted first.
func NewStorage(size int) *Storage {
	if size <= 0 {
		size = defaultSize
	}

	c, err := lru.New(size)
	if err != nil {
		// lru.New fails on non-positive size only
		panic(err)
	}

	return &Storage{
		c:   c,
		now: time.Now,
	}
}

// Get returns content by key or nil if it's missing or expired.
func (s *Storage) Get(key string) []byte {
	v, ok := s.c.Get(key)
	if !ok {
		return nil
	}

	i := v.(item)
	if s.now().After(i.expiration) {
		s.c.Remove(key)
		return nil
	}

	return i.content
}

// Set ...
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.c.Add(key, item{
		content:    content,
		expiration: s.now().Add(duration),
	})
}
