// Package view keeps one shared, refetchable view of a keyed resource for
// every consumer that currently uses it.
//
// A consumer Acquires the resource for a key and releases it when done;
// the entry lives while at least one consumer holds it. Concurrent Loads
// of an empty resource share one fetch. Every Refetch takes a new token
// and only the newest token issued may replace the state, so a slow old
// response never overwrites a newer one.
package view

import (
	"context"
	"sync"
)

type Loader[T any] func(ctx context.Context, key string) (*T, error)

type Store[T any] struct {
	load Loader[T]

	mu      sync.Mutex
	entries map[string]*entry[T]
}

type entry[T any] struct {
	res  *Resource[T]
	refs int
}

func NewStore[T any](load Loader[T]) *Store[T] {
	return &Store[T]{
		load:    load,
		entries: make(map[string]*entry[T]),
	}
}

// Acquire returns the shared resource for key and a release func. Calling
// release more than once is harmless.
func (s *Store[T]) Acquire(key string) (*Resource[T], func()) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry[T]{res: &Resource[T]{key: key, store: s}}
		s.entries[key] = e
	}
	e.refs++
	s.mu.Unlock()

	var once sync.Once
	return e.res, func() {
		once.Do(func() { s.release(key, e) })
	}
}

func (s *Store[T]) release(key string, e *entry[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.refs--
	if e.refs <= 0 && s.entries[key] == e {
		delete(s.entries, key)
	}
}

// Invalidate marks the resource for key stale so the next Load refetches.
// Keys nobody holds are ignored.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	e, ok := s.entries[key]
	s.mu.Unlock()
	if ok {
		e.res.markStale()
	}
}

// Len is the number of keys currently held by at least one consumer.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
