package view

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

type State[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

type Resource[T any] struct {
	key   string
	store *Store[T]

	// flights are keyed by epoch, which moves on every invalidation, so a
	// Load after a write never joins a fetch that started before it
	group singleflight.Group

	mu     sync.Mutex
	issued uint64
	epoch  uint64
	stale  bool
	state  State[T]
}

func (r *Resource[T]) Key() string {
	return r.key
}

func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Resource[T]) current() (data *T, fresh bool, epoch uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Data, r.state.Data != nil && !r.stale, r.epoch
}

func (r *Resource[T]) markStale() {
	r.mu.Lock()
	r.stale = true
	r.epoch++
	r.mu.Unlock()
}

// Load returns the current data, fetching it first when there is none yet
// or it was invalidated. Concurrent Loads share a single fetch; a caller
// whose ctx ends stops waiting without cancelling the shared fetch.
func (r *Resource[T]) Load(ctx context.Context) (*T, error) {
	data, ok, epoch := r.current()
	if ok {
		return data, nil
	}

	ch := r.group.DoChan(strconv.FormatUint(epoch, 10), func() (any, error) {
		// a fetch may have finished between the check above and joining
		if data, ok, _ := r.current(); ok {
			return data, nil
		}
		return r.Refetch(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		out, ok := res.Val.(*T)
		if !ok {
			return nil, fmt.Errorf("view: unexpected value %T for %q", res.Val, r.key)
		}
		return out, nil
	}
}

// Refetch always runs the loader again and returns what it produced. The
// result replaces the shared state only if no newer Refetch was issued in
// the meantime. A failed fetch keeps the previous data and records Err.
func (r *Resource[T]) Refetch(ctx context.Context) (*T, error) {
	r.mu.Lock()
	r.issued++
	token := r.issued
	r.stale = false
	r.state.Loading = true
	r.mu.Unlock()

	data, err := r.store.load(ctx, r.key)

	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.issued {
		return data, err
	}
	r.state.Loading = false
	r.state.Err = err
	if err == nil {
		r.state.Data = data
	}
	return data, err
}
