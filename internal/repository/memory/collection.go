// Package memory provides the in-memory repositories backing every
// collection in the system. Stores are seeded with fixture data and guarded
// by an RWMutex; nothing is durable across restarts.
package memory

import (
	"sync"

	"github.com/medhq/hms-api/internal/repository"
)

// collection is an order-preserving map of records keyed by ID. List always
// returns records in insertion order, which is what keeps filtering stable
// downstream.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idx   map[string]int
	keyOf func(T) string
}

func newCollection[T any](keyOf func(T) string, seed []T) *collection[T] {
	c := &collection[T]{
		idx:   make(map[string]int, len(seed)),
		keyOf: keyOf,
	}
	for _, item := range seed {
		c.idx[keyOf(item)] = len(c.items)
		c.items = append(c.items, item)
	}
	return c
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pos, ok := c.idx[id]; ok {
		return c.items[pos], nil
	}
	var zero T
	return zero, repository.ErrNotFound
}

func (c *collection[T]) insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.keyOf(item)
	if _, exists := c.idx[id]; exists {
		return repository.ErrAlreadyExists
	}
	c.idx[id] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

func (c *collection[T]) update(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.idx[c.keyOf(item)]
	if !ok {
		return repository.ErrNotFound
	}
	c.items[pos] = item
	return nil
}

func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.idx[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.idx, id)
	for i := pos; i < len(c.items); i++ {
		c.idx[c.keyOf(c.items[i])] = i
	}
	return nil
}

// removeIf drops every record matching pred and returns how many were
// removed. Surviving records keep their relative order.
func (c *collection[T]) removeIf(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if pred(item) {
			delete(c.idx, c.keyOf(item))
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	for i, item := range c.items {
		c.idx[c.keyOf(item)] = i
	}
	return removed
}

// mutate applies fn to every record under the write lock.
func (c *collection[T]) mutate(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		fn(&c.items[i])
	}
}
