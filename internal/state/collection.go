// Package state provides a small synchronized collection used wherever
// the server keeps a reloading in-memory copy of remote data (the
// reference cache, the diagnosis history view). It encodes the rules
// the rest of the code relies on: loads carry a monotonically
// increasing token and a completed load is applied only if its token
// is still the latest issued, created items go to the head, a failed
// load keeps the previous items in place.
package state

import "sync"

type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	idOf    func(T) string
	token   uint64
	pending int
	errMsg  string
}

func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// BeginLoad marks a load in flight and returns its token.
func (c *Collection[T]) BeginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	c.pending++
	return c.token
}

// CompleteLoad applies a finished load. The result is discarded when a
// newer load has been issued since (the stale response must not
// clobber the fresher one). On error the previous items stay in place
// and only the error message is recorded.
func (c *Collection[T]) CompleteLoad(token uint64, items []T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending > 0 {
		c.pending--
	}
	if token != c.token {
		return false
	}
	if err != nil {
		c.errMsg = err.Error()
		return false
	}
	c.items = items
	c.errMsg = ""
	return true
}

// Prepend puts item at the head of the collection.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the entity with the same id for item. The slice is
// rebuilt, never mutated in place.
func (c *Collection[T]) Replace(item T) bool {
	id := c.idOf(item)
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			next := make([]T, len(c.items))
			copy(next, c.items)
			next[i] = item
			c.items = next
			return true
		}
	}
	return false
}

// Remove drops the entity with the given id.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Truncate caps the collection to its n most recent (head) entries.
func (c *Collection[T]) Truncate(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) > n {
		c.items = c.items[:n:n]
	}
}

// Items returns a snapshot copy.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loading reports whether any load is still in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pending > 0
}

// Err returns the last load error message, empty when the last applied
// load succeeded.
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}
