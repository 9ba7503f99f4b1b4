// Package state provides independently owned, mutex-guarded value cells.
//
// A Cell has exactly one owner that writes to it through Set or Update;
// everyone else reads copies through Get. There is no shared global state
// object: each component holds the cells it owns.
package state

import "sync"

// Cell holds one value of type T.
type Cell[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
	clone   func(T) T
}

// NewCell creates a cell with an initial value. clone, when non-nil, is
// applied on every Get and Set so slices and pointers are never aliased.
func NewCell[T any](initial T, clone func(T) T) *Cell[T] {
	c := &Cell[T]{clone: clone}
	c.value = c.copy(initial)
	return c
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copy(c.value)
}

// Set replaces the value wholesale.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = c.copy(v)
	c.version++
}

// Update applies fn to the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = c.copy(fn(c.value))
	c.version++
}

// Version counts writes; zero means never written since creation.
func (c *Cell[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Cell[T]) copy(v T) T {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}
