package registry

import (
	"sync"
)

// Entry is the insertion-ordered list of values registered under one key
type Entry[V any] struct {
	mu    sync.RWMutex
	items []V
}

// NewEntry creates an empty Entry
func NewEntry[V any]() *Entry[V] {
	return &Entry[V]{}
}

// Append adds a value to the end of the entry and returns its position
func (e *Entry[V]) Append(item V) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = append(e.items, item)
	return len(e.items) - 1
}

// AppendWith builds the value from its position while holding the entry
// lock, so the position recorded inside the value is exact.
func (e *Entry[V]) AppendWith(build func(pos int) V) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos := len(e.items)
	e.items = append(e.items, build(pos))
	return pos
}

// Snapshot returns the values registered so far, in insertion order.
// The returned slice is capped at its length, so later appends never
// become visible through it and callers must not write to it.
func (e *Entry[V]) Snapshot() []V {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n := len(e.items)
	return e.items[:n:n]
}

// Len returns the number of values in the entry
func (e *Entry[V]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.items)
}

// Table maps keys to append-only entries
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*Entry[V]
	keys    []K
}

// New creates a new Table instance
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[K]*Entry[V]),
	}
}

// Append adds a value under key, creating the entry if absent.
// It returns the value's position within its entry.
func (t *Table[K, V]) Append(key K, item V) int {
	return t.entry(key).Append(item)
}

// AppendWith is Append for values that record their own position
func (t *Table[K, V]) AppendWith(key K, build func(pos int) V) int {
	return t.entry(key).AppendWith(build)
}

func (t *Table[K, V]) entry(key K) *Entry[V] {
	t.mu.RLock()
	e, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		return e
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another writer may have created it between the two locks
	if e, ok := t.entries[key]; ok {
		return e
	}
	e = NewEntry[V]()
	t.entries[key] = e
	t.keys = append(t.keys, key)
	return e
}

// Lookup returns the entry registered under key
func (t *Table[K, V]) Lookup(key K) (*Entry[V], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[key]
	return e, ok
}

// Get returns a snapshot of the values registered under key
func (t *Table[K, V]) Get(key K) ([]V, bool) {
	e, ok := t.Lookup(key)
	if !ok {
		return nil, false
	}
	return e.Snapshot(), true
}

// Has checks if any value is registered under key
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Keys returns all keys in the order their entries were created
func (t *Table[K, V]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]K, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Len returns the number of keys
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Count returns the number of values across all entries
func (t *Table[K, V]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := 0
	for _, e := range t.entries {
		total += e.Len()
	}
	return total
}
