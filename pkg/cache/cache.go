package cache

import (
	"fmt"
	"slices"
	"strings"
)

// Projects a state (or a tree node) onto the key it is cached under.
// Must be pure and deterministic, two different states sharing a key
// are treated as the same state.
type KeyFunc[S any, K comparable] func(S) K

// Memoization store used by the evaluators. Every implementation must be
// first-write-wins: a Put for a key that already holds a value is a no-op.
type ValueCache[S any, V any] interface {
	// Store the value for this state, unless one is already stored
	Put(state S, value V)
	// Get the cached value of this state, if there is one
	Get(state S) (V, bool)
	// Number of stored entries
	Size() int
	// Diagnostic dump of the entries
	String() string
}

// Map-backed cache, keyed by a caller supplied projection.
// Not safe for concurrent use, each evaluator owns its cache.
type InMemory[S any, K comparable, V any] struct {
	values map[K]V
	keyOf  KeyFunc[S, K]
}

func NewInMemory[S any, K comparable, V any](keyOf KeyFunc[S, K]) *InMemory[S, K, V] {
	return &InMemory[S, K, V]{
		values: make(map[K]V),
		keyOf:  keyOf,
	}
}

func (c *InMemory[S, K, V]) Put(state S, value V) {
	key := c.keyOf(state)
	if _, ok := c.values[key]; ok {
		return
	}
	c.values[key] = value
}

func (c *InMemory[S, K, V]) Get(state S) (V, bool) {
	v, ok := c.values[c.keyOf(state)]
	return v, ok
}

func (c *InMemory[S, K, V]) Size() int {
	return len(c.values)
}

// Entries sorted by the textual form of their keys, so the output is stable
func (c *InMemory[S, K, V]) String() string {
	lines := make([]string, 0, len(c.values))
	for k, v := range c.values {
		lines = append(lines, fmt.Sprintf("%v: %v", k, v))
	}
	slices.Sort(lines)
	return "{" + strings.Join(lines, ", ") + "}"
}

// Cache that never remembers anything, for searches where memoization
// doesn't pay off (no repeated states across branches)
type NoOp[S any, V any] struct{}

func (NoOp[S, V]) Put(S, V) {}

func (NoOp[S, V]) Get(S) (V, bool) {
	var zero V
	return zero, false
}

func (NoOp[S, V]) Size() int { return 0 }

func (NoOp[S, V]) String() string { return "{}" }
