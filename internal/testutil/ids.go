// Package testutil provides deterministic helpers shared by tests across
// packages: a fixed-sequence ID generator and pre-seeded fixtures.
package testutil

import (
	"fmt"
	"sync"
)

// FixedIDs returns predetermined IDs in order. This makes test entities
// addressable by known IDs and keeps golden output stable.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDs creates a generator that returns the given IDs in order.
//
// Example:
//
//	gen := NewFixedIDs("u1", "p1")
//	gen.NewID() // "u1"
//	gen.NewID() // "p1"
//	gen.NewID() // panic: all ids exhausted
func NewFixedIDs(ids ...string) *FixedIDs {
	return &FixedIDs{ids: ids}
}

// NewID returns the next predetermined ID.
// Panics once all IDs are consumed: a test asking for more entities than
// it declared IDs for is a test bug, and failing fast beats a silent
// collision.
func (g *FixedIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("testutil: all %d fixed ids exhausted", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// Sequential returns a generator producing prefix1, prefix2, prefix3, ...
// without exhausting.
func Sequential(prefix string) *SequentialIDs {
	return &SequentialIDs{prefix: prefix}
}

// SequentialIDs mints prefix-numbered IDs. Unlike FixedIDs it never runs
// out, for tests that create an unknown number of entities.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewID returns the next sequential ID.
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}
