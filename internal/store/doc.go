// Package store provides the in-memory backing store for users, posts and
// comments.
//
// The store holds three ordered collections. Insertion order is preserved
// and is the canonical enumeration order for unfiltered reads. Access goes
// through closure-scoped transactions:
//
//   - View(fn) runs fn under a shared lock; fn sees a consistent snapshot
//     and must not write.
//   - Update(fn) runs fn under the exclusive lock; at most one update runs
//     at a time, so a multi-step cascade is observed either fully applied
//     or not at all.
//
// The store deliberately enforces no relational rules. Referential
// integrity (author exists, email unique, cascades) is the mutation
// engine's responsibility - the store only offers lookup, scan, insert,
// replace and remove primitives.
//
// All reads are linear scans. At this system's scale that is fine; a
// maintained parent-id index would be the first change if the collections
// grew or moved off in-memory slices.
package store
