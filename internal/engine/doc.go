// Package engine is the sole mutator of the store: it validates every
// precondition of a mutation before the first write, applies the change
// under one exclusive transaction, runs cascading deletes, and notifies
// the subscription hub about newly published content.
//
// Every operation either returns the resulting (or removed) entity, or a
// *Error carrying one of the Code values. On failure the store is left
// exactly as it was - there are no partial cascades.
//
// The engine performs no logging and no I/O; all operations complete
// synchronously, bounded by collection size.
package engine
