package store

import (
	"sync"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
)

// Store holds the three entity collections behind a single RWMutex.
//
// Thread-safety model:
//   - View(): shared lock, any number of concurrent readers
//   - Update(): exclusive lock, exactly one writer
//
// Entities cross the transaction boundary by value, so nothing a caller
// retains can alias store-owned memory after the transaction returns.
type Store struct {
	mu       sync.RWMutex
	users    []entity.User
	posts    []entity.Post
	comments []entity.Comment
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Tx is a handle into a running transaction. It is only valid inside the
// closure passed to View or Update and must not be retained.
type Tx struct {
	s        *Store
	writable bool
}

// View runs fn under the shared lock. fn must not call any Tx write
// primitive; doing so panics.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Update runs fn under the exclusive lock. Mutations apply directly to the
// collections; callers validate all preconditions before the first write so
// a failed operation leaves the store untouched.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s, writable: true})
}

func (tx *Tx) assertWritable(op string) {
	if !tx.writable {
		panic("store: " + op + " called on read-only transaction")
	}
}
