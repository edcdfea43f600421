// Package resolve computes the derived fields of the entity graph by live
// lookup against the store. Relations are never materialized or cached: a
// post's author is whoever the store says it is at call time.
package resolve

import (
	"fmt"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// DanglingReferenceError reports a foreign key that no longer resolves to
// an existing record. The engine's cascade rules keep references intact,
// so a dangling reference means the store was loaded with bad data.
type DanglingReferenceError struct {
	// Kind is the referencing entity kind ("post" or "comment").
	Kind string
	// Field is the reference field that failed to resolve.
	Field string
	// ID is the value that did not resolve.
	ID string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s.%s = %q resolves to nothing", e.Kind, e.Field, e.ID)
}

// Resolver answers read-style lookups against a store. All methods run
// under a shared view, so they never observe a half-applied mutation, and
// all scans return results in store order.
type Resolver struct {
	store *store.Store
}

// New creates a resolver over the given store.
func New(st *store.Store) *Resolver {
	return &Resolver{store: st}
}

// User returns the user with the given ID.
func (r *Resolver) User(id string) (entity.User, bool) {
	var (
		user entity.User
		ok   bool
	)
	_ = r.store.View(func(tx *store.Tx) error {
		user, ok = tx.UserByID(id)
		return nil
	})
	return user, ok
}

// Post returns the post with the given ID.
func (r *Resolver) Post(id string) (entity.Post, bool) {
	var (
		post entity.Post
		ok   bool
	)
	_ = r.store.View(func(tx *store.Tx) error {
		post, ok = tx.PostByID(id)
		return nil
	})
	return post, ok
}

// Comment returns the comment with the given ID.
func (r *Resolver) Comment(id string) (entity.Comment, bool) {
	var (
		comment entity.Comment
		ok      bool
	)
	_ = r.store.View(func(tx *store.Tx) error {
		comment, ok = tx.CommentByID(id)
		return nil
	})
	return comment, ok
}

// Comments returns every comment in store order.
func (r *Resolver) Comments() []entity.Comment {
	var out []entity.Comment
	_ = r.store.View(func(tx *store.Tx) error {
		out = tx.Comments()
		return nil
	})
	return out
}

// PostAuthor resolves a post's author.
func (r *Resolver) PostAuthor(p entity.Post) (entity.User, error) {
	user, ok := r.User(p.Author)
	if !ok {
		return entity.User{}, &DanglingReferenceError{Kind: "post", Field: "author", ID: p.Author}
	}
	return user, nil
}

// PostComments resolves all comments on a post, in store order.
func (r *Resolver) PostComments(p entity.Post) []entity.Comment {
	var out []entity.Comment
	_ = r.store.View(func(tx *store.Tx) error {
		out = tx.CommentsByPost(p.ID)
		return nil
	})
	return out
}

// UserPosts resolves all posts authored by a user, in store order.
func (r *Resolver) UserPosts(u entity.User) []entity.Post {
	var out []entity.Post
	_ = r.store.View(func(tx *store.Tx) error {
		out = tx.PostsByAuthor(u.ID)
		return nil
	})
	return out
}

// UserComments resolves all comments authored by a user, in store order.
func (r *Resolver) UserComments(u entity.User) []entity.Comment {
	var out []entity.Comment
	_ = r.store.View(func(tx *store.Tx) error {
		out = tx.CommentsByAuthor(u.ID)
		return nil
	})
	return out
}

// CommentAuthor resolves a comment's author.
func (r *Resolver) CommentAuthor(c entity.Comment) (entity.User, error) {
	user, ok := r.User(c.Author)
	if !ok {
		return entity.User{}, &DanglingReferenceError{Kind: "comment", Field: "author", ID: c.Author}
	}
	return user, nil
}

// CommentPost resolves the post a comment belongs to.
func (r *Resolver) CommentPost(c entity.Comment) (entity.Post, error) {
	post, ok := r.Post(c.Post)
	if !ok {
		return entity.Post{}, &DanglingReferenceError{Kind: "comment", Field: "post", ID: c.Post}
	}
	return post, nil
}
