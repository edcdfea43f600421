package store

import "github.com/SyzBeats/GraphQL-Blog/internal/entity"

// Users returns every user in insertion order. The returned slice is a
// copy; mutating it does not touch the store.
func (tx *Tx) Users() []entity.User {
	out := make([]entity.User, len(tx.s.users))
	copy(out, tx.s.users)
	return out
}

// Posts returns every post in insertion order.
func (tx *Tx) Posts() []entity.Post {
	out := make([]entity.Post, len(tx.s.posts))
	copy(out, tx.s.posts)
	return out
}

// Comments returns every comment in insertion order.
func (tx *Tx) Comments() []entity.Comment {
	out := make([]entity.Comment, len(tx.s.comments))
	copy(out, tx.s.comments)
	return out
}

// UserByID looks up a user by ID.
func (tx *Tx) UserByID(id string) (entity.User, bool) {
	for _, u := range tx.s.users {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

// PostByID looks up a post by ID.
func (tx *Tx) PostByID(id string) (entity.Post, bool) {
	for _, p := range tx.s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Post{}, false
}

// CommentByID looks up a comment by ID.
func (tx *Tx) CommentByID(id string) (entity.Comment, bool) {
	for _, c := range tx.s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Comment{}, false
}

// EmailTaken reports whether any user other than excludeID already uses
// email. Pass an empty excludeID to check against every user.
func (tx *Tx) EmailTaken(email, excludeID string) bool {
	for _, u := range tx.s.users {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}

// PostsByAuthor returns all posts whose author field equals authorID, in
// store order.
func (tx *Tx) PostsByAuthor(authorID string) []entity.Post {
	var out []entity.Post
	for _, p := range tx.s.posts {
		if p.Author == authorID {
			out = append(out, p)
		}
	}
	return out
}

// CommentsByPost returns all comments on the given post, in store order.
func (tx *Tx) CommentsByPost(postID string) []entity.Comment {
	var out []entity.Comment
	for _, c := range tx.s.comments {
		if c.Post == postID {
			out = append(out, c)
		}
	}
	return out
}

// CommentsByAuthor returns all comments written by the given user, in
// store order.
func (tx *Tx) CommentsByAuthor(authorID string) []entity.Comment {
	var out []entity.Comment
	for _, c := range tx.s.comments {
		if c.Author == authorID {
			out = append(out, c)
		}
	}
	return out
}
