package store

import (
	"slices"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
)

// InsertUser appends a user to the collection. The caller is responsible
// for ID freshness and email uniqueness.
func (tx *Tx) InsertUser(u entity.User) {
	tx.assertWritable("InsertUser")
	tx.s.users = append(tx.s.users, u)
}

// InsertPost appends a post to the collection.
func (tx *Tx) InsertPost(p entity.Post) {
	tx.assertWritable("InsertPost")
	tx.s.posts = append(tx.s.posts, p)
}

// InsertComment appends a comment to the collection.
func (tx *Tx) InsertComment(c entity.Comment) {
	tx.assertWritable("InsertComment")
	tx.s.comments = append(tx.s.comments, c)
}

// ReplaceUser overwrites the user with the same ID in place, preserving
// its position in the enumeration order. Returns false if no user with
// that ID exists.
func (tx *Tx) ReplaceUser(u entity.User) bool {
	tx.assertWritable("ReplaceUser")
	for i := range tx.s.users {
		if tx.s.users[i].ID == u.ID {
			tx.s.users[i] = u
			return true
		}
	}
	return false
}

// ReplacePost overwrites the post with the same ID in place.
func (tx *Tx) ReplacePost(p entity.Post) bool {
	tx.assertWritable("ReplacePost")
	for i := range tx.s.posts {
		if tx.s.posts[i].ID == p.ID {
			tx.s.posts[i] = p
			return true
		}
	}
	return false
}

// ReplaceComment overwrites the comment with the same ID in place.
func (tx *Tx) ReplaceComment(c entity.Comment) bool {
	tx.assertWritable("ReplaceComment")
	for i := range tx.s.comments {
		if tx.s.comments[i].ID == c.ID {
			tx.s.comments[i] = c
			return true
		}
	}
	return false
}

// RemoveUser physically removes the user with the given ID and returns it.
// Subsequent lookups report absence, never a stale record.
func (tx *Tx) RemoveUser(id string) (entity.User, bool) {
	tx.assertWritable("RemoveUser")
	for i, u := range tx.s.users {
		if u.ID == id {
			tx.s.users = slices.Delete(tx.s.users, i, i+1)
			return u, true
		}
	}
	return entity.User{}, false
}

// RemovePost physically removes the post with the given ID and returns it.
func (tx *Tx) RemovePost(id string) (entity.Post, bool) {
	tx.assertWritable("RemovePost")
	for i, p := range tx.s.posts {
		if p.ID == id {
			tx.s.posts = slices.Delete(tx.s.posts, i, i+1)
			return p, true
		}
	}
	return entity.Post{}, false
}

// RemoveComment physically removes the comment with the given ID and
// returns it.
func (tx *Tx) RemoveComment(id string) (entity.Comment, bool) {
	tx.assertWritable("RemoveComment")
	for i, c := range tx.s.comments {
		if c.ID == id {
			tx.s.comments = slices.Delete(tx.s.comments, i, i+1)
			return c, true
		}
	}
	return entity.Comment{}, false
}

// RemoveCommentsByPost removes every comment on the given post and returns
// the removed comments in store order.
func (tx *Tx) RemoveCommentsByPost(postID string) []entity.Comment {
	tx.assertWritable("RemoveCommentsByPost")
	return tx.removeComments(func(c entity.Comment) bool { return c.Post == postID })
}

// RemoveCommentsByAuthor removes every comment written by the given user
// and returns the removed comments in store order.
func (tx *Tx) RemoveCommentsByAuthor(authorID string) []entity.Comment {
	tx.assertWritable("RemoveCommentsByAuthor")
	return tx.removeComments(func(c entity.Comment) bool { return c.Author == authorID })
}

func (tx *Tx) removeComments(match func(entity.Comment) bool) []entity.Comment {
	var removed []entity.Comment
	kept := tx.s.comments[:0]
	for _, c := range tx.s.comments {
		if match(c) {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	tx.s.comments = kept
	return removed
}
