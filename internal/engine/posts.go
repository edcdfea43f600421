package engine

import (
	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/pubsub"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// CreatePost inserts a new post with a fresh ID. Fails with
// CodeAuthorNotFound if the author does not reference an existing user; on
// failure the collection is unchanged.
//
// If the post is created published, it is announced on the shared post
// channel after the transaction commits.
func (e *Engine) CreatePost(in entity.CreatePostInput) (entity.Post, error) {
	var created entity.Post
	err := e.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.UserByID(in.Author); !ok {
			return authorNotFound(in.Author)
		}
		created = entity.Post{
			ID:        e.ids.NewID(),
			Title:     in.Title,
			Body:      in.Body,
			Published: in.Published,
			Author:    in.Author,
		}
		tx.InsertPost(created)
		return nil
	})
	if err != nil {
		return entity.Post{}, err
	}

	if created.Published {
		e.hub.Publish(pubsub.PostsChannel, created)
	}
	return created, nil
}

// UpdatePost applies the present fields of in to the post with the given
// ID. Fails with CodeNotFound for an unknown ID. Published and Author are
// immutable through this operation - the input type has no such fields.
func (e *Engine) UpdatePost(id string, in entity.UpdatePostInput) (entity.Post, error) {
	var updated entity.Post
	err := e.store.Update(func(tx *store.Tx) error {
		post, ok := tx.PostByID(id)
		if !ok {
			return notFound("post", id)
		}

		if in.Title != nil {
			post.Title = *in.Title
		}
		if in.Body != nil {
			post.Body = *in.Body
		}

		tx.ReplacePost(post)
		updated = post
		return nil
	})
	if err != nil {
		return entity.Post{}, err
	}
	return updated, nil
}

// DeletePost removes the post with the given ID and returns it. Fails with
// CodeNotFound for an unknown ID.
//
// Cascade: every comment referencing the post is removed with it, in the
// same exclusive transaction. Comments on other posts are untouched.
func (e *Engine) DeletePost(id string) (entity.Post, error) {
	var removed entity.Post
	err := e.store.Update(func(tx *store.Tx) error {
		post, ok := tx.RemovePost(id)
		if !ok {
			return notFound("post", id)
		}
		tx.RemoveCommentsByPost(id)
		removed = post
		return nil
	})
	if err != nil {
		return entity.Post{}, err
	}
	return removed, nil
}
