package engine

import (
	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/pubsub"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// CreateComment inserts a new comment with a fresh ID. The author is
// checked first: fails with CodeAuthorNotFound for an unknown user even if
// the post is valid, then with CodePostNotFound for an unknown post even
// if the author is valid. On failure the collection is unchanged.
//
// The new comment is announced on the target post's comment channel after
// the transaction commits.
func (e *Engine) CreateComment(in entity.CreateCommentInput) (entity.Comment, error) {
	var created entity.Comment
	err := e.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.UserByID(in.Author); !ok {
			return authorNotFound(in.Author)
		}
		if _, ok := tx.PostByID(in.Post); !ok {
			return postNotFound(in.Post)
		}
		created = entity.Comment{
			ID:     e.ids.NewID(),
			Text:   in.Text,
			Post:   in.Post,
			Author: in.Author,
		}
		tx.InsertComment(created)
		return nil
	})
	if err != nil {
		return entity.Comment{}, err
	}

	e.hub.Publish(pubsub.CommentsChannel(created.Post), created)
	return created, nil
}

// UpdateComment applies the present fields of in to the comment with the
// given ID. Fails with CodeNotFound for an unknown ID.
func (e *Engine) UpdateComment(id string, in entity.UpdateCommentInput) (entity.Comment, error) {
	var updated entity.Comment
	err := e.store.Update(func(tx *store.Tx) error {
		comment, ok := tx.CommentByID(id)
		if !ok {
			return notFound("comment", id)
		}

		if in.Text != nil {
			comment.Text = *in.Text
		}

		tx.ReplaceComment(comment)
		updated = comment
		return nil
	})
	if err != nil {
		return entity.Comment{}, err
	}
	return updated, nil
}

// DeleteComment removes the comment with the given ID and returns it.
// Fails with CodeNotFound for an unknown ID.
func (e *Engine) DeleteComment(id string) (entity.Comment, error) {
	var removed entity.Comment
	err := e.store.Update(func(tx *store.Tx) error {
		comment, ok := tx.RemoveComment(id)
		if !ok {
			return notFound("comment", id)
		}
		removed = comment
		return nil
	})
	if err != nil {
		return entity.Comment{}, err
	}
	return removed, nil
}
