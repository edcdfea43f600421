package engine

import (
	"github.com/SyzBeats/GraphQL-Blog/internal/pubsub"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// SubscribeToPosts registers a subscriber on the shared post channel. The
// subscriber receives every post that is created published after this
// call, as entity.Post payloads. The caller must Cancel it when done.
func (e *Engine) SubscribeToPosts() *pubsub.Subscriber {
	return e.hub.Subscribe(pubsub.PostsChannel)
}

// SubscribeToComments registers a subscriber on the comment channel of the
// given post. Fails with CodePostNotFound if the post does not exist and
// with CodePostNotPublished if it exists but is not published. Payloads
// are entity.Comment values for comments created on that post after this
// call; there is no replay.
func (e *Engine) SubscribeToComments(postID string) (*pubsub.Subscriber, error) {
	err := e.store.View(func(tx *store.Tx) error {
		post, ok := tx.PostByID(postID)
		if !ok {
			return postNotFound(postID)
		}
		if !post.Published {
			return postNotPublished(postID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e.hub.Subscribe(pubsub.CommentsChannel(postID)), nil
}
