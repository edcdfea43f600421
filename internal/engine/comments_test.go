package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
)

func TestCreateComment(t *testing.T) {
	eng, st, _ := newTestEngine(t)

	comment, err := eng.CreateComment(entity.CreateCommentInput{
		Text:   "nice post",
		Post:   "1",
		Author: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "id1", comment.ID)
	assert.Equal(t, "1", comment.Post)
	assert.Equal(t, "2", comment.Author)

	assert.Len(t, st.Snapshot().Comments, 5)
}

func TestCreateComment_AuthorNotFound(t *testing.T) {
	eng, st, _ := newTestEngine(t)

	before := len(st.Snapshot().Comments)
	// Post "1" is valid; the author check still fails first.
	_, err := eng.CreateComment(entity.CreateCommentInput{
		Text:   "x",
		Post:   "1",
		Author: "missing",
	})
	require.Error(t, err)
	assert.Equal(t, CodeAuthorNotFound, CodeOf(err))
	assert.Len(t, st.Snapshot().Comments, before)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	eng, st, _ := newTestEngine(t)

	before := len(st.Snapshot().Comments)
	// Author "1" is valid; the post check fails.
	_, err := eng.CreateComment(entity.CreateCommentInput{
		Text:   "x",
		Post:   "missing",
		Author: "1",
	})
	require.Error(t, err)
	assert.Equal(t, CodePostNotFound, CodeOf(err))
	assert.Len(t, st.Snapshot().Comments, before)
}

func TestCreateComment_EmitsEventOnPostChannel(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	sub, err := eng.SubscribeToComments("1")
	require.NoError(t, err)
	defer sub.Cancel()

	comment, err := eng.CreateComment(entity.CreateCommentInput{
		Text:   "hello",
		Post:   "1",
		Author: "2",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	payload, err := sub.Next(ctx)
	require.NoError(t, err)
	got, ok := payload.(entity.Comment)
	require.True(t, ok, "comment events carry entity.Comment payloads")
	assert.Equal(t, comment.ID, got.ID)
	assert.Equal(t, "hello", got.Text)
}

func TestCreateComment_OtherPostSubscriberSeesNothing(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	sub, err := eng.SubscribeToComments("2")
	require.NoError(t, err)
	defer sub.Cancel()

	_, err = eng.CreateComment(entity.CreateCommentInput{
		Text:   "on post 1",
		Post:   "1",
		Author: "2",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUpdateComment(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	updated, err := eng.UpdateComment("1", entity.UpdateCommentInput{
		Text: strPtr("edited"),
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.Equal(t, "1", updated.Post, "post reference untouched")

	// Absent text leaves the comment alone.
	same, err := eng.UpdateComment("1", entity.UpdateCommentInput{})
	require.NoError(t, err)
	assert.Equal(t, "edited", same.Text)
}

func TestUpdateComment_NotFound(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.UpdateComment("missing", entity.UpdateCommentInput{Text: strPtr("x")})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteComment(t *testing.T) {
	eng, st, _ := newTestEngine(t)

	removed, err := eng.DeleteComment("1")
	require.NoError(t, err)
	assert.Equal(t, "So ein unsinn", removed.Text)
	assert.Len(t, st.Snapshot().Comments, 3)

	// The corrected existence check: deleting an unknown id fails instead
	// of silently removing something else.
	_, err = eng.DeleteComment("1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
