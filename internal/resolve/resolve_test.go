package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyzBeats/GraphQL-Blog/internal/entity"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
	"github.com/SyzBeats/GraphQL-Blog/internal/testutil"
)

func seededResolver(t *testing.T) *Resolver {
	t.Helper()
	return New(testutil.SeededStore(t))
}

func TestResolver_Lookups(t *testing.T) {
	r := seededResolver(t)

	user, ok := r.User("1")
	require.True(t, ok)
	assert.Equal(t, "Simeon", user.Name)

	post, ok := r.Post("2")
	require.True(t, ok)
	assert.Equal(t, "Node.js is awesome", post.Title)

	comment, ok := r.Comment("4")
	require.True(t, ok)
	assert.Equal(t, "3", comment.Post)

	_, ok = r.User("missing")
	assert.False(t, ok)
}

func TestResolver_PostAuthor(t *testing.T) {
	r := seededResolver(t)

	post, ok := r.Post("1")
	require.True(t, ok)

	author, err := r.PostAuthor(post)
	require.NoError(t, err)
	assert.Equal(t, "1", author.ID)
	assert.Equal(t, "Simeon", author.Name)
}

func TestResolver_PostAuthor_Dangling(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		tx.InsertPost(entity.Post{ID: "p1", Title: "orphan", Author: "gone"})
		return nil
	}))
	r := New(st)

	post, ok := r.Post("p1")
	require.True(t, ok)

	_, err := r.PostAuthor(post)
	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "post", dangling.Kind)
	assert.Equal(t, "author", dangling.Field)
	assert.Equal(t, "gone", dangling.ID)
}

func TestResolver_PostComments_StoreOrder(t *testing.T) {
	r := seededResolver(t)

	post, ok := r.Post("1")
	require.True(t, ok)

	comments := r.PostComments(post)
	require.Len(t, comments, 2)
	assert.Equal(t, "1", comments[0].ID)
	assert.Equal(t, "2", comments[1].ID)
}

func TestResolver_UserRelations(t *testing.T) {
	r := seededResolver(t)

	user, ok := r.User("2")
	require.True(t, ok)

	posts := r.UserPosts(user)
	require.Len(t, posts, 1)
	assert.Equal(t, "2", posts[0].ID)

	comments := r.UserComments(user)
	require.Len(t, comments, 2)
	assert.Equal(t, "3", comments[0].ID)
	assert.Equal(t, "4", comments[1].ID)
}

func TestResolver_CommentRelations(t *testing.T) {
	r := seededResolver(t)

	comment, ok := r.Comment("3")
	require.True(t, ok)

	author, err := r.CommentAuthor(comment)
	require.NoError(t, err)
	assert.Equal(t, "noemis", author.Name)

	post, err := r.CommentPost(comment)
	require.NoError(t, err)
	assert.Equal(t, "2", post.ID)
}

func TestResolver_Comments_All(t *testing.T) {
	r := seededResolver(t)

	comments := r.Comments()
	require.Len(t, comments, 4)
	for i, want := range []string{"1", "2", "3", "4"} {
		assert.Equal(t, want, comments[i].ID)
	}
}
