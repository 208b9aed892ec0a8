package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautdegamme/studio-api/internal/model"
)

func TestListPostsPublishedFilter(t *testing.T) {
	st := newTestStore()
	st.CreatePost(BlogPostInput{Title: "Tendances 2025", Slug: "tendances-2025", Content: "...", IsPublished: true})
	st.CreatePost(BlogPostInput{Title: "Brouillon", Slug: "brouillon", Content: "..."})

	assert.Len(t, st.ListPosts(true), 1)
	assert.Len(t, st.ListPosts(false), 2)
}

func TestGetPostBySlug(t *testing.T) {
	st := newTestStore()
	p := st.CreatePost(BlogPostInput{Title: "Tendances 2025", Slug: "tendances-2025", Content: "...", IsPublished: true})

	got, err := st.GetPostBySlug("tendances-2025")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = st.GetPostBySlug("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentsStartUnapproved(t *testing.T) {
	st := newTestStore()
	p := st.CreatePost(BlogPostInput{Title: "T", Slug: "t", Content: "...", IsPublished: true})

	cm, err := st.CreateComment(BlogCommentInput{PostID: p.ID, Author: "Marie", Content: "Superbe !"})
	require.NoError(t, err)
	assert.False(t, cm.IsApproved)

	// Hidden from the public listing until moderated.
	assert.Empty(t, st.ListCommentsByPost(p.ID, true))
	assert.Len(t, st.ListCommentsByPost(p.ID, false), 1)

	_, err = st.ApproveComment(cm.ID)
	require.NoError(t, err)
	assert.Len(t, st.ListCommentsByPost(p.ID, true), 1)
}

func TestCreateCommentRequiresExistingPost(t *testing.T) {
	st := newTestStore()
	_, err := st.CreateComment(BlogCommentInput{PostID: "ghost", Author: "Marie", Content: "..."})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCommentsModerationFilters(t *testing.T) {
	st := newTestStore()
	p := st.CreatePost(BlogPostInput{Title: "T", Slug: "t", Content: "...", IsPublished: true})
	a, err := st.CreateComment(BlogCommentInput{PostID: p.ID, Author: "A", Content: "1"})
	require.NoError(t, err)
	_, err = st.CreateComment(BlogCommentInput{PostID: p.ID, Author: "B", Content: "2"})
	require.NoError(t, err)
	_, err = st.ApproveComment(a.ID)
	require.NoError(t, err)

	assert.Len(t, st.ListComments("pending"), 1)
	assert.Len(t, st.ListComments("approved"), 1)
	assert.Len(t, st.ListComments("all"), 2)
}

func TestDeletePostCascadesComments(t *testing.T) {
	st := newTestStore()
	p := st.CreatePost(BlogPostInput{Title: "T", Slug: "t", Content: "...", IsPublished: true})
	other := st.CreatePost(BlogPostInput{Title: "U", Slug: "u", Content: "...", IsPublished: true})
	_, err := st.CreateComment(BlogCommentInput{PostID: p.ID, Author: "A", Content: "1"})
	require.NoError(t, err)
	keep, err := st.CreateComment(BlogCommentInput{PostID: other.ID, Author: "B", Content: "2"})
	require.NoError(t, err)

	require.NoError(t, st.DeletePost(p.ID))

	all := st.ListComments("all")
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestUpdatePostPublishFlag(t *testing.T) {
	st := newTestStore()
	p := st.CreatePost(BlogPostInput{Title: "T", Slug: "t", Content: "..."})

	published := true
	got, err := st.UpdatePost(p.ID, model.BlogPostPatch{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	assert.Len(t, st.ListPosts(true), 1)
}
