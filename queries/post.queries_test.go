package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"linkup_client/schemas"
)

const feedBody = `{
	"page": 1, "limit": 10, "total": 2, "hasMore": false,
	"posts": [
		{"id":"p1","author":{"id":"u1","name":"Asha"},"content":"first","likes":5,"isLiked":false},
		{"id":"p2","author":{"id":"u2","name":"Ravi"},"content":"second","likes":0,"isLiked":false}
	]
}`

func TestListPostsCollapsesEquivalentPagination(t *testing.T) {
	h := newHarness(t, map[string]string{"GET /posts": feedBody})

	first, err := h.queries.ListPosts(context.Background(), 0, 0, "")
	require.NoError(t, err)
	require.Len(t, first.Posts, 2)

	// explicit defaults address the same page
	second, err := h.queries.ListPosts(context.Background(), 1, 10, "")
	require.NoError(t, err)
	require.Same(t, first, second)

	require.EqualValues(t, 1, h.hitCount("GET /posts"))
}

func TestListPostsSeedsDetailCache(t *testing.T) {
	h := newHarness(t, map[string]string{"GET /posts": feedBody})

	_, err := h.queries.ListPosts(context.Background(), 1, 10, "")
	require.NoError(t, err)

	post, err := h.queries.Post("p1")
	require.NoError(t, err)
	require.Equal(t, "first", post.Content)

	_, err = h.queries.Post("p9")
	require.Error(t, err, "a post never seen by a list is not resolvable")
}

func TestToggleLikeServerStateWinsEverywhere(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /posts":          feedBody,
		"POST /posts/p1/like": `{"postId":"p1","likes":9,"isLiked":true}`, // others liked it meanwhile
	})

	_, err := h.queries.ListPosts(context.Background(), 1, 10, "")
	require.NoError(t, err)

	res, err := h.queries.ToggleLike(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, 9, res.Likes)

	detail, err := h.queries.Post("p1")
	require.NoError(t, err)
	require.Equal(t, 9, detail.Likes)
	require.True(t, detail.IsLiked)

	v, ok := h.cache.Peek(PostListKey(1, 10, ""))
	require.True(t, ok)
	inList := v.(*schemas.PostsPage).Posts[0]
	require.Equal(t, detail.Likes, inList.Likes, "list and detail must agree after the toggle")
	require.Equal(t, detail.IsLiked, inList.IsLiked)
}

func TestToggleLikeRollsBackListAndDetail(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /posts":          feedBody,
		"POST /posts/p1/like": "", // 500
	})

	_, err := h.queries.ListPosts(context.Background(), 1, 10, "")
	require.NoError(t, err)

	_, err = h.queries.ToggleLike(context.Background(), "p1")
	require.Error(t, err)

	detail, err := h.queries.Post("p1")
	require.NoError(t, err)
	require.Equal(t, 5, detail.Likes)
	require.False(t, detail.IsLiked)

	v, ok := h.cache.Peek(PostListKey(1, 10, ""))
	require.True(t, ok)
	inList := v.(*schemas.PostsPage).Posts[0]
	require.Equal(t, 5, inList.Likes)
	require.False(t, inList.IsLiked)
}

func TestCreatePostPrependsToFirstPage(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /posts":  feedBody,
		"POST /posts": `{"id":"p3","author":{"id":"u1","name":"Asha"},"content":"fresh","createdAt":1756511999}`,
	})

	_, err := h.queries.ListPosts(context.Background(), 1, 10, "")
	require.NoError(t, err)

	post, err := h.queries.CreatePost(context.Background(), schemas.CreatePostSchema{Content: "fresh"})
	require.NoError(t, err)
	require.Equal(t, "p3", post.ID)

	v, ok := h.cache.Peek(PostListKey(1, 10, ""))
	require.True(t, ok)
	page := v.(*schemas.PostsPage)
	require.Equal(t, "p3", page.Posts[0].ID, "the new post appears at the front without a refetch")
	require.Equal(t, 3, page.Total)

	detail, err := h.queries.Post("p3")
	require.NoError(t, err)
	require.Equal(t, "fresh", detail.Content)
	require.Equal(t, time.UnixMilli(1756511999), detail.CreatedAtTime())
}

func TestDeletePostRemovesFromListsAndDropsDetail(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /posts":      feedBody,
		"DELETE /posts/p1": `{"message":"deleted"}`,
	})

	_, err := h.queries.ListPosts(context.Background(), 1, 10, "")
	require.NoError(t, err)

	require.NoError(t, h.queries.DeletePost(context.Background(), "p1"))

	v, ok := h.cache.Peek(PostListKey(1, 10, ""))
	require.True(t, ok)
	page := v.(*schemas.PostsPage)
	require.Len(t, page.Posts, 1)
	require.Equal(t, "p2", page.Posts[0].ID)
	require.Equal(t, 1, page.Total)

	_, err = h.queries.Post("p1")
	require.Error(t, err)
}
