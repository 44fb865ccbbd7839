package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchKindsAreCachedSeparately(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /search/users": `{"page":1,"limit":10,"total":1,"hasMore":false,"users":[{"id":"u2","name":"Ravi"}]}`,
		"GET /search":       `{"users":[{"id":"u2","name":"Ravi"}],"posts":[]}`,
	})

	users, err := h.queries.SearchUsers(context.Background(), "ravi", 1, 10)
	require.NoError(t, err)
	require.Len(t, users.Users, 1)

	all, err := h.queries.SearchAll(context.Background(), "ravi", 1, 10)
	require.NoError(t, err)
	require.Len(t, all.Users, 1)

	// same query again is a cache hit
	_, err = h.queries.SearchUsers(context.Background(), "ravi", 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, h.hitCount("GET /search/users"))
	require.EqualValues(t, 1, h.hitCount("GET /search"))
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	h := newOfflineHarness(t)

	_, err := h.queries.SearchUsers(context.Background(), "", 1, 10)
	require.Error(t, err)
}

func TestRecentSearchesRoundTrip(t *testing.T) {
	h := newOfflineHarness(t)

	require.NoError(t, h.queries.RememberSearch("park run"))
	require.NoError(t, h.queries.RememberSearch("ravi"))
	require.Equal(t, []string{"ravi", "park run"}, h.queries.RecentSearches())

	require.NoError(t, h.queries.ClearRecentSearches())
	require.Nil(t, h.queries.RecentSearches())
}

func TestFriendDraftRoundTrip(t *testing.T) {
	h := newOfflineHarness(t)

	require.NoError(t, h.queries.SaveFriendDraft("u2"))
	require.NoError(t, h.queries.SaveFriendDraft("u3"))
	require.Equal(t, []string{"u3", "u2"}, h.queries.FriendDraft())

	require.NoError(t, h.queries.ClearFriendDraft())
	require.Nil(t, h.queries.FriendDraft())
}
