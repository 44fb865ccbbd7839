package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"linkup_client/schemas"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "device.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTokenRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.Empty(t, store.Token())
	require.False(t, store.IsAuthenticated())

	require.NoError(t, store.SaveToken("tok-123"))
	require.Equal(t, "tok-123", store.Token())
	require.True(t, store.IsAuthenticated())

	require.NoError(t, store.SaveToken("tok-456"))
	require.Equal(t, "tok-456", store.Token(), "saving overwrites the previous token")
}

func TestUserRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.Nil(t, store.User())

	user := &schemas.User{ID: "u1", Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, store.SaveUser(user))

	got := store.User()
	require.NotNil(t, got)
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "Asha", got.Name)
	require.Equal(t, "asha@example.com", got.Email)
}

func TestRemoveTokenClearsIdentity(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveToken("tok-123"))
	require.NoError(t, store.SaveUser(&schemas.User{ID: "u1", Name: "Asha"}))

	require.NoError(t, store.RemoveToken())

	require.Empty(t, store.Token())
	require.Nil(t, store.User(), "clearing the token also clears the cached user")
	require.False(t, store.IsAuthenticated())

	require.NoError(t, store.RemoveToken(), "clearing an already-clear store is a no-op")
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("tok-123"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.Equal(t, "tok-123", reopened.Token())
}

func TestAppendRecentDedupesAndCaps(t *testing.T) {
	store := openTestStore(t)

	require.Nil(t, store.Recent(RecentSearchesKey))

	require.NoError(t, store.AppendRecent(RecentSearchesKey, "alpha", 3))
	require.NoError(t, store.AppendRecent(RecentSearchesKey, "beta", 3))
	require.NoError(t, store.AppendRecent(RecentSearchesKey, "gamma", 3))
	require.Equal(t, []string{"gamma", "beta", "alpha"}, store.Recent(RecentSearchesKey))

	// a duplicate moves to the front without growing the list
	require.NoError(t, store.AppendRecent(RecentSearchesKey, "alpha", 3))
	require.Equal(t, []string{"alpha", "gamma", "beta"}, store.Recent(RecentSearchesKey))

	// the cap evicts the oldest entry
	require.NoError(t, store.AppendRecent(RecentSearchesKey, "delta", 3))
	require.Equal(t, []string{"delta", "alpha", "gamma"}, store.Recent(RecentSearchesKey))
}

func TestClearRecent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.AppendRecent(SelectedFriendsKey, "u1", 5))
	require.NoError(t, store.ClearRecent(SelectedFriendsKey))
	require.Nil(t, store.Recent(SelectedFriendsKey))
}
