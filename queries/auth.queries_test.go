package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"linkup_client/errors"
	"linkup_client/schemas"
)

const loginBody = `{"token":"tok-123","user":{"id":"u1","name":"Asha","email":"asha@example.com"}}`

func TestLoginPersistsSessionAndSeedsCache(t *testing.T) {
	h := newHarness(t, map[string]string{
		"POST /auth/login": loginBody,
		"GET /users/me":    `{"id":"u1","name":"Asha"}`,
	})

	res, err := h.queries.Login(context.Background(), schemas.LoginSchema{
		EmailOrPhone: "asha@example.com",
		Password:     "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, "tok-123", res.Token)

	// the session survives a restart
	require.Equal(t, "tok-123", h.device.Token())
	persisted := h.device.User()
	require.NotNil(t, persisted)
	require.Equal(t, "u1", persisted.ID)

	// the session cache is seeded, so the profile resolves locally
	user, err := h.queries.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Asha", user.Name)
	require.EqualValues(t, 0, h.hitCount("GET /users/me"))
}

func TestLoginRejectsInvalidInputLocally(t *testing.T) {
	h := newOfflineHarness(t)

	_, err := h.queries.Login(context.Background(), schemas.LoginSchema{})
	require.Error(t, err)
	require.Equal(t, errors.KindValidation, errors.KindOf(err))
	require.Empty(t, h.device.Token())
}

func TestBootstrapSeedsSessionFromDevice(t *testing.T) {
	h := newOfflineHarness(t)
	require.NoError(t, h.device.SaveToken("tok-123"))
	require.NoError(t, h.device.SaveUser(&schemas.User{ID: "u1", Name: "Asha"}))

	require.Equal(t, Authenticated, h.queries.Bootstrap())

	// the profile resolves without any network round-trip
	user, err := h.queries.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
}

func TestBootstrapFailsClosed(t *testing.T) {
	t.Run("empty storage", func(t *testing.T) {
		h := newOfflineHarness(t)
		require.Equal(t, Unauthenticated, h.queries.Bootstrap())
	})

	t.Run("token without user", func(t *testing.T) {
		h := newOfflineHarness(t)
		require.NoError(t, h.device.SaveToken("tok-123"))
		require.Equal(t, Unauthenticated, h.queries.Bootstrap())
	})
}

func TestLogoutClearsSessionEvenWhenServerUnreachable(t *testing.T) {
	h := newOfflineHarness(t)
	require.NoError(t, h.device.SaveToken("tok-123"))
	require.NoError(t, h.device.SaveUser(&schemas.User{ID: "u1", Name: "Asha"}))
	require.Equal(t, Authenticated, h.queries.Bootstrap())

	require.NoError(t, h.queries.Logout(context.Background()))

	require.Empty(t, h.device.Token())
	require.Nil(t, h.device.User())
	require.False(t, h.queries.IsAuthenticated())

	_, ok := h.cache.Peek(SessionKey())
	require.False(t, ok, "the session cache entry is dropped, not just invalidated")
}

func TestToggleFollowUpdatesEveryUserLocation(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /users/u2":         `{"id":"u2","name":"Ravi","followersCount":10,"isFollowing":false}`,
		"POST /users/u2/follow": `{"userId":"u2","followersCount":11,"isFollowing":true}`,
	})

	_, err := h.queries.User(context.Background(), "u2")
	require.NoError(t, err)

	res, err := h.queries.ToggleFollow(context.Background(), "u2")
	require.NoError(t, err)
	require.True(t, res.IsFollowing)

	v, ok := h.cache.Peek(UserKey("u2"))
	require.True(t, ok)
	user := v.(*schemas.User)
	require.True(t, user.IsFollowing)
	require.Equal(t, 11, user.FollowersCount)
}

func TestToggleFollowRollsBackOnFailure(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /users/u2":         `{"id":"u2","name":"Ravi","followersCount":10,"isFollowing":false}`,
		"POST /users/u2/follow": "", // 500
	})

	_, err := h.queries.User(context.Background(), "u2")
	require.NoError(t, err)

	_, err = h.queries.ToggleFollow(context.Background(), "u2")
	require.Error(t, err)

	v, ok := h.cache.Peek(UserKey("u2"))
	require.True(t, ok)
	user := v.(*schemas.User)
	require.False(t, user.IsFollowing)
	require.Equal(t, 10, user.FollowersCount)
}
