package queries

import (
	"context"

	"linkup_client/cache"
	"linkup_client/errors"
	"linkup_client/schemas"
)

// Login exchanges credentials for a session and persists it. A storage
// write failure propagates, but the session stays usable in-memory for
// the current run.
func (q *Queries) Login(ctx context.Context, req schemas.LoginSchema) (*schemas.AuthResponse, error) {
	res, err := q.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return res, q.establishSession(res)
}

// Signup registers an account and persists the returned session
func (q *Queries) Signup(ctx context.Context, req schemas.SignupSchema) (*schemas.AuthResponse, error) {
	res, err := q.auth.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return res, q.establishSession(res)
}

// GoogleLogin exchanges a Google ID token for a session and persists it
func (q *Queries) GoogleLogin(ctx context.Context, req schemas.GoogleLoginSchema) (*schemas.AuthResponse, error) {
	res, err := q.auth.GoogleLogin(ctx, req)
	if err != nil {
		return nil, err
	}
	return res, q.establishSession(res)
}

func (q *Queries) establishSession(res *schemas.AuthResponse) error {
	user := res.User
	q.store.Set(SessionKey(), sessionOptions(), &user)
	if err := q.storage.SaveToken(res.Token); err != nil {
		return err
	}
	return q.storage.SaveUser(&user)
}

// Logout tears the session down. The server call is best-effort and
// never blocks local cleanup; local removal is attempted twice before
// its failure propagates. The session cache entry is dropped entirely.
func (q *Queries) Logout(ctx context.Context) error {
	errors.HandleBasicError(q.auth.Logout(ctx))

	err := q.storage.RemoveToken()
	if err != nil {
		err = q.storage.RemoveToken()
	}

	q.store.Drop(SessionKey())
	return err
}

// CurrentUser resolves the authenticated user, from the session cache
// when seeded
func (q *Queries) CurrentUser(ctx context.Context) (*schemas.User, error) {
	v, err := q.store.Query(ctx, SessionKey(), sessionOptions(), func(ctx context.Context) (interface{}, error) {
		return q.auth.CurrentUser(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.User), nil
}

// User resolves another user's record
func (q *Queries) User(ctx context.Context, userID string) (*schemas.User, error) {
	v, err := q.store.Query(ctx, UserKey(userID), feedOptions(), func(ctx context.Context) (interface{}, error) {
		return q.auth.UserByID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.User), nil
}

// UpdatePersonalInfo patches the profile and refreshes the session cache
func (q *Queries) UpdatePersonalInfo(ctx context.Context, req schemas.PersonalInfoSchema) (*schemas.User, error) {
	user, err := q.auth.UpdatePersonalInfo(ctx, req)
	if err != nil {
		return nil, err
	}
	q.store.Set(SessionKey(), sessionOptions(), user)
	return user, q.storage.SaveUser(user)
}

// ToggleFollow optimistically follows or unfollows a user in every cache
// location holding their record
func (q *Queries) ToggleFollow(ctx context.Context, userID string) (*schemas.FollowResponse, error) {
	keys := q.userKeys(userID)

	patchesFor := func(fn func(schemas.User) schemas.User) []cache.Patch {
		patches := make([]cache.Patch, 0, len(keys))
		for _, key := range keys {
			key := key
			patches = append(patches, cache.Patch{Key: key, Apply: func(v interface{}) interface{} {
				return applyUser(v, userID, fn)
			}})
		}
		return patches
	}

	v, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourceUser,
		Patches:  patchesFor(toggleUserFollow),
		Run: func(ctx context.Context) (interface{}, error) {
			return q.auth.FollowToggle(ctx, userID)
		},
		Commit: func(server interface{}) []cache.Patch {
			res := server.(*schemas.FollowResponse)
			return patchesFor(func(u schemas.User) schemas.User {
				u.IsFollowing = res.IsFollowing
				u.FollowersCount = res.FollowersCount
				return u
			})
		},
		Invalidate: []string{ResourceFollowers, ResourceFollowing},
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.FollowResponse), nil
}

// userKeys collects every cache location that can denormalize a user
func (q *Queries) userKeys(userID string) []cache.Key {
	keys := []cache.Key{UserKey(userID)}
	keys = append(keys, q.store.Keys(ResourceFollowers)...)
	keys = append(keys, q.store.Keys(ResourceFollowing)...)
	keys = append(keys, q.store.Keys(ResourceSearch)...)
	return keys
}

// Followers resolves one page of a user's followers
func (q *Queries) Followers(ctx context.Context, userID string, page int, limit int) (*schemas.UsersPage, error) {
	key := FollowListKey(ResourceFollowers, userID, page, limit)
	v, err := q.store.Query(ctx, key, feedOptions(), func(ctx context.Context) (interface{}, error) {
		return q.auth.Followers(ctx, userID, page, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.UsersPage), nil
}

// Following resolves one page of the users a user follows
func (q *Queries) Following(ctx context.Context, userID string, page int, limit int) (*schemas.UsersPage, error) {
	key := FollowListKey(ResourceFollowing, userID, page, limit)
	v, err := q.store.Query(ctx, key, feedOptions(), func(ctx context.Context) (interface{}, error) {
		return q.auth.Following(ctx, userID, page, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.UsersPage), nil
}

// ForgotPassword starts the email reset flow
func (q *Queries) ForgotPassword(ctx context.Context, req schemas.ForgotPasswordSchema) error {
	return q.auth.ForgotPassword(ctx, req)
}

// RequestOTP sends a one-time code
func (q *Queries) RequestOTP(ctx context.Context, req schemas.RequestOTPSchema) error {
	return q.auth.RequestOTP(ctx, req)
}

// VerifyOTP verifies a one-time code
func (q *Queries) VerifyOTP(ctx context.Context, req schemas.VerifyOTPSchema) error {
	return q.auth.VerifyOTP(ctx, req)
}

// ResetPassword completes the reset flow
func (q *Queries) ResetPassword(ctx context.Context, req schemas.ResetPasswordSchema) error {
	return q.auth.ResetPassword(ctx, req)
}

func toggleUserFollow(u schemas.User) schemas.User {
	if u.IsFollowing {
		u.FollowersCount--
	} else {
		u.FollowersCount++
	}
	u.IsFollowing = !u.IsFollowing
	return u
}

// applyUser maps a user transform over any cache shape holding the user
func applyUser(v interface{}, userID string, fn func(schemas.User) schemas.User) interface{} {
	switch val := v.(type) {
	case *schemas.User:
		if val.ID != userID {
			return v
		}
		next := fn(*val)
		return &next
	case *schemas.UsersPage:
		return usersPageWith(val, userID, fn)
	case *schemas.SearchResponse:
		next := *val
		next.Users = append([]schemas.User(nil), val.Users...)
		for i, u := range next.Users {
			if u.ID == userID {
				next.Users[i] = fn(u)
			}
		}
		return &next
	}
	return v
}

func usersPageWith(page *schemas.UsersPage, userID string, fn func(schemas.User) schemas.User) *schemas.UsersPage {
	next := *page
	next.Users = append([]schemas.User(nil), page.Users...)
	for i, u := range next.Users {
		if u.ID == userID {
			next.Users[i] = fn(u)
		}
	}
	return &next
}
