package queries

import (
	"fmt"

	"linkup_client/cache"
	"linkup_client/client"
	"linkup_client/config"
	"linkup_client/services"
	"linkup_client/storage"
)

// Cached resource names
const (
	ResourceSession   = "session"
	ResourceUser      = "user"
	ResourcePosts     = "posts"
	ResourcePost      = "post"
	ResourceEvents    = "events"
	ResourceEvent     = "event"
	ResourceSearch    = "search"
	ResourcePrivacy   = "privacy"
	ResourceFollowers = "followers"
	ResourceFollowing = "following"
)

// Queries binds the resource services to the cache; screens talk to this
// layer only
type Queries struct {
	store     *cache.Store
	storage   *storage.Store
	auth      *services.AuthService
	posts     *services.PostService
	events    *services.EventService
	search    *services.SearchService
	privacy   *services.PrivacyService
	resources *services.ResourceService
}

// New wires the query layer over a cache store, device storage and client
func New(store *cache.Store, device *storage.Store, api *client.Client) *Queries {
	return &Queries{
		store:     store,
		storage:   device,
		auth:      services.NewAuthService(api),
		posts:     services.NewPostService(api),
		events:    services.NewEventService(api),
		search:    services.NewSearchService(api),
		privacy:   services.NewPrivacyService(api),
		resources: services.NewResourceService(api),
	}
}

// Store exposes the cache store for Watch subscriptions
func (q *Queries) Store() *cache.Store {
	return q.store
}

// SessionKey addresses the authenticated user's record
func SessionKey() cache.Key {
	return cache.NewKey(ResourceSession, nil)
}

// UserKey addresses one user record
func UserKey(userID string) cache.Key {
	return cache.NewKey(ResourceUser, cache.Params{"id": userID})
}

// PostKey addresses one post detail record
func PostKey(postID string) cache.Key {
	return cache.NewKey(ResourcePost, cache.Params{"id": postID})
}

// PostListKey addresses one normalized page of the feed
func PostListKey(page int, limit int, userID string) cache.Key {
	page, limit = services.Normalize(page, limit)
	params := cache.Params{"page": fmt.Sprint(page), "limit": fmt.Sprint(limit)}
	if userID != "" {
		params["userId"] = userID
	}
	return cache.NewKey(ResourcePosts, params)
}

// EventKey addresses one event detail record
func EventKey(eventID string) cache.Key {
	return cache.NewKey(ResourceEvent, cache.Params{"id": eventID})
}

// EventListKey addresses one normalized page of events
func EventListKey(page int, limit int) cache.Key {
	page, limit = services.Normalize(page, limit)
	return cache.NewKey(ResourceEvents, cache.Params{"page": fmt.Sprint(page), "limit": fmt.Sprint(limit)})
}

// SearchKey addresses one normalized search result page
func SearchKey(kind string, query string, page int, limit int) cache.Key {
	page, limit = services.Normalize(page, limit)
	return cache.NewKey(ResourceSearch, cache.Params{
		"kind":  kind,
		"q":     query,
		"page":  fmt.Sprint(page),
		"limit": fmt.Sprint(limit),
	})
}

// PrivacyKey addresses the authenticated user's privacy settings
func PrivacyKey() cache.Key {
	return cache.NewKey(ResourcePrivacy, nil)
}

// FollowListKey addresses one normalized page of followers or following
func FollowListKey(resource string, userID string, page int, limit int) cache.Key {
	page, limit = services.Normalize(page, limit)
	return cache.NewKey(resource, cache.Params{
		"id":    userID,
		"page":  fmt.Sprint(page),
		"limit": fmt.Sprint(limit),
	})
}

// sessionOptions: sourced from local storage and auth mutations, never
// considered stale
func sessionOptions() cache.Options {
	return cache.Options{}
}

func feedOptions() cache.Options {
	return cache.Options{Freshness: config.FeedFreshnessDuration()}
}

func searchOptions() cache.Options {
	return cache.Options{Freshness: config.SearchFreshnessDuration()}
}

func settingsOptions() cache.Options {
	return cache.Options{Freshness: config.SettingsFreshnessDuration()}
}
