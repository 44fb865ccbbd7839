package queries

import (
	"context"

	"linkup_client/config"
	"linkup_client/schemas"
	"linkup_client/services"
	"linkup_client/storage"
)

// SearchUsers resolves one page of user search results
func (q *Queries) SearchUsers(ctx context.Context, query string, page int, limit int) (*schemas.UsersPage, error) {
	page, limit = services.Normalize(page, limit)
	key := SearchKey("users", query, page, limit)

	v, err := q.store.Query(ctx, key, searchOptions(), func(ctx context.Context) (interface{}, error) {
		return q.search.Users(ctx, schemas.SearchSchema{Query: query, Page: page, Limit: limit})
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.UsersPage), nil
}

// SearchPosts resolves one page of post search results
func (q *Queries) SearchPosts(ctx context.Context, query string, page int, limit int) (*schemas.PostsPage, error) {
	page, limit = services.Normalize(page, limit)
	key := SearchKey("posts", query, page, limit)

	v, err := q.store.Query(ctx, key, searchOptions(), func(ctx context.Context) (interface{}, error) {
		return q.search.Posts(ctx, schemas.SearchSchema{Query: query, Page: page, Limit: limit})
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.PostsPage), nil
}

// SearchAll resolves one page of unified search results
func (q *Queries) SearchAll(ctx context.Context, query string, page int, limit int) (*schemas.SearchResponse, error) {
	page, limit = services.Normalize(page, limit)
	key := SearchKey("all", query, page, limit)

	v, err := q.store.Query(ctx, key, searchOptions(), func(ctx context.Context) (interface{}, error) {
		return q.search.Unified(ctx, schemas.SearchSchema{Query: query, Page: page, Limit: limit})
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.SearchResponse), nil
}

// RememberSearch records a query in the capped recent-search history
func (q *Queries) RememberSearch(query string) error {
	return q.storage.AppendRecent(storage.RecentSearchesKey, query, config.Config.MaxRecents)
}

// RecentSearches returns the recent-search history, newest first
func (q *Queries) RecentSearches() []string {
	return q.storage.Recent(storage.RecentSearchesKey)
}

// ClearRecentSearches drops the recent-search history
func (q *Queries) ClearRecentSearches() error {
	return q.storage.ClearRecent(storage.RecentSearchesKey)
}
