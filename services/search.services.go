package services

import (
	"context"

	"linkup_client/client"
	"linkup_client/errors"
	"linkup_client/schemas"
)

// SearchService maps the search endpoints
type SearchService struct {
	c *client.Client
}

// NewSearchService builds the search service
func NewSearchService(c *client.Client) *SearchService {
	return &SearchService{c: c}
}

func (s *SearchService) query(req schemas.SearchSchema) string {
	params := pageQuery(req.Page, req.Limit)
	params.Set("q", req.Query)
	return params.Encode()
}

// Users searches user records
func (s *SearchService) Users(ctx context.Context, req schemas.SearchSchema) (*schemas.UsersPage, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.UsersPage
	if err := s.c.Get(ctx, "/search/users?"+s.query(req), &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to search users")
	}
	return &out, nil
}

// Posts searches posts
func (s *SearchService) Posts(ctx context.Context, req schemas.SearchSchema) (*schemas.PostsPage, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.PostsPage
	if err := s.c.Get(ctx, "/search/posts?"+s.query(req), &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to search posts")
	}
	return &out, nil
}

// Unified searches users and posts together
func (s *SearchService) Unified(ctx context.Context, req schemas.SearchSchema) (*schemas.SearchResponse, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.SearchResponse
	if err := s.c.Get(ctx, "/search?"+s.query(req), &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to search")
	}
	return &out, nil
}
