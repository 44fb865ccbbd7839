package services

import (
	"context"

	"linkup_client/client"
	"linkup_client/errors"
	"linkup_client/schemas"
)

// PostService maps the post endpoints
type PostService struct {
	c *client.Client
}

// NewPostService builds the post service
func NewPostService(c *client.Client) *PostService {
	return &PostService{c: c}
}

// Create publishes a new post
func (s *PostService) Create(ctx context.Context, req schemas.CreatePostSchema) (*schemas.Post, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.Post
	if err := s.c.Post(ctx, "/posts", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to create post")
	}
	return &out, nil
}

// List fetches one page of the feed
func (s *PostService) List(ctx context.Context, req schemas.ListPostsSchema) (*schemas.PostsPage, error) {
	params := pageQuery(req.Page, req.Limit)
	if req.UserID != "" {
		params.Set("userId", req.UserID)
	}
	var out schemas.PostsPage
	if err := s.c.Get(ctx, client.WithQuery("/posts", params), &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load posts")
	}
	return &out, nil
}

// LikeToggle flips the like state of a post and returns the server state
func (s *PostService) LikeToggle(ctx context.Context, postID string) (*schemas.LikeResponse, error) {
	var out schemas.LikeResponse
	if err := s.c.Post(ctx, "/posts/"+postID+"/like", nil, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update like")
	}
	return &out, nil
}

// SaveToggle flips the save state of a post and returns the server state
func (s *PostService) SaveToggle(ctx context.Context, postID string) (*schemas.SaveResponse, error) {
	var out schemas.SaveResponse
	if err := s.c.Post(ctx, "/posts/"+postID+"/save", nil, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update save")
	}
	return &out, nil
}

// Delete removes a post
func (s *PostService) Delete(ctx context.Context, postID string) error {
	if err := s.c.Delete(ctx, "/posts/"+postID, nil); err != nil {
		return errors.WithFallback(err, "Failed to delete post")
	}
	return nil
}
