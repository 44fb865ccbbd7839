package queries

import (
	"context"

	"linkup_client/cache"
	"linkup_client/errors"
	"linkup_client/schemas"
	"linkup_client/services"
)

// ListPosts resolves one normalized page of the feed and seeds the
// detail cache for every post on it
func (q *Queries) ListPosts(ctx context.Context, page int, limit int, userID string) (*schemas.PostsPage, error) {
	page, limit = services.Normalize(page, limit)
	key := PostListKey(page, limit, userID)

	v, err := q.store.Query(ctx, key, feedOptions(), func(ctx context.Context) (interface{}, error) {
		result, err := q.posts.List(ctx, schemas.ListPostsSchema{Page: page, Limit: limit, UserID: userID})
		if err != nil {
			return nil, err
		}
		q.seedPostDetails(result.Posts)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.PostsPage), nil
}

func (q *Queries) seedPostDetails(posts []schemas.Post) {
	for i := range posts {
		post := posts[i]
		q.store.Set(PostKey(post.ID), feedOptions(), &post)
	}
}

// Post resolves a post from the detail cache; details are seeded by list
// and create queries, there is no by-id endpoint
func (q *Queries) Post(postID string) (*schemas.Post, error) {
	v, ok := q.store.Peek(PostKey(postID))
	if !ok {
		return nil, errors.Request(errors.KindUnknown, 0, "Post not available")
	}
	return v.(*schemas.Post), nil
}

// CreatePost publishes a post; on success the new post is prepended to
// every matching first-page list and its detail cache is seeded. List
// queries are invalidated either way to reconcile pagination counts.
func (q *Queries) CreatePost(ctx context.Context, req schemas.CreatePostSchema) (*schemas.Post, error) {
	defer q.store.InvalidateResource(ResourcePosts)

	post, err := q.posts.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	q.store.Set(PostKey(post.ID), feedOptions(), post)
	for _, key := range q.store.Keys(ResourcePosts) {
		if !listMatchesAuthor(key, post.Author.ID) {
			continue
		}
		q.store.Update(key, func(v interface{}) interface{} {
			page, ok := v.(*schemas.PostsPage)
			if !ok {
				return v
			}
			next := *page
			next.Posts = append([]schemas.Post{*post}, page.Posts...)
			next.Total++
			return &next
		})
	}
	return post, nil
}

// listMatchesAuthor reports whether a new post by author belongs at the
// front of the list addressed by key
func listMatchesAuthor(key cache.Key, authorID string) bool {
	if key.Params["page"] != "1" {
		return false
	}
	owner := key.Params["userId"]
	return owner == "" || owner == authorID
}

// ToggleLike optimistically flips the like state of a post in every
// cache location that denormalizes it
func (q *Queries) ToggleLike(ctx context.Context, postID string) (*schemas.LikeResponse, error) {
	patchesFor := q.postPatches(postID)

	v, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourcePost,
		Patches:  patchesFor(togglePostLike),
		Run: func(ctx context.Context) (interface{}, error) {
			return q.posts.LikeToggle(ctx, postID)
		},
		Commit: func(server interface{}) []cache.Patch {
			res := server.(*schemas.LikeResponse)
			return patchesFor(func(p schemas.Post) schemas.Post {
				p.Likes = res.Likes
				p.IsLiked = res.IsLiked
				return p
			})
		},
		Invalidate: []string{ResourcePosts},
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.LikeResponse), nil
}

// ToggleSave optimistically flips the save state of a post
func (q *Queries) ToggleSave(ctx context.Context, postID string) (*schemas.SaveResponse, error) {
	patchesFor := q.postPatches(postID)

	v, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourcePost,
		Patches:  patchesFor(togglePostSave),
		Run: func(ctx context.Context) (interface{}, error) {
			return q.posts.SaveToggle(ctx, postID)
		},
		Commit: func(server interface{}) []cache.Patch {
			res := server.(*schemas.SaveResponse)
			return patchesFor(func(p schemas.Post) schemas.Post {
				p.IsSaved = res.IsSaved
				return p
			})
		},
		Invalidate: []string{ResourcePosts},
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.SaveResponse), nil
}

// DeletePost optimistically removes a post from every list; the detail
// entry is dropped once the server confirms
func (q *Queries) DeletePost(ctx context.Context, postID string) error {
	keys := q.store.Keys(ResourcePosts)

	patches := make([]cache.Patch, 0, len(keys))
	for _, key := range keys {
		key := key
		patches = append(patches, cache.Patch{Key: key, Apply: func(v interface{}) interface{} {
			page, ok := v.(*schemas.PostsPage)
			if !ok {
				return v
			}
			next := *page
			next.Posts = make([]schemas.Post, 0, len(page.Posts))
			for _, p := range page.Posts {
				if p.ID != postID {
					next.Posts = append(next.Posts, p)
				}
			}
			if len(next.Posts) < len(page.Posts) {
				next.Total--
			}
			return &next
		}})
	}

	_, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourcePost,
		Patches:  patches,
		Run: func(ctx context.Context) (interface{}, error) {
			return nil, q.posts.Delete(ctx, postID)
		},
		Invalidate: []string{ResourcePosts},
	})
	if err != nil {
		return err
	}
	q.store.Drop(PostKey(postID))
	return nil
}

// postPatches builds a patch factory over every cache location that can
// denormalize the post; the key set is captured once so optimistic and
// commit passes touch the same locations
func (q *Queries) postPatches(postID string) func(fn func(schemas.Post) schemas.Post) []cache.Patch {
	keys := []cache.Key{PostKey(postID)}
	keys = append(keys, q.store.Keys(ResourcePosts)...)
	keys = append(keys, q.store.Keys(ResourceSearch)...)

	return func(fn func(schemas.Post) schemas.Post) []cache.Patch {
		patches := make([]cache.Patch, 0, len(keys))
		for _, key := range keys {
			key := key
			patches = append(patches, cache.Patch{Key: key, Apply: func(v interface{}) interface{} {
				return applyPost(v, postID, fn)
			}})
		}
		return patches
	}
}

func togglePostLike(p schemas.Post) schemas.Post {
	if p.IsLiked {
		p.Likes--
	} else {
		p.Likes++
	}
	p.IsLiked = !p.IsLiked
	return p
}

func togglePostSave(p schemas.Post) schemas.Post {
	p.IsSaved = !p.IsSaved
	return p
}

// applyPost maps a post transform over any cache shape holding the post
func applyPost(v interface{}, postID string, fn func(schemas.Post) schemas.Post) interface{} {
	switch val := v.(type) {
	case *schemas.Post:
		if val.ID != postID {
			return v
		}
		next := fn(*val)
		return &next
	case *schemas.PostsPage:
		return postsPageWith(val, postID, fn)
	case *schemas.SearchResponse:
		next := *val
		next.Posts = append([]schemas.Post(nil), val.Posts...)
		for i, p := range next.Posts {
			if p.ID == postID {
				next.Posts[i] = fn(p)
			}
		}
		return &next
	}
	return v
}

func postsPageWith(page *schemas.PostsPage, postID string, fn func(schemas.Post) schemas.Post) *schemas.PostsPage {
	next := *page
	next.Posts = append([]schemas.Post(nil), page.Posts...)
	for i, p := range next.Posts {
		if p.ID == postID {
			next.Posts[i] = fn(p)
		}
	}
	return &next
}
