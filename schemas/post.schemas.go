package schemas

import (
	"time"

	"linkup_client/helpers"
)

// PollOption struct
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll struct
type Poll struct {
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
	EndsAt   int64        `json:"endsAt"`
}

// Post struct lives in both the list caches and the detail cache
type Post struct {
	ID        string   `json:"id" validate:"required"`
	Author    User     `json:"author"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	Likes     int      `json:"likes"`
	Replies   int      `json:"replies"`
	IsLiked   bool     `json:"isLiked"`
	IsSaved   bool     `json:"isSaved"`
	Poll      *Poll    `json:"poll,omitempty"`
	CreatedAt int64    `json:"createdAt"`
}

// CreatedAtTime returns the creation timestamp as a time object
func (p Post) CreatedAtTime() time.Time {
	return helpers.MilisecondsToTime(p.CreatedAt)
}

// CreatePostSchema struct
type CreatePostSchema struct {
	Content string   `json:"content" validate:"required,max=2000"`
	Images  []string `json:"images,omitempty"`
	Poll    *Poll    `json:"poll,omitempty"`
}

// ListPostsSchema struct carries the normalized list filters
type ListPostsSchema struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	UserID string `json:"userId,omitempty"`
}

// PostsPage struct is one page of the feed
type PostsPage struct {
	Page
	Posts []Post `json:"posts"`
}

// LikeResponse struct is the authoritative like state after a toggle
type LikeResponse struct {
	PostID  string `json:"postId" validate:"required"`
	Likes   int    `json:"likes"`
	IsLiked bool   `json:"isLiked"`
}

// SaveResponse struct is the authoritative save state after a toggle
type SaveResponse struct {
	PostID  string `json:"postId" validate:"required"`
	IsSaved bool   `json:"isSaved"`
}
