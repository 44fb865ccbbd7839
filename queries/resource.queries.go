package queries

import (
	"context"
	"io"
	"time"

	"linkup_client/config"
	"linkup_client/schemas"
	"linkup_client/storage"
)

// UploadImage posts a multipart image and returns its hosted URL; upload
// results are not cached
func (q *Queries) UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (*schemas.UploadResponse, error) {
	return q.resources.UploadImage(ctx, filename, file, folder)
}

// UpdateLocation reports the current device location fix
func (q *Queries) UpdateLocation(ctx context.Context, loc schemas.LocationSchema) error {
	return q.resources.UpdateLocation(ctx, loc, time.Now())
}

// SaveFriendDraft records a friend id in the capped selected-friends draft
func (q *Queries) SaveFriendDraft(friendID string) error {
	return q.storage.AppendRecent(storage.SelectedFriendsKey, friendID, config.Config.MaxRecents)
}

// FriendDraft returns the selected-friends draft, newest first
func (q *Queries) FriendDraft() []string {
	return q.storage.Recent(storage.SelectedFriendsKey)
}

// ClearFriendDraft drops the selected-friends draft
func (q *Queries) ClearFriendDraft() error {
	return q.storage.ClearRecent(storage.SelectedFriendsKey)
}
