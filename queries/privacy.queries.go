package queries

import (
	"context"

	"linkup_client/cache"
	"linkup_client/schemas"
)

// PrivacySettings resolves the authenticated user's settings; settings
// change rarely so they carry the longer freshness window
func (q *Queries) PrivacySettings(ctx context.Context) (*schemas.PrivacySettings, error) {
	v, err := q.store.Query(ctx, PrivacyKey(), settingsOptions(), func(ctx context.Context) (interface{}, error) {
		return q.privacy.Get(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.PrivacySettings), nil
}

// UpdatePrivacy optimistically merges the supplied fields only; omitted
// fields keep their cached values
func (q *Queries) UpdatePrivacy(ctx context.Context, req schemas.UpdatePrivacySchema) (*schemas.PrivacySettings, error) {
	key := PrivacyKey()

	v, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourcePrivacy,
		Patches: []cache.Patch{{Key: key, Apply: func(v interface{}) interface{} {
			settings, ok := v.(*schemas.PrivacySettings)
			if !ok {
				return v
			}
			next := req.Merge(*settings)
			return &next
		}}},
		Run: func(ctx context.Context) (interface{}, error) {
			return q.privacy.Update(ctx, req)
		},
		Commit: func(server interface{}) []cache.Patch {
			res := server.(*schemas.PrivacySettings)
			return []cache.Patch{{Key: key, Apply: func(interface{}) interface{} {
				return res
			}}}
		},
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.PrivacySettings), nil
}
