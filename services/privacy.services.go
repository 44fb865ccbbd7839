package services

import (
	"context"

	"linkup_client/client"
	"linkup_client/errors"
	"linkup_client/schemas"
)

// PrivacyService maps the privacy settings endpoints
type PrivacyService struct {
	c *client.Client
}

// NewPrivacyService builds the privacy service
func NewPrivacyService(c *client.Client) *PrivacyService {
	return &PrivacyService{c: c}
}

// Get fetches the authenticated user's privacy settings
func (s *PrivacyService) Get(ctx context.Context) (*schemas.PrivacySettings, error) {
	var out schemas.PrivacySettings
	if err := s.c.Get(ctx, "/users/me/privacy", &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load privacy settings")
	}
	return &out, nil
}

// Update patches the supplied settings fields only
func (s *PrivacyService) Update(ctx context.Context, req schemas.UpdatePrivacySchema) (*schemas.PrivacySettings, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.PrivacySettings
	if err := s.c.Patch(ctx, "/users/me/privacy", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update privacy settings")
	}
	return &out, nil
}
