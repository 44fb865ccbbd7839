package services

import (
	"context"
	"io"
	"time"

	"linkup_client/client"
	"linkup_client/errors"
	"linkup_client/helpers"
	"linkup_client/schemas"
)

// ResourceService maps the upload and location endpoints
type ResourceService struct {
	c *client.Client
}

// NewResourceService builds the resource service
func NewResourceService(c *client.Client) *ResourceService {
	return &ResourceService{c: c}
}

// UploadImage posts a multipart image into a target folder
func (s *ResourceService) UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (*schemas.UploadResponse, error) {
	out, err := s.c.Upload(ctx, "/upload/image", filename, file, folder)
	if err != nil {
		return nil, errors.WithFallback(err, "Failed to upload image")
	}
	return out, nil
}

// UpdateLocation reports one device location fix taken at the given time
func (s *ResourceService) UpdateLocation(ctx context.Context, req schemas.LocationSchema, at time.Time) error {
	if err := validateSchema(req); err != nil {
		return err
	}
	req.Timestamp = helpers.TimeToMiliseconds(at)
	if err := s.c.Post(ctx, "/location", req, nil); err != nil {
		return errors.WithFallback(err, "Failed to update location")
	}
	return nil
}
