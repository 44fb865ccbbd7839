package services

import (
	"context"

	"linkup_client/client"
	"linkup_client/errors"
	"linkup_client/schemas"
)

// EventService maps the event endpoints
type EventService struct {
	c *client.Client
}

// NewEventService builds the event service
func NewEventService(c *client.Client) *EventService {
	return &EventService{c: c}
}

// Create publishes a new event
func (s *EventService) Create(ctx context.Context, req schemas.CreateEventSchema) (*schemas.Event, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.Event
	if err := s.c.Post(ctx, "/events", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to create event")
	}
	return &out, nil
}

// List fetches one page of events
func (s *EventService) List(ctx context.Context, req schemas.ListEventsSchema) (*schemas.EventsPage, error) {
	var out schemas.EventsPage
	if err := s.c.Get(ctx, client.WithQuery("/events", pageQuery(req.Page, req.Limit)), &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load events")
	}
	return &out, nil
}

// ByID fetches one event record
func (s *EventService) ByID(ctx context.Context, eventID string) (*schemas.Event, error) {
	var out schemas.Event
	if err := s.c.Get(ctx, "/events/"+eventID, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load event")
	}
	return &out, nil
}

// SaveToggle flips the save state of an event and returns the server state
func (s *EventService) SaveToggle(ctx context.Context, eventID string) (*schemas.EventSaveResponse, error) {
	var out schemas.EventSaveResponse
	if err := s.c.Post(ctx, "/events/"+eventID+"/save", nil, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update save")
	}
	return &out, nil
}

// JoinToggle flips the join state of an event and returns the server state
func (s *EventService) JoinToggle(ctx context.Context, eventID string) (*schemas.JoinResponse, error) {
	var out schemas.JoinResponse
	if err := s.c.Post(ctx, "/events/"+eventID+"/join", nil, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update attendance")
	}
	return &out, nil
}
