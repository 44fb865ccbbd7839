package queries

import (
	"context"

	"linkup_client/cache"
	"linkup_client/schemas"
	"linkup_client/services"
)

// ListEvents resolves one normalized page of events and seeds the detail
// cache for every event on it
func (q *Queries) ListEvents(ctx context.Context, page int, limit int) (*schemas.EventsPage, error) {
	page, limit = services.Normalize(page, limit)
	key := EventListKey(page, limit)

	v, err := q.store.Query(ctx, key, feedOptions(), func(ctx context.Context) (interface{}, error) {
		result, err := q.events.List(ctx, schemas.ListEventsSchema{Page: page, Limit: limit})
		if err != nil {
			return nil, err
		}
		for i := range result.Events {
			event := result.Events[i]
			q.store.Set(EventKey(event.ID), feedOptions(), &event)
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.EventsPage), nil
}

// Event resolves one event record, from cache or the by-id endpoint
func (q *Queries) Event(ctx context.Context, eventID string) (*schemas.Event, error) {
	v, err := q.store.Query(ctx, EventKey(eventID), feedOptions(), func(ctx context.Context) (interface{}, error) {
		return q.events.ByID(ctx, eventID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.Event), nil
}

// CreateEvent publishes an event; on success it is prepended to every
// cached first page and its detail cache is seeded
func (q *Queries) CreateEvent(ctx context.Context, req schemas.CreateEventSchema) (*schemas.Event, error) {
	defer q.store.InvalidateResource(ResourceEvents)

	event, err := q.events.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	q.store.Set(EventKey(event.ID), feedOptions(), event)
	for _, key := range q.store.Keys(ResourceEvents) {
		if key.Params["page"] != "1" {
			continue
		}
		q.store.Update(key, func(v interface{}) interface{} {
			page, ok := v.(*schemas.EventsPage)
			if !ok {
				return v
			}
			next := *page
			next.Events = append([]schemas.Event{*event}, page.Events...)
			next.Total++
			return &next
		})
	}
	return event, nil
}

// ToggleEventSave optimistically flips the save state of an event
func (q *Queries) ToggleEventSave(ctx context.Context, eventID string) (*schemas.EventSaveResponse, error) {
	patchesFor := q.eventPatches(eventID)

	v, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourceEvent,
		Patches:  patchesFor(toggleEventSave),
		Run: func(ctx context.Context) (interface{}, error) {
			return q.events.SaveToggle(ctx, eventID)
		},
		Commit: func(server interface{}) []cache.Patch {
			res := server.(*schemas.EventSaveResponse)
			return patchesFor(func(e schemas.Event) schemas.Event {
				e.IsSaved = res.IsSaved
				return e
			})
		},
		Invalidate: []string{ResourceEvents},
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.EventSaveResponse), nil
}

// ToggleEventJoin optimistically flips the join state and the attendee
// count of an event
func (q *Queries) ToggleEventJoin(ctx context.Context, eventID string) (*schemas.JoinResponse, error) {
	patchesFor := q.eventPatches(eventID)

	v, err := q.store.RunMutation(ctx, cache.Mutation{
		Resource: ResourceEvent,
		Patches:  patchesFor(toggleEventJoin),
		Run: func(ctx context.Context) (interface{}, error) {
			return q.events.JoinToggle(ctx, eventID)
		},
		Commit: func(server interface{}) []cache.Patch {
			res := server.(*schemas.JoinResponse)
			return patchesFor(func(e schemas.Event) schemas.Event {
				e.IsJoined = res.IsJoined
				e.Attendees = res.Attendees
				return e
			})
		},
		Invalidate: []string{ResourceEvents},
	})
	if err != nil {
		return nil, err
	}
	return v.(*schemas.JoinResponse), nil
}

func (q *Queries) eventPatches(eventID string) func(fn func(schemas.Event) schemas.Event) []cache.Patch {
	keys := []cache.Key{EventKey(eventID)}
	keys = append(keys, q.store.Keys(ResourceEvents)...)

	return func(fn func(schemas.Event) schemas.Event) []cache.Patch {
		patches := make([]cache.Patch, 0, len(keys))
		for _, key := range keys {
			key := key
			patches = append(patches, cache.Patch{Key: key, Apply: func(v interface{}) interface{} {
				return applyEvent(v, eventID, fn)
			}})
		}
		return patches
	}
}

func toggleEventSave(e schemas.Event) schemas.Event {
	e.IsSaved = !e.IsSaved
	return e
}

func toggleEventJoin(e schemas.Event) schemas.Event {
	if e.IsJoined {
		e.Attendees--
	} else {
		e.Attendees++
	}
	e.IsJoined = !e.IsJoined
	return e
}

// applyEvent maps an event transform over any cache shape holding it
func applyEvent(v interface{}, eventID string, fn func(schemas.Event) schemas.Event) interface{} {
	switch val := v.(type) {
	case *schemas.Event:
		if val.ID != eventID {
			return v
		}
		next := fn(*val)
		return &next
	case *schemas.EventsPage:
		next := *val
		next.Events = append([]schemas.Event(nil), val.Events...)
		for i, e := range next.Events {
			if e.ID == eventID {
				next.Events[i] = fn(e)
			}
		}
		return &next
	}
	return v
}
