package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"linkup_client/schemas"
)

const eventsBody = `{
	"page": 1, "limit": 10, "total": 1, "hasMore": false,
	"events": [
		{"id":"e1","host":{"id":"u1","name":"Asha"},"title":"Park run","attendees":12,"isJoined":false}
	]
}`

func TestEventResolvesFromListSeedWithoutRequest(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /events":    eventsBody,
		"GET /events/e1": `{"id":"e1","host":{"id":"u1","name":"Asha"},"title":"Park run","attendees":12}`,
	})

	_, err := h.queries.ListEvents(context.Background(), 1, 10)
	require.NoError(t, err)

	event, err := h.queries.Event(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, "Park run", event.Title)
	require.EqualValues(t, 0, h.hitCount("GET /events/e1"), "the list seed covers the detail lookup")
}

func TestEventFallsBackToByIDEndpoint(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /events/e9": `{"id":"e9","host":{"id":"u2","name":"Ravi"},"title":"Pop-up gig","attendees":3}`,
	})

	event, err := h.queries.Event(context.Background(), "e9")
	require.NoError(t, err)
	require.Equal(t, "Pop-up gig", event.Title)
	require.EqualValues(t, 1, h.hitCount("GET /events/e9"))
}

func TestToggleEventJoinKeepsListAndDetailConsistent(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /events":          eventsBody,
		"POST /events/e1/join": `{"eventId":"e1","attendees":13,"isJoined":true}`,
	})

	_, err := h.queries.ListEvents(context.Background(), 1, 10)
	require.NoError(t, err)

	res, err := h.queries.ToggleEventJoin(context.Background(), "e1")
	require.NoError(t, err)
	require.True(t, res.IsJoined)

	v, ok := h.cache.Peek(EventKey("e1"))
	require.True(t, ok)
	detail := v.(*schemas.Event)
	require.Equal(t, 13, detail.Attendees)
	require.True(t, detail.IsJoined)

	v, ok = h.cache.Peek(EventListKey(1, 10))
	require.True(t, ok)
	inList := v.(*schemas.EventsPage).Events[0]
	require.Equal(t, detail.Attendees, inList.Attendees)
	require.Equal(t, detail.IsJoined, inList.IsJoined)
}

func TestToggleEventJoinRollsBackOnFailure(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /events":          eventsBody,
		"POST /events/e1/join": "", // 500
	})

	_, err := h.queries.ListEvents(context.Background(), 1, 10)
	require.NoError(t, err)

	_, err = h.queries.ToggleEventJoin(context.Background(), "e1")
	require.Error(t, err)

	v, ok := h.cache.Peek(EventKey("e1"))
	require.True(t, ok)
	detail := v.(*schemas.Event)
	require.Equal(t, 12, detail.Attendees)
	require.False(t, detail.IsJoined)
}

func TestCreateEventPrependsToFirstPage(t *testing.T) {
	h := newHarness(t, map[string]string{
		"GET /events":  eventsBody,
		"POST /events": `{"id":"e2","host":{"id":"u1","name":"Asha"},"title":"Evening ride","startsAt":1756600000}`,
	})

	_, err := h.queries.ListEvents(context.Background(), 1, 10)
	require.NoError(t, err)

	event, err := h.queries.CreateEvent(context.Background(), schemas.CreateEventSchema{
		Title:    "Evening ride",
		StartsAt: 1756600000,
	})
	require.NoError(t, err)
	require.Equal(t, time.UnixMilli(1756600000), event.StartsAtTime())

	v, ok := h.cache.Peek(EventListKey(1, 10))
	require.True(t, ok)
	page := v.(*schemas.EventsPage)
	require.Equal(t, event.ID, page.Events[0].ID)
	require.Equal(t, 2, page.Total)
}
