package schemas

import (
	"time"

	"linkup_client/helpers"
)

// Event struct is the scheduled-gathering analogue of Post
type Event struct {
	ID          string `json:"id" validate:"required"`
	Host        User   `json:"host"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cover       string `json:"cover"`
	StartsAt    int64  `json:"startsAt"`
	EndsAt      int64  `json:"endsAt"`
	Attendees   int    `json:"attendees"`
	IsSaved     bool   `json:"isSaved"`
	IsJoined    bool   `json:"isJoined"`
}

// StartsAtTime returns the start timestamp as a time object
func (e Event) StartsAtTime() time.Time {
	return helpers.MilisecondsToTime(e.StartsAt)
}

// EndsAtTime returns the end timestamp as a time object
func (e Event) EndsAtTime() time.Time {
	return helpers.MilisecondsToTime(e.EndsAt)
}

// CreateEventSchema struct
type CreateEventSchema struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Location    string `json:"location" validate:"max=200"`
	Cover       string `json:"cover,omitempty"`
	StartsAt    int64  `json:"startsAt" validate:"required"`
	EndsAt      int64  `json:"endsAt"`
}

// ListEventsSchema struct carries the normalized list filters
type ListEventsSchema struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// EventsPage struct is one page of events
type EventsPage struct {
	Page
	Events []Event `json:"events"`
}

// JoinResponse struct is the authoritative join state after a toggle
type JoinResponse struct {
	EventID   string `json:"eventId" validate:"required"`
	Attendees int    `json:"attendees"`
	IsJoined  bool   `json:"isJoined"`
}

// EventSaveResponse struct is the authoritative save state after a toggle
type EventSaveResponse struct {
	EventID string `json:"eventId" validate:"required"`
	IsSaved bool   `json:"isSaved"`
}
