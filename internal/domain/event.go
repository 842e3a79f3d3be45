package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
)

// Event status is set at creation and never advanced by the clock.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ClubID      string      `json:"clubId"`
	OrganizerID string      `json:"organizerId"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	Location    string      `json:"location"`
	Capacity    int         `json:"capacity"`
	Status      EventStatus `json:"status"`
	Seeded      bool        `json:"-"`
	CreatedOn   time.Time   `json:"createdAt"`
}

// EventView is an event enriched with the live attendee set.
type EventView struct {
	Event
	AttendeeCount int      `json:"attendeeCount"`
	AttendeeIDs   []string `json:"attendees,omitempty"`
}
