package memory

import (
	"context"
	"sort"
	"time"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/google/uuid"
)

type eventRepository struct {
	events    map[string]*domain.Event
	attendees map[string]map[string]struct{} // eventID -> set of userIDs
}

func NewEventRepository() repository.EventRepository {
	return &eventRepository{
		events:    make(map[string]*domain.Event),
		attendees: make(map[string]map[string]struct{}),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedOn.IsZero() {
		event.CreatedOn = time.Now()
	}
	r.events[event.ID] = event
	return nil
}

func (r *eventRepository) Seed(ctx context.Context, event *domain.Event) error {
	event.Seeded = true
	if event.CreatedOn.IsZero() {
		event.CreatedOn = time.Now()
	}
	r.events[event.ID] = event
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.NotFound("event not found")
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].CreatedOn.Equal(events[j].CreatedOn) {
			return events[i].ID < events[j].ID
		}
		return events[i].CreatedOn.Before(events[j].CreatedOn)
	})
	return events, nil
}

func (r *eventRepository) AddAttendee(ctx context.Context, eventID, userID string) error {
	set, ok := r.attendees[eventID]
	if !ok {
		set = make(map[string]struct{})
		r.attendees[eventID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (r *eventRepository) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	if set, ok := r.attendees[eventID]; ok {
		delete(set, userID)
	}
	return nil
}

func (r *eventRepository) IsAttendee(ctx context.Context, eventID, userID string) (bool, error) {
	set, ok := r.attendees[eventID]
	if !ok {
		return false, nil
	}
	_, in := set[userID]
	return in, nil
}

func (r *eventRepository) ListAttendees(ctx context.Context, eventID string) ([]string, error) {
	set := r.attendees[eventID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *eventRepository) AttendeeCount(ctx context.Context, eventID string) (int, error) {
	return len(r.attendees[eventID]), nil
}

func (r *eventRepository) ListEventsForUser(ctx context.Context, userID string) ([]string, error) {
	var eventIDs []string
	for eventID, set := range r.attendees {
		if _, in := set[userID]; in {
			eventIDs = append(eventIDs, eventID)
		}
	}
	sort.Strings(eventIDs)
	return eventIDs, nil
}
