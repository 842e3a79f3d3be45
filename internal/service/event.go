package service

import (
	"context"
	"strings"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

var (
	ErrAlreadyAttending = apperrors.Conflict("user is already attending this event")
	ErrEventFull        = apperrors.Conflict("event has reached capacity")
)

type eventService struct {
	eventRepo repository.EventRepository
	clubRepo  repository.ClubRepository
}

func NewEventService(eventRepo repository.EventRepository, clubRepo repository.ClubRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
	}
}

func (s *eventService) ListEvents(ctx context.Context, filter EventFilter) ([]domain.EventView, utils.Page, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, utils.Page{}, err
	}

	filtered := events[:0:0]
	for _, event := range events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.ClubID != "" && event.ClubID != filter.ClubID {
			continue
		}
		if filter.Category != "" && !s.clubInCategory(ctx, event.ClubID, filter.Category) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, event.Title, event.Description) {
			continue
		}
		filtered = append(filtered, event)
	}

	start, end, meta := utils.Paginate(len(filtered), filter.Page, filter.PageSize)
	views := make([]domain.EventView, 0, end-start)
	for _, event := range filtered[start:end] {
		view, err := s.enrich(ctx, event, false)
		if err != nil {
			return nil, utils.Page{}, err
		}
		views = append(views, *view)
	}
	return views, meta, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.EventView, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *event, true)
}

func (s *eventService) CreateEvent(ctx context.Context, organizer *domain.User, event *domain.Event) (*domain.EventView, error) {
	fields := map[string]bool{
		"title":  event.Title != "",
		"clubId": event.ClubID != "",
	}
	for _, present := range fields {
		if !present {
			return nil, apperrors.Validation("missing required fields", fields)
		}
	}
	if _, err := s.clubRepo.GetByID(ctx, event.ClubID); err != nil {
		return nil, err
	}

	event.OrganizerID = organizer.ID
	// Status is fixed at creation; nothing ever advances it by time.
	if event.Status != domain.EventStatusCompleted {
		event.Status = domain.EventStatusUpcoming
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return s.enrich(ctx, *event, true)
}

func (s *eventService) JoinEvent(ctx context.Context, eventID, userID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	attending, err := s.eventRepo.IsAttendee(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if attending {
		return ErrAlreadyAttending
	}

	if event.Capacity > 0 {
		count, err := s.eventRepo.AttendeeCount(ctx, eventID)
		if err != nil {
			return err
		}
		if count >= event.Capacity {
			return ErrEventFull
		}
	}

	return s.eventRepo.AddAttendee(ctx, eventID, userID)
}

func (s *eventService) LeaveEvent(ctx context.Context, eventID, userID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.eventRepo.RemoveAttendee(ctx, eventID, userID)
}

func (s *eventService) MyEvents(ctx context.Context, userID string) ([]domain.EventView, error) {
	eventIDs, err := s.eventRepo.ListEventsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]domain.EventView, 0, len(eventIDs))
	for _, id := range eventIDs {
		event, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		view, err := s.enrich(ctx, *event, false)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *eventService) enrich(ctx context.Context, event domain.Event, includeAttendees bool) (*domain.EventView, error) {
	count, err := s.eventRepo.AttendeeCount(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	view := &domain.EventView{Event: event, AttendeeCount: count}
	if includeAttendees {
		attendees, err := s.eventRepo.ListAttendees(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		view.AttendeeIDs = attendees
	}
	return view, nil
}

func (s *eventService) clubInCategory(ctx context.Context, clubID, category string) bool {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return false
	}
	return strings.EqualFold(club.Category, category)
}
