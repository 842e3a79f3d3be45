package service

import (
	"context"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

// DashboardStats is a role-sensitive snapshot computed by filtering the
// live collections at request time; nothing here is cached.
type DashboardStats struct {
	TotalClubs         int `json:"totalClubs"`
	TotalEvents        int `json:"totalEvents"`
	TotalAnnouncements int `json:"totalAnnouncements"`
	TotalUsers         int `json:"totalUsers,omitempty"`
	PendingRequests    int `json:"pendingRequests,omitempty"`
	MyClubs            int `json:"myClubs,omitempty"`
	MyEvents           int `json:"myEvents,omitempty"`
}

type DashboardOverview struct {
	Clubs           []domain.ClubView          `json:"clubs"`
	Events          []domain.EventView         `json:"events"`
	PendingRequests []domain.MembershipRequest `json:"pendingRequests,omitempty"`
}

type dashboardService struct {
	clubRepo       repository.ClubRepository
	userRepo       repository.UserRepository
	eventRepo      repository.EventRepository
	annRepo        repository.AnnouncementRepository
	membershipRepo repository.MembershipRepository
	clubSvc        ClubService
	eventSvc       EventService
}

func NewDashboardService(
	clubRepo repository.ClubRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	annRepo repository.AnnouncementRepository,
	membershipRepo repository.MembershipRepository,
	clubSvc ClubService,
	eventSvc EventService,
) DashboardService {
	return &dashboardService{
		clubRepo:       clubRepo,
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		annRepo:        annRepo,
		membershipRepo: membershipRepo,
		clubSvc:        clubSvc,
		eventSvc:       eventSvc,
	}
}

func (s *dashboardService) Stats(ctx context.Context, user *domain.User) (*DashboardStats, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	anns, err := s.annRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{}

	switch user.Role {
	case domain.UserRoleSuperAdmin:
		users, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		stats.TotalClubs = len(clubs)
		stats.TotalEvents = len(events)
		stats.TotalAnnouncements = len(anns)
		stats.TotalUsers = len(users)
		for _, club := range clubs {
			pending, err := s.membershipRepo.CountPending(ctx, club.ID)
			if err != nil {
				return nil, err
			}
			stats.PendingRequests += pending
		}

	case domain.UserRoleClubHead:
		for _, club := range clubs {
			if !club.IsAdmin(user.ID) {
				continue
			}
			stats.TotalClubs++
			pending, err := s.membershipRepo.CountPending(ctx, club.ID)
			if err != nil {
				return nil, err
			}
			stats.PendingRequests += pending
			for _, event := range events {
				if event.ClubID == club.ID {
					stats.TotalEvents++
				}
			}
			for _, ann := range anns {
				if ann.ClubID == club.ID {
					stats.TotalAnnouncements++
				}
			}
		}

	default:
		myClubs, err := s.membershipRepo.ListClubsForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		myEvents, err := s.eventRepo.ListEventsForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		stats.TotalClubs = len(clubs)
		stats.TotalEvents = len(events)
		stats.TotalAnnouncements = len(anns)
		stats.MyClubs = len(myClubs)
		stats.MyEvents = len(myEvents)
	}

	return stats, nil
}

func (s *dashboardService) Overview(ctx context.Context, user *domain.User) (*DashboardOverview, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		Clubs:  []domain.ClubView{},
		Events: []domain.EventView{},
	}

	switch user.Role {
	case domain.UserRoleSuperAdmin:
		for _, club := range clubs {
			view, err := s.clubSvc.GetClub(ctx, club.ID)
			if err != nil {
				return nil, err
			}
			overview.Clubs = append(overview.Clubs, *view)
			pending, err := s.membershipRepo.ListRequestsByClub(ctx, club.ID, domain.MembershipRequestStatusPending)
			if err != nil {
				return nil, err
			}
			overview.PendingRequests = append(overview.PendingRequests, pending...)
		}
		events, err := s.eventRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, event := range events {
			view, err := s.eventSvc.GetEvent(ctx, event.ID)
			if err != nil {
				return nil, err
			}
			overview.Events = append(overview.Events, *view)
		}

	case domain.UserRoleClubHead:
		for _, club := range clubs {
			if !club.IsAdmin(user.ID) {
				continue
			}
			view, err := s.clubSvc.GetClub(ctx, club.ID)
			if err != nil {
				return nil, err
			}
			overview.Clubs = append(overview.Clubs, *view)
			pending, err := s.membershipRepo.ListRequestsByClub(ctx, club.ID, domain.MembershipRequestStatusPending)
			if err != nil {
				return nil, err
			}
			overview.PendingRequests = append(overview.PendingRequests, pending...)

			events, err := s.eventRepo.List(ctx)
			if err != nil {
				return nil, err
			}
			for _, event := range events {
				if event.ClubID != club.ID {
					continue
				}
				eview, err := s.eventSvc.GetEvent(ctx, event.ID)
				if err != nil {
					return nil, err
				}
				overview.Events = append(overview.Events, *eview)
			}
		}

	default:
		myClubIDs, err := s.membershipRepo.ListClubsForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		for _, clubID := range myClubIDs {
			view, err := s.clubSvc.GetClub(ctx, clubID)
			if err != nil {
				continue
			}
			overview.Clubs = append(overview.Clubs, *view)
		}
		myEvents, err := s.eventSvc.MyEvents(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		overview.Events = myEvents
	}

	return overview, nil
}
