// Package seed loads the fixed dataset the backend starts with. Everything
// created at runtime is layered on top of this data and lost on restart.
package seed

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository/memory"
)

// DefaultUserEmail is the seeded identity unauthenticated requests fall
// back to on endpoints that do not require a token.
const DefaultUserEmail = "alex.doe@campus.edu"

var seedTime = time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

// Apply populates the store with the startup dataset.
func Apply(ctx context.Context, store *memory.Store) error {
	users := []*domain.User{
		{ID: "user-1", FirstName: "Irene", LastName: "Vasquez", Email: "admin@campus.edu", Role: domain.UserRoleSuperAdmin, CreatedOn: seedTime},
		{ID: "user-2", FirstName: "Maya", LastName: "Chen", Email: "maya.chen@campus.edu", Role: domain.UserRoleClubHead, CreatedOn: seedTime},
		{ID: "user-3", FirstName: "Darius", LastName: "Webb", Email: "darius.webb@campus.edu", Role: domain.UserRoleClubHead, CreatedOn: seedTime},
		{ID: "user-4", FirstName: "Alex", LastName: "Doe", Email: DefaultUserEmail, Role: domain.UserRoleStudent, CreatedOn: seedTime},
		{ID: "user-5", FirstName: "Priya", LastName: "Nair", Email: "priya.nair@campus.edu", Role: domain.UserRoleStudent, CreatedOn: seedTime},
		{ID: "user-6", FirstName: "Sam", LastName: "Ortiz", Email: "sam.ortiz@campus.edu", Role: domain.UserRoleStudent, CreatedOn: seedTime},
	}
	for _, user := range users {
		if err := store.UserRepository.Seed(ctx, user); err != nil {
			return err
		}
	}

	clubs := []*domain.Club{
		{
			ID:              "club-1",
			Name:            "Robotics Society",
			Description:     "Weekly build nights, competition teams and workshops for all skill levels.",
			Category:        "Technology",
			AllowJoining:    true,
			RequireApproval: false,
			AdminIDs:        []string{"user-2"},
			CreatedOn:       seedTime,
		},
		{
			ID:              "club-2",
			Name:            "Debate Union",
			Description:     "Competitive parliamentary debate. Tryouts reviewed by the executive board.",
			Category:        "Academics",
			AllowJoining:    true,
			RequireApproval: true,
			AdminIDs:        []string{"user-3"},
			CreatedOn:       seedTime,
		},
		{
			ID:              "club-3",
			Name:            "Photography Collective",
			Description:     "Photo walks, darkroom access and a yearly exhibition.",
			Category:        "Arts",
			AllowJoining:    true,
			RequireApproval: false,
			AdminIDs:        []string{"user-2"},
			CreatedOn:       seedTime,
		},
		{
			ID:              "club-4",
			Name:            "Honor Board",
			Description:     "Appointed student conduct panel. Membership by invitation only.",
			Category:        "Governance",
			AllowJoining:    false,
			RequireApproval: true,
			AdminIDs:        []string{"user-1", "user-3"},
			CreatedOn:       seedTime,
		},
	}
	for _, club := range clubs {
		if err := store.ClubRepository.Seed(ctx, club); err != nil {
			return err
		}
	}

	memberships := map[string][]string{
		"club-1": {"user-2", "user-5"},
		"club-2": {"user-3", "user-6"},
		"club-3": {"user-2"},
		"club-4": {"user-1", "user-3"},
	}
	for clubID, userIDs := range memberships {
		for _, userID := range userIDs {
			if err := store.MembershipRepository.AddMember(ctx, clubID, userID); err != nil {
				return err
			}
		}
	}

	events := []*domain.Event{
		{
			ID:          "event-1",
			Title:       "Autumn Build Night",
			Description: "Kickoff build session for the new competition season.",
			ClubID:      "club-1",
			OrganizerID: "user-2",
			StartTime:   seedTime.AddDate(0, 1, 0),
			EndTime:     seedTime.AddDate(0, 1, 0).Add(3 * time.Hour),
			Location:    "Engineering Hall 204",
			Capacity:    40,
			Status:      domain.EventStatusUpcoming,
			CreatedOn:   seedTime,
		},
		{
			ID:          "event-2",
			Title:       "Regional Debate Qualifier",
			Description: "Closed qualifier round against the regional league.",
			ClubID:      "club-2",
			OrganizerID: "user-3",
			StartTime:   seedTime.AddDate(0, -1, 0),
			EndTime:     seedTime.AddDate(0, -1, 0).Add(6 * time.Hour),
			Location:    "Main Auditorium",
			Capacity:    0,
			Status:      domain.EventStatusCompleted,
			CreatedOn:   seedTime,
		},
		{
			ID:          "event-3",
			Title:       "Golden Hour Photo Walk",
			Description: "Evening walk along the river; bring any camera.",
			ClubID:      "club-3",
			OrganizerID: "user-2",
			StartTime:   seedTime.AddDate(0, 0, 14),
			EndTime:     seedTime.AddDate(0, 0, 14).Add(2 * time.Hour),
			Location:    "Riverside Gate",
			Capacity:    15,
			Status:      domain.EventStatusUpcoming,
			CreatedOn:   seedTime,
		},
	}
	for _, event := range events {
		if err := store.EventRepository.Seed(ctx, event); err != nil {
			return err
		}
	}

	attendees := map[string][]string{
		"event-1": {"user-2", "user-5"},
		"event-2": {"user-3", "user-6"},
	}
	for eventID, userIDs := range attendees {
		for _, userID := range userIDs {
			if err := store.EventRepository.AddAttendee(ctx, eventID, userID); err != nil {
				return err
			}
		}
	}

	announcements := []*domain.Announcement{
		{
			ID:         "ann-1",
			Title:      "Lab access hours extended",
			Content:    "The robotics lab is now open until 22:00 on weekdays.",
			ClubID:     "club-1",
			AuthorID:   "user-2",
			AuthorName: "Maya Chen",
			CreatedOn:  seedTime.Add(24 * time.Hour),
		},
		{
			ID:         "ann-2",
			Title:      "Tryout results posted",
			Content:    "Results for the autumn tryouts are on the union board.",
			ClubID:     "club-2",
			AuthorID:   "user-3",
			AuthorName: "Darius Webb",
			CreatedOn:  seedTime.Add(48 * time.Hour),
		},
	}
	for _, ann := range announcements {
		if err := store.AnnouncementRepository.Seed(ctx, ann); err != nil {
			return err
		}
	}

	return nil
}
