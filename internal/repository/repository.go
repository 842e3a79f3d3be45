package repository

import (
	"context"

	"clubhub-backend/internal/domain"
)

type UserRepository interface {
	// Create stores a self-registered user, silently overwriting any prior
	// registration at the same email.
	Create(ctx context.Context, user *domain.User) error
	// Seed stores a user present at process start.
	Seed(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail resolves registered identities before seeded ones.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetRegisteredByEmail(ctx context.Context, email string) (*domain.User, error)
	GetSeededByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) error
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	Seed(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
	Delete(ctx context.Context, id string) error
}

// MembershipRepository owns the per-club member sets and the membership
// request history. No other repository mutates either collection.
type MembershipRepository interface {
	AddMember(ctx context.Context, clubID, userID string) error
	RemoveMember(ctx context.Context, clubID, userID string) error
	IsMember(ctx context.Context, clubID, userID string) (bool, error)
	ListMembers(ctx context.Context, clubID string) ([]string, error)
	MemberCount(ctx context.Context, clubID string) (int, error)
	ListClubsForUser(ctx context.Context, userID string) ([]string, error)

	CreateRequest(ctx context.Context, req *domain.MembershipRequest) error
	GetRequest(ctx context.Context, id string) (*domain.MembershipRequest, error)
	UpdateRequest(ctx context.Context, req *domain.MembershipRequest) error
	// ListRequestsByClub filters by status when status is non-empty.
	ListRequestsByClub(ctx context.Context, clubID string, status domain.MembershipRequestStatus) ([]domain.MembershipRequest, error)
	// LatestRequest returns the most recent request for the (club, user)
	// pair, or nil when the user never applied.
	LatestRequest(ctx context.Context, clubID, userID string) (*domain.MembershipRequest, error)
	CountPending(ctx context.Context, clubID string) (int, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Seed(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)

	AddAttendee(ctx context.Context, eventID, userID string) error
	RemoveAttendee(ctx context.Context, eventID, userID string) error
	IsAttendee(ctx context.Context, eventID, userID string) (bool, error)
	ListAttendees(ctx context.Context, eventID string) ([]string, error)
	AttendeeCount(ctx context.Context, eventID string) (int, error)
	ListEventsForUser(ctx context.Context, userID string) ([]string, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, ann *domain.Announcement) error
	Seed(ctx context.Context, ann *domain.Announcement) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Announcement, error)
}
