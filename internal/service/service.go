package service

import (
	"context"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/utils"
)

type RegisterInput struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Role      domain.UserRole `json:"role"`
}

type AuthService interface {
	// Register creates a user and mints a fresh token. Registering an
	// already-used email silently overwrites the prior record.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type ClubFilter struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

type ClubService interface {
	ListClubs(ctx context.Context, filter ClubFilter) ([]domain.ClubView, utils.Page, error)
	GetClub(ctx context.Context, id string) (*domain.ClubView, error)
	// CreateClub seeds the creator as the club's sole admin and member.
	CreateClub(ctx context.Context, creator *domain.User, club *domain.Club) (*domain.ClubView, error)
	// DeleteClub removes runtime-created clubs; for seeded clubs it
	// succeeds without removing anything.
	DeleteClub(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
}

type JoinResult struct {
	RequiresApproval bool   `json:"requiresApproval"`
	RequestID        string `json:"requestId,omitempty"`
}

type MembershipService interface {
	RequestJoin(ctx context.Context, clubID string, user *domain.User, message string) (*JoinResult, error)
	Leave(ctx context.Context, clubID, userID string) error
	Status(ctx context.Context, clubID, userID string) (*domain.MembershipStatus, error)
	Approve(ctx context.Context, clubID, requestID string, actor *domain.User) (*domain.MembershipRequest, error)
	Reject(ctx context.Context, clubID, requestID string, actor *domain.User, reason string) (*domain.MembershipRequest, error)
	ListRequests(ctx context.Context, clubID string, actor *domain.User, status domain.MembershipRequestStatus) ([]domain.MembershipRequest, error)
	ListMembers(ctx context.Context, clubID string) ([]domain.User, error)
	RemoveMember(ctx context.Context, clubID string, actor *domain.User, targetUserID string) error
}

type EventFilter struct {
	Status   domain.EventStatus
	Category string
	ClubID   string
	Search   string
	Page     int
	PageSize int
}

type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]domain.EventView, utils.Page, error)
	GetEvent(ctx context.Context, id string) (*domain.EventView, error)
	CreateEvent(ctx context.Context, organizer *domain.User, event *domain.Event) (*domain.EventView, error)
	JoinEvent(ctx context.Context, eventID, userID string) error
	LeaveEvent(ctx context.Context, eventID, userID string) error
	MyEvents(ctx context.Context, userID string) ([]domain.EventView, error)
}

type AnnouncementService interface {
	List(ctx context.Context, clubID string, page, pageSize int) ([]domain.Announcement, utils.Page, error)
	Create(ctx context.Context, author *domain.User, ann *domain.Announcement) (*domain.Announcement, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Announcement, error)
}

type DashboardService interface {
	Stats(ctx context.Context, user *domain.User) (*DashboardStats, error)
	Overview(ctx context.Context, user *domain.User) (*DashboardOverview, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error)
	UpdateUserRole(ctx context.Context, actor *domain.User, userID string, role domain.UserRole) (*domain.User, error)
	// DeleteUser accepts the deletion and keeps the record; user records
	// are never removed in this backend.
	DeleteUser(ctx context.Context, actor *domain.User, userID string) error
}
