package service

import (
	"context"
	"testing"

	"clubhub-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(store *memory.Store) DashboardService {
	clubSvc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	eventSvc := NewEventService(store.EventRepository, store.ClubRepository)
	return NewDashboardService(
		store.ClubRepository,
		store.UserRepository,
		store.EventRepository,
		store.AnnouncementRepository,
		store.MembershipRepository,
		clubSvc,
		eventSvc,
	)
}

func TestDashboardStats_SuperAdminSeesGlobalTotals(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newDashboardService(store)
	admin := testUser(ctx, t, store, "admin@campus.edu")

	stats, err := svc.Stats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalClubs)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.TotalAnnouncements)
	assert.Equal(t, 6, stats.TotalUsers)
	assert.Equal(t, 0, stats.PendingRequests)
}

func TestDashboardStats_ClubHeadScopedToOwnClubs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newDashboardService(store)
	head := testUser(ctx, t, store, "maya.chen@campus.edu")

	// Maya heads the robotics and photography clubs.
	stats, err := svc.Stats(ctx, head)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalClubs)
	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 1, stats.TotalAnnouncements)
	assert.Equal(t, 0, stats.TotalUsers)
}

func TestDashboardStats_StudentSeesPersonalCounts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newDashboardService(store)
	membershipSvc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	stats, err := svc.Stats(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalClubs)
	assert.Equal(t, 0, stats.MyClubs)
	assert.Equal(t, 0, stats.MyEvents)

	_, err = membershipSvc.RequestJoin(ctx, "club-1", student, "")
	require.NoError(t, err)

	stats, err = svc.Stats(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MyClubs)
}

func TestDashboardStats_PendingRequestsCounted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newDashboardService(store)
	membershipSvc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	admin := testUser(ctx, t, store, "admin@campus.edu")

	result, err := membershipSvc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)
	require.True(t, result.RequiresApproval)

	stats, err := svc.Stats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingRequests)
}

func TestDashboardOverview_StudentListsOwnClubsAndEvents(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newDashboardService(store)
	eventSvc := NewEventService(store.EventRepository, store.ClubRepository)
	membershipSvc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	_, err := membershipSvc.RequestJoin(ctx, "club-1", student, "")
	require.NoError(t, err)
	require.NoError(t, eventSvc.JoinEvent(ctx, "event-1", student.ID))

	overview, err := svc.Overview(ctx, student)
	require.NoError(t, err)
	require.Len(t, overview.Clubs, 1)
	assert.Equal(t, "club-1", overview.Clubs[0].ID)
	require.Len(t, overview.Events, 1)
	assert.Equal(t, "event-1", overview.Events[0].ID)
	assert.Empty(t, overview.PendingRequests)
}

func TestDashboardOverview_ClubHeadSeesPendingRequests(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newDashboardService(store)
	membershipSvc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	head := testUser(ctx, t, store, "darius.webb@campus.edu")

	_, err := membershipSvc.RequestJoin(ctx, "club-2", student, "let me in")
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, head)
	require.NoError(t, err)
	require.Len(t, overview.PendingRequests, 1)
	assert.Equal(t, student.ID, overview.PendingRequests[0].UserID)
}
