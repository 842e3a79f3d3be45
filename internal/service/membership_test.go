package service

import (
	"context"
	"testing"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository/memory"
	"clubhub-backend/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Apply(context.Background(), store))
	return store
}

func testUser(ctx context.Context, t *testing.T, store *memory.Store, email string) *domain.User {
	t.Helper()
	user, err := store.UserRepository.GetByEmail(ctx, email)
	require.NoError(t, err)
	return user
}

func TestRequestJoin_OpenClubAddsMemberDirectly(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	// club-1 allows joining without approval
	result, err := svc.RequestJoin(ctx, "club-1", student, "")
	require.NoError(t, err)
	assert.False(t, result.RequiresApproval)
	assert.Empty(t, result.RequestID)

	isMember, err := store.MembershipRepository.IsMember(ctx, "club-1", student.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	// No request record is issued for a direct join.
	reqs, err := store.MembershipRepository.ListRequestsByClub(ctx, "club-1", "")
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestRequestJoin_ApprovalClubCreatesPendingRequest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	result, err := svc.RequestJoin(ctx, "club-2", student, "please let me in")
	require.NoError(t, err)
	assert.True(t, result.RequiresApproval)
	assert.NotEmpty(t, result.RequestID)

	// Membership set is untouched until the request is decided.
	isMember, err := store.MembershipRepository.IsMember(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	req, err := store.MembershipRepository.GetRequest(ctx, result.RequestID)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipRequestStatusPending, req.Status)
	assert.Equal(t, student.FullName(), req.UserName)
	assert.Equal(t, "please let me in", req.Message)

	// A second join before resolution conflicts.
	_, err = svc.RequestJoin(ctx, "club-2", student, "")
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestRequestJoin_ExistingMemberConflicts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	// user-5 is seeded as a member of club-1
	member := testUser(ctx, t, store, "priya.nair@campus.edu")

	_, err := svc.RequestJoin(ctx, "club-1", member, "")
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestRequestJoin_ClosedClubForbidden(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	// club-4 has allowJoining=false
	_, err := svc.RequestJoin(ctx, "club-4", student, "")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestRequestJoin_UnknownClubNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	_, err := svc.RequestJoin(ctx, "no-such-club", student, "")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestApprove_AddsMemberAndIsNotRepeatable(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	head := testUser(ctx, t, store, "darius.webb@campus.edu")

	result, err := svc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)

	req, err := svc.Approve(ctx, "club-2", result.RequestID, head)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipRequestStatusApproved, req.Status)
	assert.Equal(t, head.ID, req.DecidedBy)
	require.NotNil(t, req.DecidedOn)

	isMember, err := store.MembershipRepository.IsMember(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	// Approving twice fails: the request is no longer pending.
	_, err = svc.Approve(ctx, "club-2", result.RequestID, head)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestApprove_RequiresClubAdmin(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	otherStudent := testUser(ctx, t, store, "priya.nair@campus.edu")
	superAdmin := testUser(ctx, t, store, "admin@campus.edu")

	result, err := svc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, "club-2", result.RequestID, otherStudent)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	// Super admins may decide any club's requests.
	_, err = svc.Approve(ctx, "club-2", result.RequestID, superAdmin)
	assert.NoError(t, err)
}

func TestApprove_UnknownRequestNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	head := testUser(ctx, t, store, "darius.webb@campus.edu")

	_, err := svc.Approve(ctx, "club-2", "no-such-request", head)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestApprove_RequestScopedToClub(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	superAdmin := testUser(ctx, t, store, "admin@campus.edu")

	result, err := svc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)

	// The request belongs to club-2, not club-4.
	_, err = svc.Approve(ctx, "club-4", result.RequestID, superAdmin)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestReject_RecordsDecisionAndAllowsReapplication(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	head := testUser(ctx, t, store, "darius.webb@campus.edu")

	first, err := svc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)

	req, err := svc.Reject(ctx, "club-2", first.RequestID, head, "tryouts are closed")
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipRequestStatusRejected, req.Status)
	assert.Equal(t, "tryouts are closed", req.Reason)

	status, err := svc.Status(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStateRejected, status.Status)
	assert.True(t, status.CanApply)

	// Re-application creates a fresh request; both stay in history.
	second, err := svc.RequestJoin(ctx, "club-2", student, "second try")
	require.NoError(t, err)
	assert.NotEqual(t, first.RequestID, second.RequestID)

	history, err := store.MembershipRepository.ListRequestsByClub(ctx, "club-2", "")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestStatus_Transitions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	head := testUser(ctx, t, store, "darius.webb@campus.edu")

	status, err := svc.Status(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStateNotMember, status.Status)
	assert.True(t, status.CanApply)

	result, err := svc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)

	status, err = svc.Status(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStatePending, status.Status)
	assert.False(t, status.CanApply)

	_, err = svc.Approve(ctx, "club-2", result.RequestID, head)
	require.NoError(t, err)

	status, err = svc.Status(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStateMember, status.Status)
	assert.False(t, status.CanApply)
}

func TestStatus_ApprovedRequestCountsAsMemberWithoutSetEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")
	head := testUser(ctx, t, store, "darius.webb@campus.edu")

	result, err := svc.RequestJoin(ctx, "club-2", student, "")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, "club-2", result.RequestID, head)
	require.NoError(t, err)

	// Force the inconsistency: membership set entry vanishes, the
	// approved request survives.
	require.NoError(t, store.MembershipRepository.RemoveMember(ctx, "club-2", student.ID))

	status, err := svc.Status(ctx, "club-2", student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStateMember, status.Status)
	assert.False(t, status.CanApply)
}

func TestLeave_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	_, err := svc.RequestJoin(ctx, "club-1", student, "")
	require.NoError(t, err)

	require.NoError(t, svc.Leave(ctx, "club-1", student.ID))
	// Leaving again is not an error.
	require.NoError(t, svc.Leave(ctx, "club-1", student.ID))

	isMember, err := store.MembershipRepository.IsMember(ctx, "club-1", student.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestRemoveMember_RequiresAdminAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	head := testUser(ctx, t, store, "maya.chen@campus.edu")
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	err := svc.RemoveMember(ctx, "club-1", student, "user-5")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, svc.RemoveMember(ctx, "club-1", head, "user-5"))
	require.NoError(t, svc.RemoveMember(ctx, "club-1", head, "user-5"))

	isMember, err := store.MembershipRepository.IsMember(ctx, "club-1", "user-5")
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestListRequests_FiltersByStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	head := testUser(ctx, t, store, "darius.webb@campus.edu")
	alex := testUser(ctx, t, store, "alex.doe@campus.edu")
	priya := testUser(ctx, t, store, "priya.nair@campus.edu")

	first, err := svc.RequestJoin(ctx, "club-2", alex, "")
	require.NoError(t, err)
	_, err = svc.RequestJoin(ctx, "club-2", priya, "")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, "club-2", first.RequestID, head, "no")
	require.NoError(t, err)

	pending, err := svc.ListRequests(ctx, "club-2", head, domain.MembershipRequestStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, priya.ID, pending[0].UserID)

	all, err := svc.ListRequests(ctx, "club-2", head, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Non-admins may not read the request queue.
	_, err = svc.ListRequests(ctx, "club-2", alex, "")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}
