package service

import (
	"context"
	"testing"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClub_CreatorBecomesSoleAdminAndMember(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	creator := testUser(ctx, t, store, "alex.doe@campus.edu")

	view, err := svc.CreateClub(ctx, creator, &domain.Club{
		Name:         "Chess Circle",
		Description:  "Casual and rated play.",
		Category:     "Games",
		AllowJoining: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{creator.ID}, view.AdminIDs)
	assert.Equal(t, 1, view.MemberCount)
	assert.Equal(t, []string{creator.ID}, view.MemberIDs)
	require.NotNil(t, view.ClubHead)
	assert.Equal(t, creator.ID, view.ClubHead.ID)
}

func TestCreateClub_MissingNameFailsValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	creator := testUser(ctx, t, store, "alex.doe@campus.edu")

	_, err := svc.CreateClub(ctx, creator, &domain.Club{Category: "Games"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestMemberCount_TracksLiveMembershipSet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	clubSvc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	membershipSvc := NewMembershipService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	student := testUser(ctx, t, store, "alex.doe@campus.edu")

	before, err := clubSvc.GetClub(ctx, "club-1")
	require.NoError(t, err)

	_, err = membershipSvc.RequestJoin(ctx, "club-1", student, "")
	require.NoError(t, err)

	after, err := clubSvc.GetClub(ctx, "club-1")
	require.NoError(t, err)
	assert.Equal(t, before.MemberCount+1, after.MemberCount)
	assert.Contains(t, after.MemberIDs, student.ID)

	require.NoError(t, membershipSvc.Leave(ctx, "club-1", student.ID))

	final, err := clubSvc.GetClub(ctx, "club-1")
	require.NoError(t, err)
	assert.Equal(t, before.MemberCount, final.MemberCount)
}

func TestDeleteClub_SeededClubSurvivesWithSuccess(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)

	// Deleting a seeded club reports success without removing it.
	require.NoError(t, svc.DeleteClub(ctx, "club-1"))
	_, err := svc.GetClub(ctx, "club-1")
	assert.NoError(t, err)
}

func TestDeleteClub_RuntimeClubIsRemoved(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)
	creator := testUser(ctx, t, store, "alex.doe@campus.edu")

	view, err := svc.CreateClub(ctx, creator, &domain.Club{Name: "Pop-up Club", Category: "Misc"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClub(ctx, view.ID))
	_, err = svc.GetClub(ctx, view.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListClubs_FilterAndPagination(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)

	tech, _, err := svc.ListClubs(ctx, ClubFilter{Category: "Technology"})
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "club-1", tech[0].ID)

	search, _, err := svc.ListClubs(ctx, ClubFilter{Search: "debate"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "club-2", search[0].ID)

	paged, page, err := svc.ListClubs(ctx, ClubFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 2)
	assert.Equal(t, 4, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	second, page, err := svc.ListClubs(ctx, ClubFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestListCategories_DistinctAndSorted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewClubService(store.ClubRepository, store.UserRepository, store.MembershipRepository)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Academics", "Arts", "Governance", "Technology"}, categories)
}
