package service

import (
	"context"
	"testing"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_NonSuperAdminForbidden(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store.UserRepository)
	head := testUser(ctx, t, store, "maya.chen@campus.edu")

	_, err := svc.ListUsers(ctx, head)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = svc.UpdateUserRole(ctx, head, "user-4", domain.UserRoleClubHead)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	err = svc.DeleteUser(ctx, head, "user-4")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestAdmin_UpdateUserRole(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store.UserRepository)
	admin := testUser(ctx, t, store, "admin@campus.edu")

	user, err := svc.UpdateUserRole(ctx, admin, "user-4", domain.UserRoleClubHead)
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleClubHead, user.Role)

	_, err = svc.UpdateUserRole(ctx, admin, "user-4", "emperor")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.UpdateUserRole(ctx, admin, "no-user", domain.UserRoleStudent)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAdmin_DeleteUserIsAcceptedNotApplied(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store.UserRepository)
	admin := testUser(ctx, t, store, "admin@campus.edu")

	require.NoError(t, svc.DeleteUser(ctx, admin, "user-4"))

	// The record is still there afterwards.
	user, err := store.UserRepository.GetByID(ctx, "user-4")
	require.NoError(t, err)
	assert.Equal(t, "user-4", user.ID)

	err = svc.DeleteUser(ctx, admin, "no-user")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
