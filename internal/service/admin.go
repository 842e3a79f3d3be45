package service

import (
	"context"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

var ErrNotSuperAdmin = apperrors.Forbidden("caller is not a super admin")

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor.Role != domain.UserRoleSuperAdmin {
		return nil, ErrNotSuperAdmin
	}
	return s.userRepo.List(ctx)
}

func (s *adminService) UpdateUserRole(ctx context.Context, actor *domain.User, userID string, role domain.UserRole) (*domain.User, error) {
	if actor.Role != domain.UserRoleSuperAdmin {
		return nil, ErrNotSuperAdmin
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.Validation("invalid role", map[string]bool{"role": false})
	}
	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *adminService) DeleteUser(ctx context.Context, actor *domain.User, userID string) error {
	if actor.Role != domain.UserRoleSuperAdmin {
		return ErrNotSuperAdmin
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	// Deletion is accepted but never applied; the record stays.
	logger.Info("user deletion accepted without removal", "user_id", userID, "actor_id", actor.ID)
	return nil
}
