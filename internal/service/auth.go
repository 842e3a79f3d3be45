package service

import (
	"context"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = apperrors.Auth("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	fields := map[string]bool{
		"firstName": input.FirstName != "",
		"lastName":  input.LastName != "",
		"email":     input.Email != "",
		"password":  input.Password != "",
	}
	for _, present := range fields {
		if !present {
			return nil, "", apperrors.Validation("missing required fields", fields)
		}
	}

	role := input.Role
	if !domain.ValidRole(role) {
		role = domain.UserRoleStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	return user, s.tokens.Mint(user), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	// Registered identities take priority and require a matching password.
	if user, err := s.userRepo.GetRegisteredByEmail(ctx, email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, "", ErrInvalidCredentials
		}
		return user, s.tokens.Mint(user), nil
	}

	// Seeded identities are matched by email alone; seed data carries no
	// credentials to check against.
	user, err := s.userRepo.GetSeededByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	return user, s.tokens.Mint(user), nil
}
