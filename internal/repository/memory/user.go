package memory

import (
	"context"
	"sort"
	"time"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	registered map[string]*domain.User // keyed by email
	seeded     map[string]*domain.User // keyed by email
	byID       map[string]*domain.User
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{
		registered: make(map[string]*domain.User),
		seeded:     make(map[string]*domain.User),
		byID:       make(map[string]*domain.User),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedOn.IsZero() {
		user.CreatedOn = time.Now()
	}
	// Re-registration at the same email overwrites the prior record. The
	// old record stays reachable by ID so previously minted tokens keep
	// resolving to their original snapshot.
	r.registered[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *userRepository) Seed(ctx context.Context, user *domain.User) error {
	user.Seeded = true
	if user.CreatedOn.IsZero() {
		user.CreatedOn = time.Now()
	}
	r.seeded[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := r.registered[email]; ok {
		return user, nil
	}
	if user, ok := r.seeded[email]; ok {
		return user, nil
	}
	return nil, apperrors.NotFound("user not found")
}

func (r *userRepository) GetRegisteredByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.registered[email]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func (r *userRepository) GetSeededByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.seeded[email]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedOn.Equal(users[j].CreatedOn) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedOn.Before(users[j].CreatedOn)
	})
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	user, ok := r.byID[id]
	if !ok {
		return apperrors.NotFound("user not found")
	}
	user.Role = role
	return nil
}
