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

type clubRepository struct {
	clubs map[string]*domain.Club
}

func NewClubRepository() repository.ClubRepository {
	return &clubRepository{clubs: make(map[string]*domain.Club)}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}
	if club.CreatedOn.IsZero() {
		club.CreatedOn = time.Now()
	}
	r.clubs[club.ID] = club
	return nil
}

func (r *clubRepository) Seed(ctx context.Context, club *domain.Club) error {
	club.Seeded = true
	if club.CreatedOn.IsZero() {
		club.CreatedOn = time.Now()
	}
	r.clubs[club.ID] = club
	return nil
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, apperrors.NotFound("club not found")
	}
	return club, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	clubs := make([]domain.Club, 0, len(r.clubs))
	for _, club := range r.clubs {
		clubs = append(clubs, *club)
	}
	sort.Slice(clubs, func(i, j int) bool {
		if clubs[i].CreatedOn.Equal(clubs[j].CreatedOn) {
			return clubs[i].ID < clubs[j].ID
		}
		return clubs[i].CreatedOn.Before(clubs[j].CreatedOn)
	})
	return clubs, nil
}

func (r *clubRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.clubs[id]; !ok {
		return apperrors.NotFound("club not found")
	}
	delete(r.clubs, id)
	return nil
}
