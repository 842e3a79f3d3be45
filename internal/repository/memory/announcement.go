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

type announcementRepository struct {
	announcements map[string]*domain.Announcement
}

func NewAnnouncementRepository() repository.AnnouncementRepository {
	return &announcementRepository{announcements: make(map[string]*domain.Announcement)}
}

func (r *announcementRepository) Create(ctx context.Context, ann *domain.Announcement) error {
	if ann.ID == "" {
		ann.ID = uuid.NewString()
	}
	if ann.CreatedOn.IsZero() {
		ann.CreatedOn = time.Now()
	}
	r.announcements[ann.ID] = ann
	return nil
}

func (r *announcementRepository) Seed(ctx context.Context, ann *domain.Announcement) error {
	if ann.CreatedOn.IsZero() {
		ann.CreatedOn = time.Now()
	}
	r.announcements[ann.ID] = ann
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	ann, ok := r.announcements[id]
	if !ok {
		return nil, apperrors.NotFound("announcement not found")
	}
	return ann, nil
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	anns := make([]domain.Announcement, 0, len(r.announcements))
	for _, ann := range r.announcements {
		anns = append(anns, *ann)
	}
	sortAnnouncements(anns)
	return anns, nil
}

func (r *announcementRepository) ListByClub(ctx context.Context, clubID string) ([]domain.Announcement, error) {
	var anns []domain.Announcement
	for _, ann := range r.announcements {
		if ann.ClubID == clubID {
			anns = append(anns, *ann)
		}
	}
	sortAnnouncements(anns)
	return anns, nil
}

// Newest first, the order the feed endpoints return.
func sortAnnouncements(anns []domain.Announcement) {
	sort.Slice(anns, func(i, j int) bool {
		if anns[i].CreatedOn.Equal(anns[j].CreatedOn) {
			return anns[i].ID > anns[j].ID
		}
		return anns[i].CreatedOn.After(anns[j].CreatedOn)
	})
}
