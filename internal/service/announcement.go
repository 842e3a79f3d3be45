package service

import (
	"context"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

type announcementService struct {
	annRepo  repository.AnnouncementRepository
	clubRepo repository.ClubRepository
}

func NewAnnouncementService(annRepo repository.AnnouncementRepository, clubRepo repository.ClubRepository) AnnouncementService {
	return &announcementService{
		annRepo:  annRepo,
		clubRepo: clubRepo,
	}
}

func (s *announcementService) List(ctx context.Context, clubID string, page, pageSize int) ([]domain.Announcement, utils.Page, error) {
	var (
		anns []domain.Announcement
		err  error
	)
	if clubID != "" {
		anns, err = s.annRepo.ListByClub(ctx, clubID)
	} else {
		anns, err = s.annRepo.List(ctx)
	}
	if err != nil {
		return nil, utils.Page{}, err
	}

	start, end, meta := utils.Paginate(len(anns), page, pageSize)
	return anns[start:end], meta, nil
}

func (s *announcementService) Create(ctx context.Context, author *domain.User, ann *domain.Announcement) (*domain.Announcement, error) {
	fields := map[string]bool{
		"title":   ann.Title != "",
		"content": ann.Content != "",
		"clubId":  ann.ClubID != "",
	}
	for _, present := range fields {
		if !present {
			return nil, apperrors.Validation("missing required fields", fields)
		}
	}

	club, err := s.clubRepo.GetByID(ctx, ann.ClubID)
	if err != nil {
		return nil, err
	}
	if err := ensureClubAdmin(author, club); err != nil {
		return nil, err
	}

	ann.AuthorID = author.ID
	ann.AuthorName = author.FullName()
	if err := s.annRepo.Create(ctx, ann); err != nil {
		return nil, err
	}
	return ann, nil
}

func (s *announcementService) ListByClub(ctx context.Context, clubID string) ([]domain.Announcement, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	return s.annRepo.ListByClub(ctx, clubID)
}
