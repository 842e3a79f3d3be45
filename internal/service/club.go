package service

import (
	"context"
	"sort"
	"strings"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

type clubService struct {
	clubRepo       repository.ClubRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

func NewClubService(clubRepo repository.ClubRepository, userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) ClubService {
	return &clubService{
		clubRepo:       clubRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *clubService) ListClubs(ctx context.Context, filter ClubFilter) ([]domain.ClubView, utils.Page, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, utils.Page{}, err
	}

	filtered := clubs[:0:0]
	for _, club := range clubs {
		if filter.Category != "" && !strings.EqualFold(club.Category, filter.Category) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, club.Name, club.Description) {
			continue
		}
		filtered = append(filtered, club)
	}

	start, end, meta := utils.Paginate(len(filtered), filter.Page, filter.PageSize)
	views := make([]domain.ClubView, 0, end-start)
	for _, club := range filtered[start:end] {
		view, err := s.enrich(ctx, club, false)
		if err != nil {
			return nil, utils.Page{}, err
		}
		views = append(views, *view)
	}
	return views, meta, nil
}

func (s *clubService) GetClub(ctx context.Context, id string) (*domain.ClubView, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *club, true)
}

func (s *clubService) CreateClub(ctx context.Context, creator *domain.User, club *domain.Club) (*domain.ClubView, error) {
	fields := map[string]bool{
		"name":     club.Name != "",
		"category": club.Category != "",
	}
	for _, present := range fields {
		if !present {
			return nil, apperrors.Validation("missing required fields", fields)
		}
	}

	club.AdminIDs = []string{creator.ID}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}
	if err := s.membershipRepo.AddMember(ctx, club.ID, creator.ID); err != nil {
		return nil, err
	}
	return s.enrich(ctx, *club, true)
}

func (s *clubService) DeleteClub(ctx context.Context, id string) error {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Seeded clubs report success without being removed; only clubs
	// created at runtime are actually deleted.
	if club.Seeded {
		return nil
	}
	return s.clubRepo.Delete(ctx, id)
}

func (s *clubService) ListCategories(ctx context.Context) ([]string, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var categories []string
	for _, club := range clubs {
		if club.Category == "" {
			continue
		}
		if _, ok := seen[club.Category]; ok {
			continue
		}
		seen[club.Category] = struct{}{}
		categories = append(categories, club.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// enrich computes the derived fields at response time: member count from
// the live membership set and club head from the admin list.
func (s *clubService) enrich(ctx context.Context, club domain.Club, includeMembers bool) (*domain.ClubView, error) {
	count, err := s.membershipRepo.MemberCount(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	view := &domain.ClubView{Club: club, MemberCount: count}
	if headID := club.HeadID(); headID != "" {
		if head, err := s.userRepo.GetByID(ctx, headID); err == nil {
			view.ClubHead = head
		}
	}
	if includeMembers {
		members, err := s.membershipRepo.ListMembers(ctx, club.ID)
		if err != nil {
			return nil, err
		}
		view.MemberIDs = members
	}
	return view, nil
}

func matchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
