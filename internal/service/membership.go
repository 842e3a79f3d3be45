package service

import (
	"context"
	"time"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

var (
	ErrAlreadyMember   = apperrors.Conflict("user is already a member of this club")
	ErrRequestPending  = apperrors.Conflict("a pending membership request already exists")
	ErrRequestDecided  = apperrors.Conflict("membership request has already been processed")
	ErrJoiningDisabled = apperrors.Forbidden("this club does not allow joining")
	ErrNotClubAdmin    = apperrors.Forbidden("caller is not an admin of this club")
)

type membershipService struct {
	clubRepo       repository.ClubRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

func NewMembershipService(clubRepo repository.ClubRepository, userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) MembershipService {
	return &membershipService{
		clubRepo:       clubRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *membershipService) RequestJoin(ctx context.Context, clubID string, user *domain.User, message string) (*JoinResult, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.membershipRepo.IsMember(ctx, clubID, user.ID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, ErrAlreadyMember
	}

	latest, err := s.membershipRepo.LatestRequest(ctx, clubID, user.ID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.Status == domain.MembershipRequestStatusPending {
		return nil, ErrRequestPending
	}

	if !club.AllowJoining {
		return nil, ErrJoiningDisabled
	}

	// Open-membership clubs admit directly; no request record is issued.
	if !club.RequireApproval {
		if err := s.membershipRepo.AddMember(ctx, clubID, user.ID); err != nil {
			return nil, err
		}
		return &JoinResult{RequiresApproval: false}, nil
	}

	req := &domain.MembershipRequest{
		ClubID:    clubID,
		UserID:    user.ID,
		UserName:  user.FullName(),
		UserEmail: user.Email,
		Message:   message,
		Status:    domain.MembershipRequestStatusPending,
	}
	if err := s.membershipRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return &JoinResult{RequiresApproval: true, RequestID: req.ID}, nil
}

func (s *membershipService) Leave(ctx context.Context, clubID, userID string) error {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return err
	}
	return s.membershipRepo.RemoveMember(ctx, clubID, userID)
}

func (s *membershipService) Status(ctx context.Context, clubID, userID string) (*domain.MembershipStatus, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	isMember, err := s.membershipRepo.IsMember(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return &domain.MembershipStatus{Status: domain.MembershipStateMember, CanApply: false}, nil
	}

	latest, err := s.membershipRepo.LatestRequest(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &domain.MembershipStatus{Status: domain.MembershipStateNotMember, CanApply: true}, nil
	}

	switch latest.Status {
	case domain.MembershipRequestStatusPending:
		return &domain.MembershipStatus{Status: domain.MembershipStatePending, CanApply: false, Request: latest}, nil
	case domain.MembershipRequestStatusRejected:
		// Rejection permits re-application.
		return &domain.MembershipStatus{Status: domain.MembershipStateRejected, CanApply: true, Request: latest}, nil
	default:
		// An approved request counts as membership even if the member set
		// lookup missed it.
		return &domain.MembershipStatus{Status: domain.MembershipStateMember, CanApply: false, Request: latest}, nil
	}
}

func (s *membershipService) Approve(ctx context.Context, clubID, requestID string, actor *domain.User) (*domain.MembershipRequest, error) {
	req, err := s.decidableRequest(ctx, clubID, requestID, actor)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.AddMember(ctx, clubID, req.UserID); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = domain.MembershipRequestStatusApproved
	req.DecidedOn = &now
	req.DecidedBy = actor.ID
	if err := s.membershipRepo.UpdateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *membershipService) Reject(ctx context.Context, clubID, requestID string, actor *domain.User, reason string) (*domain.MembershipRequest, error) {
	req, err := s.decidableRequest(ctx, clubID, requestID, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = domain.MembershipRequestStatusRejected
	req.DecidedOn = &now
	req.DecidedBy = actor.ID
	req.Reason = reason
	if err := s.membershipRepo.UpdateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *membershipService) ListRequests(ctx context.Context, clubID string, actor *domain.User, status domain.MembershipRequestStatus) ([]domain.MembershipRequest, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := ensureClubAdmin(actor, club); err != nil {
		return nil, err
	}
	return s.membershipRepo.ListRequestsByClub(ctx, clubID, status)
}

func (s *membershipService) ListMembers(ctx context.Context, clubID string) ([]domain.User, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	ids, err := s.membershipRepo.ListMembers(ctx, clubID)
	if err != nil {
		return nil, err
	}
	members := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		members = append(members, *user)
	}
	return members, nil
}

func (s *membershipService) RemoveMember(ctx context.Context, clubID string, actor *domain.User, targetUserID string) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if err := ensureClubAdmin(actor, club); err != nil {
		return err
	}
	return s.membershipRepo.RemoveMember(ctx, clubID, targetUserID)
}

// decidableRequest runs the shared accept/reject preamble: club lookup,
// permission check, request lookup scoped to the club, pending check.
func (s *membershipService) decidableRequest(ctx context.Context, clubID, requestID string, actor *domain.User) (*domain.MembershipRequest, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := ensureClubAdmin(actor, club); err != nil {
		return nil, err
	}

	req, err := s.membershipRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ClubID != clubID {
		return nil, apperrors.NotFound("membership request not found for this club")
	}
	if req.Status != domain.MembershipRequestStatusPending {
		return nil, ErrRequestDecided
	}
	return req, nil
}

func ensureClubAdmin(actor *domain.User, club *domain.Club) error {
	if actor.Role == domain.UserRoleSuperAdmin || club.IsAdmin(actor.ID) {
		return nil
	}
	return ErrNotClubAdmin
}
