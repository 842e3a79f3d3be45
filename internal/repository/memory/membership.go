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

type membershipRepository struct {
	members  map[string]map[string]struct{} // clubID -> set of userIDs
	requests map[string]*domain.MembershipRequest
	nextSeq  int64
}

func NewMembershipRepository() repository.MembershipRepository {
	return &membershipRepository{
		members:  make(map[string]map[string]struct{}),
		requests: make(map[string]*domain.MembershipRequest),
	}
}

func (r *membershipRepository) AddMember(ctx context.Context, clubID, userID string) error {
	set, ok := r.members[clubID]
	if !ok {
		set = make(map[string]struct{})
		r.members[clubID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (r *membershipRepository) RemoveMember(ctx context.Context, clubID, userID string) error {
	// Idempotent: removing a non-member is not an error.
	if set, ok := r.members[clubID]; ok {
		delete(set, userID)
	}
	return nil
}

func (r *membershipRepository) IsMember(ctx context.Context, clubID, userID string) (bool, error) {
	set, ok := r.members[clubID]
	if !ok {
		return false, nil
	}
	_, in := set[userID]
	return in, nil
}

func (r *membershipRepository) ListMembers(ctx context.Context, clubID string) ([]string, error) {
	set := r.members[clubID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *membershipRepository) MemberCount(ctx context.Context, clubID string) (int, error) {
	return len(r.members[clubID]), nil
}

func (r *membershipRepository) ListClubsForUser(ctx context.Context, userID string) ([]string, error) {
	var clubIDs []string
	for clubID, set := range r.members {
		if _, in := set[userID]; in {
			clubIDs = append(clubIDs, clubID)
		}
	}
	sort.Strings(clubIDs)
	return clubIDs, nil
}

func (r *membershipRepository) CreateRequest(ctx context.Context, req *domain.MembershipRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.RequestedOn.IsZero() {
		req.RequestedOn = time.Now()
	}
	r.nextSeq++
	req.Seq = r.nextSeq
	r.requests[req.ID] = req
	return nil
}

func (r *membershipRepository) GetRequest(ctx context.Context, id string) (*domain.MembershipRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperrors.NotFound("membership request not found")
	}
	return req, nil
}

func (r *membershipRepository) UpdateRequest(ctx context.Context, req *domain.MembershipRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return apperrors.NotFound("membership request not found")
	}
	r.requests[req.ID] = req
	return nil
}

func (r *membershipRepository) ListRequestsByClub(ctx context.Context, clubID string, status domain.MembershipRequestStatus) ([]domain.MembershipRequest, error) {
	var reqs []domain.MembershipRequest
	for _, req := range r.requests {
		if req.ClubID != clubID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		reqs = append(reqs, *req)
	}
	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].RequestedOn.Equal(reqs[j].RequestedOn) {
			return reqs[i].Seq < reqs[j].Seq
		}
		return reqs[i].RequestedOn.Before(reqs[j].RequestedOn)
	})
	return reqs, nil
}

func (r *membershipRepository) LatestRequest(ctx context.Context, clubID, userID string) (*domain.MembershipRequest, error) {
	var latest *domain.MembershipRequest
	for _, req := range r.requests {
		if req.ClubID != clubID || req.UserID != userID {
			continue
		}
		if latest == nil || moreRecent(req, latest) {
			latest = req
		}
	}
	return latest, nil
}

func (r *membershipRepository) CountPending(ctx context.Context, clubID string) (int, error) {
	count := 0
	for _, req := range r.requests {
		if req.ClubID == clubID && req.Status == domain.MembershipRequestStatusPending {
			count++
		}
	}
	return count, nil
}

// moreRecent compares request timestamps, falling back to the creation
// sequence when the timestamps collide.
func moreRecent(a, b *domain.MembershipRequest) bool {
	if a.RequestedOn.Equal(b.RequestedOn) {
		return a.Seq > b.Seq
	}
	return a.RequestedOn.After(b.RequestedOn)
}
