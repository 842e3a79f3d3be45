package domain

import "time"

type MembershipRequestStatus string

const (
	MembershipRequestStatusPending  MembershipRequestStatus = "pending"
	MembershipRequestStatusApproved MembershipRequestStatus = "approved"
	MembershipRequestStatusRejected MembershipRequestStatus = "rejected"
)

// MembershipRequest records a user's intent to join a club that requires
// approval. Requester identity fields are snapshots taken at request time.
type MembershipRequest struct {
	ID          string                  `json:"id"`
	ClubID      string                  `json:"clubId"`
	UserID      string                  `json:"userId"`
	UserName    string                  `json:"userName"`
	UserEmail   string                  `json:"userEmail"`
	Message     string                  `json:"message,omitempty"`
	Status      MembershipRequestStatus `json:"status"`
	RequestedOn time.Time               `json:"requestedAt"`
	DecidedOn   *time.Time              `json:"decidedAt,omitempty"`
	DecidedBy   string                  `json:"decidedBy,omitempty"`
	Reason      string                  `json:"reason,omitempty"`

	// Seq orders requests created within the same timestamp granularity.
	Seq int64 `json:"-"`
}

// MembershipState is the computed per-(club,user) state. It is derived from
// the membership set plus the most recent request, never stored.
type MembershipState string

const (
	MembershipStateNotMember MembershipState = "not_member"
	MembershipStatePending   MembershipState = "pending"
	MembershipStateMember    MembershipState = "member"
	MembershipStateRejected  MembershipState = "rejected"
)

type MembershipStatus struct {
	Status   MembershipState    `json:"status"`
	CanApply bool               `json:"canApply"`
	Request  *MembershipRequest `json:"request,omitempty"`
}
