package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type MembershipHandler struct {
	membershipSvc service.MembershipService
	identity      *Identity
}

func NewMembershipHandler(membershipSvc service.MembershipService, identity *Identity) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc, identity: identity}
}

func (h *MembershipHandler) Join(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var input struct {
		Message string `json:"message"`
	}
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.membershipSvc.RequestJoin(r.Context(), mux.Vars(r)["id"], user, input.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, result)
}

func (h *MembershipHandler) Leave(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.membershipSvc.Leave(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "left club")
}

func (h *MembershipHandler) Status(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}
	status, err := h.membershipSvc.Status(r.Context(), mux.Vars(r)["id"], user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, status)
}

// PendingRequests lists only requests still awaiting a decision.
func (h *MembershipHandler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, domain.MembershipRequestStatusPending)
}

// AllRequests lists the full request history, optionally filtered by the
// status query parameter.
func (h *MembershipHandler) AllRequests(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, domain.MembershipRequestStatus(r.URL.Query().Get("status")))
}

func (h *MembershipHandler) listRequests(w http.ResponseWriter, r *http.Request, status domain.MembershipRequestStatus) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	reqs, err := h.membershipSvc.ListRequests(r.Context(), mux.Vars(r)["id"], actor, status)
	if err != nil {
		respondError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.MembershipRequest{}
	}
	respondData(w, http.StatusOK, reqs)
}

func (h *MembershipHandler) Accept(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	vars := mux.Vars(r)
	req, err := h.membershipSvc.Approve(r.Context(), vars["id"], vars["reqId"], actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, req, "membership request approved")
}

func (h *MembershipHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}

	vars := mux.Vars(r)
	req, err := h.membershipSvc.Reject(r.Context(), vars["id"], vars["reqId"], actor, input.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, req, "membership request rejected")
}

func (h *MembershipHandler) Members(w http.ResponseWriter, r *http.Request) {
	if _, err := h.identity.Caller(r); err != nil {
		respondError(w, err)
		return
	}
	members, err := h.membershipSvc.ListMembers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, members)
}

func (h *MembershipHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	vars := mux.Vars(r)
	if err := h.membershipSvc.RemoveMember(r.Context(), vars["id"], actor, vars["userId"]); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "member removed")
}
