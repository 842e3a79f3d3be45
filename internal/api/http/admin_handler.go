package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminSvc service.AdminService
	identity *Identity
}

func NewAdminHandler(adminSvc service.AdminService, identity *Identity) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, identity: identity}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	users, err := h.adminSvc.ListUsers(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var input struct {
		Role domain.UserRole `json:"role"`
	}
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.adminSvc.UpdateUserRole(r.Context(), actor, mux.Vars(r)["id"], input.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, user, "role updated")
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.adminSvc.DeleteUser(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "user deleted")
}
