package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
	identity     *Identity
}

func NewDashboardHandler(dashboardSvc service.DashboardService, identity *Identity) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, identity: identity}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}
	stats, err := h.dashboardSvc.Stats(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}
	overview, err := h.dashboardSvc.Overview(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, overview)
}
