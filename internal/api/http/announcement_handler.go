package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type AnnouncementHandler struct {
	annSvc   service.AnnouncementService
	identity *Identity
}

func NewAnnouncementHandler(annSvc service.AnnouncementService, identity *Identity) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc, identity: identity}
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	anns, page, err := h.annSvc.List(r.Context(), q.Get("clubId"), queryInt(q.Get("page")), queryInt(q.Get("pageSize")))
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, anns, page)
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	author, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var ann domain.Announcement
	if err := decodeBody(r, &ann); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.annSvc.Create(r.Context(), author, &ann)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (h *AnnouncementHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	anns, err := h.annSvc.ListByClub(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if anns == nil {
		anns = []domain.Announcement{}
	}
	respondData(w, http.StatusOK, anns)
}
