package http

import (
	"net/http"
	"strconv"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type ClubHandler struct {
	clubSvc  service.ClubService
	identity *Identity
}

func NewClubHandler(clubSvc service.ClubService, identity *Identity) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc, identity: identity}
}

func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ClubFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     queryInt(q.Get("page")),
		PageSize: queryInt(q.Get("pageSize")),
	}

	clubs, page, err := h.clubSvc.ListClubs(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, clubs, page)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubSvc.GetClub(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, club)
}

func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	creator, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var club domain.Club
	if err := decodeBody(r, &club); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.clubSvc.CreateClub(r.Context(), creator, &club)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, view)
}

func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}

	clubID := mux.Vars(r)["id"]
	club, err := h.clubSvc.GetClub(r.Context(), clubID)
	if err != nil {
		respondError(w, err)
		return
	}
	if actor.Role != domain.UserRoleSuperAdmin && !club.IsAdmin(actor.ID) {
		respondError(w, apperrors.Forbidden("caller is not an admin of this club"))
		return
	}

	if err := h.clubSvc.DeleteClub(r.Context(), clubID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "club deleted")
}

func (h *ClubHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.clubSvc.ListCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, categories)
}

func queryInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
