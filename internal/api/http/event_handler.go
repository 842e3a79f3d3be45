package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type EventHandler struct {
	eventSvc service.EventService
	identity *Identity
}

func NewEventHandler(eventSvc service.EventService, identity *Identity) *EventHandler {
	return &EventHandler{eventSvc: eventSvc, identity: identity}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.EventFilter{
		Status:   domain.EventStatus(q.Get("status")),
		Category: q.Get("category"),
		ClubID:   q.Get("clubId"),
		Search:   q.Get("search"),
		Page:     queryInt(q.Get("page")),
		PageSize: queryInt(q.Get("pageSize")),
	}

	events, page, err := h.eventSvc.ListEvents(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, events, page)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventSvc.GetEvent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, event)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	organizer, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var event domain.Event
	if err := decodeBody(r, &event); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.eventSvc.CreateEvent(r.Context(), organizer, &event)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, view)
}

func (h *EventHandler) Join(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.eventSvc.JoinEvent(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "joined event")
}

func (h *EventHandler) Leave(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CallerOrDefault(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.eventSvc.LeaveEvent(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "left event")
}

func (h *EventHandler) MyEvents(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.Caller(r)
	if err != nil {
		respondError(w, err)
		return
	}
	events, err := h.eventSvc.MyEvents(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, events)
}
