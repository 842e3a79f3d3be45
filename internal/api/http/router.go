package http

import (
	"net/http"
	"sync"

	"clubhub-backend/internal/metrics"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Club         *ClubHandler
	Membership   *MembershipHandler
	Event        *EventHandler
	Announcement *AnnouncementHandler
	Dashboard    *DashboardHandler
	Admin        *AdminHandler
}

// NewRouter builds the full HTTP surface. All application routes pass
// through the CORS, logging, metrics and serialization middleware; the
// metrics and health endpoints sit outside the serialization lock.
func NewRouter(h Handlers, m *metrics.Metrics, locker sync.Locker) *mux.Router {
	root := mux.NewRouter()

	root.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusOK, nil, "ok")
	}).Methods(http.MethodGet)

	api := root.PathPrefix("/").Subrouter()
	api.Use(CORS, RequestLogger, Instrument(m), Serialize(locker))

	// Identity
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet)

	// Clubs
	api.HandleFunc("/clubs", h.Club.List).Methods(http.MethodGet)
	api.HandleFunc("/clubs", h.Club.Create).Methods(http.MethodPost)
	api.HandleFunc("/clubs/categories", h.Club.Categories).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}", h.Club.Get).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}", h.Club.Delete).Methods(http.MethodDelete)

	// Membership self-service
	api.HandleFunc("/clubs/{id}/join", h.Membership.Join).Methods(http.MethodPost)
	api.HandleFunc("/clubs/{id}/leave", h.Membership.Leave).Methods(http.MethodDelete)
	api.HandleFunc("/clubs/{id}/membership-status", h.Membership.Status).Methods(http.MethodGet)

	// Membership administration
	api.HandleFunc("/clubs/{id}/membership-requests", h.Membership.PendingRequests).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}/all-membership-requests", h.Membership.AllRequests).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}/membership-requests/{reqId}/accept", h.Membership.Accept).Methods(http.MethodPut)
	api.HandleFunc("/clubs/{id}/membership-requests/{reqId}/reject", h.Membership.Reject).Methods(http.MethodPut)

	// Roster
	api.HandleFunc("/clubs/{id}/members", h.Membership.Members).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}/members/{userId}", h.Membership.RemoveMember).Methods(http.MethodDelete)

	// Club announcements
	api.HandleFunc("/clubs/{id}/announcements", h.Announcement.ListByClub).Methods(http.MethodGet)

	// Events
	api.HandleFunc("/events", h.Event.List).Methods(http.MethodGet)
	api.HandleFunc("/events", h.Event.Create).Methods(http.MethodPost)
	api.HandleFunc("/events/user/my-events", h.Event.MyEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", h.Event.Get).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/join", h.Event.Join).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/leave", h.Event.Leave).Methods(http.MethodDelete)

	// Announcements
	api.HandleFunc("/announcements", h.Announcement.List).Methods(http.MethodGet)
	api.HandleFunc("/announcements", h.Announcement.Create).Methods(http.MethodPost)

	// Dashboard
	api.HandleFunc("/dashboard/stats", h.Dashboard.Stats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/overview", h.Dashboard.Overview).Methods(http.MethodGet)

	// Privileged administration
	api.HandleFunc("/admin/users", h.Admin.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/admin/users/{id}/role", h.Admin.UpdateUserRole).Methods(http.MethodPut)
	api.HandleFunc("/admin/users/{id}", h.Admin.DeleteUser).Methods(http.MethodDelete)

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Envelope{Success: false, Message: "route not found"})
	})

	return root
}
