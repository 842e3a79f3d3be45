// Package memory implements the repositories over process-local maps. This
// is the application state object: everything it holds is discarded on
// process exit, reverting the backend to its seed data.
package memory

import (
	"sync"

	"clubhub-backend/internal/repository"
)

type Store struct {
	// mu serializes whole requests, not individual repository calls; the
	// HTTP layer takes it once per request so every multi-step operation
	// observes run-to-completion semantics. The repositories themselves
	// are therefore lock-free.
	mu sync.Mutex

	repository.UserRepository
	repository.ClubRepository
	repository.MembershipRepository
	repository.EventRepository
	repository.AnnouncementRepository
}

func NewStore() *Store {
	return &Store{
		UserRepository:         NewUserRepository(),
		ClubRepository:         NewClubRepository(),
		MembershipRepository:   NewMembershipRepository(),
		EventRepository:        NewEventRepository(),
		AnnouncementRepository: NewAnnouncementRepository(),
	}
}

// Locker exposes the request-serialization lock to the HTTP middleware.
func (s *Store) Locker() sync.Locker {
	return &s.mu
}
