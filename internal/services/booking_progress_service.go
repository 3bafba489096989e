package services

import (
	"sync"
	"time"

	"ridelink/internal/models"
	"ridelink/internal/utils"
)

// BookingProgressService holds in-flight booking form state so a client can
// restore it after a remount. Slots are confined to a single logical session
// and guarded by a mutex; storage is process memory only and does not survive
// a restart.
type BookingProgressService struct {
	mu       sync.Mutex
	sessions map[string]*models.BookingProgressSnapshot
	ttl      time.Duration
	now      func() time.Time
}

func NewBookingProgressService() *BookingProgressService {
	return &BookingProgressService{
		sessions: make(map[string]*models.BookingProgressSnapshot),
		ttl:      utils.BookingProgressTTL,
		now:      time.Now,
	}
}

// WithClock replaces the time source, used by tests to simulate staleness.
func (s *BookingProgressService) WithClock(now func() time.Time) *BookingProgressService {
	s.now = now
	return s
}

// Save overwrites the session's slot unconditionally, but only when the
// snapshot carries at least one of pickup, destination or price.
func (s *BookingProgressService) Save(sessionID string, snapshot models.BookingProgressSnapshot) bool {
	if sessionID == "" || !snapshot.HasContent() {
		return false
	}

	snapshot.SavedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictStaleLocked()
	s.sessions[sessionID] = &snapshot
	return true
}

// evictStaleLocked drops every expired slot so abandoned sessions do not
// accumulate for the life of the process.
func (s *BookingProgressService) evictStaleLocked() {
	now := s.now()
	for id, snapshot := range s.sessions {
		if now.Sub(snapshot.SavedAt) >= s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Restore returns the session's snapshot when one exists and is fresh.
// A stale slot (saved 24h or more ago) is discarded and reported as absent.
func (s *BookingProgressService) Restore(sessionID string) (*models.BookingProgressSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}

	if s.now().Sub(snapshot.SavedAt) >= s.ttl {
		delete(s.sessions, sessionID)
		return nil, false
	}

	return snapshot, true
}

// Clear empties the session's slot unconditionally.
func (s *BookingProgressService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
