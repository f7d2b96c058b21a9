package services

import (
	"log"
	"sync"

	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/storage"
)

// DefaultSession is pre-selected on a fresh device so the first check-in
// of the week works without touching the timetable.
const DefaultSession = "Monday 6:00 AM"

// SessionService tracks the timetable slot check-ins are recorded against.
// The slot grid itself is seeded by migration and read-only here. The last
// choice is persisted best-effort; losing it only means re-selecting.
type SessionService struct {
	mu      sync.Mutex
	store   storage.Store
	slots   []models.SessionSlot
	current string
}

func NewSessionService(store storage.Store, slots []models.SessionSlot) *SessionService {
	s := &SessionService{store: store, slots: slots}
	if err := store.Load(storage.KeySelectedSession, &s.current); err != nil {
		log.Printf("[SESSIONS] load selection: %v", err)
	}
	if s.current == "" && s.Known(DefaultSession) {
		s.current = DefaultSession
		s.persist()
	}
	return s
}

// Known reports whether label names a slot on the timetable.
func (s *SessionService) Known(label string) bool {
	for _, slot := range s.slots {
		if slot.Label() == label {
			return true
		}
	}
	return false
}

// Select sets the active session to "<day> <time>" after checking the slot
// exists on the timetable.
func (s *SessionService) Select(day, timeStr string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range s.slots {
		if slot.Day == day && slot.Time == timeStr {
			s.current = slot.Label()
			s.persist()
			return s.current, nil
		}
	}
	return "", ErrUnknownSession
}

// Current returns the active "<Day> <Time>" or "" when none is chosen.
func (s *SessionService) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Slots returns the timetable grid in display order.
func (s *SessionService) Slots() []models.SessionSlot {
	out := make([]models.SessionSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *SessionService) persist() {
	if err := s.store.Save(storage.KeySelectedSession, s.current); err != nil {
		log.Printf("[SESSIONS] persist selection: %v", err)
	}
}
