package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/storage"
)

func testSlots() []models.SessionSlot {
	return []models.SessionSlot{
		{ID: 1, Day: "Monday", Time: "6:00 AM", DayOrder: 1, SlotOrder: 1},
		{ID: 2, Day: "Monday", Time: "9:30 AM", DayOrder: 1, SlotOrder: 2},
		{ID: 3, Day: "Saturday", Time: "8:00 AM", DayOrder: 6, SlotOrder: 1},
	}
}

func TestSessionDefaultsOnFreshDevice(t *testing.T) {
	s := NewSessionService(storage.NewMemoryStore(), testSlots())
	assert.Equal(t, DefaultSession, s.Current())
}

func TestSessionNoDefaultWhenOffTimetable(t *testing.T) {
	slots := []models.SessionSlot{
		{ID: 1, Day: "Tuesday", Time: "9:30 AM", DayOrder: 2, SlotOrder: 1},
	}
	s := NewSessionService(storage.NewMemoryStore(), slots)
	assert.Equal(t, "", s.Current())
}

func TestSessionKnown(t *testing.T) {
	s := NewSessionService(storage.NewMemoryStore(), testSlots())
	assert.True(t, s.Known("Saturday 8:00 AM"))
	assert.False(t, s.Known("Sunday 6:00 AM"))
	assert.False(t, s.Known(""))
}

func TestSessionSelectValidSlot(t *testing.T) {
	s := NewSessionService(storage.NewMemoryStore(), testSlots())

	selected, err := s.Select("Saturday", "8:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "Saturday 8:00 AM", selected)
	assert.Equal(t, "Saturday 8:00 AM", s.Current())
}

func TestSessionSelectRejectsUnknownSlot(t *testing.T) {
	s := NewSessionService(storage.NewMemoryStore(), testSlots())

	_, err := s.Select("Sunday", "6:00 AM")
	assert.ErrorIs(t, err, ErrUnknownSession)
	assert.Equal(t, DefaultSession, s.Current())
}

func TestSessionSelectionSurvivesRestart(t *testing.T) {
	store := storage.NewMemoryStore()

	s := NewSessionService(store, testSlots())
	_, err := s.Select("Monday", "9:30 AM")
	require.NoError(t, err)

	reloaded := NewSessionService(store, testSlots())
	assert.Equal(t, "Monday 9:30 AM", reloaded.Current())
}
