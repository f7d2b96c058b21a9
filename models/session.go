package models

// SessionSlot is one timetable cell (day + start time). The grid is seeded
// by migration and read-only at runtime.
type SessionSlot struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Day       string `json:"day" gorm:"not null"`
	Time      string `json:"time" gorm:"not null"`
	DayOrder  int    `json:"day_order" gorm:"not null"`
	SlotOrder int    `json:"slot_order" gorm:"not null"`
}

// Label returns the "<Day> <Time>" form used by check-ins and the UI.
func (s SessionSlot) Label() string {
	return s.Day + " " + s.Time
}
