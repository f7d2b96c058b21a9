package models

import (
	"time"
)

// Transaction is an immutable payment record, kept newest-first for
// display. JSON keys match the layout persisted by earlier client versions.
type Transaction struct {
	Timestamp  time.Time `json:"ts"`
	Pack       string    `json:"type"` // pack label, e.g. "10-Pack $180"
	MemberID   string    `json:"memberId"`
	MemberName string    `json:"memberName"`
	Amount     int       `json:"amount"`
	Credits    int       `json:"credits"`
}

// Attendance is an immutable check-in record, kept newest-first.
type Attendance struct {
	Timestamp  time.Time `json:"ts"`
	Session    string    `json:"session"` // "<Day> <Time>"
	MemberID   string    `json:"memberId"`
	MemberName string    `json:"memberName"`
}
