package models

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventMemberAdd    EventType = "member_add"
	EventMemberDelete EventType = "member_delete"
	EventPayment      EventType = "payment"
	EventAttendance   EventType = "attendance"
)

// OutboundEvent is a durable record of a ledger mutation awaiting delivery
// to the remote sheet. It lives in the pending queue until the sink
// acknowledges it.
type OutboundEvent struct {
	Type       EventType       `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
}

// Event payloads are flat and denormalized so the sheet never needs a join.

type MemberAddPayload struct {
	MemberID  string    `json:"memberId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}

type MemberDeletePayload struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
}

type PaymentPayload struct {
	Pack        string `json:"pack"` // pack label
	MemberID    string `json:"memberId"`
	MemberName  string `json:"memberName"`
	MemberEmail string `json:"memberEmail"`
	Amount      int    `json:"amount"`
	Credits     int    `json:"credits"`
}

type AttendancePayload struct {
	Session    string `json:"session"`
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
}
