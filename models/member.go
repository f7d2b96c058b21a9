package models

import (
	"time"
)

// Member is a studio member tracked by the local ledger. The ID is an
// opaque creation-time token (millisecond timestamp), matching the IDs
// already present in spreadsheets synced by earlier versions of the client.
// Name and phone are used for front-desk lookup only, never as identity.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}
