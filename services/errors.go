package services

import "errors"

// Local-recovery errors. None of these is fatal: the controller reports
// them and the ledger stays in its last persisted state.
var (
	ErrNameRequired      = errors.New("member name is required")
	ErrMemberNotFound    = errors.New("member not found")
	ErrNoSessionSelected = errors.New("no session selected")
	ErrUnknownPack       = errors.New("unknown pack")
	ErrUnknownSession    = errors.New("session is not on the timetable")
)
