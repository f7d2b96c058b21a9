package storage

// Namespaced store keys. The names are carried over from the original
// client so a sheet-side import of an old device's data stays recognizable.
const (
	KeyMembers         = "bff.members.v1"
	KeyTransactions    = "bff.tx.v1"
	KeyAttendance      = "bff.attendance.v1"
	KeyPendingEvents   = "bff.pending.v1"
	KeySelectedSession = "bff.selectedSession.v1"
)

// Store is the key-value persistence the core writes through. Save is a
// synchronous full rewrite of the key's JSON document; Load leaves out
// untouched when the key has never been written.
type Store interface {
	Load(key string, out any) error
	Save(key string, v any) error
}
