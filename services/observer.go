package services

// Render notification names pushed to the UI after mutations. The UI
// re-fetches through the read endpoints; no data rides on the notification.
const (
	NotifyMembers      = "members:updated"
	NotifyTransactions = "transactions:updated"
	NotifyAttendance   = "attendance:updated"
	NotifyQueue        = "queue:updated"
)

// RenderObserver is told to redraw after each ledger or queue change.
type RenderObserver interface {
	Notify(event string)
}

// NopObserver is used when no UI is attached (tests, CLI tools).
type NopObserver struct{}

func (NopObserver) Notify(string) {}
