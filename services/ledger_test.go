package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/storage"
)

// deadSink keeps every event queued so tests can count enqueues.
type deadSink struct{}

func (deadSink) Send(models.OutboundEvent) error { return errors.New("offline") }

func newTestLedger(t *testing.T) (*Ledger, *DurableQueue, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	q, err := NewDurableQueue(store)
	require.NoError(t, err)
	pump := NewDeliveryPump(q, deadSink{}, NopObserver{})
	l, err := NewLedger(store, q, pump, NopObserver{})
	require.NoError(t, err)
	return l, q, store
}

func TestAddMemberGrantsFreeCredit(t *testing.T) {
	l, q, _ := newTestLedger(t)

	m, err := l.AddMember("  Ann ", "0412 000 000", "ann@example.com", "first timer")
	require.NoError(t, err)
	assert.Equal(t, "Ann", m.Name)
	assert.Equal(t, 1, m.Credits)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, 1, q.Len())

	ev, _ := q.PeekFront()
	assert.Equal(t, models.EventMemberAdd, ev.Type)
}

func TestAddMemberRequiresName(t *testing.T) {
	l, q, _ := newTestLedger(t)

	_, err := l.AddMember("   ", "", "", "")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, l.ListMembers())
}

func TestMemberIDsAreUnique(t *testing.T) {
	l, _, _ := newTestLedger(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		m, err := l.AddMember(fmt.Sprintf("Member %d", i), "", "", "")
		require.NoError(t, err)
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestDeleteMemberKeepsHistory(t *testing.T) {
	l, q, _ := newTestLedger(t)

	m, err := l.AddMember("Ann", "0412 000 000", "", "")
	require.NoError(t, err)
	_, err = l.ApplyPayment("Ann", models.PackSingle)
	require.NoError(t, err)

	assert.True(t, l.DeleteMember(m.ID))
	assert.Empty(t, l.ListMembers())

	// History and already-enqueued events referencing the member survive.
	assert.Len(t, l.ListTransactions(), 1)
	events := q.Snapshot()
	require.Len(t, events, 3) // member_add, payment, member_delete
	assert.Equal(t, models.EventMemberAdd, events[0].Type)
	assert.Equal(t, models.EventPayment, events[1].Type)
	assert.Equal(t, models.EventMemberDelete, events[2].Type)
}

func TestDeleteUnknownMemberIsSilentNoOp(t *testing.T) {
	l, q, _ := newTestLedger(t)

	assert.False(t, l.DeleteMember("nope"))
	assert.Equal(t, 0, q.Len())
}

func TestApplyPaymentUnknownMember(t *testing.T) {
	l, q, _ := newTestLedger(t)

	_, err := l.ApplyPayment("Ghost", models.PackTen)
	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, l.ListTransactions())
}

// The walkthrough from the front desk: Ann joins, buys a ten-pack, and
// trains eleven times.
func TestAnnTenPackScenario(t *testing.T) {
	l, _, _ := newTestLedger(t)

	_, err := l.AddMember("Ann", "0412 000 000", "", "")
	require.NoError(t, err)

	tx, err := l.ApplyPayment("Ann", models.PackTen)
	require.NoError(t, err)
	assert.Equal(t, 180, tx.Amount)
	assert.Equal(t, 10, tx.Credits)
	assert.Equal(t, "10-Pack $180", tx.Pack)
	assert.Equal(t, 11, l.ListMembers()[0].Credits)

	for i := 0; i < 10; i++ {
		res, err := l.CheckIn("Ann", "Monday 6:00 AM", false)
		require.NoError(t, err)
		assert.False(t, res.NeedsTopUp)
	}
	assert.Equal(t, 1, l.ListMembers()[0].Credits)
	assert.Len(t, l.ListAttendance(), 10)

	// Eleventh visit: balance is still positive, plain deduct to zero.
	res, err := l.CheckIn("Ann", "Monday 6:00 AM", false)
	require.NoError(t, err)
	assert.False(t, res.NeedsTopUp)
	assert.False(t, res.ToppedUp)
	assert.Equal(t, 0, l.ListMembers()[0].Credits)
	assert.Len(t, l.ListAttendance(), 11)
}

func TestCheckInDeclinedTopUpChangesNothing(t *testing.T) {
	l, q, _ := newTestLedger(t)

	_, err := l.AddMember("Bo", "", "", "")
	require.NoError(t, err)

	res, err := l.CheckIn("Bo", "Monday 6:00 AM", false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Member.Credits)

	eventsBefore := q.Len()
	attendanceBefore := len(l.ListAttendance())

	// Zero balance, no confirmation: an offer, not a mutation.
	res, err = l.CheckIn("Bo", "Monday 6:00 AM", false)
	require.NoError(t, err)
	assert.True(t, res.NeedsTopUp)
	assert.Nil(t, res.Attendance)

	assert.Equal(t, 0, l.ListMembers()[0].Credits)
	assert.Equal(t, eventsBefore, q.Len())
	assert.Len(t, l.ListAttendance(), attendanceBefore)
}

func TestCheckInConfirmedTopUpPurchasesThenDeducts(t *testing.T) {
	l, q, _ := newTestLedger(t)

	_, err := l.AddMember("Bo", "", "", "")
	require.NoError(t, err)
	_, err = l.CheckIn("Bo", "Monday 6:00 AM", false)
	require.NoError(t, err)

	res, err := l.CheckIn("Bo", "Monday 6:00 AM", true)
	require.NoError(t, err)
	assert.True(t, res.ToppedUp)
	require.NotNil(t, res.Attendance)
	assert.Equal(t, 0, res.Member.Credits) // +1 single, -1 check-in

	// The synthesized single shows up in the transaction history.
	txs := l.ListTransactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "Single $20", txs[0].Pack)
	assert.Equal(t, 20, txs[0].Amount)

	// One event per mutation: member_add, attendance, payment, attendance.
	assert.Equal(t, 4, q.Len())
}

func TestCheckInRequiresSession(t *testing.T) {
	l, q, _ := newTestLedger(t)
	_, err := l.AddMember("Ann", "", "", "")
	require.NoError(t, err)
	eventsBefore := q.Len()

	_, err = l.CheckIn("Ann", "   ", false)
	assert.ErrorIs(t, err, ErrNoSessionSelected)
	assert.Equal(t, eventsBefore, q.Len())
}

func TestCheckInUnknownMember(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.CheckIn("Ghost", "Monday 6:00 AM", false)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCreditsNeverNegative(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.AddMember("Ann", "", "", "")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		res, err := l.CheckIn("Ann", "Monday 6:00 AM", false)
		require.NoError(t, err)
		if res.NeedsTopUp {
			break
		}
	}
	for _, m := range l.ListMembers() {
		assert.GreaterOrEqual(t, m.Credits, 0)
	}
}

func TestOneEventPerMutation(t *testing.T) {
	l, q, _ := newTestLedger(t)

	_, err := l.AddMember("Ann", "0412", "", "")
	require.NoError(t, err) // 1
	_, err = l.ApplyPayment("Ann", models.PackTwenty)
	require.NoError(t, err) // 2
	_, err = l.CheckIn("Ann", "Tuesday 9:30 AM", false)
	require.NoError(t, err) // 3

	// Failures and no-ops emit nothing.
	_, _ = l.AddMember("", "", "", "")
	_, _ = l.ApplyPayment("Ghost", models.PackSingle)
	_, _ = l.CheckIn("Ann", "", false)
	l.DeleteMember("unknown")
	l.ClearTransactions()

	assert.Equal(t, 3, q.Len())
}

func TestClearTransactionsIsLocalOnly(t *testing.T) {
	l, q, _ := newTestLedger(t)

	_, err := l.AddMember("Ann", "", "", "")
	require.NoError(t, err)
	_, err = l.ApplyPayment("Ann", models.PackSingle)
	require.NoError(t, err)
	eventsBefore := q.Len()

	l.ClearTransactions()

	assert.Empty(t, l.ListTransactions())
	assert.Equal(t, eventsBefore, q.Len())
	assert.Equal(t, 2, l.ListMembers()[0].Credits) // balances untouched
}

func TestLedgerReloadsPersistedState(t *testing.T) {
	l, _, store := newTestLedger(t)

	_, err := l.AddMember("Ann", "0412", "", "")
	require.NoError(t, err)
	_, err = l.ApplyPayment("Ann", models.PackTen)
	require.NoError(t, err)
	_, err = l.CheckIn("Ann", "Monday 6:00 AM", false)
	require.NoError(t, err)

	q2, err := NewDurableQueue(store)
	require.NoError(t, err)
	pump2 := NewDeliveryPump(q2, deadSink{}, NopObserver{})
	l2, err := NewLedger(store, q2, pump2, NopObserver{})
	require.NoError(t, err)

	require.Len(t, l2.ListMembers(), 1)
	assert.Equal(t, 10, l2.ListMembers()[0].Credits)
	assert.Len(t, l2.ListTransactions(), 1)
	assert.Len(t, l2.ListAttendance(), 1)
	assert.Equal(t, 3, q2.Len())

	// New IDs keep increasing past reloaded ones.
	m, err := l2.AddMember("Bo", "", "", "")
	require.NoError(t, err)
	assert.NotEqual(t, l2.ListMembers()[0].ID, m.ID)
}
