package services

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/storage"
)

// Ledger owns the members, transactions and attendance records. Every
// user-visible mutation persists the touched collections, enqueues exactly
// one outbound event per mutation, and notifies the render observer.
// Balances here are the source of truth: delivery failures never roll a
// mutation back, the remote sheet catches up when the queue drains.
type Ledger struct {
	mu       sync.Mutex
	store    storage.Store
	queue    *DurableQueue
	pump     *DeliveryPump
	observer RenderObserver

	members    []models.Member
	tx         []models.Transaction // newest-first
	attendance []models.Attendance  // newest-first
	lastID     int64
}

// NewLedger loads the persisted collections. The queue is loaded
// separately so an undelivered backlog survives restarts on its own.
func NewLedger(store storage.Store, queue *DurableQueue, pump *DeliveryPump, observer RenderObserver) (*Ledger, error) {
	l := &Ledger{store: store, queue: queue, pump: pump, observer: observer}
	if err := store.Load(storage.KeyMembers, &l.members); err != nil {
		return nil, err
	}
	if err := store.Load(storage.KeyTransactions, &l.tx); err != nil {
		return nil, err
	}
	if err := store.Load(storage.KeyAttendance, &l.attendance); err != nil {
		return nil, err
	}
	for _, m := range l.members {
		if id, err := strconv.ParseInt(m.ID, 10, 64); err == nil && id > l.lastID {
			l.lastID = id
		}
	}
	return l, nil
}

// AddMember creates a member with one free credit (first class free).
func (l *Ledger) AddMember(name, phone, email, notes string) (*models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	member := models.Member{
		ID:        l.nextID(),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		Notes:     strings.TrimSpace(notes),
		Credits:   1,
		CreatedAt: time.Now().UTC(),
	}
	l.members = append(l.members, member)
	l.persistMembers()

	l.enqueue(models.EventMemberAdd, models.MemberAddPayload{
		MemberID:  member.ID,
		Name:      member.Name,
		Phone:     member.Phone,
		Email:     member.Email,
		Notes:     member.Notes,
		Credits:   member.Credits,
		CreatedAt: member.CreatedAt,
	})
	l.observer.Notify(NotifyMembers)
	l.pump.Kick()
	return &member, nil
}

// DeleteMember removes the member; unknown IDs are a silent no-op. The
// confirmation step lives in the UI layer, so by the time this runs the
// decision is made. History referencing the member is never retracted.
func (l *Ledger) DeleteMember(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.members {
		if l.members[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	removed := l.members[idx]
	l.members = append(l.members[:idx], l.members[idx+1:]...)
	l.persistMembers()

	l.enqueue(models.EventMemberDelete, models.MemberDeletePayload{
		MemberID:   removed.ID,
		MemberName: removed.Name,
	})
	l.observer.Notify(NotifyMembers)
	l.pump.Kick()
	return true
}

// ApplyPayment sells a credit pack to the member the input resolves to.
func (l *Ledger) ApplyPayment(memberRef string, pack models.PackKind) (*models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	member := ResolveMember(l.members, memberRef)
	if member == nil {
		return nil, ErrMemberNotFound
	}
	tx, err := l.applyPaymentLocked(member, pack)
	if err != nil {
		return nil, err
	}
	l.pump.Kick()
	return tx, nil
}

// applyPaymentLocked mutates the resolved member, records the transaction
// and enqueues the payment event. Caller holds l.mu and kicks the pump.
func (l *Ledger) applyPaymentLocked(member *models.Member, pack models.PackKind) (*models.Transaction, error) {
	info, ok := pack.Info()
	if !ok {
		return nil, ErrUnknownPack
	}

	member.Credits += info.Credits
	l.persistMembers()

	tx := models.Transaction{
		Timestamp:  time.Now().UTC(),
		Pack:       info.Label,
		MemberID:   member.ID,
		MemberName: member.Name,
		Amount:     info.Amount,
		Credits:    info.Credits,
	}
	l.tx = append([]models.Transaction{tx}, l.tx...)
	l.persistTransactions()

	l.enqueue(models.EventPayment, models.PaymentPayload{
		Pack:        info.Label,
		MemberID:    member.ID,
		MemberName:  member.Name,
		MemberEmail: member.Email,
		Amount:      info.Amount,
		Credits:     info.Credits,
	})
	l.observer.Notify(NotifyMembers)
	l.observer.Notify(NotifyTransactions)
	return &tx, nil
}

// CheckInResult tells the caller what a check-in attempt did. NeedsTopUp
// means the member has no credits and nothing was changed: the UI asks for
// confirmation and retries with topUpConfirmed set, or drops the attempt.
type CheckInResult struct {
	Member     models.Member      `json:"member"`
	Attendance *models.Attendance `json:"attendance,omitempty"`
	ToppedUp   bool               `json:"topped_up"`
	NeedsTopUp bool               `json:"needs_top_up"`
}

// CheckIn deducts one credit and records attendance for the session. On a
// zero balance with topUpConfirmed set, a single-pack payment is applied
// first and the check-in then proceeds; credits never go negative.
func (l *Ledger) CheckIn(memberRef, session string, topUpConfirmed bool) (*CheckInResult, error) {
	if strings.TrimSpace(session) == "" {
		return nil, ErrNoSessionSelected
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	member := ResolveMember(l.members, memberRef)
	if member == nil {
		return nil, ErrMemberNotFound
	}

	res := &CheckInResult{}
	if member.Credits <= 0 {
		if !topUpConfirmed {
			res.Member = *member
			res.NeedsTopUp = true
			return res, nil
		}
		if _, err := l.applyPaymentLocked(member, models.PackSingle); err != nil {
			return nil, err
		}
		res.ToppedUp = true
	}

	member.Credits--
	l.persistMembers()

	att := models.Attendance{
		Timestamp:  time.Now().UTC(),
		Session:    session,
		MemberID:   member.ID,
		MemberName: member.Name,
	}
	l.attendance = append([]models.Attendance{att}, l.attendance...)
	l.persistAttendance()

	l.enqueue(models.EventAttendance, models.AttendancePayload{
		Session:    att.Session,
		MemberID:   att.MemberID,
		MemberName: att.MemberName,
	})
	l.observer.Notify(NotifyMembers)
	l.observer.Notify(NotifyAttendance)
	l.pump.Kick()

	res.Member = *member
	res.Attendance = &att
	return res, nil
}

// ClearTransactions erases the displayed payment history. Local only: no
// event is emitted and the remote ledger keeps everything.
func (l *Ledger) ClearTransactions() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tx = nil
	l.persistTransactions()
	l.observer.Notify(NotifyTransactions)
}

func (l *Ledger) ListMembers() []models.Member {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Member, len(l.members))
	copy(out, l.members)
	return out
}

func (l *Ledger) ListTransactions() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Transaction, len(l.tx))
	copy(out, l.tx)
	return out
}

func (l *Ledger) ListAttendance() []models.Attendance {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Attendance, len(l.attendance))
	copy(out, l.attendance)
	return out
}

// nextID returns a creation-time token, bumped when two members are added
// within the same millisecond. Caller holds l.mu.
func (l *Ledger) nextID() string {
	now := time.Now().UnixMilli()
	if now <= l.lastID {
		now = l.lastID + 1
	}
	l.lastID = now
	return strconv.FormatInt(now, 10)
}

// Persistence failures are logged, not propagated: the in-memory state
// already moved on and the next successful save catches up. This is the
// documented crash window of the design.

func (l *Ledger) persistMembers() {
	if err := l.store.Save(storage.KeyMembers, l.members); err != nil {
		log.Printf("[LEDGER] persist members: %v", err)
	}
}

func (l *Ledger) persistTransactions() {
	if err := l.store.Save(storage.KeyTransactions, l.tx); err != nil {
		log.Printf("[LEDGER] persist transactions: %v", err)
	}
}

func (l *Ledger) persistAttendance() {
	if err := l.store.Save(storage.KeyAttendance, l.attendance); err != nil {
		log.Printf("[LEDGER] persist attendance: %v", err)
	}
}

func (l *Ledger) enqueue(t models.EventType, payload any) {
	if err := l.queue.Enqueue(t, payload); err != nil {
		log.Printf("[LEDGER] enqueue %s: %v", t, err)
		return
	}
	l.observer.Notify(NotifyQueue)
}
