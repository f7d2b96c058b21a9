package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bffgym/pos-be/models"
	"github.com/bffgym/pos-be/storage"
)

// DurableQueue is the append-only list of outbound events awaiting
// delivery. It is the sole source of truth for "not yet delivered": the
// ledger persists independently and is never rolled back when delivery
// fails. Every append/remove synchronously rewrites the persisted list.
// A crash after a ledger write but before the queue write can lose that
// one event; that window is accepted, not hidden.
type DurableQueue struct {
	mu     sync.Mutex
	store  storage.Store
	events []models.OutboundEvent
}

// NewDurableQueue loads any pending events left over from a previous run.
func NewDurableQueue(store storage.Store) (*DurableQueue, error) {
	q := &DurableQueue{store: store}
	if err := store.Load(storage.KeyPendingEvents, &q.events); err != nil {
		return nil, fmt.Errorf("load pending events: %w", err)
	}
	return q, nil
}

// Enqueue appends an event and persists the queue. It never touches the
// network; delivery is the pump's job.
func (q *DurableQueue) Enqueue(t models.EventType, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", t, err)
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, models.OutboundEvent{
		Type:       t,
		Payload:    data,
		EnqueuedAt: time.Now().UTC(),
	})
	return q.persist()
}

// PeekFront returns the oldest undelivered event without removing it.
func (q *DurableQueue) PeekFront() (models.OutboundEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return models.OutboundEvent{}, false
	}
	return q.events[0], true
}

// RemoveFront drops the front event after a confirmed delivery.
func (q *DurableQueue) RemoveFront() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	q.events = q.events[1:]
	return q.persist()
}

func (q *DurableQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Snapshot returns a copy of the pending events, oldest first.
func (q *DurableQueue) Snapshot() []models.OutboundEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.OutboundEvent, len(q.events))
	copy(out, q.events)
	return out
}

func (q *DurableQueue) persist() error {
	if err := q.store.Save(storage.KeyPendingEvents, q.events); err != nil {
		return fmt.Errorf("persist pending events: %w", err)
	}
	return nil
}
