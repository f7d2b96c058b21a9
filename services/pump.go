package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DeliveryPump drains the durable queue against the remote sink with
// at-least-once, in-order, stop-on-failure semantics. Exactly one drain
// loop runs at a time; overlapping Flush calls no-op instead of sending
// the front event twice.
type DeliveryPump struct {
	queue    *DurableQueue
	sink     RemoteSink
	observer RenderObserver

	mu       sync.Mutex
	draining bool
}

// FlushResult reports what one Flush call did.
type FlushResult struct {
	Sent    int   // events acknowledged and removed
	Pending int   // events still queued afterwards
	Skipped bool  // another drain was already running
	Err     error // delivery error that stopped the drain, if any
}

func NewDeliveryPump(queue *DurableQueue, sink RemoteSink, observer RenderObserver) *DeliveryPump {
	return &DeliveryPump{queue: queue, sink: sink, observer: observer}
}

// Flush drains the queue until it is empty or a delivery fails. On failure
// the failed event and everything behind it stay queued, preserving order.
// Safe to call from any goroutine.
func (p *DeliveryPump) Flush() FlushResult {
	p.mu.Lock()
	if p.draining {
		p.mu.Unlock()
		return FlushResult{Skipped: true, Pending: p.queue.Len()}
	}
	p.draining = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.draining = false
		p.mu.Unlock()
	}()

	var res FlushResult
	for {
		ev, ok := p.queue.PeekFront()
		if !ok {
			break
		}
		if err := p.sink.Send(ev); err != nil {
			log.Printf("[PUMP] delivery of %s stopped: %v (%d pending, safe locally)", ev.Type, err, p.queue.Len())
			res.Err = err
			break
		}
		if err := p.queue.RemoveFront(); err != nil {
			// Delivered but not yet removed from the persisted queue; a
			// crash here re-sends the event on the next run (at-least-once).
			log.Printf("[PUMP] remove after delivery: %v", err)
		}
		res.Sent++
	}

	res.Pending = p.queue.Len()
	if res.Sent > 0 {
		log.Printf("[PUMP] delivered %d event(s), %d pending", res.Sent, res.Pending)
		p.observer.Notify(NotifyQueue)
	}
	return res
}

// Kick triggers an asynchronous flush. Called after every enqueue and on
// the UI's connectivity-restored signal.
func (p *DeliveryPump) Kick() {
	go p.Flush()
}

// RunRetryLoop keeps retrying a non-empty queue in the background, paced
// by exponential backoff so a dead webhook is not hammered. The pacing
// never reorders events; it only decides when the next in-order attempt
// happens. Blocks until ctx is done.
func (p *DeliveryPump) RunRetryLoop(ctx context.Context, idle time.Duration) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 2 * time.Minute
	bo.MaxElapsedTime = 0 // retry forever

	wait := idle
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		if p.queue.Len() == 0 {
			bo.Reset()
			wait = idle
			continue
		}

		res := p.Flush()
		if res.Err != nil {
			wait = bo.NextBackOff()
			continue
		}
		bo.Reset()
		wait = idle
	}
}
