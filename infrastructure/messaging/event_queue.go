// Package messaging carries committed model events from the domain service
// to the dispatcher over an unbounded, ordered, multi-producer
// single-consumer channel.
package messaging

import (
	"context"
	"errors"
	"sync"

	"github.com/chanmix51/kaku/application/ports"
	"github.com/chanmix51/kaku/domain/events"
	"github.com/chanmix51/kaku/pkg/observability"
)

// ErrQueueClosed is returned by Publish once the receiving end is gone
var ErrQueueClosed = errors.New("event queue is closed")

// EventQueue is an unbounded FIFO event channel. Publish never blocks while
// the queue is open; events reach the single consumer in publication order.
// The sending half is shared by all producers, the receiving half has
// exactly one owner.
type EventQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []events.ModelEvent
	closed  bool

	out     chan events.ModelEvent
	metrics *observability.Collector
}

var _ ports.EventPublisher = (*EventQueue)(nil)

// NewEventQueue creates the queue and starts its pump goroutine. The metrics
// collector may be nil.
func NewEventQueue(metrics *observability.Collector) *EventQueue {
	q := &EventQueue{
		out:     make(chan events.ModelEvent),
		metrics: metrics,
	}
	q.cond = sync.NewCond(&q.mu)

	go q.pump()

	return q
}

// Publish appends one event to the queue. It fails only when the queue has
// been closed; the event then carries a mutation that already committed, so
// callers must surface the failure rather than retract anything.
func (q *EventQueue) Publish(_ context.Context, event events.ModelEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.pending = append(q.pending, event)
	if q.metrics != nil {
		q.metrics.EventQueueDepth.Set(float64(len(q.pending)))
	}
	q.cond.Signal()
	return nil
}

// Events returns the consumer-facing channel. Events arrive in publication
// order; the channel is closed once the queue is closed and fully drained.
func (q *EventQueue) Events() <-chan events.ModelEvent {
	return q.out
}

// Close stops accepting publications. Already-queued events are still
// delivered to the consumer before the Events channel closes.
func (q *EventQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// pump moves events one at a time from the pending buffer to the consumer
// channel, preserving FIFO order.
func (q *EventQueue) pump() {
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			// closed and drained
			q.mu.Unlock()
			close(q.out)
			return
		}
		event := q.pending[0]
		q.pending = q.pending[1:]
		if q.metrics != nil {
			q.metrics.EventQueueDepth.Set(float64(len(q.pending)))
		}
		q.mu.Unlock()

		q.out <- event
	}
}
