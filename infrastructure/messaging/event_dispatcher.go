package messaging

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/chanmix51/kaku/domain/events"
)

// EventHandler reacts to one model event. Handlers run sequentially on the
// dispatcher goroutine; a failing handler is logged and does not stop the
// dispatch loop.
type EventHandler func(ctx context.Context, event events.ModelEvent) error

// EventDispatcher is the single consumer of the event queue. It drains the
// channel in order and fans each event out to the registered handlers.
type EventDispatcher struct {
	queue    *EventQueue
	handlers []EventHandler
	logger   *zap.Logger
}

// NewEventDispatcher creates a dispatcher draining the given queue
func NewEventDispatcher(queue *EventQueue, logger *zap.Logger) *EventDispatcher {
	return &EventDispatcher{
		queue:  queue,
		logger: logger,
	}
}

// Subscribe registers a handler. Must be called before Run.
func (d *EventDispatcher) Subscribe(handler EventHandler) {
	d.handlers = append(d.handlers, handler)
}

// Run consumes events until the context is cancelled or the queue closes.
// It returns nil on cancellation and an error when the queue closed
// underneath it, so the caller can tell a shutdown from a broken channel.
func (d *EventDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-d.queue.Events():
			if !ok {
				return errors.New("event queue closed")
			}
			d.dispatch(ctx, event)
		}
	}
}

func (d *EventDispatcher) dispatch(ctx context.Context, event events.ModelEvent) {
	d.logger.Debug("model event received",
		zap.String("eventType", event.Type()),
		zap.String("id", event.ID),
		zap.Time("timestamp", event.Timestamp),
	)

	for _, handler := range d.handlers {
		if err := handler(ctx, event); err != nil {
			d.logger.Error("event handler failed",
				zap.String("eventType", event.Type()),
				zap.String("id", event.ID),
				zap.Error(err),
			)
		}
	}
}
