package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/semcv/semcv/storage"
)

// IndexEvent is the wire payload carried over the channel: a notification
// that the record with the given ID needs (re-)indexing. Events are
// stateless and replayable; downstream processing is idempotent per chunk.
type IndexEvent struct {
	RecordID string `json:"record_id"`
}

// Handler processes one delivered event. Returning an error causes the
// event to be redelivered, so handlers must be idempotent.
type Handler func(ctx context.Context, event IndexEvent) error

// Publisher is the write-path view of the channel.
type Publisher interface {
	Publish(ctx context.Context, event IndexEvent) error
}

const (
	defaultMaxAttempts  = 5
	defaultPollInterval = 250 * time.Millisecond
)

// Channel is a durable, at-least-once event channel between the document
// write path and the indexer. Delivery is strictly one event at a time per
// consumer; an event is acknowledged only after its handler succeeds.
type Channel struct {
	queue        storage.EventQueue
	maxAttempts  uint32
	pollInterval time.Duration
	notify       chan struct{}
	logger       *slog.Logger
}

var _ Publisher = (*Channel)(nil)

// Option configures a Channel.
type Option func(*Channel) error

// WithMaxAttempts sets how many deliveries a message gets before it is
// dead-lettered. Default is 5.
func WithMaxAttempts(n int) Option {
	return func(c *Channel) error {
		if n < 1 {
			return ErrInvalidMaxAttempts
		}
		c.maxAttempts = uint32(n)
		return nil
	}
}

// WithPollInterval sets how often an idle consumer checks for messages
// enqueued by other processes. Default is 250ms.
func WithPollInterval(d time.Duration) Option {
	return func(c *Channel) error {
		if d <= 0 {
			return ErrInvalidPollInterval
		}
		c.pollInterval = d
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Channel) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewChannel creates a new Channel over a durable queue.
func NewChannel(queue storage.EventQueue, opts ...Option) (*Channel, error) {
	if queue == nil {
		return nil, ErrQueueRequired
	}

	c := &Channel{
		queue:        queue,
		maxAttempts:  defaultMaxAttempts,
		pollInterval: defaultPollInterval,
		notify:       make(chan struct{}, 1),
		logger:       slog.Default().With("component", "event-channel"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Publish persists an event and wakes the consumer. It never blocks on
// consumer availability.
func (c *Channel) Publish(ctx context.Context, event IndexEvent) error {
	if event.RecordID == "" {
		return ErrMalformedEvent
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := c.queue.Enqueue(ctx, body); err != nil {
		return err
	}

	// Wake an idle consumer; drop the signal if one is already pending.
	select {
	case c.notify <- struct{}{}:
	default:
	}

	return nil
}

// Consume delivers events to handler one at a time until ctx is cancelled.
// An event is removed only after handler returns nil. A handler error
// requeues the event for redelivery until the attempt bound is reached,
// after which the event is dead-lettered. Malformed payloads are
// dead-lettered immediately since redelivery cannot fix them.
//
// A storage error on reserve, ack, requeue, or bury is treated as
// transient: it is logged and retried after a backoff rather than stopping
// the consumer. A message stays reserved across such a retry, so
// at-least-once delivery is preserved. Consume returns only on
// cancellation or a nil handler.
func (c *Channel) Consume(ctx context.Context, handler Handler) error {
	if handler == nil {
		return ErrHandlerRequired
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := c.queue.Reserve(ctx)
		if errors.Is(err, storage.ErrQueueEmpty) {
			if err := c.waitForWork(ctx); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			if err := c.backoff(ctx, "reserve", err); err != nil {
				return err
			}
			continue
		}

		var event IndexEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil || event.RecordID == "" {
			c.logger.Warn("dead-lettering malformed event", "seq", msg.Seq, "err", err)
			if err := c.queue.Bury(ctx, msg); err != nil {
				if err := c.backoff(ctx, "bury", err); err != nil {
					return err
				}
			}
			continue
		}

		if err := handler(ctx, event); err != nil {
			if msg.Attempts+1 >= c.maxAttempts {
				c.logger.Error("dead-lettering event after repeated failures",
					"record_id", event.RecordID, "attempts", msg.Attempts+1, "err", err)
				if err := c.queue.Bury(ctx, msg); err != nil {
					if err := c.backoff(ctx, "bury", err); err != nil {
						return err
					}
				}
				continue
			}

			c.logger.Warn("requeueing event after handler failure",
				"record_id", event.RecordID, "attempt", msg.Attempts+1, "err", err)
			if err := c.queue.Requeue(ctx, msg); err != nil {
				if err := c.backoff(ctx, "requeue", err); err != nil {
					return err
				}
			}
			continue
		}

		if err := c.queue.Ack(ctx, msg.Seq); err != nil {
			if err := c.backoff(ctx, "ack", err); err != nil {
				return err
			}
			continue
		}
		c.logger.Debug("event processed", "record_id", event.RecordID)
	}
}

// backoff logs a transient storage failure and waits one poll interval.
// It returns an error only when ctx is cancelled.
func (c *Channel) backoff(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.logger.Error("transient queue failure, backing off", "op", op, "err", err)

	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// waitForWork blocks until a publish signal, a poll tick, or cancellation.
func (c *Channel) waitForWork(ctx context.Context) error {
	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.notify:
		return nil
	case <-timer.C:
		return nil
	}
}
