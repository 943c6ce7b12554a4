package storage

import (
	"context"

	"github.com/semcv/semcv/core"
)

// RecordRepository provides content-addressed storage for records.
// Implementations must be thread-safe and support concurrent access.
type RecordRepository interface {
	// AddRecord persists a record under its content-addressed ID.
	// The record's Id must be set (core.IDFromContent of its RawText).
	// If a record with that ID already exists, nothing is written and
	// created is false; the stored record is immutable.
	// Sets CreatedAt and UpdatedAt on insert.
	AddRecord(ctx context.Context, record *core.Record) (created bool, err error)

	// GetRecord retrieves a record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id core.ID) (*core.Record, error)

	// GetLatestRecord retrieves the most recently created record.
	// Ties are broken by descending creation order.
	// Returns ErrNotFound if the store is empty.
	GetLatestRecord(ctx context.Context) (*core.Record, error)

	// ListRecentRecords retrieves up to limit record summaries,
	// most recent first.
	ListRecentRecords(ctx context.Context, limit int) ([]*core.RecordSummary, error)

	// CountRecords returns the number of stored records.
	CountRecords(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}

// EventQueue is a durable FIFO message queue with explicit acknowledgment.
// Messages survive a process restart; a reserved but unacknowledged message
// is visible again to the next Reserve after restart, giving at-least-once
// delivery. Implementations must be thread-safe.
type EventQueue interface {
	// Enqueue appends a message body to the tail of the queue.
	Enqueue(ctx context.Context, body []byte) error

	// Reserve returns the message at the head of the queue without
	// removing it. Returns ErrQueueEmpty if no message is pending.
	Reserve(ctx context.Context) (*core.QueueMessage, error)

	// Ack removes a previously reserved message from the queue.
	Ack(ctx context.Context, seq uint64) error

	// Requeue moves a reserved message to the tail of the queue with its
	// attempt count incremented.
	Requeue(ctx context.Context, msg *core.QueueMessage) error

	// Bury moves a reserved message to the dead-letter space, out of the
	// delivery path, preserving it for inspection.
	Bury(ctx context.Context, msg *core.QueueMessage) error

	// Depth returns the number of pending messages.
	Depth(ctx context.Context) (int, error)

	// DeadDepth returns the number of dead-lettered messages.
	DeadDepth(ctx context.Context) (int, error)

	// Close releases resources held by the queue.
	Close() error
}
