package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/storage"
)

// EventQueue implements storage.EventQueue for BadgerDB.
// Messages are keyed by a monotonic sequence so iteration order equals
// enqueue order. Reserve does not remove the head message; only Ack does,
// which is what makes delivery at-least-once across restarts.
type EventQueue struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.EventQueue = (*EventQueue)(nil)

// NewEventQueue creates a new EventQueue.
func NewEventQueue(backend *Backend) (storage.EventQueue, error) {
	seq, err := backend.GetSequence(queueSeqName)
	if err != nil {
		return nil, err
	}

	return &EventQueue{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the sequence.
func (q *EventQueue) Close() error {
	return q.seq.Release()
}

// Enqueue appends a message body to the tail of the queue.
func (q *EventQueue) Enqueue(ctx context.Context, body []byte) error {
	seq, err := q.nextSeq()
	if err != nil {
		return err
	}

	msg := &core.QueueMessage{
		Seq:        seq,
		Body:       body,
		EnqueuedAt: time.Now().UTC(),
	}

	return q.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeQueueMsgKey(seq), storage.MarshalQueueMessage(msg)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Reserve returns the message at the head of the queue without removing it.
func (q *EventQueue) Reserve(ctx context.Context) (*core.QueueMessage, error) {
	var msg *core.QueueMessage

	err := q.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(queueMsgPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		iter.Rewind()
		if !iter.Valid() {
			return nil
		}
		return iter.Item().Value(func(val []byte) error {
			var err error
			msg, err = storage.UnmarshalQueueMessage(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, storage.ErrQueueEmpty
	}

	return msg, nil
}

// Ack removes a previously reserved message from the queue.
func (q *EventQueue) Ack(ctx context.Context, seq uint64) error {
	return q.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeQueueMsgKey(seq)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Requeue moves a reserved message to the tail of the queue with its
// attempt count incremented.
func (q *EventQueue) Requeue(ctx context.Context, msg *core.QueueMessage) error {
	newSeq, err := q.nextSeq()
	if err != nil {
		return err
	}

	requeued := &core.QueueMessage{
		Seq:        newSeq,
		Body:       msg.Body,
		Attempts:   msg.Attempts + 1,
		EnqueuedAt: msg.EnqueuedAt,
	}

	return q.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeQueueMsgKey(msg.Seq)); err != nil {
			return err
		}
		if err := tx.Set(makeQueueMsgKey(newSeq), storage.MarshalQueueMessage(requeued)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Bury moves a reserved message to the dead-letter space.
func (q *EventQueue) Bury(ctx context.Context, msg *core.QueueMessage) error {
	return q.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeQueueMsgKey(msg.Seq)); err != nil {
			return err
		}
		if err := tx.Set(makeQueueDeadKey(msg.Seq), storage.MarshalQueueMessage(msg)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Depth returns the number of pending messages.
func (q *EventQueue) Depth(ctx context.Context) (int, error) {
	return q.countPrefix(queueMsgPrefix + ":")
}

// DeadDepth returns the number of dead-lettered messages.
func (q *EventQueue) DeadDepth(ctx context.Context) (int, error) {
	return q.countPrefix(queueDeadPrefix + ":")
}

func (q *EventQueue) countPrefix(prefix string) (int, error) {
	count := 0
	err := q.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// nextSeq returns the next sequence value, skipping 0 which BadgerDB
// sequences can return on first use.
func (q *EventQueue) nextSeq() (uint64, error) {
	seq, err := q.seq.Next()
	if err != nil {
		return 0, err
	}
	if seq == 0 {
		seq, err = q.seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return seq, nil
}
