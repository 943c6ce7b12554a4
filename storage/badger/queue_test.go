package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/semcv/semcv/storage"
)

func TestQueueEnqueueReserveAck(t *testing.T) {
	_, queue, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { queue.Close(); backend.Close() }()

	ctx := context.Background()

	if err := queue.Enqueue(ctx, []byte(`{"record_id":"aaa"}`)); err != nil {
		t.Fatalf("Failed to enqueue: %v", err)
	}
	if err := queue.Enqueue(ctx, []byte(`{"record_id":"bbb"}`)); err != nil {
		t.Fatalf("Failed to enqueue: %v", err)
	}

	depth, err := queue.Depth(ctx)
	if err != nil {
		t.Fatalf("Failed to get depth: %v", err)
	}
	if depth != 2 {
		t.Fatalf("Expected depth 2, got %d", depth)
	}

	// FIFO: first enqueued comes out first
	msg, err := queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Failed to reserve: %v", err)
	}
	if string(msg.Body) != `{"record_id":"aaa"}` {
		t.Fatalf("Expected first message, got %s", msg.Body)
	}

	// Reserve without ack must return the same head message
	again, err := queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Failed to re-reserve: %v", err)
	}
	if again.Seq != msg.Seq {
		t.Fatalf("Expected same head message, got seq %d vs %d", again.Seq, msg.Seq)
	}

	if err := queue.Ack(ctx, msg.Seq); err != nil {
		t.Fatalf("Failed to ack: %v", err)
	}

	msg, err = queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Failed to reserve: %v", err)
	}
	if string(msg.Body) != `{"record_id":"bbb"}` {
		t.Fatalf("Expected second message after ack, got %s", msg.Body)
	}
	if err := queue.Ack(ctx, msg.Seq); err != nil {
		t.Fatalf("Failed to ack: %v", err)
	}

	_, err = queue.Reserve(ctx)
	if !errors.Is(err, storage.ErrQueueEmpty) {
		t.Fatalf("Expected ErrQueueEmpty, got %v", err)
	}
}

func TestQueueRequeueIncrementsAttempts(t *testing.T) {
	_, queue, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { queue.Close(); backend.Close() }()

	ctx := context.Background()

	if err := queue.Enqueue(ctx, []byte(`{"record_id":"aaa"}`)); err != nil {
		t.Fatalf("Failed to enqueue: %v", err)
	}

	msg, err := queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Failed to reserve: %v", err)
	}
	if msg.Attempts != 0 {
		t.Fatalf("Expected 0 attempts on first delivery, got %d", msg.Attempts)
	}

	if err := queue.Requeue(ctx, msg); err != nil {
		t.Fatalf("Failed to requeue: %v", err)
	}

	redelivered, err := queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Failed to reserve after requeue: %v", err)
	}
	if redelivered.Attempts != 1 {
		t.Fatalf("Expected attempts 1 after requeue, got %d", redelivered.Attempts)
	}
	if redelivered.Seq == msg.Seq {
		t.Fatal("Requeued message must get a new sequence")
	}
	if string(redelivered.Body) != string(msg.Body) {
		t.Fatal("Requeue must preserve the message body")
	}

	depth, err := queue.Depth(ctx)
	if err != nil {
		t.Fatalf("Failed to get depth: %v", err)
	}
	if depth != 1 {
		t.Fatalf("Expected depth 1 after requeue, got %d", depth)
	}
}

func TestQueueBury(t *testing.T) {
	_, queue, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { queue.Close(); backend.Close() }()

	ctx := context.Background()

	if err := queue.Enqueue(ctx, []byte(`not json`)); err != nil {
		t.Fatalf("Failed to enqueue: %v", err)
	}

	msg, err := queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Failed to reserve: %v", err)
	}

	if err := queue.Bury(ctx, msg); err != nil {
		t.Fatalf("Failed to bury: %v", err)
	}

	_, err = queue.Reserve(ctx)
	if !errors.Is(err, storage.ErrQueueEmpty) {
		t.Fatalf("Buried message must not be redelivered, got %v", err)
	}

	dead, err := queue.DeadDepth(ctx)
	if err != nil {
		t.Fatalf("Failed to get dead depth: %v", err)
	}
	if dead != 1 {
		t.Fatalf("Expected 1 dead-lettered message, got %d", dead)
	}
}

func TestQueueDurability(t *testing.T) {
	dir := t.TempDir()

	backend, err := OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	queue, err := NewEventQueue(backend)
	if err != nil {
		t.Fatalf("Failed to create queue: %v", err)
	}

	ctx := context.Background()
	if err := queue.Enqueue(ctx, []byte(`{"record_id":"persisted"}`)); err != nil {
		t.Fatalf("Failed to enqueue: %v", err)
	}

	// Simulate a broker restart
	if err := queue.Close(); err != nil {
		t.Fatalf("Failed to close queue: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}

	backend, err = OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to reopen backend: %v", err)
	}
	queue, err = NewEventQueue(backend)
	if err != nil {
		t.Fatalf("Failed to recreate queue: %v", err)
	}
	defer func() { queue.Close(); backend.Close() }()

	msg, err := queue.Reserve(ctx)
	if err != nil {
		t.Fatalf("Expected message to survive restart: %v", err)
	}
	if string(msg.Body) != `{"record_id":"persisted"}` {
		t.Fatalf("Unexpected body after restart: %s", msg.Body)
	}
}
