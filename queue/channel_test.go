package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/storage"
	storagebadger "github.com/semcv/semcv/storage/badger"
)

func newTestChannel(t *testing.T, opts ...Option) (*Channel, storage.EventQueue) {
	t.Helper()

	_, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventQueue.Close()
		backend.Close()
	})

	opts = append([]Option{WithPollInterval(10 * time.Millisecond)}, opts...)
	channel, err := NewChannel(eventQueue, opts...)
	require.NoError(t, err)

	return channel, eventQueue
}

// consume runs the consumer until stop is called.
func consume(t *testing.T, channel *Channel, handler Handler) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := channel.Consume(ctx, handler)
		assert.ErrorIs(t, err, context.Canceled)
	}()

	return func() {
		cancel()
		<-done
	}
}

func TestChannelDeliversPublishedEvents(t *testing.T) {
	channel, _ := newTestChannel(t)
	ctx := context.Background()

	var mu sync.Mutex
	var seen []string
	delivered := make(chan struct{}, 4)

	stop := consume(t, channel, func(ctx context.Context, event IndexEvent) error {
		mu.Lock()
		seen = append(seen, event.RecordID)
		mu.Unlock()
		delivered <- struct{}{}
		return nil
	})
	defer stop()

	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-a"}))
	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-b"}))

	for range 2 {
		select {
		case <-delivered:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for delivery")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"rec-a", "rec-b"}, seen, "events must arrive in publish order")
}

func TestChannelRedeliversOnFailure(t *testing.T) {
	channel, eventQueue := newTestChannel(t)
	ctx := context.Background()

	var mu sync.Mutex
	attempts := 0
	succeeded := make(chan struct{})

	stop := consume(t, channel, func(ctx context.Context, event IndexEvent) error {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n == 1 {
			return errors.New("transient failure")
		}
		close(succeeded)
		return nil
	})
	defer stop()

	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-a"}))

	select {
	case <-succeeded:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for redelivery")
	}

	mu.Lock()
	assert.Equal(t, 2, attempts, "event must be redelivered exactly once after a single failure")
	mu.Unlock()

	require.Eventually(t, func() bool {
		depth, err := eventQueue.Depth(ctx)
		return err == nil && depth == 0
	}, 2*time.Second, 10*time.Millisecond, "queue must drain after success")
}

func TestChannelDeadLettersAfterMaxAttempts(t *testing.T) {
	channel, eventQueue := newTestChannel(t, WithMaxAttempts(3))
	ctx := context.Background()

	var mu sync.Mutex
	attempts := 0

	stop := consume(t, channel, func(ctx context.Context, event IndexEvent) error {
		mu.Lock()
		attempts++
		mu.Unlock()
		return errors.New("permanent failure")
	})
	defer stop()

	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-a"}))

	require.Eventually(t, func() bool {
		dead, err := eventQueue.DeadDepth(ctx)
		return err == nil && dead == 1
	}, 2*time.Second, 10*time.Millisecond, "event must end up dead-lettered")

	mu.Lock()
	assert.Equal(t, 3, attempts)
	mu.Unlock()

	depth, err := eventQueue.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestChannelDropsMalformedEvents(t *testing.T) {
	channel, eventQueue := newTestChannel(t)
	ctx := context.Background()

	handled := make(chan struct{}, 1)
	stop := consume(t, channel, func(ctx context.Context, event IndexEvent) error {
		handled <- struct{}{}
		return nil
	})
	defer stop()

	// Bypass Publish to inject garbage and a payload missing the record ID.
	require.NoError(t, eventQueue.Enqueue(ctx, []byte("not json")))
	require.NoError(t, eventQueue.Enqueue(ctx, []byte(`{"other":"field"}`)))
	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-a"}))

	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("valid event must still be processed")
	}

	dead, err := eventQueue.DeadDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dead, "malformed payloads are dead-lettered, not retried")
}

// flakyQueue injects a bounded number of failures per operation before
// delegating to the real queue.
type flakyQueue struct {
	storage.EventQueue

	mu              sync.Mutex
	reserveFailures int
	ackFailures     int
}

func (q *flakyQueue) failNext(counter *int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if *counter > 0 {
		*counter--
		return true
	}
	return false
}

func (q *flakyQueue) Reserve(ctx context.Context) (*core.QueueMessage, error) {
	if q.failNext(&q.reserveFailures) {
		return nil, errors.New("disk hiccup")
	}
	return q.EventQueue.Reserve(ctx)
}

func (q *flakyQueue) Ack(ctx context.Context, seq uint64) error {
	if q.failNext(&q.ackFailures) {
		return errors.New("disk hiccup")
	}
	return q.EventQueue.Ack(ctx, seq)
}

func TestChannelSurvivesTransientStorageErrors(t *testing.T) {
	_, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventQueue.Close()
		backend.Close()
	})

	flaky := &flakyQueue{EventQueue: eventQueue, reserveFailures: 2, ackFailures: 1}
	channel, err := NewChannel(flaky, WithPollInterval(5*time.Millisecond))
	require.NoError(t, err)
	ctx := context.Background()

	var mu sync.Mutex
	seen := map[string]int{}

	stop := consume(t, channel, func(ctx context.Context, event IndexEvent) error {
		mu.Lock()
		seen[event.RecordID]++
		mu.Unlock()
		return nil
	})
	defer stop()

	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-a"}))
	require.NoError(t, channel.Publish(ctx, IndexEvent{RecordID: "rec-b"}))

	// The consumer must outlive the injected reserve and ack failures and
	// still drain the queue.
	require.Eventually(t, func() bool {
		depth, err := eventQueue.Depth(ctx)
		return err == nil && depth == 0
	}, 2*time.Second, 10*time.Millisecond, "queue must drain despite storage hiccups")

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, seen["rec-a"], 1)
	assert.GreaterOrEqual(t, seen["rec-b"], 1)

	dead, err := eventQueue.DeadDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, dead, "storage hiccups must not dead-letter events")
}

func TestChannelPublishRejectsEmptyRecordID(t *testing.T) {
	channel, _ := newTestChannel(t)

	err := channel.Publish(context.Background(), IndexEvent{})
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestChannelOptionValidation(t *testing.T) {
	_, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		eventQueue.Close()
		backend.Close()
	}()

	_, err = NewChannel(nil)
	assert.ErrorIs(t, err, ErrQueueRequired)

	_, err = NewChannel(eventQueue, WithMaxAttempts(0))
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)

	_, err = NewChannel(eventQueue, WithPollInterval(0))
	assert.ErrorIs(t, err, ErrInvalidPollInterval)
}
