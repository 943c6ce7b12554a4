package index

import (
	"context"
	"hash/fnv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcv/semcv/ai/mock"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/queue"
	"github.com/semcv/semcv/storage"
	storagebadger "github.com/semcv/semcv/storage/badger"
	"github.com/semcv/semcv/vector"
)

// vec8 derives a deterministic 8-dim vector from text so tests can embed
// queries the same way the indexer embeds chunks.
func vec8(text string) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	v := make([]float32, testDim)
	for i := range v {
		seed = seed*1664525 + 1013904223
		v[i] = float32(seed%1000)/1000.0 - 0.5
	}
	return v
}

func newTestEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = vec8(text)
		}
		return out, nil
	}
	return embedder
}

type indexerFixture struct {
	records    storage.RecordRepository
	eventQueue storage.EventQueue
	channel    *queue.Channel
	store      *vector.HNSWStore
	indexer    *Indexer
	cancel     context.CancelFunc
}

func newIndexerFixture(t *testing.T) *indexerFixture {
	t.Helper()

	records, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventQueue.Close()
		records.Close()
		backend.Close()
	})

	channel, err := queue.NewChannel(eventQueue,
		queue.WithPollInterval(10*time.Millisecond),
		queue.WithMaxAttempts(2),
	)
	require.NoError(t, err)

	store, err := vector.NewHNSWStore(testDim)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	writer, err := NewWriter(store)
	require.NoError(t, err)

	indexer, err := NewIndexer(records, channel, newTestEmbedder(), writer, testDim)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, indexer.Start(ctx))
	t.Cleanup(func() {
		cancel()
		indexer.Release()
	})

	return &indexerFixture{
		records:    records,
		eventQueue: eventQueue,
		channel:    channel,
		store:      store,
		indexer:    indexer,
		cancel:     cancel,
	}
}

func storedRecord(t *testing.T, fx *indexerFixture) *core.Record {
	t.Helper()

	record := &core.Record{
		Id:      core.IDFromContent("jane doe cv"),
		RawText: "jane doe cv",
		Structured: core.StructuredRecord{
			Summary: core.Summary{Text: "Engineer with Go experience"},
			Experience: []core.ExperienceEntry{
				{Company: "Acme", Title: "Engineer", Bullets: []string{"Built X using Python"}},
			},
			Skills: []core.SkillCategory{{Name: "Languages", Items: []string{"Go", "Python"}}},
		},
	}
	created, err := fx.records.AddRecord(context.Background(), record)
	require.NoError(t, err)
	require.True(t, created)

	return record
}

func TestIndexerProcessesPublishedEvent(t *testing.T) {
	fx := newIndexerFixture(t)
	record := storedRecord(t, fx)
	ctx := context.Background()

	require.NoError(t, fx.channel.Publish(ctx, queue.IndexEvent{RecordID: string(record.Id)}))

	// summary + skills + experience bullet
	require.Eventually(t, func() bool {
		return fx.store.CountByRecord(record.Id) == 3
	}, 3*time.Second, 10*time.Millisecond)

	// A query embedded like the bullet must retrieve it with its provenance
	matches, err := fx.store.Query(ctx, vec8("Acme - Built X using Python"), 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Acme - Built X using Python", matches[0].Metadata[MetaRawText])
	assert.Equal(t, string(record.Id), matches[0].Metadata[MetaRecordID])
	assert.Equal(t, core.SectionExperience, matches[0].Metadata[MetaSection])
	assert.InDelta(t, 1.0, float64(matches[0].Score), 0.001)
}

func TestIndexerReindexIsIdempotent(t *testing.T) {
	fx := newIndexerFixture(t)
	record := storedRecord(t, fx)
	ctx := context.Background()

	require.NoError(t, fx.channel.Publish(ctx, queue.IndexEvent{RecordID: string(record.Id)}))
	require.NoError(t, fx.channel.Publish(ctx, queue.IndexEvent{RecordID: string(record.Id)}))

	require.Eventually(t, func() bool {
		return fx.store.CountByRecord(record.Id) == 3
	}, 3*time.Second, 10*time.Millisecond)

	// Give the second event time to be processed, then confirm no growth
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 3, fx.store.CountByRecord(record.Id))
}

func TestIndexerDeadLettersMissingRecord(t *testing.T) {
	fx := newIndexerFixture(t)
	ctx := context.Background()

	missing := core.IDFromContent("never stored")
	require.NoError(t, fx.channel.Publish(ctx, queue.IndexEvent{RecordID: string(missing)}))

	// maxAttempts is 2, so the event lands in the dead-letter space
	require.Eventually(t, func() bool {
		dead, err := fx.eventQueue.DeadDepth(ctx)
		return err == nil && dead == 1
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, fx.store.Count())
}

func TestIndexerConstructorValidation(t *testing.T) {
	records, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		eventQueue.Close()
		records.Close()
		backend.Close()
	}()

	channel, err := queue.NewChannel(eventQueue)
	require.NoError(t, err)

	store, err := vector.NewHNSWStore(testDim)
	require.NoError(t, err)
	defer store.Close()

	writer, err := NewWriter(store)
	require.NoError(t, err)

	_, err = NewIndexer(nil, channel, mock.NewMockEmbedder(), writer, testDim)
	assert.ErrorIs(t, err, ErrRecordRepositoryRequired)

	_, err = NewIndexer(records, nil, mock.NewMockEmbedder(), writer, testDim)
	assert.ErrorIs(t, err, ErrChannelRequired)

	_, err = NewIndexer(records, channel, nil, writer, testDim)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewIndexer(records, channel, mock.NewMockEmbedder(), nil, testDim)
	assert.ErrorIs(t, err, ErrWriterRequired)
}
