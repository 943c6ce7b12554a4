package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcv/semcv/ai/mock"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/queue"
	"github.com/semcv/semcv/storage"
	storagebadger "github.com/semcv/semcv/storage/badger"
)

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.RecordRepository, storage.EventQueue) {
	t.Helper()

	records, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventQueue.Close()
		records.Close()
		backend.Close()
	})

	channel, err := queue.NewChannel(eventQueue)
	require.NoError(t, err)

	pipeline, err := NewPipeline(records, channel, opts...)
	require.NoError(t, err)

	return pipeline, records, eventQueue
}

func sampleStructured() core.StructuredRecord {
	return core.StructuredRecord{
		Summary: core.Summary{Text: "Engineer with Go experience"},
		Experience: []core.ExperienceEntry{
			{Company: "Acme", Bullets: []string{"Built X using Python"}},
		},
	}
}

func TestStoreNewRecord(t *testing.T) {
	pipeline, records, eventQueue := newTestPipeline(t)
	ctx := context.Background()

	result, err := pipeline.Store(ctx, "jane doe cv", sampleStructured(), map[string]string{"filename": "jane.pdf"})
	require.NoError(t, err)
	assert.Equal(t, StatusStored, result.Status)
	assert.Equal(t, core.IDFromContent("jane doe cv"), result.Id)

	stored, err := records.GetRecord(ctx, result.Id)
	require.NoError(t, err)
	assert.Equal(t, "jane doe cv", stored.RawText)
	assert.Equal(t, "jane.pdf", stored.Metadata["filename"])

	depth, err := eventQueue.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth, "store must publish exactly one index event")
}

func TestStoreDuplicateContent(t *testing.T) {
	pipeline, records, eventQueue := newTestPipeline(t)
	ctx := context.Background()

	first, err := pipeline.Store(ctx, "duplicate cv", sampleStructured(), nil)
	require.NoError(t, err)
	require.Equal(t, StatusStored, first.Status)

	second, err := pipeline.Store(ctx, "duplicate cv", core.StructuredRecord{}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyExists, second.Status)
	assert.Equal(t, first.Id, second.Id)

	count, err := records.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	depth, err := eventQueue.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth, "duplicate store must not publish another event")
}

func TestStoreRejectsEmptyText(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	_, err := pipeline.Store(context.Background(), "   \n ", core.StructuredRecord{}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyRawText)
}

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, event queue.IndexEvent) error {
	return errors.New("broker unavailable")
}

func TestStoreSurvivesPublishFailure(t *testing.T) {
	records, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		eventQueue.Close()
		records.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(records, failingPublisher{})
	require.NoError(t, err)

	result, err := pipeline.Store(context.Background(), "jane doe cv", sampleStructured(), nil)
	require.NoError(t, err, "publish failure must not fail the store")
	assert.Equal(t, StatusStoredNotQueued, result.Status)

	_, err = records.GetRecord(context.Background(), result.Id)
	assert.NoError(t, err, "record must be durable despite publish failure")
}

func TestIngestTextStructuresAndStores(t *testing.T) {
	structurer := mock.NewMockStructurer()
	structurer.StructureFunc = func(ctx context.Context, rawText string) (core.StructuredRecord, error) {
		return sampleStructured(), nil
	}

	pipeline, records, _ := newTestPipeline(t, WithStructurer(structurer))
	ctx := context.Background()

	result, err := pipeline.IngestText(ctx, "jane doe\nBuilt X using Python", map[string]string{"filename": "jane.txt"})
	require.NoError(t, err)
	assert.Equal(t, StatusStored, result.Status)
	assert.Equal(t, 1, structurer.CallCount())

	stored, err := records.GetRecord(ctx, result.Id)
	require.NoError(t, err)
	assert.Equal(t, "Engineer with Go experience", stored.Structured.Summary.Text)
	assert.Equal(t, "jane.txt", stored.Metadata["filename"])
	assert.Equal(t, "29", stored.Metadata["char_count"])
	assert.Equal(t, "6", stored.Metadata["word_count"])
}

func TestIngestTextSkipsStructuringDuplicates(t *testing.T) {
	structurer := mock.NewMockStructurer()
	pipeline, _, _ := newTestPipeline(t, WithStructurer(structurer))
	ctx := context.Background()

	first, err := pipeline.IngestText(ctx, "jane doe cv", nil)
	require.NoError(t, err)
	require.Equal(t, StatusStored, first.Status)
	require.Equal(t, 1, structurer.CallCount())

	second, err := pipeline.IngestText(ctx, "jane doe cv", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyExists, second.Status)
	assert.Equal(t, 1, structurer.CallCount(), "known content must not be re-structured")
}

func TestIngestTextRequiresStructurer(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	_, err := pipeline.IngestText(context.Background(), "some cv", nil)
	assert.ErrorIs(t, err, ErrStructurerRequired)
}

func TestNewPipelineValidation(t *testing.T) {
	records, eventQueue, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		eventQueue.Close()
		records.Close()
		backend.Close()
	}()

	channel, err := queue.NewChannel(eventQueue)
	require.NoError(t, err)

	_, err = NewPipeline(nil, channel)
	assert.ErrorIs(t, err, ErrRecordRepositoryRequired)

	_, err = NewPipeline(records, nil)
	assert.ErrorIs(t, err, ErrPublisherRequired)
}
