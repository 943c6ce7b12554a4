package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcv/semcv/ai/mock"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/vector"
)

const testDim = 4

func newTestStore(t *testing.T) *vector.HNSWStore {
	t.Helper()

	store, err := vector.NewHNSWStore(testDim)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func chunkEntry(id, recordID, section, text string, values []float32) vector.Entry {
	return vector.Entry{
		ID:     id,
		Values: values,
		Metadata: map[string]any{
			"record_id": recordID,
			"section":   section,
			"raw_text":  text,
		},
	}
}

// queryEmbedder returns the same vector for every query.
func queryEmbedder(vec []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vec, nil
	}
	return embedder
}

func TestNewSearcher(t *testing.T) {
	store := newTestStore(t)
	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(store, embedder)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewSearcher(nil, embedder)
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewSearcher(store, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("invalid min score", func(t *testing.T) {
		_, err := NewSearcher(store, embedder, WithMinScore(1.5))
		assert.Equal(t, ErrInvalidMinScore, err)
	})
}

func TestSearchEmptyIndex(t *testing.T) {
	store := newTestStore(t)
	searcher, err := NewSearcher(store, queryEmbedder([]float32{1, 0, 0, 0}))
	require.NoError(t, err)

	hits, err := searcher.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchRanksAndFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []vector.Entry{
		chunkEntry("a_experience_0", "rec-a", core.SectionExperience,
			"Acme - Built a search engine in Go", []float32{1, 0, 0, 0}),
		chunkEntry("a_skills_1", "rec-a", core.SectionSkills,
			"Go, Python, Kubernetes", []float32{0.9, 0.4, 0, 0}),
		chunkEntry("b_summary_0", "rec-b", core.SectionSummary,
			"Pastry chef with ten years of experience", []float32{0, 0, 0, 1}),
	}))

	searcher, err := NewSearcher(store, queryEmbedder([]float32{1, 0, 0, 0}))
	require.NoError(t, err)

	hits, err := searcher.Search(ctx, "search engine experience", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2, "orthogonal chunk must fall below the threshold")

	assert.Equal(t, "a_experience_0", hits[0].VectorID)
	assert.Equal(t, core.ID("rec-a"), hits[0].RecordId)
	assert.Equal(t, core.SectionExperience, hits[0].Section)
	assert.Equal(t, "Acme - Built a search engine in Go", hits[0].Text)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestSearchRespectsMaxHits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []vector.Entry{
		chunkEntry("a_0", "rec-a", core.SectionSummary, "one", []float32{1, 0, 0, 0}),
		chunkEntry("a_1", "rec-a", core.SectionSummary, "two", []float32{0.99, 0.1, 0, 0}),
		chunkEntry("a_2", "rec-a", core.SectionSummary, "three", []float32{0.98, 0.2, 0, 0}),
	}))

	searcher, err := NewSearcher(store, queryEmbedder([]float32{1, 0, 0, 0}))
	require.NoError(t, err)

	hits, err := searcher.Search(ctx, "query", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	_, err = searcher.Search(ctx, "query", 0)
	assert.ErrorIs(t, err, core.ErrInvalidLimit)
}

func TestSearchVerbatimBoost(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Both chunks are equally similar to the query vector; only one
	// contains the literal query words.
	require.NoError(t, store.Upsert(ctx, []vector.Entry{
		chunkEntry("a_0", "rec-a", core.SectionExperience,
			"Led data migration projects", []float32{1, 0, 0, 0}),
		chunkEntry("b_0", "rec-b", core.SectionExperience,
			"Oversaw unrelated initiatives", []float32{1, 0, 0, 0}),
	}))

	searcher, err := NewSearcher(store, queryEmbedder([]float32{1, 0, 0, 0}))
	require.NoError(t, err)

	hits, err := searcher.Search(ctx, "data migration", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a_0", hits[0].VectorID, "verbatim match must rank first on a tie")
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestSearchMinScoreOption(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []vector.Entry{
		chunkEntry("a_0", "rec-a", core.SectionSummary, "somewhat related", []float32{0.7, 0.7, 0, 0}),
	}))

	strict, err := NewSearcher(store, queryEmbedder([]float32{1, 0, 0, 0}), WithMinScore(0.95))
	require.NoError(t, err)
	hits, err := strict.Search(ctx, "query", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	lenient, err := NewSearcher(store, queryEmbedder([]float32{1, 0, 0, 0}), WithMinScore(0.5))
	require.NoError(t, err)
	hits, err = lenient.Search(ctx, "query", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}
