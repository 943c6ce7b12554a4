package index

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semcv/semcv/ai/mock"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/vector"
)

const testDim = 8

// fixedEmbedder returns the same vector for every text.
func fixedEmbedder(vec []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			v := make([]float32, len(vec))
			copy(v, vec)
			out[i] = v
		}
		return out, nil
	}
	return embedder
}

func testChunks(texts ...string) []core.Chunk {
	chunks := make([]core.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = core.Chunk{
			RecordId: core.ID("rec-a"),
			Section:  core.SectionSummary,
			Text:     text,
		}
	}
	return chunks
}

func TestEmbedChunksAttachesUnitVectors(t *testing.T) {
	embedder := fixedEmbedder([]float32{3, 4, 0, 0, 0, 0, 0, 0})
	chunks := testChunks("first", "second")

	require.NoError(t, EmbedChunks(context.Background(), embedder, chunks, testDim))

	for _, chunk := range chunks {
		require.Len(t, chunk.Embedding, testDim)

		var sumSquares float64
		for _, v := range chunk.Embedding {
			sumSquares += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 0.001, "embedding must be unit length")
	}
	assert.Equal(t, 1, embedder.CallCount(), "all chunks must go through one batch call")
}

func TestEmbedChunksRejectsEmptyText(t *testing.T) {
	embedder := fixedEmbedder(make([]float32, testDim))
	chunks := testChunks("ok", "")

	err := EmbedChunks(context.Background(), embedder, chunks, testDim)
	assert.ErrorIs(t, err, ErrEmptyChunkText)
	assert.Equal(t, 0, embedder.CallCount(), "validation must run before the service call")
}

func TestEmbedChunksCountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{make([]float32, testDim)}, nil
	}

	err := EmbedChunks(context.Background(), embedder, testChunks("a", "b"), testDim)
	var mismatch CountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Texts)
	assert.Equal(t, 1, mismatch.Vectors)
}

func TestEmbedChunksDimensionMismatch(t *testing.T) {
	embedder := fixedEmbedder([]float32{1, 0})

	err := EmbedChunks(context.Background(), embedder, testChunks("a"), testDim)
	var dimErr vector.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, testDim, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
}

func TestEmbedChunksPropagatesServiceError(t *testing.T) {
	serviceErr := errors.New("embedding service down")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, serviceErr
	}

	err := EmbedChunks(context.Background(), embedder, testChunks("a"), testDim)
	assert.ErrorIs(t, err, serviceErr)
}

func TestEmbedChunksEmptyInput(t *testing.T) {
	embedder := fixedEmbedder(make([]float32, testDim))
	require.NoError(t, EmbedChunks(context.Background(), embedder, nil, testDim))
	assert.Equal(t, 0, embedder.CallCount())
}
