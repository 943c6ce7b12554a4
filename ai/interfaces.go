package ai

import (
	"context"

	"github.com/semcv/semcv/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Structurer converts raw CV text into a structured record.
// Implementations must be thread-safe for concurrent use.
type Structurer interface {
	// Structure parses raw CV text into its normalized section layout.
	// Sections absent from the text are left at their zero value.
	// Returns an error if parsing fails.
	Structure(ctx context.Context, rawText string) (core.StructuredRecord, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Structurer instances, ensuring they share configuration and resources.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Structurer returns the CV structuring service.
	// The returned Structurer is safe for concurrent use.
	Structurer() Structurer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
