package index

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordRepositoryRequired is returned when a record repository is not provided.
	ErrRecordRepositoryRequired = errors.New("record repository required")

	// ErrChannelRequired is returned when an event channel is not provided.
	ErrChannelRequired = errors.New("event channel required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrWriterRequired is returned when an index writer is not provided.
	ErrWriterRequired = errors.New("index writer required")

	// ErrStoreRequired is returned when a vector store is not provided.
	ErrStoreRequired = errors.New("vector store required")

	// ErrEmptyChunkText is returned when a chunk with empty text reaches
	// the embedding stage.
	ErrEmptyChunkText = errors.New("chunk text must not be empty")
)

// CountMismatchError reports an embedding service that returned a different
// number of vectors than texts submitted.
type CountMismatchError struct {
	Texts   int
	Vectors int
}

func (e CountMismatchError) Error() string {
	return fmt.Sprintf("embedding count mismatch: %d texts, %d vectors", e.Texts, e.Vectors)
}
