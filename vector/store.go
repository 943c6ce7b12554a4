package vector

import (
	"context"

	"github.com/semcv/semcv/core"
)

// Entry is one vector to upsert, carrying its metadata sidecar.
type Entry struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// Match is one similarity search hit. Score is a 0-1 cosine similarity
// score where 1 means identical direction.
type Match struct {
	ID       string
	Score    float32
	Metadata map[string]any
}

// Store is a vector index with metadata. Upserting an existing ID replaces
// its vector and metadata. Implementations must be thread-safe.
type Store interface {
	// Upsert inserts or replaces the given entries.
	Upsert(ctx context.Context, entries []Entry) error

	// Query returns up to k nearest entries to the query vector, best first.
	Query(ctx context.Context, query []float32, k int) ([]Match, error)

	// Count returns the number of live entries.
	Count() int

	// CountByRecord returns the number of live entries whose metadata
	// attributes them to the given record.
	CountByRecord(recordID core.ID) int

	// Close releases resources. The store must not be used afterwards.
	Close() error
}
