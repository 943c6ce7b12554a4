// Package index turns stored CV records into searchable vectors.
//
// The pipeline has three stages: EmbedChunks batches chunk texts through
// the embedding service and attaches unit-length vectors, Writer upserts
// the vectors with sanitized metadata under deterministic IDs, and Indexer
// drives both from the durable event channel. Because vector IDs are
// derived from record, section, and position, indexing the same record
// twice converges to the same index state.
package index
