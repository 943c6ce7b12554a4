// Package vector provides the similarity index for chunk embeddings.
//
// The single implementation is an in-process HNSW graph with cosine
// distance and a metadata sidecar keyed by entry ID. Upserts of an
// existing ID replace the vector and metadata without growing the live
// entry count, which makes re-indexing a record idempotent. The store can
// be persisted to disk and restored across restarts.
package vector
