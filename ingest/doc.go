// Package ingest provides the synchronous document write path.
//
// Store deduplicates by content hash, persists the record, and publishes a
// lightweight index event before returning. Indexing itself happens
// asynchronously in the index package; a caller sees "stored" within the
// time it takes to write one record, regardless of embedding latency.
package ingest
