package ingest

import "errors"

var (
	// ErrRecordRepositoryRequired is returned when a record repository is not provided.
	ErrRecordRepositoryRequired = errors.New("record repository required")

	// ErrPublisherRequired is returned when an event publisher is not provided.
	ErrPublisherRequired = errors.New("event publisher required")

	// ErrStructurerRequired is returned when ingesting raw text without a
	// configured structurer.
	ErrStructurerRequired = errors.New("structurer required for raw text ingestion")
)
