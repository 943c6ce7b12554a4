// Copyright 2025 Semcv Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingest

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/queue"
	"github.com/semcv/semcv/storage"
)

// Status describes the outcome of a store operation.
type Status string

const (
	// StatusStored means the record was new, persisted, and queued for indexing.
	StatusStored Status = "stored"

	// StatusAlreadyExists means identical content was stored before; nothing
	// was written or queued.
	StatusAlreadyExists Status = "already_exists"

	// StatusStoredNotQueued means the record was persisted but the index
	// event could not be published. The record is durable; re-publishing
	// the event later converges the index.
	StatusStoredNotQueued Status = "stored_not_queued"
)

// StoreResult is the outcome of storing a document.
type StoreResult struct {
	Id     core.ID
	Status Status
}

// Pipeline is the synchronous write path: it deduplicates documents by
// content, persists them, and hands off indexing to the event channel.
// Publishing is fire-and-forget; a publish failure never loses the record.
type Pipeline struct {
	records    storage.RecordRepository
	publisher  queue.Publisher
	structurer ai.Structurer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithStructurer enables raw text ingestion by supplying a CV structuring
// service. Without it, only pre-structured documents can be ingested.
func WithStructurer(structurer ai.Structurer) Option {
	return func(p *Pipeline) error {
		p.structurer = structurer
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(records storage.RecordRepository, publisher queue.Publisher, opts ...Option) (*Pipeline, error) {
	if records == nil {
		return nil, ErrRecordRepositoryRequired
	}
	if publisher == nil {
		return nil, ErrPublisherRequired
	}

	p := &Pipeline{
		records:   records,
		publisher: publisher,
		logger:    slog.Default().With("component", "ingest-pipeline"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Store persists a document with pre-structured content. The record ID is
// derived from the raw text, so storing identical text twice is a no-op
// that reports the existing record.
func (p *Pipeline) Store(ctx context.Context, rawText string, structured core.StructuredRecord, metadata map[string]string) (*StoreResult, error) {
	record := &core.Record{
		Id:         core.IDFromContent(rawText),
		RawText:    rawText,
		Structured: structured,
		Metadata:   metadata,
	}

	created, err := p.records.AddRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	if !created {
		p.logger.Debug("duplicate content, skipping", "record_id", record.Id)
		return &StoreResult{Id: record.Id, Status: StatusAlreadyExists}, nil
	}

	// The record is durable at this point. A publish failure is reported
	// through the status, not as an error.
	if err := p.publisher.Publish(ctx, queue.IndexEvent{RecordID: string(record.Id)}); err != nil {
		p.logger.Error("failed to publish index event", "record_id", record.Id, "err", err)
		return &StoreResult{Id: record.Id, Status: StatusStoredNotQueued}, nil
	}

	p.logger.Info("stored record", "record_id", record.Id)
	return &StoreResult{Id: record.Id, Status: StatusStored}, nil
}

// IngestText structures raw CV text with the configured structurer and
// stores the result. The generated metadata records basic provenance.
func (p *Pipeline) IngestText(ctx context.Context, rawText string, metadata map[string]string) (*StoreResult, error) {
	if p.structurer == nil {
		return nil, ErrStructurerRequired
	}
	if err := core.ValidateRawText(rawText); err != nil {
		return nil, err
	}

	// Dedup before spending a structuring call on known content.
	id := core.IDFromContent(rawText)
	if _, err := p.records.GetRecord(ctx, id); err == nil {
		p.logger.Debug("duplicate content, skipping structuring", "record_id", id)
		return &StoreResult{Id: id, Status: StatusAlreadyExists}, nil
	}

	structured, err := p.structurer.Structure(ctx, rawText)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(metadata)+2)
	for key, value := range metadata {
		merged[key] = value
	}
	merged["char_count"] = strconv.Itoa(len(rawText))
	merged["word_count"] = strconv.Itoa(len(strings.Fields(rawText)))

	return p.Store(ctx, rawText, structured, merged)
}
