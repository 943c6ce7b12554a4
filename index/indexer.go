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


package index

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/chunk"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/queue"
	"github.com/semcv/semcv/storage"
)

const defaultHandlerTimeout = 60 * time.Second

// Indexer consumes index events and runs the chunk, embed, write pipeline
// for each referenced record. Events are processed strictly one at a time;
// the worker pool exists to give the consumer loop its own goroutine with
// bounded lifecycle management.
type Indexer struct {
	records        storage.RecordRepository
	channel        *queue.Channel
	embedder       ai.Embedder
	writer         *Writer
	dimension      int
	handlerTimeout time.Duration
	pool           *ants.Pool
	logger         *slog.Logger
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer) error

// WithHandlerTimeout bounds how long one event may take to process.
// Default is 60s.
func WithHandlerTimeout(d time.Duration) IndexerOption {
	return func(ix *Indexer) error {
		if d > 0 {
			ix.handlerTimeout = d
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) IndexerOption {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates a new Indexer.
func NewIndexer(
	records storage.RecordRepository,
	channel *queue.Channel,
	embedder ai.Embedder,
	writer *Writer,
	dimension int,
	opts ...IndexerOption,
) (*Indexer, error) {
	if records == nil {
		return nil, ErrRecordRepositoryRequired
	}
	if channel == nil {
		return nil, ErrChannelRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if writer == nil {
		return nil, ErrWriterRequired
	}

	// Single worker: delivery order and prefetch-one semantics come from
	// the channel, the pool just hosts the consumer loop.
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		records:        records,
		channel:        channel,
		embedder:       embedder,
		writer:         writer,
		dimension:      dimension,
		handlerTimeout: defaultHandlerTimeout,
		pool:           pool,
		logger:         slog.Default().With("component", "indexer"),
	}

	for _, opt := range opts {
		if err := opt(ix); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return ix, nil
}

// Start launches the consumer loop. It returns immediately; processing
// continues until ctx is cancelled.
func (ix *Indexer) Start(ctx context.Context) error {
	return ix.pool.Submit(func() {
		err := ix.channel.Consume(ctx, ix.handleEvent)
		if err != nil && ctx.Err() == nil {
			ix.logger.Error("consumer loop stopped", "err", err)
		}
	})
}

// Release releases the worker pool. Cancel the Start context first.
func (ix *Indexer) Release() {
	ix.pool.Release()
}

// handleEvent processes one index event: load the record, chunk it, embed
// the chunks, and upsert the vectors. Any error is returned to the channel
// for its retry policy.
func (ix *Indexer) handleEvent(ctx context.Context, event queue.IndexEvent) error {
	ctx, cancel := context.WithTimeout(ctx, ix.handlerTimeout)
	defer cancel()

	record, err := ix.records.GetRecord(ctx, core.ID(event.RecordID))
	if err != nil {
		return err
	}

	chunks := chunk.Record(record.Structured, record.Id)
	if len(chunks) == 0 {
		ix.logger.Warn("record produced no chunks", "record_id", record.Id)
		return nil
	}

	if err := EmbedChunks(ctx, ix.embedder, chunks, ix.dimension); err != nil {
		return err
	}

	if err := ix.writer.WriteChunks(ctx, chunks); err != nil {
		return err
	}

	ix.logger.Info("indexed record", "record_id", record.Id, "chunks", len(chunks))
	return nil
}
