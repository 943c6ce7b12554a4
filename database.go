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


package semcv

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/ai/openai"
	"github.com/semcv/semcv/index"
	"github.com/semcv/semcv/ingest"
	"github.com/semcv/semcv/queue"
	"github.com/semcv/semcv/search"
	"github.com/semcv/semcv/storage"
	"github.com/semcv/semcv/storage/badger"
	"github.com/semcv/semcv/vector"
)

const vectorIndexFile = "vectors.hnsw"

// Database bundles the storage backend, event channel, vector index, and
// AI provider behind one lifecycle. It is the entry point for embedding
// Semcv into an application.
type Database struct {
	filePath    string
	backend     *badger.Backend
	recordRepo  storage.RecordRepository
	eventQueue  storage.EventQueue
	channel     *queue.Channel
	vectorStore *vector.HNSWStore
	provider    ai.AIProvider
	aiConfig    *ai.Config
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the AI service configuration used to build the default
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Useful for tests and custom backends.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// NewDatabase opens (or creates) a database rooted at filePath. The vector
// index is restored from disk when a previous run saved one.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.aiConfig.Validate(); err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	eventQueue, err := badger.NewEventQueue(backend)
	if err != nil {
		recordRepo.Close()
		backend.Close()
		return nil, err
	}

	channel, err := queue.NewChannel(eventQueue)
	if err != nil {
		eventQueue.Close()
		recordRepo.Close()
		backend.Close()
		return nil, err
	}

	vectorStore, err := vector.NewHNSWStore(options.aiConfig.Dimension)
	if err != nil {
		eventQueue.Close()
		recordRepo.Close()
		backend.Close()
		return nil, err
	}

	indexPath := filepath.Join(filePath, vectorIndexFile)
	if _, statErr := os.Stat(indexPath); statErr == nil {
		if err := vectorStore.Load(indexPath); err != nil {
			vectorStore.Close()
			eventQueue.Close()
			recordRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			vectorStore.Close()
			eventQueue.Close()
			recordRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		filePath:    filePath,
		backend:     backend,
		recordRepo:  recordRepo,
		eventQueue:  eventQueue,
		channel:     channel,
		vectorStore: vectorStore,
		provider:    provider,
		aiConfig:    options.aiConfig,
		logger:      slog.Default(),
	}, nil
}

// Close saves the vector index and releases all resources.
func (db *Database) Close() error {
	if err := db.vectorStore.Save(filepath.Join(db.filePath, vectorIndexFile)); err != nil {
		db.logger.Error("error saving vector index", "err", err)
	}
	if err := db.vectorStore.Close(); err != nil {
		db.logger.Error("error closing vector store", "err", err)
	}
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.eventQueue.Close(); err != nil {
		db.logger.Error("error closing event queue", "err", err)
		return err
	}
	if err := db.recordRepo.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) RecordRepository() storage.RecordRepository {
	return db.recordRepo
}

func (db *Database) EventQueue() storage.EventQueue {
	return db.eventQueue
}

func (db *Database) Channel() *queue.Channel {
	return db.channel
}

func (db *Database) VectorStore() vector.Store {
	return db.vectorStore
}

// NewIngestPipeline builds the synchronous write path, wired to this
// database's repository, channel, and structurer.
func (db *Database) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	opts = append([]ingest.Option{ingest.WithStructurer(db.provider.Structurer())}, opts...)
	return ingest.NewPipeline(db.recordRepo, db.channel, opts...)
}

// NewIndexer builds the background indexing worker, wired to this
// database's repository, channel, embedder, and vector store.
func (db *Database) NewIndexer(opts ...index.IndexerOption) (*index.Indexer, error) {
	writer, err := index.NewWriter(db.vectorStore)
	if err != nil {
		return nil, err
	}
	return index.NewIndexer(db.recordRepo, db.channel, db.provider.Embedder(),
		writer, db.aiConfig.Dimension, opts...)
}

// NewSearcher builds a query-side searcher over this database's index.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.vectorStore, db.provider.Embedder(), opts...)
}
