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
	"fmt"
	"log/slog"

	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/vector"
)

// Reserved metadata keys the writer always sets. User-supplied values
// under these keys are overwritten.
const (
	MetaRecordID = "record_id"
	MetaSection  = "section"
	MetaRawText  = "raw_text"
)

// Writer persists embedded chunks into a vector store. Vector IDs are a
// deterministic function of record, section, and position, so re-writing
// the same record replaces its vectors instead of duplicating them.
type Writer struct {
	store  vector.Store
	logger *slog.Logger
}

// NewWriter creates a Writer over the given vector store.
func NewWriter(store vector.Store) (*Writer, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	return &Writer{
		store:  store,
		logger: slog.Default().With("component", "index-writer"),
	}, nil
}

// WriteChunks upserts the embedded chunks for a record. Position is the
// chunk's index in the emission order, which is stable for a given record.
func (w *Writer) WriteChunks(ctx context.Context, chunks []core.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	entries := make([]vector.Entry, 0, len(chunks))
	for position, chunk := range chunks {
		metadata := sanitizeMetadata(chunk.Metadata)
		metadata[MetaRecordID] = string(chunk.RecordId)
		metadata[MetaSection] = chunk.Section
		metadata[MetaRawText] = chunk.Text

		entries = append(entries, vector.Entry{
			ID:       VectorID(chunk.RecordId, chunk.Section, position),
			Values:   chunk.Embedding,
			Metadata: metadata,
		})
	}

	if err := w.store.Upsert(ctx, entries); err != nil {
		return err
	}

	w.logger.Debug("wrote chunks to vector store",
		"record_id", chunks[0].RecordId, "count", len(entries))
	return nil
}

// VectorID builds the deterministic vector identifier for a chunk.
func VectorID(recordID core.ID, section string, position int) string {
	return fmt.Sprintf("%s_%s_%d", recordID, section, position)
}

// sanitizeMetadata reduces free-form chunk metadata to index-safe values:
// nils are dropped, scalars pass through, string slices stay string
// slices, and anything else is stringified.
func sanitizeMetadata(metadata map[string]any) map[string]any {
	sanitized := make(map[string]any, len(metadata)+3)
	for key, value := range metadata {
		if value == nil {
			continue
		}

		switch v := value.(type) {
		case string, bool, int, float64:
			sanitized[key] = v
		case int32:
			sanitized[key] = int(v)
		case int64:
			sanitized[key] = int(v)
		case float32:
			sanitized[key] = float64(v)
		case []string:
			sanitized[key] = v
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				if item == nil {
					continue
				}
				items = append(items, fmt.Sprintf("%v", item))
			}
			sanitized[key] = items
		default:
			sanitized[key] = fmt.Sprintf("%v", v)
		}
	}
	return sanitized
}
