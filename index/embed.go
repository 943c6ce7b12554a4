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
	"math"

	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/vector"
)

// EmbedChunks embeds every chunk's text in one batch call and attaches the
// resulting vectors in place. Each vector is checked against the expected
// dimension and scaled to unit length before being attached, so downstream
// cosine scores are comparable regardless of the embedding service.
func EmbedChunks(ctx context.Context, embedder ai.Embedder, chunks []core.Chunk, dimension int) error {
	if embedder == nil {
		return ErrEmbedderRequired
	}
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		if chunk.Text == "" {
			return ErrEmptyChunkText
		}
		texts[i] = chunk.Text
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(texts) {
		return CountMismatchError{Texts: len(texts), Vectors: len(vectors)}
	}

	for i, vec := range vectors {
		if len(vec) != dimension {
			return vector.DimensionError{Expected: dimension, Got: len(vec)}
		}
		normalizeUnit(vec)
		chunks[i].Embedding = vec
	}

	return nil
}

// normalizeUnit scales a vector to unit length in place.
func normalizeUnit(v []float32) {
	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	if sumSquares == 0 {
		return
	}
	invMagnitude := float32(1.0 / math.Sqrt(sumSquares))
	for i := range v {
		v[i] *= invMagnitude
	}
}
