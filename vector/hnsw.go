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


package vector

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/coder/hnsw"

	"github.com/semcv/semcv/core"
)

func init() {
	// Metadata values cross the gob boundary as interfaces; the sanitizer
	// only ever produces these concrete types.
	gob.Register("")
	gob.Register(0)
	gob.Register(float64(0))
	gob.Register(false)
	gob.Register([]string(nil))
}

// HNSWStore implements Store on a pure Go HNSW graph with cosine distance.
// Vectors are normalized on insert and on query.
type HNSWStore struct {
	mu        sync.RWMutex
	graph     *hnsw.Graph[uint64]
	dimension int

	// ID mapping (string <-> uint64)
	idMap   map[string]uint64 // external ID -> internal key
	keyMap  map[uint64]string // internal key -> external ID
	nextKey uint64

	metadata map[string]map[string]any // external ID -> metadata sidecar

	closed bool
}

var _ Store = (*HNSWStore)(nil)

// hnswMetadata is the persisted sidecar: ID mappings plus per-entry metadata.
type hnswMetadata struct {
	IDMap     map[string]uint64
	NextKey   uint64
	Dimension int
	Metadata  map[string]map[string]any
}

// NewHNSWStore creates an empty in-memory store for vectors of the given width.
func NewHNSWStore(dimension int) (*HNSWStore, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dimension)
	}

	graph := hnsw.NewGraph[uint64]()
	graph.Distance = hnsw.CosineDistance
	graph.M = 16
	graph.EfSearch = 20
	graph.Ml = 0.25

	return &HNSWStore{
		graph:     graph,
		dimension: dimension,
		idMap:     make(map[string]uint64),
		keyMap:    make(map[uint64]string),
		metadata:  make(map[string]map[string]any),
	}, nil
}

// Upsert inserts or replaces entries. Replacement uses lazy deletion: the
// old graph node is orphaned rather than removed, which sidesteps graph
// corruption when deleting the last node.
func (s *HNSWStore) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	for _, entry := range entries {
		if entry.ID == "" {
			return ErrEmptyID
		}
		if len(entry.Values) != s.dimension {
			return DimensionError{Expected: s.dimension, Got: len(entry.Values)}
		}
	}

	for _, entry := range entries {
		if existingKey, exists := s.idMap[entry.ID]; exists {
			delete(s.keyMap, existingKey) // orphan the old node
			delete(s.idMap, entry.ID)
		}

		key := s.nextKey
		s.nextKey++

		vec := make([]float32, len(entry.Values))
		copy(vec, entry.Values)
		normalizeInPlace(vec)

		s.graph.Add(hnsw.MakeNode(key, vec))
		s.idMap[entry.ID] = key
		s.keyMap[key] = entry.ID
		s.metadata[entry.ID] = entry.Metadata
	}

	return nil
}

// Query returns up to k nearest entries, best first. Orphaned nodes from
// lazy deletion are filtered out of the results.
func (s *HNSWStore) Query(ctx context.Context, query []float32, k int) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if len(query) != s.dimension {
		return nil, DimensionError{Expected: s.dimension, Got: len(query)}
	}
	if k < 1 {
		return nil, core.ErrInvalidLimit
	}
	if s.graph.Len() == 0 {
		return []Match{}, nil
	}

	normalized := make([]float32, len(query))
	copy(normalized, query)
	normalizeInPlace(normalized)

	nodes := s.graph.Search(normalized, k)

	matches := make([]Match, 0, len(nodes))
	for _, node := range nodes {
		id, exists := s.keyMap[node.Key]
		if !exists {
			continue
		}

		distance := s.graph.Distance(normalized, node.Value)
		matches = append(matches, Match{
			ID:       id,
			Score:    distanceToScore(distance),
			Metadata: s.metadata[id],
		})
	}

	return matches, nil
}

// Count returns the number of live entries.
func (s *HNSWStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0
	}
	return len(s.idMap)
}

// CountByRecord returns how many live entries carry the given record ID in
// their metadata.
func (s *HNSWStore) CountByRecord(recordID core.ID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0
	}

	count := 0
	for id := range s.idMap {
		if meta := s.metadata[id]; meta != nil && meta["record_id"] == string(recordID) {
			count++
		}
	}
	return count
}

// Save persists the graph and sidecar to disk using temp file + rename.
func (s *HNSWStore) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrStoreClosed
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpIndexPath := path + ".tmp"
	file, err := os.Create(tmpIndexPath)
	if err != nil {
		return fmt.Errorf("failed to create index file: %w", err)
	}

	if err := s.graph.Export(file); err != nil {
		file.Close()
		os.Remove(tmpIndexPath)
		return fmt.Errorf("failed to export graph: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpIndexPath)
		return fmt.Errorf("failed to close index file: %w", err)
	}
	if err := os.Rename(tmpIndexPath, path); err != nil {
		os.Remove(tmpIndexPath)
		return fmt.Errorf("failed to rename index file: %w", err)
	}

	if err := s.saveSidecar(path + ".meta"); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	return nil
}

func (s *HNSWStore) saveSidecar(path string) error {
	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp metadata file: %w", err)
	}

	meta := hnswMetadata{
		IDMap:     s.idMap,
		NextKey:   s.nextKey,
		Dimension: s.dimension,
		Metadata:  s.metadata,
	}

	if err := gob.NewEncoder(file).Encode(meta); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close metadata file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

// Load restores a previously saved store. The on-disk dimension must match
// the store's configured dimension.
func (s *HNSWStore) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if err := s.loadSidecar(path + ".meta"); err != nil {
		return fmt.Errorf("failed to load metadata: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open index file: %w", err)
	}
	defer file.Close()

	// coder/hnsw Import requires an io.ByteReader
	if err := s.graph.Import(bufio.NewReader(file)); err != nil {
		return fmt.Errorf("failed to import graph: %w", err)
	}

	return nil
}

func (s *HNSWStore) loadSidecar(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open metadata file: %w", err)
	}
	defer file.Close()

	var meta hnswMetadata
	if err := gob.NewDecoder(file).Decode(&meta); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}
	if meta.Dimension != s.dimension {
		return DimensionError{Expected: s.dimension, Got: meta.Dimension}
	}

	s.idMap = meta.IDMap
	s.nextKey = meta.NextKey
	s.metadata = meta.Metadata
	s.keyMap = make(map[uint64]string, len(meta.IDMap))
	for id, key := range meta.IDMap {
		s.keyMap[key] = id
	}

	return nil
}

// Close releases resources.
func (s *HNSWStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.graph = nil

	return nil
}

// normalizeInPlace scales a vector to unit length.
func normalizeInPlace(v []float32) {
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

// distanceToScore converts cosine distance (0 identical, 2 opposite) to a
// 0-1 similarity score.
func distanceToScore(distance float32) float32 {
	return 1.0 - distance/2.0
}
