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


// Package storage provides the storage abstraction layer for semcv.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, allowing different backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return interface types to
// enforce abstraction:
//
//	repo, err := badger.NewRecordRepository(backend)  // returns storage.RecordRepository
//
// # Architecture
//
// Two concerns live behind this layer:
//
//   - RecordRepository: content-addressed document storage with
//     deduplication by digest
//   - EventQueue: a durable FIFO queue carrying index-work notifications
//     with at-least-once delivery
//
// The queue holds opaque message bodies; framing (attempt counts, enqueue
// timestamps) is handled here, wire-format interpretation belongs to the
// queue package.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
