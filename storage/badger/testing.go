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


package badger

import "github.com/semcv/semcv/storage"

// NewMemoryRepositories creates an in-memory record repository and event
// queue for testing. Returns recordRepo, eventQueue, backend, and error.
// Caller must close the repo, queue, and backend when done.
func NewMemoryRepositories() (storage.RecordRepository, storage.EventQueue, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	recordRepo, err := NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	queue, err := NewEventQueue(backend)
	if err != nil {
		recordRepo.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return recordRepo, queue, backend, nil
}
