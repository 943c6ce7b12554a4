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


package queue

import "errors"

var (
	// ErrQueueRequired indicates a nil backing queue was supplied.
	ErrQueueRequired = errors.New("event queue is required")

	// ErrHandlerRequired indicates a nil handler was supplied to Consume.
	ErrHandlerRequired = errors.New("handler is required")

	// ErrMalformedEvent indicates an event payload that cannot be
	// interpreted as an index event.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrInvalidMaxAttempts indicates an attempt bound below 1.
	ErrInvalidMaxAttempts = errors.New("max attempts must be at least 1")

	// ErrInvalidPollInterval indicates a non-positive poll interval.
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
)
