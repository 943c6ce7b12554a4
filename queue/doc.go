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


// Package queue decouples document ingestion from semantic indexing with a
// durable, at-least-once event channel.
//
// The write path publishes lightweight index events (a record ID and
// nothing else) and returns immediately. A consumer delivers events one at
// a time to a handler and acknowledges each event only after the handler
// succeeds, so a crash mid-processing redelivers the event on restart.
// Handler failures requeue the event up to a bounded number of attempts;
// events that keep failing, and payloads that cannot be parsed at all, are
// moved to a dead-letter space for inspection instead of being retried
// forever.
package queue
