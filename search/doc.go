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


// Package search answers free-text queries over the chunk index.
//
// A query is embedded with the same service used at index time, matched
// against the vector store, filtered by a similarity threshold, and given
// a small verbatim boost when the chunk text contains every significant
// query word. Hits carry their record ID, section, and original chunk text
// so callers can render results without a second lookup.
package search
