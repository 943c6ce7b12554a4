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


// Package mock provides test doubles for the ai package interfaces.
//
// The mocks default to deterministic behavior so tests are repeatable
// without external AI services: the embedder derives unit vectors from an
// FNV hash of the input text, and the structurer produces a minimal record
// from the raw text. Behavior can be overridden per test via the public
// function fields.
package mock
