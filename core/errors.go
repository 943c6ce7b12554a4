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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmptyRawText indicates the raw text is empty or whitespace-only.
	ErrEmptyRawText = errors.New("raw text cannot be empty")

	// ErrInvalidID indicates an ID is not a well-formed content digest.
	ErrInvalidID = errors.New("invalid record id")

	// ErrInvalidLimit indicates a non-positive listing limit.
	ErrInvalidLimit = errors.New("limit must be positive")
)
