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

import (
	"fmt"
	"strings"
)

// idHexLength is the length of a hex-encoded 256-bit digest.
const idHexLength = 64

// ValidateRawText validates raw document text before storage.
//
// Validation rules:
//   - Text must not be empty or whitespace-only
func ValidateRawText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyRawText)
	}
	return nil
}

// ValidateID checks that an ID is a well-formed lowercase hex digest.
func ValidateID(id ID) error {
	if len(id) != idHexLength {
		return fmt.Errorf("%w: length %d", ErrInvalidID, len(id))
	}
	for _, r := range id {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return fmt.Errorf("%w: non-hex character %q", ErrInvalidID, r)
		}
	}
	return nil
}

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - RawText must not be empty or whitespace-only
//   - Id, when set, must be a well-formed content digest
//
// NOT validated:
//   - Structured sections (the structuring service may legitimately return
//     sparse or empty sections; the chunker skips them)
//   - Timestamps (populated by the repository on insert)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if err := ValidateRawText(record.RawText); err != nil {
		return err
	}

	if record.Id != "" {
		if err := ValidateID(record.Id); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	}

	return nil
}
