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
	"errors"
	"fmt"
)

var (
	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("vector store is closed")

	// ErrEmptyID indicates an entry with an empty ID.
	ErrEmptyID = errors.New("vector entry ID must not be empty")
)

// DimensionError reports a vector whose width does not match the store.
type DimensionError struct {
	Expected int
	Got      int
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("vector dimension mismatch: expected %d, got %d", e.Expected, e.Got)
}
