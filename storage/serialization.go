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


package storage

import (
	"github.com/semcv/semcv/core"
)

// MarshalRecord serializes a Record to bytes.
func MarshalRecord(record *core.Record) []byte {
	buf := make([]byte, core.RecordMUS.Size(*record))
	core.RecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRecord deserializes a Record from bytes.
func UnmarshalRecord(data []byte) (*core.Record, error) {
	record, _, err := core.RecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalQueueMessage serializes a QueueMessage to bytes.
func MarshalQueueMessage(msg *core.QueueMessage) []byte {
	buf := make([]byte, core.QueueMessageMUS.Size(*msg))
	core.QueueMessageMUS.Marshal(*msg, buf)
	return buf
}

// UnmarshalQueueMessage deserializes a QueueMessage from bytes.
func UnmarshalQueueMessage(data []byte) (*core.QueueMessage, error) {
	msg, _, err := core.QueueMessageMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
