package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/semcv/semcv/core"
)

// Key prefixes for different data types
const (
	recordPrefix        = "cvrec"
	recordCreatedPrefix = "cvrecc"
	queueMsgPrefix      = "evq"
	queueDeadPrefix     = "evdlq"
	queueSeqName        = "evqseq"
)

// makeRecordKey generates a key for a record by its content ID.
func makeRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", recordPrefix, id))
}

// makeRecordCreatedKey generates a composite key for the creation-time index.
// Format: prefix:timestamp:id
func makeRecordCreatedKey(createdAt time.Time, id core.ID) []byte {
	prefix := recordCreatedPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + len(id) // 8 bytes for timestamp + id bytes
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], []byte(id))
	return buf
}

// makeQueueMsgKey generates a key for a pending queue message.
// Format: prefix:seq, BigEndian so iteration order equals enqueue order.
func makeQueueMsgKey(seq uint64) []byte {
	prefix := queueMsgPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeQueueDeadKey generates a key for a dead-lettered queue message.
func makeQueueDeadKey(seq uint64) []byte {
	prefix := queueDeadPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}
