package badger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
// Records are keyed by their content digest; a creation-time index supports
// latest/list queries.
type RecordRepository struct {
	backend *Backend
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) (storage.RecordRepository, error) {
	return &RecordRepository{
		backend: backend,
	}, nil
}

// Close releases resources. RecordRepository has no resources to release.
func (r *RecordRepository) Close() error {
	return nil
}

// AddRecord persists a record under its content-addressed ID.
// Inserting the same ID twice is a no-op: the stored record wins and
// created is false.
func (r *RecordRepository) AddRecord(ctx context.Context, record *core.Record) (bool, error) {
	if err := core.ValidateRecord(record); err != nil {
		return false, err
	}

	created := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecordKey(record.Id)

		// Dedup check: identical content collapses to the existing record
		_, err := tx.Get(key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		record.CreatedAt = time.Now().UTC()
		record.UpdatedAt = record.CreatedAt

		if err := tx.Set(key, storage.MarshalRecord(record)); err != nil {
			return err
		}

		// Creation-time index for latest/list queries
		createdKey := makeRecordCreatedKey(record.CreatedAt, record.Id)
		if err := tx.Set(createdKey, []byte(record.Id)); err != nil {
			return err
		}

		created = true
		return tx.Commit()
	}, true)

	return created, err
}

// GetRecord retrieves a record by ID.
func (r *RecordRepository) GetRecord(ctx context.Context, id core.ID) (*core.Record, error) {
	var record *core.Record

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = readRecord(tx, makeRecordKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}

	return record, nil
}

// GetLatestRecord retrieves the most recently created record.
func (r *RecordRepository) GetLatestRecord(ctx context.Context) (*core.Record, error) {
	var record *core.Record

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, ok := latestRecordID(tx)
		if !ok {
			return nil
		}
		var err error
		record, err = readRecord(tx, makeRecordKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}

	return record, nil
}

// ListRecentRecords retrieves up to limit record summaries, most recent first.
func (r *RecordRepository) ListRecentRecords(ctx context.Context, limit int) ([]*core.RecordSummary, error) {
	if limit <= 0 {
		return nil, core.ErrInvalidLimit
	}

	summaries := make([]*core.RecordSummary, 0, limit)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordCreatedPrefix + ":")
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse iteration: seek past the prefix range end
		seek := append([]byte(recordCreatedPrefix+":"), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
		for iter.Seek(seek); iter.Valid() && len(summaries) < limit; iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				id = core.ID(val)
				return nil
			})
			if err != nil {
				return err
			}

			record, err := readRecord(tx, makeRecordKey(id))
			if err != nil {
				return err
			}
			if record == nil {
				continue
			}

			summaries = append(summaries, &core.RecordSummary{
				Id:          record.Id,
				DisplayName: displayName(record),
				CreatedAt:   record.CreatedAt,
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// CountRecords returns the number of stored records.
func (r *RecordRepository) CountRecords(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readRecord reads and unmarshals a record, returning nil if absent.
func readRecord(tx *badger.Txn, key []byte) (*core.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// latestRecordID returns the ID at the top of the creation-time index.
func latestRecordID(tx *badger.Txn) (core.ID, bool) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(recordCreatedPrefix + ":")
	opts.Reverse = true
	iter := tx.NewIterator(opts)
	defer iter.Close()

	seek := append([]byte(recordCreatedPrefix+":"), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	iter.Seek(seek)
	if !iter.Valid() {
		return "", false
	}

	var id core.ID
	if err := iter.Item().Value(func(val []byte) error {
		id = core.ID(val)
		return nil
	}); err != nil {
		return "", false
	}
	return id, true
}

// displayName derives a listing label: the uploaded filename when known,
// otherwise the first non-empty line of the raw text.
func displayName(record *core.Record) string {
	if name, ok := record.Metadata["filename"]; ok && name != "" {
		return name
	}
	for _, line := range strings.Split(record.RawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 80 {
			return line[:80]
		}
		return line
	}
	return string(record.Id)
}
