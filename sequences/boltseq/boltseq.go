// Package boltseq stores sequences in bolt buckets and replays them as product inputs.
//
// Every value of a bucket is an element, in key order.
// Keys are assigned from the bucket's sequence, so elements keep the order they were appended in.
package boltseq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adamluzsi/mixedproduct"
	"github.com/adamluzsi/mixedproduct/consterror"
	"github.com/adamluzsi/mixedproduct/iterators"
	"github.com/avast/retry-go/v4"
	"github.com/boltdb/bolt"
)

const ErrClosed consterror.Error = "boltseq: storage is closed"

type Options struct {
	// ReadOnly opens the file with a shared lock,
	// so the same file can be opened multiple times.
	ReadOnly bool
	// Timeout is how long a single attempt waits for the file lock.
	Timeout time.Duration
	// Attempts is the number of tries to get the file lock.
	Attempts uint
}

var DefaultOptions = Options{
	Timeout:  time.Second,
	Attempts: 5,
}

func Open(path string, opts *Options) (*Storage, error) {
	if opts == nil {
		opts = &DefaultOptions
	}

	var db *bolt.DB
	err := retry.Do(
		func() (err error) {
			db, err = bolt.Open(path, 0600, &bolt.Options{
				Timeout:  opts.Timeout,
				ReadOnly: opts.ReadOnly,
			})
			return err
		},
		retry.Attempts(max(opts.Attempts, 1)),
		retry.Delay(opts.Timeout/2),
		retry.RetryIf(isLocked),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("Bolt file is locked, retrying.", "path", path, "attempt", n, "err", err.Error())
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("boltseq: open %s: %w", path, err)
	}
	slog.Debug("Bolt file opened.", "path", path, "readonly", opts.ReadOnly)
	return &Storage{DB: db}, nil
}

func isLocked(err error) bool {
	return errors.Is(err, bolt.ErrTimeout)
}

type Storage struct {
	DB *bolt.DB
}

// Close the bolt database and release the file lock
func (storage *Storage) Close() error {
	return storage.DB.Close()
}

// Append adds values to the end of the bucket, creating the bucket when needed.
func (storage *Storage) Append(bucket string, values ...string) error {
	err := storage.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}

		for _, v := range values {
			id, err := b.NextSequence()
			if err != nil {
				return err
			}
			if err := b.Put(uintToBytes(id), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	return storage.wrap(err)
}

// Sequence returns the values of a bucket as a Sequence.
// A missing bucket is an empty sequence.
func (storage *Storage) Sequence(bucket string) *Sequence {
	return &Sequence{storage: storage, bucket: []byte(bucket)}
}

func (storage *Storage) wrap(err error) error {
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

// Sequence is a bucket of a Storage.
// Closing it closes the Storage, so a product that owns it releases the file.
type Sequence struct {
	storage *Storage
	bucket  []byte
}

var _ mixedproduct.Sequence[string] = &Sequence{}

// Iterate opens a read transaction that lasts until the returned iterator is closed.
func (seq *Sequence) Iterate() iterators.Iterator[string] {
	tx, err := seq.storage.DB.Begin(false)
	if err != nil {
		return iterators.Error[string](seq.storage.wrap(err))
	}
	b := tx.Bucket(seq.bucket)
	if b == nil {
		_ = tx.Rollback()
		return iterators.Empty[string]()
	}
	return &iterator{tx: tx, cursor: b.Cursor()}
}

func (seq *Sequence) Close() error {
	return seq.storage.Close()
}

type iterator struct {
	tx      *bolt.Tx
	cursor  *bolt.Cursor
	started bool
	done    bool
	value   string
}

func (i *iterator) Next() bool {
	if i.tx == nil || i.done {
		return false
	}
	var k, v []byte
	if !i.started {
		i.started = true
		k, v = i.cursor.First()
	} else {
		k, v = i.cursor.Next()
	}
	// nested buckets have no value
	for k != nil && v == nil {
		k, v = i.cursor.Next()
	}
	if k == nil {
		i.done = true
		return false
	}
	// bolt owns v only until the transaction ends
	i.value = string(v)
	return true
}

func (i *iterator) Value() string {
	return i.value
}

func (i *iterator) Err() error {
	return nil
}

func (i *iterator) Close() error {
	if i.tx == nil {
		return nil
	}
	tx := i.tx
	i.tx = nil
	return tx.Rollback()
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
