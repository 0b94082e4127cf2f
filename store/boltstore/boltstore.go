// Package boltstore persists sequences in a bolt key/value database.
//
// Each element is stored under a 16 byte key, the big-endian numerator
// followed by the big-endian denominator of its reduced position. Equal
// positions therefore share a key. Bolt iterates keys in byte order, which is
// not the order of positions; Load sorts entries by exact position comparison.
package boltstore

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gravitational/trace"
	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fracseq'
func tracer() tracing.Trace {
	return tracing.Select("fracseq")
}

const (
	defaultBucket  = "positions"
	defaultTimeout = 5 * time.Second
	keyLen         = 16
)

// Config is a bolt store configuration.
type Config struct {
	// Path is a path to the DB file
	Path string
	// Bucket is the name of the bucket holding the elements.
	Bucket string
	// Timeout to wait for the file lock. Defaults to 5 seconds.
	Timeout time.Duration
}

// CheckAndSetDefaults validates this configuration and sets defaults
func (c *Config) CheckAndSetDefaults() error {
	if c.Path == "" {
		return trace.BadParameter("missing Path parameter")
	}
	path, err := filepath.Abs(c.Path)
	if err != nil {
		return trace.Wrap(err, "expected a valid path")
	}
	dir := filepath.Dir(path)
	s, err := os.Stat(dir)
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	if !s.IsDir() {
		return trace.BadParameter("path '%v' should be a valid directory", dir)
	}
	c.Path = path
	if c.Bucket == "" {
		c.Bucket = defaultBucket
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return nil
}

// Store is a bolt backed store for the elements of a sequence.
type Store struct {
	config Config
	db     *bolt.DB
	bucket []byte
}

// Open opens (or creates) the database file at config.Path.
func Open(config Config) (*Store, error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	db, err := bolt.Open(config.Path, 0600, &bolt.Options{Timeout: config.Timeout})
	if err != nil {
		return nil, trace.Wrap(err, "failed to open bolt database at %s", config.Path)
	}
	s := &Store{config: config, db: db, bucket: []byte(config.Bucket)}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, trace.Wrap(err)
	}
	tracer().Debugf("boltstore: opened %s, bucket %s", config.Path, config.Bucket)
	return s, nil
}

// Key returns the 16 byte key for position pos.
func Key(pos fracseq.Position) []byte {
	num, denom := pos.Reduced().Pair()
	key := make([]byte, keyLen)
	binary.BigEndian.PutUint64(key[:8], num)
	binary.BigEndian.PutUint64(key[8:], denom)
	return key
}

// PositionFromKey is the inverse of Key.
func PositionFromKey(key []byte) (fracseq.Position, error) {
	if len(key) != keyLen {
		return fracseq.Position{}, trace.BadParameter("invalid key length %d", len(key))
	}
	return fracseq.NewPosition(
		binary.BigEndian.Uint64(key[:8]),
		binary.BigEndian.Uint64(key[8:]),
	), nil
}

// Put stores payload at position pos, replacing a payload already stored at
// an equal position.
func (s *Store) Put(ctx context.Context, pos fracseq.Position, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(Key(pos), payload)
	}))
}

// Delete removes the entry at position pos. Deleting an unknown position is
// not an error.
func (s *Store) Delete(ctx context.Context, pos fracseq.Position) error {
	if err := ctx.Err(); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete(Key(pos))
	}))
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, trace.Wrap(err)
	}
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return n, trace.Wrap(err)
}

// Close the database and release the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the content of the store with the elements of seq, in a
// single transaction.
func Save[T any](ctx context.Context, s *Store, seq *fracseq.Sequence[T], codec seqio.Codec[T]) error {
	if err := ctx.Err(); err != nil {
		return trace.Wrap(err)
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(s.bucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		bucket, err := tx.CreateBucket(s.bucket)
		if err != nil {
			return err
		}
		for pos, e := range seq.RangeElements() {
			payload, err := codec.Encode(e)
			if err != nil {
				return trace.Wrap(err, "failed to encode element at %v", pos)
			}
			if err := bucket.Put(Key(pos), payload); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return trace.Wrap(err)
	}
	tracer().Debugf("boltstore: saved %d elements", seq.Len())
	return nil
}

// Load reads all entries of the store into a new sequence.
func Load[T any](ctx context.Context, s *Store, codec seqio.Codec[T]) (*fracseq.Sequence[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, trace.Wrap(err)
	}
	var slots []fracseq.Slot[T]
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, v []byte) error {
			pos, err := PositionFromKey(k)
			if err != nil {
				return err
			}
			e, err := codec.Decode(v) // v is only valid during the transaction
			if err != nil {
				return trace.Wrap(err, "failed to decode element at %v", pos)
			}
			slots = append(slots, fracseq.Occupied(pos, e))
			return nil
		})
	})
	if err != nil {
		return nil, trace.Wrap(err)
	}
	slices.SortFunc(slots, func(a, b fracseq.Slot[T]) int {
		return a.Position().Compare(b.Position())
	})
	seq, err := fracseq.FromSlots(slots)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return seq, nil
}
