// Package boltview stores gob encoded values in bolt buckets,
// and exposes a bucket as a bidirectional, sized range of key/value pairs in key order.
//
// A bucket range is valid only within the read transaction of Store.View.
package boltview

import (
	"bytes"
	"context"
	"encoding/gob"
	"os"
	"time"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

const (
	ErrEmptyKey errorkit.Error = "boltview: empty key"
	ErrDecode   errorkit.Error = "boltview: value decoding failed"
)

var defaultLogger = &logging.Logger{Out: os.Stderr}

func Open[V any](path string) (*Store[V], error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store[V]{DB: db}, nil
}

type Store[V any] struct {
	DB     *bolt.DB
	Logger *logging.Logger
}

// Close the database and release the file lock
func (s *Store[V]) Close() error {
	return s.DB.Close()
}

func (s *Store[V]) Put(ctx context.Context, bucket, key string, v V) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := encode(v)
	if err != nil {
		return err
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

func (s *Store[V]) Delete(ctx context.Context, bucket, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// View calls fn with the range of the bucket within a read transaction.
// A missing bucket is an empty range.
//
// The range and its iterators must not be used after fn returned.
// The error of fn is merged with the value decoding error of the range.
func (s *Store[V]) View(ctx context.Context, bucket string, fn func(r Bucket[V]) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.DB.Begin(false)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil {
			s.logger().Warn(ctx, "boltview: closing read transaction failed",
				logging.ErrField(err),
				logging.Field("bucket", bucket))
		}
	}()
	r := Bucket[V]{b: tx.Bucket([]byte(bucket)), state: &state{}}
	return errorkit.Merge(fn(r), r.Err())
}

func (s *Store[V]) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return defaultLogger
}

type state struct{ err error }

// Bucket is the range of a bucket's entries in key order.
// The first element of a Pair is the key, the second is the decoded value.
type Bucket[V any] struct {
	b     *bolt.Bucket
	state *state
}

type Entry[V any] = rangekit.Pair[string, V]

func (r Bucket[V]) Begin() iterators.Iterator[Entry[V]] {
	c := &cursor[V]{r: r}
	if r.b != nil {
		c.c = r.b.Cursor()
		c.k, c.v = c.c.First()
	}
	return iterators.Promote[Entry[V]](c, iterators.Bidirectional, false)
}

func (r Bucket[V]) End() iterators.Sentinel[Entry[V]] {
	c := &cursor[V]{r: r}
	if r.b != nil {
		c.c = r.b.Cursor()
	}
	return iterators.Promote[Entry[V]](c, iterators.Bidirectional, false).(iterators.Sentinel[Entry[V]])
}

func (r Bucket[V]) Size() int {
	if r.b == nil {
		return 0
	}
	return r.b.Stats().KeyN
}

func (r Bucket[V]) Category() iterators.Category { return iterators.Bidirectional }

func (r Bucket[V]) Const() rangekit.Range[Entry[V]] { return r }

func (r Bucket[V]) Simple() bool { return true }

// Err returns the first value decoding error.
// An element which failed to decode holds the zero value.
func (r Bucket[V]) Err() error { return r.state.err }

type cursor[V any] struct {
	r    Bucket[V]
	c    *bolt.Cursor
	k, v []byte
}

func (c *cursor[V]) Value() Entry[V] {
	if c.k == nil {
		panic(iterators.ErrOutOfRange.F("dereferencing the end of a bucket"))
	}
	var v V
	if err := decode(c.v, &v); err != nil && c.r.state.err == nil {
		c.r.state.err = ErrDecode.F("key %q: %w", c.k, err)
	}
	return rangekit.MakePair(string(c.k), v)
}

func (c *cursor[V]) Next() {
	if c.c == nil {
		return
	}
	c.k, c.v = c.c.Next()
}

func (c *cursor[V]) Prev() {
	if c.c == nil {
		return
	}
	if c.k == nil {
		c.k, c.v = c.c.Last()
		return
	}
	c.k, c.v = c.c.Prev()
}

func (c *cursor[V]) Clone() iterators.Cursor[Entry[V]] {
	n := &cursor[V]{r: c.r}
	if c.c == nil {
		return n
	}
	n.c = c.r.b.Cursor()
	if c.k != nil {
		n.k, n.v = n.c.Seek(c.k)
	}
	return n
}

func (c *cursor[V]) Equal(oth iterators.Cursor[Entry[V]]) bool {
	o, ok := oth.(*cursor[V])
	return ok && bytes.Equal(c.k, o.k) && (c.k == nil) == (o.k == nil)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, ptr any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(ptr)
}
