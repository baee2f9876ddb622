// Package sqlview exposes the result set of an SQL query as a single pass range.
//
// The rows are scanned lazily, one row per step of the range iterator,
// so a query result can be fed into any adaptor that accepts an input range:
//
//	rows, err := db.QueryContext(ctx, `SELECT name FROM users ORDER BY name`)
//	if err != nil {
//		return err
//	}
//	r := sqlview.New(rows, sqlview.MapperFunc[string](func(s sqlview.Scanner) (string, error) {
//		var name string
//		return name, s.Scan(&name)
//	}))
//	defer r.Close()
//	chunks := views.Chunk[string](r, 100)
package sqlview

import (
	"io"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/rangekit/pkg/rangekit"
)

// Rows is the part of *sql.Rows that the range depends on.
type Rows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}

type Scanner interface {
	Scan(dest ...any) error
}

type Mapper[T any] interface {
	Map(s Scanner) (T, error)
}

type MapperFunc[T any] func(Scanner) (T, error)

func (fn MapperFunc[T]) Map(s Scanner) (T, error) { return fn(s) }

// New makes a single pass range over the rows.
// The range takes ownership of the rows, and closes them on Close.
//
// When the mapping of a row fails, the range ends, and Err reports the mapping error.
func New[T any](rows Rows, mapper Mapper[T]) *Range[T] {
	pi := &pullIter[T]{rows: rows, mapper: mapper}
	return &Range[T]{SeqView: rangekit.FromPullIter[T](pi), pi: pi}
}

// Range is a single pass range of mapped rows.
// Err reports the error of the rows or the error of the row mapping after the range reached its end.
type Range[T any] struct {
	*rangekit.SeqView[T]
	pi *pullIter[T]
}

// Close releases the rows, even when the iteration never started.
func (r *Range[T]) Close() error {
	return errorkit.Merge(r.SeqView.Close(), r.pi.Close())
}

type pullIter[T any] struct {
	rows   Rows
	mapper Mapper[T]

	value  T
	err    error
	closed bool
}

func (i *pullIter[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return i.rows.Close()
}

func (i *pullIter[T]) Next() bool {
	if i.err != nil || i.closed {
		return false
	}
	if !i.rows.Next() {
		return false
	}
	v, err := i.mapper.Map(i.rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.rows.Err()
}

func (i *pullIter[T]) Value() T {
	return i.value
}
