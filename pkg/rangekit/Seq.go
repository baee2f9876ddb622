package rangekit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/rangekit/pkg/iterators"
)

// Seq turns the range into an iterator sequence,
// so it can be used with a for range loop.
func Seq[T any](r Range[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := r.Begin(), r.End(); !end.Equal(it); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect gathers every element of the range into a slice.
func Collect[T any](r Range[T]) []T {
	return iterkit.Collect(Seq(r))
}

// BackInserter is an output iterator that appends each assigned value to the slice.
func BackInserter[T any](vs *[]T) iterators.Output[T] {
	return backInserter[T]{vs: vs}
}

type backInserter[T any] struct{ vs *[]T }

func (bi backInserter[T]) Set(v T) { *bi.vs = append(*bi.vs, v) }

func (bi backInserter[T]) Next() {}

// Pair is a two element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
