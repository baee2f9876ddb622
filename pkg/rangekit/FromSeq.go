package rangekit

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/rangekit/pkg/iterators"
)

// FromSeq turns an iterator sequence into a single pass input range.
//
// The sequence is pulled lazily, one element at a time, as the iterator moves.
// Begin returns the same iterator on each call, as the sequence can be consumed only once.
// Close releases the sequence when the iteration is abandoned midway.
func FromSeq[T any](seq iter.Seq[T]) *SeqView[T] {
	return &SeqView[T]{src: func() (func() (T, bool, error), func() error) {
		next, stop := iter.Pull(seq)
		return func() (T, bool, error) {
				v, ok := next()
				return v, ok, nil
			}, func() error {
				stop()
				return nil
			}
	}}
}

// FromPullIter turns a frameless PullIter into a single pass input range.
// The iteration error is reported by Err after the range reached its end.
func FromPullIter[T any](pi iterkit.PullIter[T]) *SeqView[T] {
	return &SeqView[T]{src: func() (func() (T, bool, error), func() error) {
		return func() (T, bool, error) {
			if pi.Next() {
				return pi.Value(), true, nil
			}
			var zero T
			return zero, false, pi.Err()
		}, pi.Close
	}}
}

type SeqView[T any] struct {
	src func() (func() (T, bool, error), func() error)

	next   func() (T, bool, error)
	stop   func() error
	primed bool
	cur    T
	ok     bool
	err    error
}

func (v *SeqView[T]) Begin() iterators.Iterator[T] { return seqIter[T]{v: v} }

func (v *SeqView[T]) End() iterators.Sentinel[T] { return seqSentinel[T]{v: v} }

func (v *SeqView[T]) Category() iterators.Category { return iterators.Input }

// Err returns the error which interrupted the source of the range.
func (v *SeqView[T]) Err() error { return v.err }

// Close releases the source and moves the range to its end.
// A closed range is empty, and its source is never started after Close.
func (v *SeqView[T]) Close() error {
	var zero T
	stop := v.stop
	v.stop = nil
	v.next = func() (T, bool, error) { return zero, false, nil }
	v.primed, v.ok, v.cur = true, false, zero
	if stop == nil {
		return nil
	}
	return stop()
}

func (v *SeqView[T]) prime() {
	if v.primed {
		return
	}
	if v.next == nil {
		v.next, v.stop = v.src()
	}
	var err error
	v.cur, v.ok, err = v.next()
	v.err = errorkit.Merge(v.err, err)
	v.primed = true
}

type seqIter[T any] struct{ v *SeqView[T] }

func (it seqIter[T]) Value() T {
	it.v.prime()
	if !it.v.ok {
		panic(iterators.ErrOutOfRange.F("dereferencing the end of a sequence"))
	}
	return it.v.cur
}

func (it seqIter[T]) Next() {
	it.v.prime()
	it.v.primed = false
}

type seqSentinel[T any] struct{ v *SeqView[T] }

func (s seqSentinel[T]) Equal(it iterators.Iterator[T]) bool {
	if _, ok := it.(seqIter[T]); !ok {
		return false
	}
	s.v.prime()
	return !s.v.ok
}
