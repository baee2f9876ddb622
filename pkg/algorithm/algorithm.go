// Package algorithm implements algorithms over iterators and ranges.
//
// Where an algorithm has a faster way to work with a stronger iterator category,
// it picks its strategy by the category of the given iterators.
// Algorithms that modify elements need iterators which implement iterators.Writable.
package algorithm

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// ErrNotWritable is the panic value when an algorithm has to assign an element through an iterator
// that doesn't implement iterators.Writable.
const ErrNotWritable errorkit.Error = "algorithm: iterator is not writable"

// Break can be returned from a ForEach callback to stop the iteration.
const Break = iterators.Break

// ForEach calls fn with every element of the range.
func ForEach[T any](r rangekit.Range[T], fn func(T) error) error {
	return iterators.ForEach(r.Begin(), r.End(), fn)
}

// Copy assigns every element of the range to the output iterator,
// and returns the output iterator after the last assignment.
func Copy[T any](r rangekit.Range[T], out iterators.Output[T]) iterators.Output[T] {
	for it, end := r.Begin(), r.End(); !end.Equal(it); it.Next() {
		out.Set(it.Value())
		out.Next()
	}
	return out
}

// Equal reports whether the two ranges hold the same elements in the same order.
func Equal[T comparable](a, b rangekit.Range[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b rangekit.Range[T], eq func(x, y T) bool) bool {
	if rangekit.IsSized(a) && rangekit.IsSized(b) && rangekit.Size(a) != rangekit.Size(b) {
		return false
	}
	var (
		ai, ae = a.Begin(), a.End()
		bi, be = b.Begin(), b.End()
	)
	for ; !ae.Equal(ai); ai.Next() {
		if be.Equal(bi) || !eq(ai.Value(), bi.Value()) {
			return false
		}
		bi.Next()
	}
	return be.Equal(bi)
}

func writable[T any](it iterators.Iterator[T]) iterators.Writable[T] {
	w, ok := it.(iterators.Writable[T])
	if !ok {
		panic(ErrNotWritable.F("%T", it))
	}
	return w
}

func swap[T any](a, b iterators.Iterator[T]) {
	av, bv := a.Value(), b.Value()
	writable(a).Set(bv)
	writable(b).Set(av)
}

func equal[T any](a, b iterators.Iterator[T]) bool {
	return a.(iterators.ForwardIterator[T]).Equal(b)
}

func assertCategory[T any](it iterators.Iterator[T], min iterators.Category, algorithm string) iterators.Category {
	cat := iterators.CategoryOf(it)
	if !cat.Satisfies(min) {
		panic(iterators.ErrCategory.F("%s requires %s iterators, got %s", algorithm, min, cat))
	}
	return cat
}
