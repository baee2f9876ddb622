package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Elements presents the i-th field of each tuple of the base range.
// Tuples are slices, like the elements of a CartesianProduct.
//
// Elements panics with iterators.ErrOutOfRange when i is negative,
// or when a dereferenced tuple is too short.
func Elements[T any](r rangekit.Range[[]T], i int) rangekit.Range[T] {
	if i < 0 {
		panic(iterators.ErrOutOfRange.F("element index must not be negative, got %d", i))
	}
	return Transform(r, func(tuple []T) T {
		if len(tuple) <= i {
			panic(iterators.ErrOutOfRange.F("element index %d of a %d element tuple", i, len(tuple)))
		}
		return tuple[i]
	})
}

// Keys presents the first field of each pair.
func Keys[K, V any](r rangekit.Range[rangekit.Pair[K, V]]) rangekit.Range[K] {
	return Transform(r, func(p rangekit.Pair[K, V]) K { return p.First })
}

// Values presents the second field of each pair.
func Values[K, V any](r rangekit.Range[rangekit.Pair[K, V]]) rangekit.Range[V] {
	return Transform(r, func(p rangekit.Pair[K, V]) V { return p.Second })
}
