// Package views implements lazy range adaptors.
//
// An adaptor takes one or more base ranges and presents a new range over them
// without copying any element.
// Each element is computed when the adaptor's iterator is dereferenced,
// and moving the iterator moves the iterators of the bases.
//
// The capabilities of an adaptor follow from the capabilities of its bases.
// A Reverse over a random access range is random access,
// while a Reverse over a linked list is only bidirectional.
// Capabilities that are not supported are absent from the method set of the returned range and iterators,
// so they can be detected with a type assertion, or with the predicates of the rangekit package.
//
// Adaptors hold their bases by value, and the iterators refer back to the adaptor that made them.
// The ranges behind the bases must outlive the adaptor and its iterators.
// None of the adaptors are safe for concurrent use.
package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Base returns the base range of an adaptor.
func Base[B, T any](r rangekit.Range[T]) (rangekit.Range[B], bool) {
	if u, ok := rangekit.Unwrap(r); ok {
		r = u
	}
	b, ok := r.(interface{ Base() rangekit.Range[B] })
	if !ok {
		return nil, false
	}
	return b.Base(), true
}

func assertCategory[T any](r rangekit.Range[T], min iterators.Category, adaptor string) iterators.Category {
	cat := rangekit.CategoryOf(r)
	if !cat.Satisfies(min) {
		panic(iterators.ErrCategory.F("%s requires a %s range, got %s", adaptor, min, cat))
	}
	return cat
}

func assertSize(n int, adaptor string) {
	if n <= 0 {
		panic(iterators.ErrInvalidSize.F("%s requires a positive size, got %d", adaptor, n))
	}
}

// cursorOf returns the adaptor cursor behind an iterator.
func cursorOf[C any, T any](it iterators.Iterator[T]) (C, bool) {
	c, ok := iterators.Unwrap(it)
	if !ok {
		var zero C
		return zero, false
	}
	cc, ok := c.(C)
	return cc, ok
}

func mustCursorOf[C any, T any](it iterators.Iterator[T]) C {
	c, ok := cursorOf[C](it)
	if !ok {
		panic(iterators.ErrCategory.F("%T is not an iterator of this range", it))
	}
	return c
}

func equal[T any](a, b iterators.Iterator[T]) bool {
	return a.(iterators.ForwardIterator[T]).Equal(b)
}

func constOf[T any](r rangekit.Range[T]) func() rangekit.Range[T] {
	if !rangekit.IsConstIterable(r) {
		return nil
	}
	return func() rangekit.Range[T] {
		c, _ := rangekit.Const(r)
		return c
	}
}

func sizeOf[T any](r rangekit.Range[T]) func() int {
	if !rangekit.IsSized(r) {
		return nil
	}
	return func() int { return rangekit.Size(r) }
}
