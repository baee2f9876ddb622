// Package rangekit defines what a range is, and how its capabilities can be inspected.
//
// A Range is a Begin iterator and an End sentinel.
// Everything else is optional and expressed through extra interfaces:
//
//	Sized       -> the number of elements is known in constant time
//	Categorized -> the range tells its iterator category without creating an iterator
//	ConstRange  -> the range has a read-only handle over the same elements
//
// A view is a range that doesn't own its elements.
// Views are cheap to copy, and they are lazy,
// every element is computed when the iterator is dereferenced.
package rangekit

import (
	"reflect"

	"go.llib.dev/rangekit/pkg/iterators"
)

type Range[T any] interface {
	Begin() iterators.Iterator[T]
	End() iterators.Sentinel[T]
}

type Sized interface {
	Size() int
}

type Categorized interface {
	Category() iterators.Category
}

// ConstRange is a range which is iterable through a read-only handle.
// Iterating the Const range must not change the state of the original range.
type ConstRange[T any] interface {
	Range[T]
	Const() Range[T]
}

// Simpler is implemented by ranges that know whether they are simple views.
type Simpler interface {
	Simple() bool
}

// CategoryOf returns the iterator category of the range.
func CategoryOf[T any](r Range[T]) iterators.Category {
	if c, ok := r.(Categorized); ok {
		return c.Category()
	}
	return iterators.CategoryOf(r.Begin())
}

// IsCommon reports whether the End of the range is an iterator as well.
// Only a common range can be walked backwards starting from its end.
func IsCommon[T any](r Range[T]) bool {
	_, ok := r.End().(iterators.Iterator[T])
	return ok
}

// IsSized reports whether Size can tell the length of the range in constant time.
func IsSized[T any](r Range[T]) bool {
	if _, ok := r.(Sized); ok {
		return true
	}
	if _, ok := r.End().(iterators.SizedSentinel[T]); !ok {
		return false
	}
	return CategoryOf(r).Satisfies(iterators.Forward)
}

// Size returns the number of elements in a sized range.
// It panics with ErrNotSized when the range is not sized.
func Size[T any](r Range[T]) int {
	if s, ok := r.(Sized); ok {
		return s.Size()
	}
	if ss, ok := r.End().(iterators.SizedSentinel[T]); ok && CategoryOf(r).Satisfies(iterators.Forward) {
		return ss.Distance(r.Begin())
	}
	panic(ErrNotSized.F("%T", r))
}

// Len returns the number of elements.
// Ranges which are not sized are walked through,
// which consumes the elements of a single pass range.
func Len[T any](r Range[T]) int {
	if IsSized(r) {
		return Size(r)
	}
	return iterators.Distance(r.Begin(), r.End())
}

func IsConstIterable[T any](r Range[T]) bool {
	_, ok := r.(ConstRange[T])
	return ok
}

// Const returns the read-only handle of a const iterable range.
func Const[T any](r Range[T]) (Range[T], bool) {
	cr, ok := r.(ConstRange[T])
	if !ok {
		return nil, false
	}
	return cr.Const(), true
}

// IsSimple reports whether the range is a simple view.
//
// A simple view gives the same kind of iterators and sentinels,
// regardless whether it is iterated directly or through its Const handle.
// Ranges that are not const iterable are never simple.
func IsSimple[T any](r Range[T]) bool {
	if s, ok := r.(Simpler); ok {
		return s.Simple()
	}
	c, ok := Const(r)
	if !ok {
		return false
	}
	return reflect.TypeOf(r.Begin()) == reflect.TypeOf(c.Begin()) &&
		reflect.TypeOf(r.End()) == reflect.TypeOf(c.End())
}

// Empty reports whether the range has no elements.
func Empty[T any](r Range[T]) bool {
	if s, ok := r.(Sized); ok {
		return s.Size() == 0
	}
	return r.End().Equal(r.Begin())
}

// CommonEnd returns the end position of the range as an iterator.
//
// For a common range it is the End itself,
// for a sized random access range it is Begin moved by Size.
// Every other range panics with iterators.ErrCategory.
func CommonEnd[T any](r Range[T]) iterators.Iterator[T] {
	if it, ok := r.End().(iterators.Iterator[T]); ok {
		return it
	}
	if CategoryOf(r).Satisfies(iterators.RandomAccess) && IsSized(r) {
		it := r.Begin()
		iterators.Advance(it, Size(r))
		return it
	}
	panic(iterators.ErrCategory.F("the end of %T is not reachable as an iterator", r))
}

// IsCommonArg reports whether CommonEnd can compute the end position of the range.
func IsCommonArg[T any](r Range[T]) bool {
	return IsCommon(r) || (CategoryOf(r).Satisfies(iterators.RandomAccess) && IsSized(r))
}
