package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Reverse presents the elements of a bidirectional range in reverse order.
//
// For a common range, the reversed range starts from the base's End,
// for other ranges the end position is found by walking the base.
// Reversing a reversed range gives back the original range.
func Reverse[T any](r rangekit.Range[T]) rangekit.Range[T] {
	if u, ok := rangekit.Unwrap(r); ok {
		if rv, ok := u.(reverseView[T]); ok {
			return rv.base
		}
	}
	cat := assertCategory(r, iterators.Bidirectional, "reverse")
	v := reverseView[T]{base: r, cat: iterators.Min(cat, iterators.RandomAccess)}
	caps := rangekit.Caps[T]{
		Category: v.cat,
		Size:     sizeOf(r),
	}
	if c, ok := rangekit.Const(r); ok && rangekit.IsCommon(c) {
		caps.Const = func() rangekit.Range[T] {
			c, _ := rangekit.Const(r)
			return Reverse(c)
		}
		caps.Simple = rangekit.IsSimple(r)
	}
	return rangekit.Adapt[T](v, caps)
}

type reverseView[T any] struct {
	base rangekit.Range[T]
	cat  iterators.Category
}

func (v reverseView[T]) Base() rangekit.Range[T] { return v.base }

func (v reverseView[T]) Begin() iterators.Iterator[T] {
	var last iterators.Iterator[T]
	if end, ok := v.base.End().(iterators.Iterator[T]); ok {
		last = end
	} else {
		last = iterators.NextTo(v.base.Begin(), v.base.End())
	}
	return iterators.Reverse[T](last.(iterators.BidirectionalIterator[T]))
}

func (v reverseView[T]) End() iterators.Sentinel[T] {
	return iterators.Reverse[T](v.base.Begin().(iterators.BidirectionalIterator[T])).(iterators.Sentinel[T])
}
