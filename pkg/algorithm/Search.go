package algorithm

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/views"
)

// Search finds the first occurrence of needle in the range.
// When there is no occurrence, the result is the empty subrange at the end of the range.
// An empty needle is found at the beginning.
func Search[T comparable](r, needle rangekit.Range[T]) rangekit.SubrangeView[T] {
	return SearchFunc(r, needle, eqOf[T])
}

func SearchFunc[T any](r, needle rangekit.Range[T], eq func(a, b T) bool) rangekit.SubrangeView[T] {
	assertCategory(r.Begin(), iterators.Forward, "search")
	assertCategory(needle.Begin(), iterators.Forward, "search")
	var (
		last = r.End()
		nend = needle.End()
	)
	for first := r.Begin(); ; first.Next() {
		it, n := iterators.Clone(first), needle.Begin()
		for {
			if nend.Equal(n) {
				return rangekit.Subrange(first, it.(iterators.Sentinel[T]))
			}
			if last.Equal(it) {
				return rangekit.Subrange(it, iterators.Clone(it).(iterators.Sentinel[T]))
			}
			if !eq(it.Value(), n.Value()) {
				break
			}
			it.Next()
			n.Next()
		}
	}
}

// FindEnd finds the last occurrence of needle in the range.
// When there is no occurrence, or the needle is empty,
// the result is the empty subrange at the end of the range.
//
// Bidirectional common ranges are searched backwards from their end,
// other ranges are searched forward through every occurrence.
func FindEnd[T comparable](r, needle rangekit.Range[T]) rangekit.SubrangeView[T] {
	return FindEndFunc(r, needle, eqOf[T])
}

func FindEndFunc[T any](r, needle rangekit.Range[T], eq func(a, b T) bool) rangekit.SubrangeView[T] {
	if rangekit.Empty(needle) {
		end := iterators.NextTo(r.Begin(), r.End())
		return rangekit.Subrange(end, iterators.Clone(end).(iterators.Sentinel[T]))
	}
	if backward(r) && backward(needle) {
		return findEndBackward(r, needle, eq)
	}
	var (
		found rangekit.SubrangeView[T]
		ok    bool
	)
	for first := r.Begin(); ; {
		sub := SearchFunc(rangekit.Subrange(first, r.End()), needle, eq)
		begin := sub.Begin()
		if r.End().Equal(begin) {
			if ok {
				return found
			}
			return sub
		}
		found, ok = sub, true
		first = begin
		first.Next()
	}
}

func backward[T any](r rangekit.Range[T]) bool {
	return rangekit.CategoryOf(r).Satisfies(iterators.Bidirectional) && rangekit.IsCommon(r)
}

// findEndBackward searches the reversed needle in the reversed range,
// so the first match found is the last occurrence.
func findEndBackward[T any](r, needle rangekit.Range[T], eq func(a, b T) bool) rangekit.SubrangeView[T] {
	rr := views.Reverse(r)
	sub := SearchFunc(rr, views.Reverse(needle), eq)
	rbegin := sub.Begin()
	if rr.End().Equal(rbegin) {
		end := rangekit.CommonEnd(r)
		return rangekit.Subrange(end, iterators.Clone(end).(iterators.Sentinel[T]))
	}
	first, _ := iterators.ReverseBase(sub.End().(iterators.Iterator[T]))
	last, _ := iterators.ReverseBase(rbegin)
	return rangekit.Subrange[T](first, last)
}

// UniqueCopy copies the elements of the range to out,
// leaving out every element which equals the element before it.
func UniqueCopy[T comparable](r rangekit.Range[T], out iterators.Output[T]) iterators.Output[T] {
	return UniqueCopyFunc(r, out, eqOf[T])
}

// UniqueCopyFunc is UniqueCopy with a custom equality.
//
// A single pass source keeps a copy of the last copied element to compare with,
// while a forward source compares with the element at the position of the last copied element.
func UniqueCopyFunc[T any](r rangekit.Range[T], out iterators.Output[T], eq func(a, b T) bool) iterators.Output[T] {
	first, last := r.Begin(), r.End()
	if last.Equal(first) {
		return out
	}
	if iterators.CategoryOf(first).Satisfies(iterators.Forward) {
		prev := iterators.Clone(first)
		out.Set(prev.Value())
		out.Next()
		for first.Next(); !last.Equal(first); first.Next() {
			if !eq(prev.Value(), first.Value()) {
				out.Set(first.Value())
				out.Next()
				prev = iterators.Clone(first)
			}
		}
		return out
	}
	v := first.Value()
	out.Set(v)
	out.Next()
	for first.Next(); !last.Equal(first); first.Next() {
		if cur := first.Value(); !eq(v, cur) {
			v = cur
			out.Set(v)
			out.Next()
		}
	}
	return out
}

func eqOf[T comparable](a, b T) bool { return a == b }
