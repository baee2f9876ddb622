package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Slide presents every window of n consecutive elements of the base range.
// The i-th window starts at the i-th element, so neighbouring windows overlap in n-1 elements.
//
//	Slide(rangekit.Slice([]int{1, 2, 3, 4}), 2) // [1 2] [2 3] [3 4]
//
// A base shorter than n has no windows.
// The base has to be a forward range and n has to be positive, otherwise Slide panics.
func Slide[T any](r rangekit.Range[T], n int) rangekit.Range[rangekit.Range[T]] {
	cat := assertCategory(r, iterators.Forward, "slide")
	assertSize(n, "slide")
	v := &slideView[T]{base: r, n: n, cat: iterators.Min(cat, iterators.RandomAccess)}
	switch {
	case cat.Satisfies(iterators.RandomAccess) && rangekit.IsSized(r):
		v.strategy = slideCachesNothing
	case cat.Satisfies(iterators.Bidirectional) && rangekit.IsCommon(r):
		v.strategy = slideCachesLast
	default:
		v.strategy = slideCachesFirst
	}

	caps := rangekit.Caps[rangekit.Range[T]]{Category: v.cat}
	if rangekit.IsSized(r) {
		caps.Size = v.size
	}
	// only the window positions of a sized random access base are computed without caching
	if v.strategy == slideCachesNothing && rangekit.IsConstIterable(r) {
		caps.Const = func() rangekit.Range[rangekit.Range[T]] {
			c, _ := rangekit.Const(r)
			return Slide(c, n)
		}
		caps.Simple = rangekit.IsSimple(r)
	}
	return rangekit.Adapt[rangekit.Range[T]](v, caps)
}

type slideStrategy int

const (
	// slideCachesNothing computes both ends from the size of the base.
	slideCachesNothing slideStrategy = iota
	// slideCachesLast caches the start of the last window, found by stepping back from the end.
	slideCachesLast
	// slideCachesFirst caches the last element of the first window,
	// and its iterators track the last element of their window.
	slideCachesFirst
)

type slideView[T any] struct {
	base     rangekit.Range[T]
	n        int
	cat      iterators.Category
	strategy slideStrategy
	// begin and end are cached positions, used according to the strategy
	begin, end *slideCursor[T]
}

func (v *slideView[T]) Base() rangekit.Range[T] { return v.base }

func (v *slideView[T]) size() int { return max(0, rangekit.Size(v.base)-v.n+1) }

func (v *slideView[T]) promote(c *slideCursor[T]) iterators.Iterator[rangekit.Range[T]] {
	return iterators.Promote[rangekit.Range[T]](c, v.cat, false)
}

func (v *slideView[T]) Begin() iterators.Iterator[rangekit.Range[T]] {
	if v.strategy != slideCachesFirst {
		return v.promote(&slideCursor[T]{cur: v.base.Begin(), n: v.n})
	}
	if v.begin == nil {
		begin := v.base.Begin()
		v.begin = &slideCursor[T]{cur: begin, last: iterators.NextBounded(begin, v.n-1, v.base.End()), n: v.n}
	}
	return v.promote(v.begin.clone())
}

func (v *slideView[T]) End() iterators.Sentinel[rangekit.Range[T]] {
	var end *slideCursor[T]
	switch v.strategy {
	case slideCachesNothing:
		begin := v.base.Begin()
		iterators.Advance(begin, v.size())
		end = &slideCursor[T]{cur: begin, n: v.n}
	case slideCachesLast:
		if v.end == nil {
			last := rangekit.CommonEnd(v.base)
			v.end = &slideCursor[T]{cur: iterators.PrevBounded(last, v.n-1, v.base.Begin()), n: v.n}
		}
		end = v.end.clone()
	default:
		it, ok := v.base.End().(iterators.Iterator[T])
		if !ok {
			s := slideSentinel[T]{end: v.base.End()}
			if ss, ok := s.end.(iterators.SizedSentinel[T]); ok {
				return slideSizedSentinel[T]{s, ss}
			}
			return s
		}
		end = &slideCursor[T]{cur: it, last: iterators.Clone(it), n: v.n}
	}
	return v.promote(end).(iterators.Sentinel[rangekit.Range[T]])
}

type slideCursor[T any] struct {
	cur iterators.Iterator[T]
	// last is the last element of the window, it is only tracked by the caches-first strategy
	last iterators.Iterator[T]
	n    int
}

func (c *slideCursor[T]) clone() *slideCursor[T] {
	cp := &slideCursor[T]{cur: iterators.Clone(c.cur), n: c.n}
	if c.last != nil {
		cp.last = iterators.Clone(c.last)
	}
	return cp
}

func (c *slideCursor[T]) Value() rangekit.Range[T] {
	return rangekit.Counted(iterators.Clone(c.cur), c.n)
}

func (c *slideCursor[T]) Next() {
	c.cur.Next()
	if c.last != nil {
		c.last.Next()
	}
}

func (c *slideCursor[T]) Prev() {
	iterators.Advance(c.cur, -1)
	if c.last != nil {
		iterators.Advance(c.last, -1)
	}
}

func (c *slideCursor[T]) Advance(n int) {
	iterators.Advance(c.cur, n)
	if c.last != nil {
		iterators.Advance(c.last, n)
	}
}

func (c *slideCursor[T]) Distance(from iterators.Cursor[rangekit.Range[T]]) int {
	o := from.(*slideCursor[T])
	if c.last != nil {
		return c.last.(iterators.RandomAccessIterator[T]).Distance(o.last)
	}
	return c.cur.(iterators.RandomAccessIterator[T]).Distance(o.cur)
}

func (c *slideCursor[T]) Clone() iterators.Cursor[rangekit.Range[T]] { return c.clone() }

func (c *slideCursor[T]) Equal(oth iterators.Cursor[rangekit.Range[T]]) bool {
	o, ok := oth.(*slideCursor[T])
	if !ok {
		return false
	}
	if c.last != nil && o.last != nil {
		return equal(c.last, o.last)
	}
	return equal(c.cur, o.cur)
}

// slideSentinel is reached when the last element of the window reaches the end of the base.
type slideSentinel[T any] struct {
	end iterators.Sentinel[T]
}

func (s slideSentinel[T]) Equal(it iterators.Iterator[rangekit.Range[T]]) bool {
	c, ok := cursorOf[*slideCursor[T]](it)
	return ok && s.end.Equal(c.last)
}

type slideSizedSentinel[T any] struct {
	slideSentinel[T]
	ss iterators.SizedSentinel[T]
}

func (s slideSizedSentinel[T]) Distance(from iterators.Iterator[rangekit.Range[T]]) int {
	return s.ss.Distance(mustCursorOf[*slideCursor[T]](from).last)
}
