package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/mathkit"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Chunk splits the base range into consecutive chunks of n elements.
// The last chunk holds the remaining elements and may be shorter than n.
//
//	Chunk(rangekit.Slice([]int{1, 2, 3, 4, 5}), 2) // [1 2] [3 4] [5]
//
// Over a forward range the chunks can be visited many times.
// Over a single pass range the chunks share the position of the base,
// so each chunk has to be visited before moving to the next one,
// and skipping a chunk skips its elements.
//
// Chunk panics with iterators.ErrInvalidSize if n is not positive.
func Chunk[T any](r rangekit.Range[T], n int) rangekit.Range[rangekit.Range[T]] {
	assertSize(n, "chunk")
	cat := rangekit.CategoryOf(r)
	if !cat.Satisfies(iterators.Forward) {
		return chunkInput(r, n)
	}
	v := chunkView[T]{base: r, n: n, cat: iterators.Min(cat, iterators.RandomAccess)}
	caps := rangekit.Caps[rangekit.Range[T]]{Category: v.cat}
	if rangekit.IsSized(r) {
		caps.Size = v.size
	}
	if c := constOf(r); c != nil {
		caps.Const = func() rangekit.Range[rangekit.Range[T]] { return Chunk(c(), n) }
		caps.Simple = rangekit.IsSimple(r)
	}
	return rangekit.Adapt[rangekit.Range[T]](v, caps)
}

type chunkView[T any] struct {
	base rangekit.Range[T]
	n    int
	cat  iterators.Category
}

func (v chunkView[T]) Base() rangekit.Range[T] { return v.base }

func (v chunkView[T]) size() int { return mathkit.DivCeil(rangekit.Size(v.base), v.n) }

func (v chunkView[T]) Begin() iterators.Iterator[rangekit.Range[T]] {
	c := &chunkCursor[T]{cur: v.base.Begin(), end: v.base.End(), n: v.n}
	return iterators.Promote[rangekit.Range[T]](c, v.cat, false)
}

// End is an iterator when the base is common,
// but a bidirectional chunk iterator can only step back from the end when it knows
// how short the last chunk is, which needs the size of the base.
func (v chunkView[T]) End() iterators.Sentinel[rangekit.Range[T]] {
	end, common := v.base.End().(iterators.Iterator[T])
	switch {
	case common && rangekit.IsSized(v.base):
		missing := (v.n - rangekit.Size(v.base)%v.n) % v.n
		c := &chunkCursor[T]{cur: end, end: v.base.End(), n: v.n, missing: missing}
		return iterators.Promote[rangekit.Range[T]](c, v.cat, false).(iterators.Sentinel[rangekit.Range[T]])
	case common && !v.cat.Satisfies(iterators.Bidirectional):
		c := &chunkCursor[T]{cur: end, end: v.base.End(), n: v.n}
		return iterators.Promote[rangekit.Range[T]](c, v.cat, false).(iterators.Sentinel[rangekit.Range[T]])
	}
	if ss, ok := v.base.End().(iterators.SizedSentinel[T]); ok {
		return chunkSizedSentinel[T]{ss: ss}
	}
	return chunkSentinel[T]{}
}

type chunkCursor[T any] struct {
	cur iterators.Iterator[T]
	end iterators.Sentinel[T]
	n   int
	// missing is how many elements the chunk before the end position lacks from n
	missing int
}

func (c *chunkCursor[T]) Value() rangekit.Range[T] {
	if c.end.Equal(c.cur) {
		panic(iterators.ErrOutOfRange.F("dereferencing the end of a chunked range"))
	}
	return Take(rangekit.Range[T](rangekit.Subrange(iterators.Clone(c.cur), c.end)), c.n)
}

func (c *chunkCursor[T]) Next() {
	c.missing = iterators.AdvanceBounded(c.cur, c.n, c.end)
}

func (c *chunkCursor[T]) Prev() {
	iterators.Advance(c.cur, c.missing-c.n)
	c.missing = 0
}

func (c *chunkCursor[T]) Advance(x int) {
	switch {
	case 0 < x:
		c.missing = iterators.AdvanceBounded(c.cur, c.n*x, c.end)
	case x < 0:
		iterators.Advance(c.cur, c.n*x+c.missing)
		c.missing = 0
	}
}

func (c *chunkCursor[T]) Distance(from iterators.Cursor[rangekit.Range[T]]) int {
	o := from.(*chunkCursor[T])
	dx := c.cur.(iterators.RandomAccessIterator[T]).Distance(o.cur)
	return (dx + c.missing - o.missing) / c.n
}

func (c *chunkCursor[T]) Clone() iterators.Cursor[rangekit.Range[T]] {
	return &chunkCursor[T]{cur: iterators.Clone(c.cur), end: c.end, n: c.n, missing: c.missing}
}

func (c *chunkCursor[T]) Equal(oth iterators.Cursor[rangekit.Range[T]]) bool {
	o, ok := oth.(*chunkCursor[T])
	return ok && equal(c.cur, o.cur)
}

type chunkSentinel[T any] struct{}

func (chunkSentinel[T]) Equal(it iterators.Iterator[rangekit.Range[T]]) bool {
	c, ok := cursorOf[*chunkCursor[T]](it)
	return ok && c.end.Equal(c.cur)
}

type chunkSizedSentinel[T any] struct {
	chunkSentinel[T]
	ss iterators.SizedSentinel[T]
}

func (s chunkSizedSentinel[T]) Distance(from iterators.Iterator[rangekit.Range[T]]) int {
	c := mustCursorOf[*chunkCursor[T]](from)
	return mathkit.DivCeil(s.ss.Distance(c.cur), c.n)
}

// chunkInput is the chunk view of a single pass range.
func chunkInput[T any](r rangekit.Range[T], n int) rangekit.Range[rangekit.Range[T]] {
	v := &chunkInputView[T]{base: r, n: n}
	caps := rangekit.Caps[rangekit.Range[T]]{Category: iterators.Input}
	if rangekit.IsSized(r) {
		caps.Size = func() int { return mathkit.DivCeil(rangekit.Size(r), n) }
	}
	return rangekit.Adapt[rangekit.Range[T]](v, caps)
}

type chunkInputView[T any] struct {
	base rangekit.Range[T]
	n    int
	cur  iterators.Iterator[T]
	// remainder is the number of elements left in the current chunk
	remainder int
}

func (v *chunkInputView[T]) Base() rangekit.Range[T] { return v.base }

func (v *chunkInputView[T]) Begin() iterators.Iterator[rangekit.Range[T]] {
	v.cur = v.base.Begin()
	v.remainder = v.n
	return chunkOuterIter[T]{v: v}
}

func (v *chunkInputView[T]) End() iterators.Sentinel[rangekit.Range[T]] {
	return chunkOuterSentinel[T]{v: v}
}

type chunkOuterIter[T any] struct{ v *chunkInputView[T] }

func (it chunkOuterIter[T]) Value() rangekit.Range[T] { return chunkInnerView[T]{v: it.v} }

// Next skips whatever is left from the current chunk.
func (it chunkOuterIter[T]) Next() {
	iterators.AdvanceBounded(it.v.cur, it.v.remainder, it.v.base.End())
	it.v.remainder = it.v.n
}

type chunkOuterSentinel[T any] struct{ v *chunkInputView[T] }

// Equal reports the end when the base is exhausted.
// A chunk that consumed the last element sets the remainder to zero,
// so the outer iterator still has to step past that chunk.
func (s chunkOuterSentinel[T]) Equal(it iterators.Iterator[rangekit.Range[T]]) bool {
	if _, ok := it.(chunkOuterIter[T]); !ok {
		return false
	}
	return s.v.base.End().Equal(s.v.cur) && s.v.remainder != 0
}

type chunkInnerView[T any] struct{ v *chunkInputView[T] }

func (r chunkInnerView[T]) Begin() iterators.Iterator[T] { return chunkInnerIter[T](r) }

func (r chunkInnerView[T]) End() iterators.Sentinel[T] { return chunkInnerSentinel[T](r) }

func (r chunkInnerView[T]) Category() iterators.Category { return iterators.Input }

type chunkInnerIter[T any] struct{ v *chunkInputView[T] }

func (it chunkInnerIter[T]) Value() T { return it.v.cur.Value() }

func (it chunkInnerIter[T]) Next() {
	it.v.cur.Next()
	if it.v.base.End().Equal(it.v.cur) {
		it.v.remainder = 0
	} else {
		it.v.remainder--
	}
}

type chunkInnerSentinel[T any] struct{ v *chunkInputView[T] }

func (s chunkInnerSentinel[T]) Equal(iterators.Iterator[T]) bool { return s.v.remainder == 0 }
