package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Transform presents the result of fn for each element of the base range.
// fn is called on every dereference, so it should be cheap and free of side effects.
func Transform[T, U any](r rangekit.Range[T], fn func(T) U) rangekit.Range[U] {
	v := transformView[T, U]{
		base: r,
		fn:   fn,
		cat:  iterators.Min(rangekit.CategoryOf(r), iterators.RandomAccess),
	}
	caps := rangekit.Caps[U]{
		Category: v.cat,
		Size:     sizeOf(r),
		Simple:   rangekit.IsSimple(r),
	}
	if c := constOf(r); c != nil {
		caps.Const = func() rangekit.Range[U] { return Transform(c(), fn) }
	}
	return rangekit.Adapt[U](v, caps)
}

type transformView[T, U any] struct {
	base rangekit.Range[T]
	fn   func(T) U
	cat  iterators.Category
}

func (v transformView[T, U]) Base() rangekit.Range[T] { return v.base }

func (v transformView[T, U]) Begin() iterators.Iterator[U] {
	return iterators.Promote[U](&transformCursor[T, U]{it: v.base.Begin(), fn: v.fn}, v.cat, false)
}

func (v transformView[T, U]) End() iterators.Sentinel[U] {
	end := v.base.End()
	if it, ok := end.(iterators.Iterator[T]); ok && v.cat.Satisfies(iterators.Forward) {
		return iterators.Promote[U](&transformCursor[T, U]{it: it, fn: v.fn}, v.cat, false).(iterators.Sentinel[U])
	}
	if ss, ok := end.(iterators.SizedSentinel[T]); ok {
		return transformSizedSentinel[T, U]{transformSentinel[T, U]{end: end}, ss}
	}
	return transformSentinel[T, U]{end: end}
}

type transformCursor[T, U any] struct {
	it iterators.Iterator[T]
	fn func(T) U
}

func (c *transformCursor[T, U]) Value() U { return c.fn(c.it.Value()) }

func (c *transformCursor[T, U]) Next() { c.it.Next() }

func (c *transformCursor[T, U]) Prev() { c.it.(iterators.BidirectionalIterator[T]).Prev() }

func (c *transformCursor[T, U]) Advance(n int) { iterators.Advance(c.it, n) }

func (c *transformCursor[T, U]) Distance(from iterators.Cursor[U]) int {
	return c.it.(iterators.RandomAccessIterator[T]).Distance(from.(*transformCursor[T, U]).it)
}

func (c *transformCursor[T, U]) Clone() iterators.Cursor[U] {
	return &transformCursor[T, U]{it: iterators.Clone(c.it), fn: c.fn}
}

func (c *transformCursor[T, U]) Equal(oth iterators.Cursor[U]) bool {
	o, ok := oth.(*transformCursor[T, U])
	return ok && equal(c.it, o.it)
}

type transformSentinel[T, U any] struct {
	end iterators.Sentinel[T]
}

func (s transformSentinel[T, U]) Equal(it iterators.Iterator[U]) bool {
	c, ok := cursorOf[*transformCursor[T, U]](it)
	return ok && s.end.Equal(c.it)
}

type transformSizedSentinel[T, U any] struct {
	transformSentinel[T, U]
	ss iterators.SizedSentinel[T]
}

func (s transformSizedSentinel[T, U]) Distance(from iterators.Iterator[U]) int {
	return s.ss.Distance(mustCursorOf[*transformCursor[T, U]](from).it)
}
