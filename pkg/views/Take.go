package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Take presents the first n elements of the base range,
// or every element when the base has fewer than n.
//
// Over a sized random access range the result is a common range of the base's own iterators,
// otherwise its iterators count the remaining elements.
func Take[T any](r rangekit.Range[T], n int) rangekit.Range[T] {
	if n < 0 {
		panic(iterators.ErrInvalidSize.F("take count must not be negative, got %d", n))
	}
	var (
		cat   = rangekit.CategoryOf(r)
		sized = rangekit.IsSized(r)
		v     = takeView[T]{base: r, n: n, cat: cat, sized: sized}
	)
	if !(sized && cat.Satisfies(iterators.RandomAccess)) {
		v.cat = iterators.Min(cat, iterators.RandomAccess)
		// a single pass range is not inspected, its Begin is reserved for the iteration
		if cat.Satisfies(iterators.Forward) {
			_, v.ptr = r.Begin().(iterators.Pointer[T])
		}
	}
	caps := rangekit.Caps[T]{
		Category: v.cat,
		Simple:   rangekit.IsSimple(r),
	}
	if sized {
		caps.Size = v.size
	}
	if c := constOf(r); c != nil {
		caps.Const = func() rangekit.Range[T] { return Take(c(), n) }
	}
	return rangekit.Adapt[T](v, caps)
}

type takeView[T any] struct {
	base  rangekit.Range[T]
	n     int
	cat   iterators.Category
	sized bool
	ptr   bool
}

func (v takeView[T]) Base() rangekit.Range[T] { return v.base }

func (v takeView[T]) size() int { return min(v.n, rangekit.Size(v.base)) }

func (v takeView[T]) direct() bool {
	return v.sized && v.cat.Satisfies(iterators.RandomAccess)
}

func (v takeView[T]) Begin() iterators.Iterator[T] {
	if v.direct() {
		return v.base.Begin()
	}
	n := v.n
	if v.sized {
		n = v.size()
	}
	return iterators.Promote[T](&takeCursor[T]{it: v.base.Begin(), n: n}, v.cat, v.ptr)
}

func (v takeView[T]) End() iterators.Sentinel[T] {
	if v.direct() {
		it := v.base.Begin()
		iterators.Advance(it, v.size())
		return it.(iterators.Sentinel[T])
	}
	s := takeSentinel[T]{end: v.base.End()}
	if v.sized {
		return takeSizedSentinel[T]{s}
	}
	return s
}

type takeCursor[T any] struct {
	it iterators.Iterator[T]
	// n is the number of elements left
	n int
}

func (c *takeCursor[T]) Value() T { return c.it.Value() }

func (c *takeCursor[T]) Pointer() *T { return c.it.(iterators.Pointer[T]).Pointer() }

func (c *takeCursor[T]) Next() {
	c.it.Next()
	c.n--
}

func (c *takeCursor[T]) Prev() {
	c.it.(iterators.BidirectionalIterator[T]).Prev()
	c.n++
}

func (c *takeCursor[T]) Advance(n int) {
	c.it.(iterators.RandomAccessIterator[T]).Advance(n)
	c.n -= n
}

func (c *takeCursor[T]) Distance(from iterators.Cursor[T]) int {
	return from.(*takeCursor[T]).n - c.n
}

func (c *takeCursor[T]) Clone() iterators.Cursor[T] {
	return &takeCursor[T]{it: iterators.Clone(c.it), n: c.n}
}

func (c *takeCursor[T]) Equal(oth iterators.Cursor[T]) bool {
	o, ok := oth.(*takeCursor[T])
	return ok && c.n == o.n
}

type takeSentinel[T any] struct {
	end iterators.Sentinel[T]
}

func (s takeSentinel[T]) Equal(it iterators.Iterator[T]) bool {
	c, ok := cursorOf[*takeCursor[T]](it)
	return ok && (c.n == 0 || s.end.Equal(c.it))
}

// takeSizedSentinel is used when the count was clamped to the size of the base,
// so the remaining count alone tells the distance.
type takeSizedSentinel[T any] struct{ takeSentinel[T] }

func (s takeSizedSentinel[T]) Distance(from iterators.Iterator[T]) int {
	return mustCursorOf[*takeCursor[T]](from).n
}
