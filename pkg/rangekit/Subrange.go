package rangekit

import "go.llib.dev/rangekit/pkg/iterators"

// Subrange makes a range from an iterator and a sentinel.
//
// For forward iterators, Begin and End return copies of the stored positions,
// so the subrange can be iterated many times.
func Subrange[T any](first iterators.Iterator[T], last iterators.Sentinel[T]) SubrangeView[T] {
	return SubrangeView[T]{first: first, last: last}
}

type SubrangeView[T any] struct {
	first iterators.Iterator[T]
	last  iterators.Sentinel[T]
}

func (v SubrangeView[T]) Begin() iterators.Iterator[T] {
	if f, ok := v.first.(iterators.ForwardIterator[T]); ok {
		return f.Clone()
	}
	return v.first
}

func (v SubrangeView[T]) End() iterators.Sentinel[T] {
	if f, ok := v.last.(iterators.ForwardIterator[T]); ok {
		return f.Clone().(iterators.Sentinel[T])
	}
	return v.last
}

func (v SubrangeView[T]) Category() iterators.Category { return iterators.CategoryOf(v.first) }

func (v SubrangeView[T]) Const() Range[T] { return v }

func (v SubrangeView[T]) Simple() bool { return true }

// Counted is the range of n elements starting from it.
//
// A random access iterator is turned into a Subrange,
// any other iterator counts its steps down to zero.
func Counted[T any](it iterators.Iterator[T], n int) Range[T] {
	if n < 0 {
		panic(ErrNegativeCount.F("%d", n))
	}
	cat := iterators.CategoryOf(it)
	if cat.Satisfies(iterators.RandomAccess) {
		return Subrange[T](it, iterators.Next(it, n).(iterators.Sentinel[T]))
	}
	cat = iterators.Min(cat, iterators.Bidirectional)
	_, ptr := it.(iterators.Pointer[T])
	v := countedView[T]{it: it, n: n, cat: cat, ptr: ptr}
	return Adapt[T](v, Caps[T]{
		Category: cat,
		Size:     func() int { return n },
	})
}

type countedView[T any] struct {
	it  iterators.Iterator[T]
	n   int
	cat iterators.Category
	ptr bool
}

func (v countedView[T]) Begin() iterators.Iterator[T] {
	it := v.it
	if f, ok := it.(iterators.ForwardIterator[T]); ok {
		it = f.Clone()
	}
	return iterators.Promote[T](&countedCursor[T]{it: it, n: v.n}, v.cat, v.ptr)
}

func (v countedView[T]) End() iterators.Sentinel[T] { return countedSentinel[T]{} }

type countedCursor[T any] struct {
	it iterators.Iterator[T]
	// n is the number of remaining steps
	n int
}

func (c *countedCursor[T]) Value() T { return c.it.Value() }

func (c *countedCursor[T]) Pointer() *T { return c.it.(iterators.Pointer[T]).Pointer() }

func (c *countedCursor[T]) Next() {
	c.it.Next()
	c.n--
}

func (c *countedCursor[T]) Prev() {
	c.it.(iterators.BidirectionalIterator[T]).Prev()
	c.n++
}

func (c *countedCursor[T]) Clone() iterators.Cursor[T] {
	return &countedCursor[T]{it: iterators.Clone(c.it), n: c.n}
}

func (c *countedCursor[T]) Equal(oth iterators.Cursor[T]) bool {
	o, ok := oth.(*countedCursor[T])
	return ok && c.n == o.n
}

type countedSentinel[T any] struct{}

func (countedSentinel[T]) Equal(it iterators.Iterator[T]) bool {
	c, ok := iterators.Unwrap(it)
	if !ok {
		return false
	}
	cc, ok := c.(*countedCursor[T])
	return ok && cc.n == 0
}

func (countedSentinel[T]) Distance(from iterators.Iterator[T]) int {
	c, _ := iterators.Unwrap(from)
	return c.(*countedCursor[T]).n
}
