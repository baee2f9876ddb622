package iterators

// Reverse returns an iterator that walks the base backwards.
//
// Like a reverse iterator in general, it points one position behind its base:
// the element of Reverse(end) is the last element of the range,
// and Reverse(begin) is the end position of the reversed range.
// The result is random access when the base is, otherwise bidirectional.
func Reverse[T any](base BidirectionalIterator[T]) Iterator[T] {
	cat := Min(CategoryOf[T](base), RandomAccess)
	_, ptr := base.(Pointer[T])
	return Promote[T](&reverseCursor[T]{base: base}, cat, ptr)
}

// ReverseBase returns the base iterator of a Reverse iterator.
func ReverseBase[T any](it Iterator[T]) (BidirectionalIterator[T], bool) {
	c, ok := Unwrap(it)
	if !ok {
		return nil, false
	}
	rc, ok := c.(*reverseCursor[T])
	if !ok {
		return nil, false
	}
	return rc.base.Clone().(BidirectionalIterator[T]), true
}

type reverseCursor[T any] struct {
	base BidirectionalIterator[T]
}

func (c *reverseCursor[T]) prev() BidirectionalIterator[T] {
	p := c.base.Clone().(BidirectionalIterator[T])
	p.Prev()
	return p
}

func (c *reverseCursor[T]) Value() T {
	if ra, ok := c.base.(RandomAccessIterator[T]); ok {
		return ra.At(-1)
	}
	return c.prev().Value()
}

func (c *reverseCursor[T]) Pointer() *T {
	return c.prev().(Pointer[T]).Pointer()
}

func (c *reverseCursor[T]) Next() { c.base.Prev() }

func (c *reverseCursor[T]) Prev() { c.base.Next() }

func (c *reverseCursor[T]) Clone() Cursor[T] {
	return &reverseCursor[T]{base: c.base.Clone().(BidirectionalIterator[T])}
}

func (c *reverseCursor[T]) Equal(oth Cursor[T]) bool {
	o, ok := oth.(*reverseCursor[T])
	return ok && c.base.Equal(o.base)
}

func (c *reverseCursor[T]) Advance(n int) {
	c.base.(RandomAccessIterator[T]).Advance(-n)
}

func (c *reverseCursor[T]) Distance(from Cursor[T]) int {
	o := from.(*reverseCursor[T])
	return o.base.(RandomAccessIterator[T]).Distance(c.base)
}
