package iterators

// Cursor is the internal state machine of an adaptor iterator.
//
// An adaptor implements as many of the cursor interfaces as it possibly can,
// and Promote decides how much of it becomes visible in the iterator's method set.
// This way a single cursor implementation can back an input, forward, bidirectional
// or random access iterator depending on what the adapted ranges allow.
type Cursor[T any] interface {
	Value() T
	Next()
}

type ForwardCursor[T any] interface {
	Cursor[T]
	Clone() Cursor[T]
	Equal(oth Cursor[T]) bool
}

type BidirectionalCursor[T any] interface {
	ForwardCursor[T]
	Prev()
}

type RandomAccessCursor[T any] interface {
	BidirectionalCursor[T]
	Advance(n int)
	// Distance returns receiver - from.
	Distance(from Cursor[T]) int
}

type PointerCursor[T any] interface {
	Pointer() *T
}

// Promote wraps the cursor into an iterator whose method set matches the given category.
// When pointer is true, the iterator also exposes Pointer.
//
// Promote panics with ErrCategory if the cursor doesn't implement what the category needs.
func Promote[T any](c Cursor[T], cat Category, pointer bool) Iterator[T] {
	if cat == Contiguous {
		pointer = true
	}
	assertCursor(c, cat, pointer)
	base := promoted[T]{c: c, cat: cat, ptr: pointer}
	switch {
	case cat.Satisfies(RandomAccess) && pointer:
		return raPtrIter[T]{raIter[T]{bidiIter[T]{forwardIter[T]{inputIter[T]{base}}}}}
	case cat.Satisfies(RandomAccess):
		return raIter[T]{bidiIter[T]{forwardIter[T]{inputIter[T]{base}}}}
	case cat.Satisfies(Bidirectional) && pointer:
		return bidiPtrIter[T]{bidiIter[T]{forwardIter[T]{inputIter[T]{base}}}}
	case cat.Satisfies(Bidirectional):
		return bidiIter[T]{forwardIter[T]{inputIter[T]{base}}}
	case cat.Satisfies(Forward) && pointer:
		return forwardPtrIter[T]{forwardIter[T]{inputIter[T]{base}}}
	case cat.Satisfies(Forward):
		return forwardIter[T]{inputIter[T]{base}}
	case pointer:
		return inputPtrIter[T]{inputIter[T]{base}}
	default:
		return inputIter[T]{base}
	}
}

// Unwrap returns the cursor of an iterator that was made with Promote.
func Unwrap[T any](it Iterator[T]) (Cursor[T], bool) {
	if it == nil {
		return nil, false
	}
	p, ok := it.(interface{ cursor() Cursor[T] })
	if !ok {
		return nil, false
	}
	return p.cursor(), true
}

func assertCursor[T any](c Cursor[T], cat Category, pointer bool) {
	var ok = true
	switch {
	case cat.Satisfies(RandomAccess):
		_, ok = c.(RandomAccessCursor[T])
	case cat.Satisfies(Bidirectional):
		_, ok = c.(BidirectionalCursor[T])
	case cat.Satisfies(Forward):
		_, ok = c.(ForwardCursor[T])
	}
	if !ok {
		panic(ErrCategory.F("%T cannot back a %s iterator", c, cat))
	}
	if _, isPtr := c.(PointerCursor[T]); pointer && !isPtr {
		panic(ErrCategory.F("%T cannot expose element pointers", c))
	}
}

type promoted[T any] struct {
	c   Cursor[T]
	cat Category
	ptr bool
}

func (p promoted[T]) cursor() Cursor[T]  { return p.c }
func (p promoted[T]) Category() Category { return p.cat }

type inputIter[T any] struct{ promoted[T] }

func (i inputIter[T]) Value() T { return i.c.Value() }
func (i inputIter[T]) Next()    { i.c.Next() }

type inputPtrIter[T any] struct{ inputIter[T] }

func (i inputPtrIter[T]) Pointer() *T { return i.c.(PointerCursor[T]).Pointer() }

type forwardIter[T any] struct{ inputIter[T] }

func (i forwardIter[T]) Clone() Iterator[T] {
	return Promote(i.c.(ForwardCursor[T]).Clone(), i.cat, i.ptr)
}

func (i forwardIter[T]) Equal(oth Iterator[T]) bool {
	c, ok := Unwrap(oth)
	if !ok {
		return false
	}
	return i.c.(ForwardCursor[T]).Equal(c)
}

type forwardPtrIter[T any] struct{ forwardIter[T] }

func (i forwardPtrIter[T]) Pointer() *T { return i.c.(PointerCursor[T]).Pointer() }

type bidiIter[T any] struct{ forwardIter[T] }

func (i bidiIter[T]) Prev() { i.c.(BidirectionalCursor[T]).Prev() }

type bidiPtrIter[T any] struct{ bidiIter[T] }

func (i bidiPtrIter[T]) Pointer() *T { return i.c.(PointerCursor[T]).Pointer() }

type raIter[T any] struct{ bidiIter[T] }

func (i raIter[T]) Advance(n int) { i.c.(RandomAccessCursor[T]).Advance(n) }

func (i raIter[T]) Distance(from Iterator[T]) int {
	c, ok := Unwrap(from)
	if !ok {
		panic(ErrCategory.F("%T is not an iterator of the same range", from))
	}
	return i.c.(RandomAccessCursor[T]).Distance(c)
}

func (i raIter[T]) At(n int) T {
	c := i.c.(RandomAccessCursor[T]).Clone().(RandomAccessCursor[T])
	c.Advance(n)
	return c.Value()
}

type raPtrIter[T any] struct{ raIter[T] }

func (i raPtrIter[T]) Pointer() *T { return i.c.(PointerCursor[T]).Pointer() }
