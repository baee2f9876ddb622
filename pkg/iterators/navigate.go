package iterators

// Clone returns an independent copy of the iterator.
// Input iterators are single pass, so Clone panics with ErrCategory for them.
func Clone[T any](it Iterator[T]) Iterator[T] {
	f, ok := it.(ForwardIterator[T])
	if !ok {
		panic(ErrCategory.F("%T is a single pass iterator and can't be copied", it))
	}
	return f.Clone()
}

// Advance moves the iterator by n steps.
// A negative n needs a bidirectional iterator.
func Advance[T any](it Iterator[T], n int) {
	if n == 0 {
		return
	}
	if ra, ok := it.(RandomAccessIterator[T]); ok {
		ra.Advance(n)
		return
	}
	if 0 < n {
		for ; 0 < n; n-- {
			it.Next()
		}
		return
	}
	bi, ok := it.(BidirectionalIterator[T])
	if !ok {
		panic(ErrCategory.F("moving %T backwards needs a bidirectional iterator", it))
	}
	for ; n < 0; n++ {
		bi.Prev()
	}
}

// AdvanceTo moves the iterator until it reaches the bound.
func AdvanceTo[T any](it Iterator[T], bound Sentinel[T]) {
	if ss, ok := bound.(SizedSentinel[T]); ok {
		if ra, ok := it.(RandomAccessIterator[T]); ok {
			ra.Advance(ss.Distance(it))
			return
		}
	}
	for !bound.Equal(it) {
		it.Next()
	}
}

// AdvanceBounded moves the iterator by n steps, but never past bound.
// It returns the part of n that could not be made.
//
// Moving backwards with a negative n requires a bidirectional iterator
// and a bound that is an iterator of the same range.
func AdvanceBounded[T any](it Iterator[T], n int, bound Sentinel[T]) int {
	if ss, ok := bound.(SizedSentinel[T]); ok {
		if ra, ok := it.(RandomAccessIterator[T]); ok {
			d := ss.Distance(it)
			if (0 < n && d <= n) || (n < 0 && n <= d) {
				ra.Advance(d)
				return n - d
			}
			ra.Advance(n)
			return 0
		}
	}
	for ; 0 < n && !bound.Equal(it); n-- {
		it.Next()
	}
	if n < 0 {
		bi, ok := it.(BidirectionalIterator[T])
		if !ok {
			panic(ErrCategory.F("moving %T backwards needs a bidirectional iterator", it))
		}
		for ; n < 0 && !bound.Equal(it); n++ {
			bi.Prev()
		}
	}
	return n
}

// Next returns a copy of the iterator moved forward by n.
func Next[T any](it Iterator[T], n int) Iterator[T] {
	c := Clone(it)
	Advance(c, n)
	return c
}

// NextTo returns a copy of the iterator moved to the bound.
func NextTo[T any](it Iterator[T], bound Sentinel[T]) Iterator[T] {
	c := Clone(it)
	AdvanceTo(c, bound)
	return c
}

// NextBounded returns a copy of the iterator moved forward by n, but not past bound.
func NextBounded[T any](it Iterator[T], n int, bound Sentinel[T]) Iterator[T] {
	c := Clone(it)
	AdvanceBounded(c, n, bound)
	return c
}

// Prev returns a copy of the iterator moved backward by n.
func Prev[T any](it Iterator[T], n int) Iterator[T] {
	return Next(it, -n)
}

// PrevBounded returns a copy of the iterator moved backward by n, but not before bound.
func PrevBounded[T any](it Iterator[T], n int, bound Iterator[T]) Iterator[T] {
	s, ok := bound.(Sentinel[T])
	if !ok {
		panic(ErrCategory.F("%T can't be used as a backward bound", bound))
	}
	c := Clone(it)
	AdvanceBounded(c, -n, s)
	return c
}

// Distance returns the number of steps from first to last.
//
// When last is a SizedSentinel, it is computed in constant time,
// otherwise first is walked to last.
// Forward iterators are copied for the walk, while input iterators are consumed by it.
func Distance[T any](first Iterator[T], last Sentinel[T]) int {
	if ss, ok := last.(SizedSentinel[T]); ok {
		if _, ok := first.(RandomAccessIterator[T]); ok {
			return ss.Distance(first)
		}
	}
	it := first
	if f, ok := first.(ForwardIterator[T]); ok {
		it = f.Clone()
	}
	var n int
	for ; !last.Equal(it); it.Next() {
		n++
	}
	return n
}

// Less reports whether a is before b.
func Less[T any](a, b RandomAccessIterator[T]) bool {
	return 0 < b.Distance(a)
}
