package algorithm

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/mathkit"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Reverse reverses the elements between first and last in place.
func Reverse[T any](first iterators.Iterator[T], last iterators.Sentinel[T]) {
	cat := assertCategory(first, iterators.Bidirectional, "reverse")
	f := iterators.Clone(first)
	l := iterators.NextTo(f, last).(iterators.BidirectionalIterator[T])
	if cat.Satisfies(iterators.RandomAccess) {
		for n := l.(iterators.RandomAccessIterator[T]).Distance(f) / 2; 0 < n; n-- {
			l.Prev()
			swap(f, l)
			f.Next()
		}
		return
	}
	for !equal(f, l) {
		l.Prev()
		if equal(f, l) {
			return
		}
		swap(f, l)
		f.Next()
	}
}

// Rotate moves the elements so that middle becomes the first element,
// and the elements before middle follow the elements after it.
//
//	[1 2 3 4 5], middle at 3 -> [3 4 5 1 2]
//
// It returns the subrange from the new position of the original first element to last.
// The strategy depends on the iterator category:
// forward iterators swap elements block by block,
// bidirectional iterators reverse the two parts and then the whole,
// random access iterators move each element directly to its place along gcd(n, k) cycles.
func Rotate[T any](first, middle iterators.Iterator[T], last iterators.Sentinel[T]) rangekit.SubrangeView[T] {
	cat := iterators.Min(
		assertCategory(first, iterators.Forward, "rotate"),
		iterators.CategoryOf(middle),
	)
	if equal(first, middle) {
		end := iterators.NextTo(first, last)
		return rangekit.Subrange(end, iterators.Clone(end).(iterators.Sentinel[T]))
	}
	if last.Equal(middle) {
		return rangekit.Subrange(iterators.Clone(first), last)
	}
	switch {
	case cat.Satisfies(iterators.RandomAccess):
		end := iterators.NextTo(middle, last)
		return rangekit.Subrange(rotateRandomAccess(first, middle, end), end.(iterators.Sentinel[T]))
	case cat.Satisfies(iterators.Bidirectional):
		end := iterators.NextTo(middle, last)
		return rangekit.Subrange(rotateBidirectional(first, middle, end), end.(iterators.Sentinel[T]))
	default:
		return rangekit.Subrange(rotateForward(first, middle, last), last)
	}
}

func rotateForward[T any](first, middle iterators.Iterator[T], last iterators.Sentinel[T]) iterators.Iterator[T] {
	f, m := iterators.Clone(first), iterators.Clone(middle)
	f2 := iterators.Clone(m)
	for {
		swap(f, f2)
		f.Next()
		f2.Next()
		if equal(f, m) {
			m = iterators.Clone(f2)
		}
		if last.Equal(f2) {
			break
		}
	}
	newFirst := iterators.Clone(f)
	f2 = iterators.Clone(m)
	for !last.Equal(f2) {
		swap(f, f2)
		f.Next()
		f2.Next()
		if equal(f, m) {
			m = iterators.Clone(f2)
		} else if last.Equal(f2) {
			f2 = iterators.Clone(m)
		}
	}
	return newFirst
}

func rotateBidirectional[T any](first, middle, last iterators.Iterator[T]) iterators.Iterator[T] {
	Reverse(first, middle.(iterators.Sentinel[T]))
	Reverse(middle, last.(iterators.Sentinel[T]))
	f, l := iterators.Clone(first), iterators.Clone(last).(iterators.BidirectionalIterator[T])
	for !equal(f, middle) && !equal(middle, l) {
		l.Prev()
		swap(f, l)
		f.Next()
	}
	if equal(f, middle) {
		Reverse(middle, l)
		return l
	}
	Reverse(f, middle.(iterators.Sentinel[T]))
	return f
}

func rotateRandomAccess[T any](first, middle, last iterators.Iterator[T]) iterators.Iterator[T] {
	var (
		n   = last.(iterators.RandomAccessIterator[T]).Distance(first)
		k   = middle.(iterators.RandomAccessIterator[T]).Distance(first)
		pos = func(i int) iterators.Iterator[T] { return iterators.Next(first, i) }
	)
	if k == n-k {
		for i := 0; i < k; i++ {
			swap(pos(i), pos(i+k))
		}
		return iterators.Clone(middle)
	}
	for i, cycles := 0, mathkit.GCD(n, k); i < cycles; i++ {
		tmp := pos(i).Value()
		j := i
		for {
			d := j + k
			if n <= d {
				d -= n
			}
			if d == i {
				break
			}
			writable(pos(j)).Set(pos(d).Value())
			j = d
		}
		writable(pos(j)).Set(tmp)
	}
	return pos(n - k)
}
