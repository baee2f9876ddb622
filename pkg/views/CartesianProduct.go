package views

import (
	"fmt"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/mathkit"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// CartesianProduct presents every combination of the elements of the given ranges.
// Each element is a fresh slice, holding one element from each range in the order of the ranges.
//
// The combinations follow lexicographic order, like an odometer:
// the last range varies the fastest and the first range the slowest.
//
//	CartesianProduct(rangekit.Slice([]int{1, 2}), rangekit.Slice([]int{3, 4}))
//	// [1 3] [1 4] [2 3] [2 4]
//
// The first range can be a single pass range,
// but every other range has to be a forward range, otherwise CartesianProduct panics with iterators.ErrCategory.
// If any of the ranges is empty, the product is empty.
//
// The product is
//   - random access, when every range is random access and every range after the first is sized,
//   - bidirectional, when every range is bidirectional and the end of every range after the first is reachable,
//   - forward, when the first range is a forward range,
//   - input otherwise.
func CartesianProduct[T any](first rangekit.Range[T], rest ...rangekit.Range[T]) rangekit.Range[[]T] {
	for i, r := range rest {
		assertCategory(r, iterators.Forward, fmt.Sprintf("cartesian product dimension %d", i+1))
	}
	v := &cartesianView[T]{bases: append([]rangekit.Range[T]{first}, rest...)}
	v.cat = cartesianCategory(v.bases)
	v.common = v.cat.Satisfies(iterators.Forward) && rangekit.IsCommonArg(first)
	if !v.common {
		_, isSizedEnd := first.End().(iterators.SizedSentinel[T])
		v.sizedEnd = isSizedEnd
		for _, r := range rest {
			v.sizedEnd = v.sizedEnd && rangekit.IsSized(r) && rangekit.CategoryOf(r).Satisfies(iterators.RandomAccess)
		}
	}

	caps := rangekit.Caps[[]T]{Category: v.cat, Simple: true}
	sized, constIterable := true, true
	for _, r := range v.bases {
		sized = sized && rangekit.IsSized(r)
		constIterable = constIterable && rangekit.IsConstIterable(r)
		caps.Simple = caps.Simple && rangekit.IsSimple(r)
	}
	if sized {
		caps.Size = v.size
	}
	if constIterable {
		caps.Const = v.constView
	} else {
		caps.Simple = false
	}
	return rangekit.Adapt[[]T](v, caps)
}

func cartesianCategory[T any](bases []rangekit.Range[T]) iterators.Category {
	cat := rangekit.CategoryOf(bases[0])
	if !cat.Satisfies(iterators.Forward) {
		return iterators.Input
	}
	var (
		ra   = cat.Satisfies(iterators.RandomAccess)
		bidi = cat.Satisfies(iterators.Bidirectional)
	)
	for _, r := range bases[1:] {
		c := rangekit.CategoryOf(r)
		ra = ra && c.Satisfies(iterators.RandomAccess) && rangekit.IsSized(r)
		bidi = bidi && c.Satisfies(iterators.Bidirectional) && rangekit.IsCommonArg(r)
	}
	switch {
	case ra:
		return iterators.RandomAccess
	case bidi:
		return iterators.Bidirectional
	default:
		return iterators.Forward
	}
}

type cartesianView[T any] struct {
	bases []rangekit.Range[T]
	cat   iterators.Category
	// common means that the end position is an iterator
	common bool
	// sizedEnd means that the distance to the end sentinel can be computed
	sizedEnd bool
}

func (v *cartesianView[T]) size() int {
	sizes := make([]int, len(v.bases))
	for i, r := range v.bases {
		sizes[i] = rangekit.Size(r)
	}
	return mathkit.MustProduct(sizes...)
}

func (v *cartesianView[T]) constView() rangekit.Range[[]T] {
	cs := make([]rangekit.Range[T], len(v.bases))
	for i, r := range v.bases {
		cs[i], _ = rangekit.Const(r)
	}
	return CartesianProduct(cs[0], cs[1:]...)
}

func (v *cartesianView[T]) Begin() iterators.Iterator[[]T] {
	c := &cartesianCursor[T]{v: v, cur: make([]iterators.Iterator[T], len(v.bases))}
	for i, r := range v.bases {
		c.cur[i] = r.Begin()
	}
	return iterators.Promote[[]T](c, v.cat, false)
}

// End returns the position after the last combination.
//
// When it is an iterator, its first position is at the end of the first range,
// and every other position is at the beginning of its range.
// This is also where incrementing the last combination arrives.
// If any range after the first is empty, End is the same as Begin.
func (v *cartesianView[T]) End() iterators.Sentinel[[]T] {
	if !v.common {
		if v.sizedEnd {
			return cartesianSizedSentinel[T]{cartesianSentinel[T]{v: v}}
		}
		return cartesianSentinel[T]{v: v}
	}
	c := &cartesianCursor[T]{v: v, cur: make([]iterators.Iterator[T], len(v.bases))}
	emptyTail := false
	for i, r := range v.bases {
		c.cur[i] = r.Begin()
		if 0 < i && rangekit.Empty(r) {
			emptyTail = true
		}
	}
	if !emptyTail {
		c.cur[0] = rangekit.CommonEnd(v.bases[0])
	}
	return iterators.Promote[[]T](c, v.cat, false).(iterators.Sentinel[[]T])
}

type cartesianCursor[T any] struct {
	v   *cartesianView[T]
	cur []iterators.Iterator[T]
}

func (c *cartesianCursor[T]) Value() []T {
	vs := make([]T, len(c.cur))
	for i, it := range c.cur {
		vs[i] = it.Value()
	}
	return vs
}

// Next increments the last position.
// When a position reaches the end of its range, it is reset to the beginning
// and the increment carries over to the previous position.
// The first position never resets, reaching its end means the end of the product.
func (c *cartesianCursor[T]) Next() {
	for n := len(c.cur) - 1; ; n-- {
		c.cur[n].Next()
		if n == 0 || !c.v.bases[n].End().Equal(c.cur[n]) {
			return
		}
		c.cur[n] = c.v.bases[n].Begin()
	}
}

// Prev decrements the last position.
// A position at the beginning of its range wraps around to its last element,
// and the decrement borrows from the previous position.
func (c *cartesianCursor[T]) Prev() {
	for n := len(c.cur) - 1; ; n-- {
		if 0 < n && equal(c.cur[n], c.v.bases[n].Begin()) {
			last := rangekit.CommonEnd(c.v.bases[n]).(iterators.BidirectionalIterator[T])
			last.Prev()
			c.cur[n] = last
			continue
		}
		c.cur[n].(iterators.BidirectionalIterator[T]).Prev()
		return
	}
}

// Advance moves the position by x combinations.
// The positions are the digits of a mixed-radix number, where each radix is the size of a range.
func (c *cartesianCursor[T]) Advance(x int) {
	switch x {
	case 0:
		return
	case 1:
		c.Next()
		return
	case -1:
		c.Prev()
		return
	}
	for n := len(c.cur) - 1; 0 < n && x != 0; n-- {
		r := c.v.bases[n]
		size := rangekit.Size(r)
		if size == 0 {
			panic(iterators.ErrOutOfRange.F("advancing in an empty cartesian product"))
		}
		begin := r.Begin()
		var offset int
		x, offset = mathkit.FloorDivMod(c.cur[n].(iterators.RandomAccessIterator[T]).Distance(begin)+x, size)
		begin.(iterators.RandomAccessIterator[T]).Advance(offset)
		c.cur[n] = begin
	}
	if x != 0 {
		c.cur[0].(iterators.RandomAccessIterator[T]).Advance(x)
	}
}

func (c *cartesianCursor[T]) Distance(from iterators.Cursor[[]T]) int {
	o := from.(*cartesianCursor[T])
	var sum, scale = 0, 1
	for n := len(c.cur) - 1; 0 <= n; n-- {
		sum += c.cur[n].(iterators.RandomAccessIterator[T]).Distance(o.cur[n]) * scale
		if 0 < n {
			scale *= rangekit.Size(c.v.bases[n])
		}
	}
	return sum
}

func (c *cartesianCursor[T]) Clone() iterators.Cursor[[]T] {
	cp := &cartesianCursor[T]{v: c.v, cur: make([]iterators.Iterator[T], len(c.cur))}
	for i, it := range c.cur {
		cp.cur[i] = iterators.Clone(it)
	}
	return cp
}

func (c *cartesianCursor[T]) Equal(oth iterators.Cursor[[]T]) bool {
	o, ok := oth.(*cartesianCursor[T])
	if !ok || c.v != o.v {
		return false
	}
	for i := range c.cur {
		if !equal(c.cur[i], o.cur[i]) {
			return false
		}
	}
	return true
}

// cartesianSentinel marks the end of a product whose end position is not an iterator.
// Any position reaching the end of its range means the end of the product.
type cartesianSentinel[T any] struct{ v *cartesianView[T] }

func (s cartesianSentinel[T]) Equal(it iterators.Iterator[[]T]) bool {
	c, ok := cursorOf[*cartesianCursor[T]](it)
	if !ok {
		return false
	}
	for n, cur := range c.cur {
		if s.v.bases[n].End().Equal(cur) {
			return true
		}
	}
	return false
}

type cartesianSizedSentinel[T any] struct{ cartesianSentinel[T] }

func (s cartesianSizedSentinel[T]) Distance(from iterators.Iterator[[]T]) int {
	c := mustCursorOf[*cartesianCursor[T]](from)
	var sum, scale = 0, 1
	for n := len(c.cur) - 1; 0 < n; n-- {
		sum -= c.cur[n].(iterators.RandomAccessIterator[T]).Distance(s.v.bases[n].Begin()) * scale
		scale *= rangekit.Size(s.v.bases[n])
	}
	return sum + s.v.bases[0].End().(iterators.SizedSentinel[T]).Distance(c.cur[0])*scale
}

// CartesianProduct2 is the product of two ranges with different element types.
func CartesianProduct2[A, B any](a rangekit.Range[A], b rangekit.Range[B]) rangekit.Range[rangekit.Pair[A, B]] {
	p := CartesianProduct(Transform(a, toAny[A]), Transform(b, toAny[B]))
	return Transform(p, func(t []any) rangekit.Pair[A, B] {
		first, _ := t[0].(A)
		second, _ := t[1].(B)
		return rangekit.MakePair(first, second)
	})
}

func toAny[T any](v T) any { return v }
