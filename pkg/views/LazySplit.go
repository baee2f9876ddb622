package views

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// LazySplit splits the base range into segments separated by occurrences of the pattern.
// The segments are ranges over the base, found while iterating, no element is copied.
//
//	LazySplit(rangekit.Slice([]rune("a,b,,c,")), rangekit.Slice([]rune(",")))
//	// "a" "b" "" "c" ""
//
// A pattern at the end of the base is followed by a trailing empty segment,
// while an empty base has no segments at all.
// An empty pattern splits the base into single element segments.
//
// A single pass base can only be split by a sized pattern of at most one element,
// otherwise LazySplit panics with iterators.ErrCategory.
func LazySplit[T comparable](r, pattern rangekit.Range[T]) rangekit.Range[rangekit.Range[T]] {
	return LazySplitFunc(r, pattern, func(a, b T) bool { return a == b })
}

// LazySplitOn splits the base range on a single delimiter element.
func LazySplitOn[T comparable](r rangekit.Range[T], delim T) rangekit.Range[rangekit.Range[T]] {
	return LazySplit[T](r, rangekit.Single(delim))
}

// LazySplitFunc is LazySplit with a custom element equality.
func LazySplitFunc[T any](r, pattern rangekit.Range[T], eq func(a, b T) bool) rangekit.Range[rangekit.Range[T]] {
	assertCategory(pattern, iterators.Forward, "lazy split pattern")
	v := &lazySplitView[T]{
		base:    r,
		pattern: pattern,
		eq:      eq,
		forward: rangekit.CategoryOf(r).Satisfies(iterators.Forward),
		tiny:    rangekit.IsSized(pattern) && rangekit.Size(pattern) <= 1,
	}
	if !v.forward && !v.tiny {
		panic(iterators.ErrCategory.F("lazy split of a single pass range needs a pattern of at most one element"))
	}
	v.cat = iterators.Input
	if v.forward {
		v.cat = iterators.Forward
	}

	caps := rangekit.Caps[rangekit.Range[T]]{Category: v.cat}
	if v.forward && rangekit.IsConstIterable(r) && rangekit.IsConstIterable(pattern) {
		caps.Const = func() rangekit.Range[rangekit.Range[T]] {
			cr, _ := rangekit.Const(r)
			cp, _ := rangekit.Const(pattern)
			return LazySplitFunc(cr, cp, eq)
		}
		caps.Simple = rangekit.IsSimple(r) && rangekit.IsSimple(pattern)
	}
	return rangekit.Adapt[rangekit.Range[T]](v, caps)
}

type lazySplitView[T any] struct {
	base    rangekit.Range[T]
	pattern rangekit.Range[T]
	eq      func(a, b T) bool
	cat     iterators.Category
	forward bool
	// tiny is set when the pattern has at most one element
	tiny bool
	// cur is the shared position of a single pass base
	cur iterators.Iterator[T]
}

func (v *lazySplitView[T]) Base() rangekit.Range[T] { return v.base }

func (v *lazySplitView[T]) Begin() iterators.Iterator[rangekit.Range[T]] {
	c := &splitOuterCursor[T]{v: v}
	if v.forward {
		c.cur = v.base.Begin()
	} else {
		v.cur = v.base.Begin()
	}
	return iterators.Promote[rangekit.Range[T]](c, v.cat, false)
}

func (v *lazySplitView[T]) End() iterators.Sentinel[rangekit.Range[T]] {
	if end, ok := v.base.End().(iterators.Iterator[T]); ok && v.forward {
		c := &splitOuterCursor[T]{v: v, cur: end}
		return iterators.Promote[rangekit.Range[T]](c, v.cat, false).(iterators.Sentinel[rangekit.Range[T]])
	}
	return splitOuterSentinel[T]{v: v}
}

// matchAt reports whether the pattern occurs at it,
// and returns the position after the occurrence.
func (v *lazySplitView[T]) matchAt(it iterators.Iterator[T]) (iterators.Iterator[T], bool) {
	var (
		cur = iterators.Clone(it)
		end = v.base.End()
		p   = v.pattern.Begin()
		pe  = v.pattern.End()
	)
	for ; !pe.Equal(p); p.Next() {
		if end.Equal(cur) || !v.eq(cur.Value(), p.Value()) {
			return nil, false
		}
		cur.Next()
	}
	return cur, true
}

type splitOuterCursor[T any] struct {
	v   *lazySplitView[T]
	cur iterators.Iterator[T]
	// trailingEmpty is set when the last pattern occurrence ended at the end of the base
	trailingEmpty bool
}

func (c *splitOuterCursor[T]) current() iterators.Iterator[T] {
	if c.v.forward {
		return c.cur
	}
	return c.v.cur
}

func (c *splitOuterCursor[T]) Value() rangekit.Range[T] {
	if c.atEnd() {
		panic(iterators.ErrOutOfRange.F("dereferencing the end of a split range"))
	}
	in := splitInnerView[T]{v: c.v}
	if c.v.forward {
		in.cur = iterators.Clone(c.cur)
	}
	return in
}

func (c *splitOuterCursor[T]) atEnd() bool {
	return c.v.base.End().Equal(c.current()) && !c.trailingEmpty
}

// Next moves past the current segment and the pattern occurrence that closes it.
func (c *splitOuterCursor[T]) Next() {
	var (
		cur = c.current()
		end = c.v.base.End()
		pb  = c.v.pattern.Begin()
		pe  = c.v.pattern.End()
	)
	if end.Equal(cur) {
		c.trailingEmpty = false
		return
	}
	switch {
	case pe.Equal(pb):
		cur.Next()
	case c.v.tiny:
		delim := pb.Value()
		for !end.Equal(cur) && !c.v.eq(cur.Value(), delim) {
			cur.Next()
		}
		if !end.Equal(cur) {
			cur.Next()
			c.trailingEmpty = end.Equal(cur)
		}
	default:
		for {
			if after, ok := c.v.matchAt(cur); ok {
				c.cur = after
				c.trailingEmpty = end.Equal(after)
				return
			}
			if cur.Next(); end.Equal(cur) {
				return
			}
		}
	}
}

func (c *splitOuterCursor[T]) Clone() iterators.Cursor[rangekit.Range[T]] {
	return &splitOuterCursor[T]{v: c.v, cur: iterators.Clone(c.cur), trailingEmpty: c.trailingEmpty}
}

func (c *splitOuterCursor[T]) Equal(oth iterators.Cursor[rangekit.Range[T]]) bool {
	o, ok := oth.(*splitOuterCursor[T])
	return ok && c.trailingEmpty == o.trailingEmpty && equal(c.cur, o.cur)
}

type splitOuterSentinel[T any] struct{ v *lazySplitView[T] }

func (s splitOuterSentinel[T]) Equal(it iterators.Iterator[rangekit.Range[T]]) bool {
	c, ok := cursorOf[*splitOuterCursor[T]](it)
	return ok && c.atEnd()
}

// splitInnerView is a single segment.
// Its end is where the next pattern occurrence starts.
type splitInnerView[T any] struct {
	v   *lazySplitView[T]
	cur iterators.Iterator[T]
}

func (r splitInnerView[T]) Begin() iterators.Iterator[T] {
	c := &splitInnerCursor[T]{v: r.v}
	if r.v.forward {
		c.cur = iterators.Clone(r.cur)
	}
	return iterators.Promote[T](c, r.v.cat, false)
}

func (r splitInnerView[T]) End() iterators.Sentinel[T] { return splitInnerSentinel[T]{} }

func (r splitInnerView[T]) Category() iterators.Category { return r.v.cat }

type splitInnerCursor[T any] struct {
	v   *lazySplitView[T]
	cur iterators.Iterator[T]
	// incremented is set after the first step, an empty pattern ends the segment there
	incremented bool
}

func (c *splitInnerCursor[T]) current() iterators.Iterator[T] {
	if c.v.forward {
		return c.cur
	}
	return c.v.cur
}

func (c *splitInnerCursor[T]) Value() T { return c.current().Value() }

func (c *splitInnerCursor[T]) Next() {
	c.incremented = true
	if !c.v.forward && rangekit.Empty(c.v.pattern) {
		// the outer iterator steps over the element of a single pass base
		return
	}
	c.current().Next()
}

func (c *splitInnerCursor[T]) atEnd() bool {
	var (
		cur = c.current()
		pb  = c.v.pattern.Begin()
		pe  = c.v.pattern.End()
	)
	if c.v.base.End().Equal(cur) {
		return true
	}
	if pe.Equal(pb) {
		return c.incremented
	}
	if c.v.tiny {
		return c.v.eq(cur.Value(), pb.Value())
	}
	_, ok := c.v.matchAt(cur)
	return ok
}

func (c *splitInnerCursor[T]) Clone() iterators.Cursor[T] {
	return &splitInnerCursor[T]{v: c.v, cur: iterators.Clone(c.cur), incremented: c.incremented}
}

func (c *splitInnerCursor[T]) Equal(oth iterators.Cursor[T]) bool {
	o, ok := oth.(*splitInnerCursor[T])
	return ok && equal(c.cur, o.cur)
}

type splitInnerSentinel[T any] struct{}

func (splitInnerSentinel[T]) Equal(it iterators.Iterator[T]) bool {
	c, ok := cursorOf[*splitInnerCursor[T]](it)
	return ok && c.atEnd()
}
