package views

import (
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

type JoinOption interface {
	option.Option[JoinConfig]
}

// JoinConfig declares the capabilities of the inner ranges.
//
// The inner ranges are only known when the outer range is dereferenced,
// so their capabilities can't be inspected when the join is made.
// Without a declaration, the inner ranges are treated as single pass ranges.
type JoinConfig struct {
	// InnerCategory is the iterator category that every inner range has at least.
	InnerCategory iterators.Category
	// InnerCommon tells that the End of every inner range is an iterator.
	InnerCommon bool
	// InnerPointer tells that the iterators of every inner range implement iterators.Pointer.
	InnerPointer bool
}

func (c *JoinConfig) Init() {
	c.InnerCategory = iterators.Input
}

func (c JoinConfig) Configure(t *JoinConfig) {
	if c.InnerCategory != 0 {
		t.InnerCategory = c.InnerCategory
	}
	t.InnerCommon = t.InnerCommon || c.InnerCommon
	t.InnerPointer = t.InnerPointer || c.InnerPointer
}

// JoinInnerCategory declares the category of the inner ranges.
func JoinInnerCategory(cat iterators.Category, common bool) JoinOption {
	return option.Func[JoinConfig](func(c *JoinConfig) {
		c.InnerCategory = cat
		c.InnerCommon = common
	})
}

// JoinInnerPointer declares that the elements of the inner ranges are addressable.
func JoinInnerPointer() JoinOption {
	return option.Func[JoinConfig](func(c *JoinConfig) {
		c.InnerPointer = true
	})
}

// Join flattens a range of ranges.
// Empty inner ranges are skipped.
//
//	Join([[1 2] [] [3]]) // 1 2 3
//
// The joined range is forward if both the outer and the inner ranges are forward ranges,
// and bidirectional if both are bidirectional and the inner ranges are common.
// Its iterators implement iterators.Pointer when the inner iterators do.
func Join[T any](outer rangekit.Range[rangekit.Range[T]], opts ...JoinOption) rangekit.Range[T] {
	conf := option.ToConfig[JoinConfig](opts)
	v := joinView[T]{outer: outer, conf: conf}
	var (
		ocat = rangekit.CategoryOf(outer)
		icat = conf.InnerCategory
	)
	switch {
	case ocat.Satisfies(iterators.Bidirectional) && icat.Satisfies(iterators.Bidirectional) && conf.InnerCommon:
		v.cat = iterators.Bidirectional
	case ocat.Satisfies(iterators.Forward) && icat.Satisfies(iterators.Forward):
		v.cat = iterators.Forward
	default:
		v.cat = iterators.Input
	}
	v.common = v.cat.Satisfies(iterators.Forward) && conf.InnerCommon && rangekit.IsCommon(outer)

	caps := rangekit.Caps[T]{Category: v.cat}
	if c := constOf(outer); c != nil {
		caps.Const = func() rangekit.Range[T] { return Join(c(), conf) }
		caps.Simple = rangekit.IsSimple(outer)
	}
	return rangekit.Adapt[T](v, caps)
}

// JoinSlices flattens a range of slices.
func JoinSlices[T any](outer rangekit.Range[[]T]) rangekit.Range[T] {
	inner := Transform(outer, func(vs []T) rangekit.Range[T] { return rangekit.Slice(vs) })
	return Join(inner, JoinInnerCategory(iterators.Contiguous, true), JoinInnerPointer())
}

type joinView[T any] struct {
	outer  rangekit.Range[rangekit.Range[T]]
	conf   JoinConfig
	cat    iterators.Category
	common bool
}

func (v joinView[T]) Base() rangekit.Range[rangekit.Range[T]] { return v.outer }

func (v joinView[T]) Begin() iterators.Iterator[T] {
	c := &joinCursor[T]{v: v, outer: v.outer.Begin()}
	c.satisfy()
	return iterators.Promote[T](c, v.cat, v.conf.InnerPointer)
}

func (v joinView[T]) End() iterators.Sentinel[T] {
	if !v.common {
		return joinSentinel[T]{end: v.outer.End()}
	}
	c := &joinCursor[T]{v: v, outer: v.outer.End().(iterators.Iterator[rangekit.Range[T]])}
	return iterators.Promote[T](c, v.cat, v.conf.InnerPointer).(iterators.Sentinel[T])
}

type joinCursor[T any] struct {
	v     joinView[T]
	outer iterators.Iterator[rangekit.Range[T]]
	// inner is the current inner range, nil when outer is at its end
	inner rangekit.Range[T]
	it    iterators.Iterator[T]
}

// satisfy moves the outer iterator to the first inner range which is not empty.
func (c *joinCursor[T]) satisfy() {
	end := c.v.outer.End()
	for ; !end.Equal(c.outer); c.outer.Next() {
		c.inner = c.outer.Value()
		c.it = c.inner.Begin()
		if !c.inner.End().Equal(c.it) {
			return
		}
	}
	c.inner, c.it = nil, nil
}

func (c *joinCursor[T]) Value() T {
	if c.it == nil {
		panic(iterators.ErrOutOfRange.F("dereferencing the end of a joined range"))
	}
	return c.it.Value()
}

func (c *joinCursor[T]) Pointer() *T {
	p, ok := c.it.(iterators.Pointer[T])
	if !ok {
		panic(iterators.ErrCategory.F("%T doesn't expose element pointers", c.it))
	}
	return p.Pointer()
}

func (c *joinCursor[T]) Next() {
	c.it.Next()
	if c.inner.End().Equal(c.it) {
		c.outer.Next()
		c.satisfy()
	}
}

func (c *joinCursor[T]) Prev() {
	if c.inner == nil {
		c.outer.(iterators.BidirectionalIterator[rangekit.Range[T]]).Prev()
		c.enterFromEnd()
	}
	for equal(c.it, c.inner.Begin()) {
		c.outer.(iterators.BidirectionalIterator[rangekit.Range[T]]).Prev()
		c.enterFromEnd()
	}
	it, ok := c.it.(iterators.BidirectionalIterator[T])
	if !ok {
		panic(iterators.ErrCategory.F("inner iterator %T is not bidirectional", c.it))
	}
	it.Prev()
}

func (c *joinCursor[T]) enterFromEnd() {
	c.inner = c.outer.Value()
	end, ok := c.inner.End().(iterators.Iterator[T])
	if !ok {
		panic(iterators.ErrCategory.F("inner range %T is not a common range", c.inner))
	}
	c.it = end
}

func (c *joinCursor[T]) Clone() iterators.Cursor[T] {
	cp := &joinCursor[T]{v: c.v, outer: iterators.Clone(c.outer), inner: c.inner}
	if c.it != nil {
		cp.it = iterators.Clone(c.it)
	}
	return cp
}

func (c *joinCursor[T]) Equal(oth iterators.Cursor[T]) bool {
	o, ok := oth.(*joinCursor[T])
	if !ok || !equal(c.outer, o.outer) {
		return false
	}
	if c.it == nil || o.it == nil {
		return c.it == nil && o.it == nil
	}
	return equal(c.it, o.it)
}

type joinSentinel[T any] struct {
	end iterators.Sentinel[rangekit.Range[T]]
}

func (s joinSentinel[T]) Equal(it iterators.Iterator[T]) bool {
	c, ok := cursorOf[*joinCursor[T]](it)
	return ok && s.end.Equal(c.outer)
}
