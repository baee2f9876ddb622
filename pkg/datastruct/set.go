package datastruct

import (
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// OrderedSet keeps the first occurrence of each element in insertion order.
//
// A *OrderedSet is a sized random access range.
// Its iterators are read-only, as assigning through them could break the uniqueness of the elements.
type OrderedSet[T comparable] struct {
	index map[T]int
	vs    []T
}

func (s *OrderedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *OrderedSet[T]) add(v T) {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = len(s.vs)
	s.vs = append(s.vs, v)
}

func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// IndexOf returns the insertion position of v.
func (s *OrderedSet[T]) IndexOf(v T) (int, bool) {
	i, ok := s.index[v]
	return i, ok
}

func (s *OrderedSet[T]) ToSlice() []T {
	return append([]T(nil), s.vs...)
}

func (s *OrderedSet[T]) Len() int { return len(s.vs) }

func (s *OrderedSet[T]) Begin() iterators.Iterator[T] {
	return iterators.Promote[T](&setCursor[T]{set: s}, iterators.RandomAccess, false)
}

func (s *OrderedSet[T]) End() iterators.Sentinel[T] {
	return iterators.Promote[T](&setCursor[T]{set: s, i: len(s.vs)}, iterators.RandomAccess, false).(iterators.Sentinel[T])
}

func (s *OrderedSet[T]) Size() int { return len(s.vs) }

func (s *OrderedSet[T]) Category() iterators.Category { return iterators.RandomAccess }

func (s *OrderedSet[T]) Const() rangekit.Range[T] { return s }

// Inserter is an output iterator which appends every assigned element to the set.
func (s *OrderedSet[T]) Inserter() iterators.Output[T] { return setInserter[T]{set: s} }

type setInserter[T comparable] struct{ set *OrderedSet[T] }

func (i setInserter[T]) Set(v T) { i.set.add(v) }

func (i setInserter[T]) Next() {}

type setCursor[T comparable] struct {
	set *OrderedSet[T]
	i   int
}

func (c *setCursor[T]) Value() T {
	if c.i < 0 || len(c.set.vs) <= c.i {
		panic(iterators.ErrOutOfRange.F("index %d of a set with %d elements", c.i, len(c.set.vs)))
	}
	return c.set.vs[c.i]
}

func (c *setCursor[T]) Next() { c.i++ }

func (c *setCursor[T]) Prev() { c.i-- }

func (c *setCursor[T]) Advance(n int) { c.i += n }

func (c *setCursor[T]) Distance(from iterators.Cursor[T]) int {
	return c.i - from.(*setCursor[T]).i
}

func (c *setCursor[T]) Clone() iterators.Cursor[T] {
	return &setCursor[T]{set: c.set, i: c.i}
}

func (c *setCursor[T]) Equal(oth iterators.Cursor[T]) bool {
	o, ok := oth.(*setCursor[T])
	return ok && o.set == c.set && o.i == c.i
}
