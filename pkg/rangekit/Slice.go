package rangekit

import "go.llib.dev/rangekit/pkg/iterators"

// Slice is a contiguous view over the elements of a slice.
// Elements can be assigned through its iterators.
//
// The view shares the backing array with vs,
// but appending to vs after the view was made is not visible to the view.
// Use Ref for that.
func Slice[T any](vs []T) SliceView[T] {
	return SliceView[T]{vs: vs}
}

type SliceView[T any] struct{ vs []T }

func (v SliceView[T]) Begin() iterators.Iterator[T] { return &SliceIter[T]{vs: v.vs} }

func (v SliceView[T]) End() iterators.Sentinel[T] { return &SliceIter[T]{vs: v.vs, i: len(v.vs)} }

func (v SliceView[T]) Size() int { return len(v.vs) }

func (v SliceView[T]) Category() iterators.Category { return iterators.Contiguous }

func (v SliceView[T]) Const() Range[T] { return v }

func (v SliceView[T]) Simple() bool { return true }

// Ref is a view over the slice that the pointer points to.
// Every Begin and End reads the current value of *p.
func Ref[T any](p *[]T) RefView[T] {
	return RefView[T]{p: p}
}

type RefView[T any] struct{ p *[]T }

func (v RefView[T]) Begin() iterators.Iterator[T] { return Slice(*v.p).Begin() }

func (v RefView[T]) End() iterators.Sentinel[T] { return Slice(*v.p).End() }

func (v RefView[T]) Size() int { return len(*v.p) }

func (v RefView[T]) Category() iterators.Category { return iterators.Contiguous }

func (v RefView[T]) Const() Range[T] { return v }

func (v RefView[T]) Simple() bool { return true }

// EmptyOf returns a range without elements.
func EmptyOf[T any]() SliceView[T] { return Slice[T](nil) }

// Single returns a range with exactly one element.
func Single[T any](v T) SliceView[T] { return Slice([]T{v}) }

// SliceIter is the iterator of a slice.
type SliceIter[T any] struct {
	vs []T
	i  int
}

func (it *SliceIter[T]) Value() T { return it.vs[it.i] }

func (it *SliceIter[T]) Pointer() *T { return &it.vs[it.i] }

func (it *SliceIter[T]) Set(v T) { it.vs[it.i] = v }

func (it *SliceIter[T]) Next() { it.i++ }

func (it *SliceIter[T]) Prev() { it.i-- }

func (it *SliceIter[T]) Advance(n int) { it.i += n }

func (it *SliceIter[T]) At(n int) T { return it.vs[it.i+n] }

func (it *SliceIter[T]) Clone() iterators.Iterator[T] {
	return &SliceIter[T]{vs: it.vs, i: it.i}
}

func (it *SliceIter[T]) Equal(oth iterators.Iterator[T]) bool {
	o, ok := oth.(*SliceIter[T])
	return ok && it.i == o.i
}

func (it *SliceIter[T]) Distance(from iterators.Iterator[T]) int {
	o, ok := from.(*SliceIter[T])
	if !ok {
		panic(iterators.ErrCategory.F("%T is not an iterator of the same range", from))
	}
	return it.i - o.i
}

// Index returns the position of the iterator within the slice.
func (it *SliceIter[T]) Index() int { return it.i }

func (it *SliceIter[T]) Category() iterators.Category { return iterators.Contiguous }
