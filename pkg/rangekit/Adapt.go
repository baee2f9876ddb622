package rangekit

import "go.llib.dev/rangekit/pkg/iterators"

// Caps describe the optional capabilities of an adapted range.
// A nil function means that the capability is absent.
type Caps[T any] struct {
	// Category is the category of the range's iterators.
	Category iterators.Category
	Size     func() int
	Const    func() Range[T]
	// Simple tells whether the range is a simple view.
	Simple bool
}

// Adapt wraps a range, so that its dynamic type carries exactly the capabilities described by caps.
//
// Adaptors work with any base range, thus their own capabilities depend on their bases.
// A type assertion on the result of Adapt tells truthfully whether the capability is there.
//
//	r := rangekit.Adapt(myView, rangekit.Caps[int]{Size: myView.size})
//	_, ok := r.(rangekit.Sized) // true
//	_, ok = r.(rangekit.ConstRange[int]) // false
func Adapt[T any](r Range[T], caps Caps[T]) Range[T] {
	a := adapted[T]{r: r, cat: caps.Category, simple: caps.Simple}
	switch {
	case caps.Size != nil && caps.Const != nil:
		return sizedConstAdapted[T]{adapted: a, size: caps.Size, c: caps.Const}
	case caps.Size != nil:
		return sizedAdapted[T]{adapted: a, size: caps.Size}
	case caps.Const != nil:
		return constAdapted[T]{adapted: a, c: caps.Const}
	default:
		return a
	}
}

// Unwrap returns the range that was passed to Adapt.
func Unwrap[T any](r Range[T]) (Range[T], bool) {
	a, ok := r.(interface{ unwrap() Range[T] })
	if !ok {
		return nil, false
	}
	return a.unwrap(), true
}

type adapted[T any] struct {
	r      Range[T]
	cat    iterators.Category
	simple bool
}

func (a adapted[T]) unwrap() Range[T] { return a.r }

func (a adapted[T]) Begin() iterators.Iterator[T] { return a.r.Begin() }

func (a adapted[T]) End() iterators.Sentinel[T] { return a.r.End() }

func (a adapted[T]) Simple() bool { return a.simple }

func (a adapted[T]) Category() iterators.Category {
	if a.cat != 0 {
		return a.cat
	}
	return CategoryOf(a.r)
}

type sizedAdapted[T any] struct {
	adapted[T]
	size func() int
}

func (a sizedAdapted[T]) Size() int { return a.size() }

type constAdapted[T any] struct {
	adapted[T]
	c func() Range[T]
}

func (a constAdapted[T]) Const() Range[T] { return a.c() }

type sizedConstAdapted[T any] struct {
	adapted[T]
	size func() int
	c    func() Range[T]
}

func (a sizedConstAdapted[T]) Size() int { return a.size() }

func (a sizedConstAdapted[T]) Const() Range[T] { return a.c() }
