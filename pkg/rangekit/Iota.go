package rangekit

import (
	"golang.org/x/exp/constraints"

	"go.llib.dev/rangekit/pkg/iterators"
)

// Iota is the range of the consecutive numbers in [from, to).
// When to is smaller than from, the range is empty.
func Iota[N constraints.Integer](from, to N) IotaView[N] {
	if to < from {
		to = from
	}
	return IotaView[N]{from: from, to: to}
}

type IotaView[N constraints.Integer] struct{ from, to N }

func (v IotaView[N]) Begin() iterators.Iterator[N] { return &iotaIter[N]{v: v.from} }

func (v IotaView[N]) End() iterators.Sentinel[N] { return &iotaIter[N]{v: v.to} }

func (v IotaView[N]) Size() int { return int(v.to - v.from) }

func (v IotaView[N]) Category() iterators.Category { return iterators.RandomAccess }

func (v IotaView[N]) Const() Range[N] { return v }

func (v IotaView[N]) Simple() bool { return true }

// IotaFrom is the unbounded range of consecutive numbers starting with from.
// Its end is never reached.
func IotaFrom[N constraints.Integer](from N) IotaFromView[N] {
	return IotaFromView[N]{from: from}
}

type IotaFromView[N constraints.Integer] struct{ from N }

func (v IotaFromView[N]) Begin() iterators.Iterator[N] { return &iotaIter[N]{v: v.from} }

func (v IotaFromView[N]) End() iterators.Sentinel[N] { return Unreachable[N]{} }

func (v IotaFromView[N]) Category() iterators.Category { return iterators.RandomAccess }

func (v IotaFromView[N]) Const() Range[N] { return v }

func (v IotaFromView[N]) Simple() bool { return true }

// Unreachable is a sentinel that no iterator ever reaches.
type Unreachable[T any] struct{}

func (Unreachable[T]) Equal(iterators.Iterator[T]) bool { return false }

type iotaIter[N constraints.Integer] struct{ v N }

func (it *iotaIter[N]) Value() N { return it.v }

func (it *iotaIter[N]) Next() { it.v++ }

func (it *iotaIter[N]) Prev() { it.v-- }

func (it *iotaIter[N]) Advance(n int) { it.v = N(int(it.v) + n) }

func (it *iotaIter[N]) At(n int) N { return N(int(it.v) + n) }

func (it *iotaIter[N]) Clone() iterators.Iterator[N] { return &iotaIter[N]{v: it.v} }

func (it *iotaIter[N]) Equal(oth iterators.Iterator[N]) bool {
	o, ok := oth.(*iotaIter[N])
	return ok && it.v == o.v
}

func (it *iotaIter[N]) Distance(from iterators.Iterator[N]) int {
	o, ok := from.(*iotaIter[N])
	if !ok {
		panic(iterators.ErrCategory.F("%T is not an iota iterator", from))
	}
	return int(it.v) - int(o.v)
}
