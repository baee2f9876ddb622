// Package rangekitcontract holds the behavioural contracts every range must satisfy for its category.
//
//	testcase.RunSuite(t,
//		rangekitcontract.Range(mk),
//		rangekitcontract.BidirectionalRange(mk),
//	)
package rangekitcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Subject is a freshly made range, and the elements it should yield.
type Subject[T any] struct {
	Range    rangekit.Range[T]
	Expected []T
}

func subjectName[T any](kind string) string {
	return fmt.Sprintf("%s[%s]", kind, reflectkit.TypeOf[T]().String())
}

func equalElements[T any](tb testing.TB, exp, got []T) {
	tb.Helper()
	if len(exp) == 0 {
		assert.Empty(tb, got)
		return
	}
	assert.Equal(tb, exp, got)
}

// Range is the contract of any range, including single pass ones.
func Range[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("iterating from Begin to End yields every element in order", func(t *testcase.T) {
		sub := subject.Get(t)
		equalElements(t, sub.Expected, rangekit.Collect(sub.Range))
	})

	s.Test("Empty tells if Begin is already at End", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Expected) == 0, rangekit.Empty(sub.Range))
	})

	s.Test("the declared category matches the iterator", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, rangekit.CategoryOf(sub.Range), iterators.CategoryOf(sub.Range.Begin()))
	})

	return s.AsSuite(subjectName[T]("Range"))
}

// ForwardRange is the contract of multi pass ranges.
func ForwardRange[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("category is at least forward", func(t *testcase.T) {
		cat := rangekit.CategoryOf(subject.Get(t).Range)
		assert.True(t, cat.Satisfies(iterators.Forward), assert.Message(cat.String()))
	})

	s.Test("the range can be iterated many times", func(t *testcase.T) {
		sub := subject.Get(t)
		equalElements(t, sub.Expected, rangekit.Collect(sub.Range))
		equalElements(t, sub.Expected, rangekit.Collect(sub.Range))
	})

	s.Test("copies of an iterator move independently", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Expected) == 0 {
			t.Skip("empty range")
		}
		it := sub.Range.Begin().(iterators.ForwardIterator[T])
		cp := it.Clone().(iterators.ForwardIterator[T])
		it.Next()
		assert.Equal(t, sub.Expected[0], cp.Value())
		assert.False(t, it.Equal(cp))
		cp.Next()
		assert.True(t, it.Equal(cp))
		assert.True(t, cp.Equal(it))
	})

	s.Test("the end of the range is reached after every element", func(t *testcase.T) {
		sub := subject.Get(t)
		it, end := sub.Range.Begin(), sub.Range.End()
		for range sub.Expected {
			assert.False(t, end.Equal(it))
			it.Next()
		}
		assert.True(t, end.Equal(it))
		if e, ok := end.(iterators.ForwardIterator[T]); ok {
			assert.True(t, e.Equal(it), "a common end position must equal the iterator that reached it")
		}
	})

	return s.AsSuite(subjectName[T]("ForwardRange"))
}

// BidirectionalRange is the contract of ranges that can be walked backwards.
func BidirectionalRange[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("stepping forward then backward returns to the same position", func(t *testcase.T) {
		sub := subject.Get(t)
		it := sub.Range.Begin().(iterators.BidirectionalIterator[T])
		for i := range sub.Expected {
			before := it.Clone()
			it.Next()
			it.Prev()
			assert.True(t, it.Equal(before))
			assert.Equal(t, sub.Expected[i], it.Value())
			it.Next()
		}
	})

	s.Test("a common range can be walked backwards from its end", func(t *testcase.T) {
		sub := subject.Get(t)
		if !rangekit.IsCommon(sub.Range) {
			t.Skip("not a common range")
		}
		var (
			begin = sub.Range.Begin()
			it    = sub.Range.End().(iterators.BidirectionalIterator[T])
			got   []T
		)
		for !it.Equal(begin) {
			it.Prev()
			got = append(got, it.Value())
		}
		var exp []T
		for i := len(sub.Expected) - 1; 0 <= i; i-- {
			exp = append(exp, sub.Expected[i])
		}
		equalElements(t, exp, got)
	})

	return s.AsSuite(subjectName[T]("BidirectionalRange"))
}

// RandomAccessRange is the contract of ranges that can jump between positions in constant time.
func RandomAccessRange[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("jumping n positions is the same as stepping n times", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(0, len(sub.Expected))

		begin := sub.Range.Begin().(iterators.RandomAccessIterator[T])
		jumped := begin.Clone().(iterators.RandomAccessIterator[T])
		jumped.Advance(n)

		stepped := begin.Clone()
		for i := 0; i < n; i++ {
			stepped.Next()
		}

		assert.True(t, jumped.Equal(stepped))
		assert.Equal(t, n, jumped.Distance(begin))
		assert.Equal(t, -n, begin.Distance(jumped))
		if n < len(sub.Expected) {
			assert.Equal(t, sub.Expected[n], jumped.Value())
			assert.Equal(t, sub.Expected[n], begin.At(n))
		}
	})

	s.Test("jumping backwards undoes jumping forward", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(0, len(sub.Expected))
		it := sub.Range.Begin().(iterators.RandomAccessIterator[T])
		begin := it.Clone()
		it.Advance(n)
		it.Advance(-n)
		assert.True(t, it.Equal(begin))
	})

	s.Test("the sized end tells the remaining distance", func(t *testcase.T) {
		sub := subject.Get(t)
		ss, ok := sub.Range.End().(iterators.SizedSentinel[T])
		if !ok {
			t.Skip("not a sized sentinel")
		}
		n := t.Random.IntBetween(0, len(sub.Expected))
		it := sub.Range.Begin()
		iterators.Advance(it, n)
		assert.Equal(t, len(sub.Expected)-n, ss.Distance(it))
	})

	return s.AsSuite(subjectName[T]("RandomAccessRange"))
}

// SizedRange is the contract of ranges that know their length.
func SizedRange[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("size equals the number of elements", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, rangekit.IsSized(sub.Range))
		assert.Equal(t, len(sub.Expected), rangekit.Size(sub.Range))
	})

	return s.AsSuite(subjectName[T]("SizedRange"))
}

// ConstRange is the contract of ranges which are iterable through a read-only handle.
func ConstRange[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("the const handle yields the same elements", func(t *testcase.T) {
		sub := subject.Get(t)
		c, ok := rangekit.Const(sub.Range)
		assert.True(t, ok)
		equalElements(t, sub.Expected, rangekit.Collect(c))
		equalElements(t, sub.Expected, rangekit.Collect(sub.Range))
	})

	s.Test("the const handle has the same category", func(t *testcase.T) {
		sub := subject.Get(t)
		c, _ := rangekit.Const(sub.Range)
		assert.Equal(t, rangekit.CategoryOf(sub.Range), rangekit.CategoryOf(c))
	})

	return s.AsSuite(subjectName[T]("ConstRange"))
}

// Contracts returns every contract that applies to the range made by mk, judged by its capabilities.
func Contracts[T any](mk contract.Make[Subject[T]], sample rangekit.Range[T]) []testcase.Suite {
	cs := []testcase.Suite{Range(mk)}
	cat := rangekit.CategoryOf(sample)
	if cat.Satisfies(iterators.Forward) {
		cs = append(cs, ForwardRange(mk))
	}
	if cat.Satisfies(iterators.Bidirectional) {
		cs = append(cs, BidirectionalRange(mk))
	}
	if cat.Satisfies(iterators.RandomAccess) {
		cs = append(cs, RandomAccessRange(mk))
	}
	if rangekit.IsSized(sample) {
		cs = append(cs, SizedRange(mk))
	}
	if rangekit.IsConstIterable(sample) {
		cs = append(cs, ConstRange(mk))
	}
	return cs
}
