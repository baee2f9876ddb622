package datastruct_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/rangekit/pkg/datastruct"
	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/rangekit/rangekitcontract"
)

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	ll := let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
		return &datastruct.LinkedList[int]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		var ll datastruct.LinkedList[int]

		ll.Append(1, 2, 3)
		ll.Prepend(-1, 0)
		assert.Equal(t, []int{-1, 0, 1, 2, 3}, ll.ToSlice())

		last, ok := ll.Pop()
		assert.True(t, ok)
		assert.Equal(t, 3, last)

		first, ok := ll.Shift()
		assert.True(t, ok)
		assert.Equal(t, -1, first)

		assert.Equal(t, 3, ll.Length())
		assert.Equal(t, []int{0, 1, 2}, rangekit.Collect[int](&ll))
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		var (
			existing = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(0, 5), t.Random.Int)
			})
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		s.Before(func(t *testcase.T) {
			ll.Get(t).Append(existing.Get(t)...)
		})
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Append(newVS.Get(t)...)
		})

		s.Then("values are added to the end", func(t *testcase.T) {
			act(t)

			assert.Equal(t, slicekit.Merge(existing.Get(t), newVS.Get(t)), ll.Get(t).ToSlice())
			assert.Equal(t, len(existing.Get(t))+len(newVS.Get(t)), ll.Get(t).Length())
		})

		s.When("no new value is provided", func(s *testcase.Spec) {
			newVS.LetValue(s, nil)

			s.Then("length stays the same", func(t *testcase.T) {
				act(t)
				assert.Equal(t, len(existing.Get(t)), ll.Get(t).Length())
			})
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		var (
			existing = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(0, 5), t.Random.Int)
			})
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		s.Before(func(t *testcase.T) {
			ll.Get(t).Append(existing.Get(t)...)
		})
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Prepend(newVS.Get(t)...)
		})

		s.Then("values are added to the beginning in their original order", func(t *testcase.T) {
			act(t)

			assert.Equal(t, slicekit.Merge(newVS.Get(t), existing.Get(t)), ll.Get(t).ToSlice())
		})
	})

	s.Describe("#Pop and #Shift", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(2, 5), t.Random.Int, random.UniqueValues)
		})
		s.Before(func(t *testcase.T) {
			ll.Get(t).Append(values.Get(t)...)
		})

		s.Then("Pop removes the last element", func(t *testcase.T) {
			got, ok := ll.Get(t).Pop()
			assert.True(t, ok)
			exp, _ := slicekit.Last(values.Get(t))
			assert.Equal(t, exp, got)
			assert.Equal(t, values.Get(t)[:len(values.Get(t))-1], ll.Get(t).ToSlice())
		})

		s.Then("Shift removes the first element", func(t *testcase.T) {
			got, ok := ll.Get(t).Shift()
			assert.True(t, ok)
			assert.Equal(t, values.Get(t)[0], got)
			assert.Equal(t, values.Get(t)[1:], ll.Get(t).ToSlice())
		})

		s.Then("draining the list leaves it empty", func(t *testcase.T) {
			for range values.Get(t) {
				_, ok := ll.Get(t).Pop()
				assert.True(t, ok)
			}
			_, ok := ll.Get(t).Pop()
			assert.False(t, ok)
			_, ok = ll.Get(t).Shift()
			assert.False(t, ok)
			assert.Equal(t, 0, ll.Get(t).Length())
			assert.True(t, rangekit.Empty[int](ll.Get(t)))
		})
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(2, 5), t.Random.Int)
		})
		s.Before(func(t *testcase.T) {
			ll.Get(t).Append(values.Get(t)...)
		})

		s.Then("an existing index is found", func(t *testcase.T) {
			i := t.Random.IntN(len(values.Get(t)))
			got, ok := ll.Get(t).Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, values.Get(t)[i], got)
		})

		s.Then("out of range index is not found", func(t *testcase.T) {
			_, ok := ll.Get(t).Lookup(t.Random.IntBetween(-100, -1))
			assert.False(t, ok)
			_, ok = ll.Get(t).Lookup(len(values.Get(t)))
			assert.False(t, ok)
		})
	})

	s.Describe("#Insert and #Erase", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			ll.Get(t).Append(1, 2, 3)
		})
		pos := func(t *testcase.T, i int) *datastruct.ListIter[int] {
			return iterators.Next(ll.Get(t).Begin(), i).(*datastruct.ListIter[int])
		}

		s.Then("Insert puts the value before the position", func(t *testcase.T) {
			it := ll.Get(t).Insert(pos(t, 1), 42)
			assert.Equal(t, 42, it.Value())
			assert.Equal(t, []int{1, 42, 2, 3}, ll.Get(t).ToSlice())
			assert.Equal(t, 4, rangekit.Size[int](ll.Get(t)))
		})

		s.Then("Insert at the end appends", func(t *testcase.T) {
			ll.Get(t).Insert(ll.Get(t).End().(*datastruct.ListIter[int]), 4)
			assert.Equal(t, []int{1, 2, 3, 4}, ll.Get(t).ToSlice())
		})

		s.Then("Erase returns the position that followed the element", func(t *testcase.T) {
			next := ll.Get(t).Erase(pos(t, 1))
			assert.Equal(t, 3, next.Value())
			assert.Equal(t, []int{1, 3}, ll.Get(t).ToSlice())
		})

		s.Then("the positions of the other elements stay valid", func(t *testcase.T) {
			first, last := pos(t, 0), pos(t, 2)
			ll.Get(t).Erase(pos(t, 1))
			first.Next()
			assert.True(t, first.Equal(last))
			last.Prev()
			assert.Equal(t, 1, last.Value())
		})

		s.Then("erasing the end panics", func(t *testcase.T) {
			out := assert.Panic(t, func() { ll.Get(t).Erase(ll.Get(t).End().(*datastruct.ListIter[int])) })
			assert.ErrorIs(t, out.(error), iterators.ErrOutOfRange)
		})

		s.Then("the position of another list is rejected", func(t *testcase.T) {
			var oth datastruct.LinkedList[int]
			oth.Append(1)
			out := assert.Panic(t, func() { ll.Get(t).Erase(oth.Begin().(*datastruct.ListIter[int])) })
			assert.Equal[any](t, datastruct.ErrForeignPosition, out)
			assert.Equal(t, 1, oth.Length())
		})
	})

	s.Describe("as a range", func(s *testcase.Spec) {
		s.Test("it is a sized common bidirectional range", func(t *testcase.T) {
			l := ll.Get(t)
			assert.Equal(t, iterators.Bidirectional, rangekit.CategoryOf[int](l))
			assert.True(t, rangekit.IsCommon[int](l))
			assert.True(t, rangekit.IsSized[int](l))
		})

		s.Test("const iterable but not simple", func(t *testcase.T) {
			l := ll.Get(t)
			assert.True(t, rangekit.IsConstIterable[int](l))
			assert.False(t, rangekit.IsSimple[int](l))

			c, _ := rangekit.Const[int](l)
			_, writable := c.Begin().(iterators.Writable[int])
			assert.False(t, writable)
		})

		s.Test("elements can be assigned through the iterator", func(t *testcase.T) {
			l := ll.Get(t)
			l.Append(1, 2, 3)
			it := l.End().(iterators.BidirectionalIterator[int])
			it.Prev()
			it.(iterators.Writable[int]).Set(42)
			assert.Equal(t, []int{1, 2, 42}, l.ToSlice())
		})

		s.Test("dereferencing the end panics", func(t *testcase.T) {
			assert.Panic(t, func() { ll.Get(t).Begin().Value() })
		})
	})
}

func TestLinkedList_rangeContract(t *testing.T) {
	mk := func(tb testing.TB) rangekitcontract.Subject[int] {
		vs := random.Slice(random.New(random.CryptoSeed{}).IntBetween(0, 7), random.New(random.CryptoSeed{}).Int)
		var l datastruct.LinkedList[int]
		l.Append(vs...)
		return rangekitcontract.Subject[int]{Range: &l, Expected: vs}
	}
	testcase.RunSuite(t, rangekitcontract.Contracts(mk, &datastruct.LinkedList[int]{})...)
}
