package rangekit_test

import (
	"errors"
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/rangekit/rangekitcontract"
)

func ExampleSlice() {
	r := rangekit.Slice([]int{1, 2, 3})
	for v := range rangekit.Seq[int](r) {
		_ = v // 1, 2, 3
	}
}

func TestSlice(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	vs := random.Slice(rnd.IntBetween(0, 7), rnd.Int)
	mk := func(tb testing.TB) rangekitcontract.Subject[int] {
		return rangekitcontract.Subject[int]{
			Range:    rangekit.Slice(slices.Clone(vs)),
			Expected: vs,
		}
	}
	testcase.RunSuite(t, rangekitcontract.Contracts(mk, rangekit.Slice(vs))...)

	s := testcase.NewSpec(t)

	s.Test("contiguous and simple", func(t *testcase.T) {
		r := rangekit.Slice([]int{1, 2, 3})
		assert.Must(t).Equal(iterators.Contiguous, rangekit.CategoryOf[int](r))
		assert.Must(t).True(rangekit.IsCommon[int](r))
		assert.Must(t).True(rangekit.IsSimple[int](r))
		assert.Must(t).Equal(3, rangekit.Size[int](r))
	})

	s.Test("elements can be assigned through the iterator", func(t *testcase.T) {
		vs := []int{1, 2, 3}
		it := rangekit.Slice(vs).Begin()
		it.Next()
		it.(iterators.Writable[int]).Set(42)
		assert.Must(t).Equal([]int{1, 42, 3}, vs)
		*it.(iterators.Pointer[int]).Pointer() = 24
		assert.Must(t).Equal([]int{1, 24, 3}, vs)
	})

	s.Test("iterators of different ranges are not equal", func(t *testcase.T) {
		it := rangekit.Slice([]int{1}).Begin().(iterators.ForwardIterator[int])
		assert.Must(t).False(it.Equal(rangekit.Iota(0, 3).Begin()))
	})
}

func TestRef(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("later appends are visible", func(t *testcase.T) {
		var vs []string
		r := rangekit.Ref(&vs)
		assert.Must(t).True(rangekit.Empty[string](r))
		vs = append(vs, "foo", "bar")
		assert.Must(t).Equal(2, r.Size())
		assert.Must(t).Equal([]string{"foo", "bar"}, rangekit.Collect[string](r))
	})
}

func TestIota(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	from := rnd.IntBetween(-10, 10)
	to := from + rnd.IntBetween(0, 10)
	var exp []int
	for i := from; i < to; i++ {
		exp = append(exp, i)
	}
	mk := func(tb testing.TB) rangekitcontract.Subject[int] {
		return rangekitcontract.Subject[int]{Range: rangekit.Iota(from, to), Expected: exp}
	}
	testcase.RunSuite(t, rangekitcontract.Contracts(mk, rangekit.Iota(from, to))...)

	s := testcase.NewSpec(t)

	s.Test("inverted bounds make an empty range", func(t *testcase.T) {
		assert.Must(t).True(rangekit.Empty[int](rangekit.Iota(5, 2)))
	})

	s.Test("unbounded iota never ends", func(t *testcase.T) {
		r := rangekit.IotaFrom[uint8](250)
		assert.Must(t).False(rangekit.IsCommon[uint8](r))
		assert.Must(t).False(rangekit.IsSized[uint8](r))
		it, end := r.Begin(), r.End()
		for i := 0; i < 3; i++ {
			assert.Must(t).False(end.Equal(it))
			it.Next()
		}
		assert.Must(t).Equal(uint8(253), it.Value())
	})
}

func TestFromSeq(t *testing.T) {
	s := testcase.NewSpec(t)

	seq := func(vs ...string) func(func(string) bool) {
		return func(yield func(string) bool) {
			for _, v := range vs {
				if !yield(v) {
					return
				}
			}
		}
	}

	rangekitcontract.Range[string](func(tb testing.TB) rangekitcontract.Subject[string] {
		vs := random.Slice(3, func() string { return random.New(random.CryptoSeed{}).UUID() })
		return rangekitcontract.Subject[string]{Range: rangekit.FromSeq(seq(vs...)), Expected: vs}
	}).Spec(s)

	s.Test("single pass input range", func(t *testcase.T) {
		r := rangekit.FromSeq(seq("a", "b"))
		assert.Must(t).Equal(iterators.Input, rangekit.CategoryOf[string](r))
		assert.Must(t).False(rangekit.IsConstIterable[string](r))
		assert.Must(t).False(rangekit.IsSimple[string](r))

		assert.Must(t).Equal([]string{"a", "b"}, rangekit.Collect[string](r))
		assert.Must(t).True(rangekit.Empty[string](r), "a consumed sequence stays at its end")
	})

	s.Test("the sequence is pulled lazily", func(t *testcase.T) {
		var pulled int
		r := rangekit.FromSeq(func(yield func(int) bool) {
			for i := 0; ; i++ {
				pulled++
				if !yield(i) {
					return
				}
			}
		})
		defer r.Close()
		assert.Must(t).Equal(0, pulled)
		it := r.Begin()
		assert.Must(t).Equal(0, it.Value())
		it.Next()
		assert.Must(t).Equal(1, it.Value())
		assert.Must(t).Equal(2, pulled)
		assert.Must(t).NoError(r.Close())
		assert.Must(t).True(rangekit.Empty[int](r))
	})

	s.Test("closing midway moves the range to its end", func(t *testcase.T) {
		r := rangekit.FromSeq(seq("a", "b", "c"))
		it := r.Begin()
		assert.Must(t).Equal("a", it.Value())
		assert.Must(t).NoError(r.Close())

		assert.Must(t).True(r.End().Equal(it))
		assert.Must(t).True(rangekit.Empty[string](r))
		out := assert.Panic(t, func() { it.Value() })
		assert.Must(t).True(errors.Is(out.(error), iterators.ErrOutOfRange))
		assert.Must(t).Empty(rangekit.Collect[string](r))
		assert.Must(t).NoError(r.Close())
	})

	s.Test("a range closed before the iteration never starts its sequence", func(t *testcase.T) {
		var started bool
		r := rangekit.FromSeq(func(yield func(int) bool) {
			started = true
			yield(1)
		})
		assert.Must(t).NoError(r.Close())
		assert.Must(t).True(rangekit.Empty[int](r))
		assert.Must(t).False(started)
	})

	s.Test("dereferencing the end panics", func(t *testcase.T) {
		r := rangekit.FromSeq(seq())
		out := assert.Panic(t, func() { r.Begin().Value() })
		assert.Must(t).True(errors.Is(out.(error), iterators.ErrOutOfRange))
	})
}

func TestSubrange(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a subrange of a random access range is sized", func(t *testcase.T) {
		base := rangekit.Slice([]int{1, 2, 3, 4, 5})
		first := iterators.Next(base.Begin(), 1)
		last := iterators.Next(base.Begin(), 4)
		sub := rangekit.Subrange(first, last.(iterators.Sentinel[int]))
		assert.Must(t).True(rangekit.IsSized[int](sub))
		assert.Must(t).Equal(3, rangekit.Size[int](sub))
		assert.Must(t).Equal([]int{2, 3, 4}, rangekit.Collect[int](sub))
		assert.Must(t).Equal([]int{2, 3, 4}, rangekit.Collect[int](sub), "multi pass")
	})
}

func TestCounted(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("random access iterators become a subrange", func(t *testcase.T) {
		r := rangekit.Counted(rangekit.Iota(0, 10).Begin(), 3)
		assert.Must(t).Equal(iterators.RandomAccess, rangekit.CategoryOf(r))
		assert.Must(t).Equal([]int{0, 1, 2}, rangekit.Collect(r))
		assert.Must(t).Equal(3, rangekit.Size(r))
	})

	s.Test("a contiguous window of a slice", func(t *testcase.T) {
		vs := []int{1, 2, 3, 4}
		r := rangekit.Counted(iterators.Next(rangekit.Slice(vs).Begin(), 1), 3)
		assert.Must(t).Equal([]int{2, 3, 4}, rangekit.Collect(r))
		_, common := r.End().(iterators.Iterator[int])
		assert.Must(t).True(common)
	})

	s.Test("other iterators count down", func(t *testcase.T) {
		r := rangekit.Counted(rangekit.FromSeq(slices.Values([]int{1, 2, 3, 4})).Begin(), 2)
		assert.Must(t).Equal(iterators.Input, rangekit.CategoryOf(r))
		assert.Must(t).Equal(2, rangekit.Size(r))
		assert.Must(t).Equal([]int{1, 2}, rangekit.Collect(r))
	})

	s.Test("negative count", func(t *testcase.T) {
		out := assert.Panic(t, func() { rangekit.Counted(rangekit.Iota(0, 1).Begin(), -1) })
		assert.Must(t).True(errors.Is(out.(error), rangekit.ErrNegativeCount))
	})
}

func TestAdapt(t *testing.T) {
	s := testcase.NewSpec(t)

	base := testcase.Let(s, func(t *testcase.T) rangekit.SliceView[int] {
		return rangekit.Slice(random.Slice(t.Random.IntBetween(1, 5), t.Random.Int))
	})

	s.Test("without capabilities", func(t *testcase.T) {
		r := rangekit.Adapt[int](base.Get(t), rangekit.Caps[int]{Category: iterators.Forward})
		_, isSized := r.(rangekit.Sized)
		assert.Must(t).False(isSized)
		assert.Must(t).False(rangekit.IsConstIterable(r))
		assert.Must(t).False(rangekit.IsSimple(r))
		assert.Must(t).Equal(iterators.Forward, rangekit.CategoryOf(r))
		assert.Must(t).Equal(rangekit.Collect[int](base.Get(t)), rangekit.Collect(r))
	})

	s.Test("with every capability", func(t *testcase.T) {
		r := rangekit.Adapt[int](base.Get(t), rangekit.Caps[int]{
			Size:   func() int { return 42 },
			Const:  func() rangekit.Range[int] { return base.Get(t) },
			Simple: true,
		})
		assert.Must(t).Equal(42, rangekit.Size(r))
		assert.Must(t).True(rangekit.IsConstIterable(r))
		assert.Must(t).True(rangekit.IsSimple(r))
		assert.Must(t).Equal(iterators.Contiguous, rangekit.CategoryOf(r), "category defaults to the wrapped range's")

		u, ok := rangekit.Unwrap(r)
		assert.Must(t).True(ok)
		assert.Must(t).Equal(rangekit.Range[int](base.Get(t)), u)
	})
}

func TestBackInserter(t *testing.T) {
	var vs []int
	out := rangekit.BackInserter(&vs)
	for i := 0; i < 3; i++ {
		out.Set(i)
		out.Next()
	}
	assert.Equal(t, []int{0, 1, 2}, vs)
}

func TestCommonEnd(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sized random access ranges compute their end", func(t *testcase.T) {
		r := rangekit.Adapt[int](rangekit.Iota(0, 4), rangekit.Caps[int]{Size: func() int { return 4 }})
		end := rangekit.CommonEnd(r)
		assert.Must(t).True(r.End().Equal(end))
		assert.Must(t).True(rangekit.IsCommonArg(r))
	})

	s.Test("unbounded ranges have no end position", func(t *testcase.T) {
		r := rangekit.IotaFrom(0)
		assert.Must(t).False(rangekit.IsCommonArg[int](r))
		out := assert.Panic(t, func() { rangekit.CommonEnd[int](r) })
		assert.Must(t).True(errors.Is(out.(error), iterators.ErrCategory))
	})
}
