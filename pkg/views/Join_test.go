package views_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/rangekit/rangekitcontract"
	"go.llib.dev/rangekit/pkg/views"
)

func TestJoin(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	segments := random.Slice(rnd.IntBetween(0, 5), func() []string {
		return random.Slice(rnd.IntBetween(0, 3), rnd.UUID)
	})
	flat := slices.Concat(segments...)

	t.Run("slices", func(t *testing.T) {
		mk := func(tb testing.TB) rangekitcontract.Subject[string] {
			return rangekitcontract.Subject[string]{Range: views.JoinSlices[string](rangekit.Slice(segments)), Expected: flat}
		}
		testcase.RunSuite(t, rangekitcontract.Contracts(mk, mk(t).Range)...)
	})

	t.Run("list of ranges", func(t *testing.T) {
		mk := func(tb testing.TB) rangekitcontract.Subject[string] {
			outer := listOf[rangekit.Range[string]]()
			for _, seg := range segments {
				outer.Append(listOf(seg...))
			}
			return rangekitcontract.Subject[string]{
				Range:    views.Join[string](outer, views.JoinInnerCategory(iterators.Bidirectional, true)),
				Expected: flat,
			}
		}
		testcase.RunSuite(t, rangekitcontract.Contracts(mk, mk(t).Range)...)
	})

	t.Run("single pass inner ranges", func(t *testing.T) {
		mk := func(tb testing.TB) rangekitcontract.Subject[string] {
			outer := views.Transform(rangekit.Slice(segments), func(seg []string) rangekit.Range[string] {
				return input(seg...)
			})
			return rangekitcontract.Subject[string]{Range: views.Join(outer), Expected: flat}
		}
		testcase.RunSuite(t, rangekitcontract.Contracts(mk, mk(t).Range)...)
	})

	s := testcase.NewSpec(t)

	s.Test("empty inner ranges are skipped", func(t *testcase.T) {
		r := views.JoinSlices[int](rangekit.Slice([][]int{{1, 2}, {}, {3}}))
		assert.Must(t).Equal([]int{1, 2, 3}, rangekit.Collect(r))
		assert.Must(t).Equal(iterators.Bidirectional, rangekit.CategoryOf(r))
		assert.Must(t).True(rangekit.IsCommon(r))
	})

	s.Test("walking backwards over empty inner ranges", func(t *testcase.T) {
		r := views.JoinSlices[int](rangekit.Slice([][]int{{}, {1, 2}, {}, {}, {3}, {}}))
		var (
			begin = r.Begin()
			it    = r.End().(iterators.BidirectionalIterator[int])
			got   []int
		)
		for !it.Equal(begin) {
			it.Prev()
			got = append(got, it.Value())
		}
		assert.Must(t).Equal([]int{3, 2, 1}, got)
	})

	s.Test("only empty inner ranges", func(t *testcase.T) {
		r := views.JoinSlices[int](rangekit.Slice([][]int{{}, {}}))
		assert.Must(t).True(rangekit.Empty(r))
	})

	s.Test("elements are addressable when the inner ranges are", func(t *testcase.T) {
		data := [][]int{{1}, {2, 3}}
		it := views.JoinSlices[int](rangekit.Slice(data)).Begin()
		it.Next()
		p, ok := it.(iterators.Pointer[int])
		assert.Must(t).True(ok)
		*p.Pointer() = 42
		assert.Must(t).Equal([][]int{{1}, {42, 3}}, data)

		outer := views.Transform(rangekit.Slice(data), func(vs []int) rangekit.Range[int] { return rangekit.Slice(vs) })
		_, ok = views.Join(outer).Begin().(iterators.Pointer[int])
		assert.Must(t).False(ok, "pointer access was not declared")
	})

	s.Test("undeclared inner ranges are treated as single pass", func(t *testcase.T) {
		outer := views.Transform(rangekit.Slice([][]int{{1}}), func(vs []int) rangekit.Range[int] { return rangekit.Slice(vs) })
		assert.Must(t).Equal(iterators.Input, rangekit.CategoryOf(views.Join(outer)))
		assert.Must(t).Equal(iterators.Forward, rangekit.CategoryOf(views.Join(outer, views.JoinInnerCategory(iterators.RandomAccess, false))))
	})

	s.Test("const iteration follows the outer range", func(t *testcase.T) {
		r := views.JoinSlices[int](rangekit.Slice([][]int{{1}, {2}}))
		assert.Must(t).True(rangekit.IsConstIterable(r))
		assert.Must(t).True(rangekit.IsSimple(r))

		in := views.JoinSlices[int](rangekit.FromSeq(slices.Values([][]int{{1}, {2}})))
		assert.Must(t).False(rangekit.IsConstIterable(in))
		assert.Must(t).Equal([]int{1, 2}, rangekit.Collect(in))
	})
}
