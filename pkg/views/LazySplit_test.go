package views_test

import (
	"errors"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/rangekit/rangekitcontract"
	"go.llib.dev/rangekit/pkg/views"
)

func TestLazySplit(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	words := random.Slice(rnd.IntBetween(0, 5), func() string {
		return rnd.StringNC(rnd.IntBetween(0, 4), "abc")
	})
	joined := strings.Join(words, "--")
	var expected []string
	if joined != "" || 1 < len(words) {
		expected = strings.Split(joined, "--")
	}

	t.Run("forward base", func(t *testing.T) {
		mk := func(tb testing.TB) rangekitcontract.Subject[string] {
			r := views.LazySplit[rune](rangekit.Slice([]rune(joined)), rangekit.Slice([]rune("--")))
			return rangekitcontract.Subject[string]{Range: text(r), Expected: expected}
		}
		testcase.RunSuite(t, rangekitcontract.Contracts(mk, mk(t).Range)...)
	})

	t.Run("single pass base", func(t *testing.T) {
		line := strings.Join(words, "-")
		var exp []string
		if line != "" || 1 < len(words) {
			exp = strings.Split(line, "-")
		}
		mk := func(tb testing.TB) rangekitcontract.Subject[string] {
			r := views.LazySplitOn(input([]rune(line)...), '-')
			return rangekitcontract.Subject[string]{Range: text(r), Expected: exp}
		}
		testcase.RunSuite(t, rangekitcontract.Contracts(mk, mk(t).Range)...)
	})

	s := testcase.NewSpec(t)

	base := let.Var(s, func(t *testcase.T) string { return "a,b,,c," })
	pattern := let.Var(s, func(t *testcase.T) string { return "," })
	subject := func(t *testcase.T) rangekit.Range[rangekit.Range[rune]] {
		return views.LazySplit[rune](rangekit.Slice([]rune(base.Get(t))), rangekit.Slice([]rune(pattern.Get(t))))
	}

	s.Then("a pattern at the end is followed by an empty segment", func(t *testcase.T) {
		assert.Must(t).Equal([]string{"a", "b", "", "c", ""}, rangekit.Collect(text(subject(t))))
	})

	s.Then("the segments are forward ranges", func(t *testcase.T) {
		r := subject(t)
		assert.Must(t).Equal(iterators.Forward, rangekit.CategoryOf(r))
		seg := r.Begin().Value()
		assert.Must(t).Equal(iterators.Forward, rangekit.CategoryOf(seg))
		assert.Must(t).Equal([]rune("a"), rangekit.Collect(seg))
		assert.Must(t).Equal([]rune("a"), rangekit.Collect(seg), "multi pass")
	})

	s.When("the base is empty", func(s *testcase.Spec) {
		base.LetValue(s, "")

		s.Then("there are no segments", func(t *testcase.T) {
			assert.Must(t).True(rangekit.Empty(subject(t)))
		})
	})

	s.When("the pattern has more elements", func(s *testcase.Spec) {
		base.LetValue(s, "xxabyyab")
		pattern.LetValue(s, "ab")

		s.Then("whole occurrences separate the segments", func(t *testcase.T) {
			assert.Must(t).Equal([]string{"xx", "yy", ""}, rangekit.Collect(text(subject(t))))
		})
	})

	s.When("the pattern is only partially present", func(s *testcase.Spec) {
		base.LetValue(s, "xaxa")
		pattern.LetValue(s, "ab")

		s.Then("the base is a single segment", func(t *testcase.T) {
			assert.Must(t).Equal([]string{"xaxa"}, rangekit.Collect(text(subject(t))))
		})
	})

	s.When("the pattern is empty", func(s *testcase.Spec) {
		base.LetValue(s, "abc")
		pattern.LetValue(s, "")

		s.Then("every element is a segment", func(t *testcase.T) {
			assert.Must(t).Equal([]string{"a", "b", "c"}, rangekit.Collect(text(subject(t))))
		})

		s.Then("a single pass base is split the same way", func(t *testcase.T) {
			r := views.LazySplit(input([]rune("abc")...), rangekit.Range[rune](rangekit.EmptyOf[rune]()))
			assert.Must(t).Equal([]string{"a", "b", "c"}, rangekit.Collect(text(r)))
		})
	})

	s.Test("custom equality", func(t *testcase.T) {
		r := views.LazySplitFunc[rune](rangekit.Slice([]rune("aXbxc")), rangekit.Single('x'), func(a, b rune) bool {
			return strings.EqualFold(string(a), string(b))
		})
		assert.Must(t).Equal([]string{"a", "b", "c"}, rangekit.Collect(text(r)))
	})

	s.Test("a single pass base needs a single element pattern", func(t *testcase.T) {
		out := assert.Panic(t, func() {
			views.LazySplit(input([]rune("abc")...), rangekit.Range[rune](rangekit.Slice([]rune("ab"))))
		})
		assert.Must(t).True(errors.Is(out.(error), iterators.ErrCategory))
	})

	s.Test("segments of a single pass base share its position", func(t *testcase.T) {
		r := views.LazySplitOn(input([]rune("ab,cd")...), ',')
		it := r.Begin()
		seg := it.Value().Begin()
		assert.Must(t).Equal('a', seg.Value())
		it.Next()
		assert.Must(t).Equal([]rune("cd"), rangekit.Collect(it.Value()))
	})
}
