package main

import (
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/rangekit/pkg/algorithm"
	"go.llib.dev/rangekit/pkg/datastruct"
	"go.llib.dev/rangekit/pkg/mathkit"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/views"
)

const ErrInvalidCount errorkit.Error = "rangekit: the count must be positive"

type ProductCommand struct {
	Element int `flag:"element,e" default:"-1" desc:"print only the element at this index of each tuple"`
	Limit   int `flag:"limit" default:"0" desc:"print at most this many tuples, 0 means no limit"`

	Logger *logging.Logger
}

func (cmd ProductCommand) Summary() string {
	return "every combination of the sequences, in lexicographic order"
}

func (cmd ProductCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	serve(cmd.Logger, "product", w, r, func(doc Document) (any, error) {
		rs := doc.ranges()
		if len(rs) == 0 {
			return nil, ErrMissingSequence
		}
		sizes := make([]int, 0, len(rs))
		for _, r := range rs {
			sizes = append(sizes, rangekit.Size(r))
		}
		if _, ok := mathkit.Product(sizes...); !ok {
			return nil, mathkit.ErrOverflow.F("product of sizes %v", sizes)
		}
		product := views.CartesianProduct(rs[0], rs[1:]...)
		if 0 < cmd.Limit {
			product = views.Take(product, cmd.Limit)
		}
		if 0 <= cmd.Element {
			if len(rs) <= cmd.Element {
				return nil, ErrMissingSequence.F("no sequence at index %d", cmd.Element)
			}
			return nonNil(rangekit.Collect(views.Elements(product, cmd.Element))), nil
		}
		out := [][]string{}
		for tuple := range rangekit.Seq(product) {
			out = append(out, tuple)
		}
		return out, nil
	})
}

type ChunkCommand struct {
	N int `flag:"n" default:"2" desc:"the size of a chunk"`

	Logger *logging.Logger
}

func (cmd ChunkCommand) Summary() string { return "non-overlapping chunks of the first sequence" }

func (cmd ChunkCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	serve(cmd.Logger, "chunk", w, r, func(doc Document) (any, error) {
		if cmd.N <= 0 {
			return nil, ErrInvalidCount
		}
		seq, err := doc.first()
		if err != nil {
			return nil, err
		}
		return collectNested(views.Chunk(seq, cmd.N)), nil
	})
}

type SlideCommand struct {
	N int `flag:"n" default:"2" desc:"the size of a window"`

	Logger *logging.Logger
}

func (cmd SlideCommand) Summary() string { return "overlapping windows of the first sequence" }

func (cmd SlideCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	serve(cmd.Logger, "slide", w, r, func(doc Document) (any, error) {
		if cmd.N <= 0 {
			return nil, ErrInvalidCount
		}
		seq, err := doc.first()
		if err != nil {
			return nil, err
		}
		return collectNested(views.Slide(seq, cmd.N)), nil
	})
}

type ReverseCommand struct {
	Logger *logging.Logger
}

func (cmd ReverseCommand) Summary() string { return "the first sequence backwards" }

func (cmd ReverseCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	serve(cmd.Logger, "reverse", w, r, func(doc Document) (any, error) {
		seq, err := doc.first()
		if err != nil {
			return nil, err
		}
		return nonNil(rangekit.Collect(views.Reverse(seq))), nil
	})
}

type JoinCommand struct {
	Unique   bool `flag:"unique,u" desc:"drop consecutive duplicates"`
	Distinct bool `flag:"distinct,d" desc:"keep only the first occurrence of each element"`

	Logger *logging.Logger
}

func (cmd JoinCommand) Summary() string { return "the sequences flattened into one" }

func (cmd JoinCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	serve(cmd.Logger, "join", w, r, func(doc Document) (any, error) {
		joined := views.JoinSlices[string](rangekit.Slice(doc.Sequences))
		out := []string{}
		if cmd.Distinct {
			var set datastruct.OrderedSet[string]
			algorithm.Copy(joined, set.Inserter())
			return nonNil(set.ToSlice()), nil
		}
		if cmd.Unique {
			algorithm.UniqueCopy(joined, rangekit.BackInserter(&out))
			return out, nil
		}
		algorithm.Copy(joined, rangekit.BackInserter(&out))
		return out, nil
	})
}

type SplitCommand struct {
	Separator string `flag:"separator,s" default:"," desc:"the separator element"`

	Logger *logging.Logger
}

func (cmd SplitCommand) Summary() string { return "the first sequence split at each separator element" }

func (cmd SplitCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	serve(cmd.Logger, "split", w, r, func(doc Document) (any, error) {
		seq, err := doc.first()
		if err != nil {
			return nil, err
		}
		return collectNested(views.LazySplitOn(seq, cmd.Separator)), nil
	})
}

func nonNil[T any](vs []T) []T {
	if vs == nil {
		return []T{}
	}
	return vs
}
