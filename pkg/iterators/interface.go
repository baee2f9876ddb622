// Package iterators provide the iterator model that ranges and range adaptors are built on.
//
// # Summary
//
// An iterator is a position within a sequence.
// What an iterator can do is expressed by the interfaces it implements:
//
//	Iterator              -> read the current element and step forward (single pass)
//	ForwardIterator       -> + copy the position and compare positions (multi pass)
//	BidirectionalIterator -> + step backward
//	RandomAccessIterator  -> + jump by n and measure the distance between positions in constant time
//	ContiguousIterator    -> + the elements are adjacent in memory and addressable
//
// Each level also has a Category constant: Input, Forward, Bidirectional, RandomAccess and Contiguous.
//
// A capability that an iterator lacks is not part of its method set,
// so a type assertion to the capability interface is the way to ask for it.
//
// The end of a sequence is marked by a Sentinel.
// When the sentinel is an iterator itself, the range is a "common range",
// and the end position can be used as a starting point for walking backwards.
package iterators

import "fmt"

// Category is the iterator category ladder.
// Each category includes every capability of the categories below it.
type Category int

const (
	Input Category = iota + 1
	Forward
	Bidirectional
	RandomAccess
	Contiguous
)

func (c Category) String() string {
	switch c {
	case Input:
		return "input"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	case Contiguous:
		return "contiguous"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Satisfies reports whether an iterator of category c can be used where at least min is required.
func (c Category) Satisfies(min Category) bool { return min <= c }

// Min returns the weakest of the given categories.
func Min(c Category, cs ...Category) Category {
	for _, o := range cs {
		if o < c {
			c = o
		}
	}
	return c
}

// Iterator is the input iterator contract.
type Iterator[T any] interface {
	// Value returns the element at the current position.
	// Calling Value on an end position is a contract violation.
	Value() T
	// Next moves the iterator to the next position.
	Next()
}

// Sentinel marks the end of a range.
type Sentinel[T any] interface {
	// Equal reports whether the iterator reached the position marked by the sentinel.
	Equal(it Iterator[T]) bool
}

// SizedSentinel is a Sentinel which can tell in constant time how far an iterator is from it.
type SizedSentinel[T any] interface {
	Sentinel[T]
	// Distance returns the signed number of steps from "from" to the receiver.
	Distance(from Iterator[T]) int
}

type ForwardIterator[T any] interface {
	Iterator[T]
	// Equal reports whether the two iterators point to the same position.
	// A forward iterator is a Sentinel for its own range.
	Sentinel[T]
	// Clone returns an independent iterator at the same position.
	// The dynamic type of the clone is the same as the receiver's.
	Clone() Iterator[T]
}

type BidirectionalIterator[T any] interface {
	ForwardIterator[T]
	// Prev moves the iterator to the previous position.
	Prev()
}

type RandomAccessIterator[T any] interface {
	BidirectionalIterator[T]
	// Advance moves the iterator by n positions, n may be negative.
	Advance(n int)
	// Distance returns the signed number of steps from "from" to the receiver.
	Distance(from Iterator[T]) int
	// At returns the element n positions away from the receiver.
	At(n int) T
}

// Pointer is implemented by iterators that can expose the address of the current element.
type Pointer[T any] interface {
	Pointer() *T
}

type ContiguousIterator[T any] interface {
	RandomAccessIterator[T]
	Pointer[T]
}

// Writable is implemented by iterators through which the current element can be assigned.
type Writable[T any] interface {
	Set(v T)
}

// Output is the output iterator contract.
type Output[T any] interface {
	Writable[T]
	Next()
}

// Categorized is implemented by iterators which declare their category explicitly.
// An explicit declaration is needed when the method set alone would be ambiguous,
// for example a random access iterator that exposes Pointer over non-adjacent elements.
type Categorized interface {
	Category() Category
}

// CategoryOf tells the category of an iterator.
func CategoryOf[T any](it Iterator[T]) Category {
	if c, ok := it.(Categorized); ok {
		return c.Category()
	}
	switch it.(type) {
	case ContiguousIterator[T]:
		return Contiguous
	case RandomAccessIterator[T]:
		return RandomAccess
	case BidirectionalIterator[T]:
		return Bidirectional
	case ForwardIterator[T]:
		return Forward
	default:
		return Input
	}
}
