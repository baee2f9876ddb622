// Package datastruct holds containers which can be used as ranges.
package datastruct

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/rangekit/pkg/iterators"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// ErrForeignPosition is the panic value when a list is edited at a position of another list.
const ErrForeignPosition errorkit.Error = "datastruct: the position belongs to another list"

// LinkedList is a doubly linked list.
//
// A *LinkedList is a sized common bidirectional range.
// Its iterators can assign the elements in place,
// while the iterators of its Const view can only read them.
// That makes the list const iterable, but not a simple view.
//
// Every edit of the list goes through Insert and Erase,
// which keep the iterators of the other elements valid.
type LinkedList[T any] struct {
	front, back *listNode[T]
	size        int
}

type listNode[T any] struct {
	value      T
	prev, next *listNode[T]
}

func (ll *LinkedList[T]) at(n *listNode[T]) *ListIter[T] {
	return &ListIter[T]{list: ll, node: n}
}

// Insert puts v before pos and returns the position of the new element.
// Inserting before the End position appends to the list.
func (ll *LinkedList[T]) Insert(pos *ListIter[T], v T) *ListIter[T] {
	if pos.list != ll {
		panic(ErrForeignPosition)
	}
	n := &listNode[T]{value: v, next: pos.node}
	if pos.node == nil {
		n.prev, ll.back = ll.back, n
	} else {
		n.prev, pos.node.prev = pos.node.prev, n
	}
	if n.prev == nil {
		ll.front = n
	} else {
		n.prev.next = n
	}
	ll.size++
	return ll.at(n)
}

// Erase removes the element at pos and returns the position that followed it.
func (ll *LinkedList[T]) Erase(pos *ListIter[T]) *ListIter[T] {
	if pos.list != ll {
		panic(ErrForeignPosition)
	}
	n := pos.node
	if n == nil {
		panic(iterators.ErrOutOfRange.F("erasing the end of a linked list"))
	}
	if n.prev == nil {
		ll.front = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		ll.back = n.prev
	} else {
		n.next.prev = n.prev
	}
	ll.size--
	return ll.at(n.next)
}

// Append adds the values to the end of the list.
func (ll *LinkedList[T]) Append(vs ...T) {
	end := ll.at(nil)
	for _, v := range vs {
		ll.Insert(end, v)
	}
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	first := ll.at(ll.front)
	for _, v := range vs {
		ll.Insert(first, v)
	}
}

// Shift removes the first element.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.front == nil {
		var zero T
		return zero, false
	}
	v := ll.front.value
	ll.Erase(ll.at(ll.front))
	return v, true
}

// Pop removes the last element.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.back == nil {
		var zero T
		return zero, false
	}
	v := ll.back.value
	ll.Erase(ll.at(ll.back))
	return v, true
}

// Lookup returns the element at index, walking from the closer end of the list.
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.size <= index {
		var zero T
		return zero, false
	}
	if index < ll.size/2 {
		return iterators.Next(ll.Begin(), index).Value(), true
	}
	return iterators.Prev(ll.at(nil), ll.size-index).Value(), true
}

// Length returns the number of elements in the list
func (ll *LinkedList[T]) Length() int { return ll.size }

func (ll *LinkedList[T]) ToSlice() []T { return rangekit.Collect[T](ll) }

func (ll *LinkedList[T]) Begin() iterators.Iterator[T] {
	return ll.at(ll.front)
}

// End is the position after the last element.
// Stepping back from End moves to the tail of the list.
func (ll *LinkedList[T]) End() iterators.Sentinel[T] {
	return ll.at(nil)
}

func (ll *LinkedList[T]) Size() int { return ll.size }

func (ll *LinkedList[T]) Category() iterators.Category { return iterators.Bidirectional }

func (ll *LinkedList[T]) Const() rangekit.Range[T] { return ConstList[T]{list: ll} }

func (ll *LinkedList[T]) Simple() bool { return false }

// ListIter is the iterator of a LinkedList.
// The elements can be assigned through it.
type ListIter[T any] struct {
	list *LinkedList[T]
	node *listNode[T]
}

func (it *ListIter[T]) Value() T {
	if it.node == nil {
		panic(iterators.ErrOutOfRange.F("dereferencing the end of a linked list"))
	}
	return it.node.value
}

func (it *ListIter[T]) Pointer() *T { return &it.node.value }

func (it *ListIter[T]) Set(v T) { it.node.value = v }

func (it *ListIter[T]) Next() { it.node = it.node.next }

func (it *ListIter[T]) Prev() {
	if it.node == nil {
		it.node = it.list.back
		return
	}
	it.node = it.node.prev
}

func (it *ListIter[T]) Clone() iterators.Iterator[T] {
	return &ListIter[T]{list: it.list, node: it.node}
}

func (it *ListIter[T]) Equal(oth iterators.Iterator[T]) bool {
	o, ok := oth.(*ListIter[T])
	return ok && it.list == o.list && it.node == o.node
}

// ConstList is the read-only view of a LinkedList.
type ConstList[T any] struct{ list *LinkedList[T] }

func (c ConstList[T]) Begin() iterators.Iterator[T] {
	return constListIter[T]{it: c.list.at(c.list.front)}
}

func (c ConstList[T]) End() iterators.Sentinel[T] {
	return constListIter[T]{it: c.list.at(nil)}
}

func (c ConstList[T]) Size() int { return c.list.size }

func (c ConstList[T]) Category() iterators.Category { return iterators.Bidirectional }

func (c ConstList[T]) Const() rangekit.Range[T] { return c }

func (c ConstList[T]) Simple() bool { return true }

type constListIter[T any] struct{ it *ListIter[T] }

func (c constListIter[T]) Value() T { return c.it.Value() }

func (c constListIter[T]) Next() { c.it.Next() }

func (c constListIter[T]) Prev() { c.it.Prev() }

func (c constListIter[T]) Clone() iterators.Iterator[T] {
	return constListIter[T]{it: c.it.Clone().(*ListIter[T])}
}

func (c constListIter[T]) Equal(oth iterators.Iterator[T]) bool {
	o, ok := oth.(constListIter[T])
	return ok && c.it.Equal(o.it)
}
