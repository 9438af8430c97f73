// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is a doubly linked list bounded by head and tail sentinels.
// Elements are stored in nodes that are never moved or reallocated once
// inserted. The zero value is an empty list ready to use. A List must not
// be copied after first use, use Clone or Assign instead.
type List[T any] struct {
	chain chain[T]
	len   int
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

// From returns a list containing vals in order.
func From[T any](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.chain.head == nil {
		l.chain.init(l)
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, emptyContainer("front")
	}
	return l.chain.first().value, nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, emptyContainer("back")
	}
	return l.chain.last().value, nil
}

// Begin returns an iterator at the first element, or End for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.chain.first()}
}

// End returns an iterator at the position following the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.chain.tail}
}

// CBegin is like Begin but returns a read-only iterator.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is like End but returns a read-only iterator.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// Clear releases every element. Iterators to released elements become
// invalid.
func (l *List[T]) Clear() {
	if l.chain.head == nil {
		return
	}
	for n := l.chain.first(); n != l.chain.tail; {
		next := n.next
		n.release()
		n = next
	}
	l.chain.reset()
	l.len = 0
}

// owns returns an error if pos cannot be used as a position in l.
func (l *List[T]) owns(op string, pos *node[T]) error {
	switch {
	case pos == nil:
		return invalidIterator(op, "null position")
	case !pos.live():
		return invalidIterator(op, "released position")
	case pos.owner != l:
		return invalidIterator(op, "position belongs to another list")
	}
	return nil
}

// Insert inserts v before pos and returns an iterator to the new element.
// pos may be End, in which case v is appended.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	if err := l.owns("insert", pos.n); err != nil {
		return Iterator[T]{}, err
	}
	if pos.n == l.chain.head {
		return Iterator[T]{}, invalidIterator("insert", "position precedes begin")
	}
	return Iterator[T]{n: l.insertBefore(pos.n, v)}, nil
}

func (l *List[T]) insertBefore(pos *node[T], v T) *node[T] {
	n := linkBefore(pos, &node[T]{owner: l, value: v})
	l.len++
	return n
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it, End if pos was the last element.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if l.len == 0 {
		return Iterator[T]{}, emptyContainer("erase")
	}
	if err := l.owns("erase", pos.n); err != nil {
		return Iterator[T]{}, err
	}
	if pos.n.sentinel {
		return Iterator[T]{}, invalidIterator("erase", "end position")
	}
	next := pos.n.next
	l.remove(pos.n)
	return Iterator[T]{n: next}, nil
}

func (l *List[T]) remove(n *node[T]) {
	unlink(n).release()
	l.len--
}

// PushBack appends v and returns an iterator to it.
func (l *List[T]) PushBack(v T) Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.insertBefore(l.chain.tail, v)}
}

// PushFront prepends v and returns an iterator to it.
func (l *List[T]) PushFront(v T) Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.insertBefore(l.chain.first(), v)}
}

// PopBack removes the last element.
func (l *List[T]) PopBack() error {
	if l.len == 0 {
		return emptyContainer("pop back")
	}
	l.remove(l.chain.last())
	return nil
}

// PopFront removes the first element.
func (l *List[T]) PopFront() error {
	if l.len == 0 {
		return emptyContainer("pop front")
	}
	l.remove(l.chain.first())
	return nil
}

// Clone returns a new list holding a copy of every element, in order.
// Elements are copied by assignment; the two lists share no nodes.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for v := range l.All() {
		c.PushBack(v)
	}
	return c
}

// Assign replaces the contents of l with a copy of the elements of other.
// Assigning a list to itself has no effect.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	l.Clear()
	for v := range other.All() {
		l.PushBack(v)
	}
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.chain.head == nil {
			return
		}
		for n := l.chain.first(); n != l.chain.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.chain.head == nil {
			return
		}
		for n := l.chain.last(); n != l.chain.head; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.len)
	for v := range l.All() {
		vals = append(vals, v)
	}
	return vals
}

// String implements fmt.Stringer.
func (l *List[T]) String() string {
	out := &strings.Builder{}
	out.WriteByte('[')
	i := 0
	for v := range l.All() {
		if i > 0 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(out, "%v", v)
		i++
	}
	out.WriteByte(']')
	return out.String()
}
