// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"cmp"

	"cloudeng.io/dlist/heapsort"
)

// Sort sorts l in ascending order using cmp.Less.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}

// Merge merges other into l using cmp.Less, see MergeFunc.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}

// Unique removes consecutive duplicates using ==, see UniqueFunc.
func Unique[T comparable](l *List[T]) {
	l.UniqueFunc(func(a, b T) bool { return a == b })
}

// SortFunc sorts the elements of l in ascending order as determined by
// less. The values are copied into a scratch slice, sorted, and then
// assigned back to the existing nodes in order: nodes are neither moved
// nor reallocated, so iterators keep their positions but may observe
// different values. The relative order of equal values is unspecified.
// If less panics the list is left unchanged.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.len <= 1 {
		return
	}
	scratch := make([]T, 0, l.len)
	for n := l.chain.first(); n != l.chain.tail; n = n.next {
		scratch = append(scratch, n.value)
	}
	heapsort.Func(scratch, less)
	i := 0
	for n := l.chain.first(); n != l.chain.tail; n = n.next {
		n.value = scratch[i]
		i++
	}
}

// MergeFunc merges the sorted list other into the sorted list l, leaving
// other empty. Both lists must be sorted in ascending order according to
// less; this is not checked. The merge is stable and for equal elements
// those from l precede those from other. No element is copied: nodes are
// relinked from other into l and iterators to them remain valid, now
// referring to elements of l. Merging a list with itself has no effect.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if l == other || other == nil || other.len == 0 {
		return
	}
	l.lazyInit()
	p1, p2 := l.chain.first(), other.chain.first()
	for p1 != l.chain.tail && p2 != other.chain.tail {
		if !less(p2.value, p1.value) {
			p1 = p1.next
			continue
		}
		next := p2.next
		linkBefore(p1, l.adopt(unlink(p2)))
		p2 = next
	}
	if p2 != other.chain.tail {
		l.spliceBack(p2, other.chain.last())
	}
	l.len += other.len
	other.chain.reset()
	other.len = 0
}

// adopt transfers ownership of n to l.
func (l *List[T]) adopt(n *node[T]) *node[T] {
	n.owner = l
	return n
}

// spliceBack moves the run of nodes [first, last], which belongs to
// another chain, onto the end of l in a single relink. The donor's
// sentinels are left pointing at the moved nodes and must be reset by
// the caller.
func (l *List[T]) spliceBack(first, last *node[T]) {
	for n := first; ; n = n.next {
		l.adopt(n)
		if n == last {
			break
		}
	}
	tail := l.chain.tail
	first.prev = tail.prev
	tail.prev.next = first
	last.next = tail
	tail.prev = last
}

// Reverse reverses the order of the elements of l by swapping the links
// of every node. No element is copied or moved and iterators remain
// valid.
func (l *List[T]) Reverse() {
	if l.len <= 1 {
		return
	}
	first, last := l.chain.first(), l.chain.last()
	for n := first; n != l.chain.tail; {
		next := n.next
		n.next, n.prev = n.prev, n.next
		n = next
	}
	l.chain.head.next = last
	last.prev = l.chain.head
	l.chain.tail.prev = first
	first.next = l.chain.tail
}

// UniqueFunc removes all but the first element of every run of
// consecutive elements that are equal according to eq. Equal elements
// that are not adjacent are retained.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) {
	if l.len <= 1 {
		return
	}
	for p := l.chain.first(); p != l.chain.tail && p.next != l.chain.tail; {
		if eq(p.value, p.next.value) {
			l.remove(p.next)
			continue
		}
		p = p.next
	}
}
