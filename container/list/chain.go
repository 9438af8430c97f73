// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

// node is the unit of storage. Sentinel nodes never hold a value.
type node[T any] struct {
	prev, next *node[T]
	owner      *List[T] // nil once the node has been released.
	sentinel   bool
	value      T
}

// live reports whether n is a member of some list's chain.
func (n *node[T]) live() bool {
	return n != nil && n.owner != nil
}

// release detaches n from any list so that iterators still referring to
// it are detected as stale.
func (n *node[T]) release() {
	*n = node[T]{}
}

// chain is the pair of sentinels bounding a list's nodes.
type chain[T any] struct {
	head, tail *node[T]
}

func (c *chain[T]) init(owner *List[T]) {
	c.head = &node[T]{owner: owner, sentinel: true}
	c.tail = &node[T]{owner: owner, sentinel: true}
	c.head.next = c.tail
	c.tail.prev = c.head
}

// reset links the sentinels directly to each other.
func (c *chain[T]) reset() {
	c.head.next = c.tail
	c.tail.prev = c.head
}

// first and last return the sentinel-adjacent nodes, which are the
// sentinels themselves for an empty chain.
func (c *chain[T]) first() *node[T] { return c.head.next }
func (c *chain[T]) last() *node[T]  { return c.tail.prev }

// linkBefore splices n immediately before pos, which may be either
// sentinel.
func linkBefore[T any](pos, n *node[T]) *node[T] {
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
	return n
}

// unlink removes the non-sentinel pos from its chain. pos keeps its own
// links and value; the caller decides whether to release or relink it.
func unlink[T any](pos *node[T]) *node[T] {
	pos.prev.next = pos.next
	pos.next.prev = pos.prev
	return pos
}
