// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

// Position is implemented by Iterator and ConstIterator and allows
// iterators of either kind to be compared.
type Position[T any] interface {
	position() *node[T]
}

// Iterator is a bidirectional cursor over the elements of a List that
// allows the element it refers to be modified. The zero value refers to
// no position and is invalid for every operation other than Equal.
//
// An iterator refers to a node, the list it belongs to is the list
// that currently owns that node. An iterator becomes invalid once the
// element it refers to is erased or the list is cleared.
type Iterator[T any] struct {
	n *node[T]
}

// ConstIterator is like Iterator but provides read-only access to
// elements.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) position() *node[T]      { return it.n }
func (it ConstIterator[T]) position() *node[T] { return it.n }

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// Equal returns true if it and other refer to the same position.
// Iterators from different lists are never equal, but two zero
// iterators are.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.position()
}

// Equal returns true if it and other refer to the same position.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.position()
}

// Next advances the iterator. It fails if the iterator is already at End.
func (it *Iterator[T]) Next() error {
	n, err := advance(it.n)
	if err != nil {
		return err
	}
	it.n = n
	return nil
}

// Prev moves the iterator back by one. It fails if the iterator is at
// the first element.
func (it *Iterator[T]) Prev() error {
	n, err := retreat(it.n)
	if err != nil {
		return err
	}
	it.n = n
	return nil
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() (T, error) {
	return value(it.n)
}

// Ptr returns a pointer to the element at the iterator's position,
// allowing it to be modified in place. The pointer must not be retained
// once the element is erased.
func (it Iterator[T]) Ptr() (*T, error) {
	if err := dereferenceable(it.n); err != nil {
		return nil, err
	}
	return &it.n.value, nil
}

// Set replaces the element at the iterator's position.
func (it Iterator[T]) Set(v T) error {
	if err := dereferenceable(it.n); err != nil {
		return err
	}
	it.n.value = v
	return nil
}

// Next is like Iterator.Next.
func (it *ConstIterator[T]) Next() error {
	n, err := advance(it.n)
	if err != nil {
		return err
	}
	it.n = n
	return nil
}

// Prev is like Iterator.Prev.
func (it *ConstIterator[T]) Prev() error {
	n, err := retreat(it.n)
	if err != nil {
		return err
	}
	it.n = n
	return nil
}

// Value returns the element at the iterator's position.
func (it ConstIterator[T]) Value() (T, error) {
	return value(it.n)
}

func advance[T any](n *node[T]) (*node[T], error) {
	switch {
	case n == nil:
		return nil, invalidIterator("advance", "null position")
	case !n.live():
		return nil, invalidIterator("advance", "released position")
	case n == n.owner.chain.tail:
		return nil, invalidIterator("advance", "past end")
	}
	return n.next, nil
}

func retreat[T any](n *node[T]) (*node[T], error) {
	switch {
	case n == nil:
		return nil, invalidIterator("retreat", "null position")
	case !n.live():
		return nil, invalidIterator("retreat", "released position")
	case n.prev == nil || n.prev == n.owner.chain.head:
		return nil, invalidIterator("retreat", "before begin")
	}
	return n.prev, nil
}

func dereferenceable[T any](n *node[T]) error {
	switch {
	case n == nil:
		return invalidIterator("dereference", "null position")
	case !n.live():
		return invalidIterator("dereference", "released position")
	case n.sentinel:
		return invalidIterator("dereference", "end position")
	}
	return nil
}

func value[T any](n *node[T]) (T, error) {
	if err := dereferenceable(n); err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}
