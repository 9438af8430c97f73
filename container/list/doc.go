// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a generic doubly linked list with stable element
// storage, checked bidirectional iterators and in-place structural
// algorithms.
//
// Elements are held in nodes bounded by a pair of sentinels. Once
// inserted a node never moves: Reverse and Merge relink nodes without
// copying values, SortFunc reorders values across the existing nodes.
//
//	l := list.From(5, 3, 1, 4, 1)
//	list.Sort(l)       // [1 1 3 4 5]
//	list.Unique(l)     // [1 3 4 5]
//	l.Reverse()        // [5 4 3 1]
//
// Iterators refer to a node and, through it, to the list that owns the
// node. Every operation on an iterator is checked: stepping outside of
// [Begin, End], dereferencing End, using an iterator to an erased
// element or passing an iterator from one list to another list's Insert
// or Erase returns an error wrapping ErrInvalidIterator rather than
// corrupting the list. Accessing or removing elements of an empty list
// returns an error wrapping ErrEmptyContainer.
//
//	for it := l.Begin(); !it.Equal(l.End()); it.Next() {
//		v, _ := it.Value()
//		...
//	}
//
// Lists are not safe for concurrent use.
package list
