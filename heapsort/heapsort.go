// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heapsort provides an in-place, comparator based heap sort.
// The sort is not stable and uses only the supplied less function to
// compare elements.
package heapsort

import "cmp"

// Value represents a type that can order itself relative to another
// instance of the same type.
type Value[T any] interface {
	Less(x T) bool
}

// Func sorts s in ascending order as determined by less, which must
// be a strict weak ordering. To sort the half open range [i, j) of
// a slice call Func(s[i:j], less).
func Func[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	// heapify
	for i := n/2 - 1; i >= 0; i-- {
		down(s, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		down(s, 0, end, less)
	}
}

// Ordered sorts s in ascending order using cmp.Less.
func Ordered[T cmp.Ordered](s []T) {
	Func(s, cmp.Less[T])
}

// Values sorts s in ascending order using the Less method of its elements.
func Values[T Value[T]](s []T) {
	Func(s, func(a, b T) bool { return a.Less(b) })
}

// down sifts the element at i0 down the max-heap held in s[:n].
func down[T any](s []T, i0, n int, less func(a, b T) bool) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && less(s[j1], s[j2]) {
			j = j2 // right child
		}
		if !less(s[i], s[j]) {
			break
		}
		s[i], s[j] = s[j], s[i]
		i = j
	}
}
