// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmptyContainer is returned when an element is accessed or removed
	// from a list that has no elements.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrInvalidIterator is returned when an iterator is used at a position
	// that is null, released, outside of [begin, end], or belongs to
	// another list.
	ErrInvalidIterator = errors.New("invalid iterator")
)

func emptyContainer(op string) error {
	return fmt.Errorf("%v: %w", op, ErrEmptyContainer)
}

func invalidIterator(op, reason string) error {
	return fmt.Errorf("%v: %w: %v", op, ErrInvalidIterator, reason)
}
