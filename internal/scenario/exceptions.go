// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario

import (
	"context"

	"cloudeng.io/dlist/container/list"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Outcome records the result of running one of the exception cases.
type Outcome struct {
	Name string
	Want error
	Err  error
}

// Caught returns true if the case failed with the expected error.
func (o Outcome) Caught() bool {
	return o.Err != nil && errors.Is(o.Err, o.Want)
}

type exceptionCase struct {
	name string
	want error
	fn   func(l, other *list.List[int], it *list.Iterator[int]) error
}

// The cases share an iterator, initially at End of an empty list, so
// that later cases observe any movement caused by earlier ones.
var exceptionCases = []exceptionCase{
	{"pop_back on empty list", list.ErrEmptyContainer,
		func(l, _ *list.List[int], _ *list.Iterator[int]) error {
			return l.PopBack()
		}},
	{"pop_front on empty list", list.ErrEmptyContainer,
		func(l, _ *list.List[int], _ *list.Iterator[int]) error {
			return l.PopFront()
		}},
	{"front on empty list", list.ErrEmptyContainer,
		func(l, _ *list.List[int], _ *list.Iterator[int]) error {
			_, err := l.Front()
			return err
		}},
	{"back on empty list", list.ErrEmptyContainer,
		func(l, _ *list.List[int], _ *list.Iterator[int]) error {
			_, err := l.Back()
			return err
		}},
	{"dereference end", list.ErrInvalidIterator,
		func(_, _ *list.List[int], it *list.Iterator[int]) error {
			_, err := it.Value()
			return err
		}},
	{"retreat end of empty list", list.ErrInvalidIterator,
		func(_, _ *list.List[int], it *list.Iterator[int]) error {
			return it.Prev()
		}},
	{"advance end", list.ErrInvalidIterator,
		func(_, _ *list.List[int], it *list.Iterator[int]) error {
			return it.Next()
		}},
	{"erase end", list.ErrEmptyContainer,
		func(l, _ *list.List[int], it *list.Iterator[int]) error {
			_, err := l.Erase(*it)
			return err
		}},
	{"insert with another list's iterator", list.ErrInvalidIterator,
		func(l, other *list.List[int], _ *list.Iterator[int]) error {
			_, err := l.Insert(other.End(), 0)
			return err
		}},
}

// Exceptions runs the built-in catalogue of error cases against a pair
// of empty lists and returns the outcome of each.
func Exceptions(ctx context.Context) []Outcome {
	logger := ctxlog.Logger(ctx)
	l, other := list.New[int](), list.New[int]()
	it := l.End()
	outcomes := make([]Outcome, 0, len(exceptionCases))
	for _, c := range exceptionCases {
		o := Outcome{Name: c.name, Want: c.want, Err: c.fn(l, other, &it)}
		if o.Caught() {
			logger.Info("caught", "case", o.Name, "error", o.Err)
		} else {
			logger.Warn("not caught", "case", o.Name, "error", o.Err, "want", o.Want)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}
