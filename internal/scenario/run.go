// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"cloudeng.io/dlist/container/list"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// State holds the lists manipulated by a scenario, keyed by name.
type State map[string]*list.List[int]

// Names returns the names of the lists in lexical order.
func (s State) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

var errorKinds = map[string]error{
	"":        nil,
	"empty":   list.ErrEmptyContainer,
	"invalid": list.ErrInvalidIterator,
}

type operation func(st State, step Step) (string, error)

var operations = map[string]operation{
	"push_back": func(st State, step Step) (string, error) {
		st[step.List].PushBack(step.Value)
		return "", nil
	},
	"push_front": func(st State, step Step) (string, error) {
		st[step.List].PushFront(step.Value)
		return "", nil
	},
	"pop_back": func(st State, step Step) (string, error) {
		return "", st[step.List].PopBack()
	},
	"pop_front": func(st State, step Step) (string, error) {
		return "", st[step.List].PopFront()
	},
	"front": func(st State, step Step) (string, error) {
		return access(st[step.List].Front())(step)
	},
	"back": func(st State, step Step) (string, error) {
		return access(st[step.List].Back())(step)
	},
	"insert": func(st State, step Step) (string, error) {
		pos, err := position(st, step)
		if err != nil {
			return "", err
		}
		_, err = st[step.List].Insert(pos, step.Value)
		return "", err
	},
	"erase": func(st State, step Step) (string, error) {
		l := st[step.List]
		if l.Empty() {
			// Report an empty list before walking to the position.
			_, err := l.Erase(l.Begin())
			return "", err
		}
		pos, err := position(st, step)
		if err != nil {
			return "", err
		}
		_, err = l.Erase(pos)
		return "", err
	},
	"clear": func(st State, step Step) (string, error) {
		st[step.List].Clear()
		return "", nil
	},
	"sort": func(st State, step Step) (string, error) {
		list.Sort(st[step.List])
		return "", nil
	},
	"merge": func(st State, step Step) (string, error) {
		list.Merge(st[step.List], st[step.Other])
		return "", nil
	},
	"reverse": func(st State, step Step) (string, error) {
		st[step.List].Reverse()
		return "", nil
	},
	"unique": func(st State, step Step) (string, error) {
		list.Unique(st[step.List])
		return "", nil
	},
	"copy": func(st State, step Step) (string, error) {
		st[step.Other] = st[step.List].Clone()
		return "", nil
	},
	"assign": func(st State, step Step) (string, error) {
		st[step.List].Assign(st[step.Other])
		return "", nil
	},
}

func access(v int, err error) func(Step) (string, error) {
	return func(step Step) (string, error) {
		if err != nil {
			return "", err
		}
		if step.Want != nil && *step.Want != v {
			return "", fmt.Errorf("got %v, want %v", v, *step.Want)
		}
		return fmt.Sprint(v), nil
	}
}

// position returns the iterator Index steps from the beginning of the
// list named by From, or List if From is not set.
func position(st State, step Step) (list.Iterator[int], error) {
	name := step.List
	if len(step.From) > 0 {
		name = step.From
	}
	it := st[name].Begin()
	for range step.Index {
		if err := it.Next(); err != nil {
			return list.Iterator[int]{}, err
		}
	}
	return it, nil
}

// Run applies the scenario's steps to freshly created lists. Every step
// is applied, failures are collected and returned as a single error
// along with the final state of all lists.
func (s Scenario) Run(ctx context.Context) (State, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	ctx = ctxlog.ContextWith(ctx, "scenario", s.Name)
	logger := ctxlog.Logger(ctx)
	st := State{}
	for name, vals := range s.Lists {
		st[name] = list.From(vals...)
	}
	errs := &errors.M{}
	for i, step := range s.Steps {
		annotation := fmt.Sprintf("step %v: %v %v", i, step.Op, step.List)
		result, err := operations[step.Op](st, step)
		logger.Debug("step", "index", i, "op", step.Op, "list", step.List, "result", result, "state", st[step.List].String())
		want := errorKinds[step.Error]
		switch {
		case want == nil && err != nil:
			errs.Append(errors.Annotate(annotation, err))
		case want != nil && err == nil:
			errs.Append(errors.Annotate(annotation, fmt.Errorf("expected error: %w", want)))
		case want != nil && !errors.Is(err, want):
			errs.Append(errors.Annotate(annotation, fmt.Errorf("got %v, want %w", err, want)))
		case want != nil:
			logger.Info("expected error", "index", i, "op", step.Op, "error", err)
		}
		for _, name := range st.Names() {
			if err := st[name].Validate(); err != nil {
				errs.Append(errors.Annotate(annotation, fmt.Errorf("list %v: %w", name, err)))
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(s.Expect)) {
		got, want := st[name].Values(), s.Expect[name]
		if !slices.Equal(got, want) {
			logger.Warn("unexpected list contents", "list", name, "got", got, "want", want)
			errs.Append(fmt.Errorf("list %v: got %v, want %v", name, got, want))
		}
	}
	return st, errs.Err()
}
