// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/dlist/container/list"
	"cloudeng.io/dlist/internal/scenario"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

func TestTestdata(t *testing.T) {
	ctx := context.Background()
	for _, file := range []string{"merge.yaml", "algorithms.yaml", "iterators.yaml"} {
		s, err := scenario.ParseFile(ctx, filepath.Join("testdata", file))
		if err != nil {
			t.Errorf("%v: %v", file, err)
			continue
		}
		st, err := s.Run(ctx)
		if err != nil {
			t.Errorf("%v: %v", file, err)
		}
		for name, want := range s.Expect {
			if got := st[name].Values(); !slices.Equal(got, want) {
				t.Errorf("%v: %v: got %v, want %v", file, name, got, want)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for i, tc := range []struct {
		spec, msg string
	}{
		{`name: x
lists: {a: []}
steps: [{op: shuffle, list: a}]`, `unknown operation "shuffle"`},
		{`name: x
lists: {a: []}
steps: [{op: sort, list: b}]`, `unknown list "b"`},
		{`name: x
lists: {a: []}
steps: [{op: merge, list: a, other: c}]`, `unknown list "c"`},
		{`name: x
lists: {a: []}
steps: [{op: pop_back, list: a, error: boom}]`, `unknown error kind "boom"`},
		{`name: x
lists: {a: []}
expect: {z: []}`, `unknown list "z"`},
		{`name: x
lists: {a: []}
steps: [{op: copy, list: a}]`, `copy requires other`},
		{`name: x
unknown: field`, `unknown`},
	} {
		_, err := scenario.Parse([]byte(tc.spec))
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: got %v, want an error containing %q", i, err, tc.msg)
		}
	}
}

func TestCopyDefinesList(t *testing.T) {
	s, err := scenario.Parse([]byte(`name: copy
lists: {a: [1, 2]}
steps:
  - {op: copy, list: a, other: b}
  - {op: push_back, list: b, value: 3}
  - {op: assign, list: a, other: b}
  - {op: pop_front, list: b}
expect: {a: [1, 2, 3], b: [2, 3]}
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestRunReportsFailures(t *testing.T) {
	s, err := scenario.Parse([]byte(`name: failures
lists: {a: [1, 2], e: []}
steps:
  - {op: pop_back, list: e}
  - {op: pop_back, list: a, error: empty}
  - {op: front, list: a, error: invalid}
  - {op: push_back, list: a, value: 2}
  - {op: back, list: a, want: 3}
expect: {a: [9]}
`))
	if err != nil {
		t.Fatal(err)
	}
	out := &strings.Builder{}
	ctx := ctxlog.Context(context.Background(), slog.New(slog.NewTextHandler(out, nil)))
	st, err := s.Run(ctx)
	if err == nil {
		t.Fatal("expected an error")
	}
	m, ok := err.(*errors.M)
	if !ok {
		t.Fatalf("unexpected error type %T", err)
	}
	if got, want := len(m.Unwrap()), 5; got != want {
		t.Errorf("got %v, want %v: %v", got, want, err)
	}
	if !errors.Is(err, list.ErrEmptyContainer) {
		t.Errorf("missing empty container error: %v", err)
	}
	for _, msg := range []string{
		"step 0: pop_back e",
		"step 1: pop_back a: expected error",
		"step 2: front a: expected error",
		"step 4: back a: got 2, want 3",
		"list a: got [1 2], want [9]",
	} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("%v does not contain %q", err, msg)
		}
	}
	if got, want := st["a"].Values(), []int{1, 2}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "unexpected list contents") {
		t.Errorf("missing log output: %v", out.String())
	}
}

func TestReport(t *testing.T) {
	s, err := scenario.Parse([]byte(`name: report
lists: {b: [3, 1], a: [2]}
steps: [{op: sort, list: b}]
`))
	if err != nil {
		t.Fatal(err)
	}
	st, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := st.Report(out, "text"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "a: [2]\nb: [1 3]\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	out.Reset()
	if err := st.Report(out, "yaml"); err != nil {
		t.Fatal(err)
	}
	var decoded map[string][]int
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if got, want := decoded, map[string][]int{"a": {2}, "b": {1, 3}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := st.Report(out, "xml"); err == nil {
		t.Errorf("expected an error for an unsupported format")
	}
}

func TestExceptions(t *testing.T) {
	out := &strings.Builder{}
	ctx := ctxlog.Context(context.Background(), slog.New(slog.NewJSONHandler(out, nil)))
	outcomes := scenario.Exceptions(ctx)
	if got, want := len(outcomes), 9; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, o := range outcomes {
		if !o.Caught() {
			t.Errorf("%v: got %v, want %v", o.Name, o.Err, o.Want)
		}
	}
	if got, want := strings.Count(out.String(), `"msg":"caught"`), 9; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
