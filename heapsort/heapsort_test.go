// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapsort_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/dlist/heapsort"
)

type byLen string

func (b byLen) Less(o byLen) bool {
	return len(b) < len(o)
}

func TestOrdered(t *testing.T) {
	for i, tc := range []struct {
		input, want []int
	}{
		{nil, nil},
		{[]int{}, []int{}},
		{[]int{1}, []int{1}},
		{[]int{2, 1}, []int{1, 2}},
		{[]int{5, 3, 1, 4, 1}, []int{1, 1, 3, 4, 5}},
		{[]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{[]int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{[]int{7, 7, 7, 7}, []int{7, 7, 7, 7}},
	} {
		got := slices.Clone(tc.input)
		heapsort.Ordered(got)
		if !slices.Equal(got, tc.want) {
			t.Errorf("%v: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1234))
	for n := 0; n < 200; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = rnd.Intn(n/2 + 1)
		}
		got := slices.Clone(input)
		heapsort.Func(got, func(a, b int) bool { return a < b })
		want := slices.Clone(input)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("%v: got %v, want %v", n, got, want)
		}
	}
}

func TestRange(t *testing.T) {
	s := []int{9, 8, 7, 6, 5, 4, 3}
	heapsort.Func(s[2:5], func(a, b int) bool { return a < b })
	if got, want := s, []int{9, 8, 5, 6, 7, 4, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDescending(t *testing.T) {
	s := []string{"b", "d", "a", "c"}
	heapsort.Func(s, func(a, b string) bool { return a > b })
	if got, want := strings.Join(s, ""), "dcba"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValues(t *testing.T) {
	s := []byLen{"ccc", "a", "dddd", "bb"}
	heapsort.Values(s)
	if got, want := fmt.Sprint(s), "[a bb ccc dddd]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComparisonsOnly(t *testing.T) {
	calls := 0
	s := []int{3, 1, 2}
	heapsort.Func(s, func(a, b int) bool {
		calls++
		return a < b
	})
	if calls == 0 {
		t.Errorf("less was never called")
	}
	if got, want := s, []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
