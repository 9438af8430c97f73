// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scenario runs YAML described sequences of list operations
// and checks their outcome. A scenario names a set of integer lists,
// a sequence of steps to apply to them and, optionally, the expected
// contents of each list once all of the steps have been applied.
//
//	name: merge
//	lists:
//	  a: [1, 3, 5]
//	  b: [2, 3, 4]
//	steps:
//	  - {op: merge, list: a, other: b}
//	  - {op: pop_front, list: b, error: empty}
//	expect:
//	  a: [1, 2, 3, 3, 4, 5]
//	  b: []
package scenario

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
)

// Step represents a single list operation.
type Step struct {
	// Op is one of push_back, push_front, pop_back, pop_front, front,
	// back, insert, erase, clear, sort, merge, reverse, unique, copy
	// or assign.
	Op string `yaml:"op"`
	// List is the list the operation is applied to.
	List string `yaml:"list"`
	// Other is the second list used by merge, copy and assign.
	Other string `yaml:"other,omitempty"`
	// From names the list whose iterator is used as the position for
	// insert and erase, it defaults to List.
	From string `yaml:"from,omitempty"`
	// Index is the number of steps from begin for insert and erase.
	Index int `yaml:"index,omitempty"`
	// Value is the value for push_back, push_front and insert.
	Value int `yaml:"value,omitempty"`
	// Want is the expected value returned by front and back.
	Want *int `yaml:"want,omitempty"`
	// Error, if set to empty or invalid, requires that the step fail
	// with the corresponding error.
	Error string `yaml:"error,omitempty"`
}

// Scenario represents a named sequence of steps.
type Scenario struct {
	Name   string           `yaml:"name"`
	Lists  map[string][]int `yaml:"lists"`
	Steps  []Step           `yaml:"steps"`
	Expect map[string][]int `yaml:"expect,omitempty"`
}

// Parse parses a YAML scenario, unknown fields are reported as errors.
func Parse(spec []byte) (Scenario, error) {
	var s Scenario
	if err := cmdyaml.ParseConfigStrict(spec, &s); err != nil {
		return Scenario{}, err
	}
	return s, s.validate()
}

// ParseFile is like Parse but reads the scenario from filename.
func ParseFile(ctx context.Context, filename string) (Scenario, error) {
	var s Scenario
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &s); err != nil {
		return Scenario{}, err
	}
	if err := s.validate(); err != nil {
		return Scenario{}, fmt.Errorf("%v: %w", filename, err)
	}
	return s, nil
}

func (s Scenario) validate() error {
	known := map[string]bool{}
	for name := range s.Lists {
		known[name] = true
	}
	for i, step := range s.Steps {
		if _, ok := operations[step.Op]; !ok {
			return fmt.Errorf("step %v: unknown operation %q", i, step.Op)
		}
		if !known[step.List] {
			return fmt.Errorf("step %v: unknown list %q", i, step.List)
		}
		switch step.Op {
		case "merge", "assign":
			if !known[step.Other] {
				return fmt.Errorf("step %v: unknown list %q", i, step.Other)
			}
		case "copy":
			if len(step.Other) == 0 {
				return fmt.Errorf("step %v: copy requires other", i)
			}
			known[step.Other] = true
		}
		if len(step.From) > 0 && !known[step.From] {
			return fmt.Errorf("step %v: unknown list %q", i, step.From)
		}
		if _, ok := errorKinds[step.Error]; !ok {
			return fmt.Errorf("step %v: unknown error kind %q", i, step.Error)
		}
	}
	for name := range s.Expect {
		if !known[name] {
			return fmt.Errorf("expect: unknown list %q", name)
		}
	}
	return nil
}
