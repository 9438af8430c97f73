// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"

	"cloudeng.io/errors"
)

// Validate walks the chain in both directions and returns an error
// describing every structural invariant that does not hold, or nil.
// It is intended for tests and debugging.
func (l *List[T]) Validate() error {
	if l.chain.head == nil {
		if l.len != 0 {
			return fmt.Errorf("uninitialized list has length %v", l.len)
		}
		return nil
	}
	errs := &errors.M{}
	head, tail := l.chain.head, l.chain.tail
	if head.prev != nil || tail.next != nil {
		errs.Append(errors.New("sentinels are linked outside of the chain"))
	}
	if head.owner != l || tail.owner != l {
		errs.Append(errors.New("sentinels are not owned by the list"))
	}
	forward := 0
	for n := head.next; n != tail; n = n.next {
		if n == nil {
			errs.Append(fmt.Errorf("forward walk reached nil after %v nodes", forward))
			break
		}
		if forward > l.len {
			errs.Append(fmt.Errorf("forward walk exceeds length %v", l.len))
			break
		}
		if n.sentinel {
			errs.Append(fmt.Errorf("node %v: unexpected sentinel", forward))
		}
		if n.owner != l {
			errs.Append(fmt.Errorf("node %v: owned by another list", forward))
		}
		if n.prev == nil || n.prev.next != n {
			errs.Append(fmt.Errorf("node %v: prev.next does not refer back to the node", forward))
		}
		if n.next == nil || n.next.prev != n {
			errs.Append(fmt.Errorf("node %v: next.prev does not refer back to the node", forward))
		}
		forward++
	}
	backward := 0
	for n := tail.prev; n != head; n = n.prev {
		if n == nil || backward > l.len {
			break
		}
		backward++
	}
	if forward != l.len {
		errs.Append(fmt.Errorf("forward walk found %v nodes, length is %v", forward, l.len))
	}
	if backward != l.len {
		errs.Append(fmt.Errorf("backward walk found %v nodes, length is %v", backward, l.len))
	}
	return errs.Err()
}
