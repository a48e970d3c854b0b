// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package schema

import (
	"fmt"
	"sort"
)

// Failure embodies structured information about a failing constraint.  A
// failure is a property of the witness being checked, not of the circuit
// definition; malformed circuits surface as errors instead.
type Failure interface {
	// Provides a suitable error message
	Message() string
}

// ConstraintFailure indicates a gate constraint which did not vanish on a row
// where its selector was enabled.
type ConstraintFailure struct {
	// Name of the failing gate.
	Gate string
	// Index of the failing constraint within the gate.
	Constraint uint
	// Region enclosing the failing row (empty when the row falls outside any
	// region).
	Region string
	// Row on which the constraint failed.
	Row uint
}

// Message provides a suitable error message
func (p *ConstraintFailure) Message() string {
	if p.Region != "" {
		return fmt.Sprintf("constraint %d of gate %q does not hold (row %d, region %q)",
			p.Constraint, p.Gate, p.Row, p.Region)
	}
	//
	return fmt.Sprintf("constraint %d of gate %q does not hold (row %d)", p.Constraint, p.Gate, p.Row)
}

func (p *ConstraintFailure) String() string {
	return p.Message()
}

// CopyFailure indicates two cells which were declared equal (directly, or
// transitively through a chain of copy constraints) but hold different
// values.
type CopyFailure struct {
	// First cell of the disagreeing pair.  This is always the smallest cell
	// of its equivalence class.
	First Cell
	// Second cell of the disagreeing pair.
	Second Cell
}

// Message provides a suitable error message
func (p *CopyFailure) Message() string {
	return fmt.Sprintf("copy constraint violated: %s != %s", p.First, p.Second)
}

func (p *CopyFailure) String() string {
	return p.Message()
}

// SortFailures normalises the order of a list of failures, such that
// identical checking runs always report identically ordered failures
// (regardless of how evaluation was scheduled).  Constraint failures come
// first, ordered by (row, gate, constraint index); copy failures follow,
// ordered by their cells.
func SortFailures(failures []Failure) {
	sort.SliceStable(failures, func(i, j int) bool {
		return compareFailures(failures[i], failures[j]) < 0
	})
}

func compareFailures(lhs Failure, rhs Failure) int {
	l, lOk := lhs.(*ConstraintFailure)
	r, rOk := rhs.(*ConstraintFailure)
	// Constraint failures order before copy failures.
	switch {
	case lOk && !rOk:
		return -1
	case !lOk && rOk:
		return 1
	case lOk && rOk:
		return compareConstraintFailures(l, r)
	}
	//
	return compareCopyFailures(lhs.(*CopyFailure), rhs.(*CopyFailure))
}

func compareConstraintFailures(lhs *ConstraintFailure, rhs *ConstraintFailure) int {
	if lhs.Row != rhs.Row {
		if lhs.Row < rhs.Row {
			return -1
		}
		//
		return 1
	}
	//
	if lhs.Gate != rhs.Gate {
		if lhs.Gate < rhs.Gate {
			return -1
		}
		//
		return 1
	}
	//
	if lhs.Constraint != rhs.Constraint {
		if lhs.Constraint < rhs.Constraint {
			return -1
		}
		//
		return 1
	}
	//
	return 0
}

func compareCopyFailures(lhs *CopyFailure, rhs *CopyFailure) int {
	if c := lhs.First.Cmp(rhs.First); c != 0 {
		return c
	}
	//
	return lhs.Second.Cmp(rhs.Second)
}
