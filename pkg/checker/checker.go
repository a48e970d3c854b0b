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
package checker

import (
	"fmt"
	"sort"

	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Check determines whether a given (sealed) trace satisfies a given schema.
// Every gate is evaluated on every row where its selector is enabled, and
// every copy constraint is resolved; all failures are accumulated (rather
// than stopping at the first) and returned in a normalised order, such that
// repeated runs over the same trace report identical lists.  An empty list
// is a pass.
//
// The error return carries structural errors only: reading an unassigned
// cell, referencing a row outside the table, or a copy class containing an
// unassigned cell.  These indicate a malformed circuit or buggy assignment
// code, abort checking immediately, and are never mixed with constraint
// failures.
//
// Gates are evaluated in parallel.  This is safe because the trace is
// immutable and gate evaluation is side-effect free; determinism of the
// output is restored by the final sort.
func Check[F field.Element[F]](sch *schema.Schema[F], tr *trace.Trace[F]) ([]schema.Failure, error) {
	var (
		gates    = sch.Gates()
		failures = make([][]schema.Failure, len(gates))
		group    errgroup.Group
	)
	//
	log.Debugf("checking %d gate(s) over %d row(s)", len(gates), tr.Height())
	//
	for i := range gates {
		group.Go(func() error {
			var err error
			failures[i], err = checkGate(gates[i], tr)
			//
			return err
		})
	}
	//
	if err := group.Wait(); err != nil {
		return nil, err
	}
	// Merge per-gate failures
	var all []schema.Failure
	//
	for _, ith := range failures {
		all = append(all, ith...)
	}
	// Resolve copy constraints
	copies, err := checkCopies(tr)
	if err != nil {
		return nil, err
	}
	//
	all = append(all, copies...)
	// Normalise reporting order
	schema.SortFailures(all)
	//
	log.Debugf("checking complete, %d failure(s)", len(all))
	//
	return all, nil
}

// checkGate evaluates every constraint of a given gate on every row where
// the gate's selector is enabled.
func checkGate[F field.Element[F]](gate schema.Gate[F], tr *trace.Trace[F]) ([]schema.Failure, error) {
	var (
		failures           []schema.Failure
		height             = int(tr.Height())
		minShift, maxShift = gate.ShiftRange()
	)
	//
	for row := 0; row < height; row++ {
		if !tr.SelectorEnabled(gate.Selector, uint(row)) {
			// Row unconstrained by this gate.
			continue
		}
		// Check bounds eagerly, such that a short-circuited product cannot
		// mask an out-of-range reference.
		if row+minShift < 0 || row+maxShift >= height {
			return nil, fmt.Errorf("gate %q: %w (row %d, offsets %d..%d, height %d)",
				gate.Name, trace.ErrRowOutOfBounds, row, minShift, maxShift, height)
		}
		//
		for i, constraint := range gate.Constraints {
			val, err := constraint.EvalAt(row, tr)
			//
			if err != nil {
				return nil, fmt.Errorf("gate %q: %w", gate.Name, err)
			} else if !val.IsZero() {
				failures = append(failures, &schema.ConstraintFailure{
					Gate:       gate.Name,
					Constraint: uint(i),
					Region:     tr.RegionAt(uint(row)),
					Row:        uint(row),
				})
			}
		}
	}
	//
	return failures, nil
}

// checkCopies partitions all copy-constrained cells into equivalence classes
// and checks that every cell within a class holds an equal value.  Each cell
// disagreeing with its class representative (the smallest cell of the class)
// yields one failure.
func checkCopies[F field.Element[F]](tr *trace.Trace[F]) ([]schema.Failure, error) {
	var (
		classes  = util.NewDisjointSet[schema.Cell]()
		failures []schema.Failure
	)
	//
	for _, pair := range tr.Copies() {
		classes.Union(pair[0], pair[1])
	}
	//
	for _, members := range classes.Classes() {
		sort.Slice(members, func(i, j int) bool {
			return members[i].Cmp(members[j]) < 0
		})
		// Representative is smallest cell of the class.
		rep := members[0]
		//
		val, ok := tr.Get(rep.Column, rep.Row)
		if !ok {
			return nil, fmt.Errorf("copy constraint: %w (%s)", trace.ErrUnassignedCell, rep)
		}
		//
		for _, cell := range members[1:] {
			ith, ok := tr.Get(cell.Column, cell.Row)
			//
			if !ok {
				return nil, fmt.Errorf("copy constraint: %w (%s)", trace.ErrUnassignedCell, cell)
			} else if ith.Cmp(val) != 0 {
				failures = append(failures, &schema.CopyFailure{First: rep, Second: cell})
			}
		}
	}
	//
	return failures, nil
}
