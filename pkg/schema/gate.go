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
	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/ir"
)

// Selector identifies a named per-row boolean flag.  A gate is conditioned on
// a selector: its constraints apply only at rows where the selector is
// enabled.  Selectors are declared at configuration time and enabled (per
// row) during region assignment.
type Selector struct {
	// Index of this selector within its schema.
	Index uint
	// Human-readable name, used for reporting.
	Name string
}

func (p Selector) String() string {
	return p.Name
}

// Gate specifies a named list of polynomial constraints, each of which must
// vanish (i.e. evaluate to zero) at every row where the gate's selector is
// enabled.  Rows where the selector is disabled are unconstrained by the
// gate.  Gates are pure data: their constraint expressions are built once at
// configuration time and never change thereafter.
type Gate[F field.Element[F]] struct {
	// A unique identifier for this gate.  This is primarily useful for
	// reporting.
	Name string
	// Selector conditioning this gate.
	Selector Selector
	// One or more expressions, each of which must vanish on every row where
	// the selector is enabled.
	Constraints []ir.Term[F]
}

// ShiftRange returns the minimum and maximum relative offset used anywhere
// within this gate's constraints.
func (p Gate[F]) ShiftRange() (int, int) {
	var minShift, maxShift int
	//
	for i, c := range p.Constraints {
		cMin, cMax := c.ShiftRange()
		if i == 0 {
			minShift, maxShift = cMin, cMax
		} else {
			minShift = min(minShift, cMin)
			maxShift = max(maxShift, cMax)
		}
	}
	//
	return minShift, maxShift
}
