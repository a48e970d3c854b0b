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
package gadget

import (
	"fmt"

	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// FibonacciConfig holds the shape of the fibonacci chip: a single advice
// column holding the sequence (one element per row), an instance column
// supplying the two seeds and the expected result, and one gate relating
// each element to the two before it:
//
//	f(i) + f(i+1) − f(i+2) = 0
type FibonacciConfig[F field.Element[F]] struct {
	// Advice column holding the sequence.
	Advice schema.Column
	// Instance column: seeds at rows 0 and 1, expected result at row 2.
	Instance schema.Column
	// Selector toggling the addition gate.
	Selector schema.Selector
}

// ConfigureFibonacci declares the selector and gate of the fibonacci chip
// over the given columns.
func ConfigureFibonacci[F field.Element[F]](sch *schema.Schema[F], advice schema.Column,
	instance schema.Column) FibonacciConfig[F] {
	//
	var (
		selector = sch.NewSelector("s_add")
		cur      = sch.Query(advice, 0)
		next     = sch.Query(advice, 1)
		out      = sch.Query(advice, 2)
	)
	//
	sch.CreateGate("add", selector, ir.Subtract(ir.Sum(cur, next), out))
	//
	return FibonacciConfig[F]{Advice: advice, Instance: instance, Selector: selector}
}

// FibonacciChip pairs a fibonacci configuration with its assignment
// behaviour.
type FibonacciChip[F field.Element[F]] struct {
	config FibonacciConfig[F]
}

// NewFibonacciChip constructs a chip from a given configuration.
func NewFibonacciChip[F field.Element[F]](config FibonacciConfig[F]) *FibonacciChip[F] {
	return &FibonacciChip[F]{config: config}
}

// Assign synthesises nrows elements of the sequence into a single region,
// seeding the first two from public inputs 0 and 1, and returns the cell
// holding the final element.  The selector is enabled on rows 0 up to
// nrows-3 only: on the last two rows the gate would reference rows beyond
// the table, so it is left disabled there (leaving the tail additions
// covered by the gate anchored two rows earlier).
func (p *FibonacciChip[F]) Assign(builder *trace.Builder[F], nrows uint) (schema.Cell, error) {
	var last schema.Cell
	//
	if nrows < 3 {
		return last, fmt.Errorf("fibonacci needs at least 3 rows (got %d)", nrows)
	}
	//
	err := builder.AssignRegion("fibonacci", func(region *trace.Region[F]) error {
		first, err := region.AssignAdviceFromInstance(p.config.Instance, 0, p.config.Advice, 0)
		if err != nil {
			return err
		}
		//
		second, err := region.AssignAdviceFromInstance(p.config.Instance, 1, p.config.Advice, 1)
		if err != nil {
			return err
		}
		//
		a, err := region.Value(first)
		if err != nil {
			return err
		}
		//
		b, err := region.Value(second)
		if err != nil {
			return err
		}
		//
		for row := uint(0); row < nrows-2; row++ {
			if err := region.EnableSelector(p.config.Selector, row); err != nil {
				return err
			}
		}
		//
		for row := uint(2); row < nrows; row++ {
			c := a.Add(b)
			//
			cell, err := region.AssignAdvice(p.config.Advice, row, c)
			if err != nil {
				return err
			}
			//
			a, b, last = b, c, cell
		}
		//
		return nil
	})
	//
	return last, err
}

// ExposePublic binds a given cell to a given row of the instance column via
// a copy constraint, asserting the cell's value against the corresponding
// public input.
func (p *FibonacciChip[F]) ExposePublic(builder *trace.Builder[F], cell schema.Cell, row uint) error {
	return builder.ConstrainEqual(cell, schema.Cell{Column: p.config.Instance, Row: row})
}
