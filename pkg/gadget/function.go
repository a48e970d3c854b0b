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
	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// FunctionConfig holds the shape of the conditional chip, which computes on
// a single row
//
//	out = if a == b { c } else { a − b }
//
// by branching on the is-zero gadget applied to a − b.  The branch is
// enforced by two gates built from the gadget's indicator expression:
//
//	indicator·(out − c) = 0
//	(1 − indicator)·(out − (a − b)) = 0
//
// Exactly one factor of each product is live on any consistent row, so
// together they pin the output to the selected branch.
type FunctionConfig[F field.Element[F]] struct {
	// Operand advice columns.
	A, B, C schema.Column
	// Output advice column.
	Output schema.Column
	// Selector toggling the conditional.
	Selector schema.Selector
	// Nested is-zero gadget deciding a == b.
	AEqualsB IsZeroConfig[F]
}

// ConfigureFunction declares the columns, selector and gates of the
// conditional chip.
func ConfigureFunction[F field.Element[F]](sch *schema.Schema[F]) FunctionConfig[F] {
	config := FunctionConfig[F]{
		A:        sch.NewAdviceColumn("a"),
		B:        sch.NewAdviceColumn("b"),
		C:        sch.NewAdviceColumn("c"),
		Output:   sch.NewAdviceColumn("output"),
		Selector: sch.NewSelector("s_fn"),
	}
	//
	var (
		a   = sch.Query(config.A, 0)
		b   = sch.Query(config.B, 0)
		c   = sch.Query(config.C, 0)
		out = sch.Query(config.Output, 0)
		one = ir.Const64[F](1)
	)
	// Decide a == b via is-zero over the difference.
	config.AEqualsB = ConfigureIsZero(sch, config.Selector, ir.Subtract(a, b))
	//
	indicator := config.AEqualsB.Expr()
	//
	sch.CreateGate("conditional", config.Selector,
		ir.Product(indicator, ir.Subtract(out, c)),
		ir.Product(ir.Subtract(one, indicator), ir.Subtract(out, ir.Subtract(a, b))),
	)
	//
	return config
}

// FunctionChip pairs a conditional configuration with its assignment
// behaviour.
type FunctionChip[F field.Element[F]] struct {
	config FunctionConfig[F]
}

// NewFunctionChip constructs a chip from a given configuration.
func NewFunctionChip[F field.Element[F]](config FunctionConfig[F]) *FunctionChip[F] {
	return &FunctionChip[F]{config: config}
}

// Assign writes the operands, the is-zero witnesses for their difference and
// the selected output into a given row, returning the output cell.
func (p *FunctionChip[F]) Assign(region *trace.Region[F], offset uint, a F, b F, c F) (schema.Cell, error) {
	if err := region.EnableSelector(p.config.Selector, offset); err != nil {
		return schema.Cell{}, err
	}
	//
	if _, err := region.AssignAdvice(p.config.A, offset, a); err != nil {
		return schema.Cell{}, err
	}
	//
	if _, err := region.AssignAdvice(p.config.B, offset, b); err != nil {
		return schema.Cell{}, err
	}
	//
	if _, err := region.AssignAdvice(p.config.C, offset, c); err != nil {
		return schema.Cell{}, err
	}
	//
	diff := a.Sub(b)
	//
	if err := NewIsZeroChip(p.config.AEqualsB).Assign(region, offset, diff); err != nil {
		return schema.Cell{}, err
	}
	// Select the branch.
	out := diff
	if diff.IsZero() {
		out = c
	}
	//
	return region.AssignAdvice(p.config.Output, offset, out)
}
