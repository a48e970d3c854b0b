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

// IsZeroConfig holds the shape of the is-zero gadget: a witnessed boolean
// indicator of whether a tested expression is zero, proven consistent via an
// inverse witness.  Given a tested expression x, two gates are enforced:
//
//	x·inv = 1 − indicator
//	indicator·x = 0
//
// Together these pin the indicator: when x = 0 the first gate forces
// indicator = 1; when x ≠ 0 the second forces indicator = 0, whereupon the
// first forces inv = x⁻¹.  The indicator is witnessed rather than computed
// by the constraint system, so an assignment inconsistent with x is caught
// by these gates rather than trusted.
type IsZeroConfig[F field.Element[F]] struct {
	// Indicator column: holds 1 when the tested expression is zero, else 0.
	Indicator schema.Column
	// Inverse column: holds the inverse of the tested expression when it is
	// non-zero, else 0.
	Inverse schema.Column
}

// Expr returns the indicator as an expression, allowing the gadget's outcome
// to be composed into further gates.
func (p IsZeroConfig[F]) Expr() ir.Term[F] {
	return ir.NewColumnAccess[F](p.Indicator.Index, 0)
}

// ConfigureIsZero declares the helper columns and gates of the is-zero
// gadget, testing a given expression under a given selector.
func ConfigureIsZero[F field.Element[F]](sch *schema.Schema[F], selector schema.Selector,
	value ir.Term[F]) IsZeroConfig[F] {
	//
	var (
		indicator = sch.NewAdviceColumn("is_zero")
		inverse   = sch.NewAdviceColumn("is_zero_inv")
		ind       = ir.NewColumnAccess[F](indicator.Index, 0)
		inv       = ir.NewColumnAccess[F](inverse.Index, 0)
		one       = ir.Const64[F](1)
	)
	//
	sch.CreateGate("is_zero", selector,
		ir.Subtract(ir.Product(value, inv), ir.Subtract(one, ind)),
		ir.Product(ind, value),
	)
	//
	return IsZeroConfig[F]{Indicator: indicator, Inverse: inverse}
}

// IsZeroChip pairs an is-zero configuration with its assignment behaviour.
type IsZeroChip[F field.Element[F]] struct {
	config IsZeroConfig[F]
}

// NewIsZeroChip constructs a chip from a given configuration.
func NewIsZeroChip[F field.Element[F]](config IsZeroConfig[F]) *IsZeroChip[F] {
	return &IsZeroChip[F]{config: config}
}

// Assign writes indicator and inverse witnesses consistent with a given
// value of the tested expression at a given row.
func (p *IsZeroChip[F]) Assign(region *trace.Region[F], offset uint, value F) error {
	var indicator, inverse F
	//
	if value.IsZero() {
		indicator = field.One[F]()
	} else {
		inverse = value.Inverse()
	}
	//
	if _, err := region.AssignAdvice(p.config.Indicator, offset, indicator); err != nil {
		return err
	}
	//
	_, err := region.AssignAdvice(p.config.Inverse, offset, inverse)
	//
	return err
}
