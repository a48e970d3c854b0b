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

// RangeCheckConfig holds the shape of the range-check gadget, which enforces
// that a witnessed value v lies in [0, bound) via the vanishing polynomial
//
//	v·(1−v)·(2−v)·…·((bound−1)−v) = 0
//
// which has a root at every integer in range.  The polynomial has degree
// equal to the bound, hence this gadget is only viable for small bounds.
type RangeCheckConfig[F field.Element[F]] struct {
	// Value column being range checked.
	Value schema.Column
	// Selector toggling the range check.
	Selector schema.Selector
	// Exclusive upper bound.
	Bound uint64
}

// ConfigureRangeCheck declares the selector and gate of a range-check gadget
// over a given advice column.
func ConfigureRangeCheck[F field.Element[F]](sch *schema.Schema[F], value schema.Column,
	bound uint64) RangeCheckConfig[F] {
	//
	if bound == 0 {
		panic("range check with empty range")
	}
	//
	var (
		selector = sch.NewSelector("q_range")
		v        = sch.Query(value, 0)
		expr     = v
	)
	//
	for i := uint64(1); i < bound; i++ {
		expr = ir.Product(expr, ir.Subtract(ir.Const64[F](i), v))
	}
	//
	sch.CreateGate("range_check", selector, expr)
	//
	return RangeCheckConfig[F]{Value: value, Selector: selector, Bound: bound}
}

// RangeCheckChip pairs a range-check configuration with its assignment
// behaviour.
type RangeCheckChip[F field.Element[F]] struct {
	config RangeCheckConfig[F]
}

// NewRangeCheckChip constructs a chip from a given configuration.
func NewRangeCheckChip[F field.Element[F]](config RangeCheckConfig[F]) *RangeCheckChip[F] {
	return &RangeCheckChip[F]{config: config}
}

// Assign writes a given value into its own single-row region and enables the
// range check there.
func (p *RangeCheckChip[F]) Assign(builder *trace.Builder[F], value F) error {
	name := fmt.Sprintf("range check %d", p.config.Bound)
	//
	return builder.AssignRegion(name, func(region *trace.Region[F]) error {
		if err := region.EnableSelector(p.config.Selector, 0); err != nil {
			return err
		}
		//
		_, err := region.AssignAdvice(p.config.Value, 0, value)
		//
		return err
	})
}
